// Package engine implements the rules of a single game: card draws,
// positional answer scoring, streak bonuses, and aggregate stats.
package engine

import (
	"errors"
	"math/rand/v2"

	"github.com/decklab/chainquiz/internal/chainquiz"
	"github.com/decklab/chainquiz/internal/deck"
)

var (
	ErrNoCard          = errors.New("no card drawn")
	ErrIndexOutOfRange = errors.New("answer index out of range")
)

// streak bonus multipliers per difficulty; a streak of 3 or more earns
// (streak-2) * multiplier at end of game.
var bonusMultiplier = map[chainquiz.Difficulty]int{
	chainquiz.DifficultyEasy:         1,
	chainquiz.DifficultyIntermediate: 2,
	chainquiz.DifficultyHard:         5,
}

// Outcome is the result of answering the live card.
type Outcome struct {
	IsCorrect   bool
	Points      int
	Explanation string
}

// Game is one player's session state. It is not safe for concurrent use;
// callers serialize access (the server registry holds one per game id).
type Game struct {
	playerName  string
	score       int
	cardsPlayed int
	cardsWon    int
	current     *deck.Card
	streaks     map[chainquiz.Difficulty]int
	used        map[string]struct{}
	catalog     map[chainquiz.Difficulty][]deck.Card
}

// NewGame creates a fresh game over the given catalog.
func NewGame(playerName string, catalog map[chainquiz.Difficulty][]deck.Card) *Game {
	return &Game{
		playerName: playerName,
		streaks:    make(map[chainquiz.Difficulty]int),
		used:       make(map[string]struct{}),
		catalog:    catalog,
	}
}

func (g *Game) PlayerName() string { return g.playerName }

// Draw picks a random not-yet-played card of the given difficulty and
// makes it the live card. Once every card of a difficulty has been played
// the pool for that difficulty resets.
func (g *Game) Draw(difficulty chainquiz.Difficulty) (deck.Card, error) {
	pool := g.catalog[difficulty]
	if len(pool) == 0 {
		return deck.Card{}, errors.New("no cards for difficulty " + string(difficulty))
	}

	available := make([]deck.Card, 0, len(pool))
	for _, c := range pool {
		if _, played := g.used[c.Title]; !played {
			available = append(available, c)
		}
	}
	if len(available) == 0 {
		for _, c := range pool {
			delete(g.used, c.Title)
		}
		available = pool
	}

	card := available[rand.IntN(len(available))]
	g.used[card.Title] = struct{}{}
	g.current = &card
	g.cardsPlayed++
	return card, nil
}

// Answer scores the live card by answer position and retires it; a card
// can only be answered once.
func (g *Game) Answer(index int) (Outcome, error) {
	if g.current == nil {
		return Outcome{}, ErrNoCard
	}
	if index < 0 || index >= len(g.current.Answers) {
		return Outcome{}, ErrIndexOutOfRange
	}

	answer := g.current.Answers[index]
	difficulty := g.current.Difficulty
	g.current = nil

	if !answer.Correct {
		g.streaks[difficulty] = 0
		return Outcome{Explanation: answer.Explanation}, nil
	}

	g.cardsWon++
	g.score += answer.Points
	g.streaks[difficulty]++
	return Outcome{IsCorrect: true, Points: answer.Points, Explanation: answer.Explanation}, nil
}

// StreakBonus is the bonus the player would earn if the game ended now.
func (g *Game) StreakBonus() int {
	bonus := 0
	for difficulty, streak := range g.streaks {
		if streak >= 3 {
			bonus += (streak - 2) * bonusMultiplier[difficulty]
		}
	}
	return bonus
}

// Accuracy is the percentage of played cards answered correctly.
func (g *Game) Accuracy() float64 {
	if g.cardsPlayed == 0 {
		return 0
	}
	return float64(g.cardsWon) / float64(g.cardsPlayed) * 100
}

// Stats reports the current aggregates.
func (g *Game) Stats() chainquiz.Stats {
	return chainquiz.Stats{
		PlayerName:  g.playerName,
		TotalScore:  g.score,
		Accuracy:    g.Accuracy(),
		CardsPlayed: g.cardsPlayed,
		CardsWon:    g.cardsWon,
	}
}

// End applies the streak bonus and returns the final summary. Rank is
// left nil; the caller fills it in after recording the score.
func (g *Game) End() chainquiz.FinalSummary {
	bonus := g.StreakBonus()
	g.score += bonus
	return chainquiz.FinalSummary{
		PlayerName:         g.playerName,
		FinalScore:         g.score,
		Accuracy:           g.Accuracy(),
		CardsPlayed:        g.cardsPlayed,
		CardsWon:           g.cardsWon,
		StreakBonusApplied: bonus,
	}
}
