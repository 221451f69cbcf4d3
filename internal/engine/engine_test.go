package engine

import (
	"errors"
	"testing"

	"github.com/decklab/chainquiz/internal/chainquiz"
	"github.com/decklab/chainquiz/internal/deck"
)

// testCatalog builds a deterministic single-card-per-difficulty catalog so
// draws don't depend on randomness.
func testCatalog() map[chainquiz.Difficulty][]deck.Card {
	card := func(title string, d chainquiz.Difficulty, points int) deck.Card {
		return deck.Card{
			Title:      title,
			Difficulty: d,
			Answers: []deck.Answer{
				{Text: "A) right", Correct: true, Points: points, Explanation: "yes"},
				{Text: "B) wrong", Explanation: "no"},
			},
		}
	}
	return map[chainquiz.Difficulty][]deck.Card{
		chainquiz.DifficultyEasy:         {card("e1", chainquiz.DifficultyEasy, 3)},
		chainquiz.DifficultyIntermediate: {card("i1", chainquiz.DifficultyIntermediate, 6)},
		chainquiz.DifficultyHard:         {card("h1", chainquiz.DifficultyHard, 10)},
	}
}

func TestAnswerScoring(t *testing.T) {
	g := NewGame("Maria", testCatalog())

	if _, err := g.Draw(chainquiz.DifficultyEasy); err != nil {
		t.Fatalf("draw: %v", err)
	}

	out, err := g.Answer(0)
	if err != nil {
		t.Fatalf("answer: %v", err)
	}
	if !out.IsCorrect || out.Points != 3 {
		t.Errorf("outcome = %+v, want correct with 3 points", out)
	}

	stats := g.Stats()
	if stats.TotalScore != 3 || stats.CardsPlayed != 1 || stats.CardsWon != 1 {
		t.Errorf("stats = %+v, want score 3, played 1, won 1", stats)
	}
	if stats.Accuracy != 100 {
		t.Errorf("accuracy = %v, want 100", stats.Accuracy)
	}
}

func TestAnswerWrongResetsStreak(t *testing.T) {
	g := NewGame("Maria", testCatalog())

	for range 3 {
		if _, err := g.Draw(chainquiz.DifficultyEasy); err != nil {
			t.Fatalf("draw: %v", err)
		}
		if _, err := g.Answer(0); err != nil {
			t.Fatalf("answer: %v", err)
		}
	}
	if got := g.StreakBonus(); got != 1 {
		t.Errorf("streak bonus after 3 correct = %d, want 1", got)
	}

	if _, err := g.Draw(chainquiz.DifficultyEasy); err != nil {
		t.Fatalf("draw: %v", err)
	}
	out, err := g.Answer(1)
	if err != nil {
		t.Fatalf("answer: %v", err)
	}
	if out.IsCorrect || out.Points != 0 {
		t.Errorf("outcome = %+v, want incorrect with 0 points", out)
	}
	if got := g.StreakBonus(); got != 0 {
		t.Errorf("streak bonus after wrong answer = %d, want 0", got)
	}
}

func TestStreakBonusScalesWithDifficulty(t *testing.T) {
	g := NewGame("Maria", testCatalog())

	for range 4 {
		if _, err := g.Draw(chainquiz.DifficultyHard); err != nil {
			t.Fatalf("draw: %v", err)
		}
		if _, err := g.Answer(0); err != nil {
			t.Fatalf("answer: %v", err)
		}
	}

	// (4-2) * hard multiplier 5.
	if got := g.StreakBonus(); got != 10 {
		t.Errorf("streak bonus = %d, want 10", got)
	}
}

func TestAnswerGuards(t *testing.T) {
	g := NewGame("Maria", testCatalog())

	if _, err := g.Answer(0); !errors.Is(err, ErrNoCard) {
		t.Errorf("answer without draw: err = %v, want ErrNoCard", err)
	}

	if _, err := g.Draw(chainquiz.DifficultyEasy); err != nil {
		t.Fatalf("draw: %v", err)
	}
	if _, err := g.Answer(5); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("out-of-range answer: err = %v, want ErrIndexOutOfRange", err)
	}

	// A card is retired once answered; answering again needs a new draw.
	if _, err := g.Answer(0); err != nil {
		t.Fatalf("answer: %v", err)
	}
	if _, err := g.Answer(0); !errors.Is(err, ErrNoCard) {
		t.Errorf("second answer: err = %v, want ErrNoCard", err)
	}
}

func TestDrawResetsExhaustedPool(t *testing.T) {
	g := NewGame("Maria", testCatalog())

	first, err := g.Draw(chainquiz.DifficultyEasy)
	if err != nil {
		t.Fatalf("draw: %v", err)
	}
	if _, err := g.Answer(0); err != nil {
		t.Fatalf("answer: %v", err)
	}

	// Single-card pool: the second draw must recycle the same card.
	second, err := g.Draw(chainquiz.DifficultyEasy)
	if err != nil {
		t.Fatalf("second draw: %v", err)
	}
	if second.Title != first.Title {
		t.Errorf("recycled card = %q, want %q", second.Title, first.Title)
	}
	if g.Stats().CardsPlayed != 2 {
		t.Errorf("cards played = %d, want 2", g.Stats().CardsPlayed)
	}
}

func TestEndAppliesBonus(t *testing.T) {
	g := NewGame("Maria", testCatalog())

	for range 3 {
		if _, err := g.Draw(chainquiz.DifficultyEasy); err != nil {
			t.Fatalf("draw: %v", err)
		}
		if _, err := g.Answer(0); err != nil {
			t.Fatalf("answer: %v", err)
		}
	}

	sum := g.End()
	if sum.StreakBonusApplied != 1 {
		t.Errorf("bonus applied = %d, want 1", sum.StreakBonusApplied)
	}
	if sum.FinalScore != 10 { // 3*3 + 1 bonus
		t.Errorf("final score = %d, want 10", sum.FinalScore)
	}
	if sum.Rank != nil {
		t.Errorf("rank = %v, want nil before recording", *sum.Rank)
	}
	if sum.CardsWon != 3 || sum.CardsPlayed != 3 {
		t.Errorf("summary = %+v, want 3 won of 3 played", sum)
	}
}

func TestCatalogPromptHidesAnswerKey(t *testing.T) {
	for difficulty, cards := range deck.Catalog() {
		if len(cards) == 0 {
			t.Errorf("no cards for difficulty %q", difficulty)
		}
		for _, c := range cards {
			prompt := c.Prompt()
			if len(prompt.Answers) != len(c.Answers) {
				t.Errorf("%s: prompt has %d answers, card has %d", c.Title, len(prompt.Answers), len(c.Answers))
			}
			for i, a := range prompt.Answers {
				if a.Text != c.Answers[i].Text {
					t.Errorf("%s: answer %d reordered", c.Title, i)
				}
			}
		}
	}
}
