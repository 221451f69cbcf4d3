// Package term renders controller state to a terminal. It is a pure
// sink: it writes what it is told and holds no game state of its own.
package term

import (
	"fmt"
	"io"
	"strings"

	"github.com/decklab/chainquiz/internal/chainquiz"
)

type Presenter struct {
	out io.Writer
}

func NewPresenter(out io.Writer) *Presenter {
	return &Presenter{out: out}
}

func (p *Presenter) ShowMenu() {
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, "=== ChainQuiz: Supply Chain Strategy ===")
	fmt.Fprintln(p.out, "  start <name>   start a new game")
	fmt.Fprintln(p.out, "  board          show the leaderboard")
	fmt.Fprintln(p.out, "  quit           exit")
}

func (p *Presenter) ShowGame(card chainquiz.Card) {
	fmt.Fprintln(p.out)
	fmt.Fprintf(p.out, "[%s] %s\n", strings.ToUpper(string(card.Difficulty)), card.Title)
	fmt.Fprintln(p.out, card.Description)
	if card.Impact != "" {
		fmt.Fprintf(p.out, "Why it matters: %s\n", card.Impact)
	}
	for i, a := range card.Answers {
		fmt.Fprintf(p.out, "  %d) %s\n", i+1, a.Text)
	}
	fmt.Fprintln(p.out, "Answer with: answer <number>")
}

func (p *Presenter) ShowStats(stats chainquiz.Stats) {
	fmt.Fprintf(p.out, "Score %d | Accuracy %.1f%% | Cards %d\n",
		stats.TotalScore, stats.Accuracy, stats.CardsPlayed)
}

func (p *Presenter) ShowResult(result chainquiz.Result) {
	fmt.Fprintln(p.out)
	if result.IsCorrect {
		fmt.Fprintf(p.out, "CORRECT! +%d points\n", result.PointsEarned)
	} else {
		fmt.Fprintln(p.out, "Not quite.")
	}
	fmt.Fprintln(p.out, result.Explanation)
	fmt.Fprintln(p.out, "Next: draw easy|intermediate|hard, or quit")
}

func (p *Presenter) ShowFinalSummary(summary chainquiz.FinalSummary) {
	fmt.Fprintln(p.out)
	fmt.Fprintf(p.out, "Game over, %s.\n", summary.PlayerName)
	fmt.Fprintf(p.out, "Final score:  %d\n", summary.FinalScore)
	fmt.Fprintf(p.out, "Accuracy:     %.1f%%\n", summary.Accuracy)
	fmt.Fprintf(p.out, "Cards played: %d (%d won)\n", summary.CardsPlayed, summary.CardsWon)
	fmt.Fprintf(p.out, "Streak bonus: %d\n", summary.StreakBonusApplied)
	if summary.Rank != nil {
		fmt.Fprintf(p.out, "Rank:         #%d\n", *summary.Rank)
	} else {
		fmt.Fprintln(p.out, "Rank:         Unranked")
	}
}

func (p *Presenter) ShowLeaderboard(entries []chainquiz.LeaderboardEntry) {
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, "=== Leaderboard ===")
	if len(entries) == 0 {
		fmt.Fprintln(p.out, "No scores yet. Play a game!")
		return
	}
	fmt.Fprintf(p.out, "%-5s %-20s %8s %10s %7s\n", "Rank", "Name", "Score", "Accuracy", "Cards")
	for _, e := range entries {
		fmt.Fprintf(p.out, "#%-4d %-20s %8d %9.1f%% %7d\n",
			e.Rank, e.Name, e.Score, e.Accuracy, e.CardsPlayed)
	}
}

func (p *Presenter) ShowError(msg string) {
	fmt.Fprintf(p.out, "! %s\n", msg)
}
