package term

import (
	"bytes"
	"strings"
	"testing"

	"github.com/decklab/chainquiz/internal/chainquiz"
)

func TestShowFinalSummaryUnranked(t *testing.T) {
	var buf bytes.Buffer
	p := NewPresenter(&buf)

	p.ShowFinalSummary(chainquiz.FinalSummary{PlayerName: "Ada", FinalScore: 12})

	out := buf.String()
	if !strings.Contains(out, "Unranked") {
		t.Fatalf("expected Unranked in output, got:\n%s", out)
	}
	if strings.Contains(out, "#0") {
		t.Fatalf("nil rank must not render as #0, got:\n%s", out)
	}
}

func TestShowFinalSummaryRanked(t *testing.T) {
	var buf bytes.Buffer
	p := NewPresenter(&buf)

	rank := 3
	p.ShowFinalSummary(chainquiz.FinalSummary{PlayerName: "Ada", Rank: &rank})

	if !strings.Contains(buf.String(), "#3") {
		t.Fatalf("expected rank #3 in output, got:\n%s", buf.String())
	}
}

func TestShowGameNumbersAnswersFromOne(t *testing.T) {
	var buf bytes.Buffer
	p := NewPresenter(&buf)

	p.ShowGame(chainquiz.Card{
		Title:      "Port congestion",
		Difficulty: chainquiz.DifficultyEasy,
		Answers: []chainquiz.Answer{
			{Text: "Reroute"},
			{Text: "Wait it out"},
		},
	})

	out := buf.String()
	if !strings.Contains(out, "1) Reroute") || !strings.Contains(out, "2) Wait it out") {
		t.Fatalf("answers should be numbered from 1, got:\n%s", out)
	}
}

func TestShowLeaderboardEmpty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPresenter(&buf)

	p.ShowLeaderboard(nil)

	if !strings.Contains(buf.String(), "No scores yet") {
		t.Fatalf("expected empty-board message, got:\n%s", buf.String())
	}
}
