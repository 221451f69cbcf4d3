// Package session implements the client-side state machine for one
// player's game: it gates when cards may be drawn and answers submitted,
// keeps the local view of score and accuracy in sync with the service,
// and drives the presentation sink.
package session

import (
	"context"
	"errors"

	"github.com/decklab/chainquiz/internal/chainquiz"
)

// State is the controller's position in the session lifecycle.
type State string

const (
	StateNoSession    State = "no_session"
	StateAwaitingCard State = "awaiting_card"
	StateCardShown    State = "card_shown"
	StateAnswered     State = "answered"
	StateEnded        State = "ended"
)

var (
	// ErrInvalidInput rejects bad caller input (empty name, out-of-range
	// answer index) before any request is made.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoSession is returned when an operation needs an active session
	// and none exists, or the session has already ended.
	ErrNoSession = errors.New("no active session")
)

// StartedGame is the service's acknowledgement of a new session.
type StartedGame struct {
	GameID     string
	PlayerName string
}

// GameService is the remote authority for cards, scoring, and the
// leaderboard. Every response field is authoritative: the controller
// overwrites its local view, never merges.
type GameService interface {
	StartGame(ctx context.Context, playerName string) (StartedGame, error)
	DrawCard(ctx context.Context, gameID string, difficulty chainquiz.Difficulty) (chainquiz.Card, error)
	SubmitAnswer(ctx context.Context, gameID string, answerIndex int) (chainquiz.Result, error)
	Stats(ctx context.Context, gameID string) (chainquiz.Stats, error)
	EndGame(ctx context.Context, gameID string) (chainquiz.FinalSummary, error)
	Leaderboard(ctx context.Context) ([]chainquiz.LeaderboardEntry, error)
}

// Presenter is the rendering boundary. It receives commands only; user
// intents flow back through controller method calls.
type Presenter interface {
	ShowMenu()
	ShowGame(card chainquiz.Card)
	ShowStats(stats chainquiz.Stats)
	ShowResult(result chainquiz.Result)
	ShowFinalSummary(summary chainquiz.FinalSummary)
	ShowLeaderboard(entries []chainquiz.LeaderboardEntry)
	ShowError(msg string)
}

// rejection is implemented by errors meaning the service handled the
// request and refused it (e.g. unknown game id). The remote session is
// presumed gone, so the controller terminates locally.
type rejection interface {
	ServiceRejected() bool
}

func isRejection(err error) bool {
	var r rejection
	return errors.As(err, &r) && r.ServiceRejected()
}
