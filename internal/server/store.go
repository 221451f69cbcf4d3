package server

import (
	"context"
	"errors"

	"github.com/decklab/chainquiz/internal/chainquiz"
)

var ErrNotFound = errors.New("not found")

// Store persists finished games and serves the leaderboard. Ranking is by
// score, then accuracy, then cards played, all descending.
type Store interface {
	RecordScore(ctx context.Context, rec chainquiz.ScoreRecord) error
	Leaderboard(ctx context.Context, limit int) ([]chainquiz.LeaderboardEntry, error)
	PlayerRank(ctx context.Context, name string) (int, error)
}
