package server

import (
	"context"
	"database/sql"
	"errors"

	"github.com/decklab/chainquiz/internal/chainquiz"
)

// SQLiteStore keeps every finished game as one scores row; a player who
// plays twice appears twice, ranked by their better entry.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) RecordScore(ctx context.Context, rec chainquiz.ScoreRecord) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO scores (name, score, accuracy, cards_played)
		VALUES (?, ?, ?, ?)
	`, rec.Name, rec.Score, rec.Accuracy, rec.CardsPlayed)
	return err
}

func (s *SQLiteStore) Leaderboard(ctx context.Context, limit int) ([]chainquiz.LeaderboardEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name, score, accuracy, cards_played
		FROM scores
		ORDER BY score DESC, accuracy DESC, cards_played DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []chainquiz.LeaderboardEntry{}
	for rows.Next() {
		var e chainquiz.LeaderboardEntry
		if err := rows.Scan(&e.Name, &e.Score, &e.Accuracy, &e.CardsPlayed); err != nil {
			return nil, err
		}
		e.Rank = len(entries) + 1
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *SQLiteStore) PlayerRank(ctx context.Context, name string) (int, error) {
	var rank int
	err := s.db.QueryRowContext(ctx, `
		SELECT pos FROM (
			SELECT name,
				ROW_NUMBER() OVER (ORDER BY score DESC, accuracy DESC, cards_played DESC) AS pos
			FROM scores
		)
		WHERE lower(name) = lower(?)
		ORDER BY pos
		LIMIT 1
	`, name).Scan(&rank)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrNotFound
	}
	return rank, err
}
