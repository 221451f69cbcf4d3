// Package chainquiz defines the core domain types shared by the session
// controller, the API client, and the game service. It has zero external
// dependencies — everything here is pure Go.
package chainquiz

import "fmt"

// Difficulty is the enumerated difficulty of a drawn card. It is an
// explicit player choice before every draw; unrecognized values fail
// closed in ParseDifficulty rather than silently falling through.
type Difficulty string

const (
	DifficultyEasy         Difficulty = "easy"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyHard         Difficulty = "hard"
)

// Difficulties lists all valid difficulties in ascending order.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyIntermediate, DifficultyHard}
}

// ParseDifficulty maps a wire string onto a Difficulty, rejecting
// anything outside the enumeration.
func ParseDifficulty(s string) (Difficulty, error) {
	switch Difficulty(s) {
	case DifficultyEasy, DifficultyIntermediate, DifficultyHard:
		return Difficulty(s), nil
	}
	return "", fmt.Errorf("unknown difficulty %q", s)
}

// Answer is one selectable option on a card. Its position within
// Card.Answers is the answer index — the only identifier sent back to
// the service, so the order must be preserved exactly as received.
type Answer struct {
	Text string `json:"text"`
}

// Card is a single strategy prompt drawn from the service.
type Card struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Category    string     `json:"category,omitempty"`
	Difficulty  Difficulty `json:"difficulty"`
	Impact      string     `json:"impact"`
	Answers     []Answer   `json:"answers"`
}

// Result is the authoritative outcome of an answer submission. Score and
// accuracy overwrite the client's local view; the client never computes
// them itself.
type Result struct {
	IsCorrect    bool    `json:"is_correct"`
	PointsEarned int     `json:"points_earned"`
	Explanation  string  `json:"explanation"`
	TotalScore   int     `json:"total_score"`
	Accuracy     float64 `json:"accuracy"`
	CardsWon     int     `json:"cards_won"`
	CardsPlayed  int     `json:"cards_played"`
	StreakBonus  int     `json:"streak_bonus"`
}

// Stats is the server-reported aggregate view of a running session.
type Stats struct {
	PlayerName  string  `json:"player_name,omitempty"`
	TotalScore  int     `json:"total_score"`
	Accuracy    float64 `json:"accuracy"`
	CardsPlayed int     `json:"cards_played"`
	CardsWon    int     `json:"cards_won,omitempty"`
}

// FinalSummary is produced exactly once, when a session ends. Rank is nil
// when the score did not place on the leaderboard.
type FinalSummary struct {
	PlayerName         string  `json:"player_name"`
	FinalScore         int     `json:"final_score"`
	Accuracy           float64 `json:"accuracy"`
	CardsPlayed        int     `json:"cards_played"`
	CardsWon           int     `json:"cards_won"`
	StreakBonusApplied int     `json:"streak_bonus_applied"`
	Rank               *int    `json:"rank"`
}

// LeaderboardEntry is one row of the persisted leaderboard.
type LeaderboardEntry struct {
	Rank        int     `json:"rank"`
	Name        string  `json:"name"`
	Score       int     `json:"score"`
	Accuracy    float64 `json:"accuracy"`
	CardsPlayed int     `json:"cards_played"`
}

// ScoreRecord is a finished game as persisted by the leaderboard store.
type ScoreRecord struct {
	Name        string
	Score       int
	Accuracy    float64
	CardsPlayed int
}
