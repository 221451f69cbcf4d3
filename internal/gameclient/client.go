// Package gameclient is the HTTP client for the game service API. It
// implements session.GameService: JSON bodies, snake_case fields, unknown
// response fields ignored, required fields fail-fast.
package gameclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/decklab/chainquiz/internal/chainquiz"
	"github.com/decklab/chainquiz/internal/session"
)

// APIError is a response the service produced deliberately: it reached
// the service and was refused. 4xx statuses mean the logical request was
// rejected (typically an unknown game id); 5xx is a service fault and is
// treated like any other transport failure by callers.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("service returned %d: %s", e.Status, e.Message)
}

func (e *APIError) ServiceRejected() bool {
	return e.Status >= 400 && e.Status < 500
}

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) StartGame(ctx context.Context, playerName string) (session.StartedGame, error) {
	req := struct {
		PlayerName string `json:"player_name"`
	}{PlayerName: playerName}

	var resp struct {
		GameID     string `json:"game_id"`
		PlayerName string `json:"player_name"`
	}
	if err := c.do(ctx, http.MethodPost, "/start-game", req, &resp); err != nil {
		return session.StartedGame{}, err
	}
	if resp.GameID == "" {
		return session.StartedGame{}, fmt.Errorf("start-game response missing game_id")
	}
	return session.StartedGame{GameID: resp.GameID, PlayerName: resp.PlayerName}, nil
}

func (c *Client) DrawCard(ctx context.Context, gameID string, difficulty chainquiz.Difficulty) (chainquiz.Card, error) {
	path := "/draw-card/" + url.PathEscape(gameID) + "/" + url.PathEscape(string(difficulty))

	var card chainquiz.Card
	if err := c.do(ctx, http.MethodPost, path, nil, &card); err != nil {
		return chainquiz.Card{}, err
	}
	if card.Title == "" || len(card.Answers) == 0 {
		return chainquiz.Card{}, fmt.Errorf("draw-card response missing title or answers")
	}
	return card, nil
}

func (c *Client) SubmitAnswer(ctx context.Context, gameID string, answerIndex int) (chainquiz.Result, error) {
	req := struct {
		AnswerIndex int `json:"answer_index"`
	}{AnswerIndex: answerIndex}

	var resp struct {
		IsCorrect    *bool   `json:"is_correct"`
		PointsEarned int     `json:"points_earned"`
		Explanation  *string `json:"explanation"`
		TotalScore   int     `json:"total_score"`
		Accuracy     float64 `json:"accuracy"`
		CardsWon     int     `json:"cards_won"`
		CardsPlayed  int     `json:"cards_played"`
		StreakBonus  int     `json:"streak_bonus"`
	}
	if err := c.do(ctx, http.MethodPost, "/answer/"+url.PathEscape(gameID), req, &resp); err != nil {
		return chainquiz.Result{}, err
	}
	if resp.IsCorrect == nil || resp.Explanation == nil {
		return chainquiz.Result{}, fmt.Errorf("answer response missing is_correct or explanation")
	}
	return chainquiz.Result{
		IsCorrect:    *resp.IsCorrect,
		PointsEarned: resp.PointsEarned,
		Explanation:  *resp.Explanation,
		TotalScore:   resp.TotalScore,
		Accuracy:     resp.Accuracy,
		CardsWon:     resp.CardsWon,
		CardsPlayed:  resp.CardsPlayed,
		StreakBonus:  resp.StreakBonus,
	}, nil
}

func (c *Client) Stats(ctx context.Context, gameID string) (chainquiz.Stats, error) {
	var stats chainquiz.Stats
	if err := c.do(ctx, http.MethodGet, "/stats/"+url.PathEscape(gameID), nil, &stats); err != nil {
		return chainquiz.Stats{}, err
	}
	return stats, nil
}

func (c *Client) EndGame(ctx context.Context, gameID string) (chainquiz.FinalSummary, error) {
	var resp struct {
		PlayerName         string  `json:"player_name"`
		FinalScore         *int    `json:"final_score"`
		Accuracy           float64 `json:"accuracy"`
		CardsPlayed        int     `json:"cards_played"`
		CardsWon           int     `json:"cards_won"`
		StreakBonusApplied int     `json:"streak_bonus_applied"`
		Rank               *int    `json:"rank"`
	}
	if err := c.do(ctx, http.MethodPost, "/end-game/"+url.PathEscape(gameID), nil, &resp); err != nil {
		return chainquiz.FinalSummary{}, err
	}
	if resp.FinalScore == nil {
		return chainquiz.FinalSummary{}, fmt.Errorf("end-game response missing final_score")
	}
	return chainquiz.FinalSummary{
		PlayerName:         resp.PlayerName,
		FinalScore:         *resp.FinalScore,
		Accuracy:           resp.Accuracy,
		CardsPlayed:        resp.CardsPlayed,
		CardsWon:           resp.CardsWon,
		StreakBonusApplied: resp.StreakBonusApplied,
		Rank:               resp.Rank,
	}, nil
}

func (c *Client) Leaderboard(ctx context.Context) ([]chainquiz.LeaderboardEntry, error) {
	var resp struct {
		Leaderboard []chainquiz.LeaderboardEntry `json:"leaderboard"`
	}
	if err := c.do(ctx, http.MethodGet, "/leaderboard", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Leaderboard, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("calling %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var e struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&e); err != nil || e.Error == "" {
			e.Error = http.StatusText(resp.StatusCode)
		}
		return &APIError{Status: resp.StatusCode, Message: e.Error}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s response: %w", path, err)
	}
	return nil
}
