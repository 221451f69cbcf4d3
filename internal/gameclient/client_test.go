package gameclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/decklab/chainquiz/internal/chainquiz"
)

func TestStartGame(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/start-game" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		if body["player_name"] != "Alice" {
			t.Errorf("player_name = %q, want Alice", body["player_name"])
		}
		// Extra fields must be ignored by the client.
		json.NewEncoder(w).Encode(map[string]string{
			"game_id":     "g1",
			"player_name": "Alice",
			"message":     "Welcome, Alice!",
		})
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	started, err := c.StartGame(context.Background(), "Alice")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if started.GameID != "g1" || started.PlayerName != "Alice" {
		t.Errorf("started = %+v, want g1/Alice", started)
	}
}

func TestStartGameRequiresGameID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"player_name": "Alice"})
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	if _, err := c.StartGame(context.Background(), "Alice"); err == nil {
		t.Fatal("expected error for response without game_id")
	}
}

func TestDrawCardPreservesAnswerOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/draw-card/g1/intermediate" {
			t.Errorf("path = %q", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"title":      "Sourcing Complexity",
			"difficulty": "intermediate",
			"answers": []map[string]string{
				{"text": "A) first"}, {"text": "B) second"}, {"text": "C) third"},
			},
		})
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	card, err := c.DrawCard(context.Background(), "g1", chainquiz.DifficultyIntermediate)
	if err != nil {
		t.Fatalf("draw: %v", err)
	}
	want := []string{"A) first", "B) second", "C) third"}
	for i, a := range card.Answers {
		if a.Text != want[i] {
			t.Errorf("answer %d = %q, want %q", i, a.Text, want[i])
		}
	}
}

func TestSubmitAnswerSendsIndex(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/answer/g1" {
			t.Errorf("path = %q", r.URL.Path)
		}
		var body map[string]int
		json.NewDecoder(r.Body).Decode(&body)
		if body["answer_index"] != 1 {
			t.Errorf("answer_index = %d, want 1", body["answer_index"])
		}
		json.NewEncoder(w).Encode(map[string]any{
			"is_correct":    true,
			"points_earned": 10,
			"total_score":   10,
			"accuracy":      100,
			"cards_played":  1,
			"explanation":   "good call",
		})
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	result, err := c.SubmitAnswer(context.Background(), "g1", 1)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !result.IsCorrect || result.PointsEarned != 10 || result.Accuracy != 100 {
		t.Errorf("result = %+v", result)
	}
}

func TestSubmitAnswerRequiresResultFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// A 200 with an empty body must not pass for a scored answer.
		json.NewEncoder(w).Encode(map[string]any{})
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	if _, err := c.SubmitAnswer(context.Background(), "g1", 0); err == nil {
		t.Fatal("expected error for response without is_correct and explanation")
	}
}

func TestEndGameRequiresFinalScore(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"player_name": "Alice"})
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	if _, err := c.EndGame(context.Background(), "g1"); err == nil {
		t.Fatal("expected error for response without final_score")
	}
}

func TestEndGameNullRank(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"player_name": "Alice",
			"final_score": 7,
			"rank":        nil,
		})
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	summary, err := c.EndGame(context.Background(), "g1")
	if err != nil {
		t.Fatalf("end: %v", err)
	}
	if summary.Rank != nil {
		t.Errorf("rank = %d, want nil for null rank", *summary.Rank)
	}
}

func TestErrorResponsesBecomeAPIErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "game not found"})
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	_, err := c.Stats(context.Background(), "gone")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v, want *APIError", err)
	}
	if apiErr.Status != http.StatusNotFound || apiErr.Message != "game not found" {
		t.Errorf("apiErr = %+v", apiErr)
	}
	if !apiErr.ServiceRejected() {
		t.Error("404 must count as a service rejection")
	}
}

func TestServerFaultIsNotARejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	_, err := c.Stats(context.Background(), "g1")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v, want *APIError", err)
	}
	if apiErr.ServiceRejected() {
		t.Error("502 must surface as a transport-class failure, not a rejection")
	}
}

func TestLeaderboard(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/leaderboard" {
			t.Errorf("path = %q", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"leaderboard": []map[string]any{
				{"rank": 1, "name": "Alice", "score": 42, "accuracy": 90.0, "cards_played": 5},
				{"rank": 2, "name": "Bob", "score": 30, "accuracy": 80.0, "cards_played": 4},
			},
		})
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	entries, err := c.Leaderboard(context.Background())
	if err != nil {
		t.Fatalf("leaderboard: %v", err)
	}
	if len(entries) != 2 || entries[0].Name != "Alice" || entries[1].Rank != 2 {
		t.Errorf("entries = %+v", entries)
	}
}
