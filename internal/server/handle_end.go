package server

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/decklab/chainquiz/internal/chainquiz"
)

func handleEndGame(logger *slog.Logger, games *Games, store Store, broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		game, ok := games.Remove(chi.URLParam(r, "gameID"))
		if !ok {
			writeError(w, http.StatusNotFound, "game not found")
			return
		}

		summary := game.End()

		err := store.RecordScore(r.Context(), chainquiz.ScoreRecord{
			Name:        summary.PlayerName,
			Score:       summary.FinalScore,
			Accuracy:    summary.Accuracy,
			CardsPlayed: summary.CardsPlayed,
		})
		if err != nil {
			// The game is over either way; the player just goes unranked.
			logger.Error("recording score failed", "player", summary.PlayerName, "error", err)
			writeJSON(w, http.StatusOK, summary)
			return
		}

		rank, err := store.PlayerRank(r.Context(), summary.PlayerName)
		if err != nil && !errors.Is(err, ErrNotFound) {
			logger.Error("rank lookup failed", "player", summary.PlayerName, "error", err)
		}
		if err == nil {
			summary.Rank = &rank
		}

		broker.Publish(Event{
			Type:  "score_recorded",
			Name:  summary.PlayerName,
			Score: summary.FinalScore,
		})

		writeJSON(w, http.StatusOK, summary)
	}
}
