package server

import (
	"net/http"

	"github.com/decklab/chainquiz/internal/chainquiz"
)

const leaderboardSize = 10

type LeaderboardResponse struct {
	Leaderboard []chainquiz.LeaderboardEntry `json:"leaderboard"`
}

func handleLeaderboard(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := store.Leaderboard(r.Context(), leaderboardSize)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		writeJSON(w, http.StatusOK, LeaderboardResponse{Leaderboard: entries})
	}
}
