package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/decklab/chainquiz/internal/chainquiz"
	"github.com/decklab/chainquiz/internal/engine"
)

func handleStats(games *Games) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var stats chainquiz.Stats
		found := games.Do(chi.URLParam(r, "gameID"), func(g *engine.Game) {
			stats = g.Stats()
		})
		if !found {
			writeError(w, http.StatusNotFound, "game not found")
			return
		}

		writeJSON(w, http.StatusOK, stats)
	}
}
