package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/decklab/chainquiz/internal/chainquiz"
	"github.com/decklab/chainquiz/internal/deck"
	"github.com/decklab/chainquiz/internal/engine"
)

func handleDrawCard(games *Games) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		difficulty, err := chainquiz.ParseDifficulty(chi.URLParam(r, "difficulty"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid difficulty")
			return
		}

		var (
			card    deck.Card
			drawErr error
		)
		found := games.Do(chi.URLParam(r, "gameID"), func(g *engine.Game) {
			card, drawErr = g.Draw(difficulty)
		})
		if !found {
			writeError(w, http.StatusNotFound, "game not found")
			return
		}
		if drawErr != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		writeJSON(w, http.StatusOK, card.Prompt())
	}
}
