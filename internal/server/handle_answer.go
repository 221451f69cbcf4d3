package server

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/decklab/chainquiz/internal/chainquiz"
	"github.com/decklab/chainquiz/internal/engine"
)

type AnswerRequest struct {
	AnswerIndex *int `json:"answer_index"`
}

func handleAnswer(games *Games) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AnswerRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.AnswerIndex == nil {
			writeError(w, http.StatusBadRequest, "answer required")
			return
		}

		var (
			result    chainquiz.Result
			answerErr error
		)
		found := games.Do(chi.URLParam(r, "gameID"), func(g *engine.Game) {
			var out engine.Outcome
			out, answerErr = g.Answer(*req.AnswerIndex)
			if answerErr != nil {
				return
			}
			stats := g.Stats()
			result = chainquiz.Result{
				IsCorrect:    out.IsCorrect,
				PointsEarned: out.Points,
				Explanation:  out.Explanation,
				TotalScore:   stats.TotalScore,
				Accuracy:     stats.Accuracy,
				CardsWon:     stats.CardsWon,
				CardsPlayed:  stats.CardsPlayed,
				StreakBonus:  g.StreakBonus(),
			}
		})
		if !found {
			writeError(w, http.StatusNotFound, "game not found")
			return
		}
		if errors.Is(answerErr, engine.ErrNoCard) {
			writeError(w, http.StatusConflict, "no card to answer, draw one first")
			return
		}
		if errors.Is(answerErr, engine.ErrIndexOutOfRange) {
			writeError(w, http.StatusBadRequest, "answer index out of range")
			return
		}
		if answerErr != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}
