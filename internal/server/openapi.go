package server

import (
	"encoding/json"
	"net/http"

	openapi "github.com/swaggest/openapi-go"
	"github.com/swaggest/openapi-go/openapi3"

	"github.com/decklab/chainquiz/internal/chainquiz"
)

// ErrorResponse is returned for all error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

func newOpenAPISpec() *openapi3.Spec {
	r := openapi3.NewReflector()
	r.Spec.Info.Title = "ChainQuiz API"
	r.Spec.Info.Version = "0.1.0"
	r.Spec.Info.WithDescription("Game service API for the supply chain strategy card game.")

	// GET /healthz
	getHealthz, _ := r.NewOperationContext(http.MethodGet, "/healthz")
	getHealthz.SetSummary("Health check")
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusServiceUnavailable))
	_ = r.AddOperation(getHealthz)

	// POST /start-game
	postStart, _ := r.NewOperationContext(http.MethodPost, "/start-game")
	postStart.SetSummary("Start a game")
	postStart.SetDescription("Creates a session for the named player and returns its game id.")
	postStart.AddReqStructure(StartGameRequest{})
	postStart.AddRespStructure(StartGameResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postStart.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(postStart)

	// POST /draw-card/{gameID}/{difficulty}
	postDraw, _ := r.NewOperationContext(http.MethodPost, "/draw-card/{gameID}/{difficulty}")
	postDraw.SetSummary("Draw a card")
	postDraw.SetDescription("Draws a random card of the given difficulty (easy, intermediate, hard).")
	postDraw.AddRespStructure(chainquiz.Card{}, openapi.WithHTTPStatus(http.StatusOK))
	postDraw.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	postDraw.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(postDraw)

	// POST /answer/{gameID}
	postAnswer, _ := r.NewOperationContext(http.MethodPost, "/answer/{gameID}")
	postAnswer.SetSummary("Submit answer")
	postAnswer.SetDescription("Scores the live card by answer position and retires it.")
	postAnswer.AddReqStructure(AnswerRequest{})
	postAnswer.AddRespStructure(chainquiz.Result{}, openapi.WithHTTPStatus(http.StatusOK))
	postAnswer.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	postAnswer.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	postAnswer.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(postAnswer)

	// GET /stats/{gameID}
	getStats, _ := r.NewOperationContext(http.MethodGet, "/stats/{gameID}")
	getStats.SetSummary("Get session stats")
	getStats.AddRespStructure(chainquiz.Stats{}, openapi.WithHTTPStatus(http.StatusOK))
	getStats.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(getStats)

	// POST /end-game/{gameID}
	postEnd, _ := r.NewOperationContext(http.MethodPost, "/end-game/{gameID}")
	postEnd.SetSummary("End a game")
	postEnd.SetDescription("Applies the streak bonus, records the score, and returns the final summary with optional rank.")
	postEnd.AddRespStructure(chainquiz.FinalSummary{}, openapi.WithHTTPStatus(http.StatusOK))
	postEnd.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(postEnd)

	// GET /leaderboard
	getBoard, _ := r.NewOperationContext(http.MethodGet, "/leaderboard")
	getBoard.SetSummary("Top scores")
	getBoard.AddRespStructure(LeaderboardResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getBoard)

	// GET /leaderboard/events
	getEvents, _ := r.NewOperationContext(http.MethodGet, "/leaderboard/events")
	getEvents.SetSummary("Leaderboard event stream")
	getEvents.SetDescription("Server-Sent Events stream of leaderboard changes.")
	getEvents.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK),
		openapi.WithContentType("text/event-stream"))
	_ = r.AddOperation(getEvents)

	return r.Spec
}

func handleOpenAPI() http.HandlerFunc {
	spec := newOpenAPISpec()

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		json.NewEncoder(w).Encode(spec)
	}
}
