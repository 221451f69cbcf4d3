package server

import (
	"database/sql"
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/swaggest/swgui/v5emb"
)

func addRoutes(r chi.Router, logger *slog.Logger, games *Games, store Store, db *sql.DB) {
	broker := NewBroker()

	r.Get("/openapi.json", handleOpenAPI())
	r.Mount("/docs", v5emb.New("ChainQuiz API", "/openapi.json", "/docs"))
	r.Get("/healthz", handleHealth(logger, db))

	r.Post("/start-game", handleStartGame(games))
	r.Post("/draw-card/{gameID}/{difficulty}", handleDrawCard(games))
	r.Post("/answer/{gameID}", handleAnswer(games))
	r.Get("/stats/{gameID}", handleStats(games))
	r.Post("/end-game/{gameID}", handleEndGame(logger, games, store, broker))
	r.Get("/leaderboard", handleLeaderboard(store))
	r.Get("/leaderboard/events", handleLeaderboardEvents(broker))
}
