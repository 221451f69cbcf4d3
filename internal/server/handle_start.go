package server

import (
	"net/http"
	"strings"
)

type StartGameRequest struct {
	PlayerName string `json:"player_name"`
}

type StartGameResponse struct {
	GameID     string `json:"game_id"`
	PlayerName string `json:"player_name"`
	Message    string `json:"message"`
}

func handleStartGame(games *Games) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req StartGameRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		req.PlayerName = strings.TrimSpace(req.PlayerName)
		if req.PlayerName == "" {
			writeError(w, http.StatusBadRequest, "player name required")
			return
		}

		id := games.Create(req.PlayerName)

		writeJSON(w, http.StatusOK, StartGameResponse{
			GameID:     id,
			PlayerName: req.PlayerName,
			Message:    "Welcome, " + req.PlayerName + "!",
		})
	}
}
