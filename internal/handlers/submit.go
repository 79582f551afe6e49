package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/scoreline/scoreline/internal/logger"
	"github.com/scoreline/scoreline/internal/models"
)

// ScoreSubmitter defines the interface that the service must implement.
type ScoreSubmitter interface {
	Submit(ctx context.Context, playerName string, score int64) (*models.ScoreDB, error)
}

// SubmitRequest represents the JSON body for score submission.
// Fields are pointers so missing and null values are distinguishable from
// zero values; score stays a json.Number until it is strictly parsed.
// swagger:model SubmitRequest
type SubmitRequest struct {
	// Player name
	// required: true
	// default: alice
	PlayerName *string `json:"player_name"`

	// Legacy alias for player_name
	Name *string `json:"name"`

	// Score
	// required: true
	// default: 100
	Score *json.Number `json:"score"`
}

// SubmitErrorResponse represents an error response for score submission
// swagger:model SubmitErrorResponse
type SubmitErrorResponse struct {
	// Error message
	// default: player_name and score are required
	Error string `json:"error"`
}

// NewSubmitScoreHandler returns an HTTP handler for score submission.
// @Summary Submit a score
// @Description Persists a player name and integer score and returns the saved row. Rejects missing fields, blank names, and non-integer scores before touching the store.
// @Tags leaderboard
// @Accept json
// @Produce json
// @Param submitRequest body handlers.SubmitRequest true "Score submission request"
// @Success 201 {object} models.ScoreDB "Saved score row"
// @Failure 400 {object} handlers.SubmitErrorResponse "Missing or malformed fields"
// @Failure 500 {object} handlers.SubmitErrorResponse "Internal server error"
// @Router /submit [post]
func NewSubmitScoreHandler(svc ScoreSubmitter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SubmitRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode submit request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(SubmitErrorResponse{
				Error: "Invalid request body",
			})
			return
		}

		name := req.PlayerName
		if name == nil {
			name = req.Name
		}
		if name == nil || req.Score == nil {
			logger.Log.Warnw("missing submit fields", "has_name", name != nil, "has_score", req.Score != nil)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(SubmitErrorResponse{
				Error: "player_name and score are required",
			})
			return
		}

		playerName := strings.TrimSpace(*name)
		if playerName == "" {
			logger.Log.Warnw("blank player_name in submit request")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(SubmitErrorResponse{
				Error: "player_name must not be empty",
			})
			return
		}
		if len(playerName) > models.MaxPlayerNameLength {
			logger.Log.Warnw("player_name too long", "length", len(playerName))
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(SubmitErrorResponse{
				Error: "player_name must not exceed 100 characters",
			})
			return
		}

		score, err := req.Score.Int64()
		if err != nil {
			logger.Log.Warnw("non-integer score in submit request", "score", req.Score.String())
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(SubmitErrorResponse{
				Error: "score must be an integer",
			})
			return
		}

		row, err := svc.Submit(r.Context(), playerName, score)
		if err != nil {
			logger.Log.Errorw("failed to submit score", "playerName", playerName, "score", score, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(SubmitErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(row)
	}
}
