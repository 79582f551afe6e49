package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/scoreline/scoreline/internal/logger"
	"github.com/scoreline/scoreline/internal/models"
)

// DefaultLeaderboardLimit is used when the limit query parameter is absent.
const DefaultLeaderboardLimit = 10

// TopScoresReader defines the interface that the service must implement.
type TopScoresReader interface {
	TopScores(ctx context.Context, limit int) ([]models.ScoreDB, error)
}

// LeaderboardErrorResponse represents an error response for leaderboard reads
// swagger:model LeaderboardErrorResponse
type LeaderboardErrorResponse struct {
	// Error message
	// default: limit must be a positive integer
	Error string `json:"error"`
}

// NewLeaderboardHandler returns an HTTP handler for the ranked leaderboard.
// @Summary Get the leaderboard
// @Description Returns at most limit rows ordered by score descending, ties broken by earliest submission. An invalid or non-positive limit is rejected; an absent limit defaults to 10.
// @Tags leaderboard
// @Produce json
// @Param limit query int false "Maximum rows to return" default(10)
// @Success 200 {array} models.ScoreDB "Ranked score rows"
// @Failure 400 {object} handlers.LeaderboardErrorResponse "Invalid limit"
// @Failure 500 {object} handlers.LeaderboardErrorResponse "Internal server error"
// @Router /leaderboard [get]
func NewLeaderboardHandler(svc TopScoresReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := DefaultLeaderboardLimit

		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed <= 0 {
				logger.Log.Warnw("invalid leaderboard limit", "limit", raw)
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(LeaderboardErrorResponse{
					Error: "limit must be a positive integer",
				})
				return
			}
			limit = parsed
		}

		rows, err := svc.TopScores(r.Context(), limit)
		if err != nil {
			logger.Log.Errorw("failed to get leaderboard", "limit", limit, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(LeaderboardErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		// Empty board serializes as [] rather than null.
		if rows == nil {
			rows = []models.ScoreDB{}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(rows)
	}
}
