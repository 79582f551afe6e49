package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/scoreline/scoreline/internal/logger"
)

// Seeder defines the interface that the service must implement.
type Seeder interface {
	Reset(ctx context.Context) (int, error)
}

// SeedResponse represents a successful seed response
// swagger:model SeedResponse
type SeedResponse struct {
	// Number of demonstration rows inserted
	// default: 3
	Count int `json:"count"`
}

// SeedErrorResponse represents an error response for the seed operation
// swagger:model SeedErrorResponse
type SeedErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// NewSeedHandler returns an HTTP handler for the administrative reset.
// Debug/demo only: clears all rows and inserts the fixed demonstration set.
// @Summary Reset scores to the demonstration set
// @Description Deletes all score rows and inserts the fixed demonstration set. Administrative endpoint, not for untrusted callers.
// @Tags admin
// @Produce json
// @Success 201 {object} handlers.SeedResponse "Rows inserted"
// @Failure 500 {object} handlers.SeedErrorResponse "Internal server error"
// @Router /seed [post]
func NewSeedHandler(svc Seeder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		count, err := svc.Reset(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to reset scores", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(SeedErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(SeedResponse{
			Count: count,
		})
	}
}
