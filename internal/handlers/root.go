package handlers

import "net/http"

// NewRootHandler returns the plaintext liveness handler.
// @Summary Liveness probe
// @Tags ops
// @Produce plain
// @Success 200 {string} string "Backend running"
// @Router / [get]
func NewRootHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Backend running"))
	}
}
