package handler

import (
	"context"
	"net/http"

	"github.com/mediatone/mediatone-server/internal/logger"
)

// Pinger reports whether the backing database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Health handles the liveness endpoint.
type Health struct {
	pinger Pinger
	logger *logger.Logger
}

// NewHealth creates a new Health handler. A nil pinger skips the
// database check, which the in-memory backend uses.
func NewHealth(pinger Pinger, logger *logger.Logger) *Health {
	return &Health{pinger: pinger, logger: logger}
}

// Check responds 200 when the service is up and its database reachable,
// 503 otherwise.
func (h *Health) Check(w http.ResponseWriter, r *http.Request) {
	if h.pinger != nil {
		if err := h.pinger.Ping(r.Context()); err != nil {
			h.logger.Error("Health handler: database unreachable",
				"error", err.Error())
			writeJSON(w, http.StatusServiceUnavailable, map[string]any{
				"success": false,
				"message": "database unreachable",
			})
			return
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "ok",
	})
}
