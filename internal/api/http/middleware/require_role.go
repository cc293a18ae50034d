package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/mediatone/mediatone-server/internal/logger"
	"github.com/mediatone/mediatone-server/internal/model"
)

// RequireRole gates a route to a set of roles. It must run after
// Authenticate, which puts the identity into the request context.
type RequireRole struct {
	allowed        map[model.Role]struct{}
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewRequireRole creates a RequireRole middleware allowing the given roles.
func NewRequireRole(contextManager model.ContextManager, logger *logger.Logger, roles ...model.Role) *RequireRole {
	allowed := make(map[model.Role]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}
	return &RequireRole{allowed: allowed, contextManager: contextManager, logger: logger}
}

// Wrap rejects requests whose identity role is not in the allowed set with
// 403. A missing identity means the route was wired without Authenticate
// and is rejected with 401.
func (m *RequireRole) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := m.contextManager.GetIdentityFromContext(r.Context())
		if !ok {
			writeUnauthorized(w, "authorization token is required")
			return
		}

		if _, ok := m.allowed[identity.Role]; !ok {
			m.logger.Info("RequireRole middleware: role refused",
				"path", r.URL.Path,
				"user_id", identity.ID,
				"role", identity.Role)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusForbidden)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"success": false,
				"message": "insufficient permissions",
			})
			return
		}

		next.ServeHTTP(w, r)
	})
}
