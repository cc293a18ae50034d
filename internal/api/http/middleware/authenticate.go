package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/mediatone/mediatone-server/internal/logger"
	"github.com/mediatone/mediatone-server/internal/model"
)

// IdentityResolver resolves a bearer token to a live identity.
type IdentityResolver interface {
	ResolveToken(ctx context.Context, token string) (model.Identity, error)
}

// Authenticate validates bearer tokens and injects the identity into the
// request context.
type Authenticate struct {
	resolver       IdentityResolver
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(resolver IdentityResolver, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{resolver: resolver, contextManager: contextManager, logger: logger}
}

// Wrap parses the Authorization header, validates the token and calls next
// with the identity in context. Requests without a valid token get 401 and
// never reach next.
func (m *Authenticate) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString := bearerToken(r)
		if tokenString == "" {
			writeUnauthorized(w, "authorization token is required")
			return
		}

		identity, err := m.resolver.ResolveToken(r.Context(), tokenString)
		if err != nil {
			if errors.Is(err, model.ErrTokenExpired) {
				m.logger.Info("Authenticate middleware: token expired",
					"path", r.URL.Path)
				writeUnauthorized(w, "token expired")
				return
			}
			m.logger.Info("Authenticate middleware: token rejected",
				"path", r.URL.Path,
				"error", err.Error())
			writeUnauthorized(w, "invalid authorization token")
			return
		}

		ctx := m.contextManager.SetIdentityToContext(r.Context(), identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header. The scheme comparison is case insensitive.
func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// writeUnauthorized writes the minimal error envelope. Middleware renders
// its own envelope so it does not depend on the handler package.
func writeUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"success": false,
		"message": message,
	})
}
