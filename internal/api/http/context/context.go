// Package context carries the authenticated identity through request
// contexts.
package context

import (
	"context"

	"github.com/mediatone/mediatone-server/internal/model"
)

type contextKey int

// identityKey is the context key used to store and retrieve the
// authenticated identity. An unexported typed key cannot collide with
// other packages.
const identityKey contextKey = iota

// Manager represents an HTTP context manager for identity operations.
type Manager struct{}

// NewManager creates a new context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetIdentityToContext returns a child context carrying the identity.
func (m *Manager) SetIdentityToContext(ctx context.Context, identity model.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// GetIdentityFromContext retrieves the identity set by the authentication
// middleware. The boolean reports whether an identity was present.
func (m *Manager) GetIdentityFromContext(ctx context.Context) (model.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(model.Identity)
	return identity, ok
}
