package model

import "context"

// ContextManager attaches the authenticated identity to a request context
// and retrieves it downstream.
type ContextManager interface {
	SetIdentityToContext(ctx context.Context, identity Identity) context.Context
	GetIdentityFromContext(ctx context.Context) (Identity, bool)
}
