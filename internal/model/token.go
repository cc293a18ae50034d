package model

import "github.com/google/uuid"

// TokenManager generates and validates session tokens.
type TokenManager interface {
	Generate(userID uuid.UUID) (string, error)
	// Parse validates the token signature and expiry and returns the
	// subject. It fails with ErrTokenExpired or ErrTokenInvalid.
	Parse(token string) (uuid.UUID, error)
}
