package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Role enumerates user roles.
type Role string

const (
	// RoleMusician may upload media.
	RoleMusician Role = "musician"
	// RoleListener may only consume media.
	RoleListener Role = "listener"
	// RoleAdmin may do everything a musician can.
	RoleAdmin Role = "admin"
)

// ValidRole reports whether r is one of the known roles.
func ValidRole(r Role) bool {
	switch r {
	case RoleMusician, RoleListener, RoleAdmin:
		return true
	}
	return false
}

// UserStore defines persistence operations for users.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	Create(ctx context.Context, user User) (User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, update ProfileUpdate) (User, error)
}

// User represents a registered user. Username and email are unique across
// all users; the backing store enforces both constraints.
type User struct {
	ID                uuid.UUID
	Username          string
	Email             string
	PasswordHash      string
	Role              Role
	Bio               string
	ProfilePictureKey string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Identity is the authenticated caller attached to a request context.
// It intentionally carries no password hash.
type Identity struct {
	ID       uuid.UUID
	Username string
	Email    string
	Role     Role
}

// Identity returns the request-facing view of the user.
func (u User) Identity() Identity {
	return Identity{ID: u.ID, Username: u.Username, Email: u.Email, Role: u.Role}
}

// ProfileUpdate is a partial profile mutation. Nil fields are left unchanged.
type ProfileUpdate struct {
	Bio               *string
	ProfilePictureKey *string
}
