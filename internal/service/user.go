package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mediatone/mediatone-server/internal/logger"
	"github.com/mediatone/mediatone-server/internal/model"
)

// User handles profile reads and updates.
type User struct {
	userStore model.UserStore
	logger    *logger.Logger
}

// NewUser creates a new User service.
func NewUser(userStore model.UserStore, logger *logger.Logger) *User {
	return &User{
		userStore: userStore,
		logger:    logger,
	}
}

// GetProfile returns the caller's own profile, hash stripped.
func (s *User) GetProfile(ctx context.Context, id uuid.UUID) (model.User, error) {
	user, err := s.userStore.GetByID(ctx, id)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get profile: %w", err)
	}

	user.PasswordHash = ""
	return user, nil
}

// GetPublicProfile returns the public subset of a user's profile. The
// email is cleared along with the hash; handlers render the rest.
func (s *User) GetPublicProfile(ctx context.Context, id uuid.UUID) (model.User, error) {
	user, err := s.userStore.GetByID(ctx, id)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get public profile: %w", err)
	}

	user.PasswordHash = ""
	user.Email = ""
	return user, nil
}

// UpdateProfile applies a partial profile mutation.
func (s *User) UpdateProfile(ctx context.Context, id uuid.UUID, update model.ProfileUpdate) (model.User, error) {
	user, err := s.userStore.UpdateProfile(ctx, id, update)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to update profile: %w", err)
	}

	s.logger.Info("User service: profile updated",
		"user_id", id)

	user.PasswordHash = ""
	return user, nil
}
