package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/mediatone/mediatone-server/internal/logger"
	"github.com/mediatone/mediatone-server/internal/model"
)

// UserService defines profile operations.
type UserService interface {
	GetProfile(ctx context.Context, id uuid.UUID) (model.User, error)
	GetPublicProfile(ctx context.Context, id uuid.UUID) (model.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, update model.ProfileUpdate) (model.User, error)
}

// User handles HTTP endpoints for profiles.
type User struct {
	userService    UserService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewUser creates a new User handler.
func NewUser(userService UserService, contextManager model.ContextManager, logger *logger.Logger) *User {
	return &User{
		userService:    userService,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Profile returns the caller's own profile.
func (h *User) Profile(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.contextManager.GetIdentityFromContext(r.Context())
	if !ok {
		handleError(w, model.ErrUnauthorized)
		return
	}

	user, err := h.userService.GetProfile(r.Context(), identity.ID)
	if err != nil {
		h.logger.Error("User handler: failed to get profile",
			"user_id", identity.ID,
			"error", err.Error())
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"user":    toUserPayload(user),
	})
}

// PublicProfile returns another user's public profile by id.
func (h *User) PublicProfile(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handleError(w, fmt.Errorf("%w: malformed user id", model.ErrInvalidInput))
		return
	}

	user, err := h.userService.GetPublicProfile(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"user":    toUserPayload(user),
	})
}

type updateProfileRequest struct {
	Bio               *string `json:"bio"`
	ProfilePictureKey *string `json:"profile_picture"`
}

// UpdateProfile applies a partial mutation to the caller's profile.
// Absent fields keep their current value.
func (h *User) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.contextManager.GetIdentityFromContext(r.Context())
	if !ok {
		handleError(w, model.ErrUnauthorized)
		return
	}

	var req updateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handleError(w, fmt.Errorf("%w: malformed request body", model.ErrInvalidInput))
		return
	}

	user, err := h.userService.UpdateProfile(r.Context(), identity.ID, model.ProfileUpdate{
		Bio:               req.Bio,
		ProfilePictureKey: req.ProfilePictureKey,
	})
	if err != nil {
		h.logger.Error("User handler: failed to update profile",
			"user_id", identity.ID,
			"error", err.Error())
		handleError(w, err)
		return
	}

	h.logger.Info("User handler: profile updated",
		"user_id", identity.ID)

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "profile updated",
		"user":    toUserPayload(user),
	})
}
