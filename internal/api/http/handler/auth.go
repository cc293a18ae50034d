package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/mediatone/mediatone-server/internal/logger"
	"github.com/mediatone/mediatone-server/internal/model"
	"github.com/mediatone/mediatone-server/internal/service"
)

// AuthService defines user registration and login operations.
type AuthService interface {
	Register(ctx context.Context, params service.RegisterParams) (model.User, error)
	Login(ctx context.Context, identifier, password string) (string, model.User, error)
}

// Auth handles HTTP endpoints for authentication.
type Auth struct {
	authService AuthService
	logger      *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, logger *logger.Logger) *Auth {
	return &Auth{
		authService: authService,
		logger:      logger,
	}
}

type registerRequest struct {
	Username string     `json:"username"`
	Email    string     `json:"email"`
	Password string     `json:"password"`
	Role     model.Role `json:"role"`
}

type loginRequest struct {
	Identifier string `json:"identifier"`
	Email      string `json:"email"`
	Password   string `json:"password"`
}

// Register creates a new account and responds with 201 and the created
// user.
func (h *Auth) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handleError(w, fmt.Errorf("%w: malformed request body", model.ErrInvalidInput))
		return
	}

	h.logger.Debug("Auth handler: processing registration request",
		"username", req.Username)

	user, err := h.authService.Register(r.Context(), service.RegisterParams{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		h.logger.Error("Auth handler: registration failed",
			"username", req.Username,
			"error", err.Error())
		handleError(w, err)
		return
	}

	h.logger.Info("Auth handler: registration completed",
		"username", user.Username,
		"user_id", user.ID)

	writeJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"message": "user registered",
		"user":    toUserPayload(user),
	})
}

// Login verifies credentials and responds with a session token and the
// user. The identifier may also arrive in the email field.
func (h *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handleError(w, fmt.Errorf("%w: malformed request body", model.ErrInvalidInput))
		return
	}

	identifier := req.Identifier
	if identifier == "" {
		identifier = req.Email
	}
	if identifier == "" || req.Password == "" {
		handleError(w, fmt.Errorf("%w: identifier and password are required", model.ErrInvalidInput))
		return
	}

	token, user, err := h.authService.Login(r.Context(), identifier, req.Password)
	if err != nil {
		h.logger.Info("Auth handler: login failed",
			"identifier", identifier)
		handleError(w, err)
		return
	}

	h.logger.Info("Auth handler: login completed",
		"user_id", user.ID)

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "login successful",
		"token":   token,
		"user":    toUserPayload(user),
	})
}
