package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/mediatone/mediatone-server/internal/logger"
	"github.com/mediatone/mediatone-server/internal/model"
	"github.com/mediatone/mediatone-server/internal/security"
)

// Auth handles registration, login and token resolution.
type Auth struct {
	userStore    model.UserStore
	hasher       *security.Hasher
	tokenManager model.TokenManager
	logger       *logger.Logger
}

// NewAuth creates a new Auth service.
func NewAuth(
	userStore model.UserStore,
	hasher *security.Hasher,
	tokenManager model.TokenManager,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		userStore:    userStore,
		hasher:       hasher,
		tokenManager: tokenManager,
		logger:       logger,
	}
}

// RegisterParams contains parameters to register a user.
type RegisterParams struct {
	Username string
	Email    string
	Password string
	Role     model.Role
}

// Register creates a new user with a hashed password. An empty role
// defaults to musician. The returned user never carries the hash.
func (a *Auth) Register(ctx context.Context, params RegisterParams) (model.User, error) {
	a.logger.Debug("Auth service: registering user",
		"username", params.Username)

	if params.Username == "" || params.Email == "" || params.Password == "" {
		return model.User{}, fmt.Errorf("%w: username, email and password are required", model.ErrInvalidInput)
	}
	if params.Role == "" {
		params.Role = model.RoleMusician
	}
	if !model.ValidRole(params.Role) {
		return model.User{}, fmt.Errorf("%w: unknown role %q", model.ErrInvalidInput, params.Role)
	}

	hash, err := a.hasher.Hash(params.Password)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := a.userStore.Create(ctx, model.User{
		ID:           uuid.New(),
		Username:     params.Username,
		Email:        params.Email,
		PasswordHash: hash,
		Role:         params.Role,
	})
	if err != nil {
		if errors.Is(err, model.ErrDuplicate) {
			a.logger.Info("Auth service: username or email already taken",
				"username", params.Username)
			return model.User{}, err
		}
		a.logger.Error("Auth service: failed to create user",
			"username", params.Username,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	a.logger.Info("Auth service: user registered",
		"username", user.Username,
		"user_id", user.ID)

	user.PasswordHash = ""
	return user, nil
}

// Login verifies credentials and issues a session token. The identifier
// may be an email or a username. Unknown identifier and wrong password
// fail identically with model.ErrInvalidCredentials.
func (a *Auth) Login(ctx context.Context, identifier, password string) (string, model.User, error) {
	a.logger.Debug("Auth service: login attempt",
		"identifier", identifier)

	user, err := a.lookup(ctx, identifier)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return "", model.User{}, model.ErrInvalidCredentials
		}
		return "", model.User{}, fmt.Errorf("failed to look up user: %w", err)
	}

	if !a.hasher.Verify(password, user.PasswordHash) {
		a.logger.Info("Auth service: password mismatch",
			"user_id", user.ID)
		return "", model.User{}, model.ErrInvalidCredentials
	}

	token, err := a.tokenManager.Generate(user.ID)
	if err != nil {
		a.logger.Error("Auth service: failed to issue token",
			"user_id", user.ID,
			"error", err.Error())
		return "", model.User{}, fmt.Errorf("failed to issue token: %w", err)
	}

	a.logger.Info("Auth service: login succeeded",
		"user_id", user.ID)

	user.PasswordHash = ""
	return token, user, nil
}

// ResolveToken validates a session token and resolves the subject to a
// live identity. A token whose subject no longer exists is rejected, which
// covers users deleted after issuance.
func (a *Auth) ResolveToken(ctx context.Context, tokenString string) (model.Identity, error) {
	userID, err := a.tokenManager.Parse(tokenString)
	if err != nil {
		return model.Identity{}, err
	}

	user, err := a.userStore.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Identity{}, fmt.Errorf("%w: subject no longer exists", model.ErrUnauthorized)
		}
		return model.Identity{}, fmt.Errorf("failed to resolve token subject: %w", err)
	}

	return user.Identity(), nil
}

// lookup finds a user by email first, then by username.
func (a *Auth) lookup(ctx context.Context, identifier string) (model.User, error) {
	user, err := a.userStore.GetByEmail(ctx, identifier)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, model.ErrNotFound) {
		return model.User{}, err
	}
	return a.userStore.GetByUsername(ctx, identifier)
}
