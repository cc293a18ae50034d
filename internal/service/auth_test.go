package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mediatone/mediatone-server/internal/logger"
	servermocks "github.com/mediatone/mediatone-server/internal/mocks"
	"github.com/mediatone/mediatone-server/internal/model"
	"github.com/mediatone/mediatone-server/internal/security"
)

func TestAuth_Register_Success(t *testing.T) {
	ctx := context.Background()
	userStore := &servermocks.UserStore{}
	tokMan := &servermocks.TokenManager{}
	hasher := security.NewHasher(bcrypt.MinCost)

	userStore.On("Create", mock.Anything, mock.MatchedBy(func(u model.User) bool {
		return u.Username == "ada" && u.Email == "ada@example.com" &&
			u.Role == model.RoleMusician && u.PasswordHash != "" && u.PasswordHash != "secretpass"
	})).Return(model.User{ID: uuid.New(), Username: "ada", Email: "ada@example.com", Role: model.RoleMusician, PasswordHash: "$2a$hash"}, nil)

	a := NewAuth(userStore, hasher, tokMan, logger.New(0))

	user, err := a.Register(ctx, RegisterParams{Username: "ada", Email: "ada@example.com", Password: "secretpass"})
	require.NoError(t, err)
	assert.Equal(t, "ada", user.Username)
	assert.Empty(t, user.PasswordHash)
	userStore.AssertExpectations(t)
}

func TestAuth_Register_Validation(t *testing.T) {
	ctx := context.Background()
	a := NewAuth(&servermocks.UserStore{}, security.NewHasher(bcrypt.MinCost), &servermocks.TokenManager{}, logger.New(0))

	tests := []struct {
		name   string
		params RegisterParams
	}{
		{name: "missing username", params: RegisterParams{Email: "a@b.c", Password: "p"}},
		{name: "missing email", params: RegisterParams{Username: "a", Password: "p"}},
		{name: "missing password", params: RegisterParams{Username: "a", Email: "a@b.c"}},
		{name: "unknown role", params: RegisterParams{Username: "a", Email: "a@b.c", Password: "p", Role: "superuser"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := a.Register(ctx, tt.params)
			require.Error(t, err)
			assert.ErrorIs(t, err, model.ErrInvalidInput)
		})
	}
}

func TestAuth_Register_Duplicate(t *testing.T) {
	ctx := context.Background()
	userStore := &servermocks.UserStore{}

	userStore.On("Create", mock.Anything, mock.Anything).Return(model.User{}, model.ErrDuplicate)

	a := NewAuth(userStore, security.NewHasher(bcrypt.MinCost), &servermocks.TokenManager{}, logger.New(0))

	_, err := a.Register(ctx, RegisterParams{Username: "ada", Email: "ada@example.com", Password: "secretpass"})
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrDuplicate)
}

func TestAuth_Login_ByEmail(t *testing.T) {
	ctx := context.Background()
	userStore := &servermocks.UserStore{}
	tokMan := &servermocks.TokenManager{}
	hasher := security.NewHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("secretpass")
	require.NoError(t, err)

	id := uuid.New()
	userStore.On("GetByEmail", mock.Anything, "ada@example.com").
		Return(model.User{ID: id, Username: "ada", Email: "ada@example.com", PasswordHash: hash, Role: model.RoleMusician}, nil)
	tokMan.On("Generate", id).Return("tok-123", nil)

	a := NewAuth(userStore, hasher, tokMan, logger.New(0))

	token, user, err := a.Login(ctx, "ada@example.com", "secretpass")
	require.NoError(t, err)
	assert.Equal(t, "tok-123", token)
	assert.Equal(t, id, user.ID)
	assert.Empty(t, user.PasswordHash)
}

func TestAuth_Login_ByUsernameFallback(t *testing.T) {
	ctx := context.Background()
	userStore := &servermocks.UserStore{}
	tokMan := &servermocks.TokenManager{}
	hasher := security.NewHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("secretpass")
	require.NoError(t, err)

	id := uuid.New()
	userStore.On("GetByEmail", mock.Anything, "ada").Return(model.User{}, model.ErrNotFound)
	userStore.On("GetByUsername", mock.Anything, "ada").
		Return(model.User{ID: id, Username: "ada", PasswordHash: hash}, nil)
	tokMan.On("Generate", id).Return("tok-456", nil)

	a := NewAuth(userStore, hasher, tokMan, logger.New(0))

	token, _, err := a.Login(ctx, "ada", "secretpass")
	require.NoError(t, err)
	assert.Equal(t, "tok-456", token)
}

// Unknown identifier and wrong password must be indistinguishable to the
// caller.
func TestAuth_Login_FailuresIndistinguishable(t *testing.T) {
	ctx := context.Background()
	hasher := security.NewHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("rightpass")
	require.NoError(t, err)

	unknownStore := &servermocks.UserStore{}
	unknownStore.On("GetByEmail", mock.Anything, "ghost").Return(model.User{}, model.ErrNotFound)
	unknownStore.On("GetByUsername", mock.Anything, "ghost").Return(model.User{}, model.ErrNotFound)

	wrongPassStore := &servermocks.UserStore{}
	wrongPassStore.On("GetByEmail", mock.Anything, "ada@example.com").
		Return(model.User{ID: uuid.New(), PasswordHash: hash}, nil)

	aUnknown := NewAuth(unknownStore, hasher, &servermocks.TokenManager{}, logger.New(0))
	aWrong := NewAuth(wrongPassStore, hasher, &servermocks.TokenManager{}, logger.New(0))

	_, _, errUnknown := aUnknown.Login(ctx, "ghost", "whatever")
	_, _, errWrong := aWrong.Login(ctx, "ada@example.com", "wrongpass")

	require.Error(t, errUnknown)
	require.Error(t, errWrong)
	assert.ErrorIs(t, errUnknown, model.ErrInvalidCredentials)
	assert.ErrorIs(t, errWrong, model.ErrInvalidCredentials)
	assert.Equal(t, errUnknown.Error(), errWrong.Error())
}

func TestAuth_ResolveToken_Success(t *testing.T) {
	ctx := context.Background()
	userStore := &servermocks.UserStore{}
	tokMan := &servermocks.TokenManager{}

	id := uuid.New()
	tokMan.On("Parse", "tok").Return(id, nil)
	userStore.On("GetByID", mock.Anything, id).
		Return(model.User{ID: id, Username: "ada", Email: "ada@example.com", Role: model.RoleAdmin}, nil)

	a := NewAuth(userStore, security.NewHasher(bcrypt.MinCost), tokMan, logger.New(0))

	identity, err := a.ResolveToken(ctx, "tok")
	require.NoError(t, err)
	assert.Equal(t, id, identity.ID)
	assert.Equal(t, model.RoleAdmin, identity.Role)
}

func TestAuth_ResolveToken_InvalidToken(t *testing.T) {
	ctx := context.Background()
	tokMan := &servermocks.TokenManager{}

	tokMan.On("Parse", "bad").Return(uuid.Nil, model.ErrTokenInvalid)

	a := NewAuth(&servermocks.UserStore{}, security.NewHasher(bcrypt.MinCost), tokMan, logger.New(0))

	_, err := a.ResolveToken(ctx, "bad")
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrTokenInvalid)
}

// A valid token whose subject was deleted after issuance must be rejected.
func TestAuth_ResolveToken_SubjectGone(t *testing.T) {
	ctx := context.Background()
	userStore := &servermocks.UserStore{}
	tokMan := &servermocks.TokenManager{}

	id := uuid.New()
	tokMan.On("Parse", "tok").Return(id, nil)
	userStore.On("GetByID", mock.Anything, id).Return(model.User{}, model.ErrNotFound)

	a := NewAuth(userStore, security.NewHasher(bcrypt.MinCost), tokMan, logger.New(0))

	_, err := a.ResolveToken(ctx, "tok")
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrUnauthorized)
	assert.False(t, errors.Is(err, model.ErrNotFound))
}
