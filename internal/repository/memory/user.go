// Package memory provides in-memory store implementations. They back the
// server when DATABASE_BACKEND=memory and double as fixtures in tests.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mediatone/mediatone-server/internal/model"
)

var _ model.UserStore = (*UserStore)(nil)

// UserStore keeps users in a map guarded by a mutex. Username and email
// uniqueness is enforced through secondary indexes updated under the same
// lock as the primary map.
type UserStore struct {
	mu         sync.RWMutex
	users      map[uuid.UUID]model.User
	byEmail    map[string]uuid.UUID
	byUsername map[string]uuid.UUID
}

// NewUserStore creates an empty in-memory user store.
func NewUserStore() *UserStore {
	return &UserStore{
		users:      make(map[uuid.UUID]model.User),
		byEmail:    make(map[string]uuid.UUID),
		byUsername: make(map[string]uuid.UUID),
	}
}

func (s *UserStore) GetByEmail(_ context.Context, email string) (model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byEmail[email]
	if !ok {
		return model.User{}, model.ErrNotFound
	}
	return s.users[id], nil
}

func (s *UserStore) GetByUsername(_ context.Context, username string) (model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byUsername[username]
	if !ok {
		return model.User{}, model.ErrNotFound
	}
	return s.users[id], nil
}

func (s *UserStore) GetByID(_ context.Context, id uuid.UUID) (model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return model.User{}, model.ErrNotFound
	}
	return user, nil
}

func (s *UserStore) Create(_ context.Context, user model.User) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.byUsername[user.Username]; taken {
		return model.User{}, fmt.Errorf("%w: username %q", model.ErrDuplicate, user.Username)
	}
	if _, taken := s.byEmail[user.Email]; taken {
		return model.User{}, fmt.Errorf("%w: email %q", model.ErrDuplicate, user.Email)
	}

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	now := time.Now()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now

	s.users[user.ID] = user
	s.byEmail[user.Email] = user.ID
	s.byUsername[user.Username] = user.ID

	return user, nil
}

func (s *UserStore) UpdateProfile(_ context.Context, id uuid.UUID, update model.ProfileUpdate) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return model.User{}, model.ErrNotFound
	}

	if update.Bio != nil {
		user.Bio = *update.Bio
	}
	if update.ProfilePictureKey != nil {
		user.ProfilePictureKey = *update.ProfilePictureKey
	}
	user.UpdatedAt = time.Now()

	s.users[id] = user
	return user, nil
}
