package memory

import (
	"context"
	"sync"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

var _ port.UserRepository = (*UserRepository)(nil)

// UserRepository implements port.UserRepository on top of two maps guarded
// by a single mutex. Contents are lost on restart.
type UserRepository struct {
	mu      sync.RWMutex
	byID    map[string]domain.User
	byEmail map[string]string
}

// NewUserRepository returns an empty repository.
func NewUserRepository() *UserRepository {
	return &UserRepository{
		byID:    make(map[string]domain.User),
		byEmail: make(map[string]string),
	}
}

// Create stores user. A second user with the same email gets port.ErrEmailTaken.
func (r *UserRepository) Create(_ context.Context, user domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byEmail[user.Email]; ok {
		return port.ErrEmailTaken
	}
	r.byID[user.ID] = user
	r.byEmail[user.Email] = user.ID
	return nil
}

// FindByEmail returns a copy of the user with email or port.ErrNotFound.
func (r *UserRepository) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byEmail[email]
	if !ok {
		return nil, port.ErrNotFound
	}
	u := r.byID[id]
	return &u, nil
}

// FindByID returns a copy of the user with id or port.ErrNotFound.
func (r *UserRepository) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.byID[id]
	if !ok {
		return nil, port.ErrNotFound
	}
	return &u, nil
}
