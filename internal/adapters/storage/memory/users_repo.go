package memory

import (
	"context"
	"sync"

	"patitas-eternas/internal/domain/users"
	"patitas-eternas/internal/ports/storage"
)

type userRepo struct {
	mu      sync.RWMutex
	byID    map[string]users.User
	byEmail map[string]string
}

func NewUserRepo() users.Repository {
	return &userRepo{
		byID:    make(map[string]users.User),
		byEmail: make(map[string]string),
	}
}

func (r *userRepo) Create(_ context.Context, u users.User) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byEmail[u.Email]; taken {
		return "", storage.ErrDuplicate
	}
	u.ID = newID()
	r.byID[u.ID] = u
	r.byEmail[u.Email] = u.ID
	return u.ID, nil
}

func (r *userRepo) GetByID(_ context.Context, id string) (users.User, error) {
	id, err := parseID(id)
	if err != nil {
		return users.User{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return users.User{}, storage.ErrNotFound
	}
	return u, nil
}

func (r *userRepo) GetByEmail(_ context.Context, email string) (users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return users.User{}, storage.ErrNotFound
	}
	return r.byID[id], nil
}

func (r *userRepo) SetRole(_ context.Context, id string, role users.Role) error {
	id, err := parseID(id)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byID[id]
	if !ok {
		return storage.ErrNotFound
	}
	u.Role = role
	r.byID[id] = u
	return nil
}
