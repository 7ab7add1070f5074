package user

import (
	"context"
	"strings"
	"sync"
)

// InMemoryRepository keeps users in a slice behind a mutex. It exists for
// tests and for running the server without a store.
type InMemoryRepository struct {
	mu    sync.RWMutex
	users []User
}

func NewInMemoryRepository(seed []User) *InMemoryRepository {
	repo := &InMemoryRepository{users: make([]User, 0, len(seed))}
	repo.users = append(repo.users, seed...)
	return repo
}

func (r *InMemoryRepository) FindByID(_ context.Context, id string) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}

	return User{}, ErrNotFound
}

func (r *InMemoryRepository) FindByEmail(_ context.Context, email string) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}

	return User{}, ErrNotFound
}

func (r *InMemoryRepository) Find(_ context.Context, filter Filter, skip, limit int64) ([]User, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matches := make([]User, 0)
	for _, u := range r.users {
		if filter.Email != "" && u.Email != filter.Email {
			continue
		}
		if filter.Name != "" && !strings.EqualFold(u.Name, filter.Name) {
			continue
		}
		matches = append(matches, u)
	}

	total := int64(len(matches))
	if skip >= total {
		return []User{}, total, nil
	}
	matches = matches[skip:]
	if limit > 0 && int64(len(matches)) > limit {
		matches = matches[:limit]
	}

	page := make([]User, len(matches))
	copy(page, matches)
	return page, total, nil
}

func (r *InMemoryRepository) Insert(_ context.Context, user User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.users = append(r.users, user)
	return nil
}

func (r *InMemoryRepository) Replace(_ context.Context, user User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, u := range r.users {
		if u.ID == user.ID {
			r.users[i] = user
			return nil
		}
	}

	return ErrNotFound
}

func (r *InMemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, u := range r.users {
		if u.ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return nil
		}
	}

	return ErrDeleteFailed
}
