// Copyright (c) 2026 DevOpsCorp. All rights reserved.

// Package authtest provides an in-memory [auth.UserRepository] for tests.
//
// The fake honors the same error contract as the PostgreSQL implementation:
// [apperr.NotFound] for missing rows and field-specific [apperr.Conflict]
// for uniqueness violations, so services and handlers under test observe
// production-shaped failures.
package authtest

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/devopscorp/auth-api/internal/auth"
	"github.com/devopscorp/auth-api/internal/platform/apperr"
)

// MemoryUserRepository is a concurrency-safe in-memory user store.
type MemoryUserRepository struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]auth.User

	// FailCreate forces Create to return an internal error, for exercising
	// the 500 path without a broken database.
	FailCreate bool
}

var _ auth.UserRepository = (*MemoryUserRepository)(nil)

// NewMemoryUserRepository creates an empty in-memory repository.
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{
		nextID: 1,
		users:  make(map[int64]auth.User),
	}
}

// Create assigns an ID and timestamps, enforcing both uniqueness invariants.
func (repository *MemoryUserRepository) Create(ctx context.Context, user *auth.User) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if repository.FailCreate {
		return apperr.Internal(errors.New("storage offline"))
	}

	for _, existing := range repository.users {
		if existing.Email == user.Email {
			return apperr.Conflict("Email already exists")
		}
		if existing.Username == user.Username {
			return apperr.Conflict("Username already exists")
		}
	}

	user.ID = repository.nextID
	repository.nextID++
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	repository.users[user.ID] = *user
	return nil
}

// FindByID returns the stored account or [apperr.NotFound].
func (repository *MemoryUserRepository) FindByID(ctx context.Context, id int64) (*auth.User, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	user, ok := repository.users[id]
	if !ok {
		return nil, apperr.NotFound("User")
	}
	return &user, nil
}

// FindByEmail returns the stored account or [apperr.NotFound].
func (repository *MemoryUserRepository) FindByEmail(ctx context.Context, email string) (*auth.User, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	for _, user := range repository.users {
		if user.Email == email {
			userCopy := user
			return &userCopy, nil
		}
	}
	return nil, apperr.NotFound("User")
}

// FindByUsername returns the stored account or [apperr.NotFound].
func (repository *MemoryUserRepository) FindByUsername(ctx context.Context, username string) (*auth.User, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	for _, user := range repository.users {
		if user.Username == username {
			userCopy := user
			return &userCopy, nil
		}
	}
	return nil, apperr.NotFound("User")
}

// EmailExists reports whether any stored account uses the email.
func (repository *MemoryUserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	for _, user := range repository.users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

// UsernameExists reports whether any stored account uses the username.
func (repository *MemoryUserRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	for _, user := range repository.users {
		if user.Username == username {
			return true, nil
		}
	}
	return false, nil
}

// List returns all accounts, newest first.
func (repository *MemoryUserRepository) List(ctx context.Context) ([]auth.User, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	users := make([]auth.User, 0, len(repository.users))
	for _, user := range repository.users {
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID > users[j].ID })
	return users, nil
}

// UpdateRole replaces the role or returns [apperr.NotFound].
func (repository *MemoryUserRepository) UpdateRole(ctx context.Context, id int64, role auth.UserRole) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	user, ok := repository.users[id]
	if !ok {
		return apperr.NotFound("User")
	}
	user.Role = role
	user.UpdatedAt = time.Now()
	repository.users[id] = user
	return nil
}

// Delete removes the account or returns [apperr.NotFound].
func (repository *MemoryUserRepository) Delete(ctx context.Context, id int64) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, ok := repository.users[id]; !ok {
		return apperr.NotFound("User")
	}
	delete(repository.users, id)
	return nil
}

// Count reports the number of stored accounts. Test helper.
func (repository *MemoryUserRepository) Count() int {
	repository.mu.Lock()
	defer repository.mu.Unlock()
	return len(repository.users)
}
