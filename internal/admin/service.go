// Copyright (c) 2026 DevOpsCorp. All rights reserved.

// Package admin implements administrative user management: listing accounts,
// changing roles, and deleting users. Every endpoint requires an
// authenticated admin.
package admin

import (
	"context"

	"github.com/devopscorp/auth-api/internal/auth"
)

// Service implements the administrative use cases over the same user
// repository the auth core persists to.
type Service struct {
	users auth.UserRepository
}

// NewService constructs a new admin [Service].
func NewService(users auth.UserRepository) *Service {
	return &Service{users: users}
}

// ListUsers returns every account, newest first. Password hashes stay inside
// the entity and are stripped by JSON serialization.
func (service *Service) ListUsers(ctx context.Context) ([]auth.User, error) {
	return service.users.List(ctx)
}

// UpdateRole replaces the role of the given account.
//
// Returns [apperr.NotFound] if the account does not exist.
func (service *Service) UpdateRole(ctx context.Context, id int64, role auth.UserRole) error {
	return service.users.UpdateRole(ctx, id, role)
}

// DeleteUser permanently removes the account. Hard delete, matching the
// administrative contract: the auth flow itself never deletes rows.
//
// Returns [apperr.NotFound] if the account does not exist.
func (service *Service) DeleteUser(ctx context.Context, id int64) error {
	return service.users.Delete(ctx, id)
}
