// Copyright (c) 2026 DevOpsCorp. All rights reserved.

package auth

import (
	"context"
)

// UserRepository defines the data access contract for user accounts.
//
// # Review Process
//
// This interface is placed in a separate file from user.go so entity changes
// and storage-contract changes can be reviewed independently.
//
// # Implementations
//
// The canonical implementation is PostgreSQL (store_postgres.go). Tests use
// in-memory fakes.
type UserRepository interface {
	// Create persists a brand-new user account and fills in the
	// database-assigned ID and timestamps.
	//
	// Returns [apperr.Conflict] if a unique constraint (email/username) fails:
	// the database, not the application, is the arbiter of concurrent
	// duplicate registrations.
	Create(ctx context.Context, user *User) error

	// FindByID returns the account with the given ID.
	//
	// Returns [apperr.NotFound] if the account does not exist.
	FindByID(ctx context.Context, id int64) (*User, error)

	// FindByEmail returns the account with the given email, including the
	// password hash for credential verification.
	//
	// Returns [apperr.NotFound] if no user is registered with this email.
	FindByEmail(ctx context.Context, email string) (*User, error)

	// FindByUsername returns the account with the given username.
	//
	// Returns [apperr.NotFound] if the username is available.
	FindByUsername(ctx context.Context, username string) (*User, error)

	// EmailExists reports whether an account with this email exists.
	// Registration uses it to return a field-specific conflict before
	// attempting the insert.
	EmailExists(ctx context.Context, email string) (bool, error)

	// UsernameExists reports whether an account with this username exists.
	UsernameExists(ctx context.Context, username string) (bool, error)

	// List returns all accounts, newest first.
	List(ctx context.Context) ([]User, error)

	// UpdateRole replaces the role of the given account.
	//
	// Returns [apperr.NotFound] if the account does not exist.
	UpdateRole(ctx context.Context, id int64, role UserRole) error

	// Delete permanently removes the account.
	//
	// Returns [apperr.NotFound] if the account does not exist.
	Delete(ctx context.Context, id int64) error
}
