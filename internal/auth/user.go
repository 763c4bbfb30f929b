// Copyright (c) 2026 DevOpsCorp. All rights reserved.

// Package auth implements the authentication core: the user identity record,
// its storage contract, and the registration/login/introspection use cases.
//
// # Architecture
//
// The entity and service in this package have no knowledge of HTTP or SQL.
// Transport lives in http.go, persistence behind the [UserRepository]
// interface in store.go.
package auth

import (
	"time"
)

// UserRole represents the authorization level granted to an account.
type UserRole string

const (
	UserRoleAdmin UserRole = "admin" // Administrative access to user management.
	UserRoleUser  UserRole = "user"  // Default role for registered accounts.
)

// level maps a role to a numeric hierarchy level to easily check permissions.
func (r UserRole) level() int {
	switch r {
	case UserRoleAdmin:
		return 20
	case UserRoleUser:
		return 10
	default:
		return 0
	}
}

// AtLeast checks if the current role meets or exceeds the required target role.
func (r UserRole) AtLeast(target UserRole) bool {
	return r.level() >= target.level()
}

// User represents a registered account.
//
// # Rules
//   - ID is assigned by the database on creation and never changes.
//   - Username and Email are each globally unique.
//   - PasswordHash is generated exclusively via the bcrypt hasher and is
//     never serialized outward.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Explicitly omitted from JSON for security.
	Role         UserRole  `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
