// Copyright (c) 2026 DevOpsCorp. All rights reserved.

package auth

import (
	"context"
	"fmt"
	"net/http"

	"github.com/devopscorp/auth-api/internal/platform/apperr"
	"github.com/devopscorp/auth-api/internal/platform/sec"
)

// TokenIssuer defines the contract for generating session tokens.
type TokenIssuer interface {
	// Issue creates a signed token string embedding the given claim set.
	Issue(claims sec.UserClaims) (string, error)
}

// Service implements the authentication use cases.
//
// # Review Process
//
// This service is critical for security. Any changes to hashing, registration,
// or login logic must be reviewed by the security team.
type Service struct {
	users  UserRepository
	hasher sec.PasswordHasher
	tokens TokenIssuer
}

// NewService constructs a new [Service] with necessary dependencies.
func NewService(users UserRepository, hasher sec.PasswordHasher, tokens TokenIssuer) *Service {
	return &Service{
		users:  users,
		hasher: hasher,
		tokens: tokens,
	}
}

// RegisterInput holds the data required to enroll a new account.
// Input is assumed to be syntactically validated at the handler boundary.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// Register hashes the password and persists a brand new user account.
//
// # Business Rules
//   - Email uniqueness is checked before username uniqueness; the ordering is
//     deliberate so duplicate reports are deterministic.
//   - The pre-checks give field-specific conflicts; the database unique
//     constraints backstop them under concurrency.
//   - Default role is always "user".
//
// # Returns
//   - The newly created [*User] (hash populated but never serialized).
//   - [apperr.Conflict] if email or username is already taken.
func (service *Service) Register(ctx context.Context, input RegisterInput) (*User, error) {
	// ── 1. Uniqueness Pre-Checks (email first) ────────────────────────────

	emailTaken, err := service.users.EmailExists(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if emailTaken {
		return nil, apperr.Conflict("Email already exists")
	}

	usernameTaken, err := service.users.UsernameExists(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if usernameTaken {
		return nil, apperr.Conflict("Username already exists")
	}

	// ── 2. Security ───────────────────────────────────────────────────────

	hashedPassword, err := service.hasher.Hash(input.Password)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("auth_service_hash_failed: %w", err))
	}

	// ── 3. Persistence ────────────────────────────────────────────────────

	user := &User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Role:         UserRoleUser,
	}

	if err := service.users.Create(ctx, user); err != nil {
		// Conflict (lost race) and internal failures are already classified
		// by the repository.
		return nil, err
	}

	return user, nil
}

// Login validates credentials and issues a session token.
//
// # Enumeration Hardening
//
// A lookup miss and a password mismatch return the same
// [apperr.Unauthorized] value; callers cannot tell which field was wrong.
//
// # Returns
//   - The signed token string and the authenticated [*User].
func (service *Service) Login(ctx context.Context, email, password string) (string, *User, error) {
	invalidCredentials := apperr.Unauthorized("Invalid credentials")

	user, err := service.users.FindByEmail(ctx, email)
	if err != nil {
		// Only a missing row is a credential failure. A storage fault keeps
		// its 500 classification so the outage is logged, not hidden as a 401.
		if ae := apperr.As(err); ae == nil || ae.HTTPStatus != http.StatusNotFound {
			return "", nil, err
		}
		return "", nil, invalidCredentials
	}

	if !service.hasher.Verify(password, user.PasswordHash) {
		return "", nil, invalidCredentials
	}

	token, err := service.tokens.Issue(sec.UserClaims{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Role:     string(user.Role),
	})
	if err != nil {
		return "", nil, apperr.Internal(fmt.Errorf("auth_service_token_issue_failed: %w", err))
	}

	return token, user, nil
}

// CurrentUser re-fetches the account referenced by a verified token.
//
// The token being valid does not guarantee the row still exists: the account
// may have been deleted after issuance, which surfaces as [apperr.NotFound].
func (service *Service) CurrentUser(ctx context.Context, id int64) (*User, error) {
	return service.users.FindByID(ctx, id)
}
