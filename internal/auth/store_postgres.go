// Copyright (c) 2026 DevOpsCorp. All rights reserved.

package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/devopscorp/auth-api/internal/platform/apperr"
	"github.com/devopscorp/auth-api/internal/platform/dberr"
)

// PostgresUserRepository implements the [UserRepository] interface using pgx.
//
// Every statement is parameterized; values are always bound, never
// interpolated into SQL text.
type PostgresUserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates a new PostgreSQL implementation of the [UserRepository].
func NewUserRepository(pool *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{pool: pool}
}

// Create persists a new user record and fills in the generated ID and timestamps.
//
// # Conflict Mapping
//
// A unique-constraint violation is translated to [apperr.Conflict] with a
// field-specific message derived from the violated constraint, so a racing
// duplicate registration reports the same conflict as the pre-checks would.
func (repository *PostgresUserRepository) Create(ctx context.Context, user *User) error {
	const query = `
		INSERT INTO users (username, email, password_hash, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`

	err := repository.pool.QueryRow(ctx, query,
		user.Username,
		user.Email,
		user.PasswordHash,
		user.Role,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		if dberr.IsUniqueViolation(err) {
			return conflictFromConstraint(err)
		}
		return apperr.Internal(fmt.Errorf("postgres_user_repo_create_failed: %w", err))
	}

	return nil
}

// FindByID retrieves a user record by its primary key.
func (repository *PostgresUserRepository) FindByID(ctx context.Context, id int64) (*User, error) {
	const query = `
		SELECT id, username, email, password_hash, role, created_at, updated_at
		FROM users
		WHERE id = $1`

	return repository.queryOne(ctx, query, id)
}

// FindByEmail retrieves a user record by its unique email address.
// The password hash is included for credential verification.
func (repository *PostgresUserRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	const query = `
		SELECT id, username, email, password_hash, role, created_at, updated_at
		FROM users
		WHERE email = $1`

	return repository.queryOne(ctx, query, email)
}

// FindByUsername retrieves a user record by its unique username.
func (repository *PostgresUserRepository) FindByUsername(ctx context.Context, username string) (*User, error) {
	const query = `
		SELECT id, username, email, password_hash, role, created_at, updated_at
		FROM users
		WHERE username = $1`

	return repository.queryOne(ctx, query, username)
}

// EmailExists reports whether an account with this email already exists.
func (repository *PostgresUserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	const query = "SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)"

	var exists bool
	if err := repository.pool.QueryRow(ctx, query, email).Scan(&exists); err != nil {
		return false, dberr.Wrap(fmt.Errorf("postgres_user_repo_email_exists_failed: %w", err), "User")
	}
	return exists, nil
}

// UsernameExists reports whether an account with this username already exists.
func (repository *PostgresUserRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	const query = "SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)"

	var exists bool
	if err := repository.pool.QueryRow(ctx, query, username).Scan(&exists); err != nil {
		return false, dberr.Wrap(fmt.Errorf("postgres_user_repo_username_exists_failed: %w", err), "User")
	}
	return exists, nil
}

// List returns all accounts ordered by creation time, newest first.
func (repository *PostgresUserRepository) List(ctx context.Context) ([]User, error) {
	const query = `
		SELECT id, username, email, password_hash, role, created_at, updated_at
		FROM users
		ORDER BY created_at DESC`

	rows, err := repository.pool.Query(ctx, query)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("postgres_user_repo_list_failed: %w", err))
	}
	defer rows.Close()

	users := make([]User, 0)
	for rows.Next() {
		var user User
		if err := scanUser(rows, &user); err != nil {
			return nil, apperr.Internal(fmt.Errorf("postgres_user_repo_list_scan_failed: %w", err))
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Internal(fmt.Errorf("postgres_user_repo_list_rows_failed: %w", err))
	}

	return users, nil
}

// UpdateRole replaces the role of the given account.
func (repository *PostgresUserRepository) UpdateRole(ctx context.Context, id int64, role UserRole) error {
	const query = `
		UPDATE users
		SET role = $2, updated_at = NOW()
		WHERE id = $1`

	tag, err := repository.pool.Exec(ctx, query, id, role)
	if err != nil {
		return apperr.Internal(fmt.Errorf("postgres_user_repo_update_role_failed: %w", err))
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("User")
	}
	return nil
}

// Delete permanently removes the account.
func (repository *PostgresUserRepository) Delete(ctx context.Context, id int64) error {
	const query = "DELETE FROM users WHERE id = $1"

	tag, err := repository.pool.Exec(ctx, query, id)
	if err != nil {
		return apperr.Internal(fmt.Errorf("postgres_user_repo_delete_failed: %w", err))
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("User")
	}
	return nil
}

// queryOne runs a single-row user query and maps pgx.ErrNoRows to not-found.
func (repository *PostgresUserRepository) queryOne(ctx context.Context, query string, arg any) (*User, error) {
	user := &User{}
	err := scanUser(repository.pool.QueryRow(ctx, query, arg), user)
	if err != nil {
		return nil, dberr.Wrap(fmt.Errorf("postgres_user_repo_query_failed: %w", err), "User")
	}
	return user, nil
}

// scanUser reads one user row in canonical column order.
func scanUser(row pgx.Row, user *User) error {
	return row.Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
}

// conflictFromConstraint derives a field-specific 409 from the violated
// unique constraint so the race loser reports the same message as the
// registration pre-checks.
func conflictFromConstraint(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if strings.Contains(pgErr.ConstraintName, "email") {
			return apperr.Conflict("Email already exists")
		}
		if strings.Contains(pgErr.ConstraintName, "username") {
			return apperr.Conflict("Username already exists")
		}
	}
	return apperr.Conflict("User already exists")
}
