// Copyright (c) 2026 DevOpsCorp. All rights reserved.

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
package dberr

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/devopscorp/auth-api/internal/platform/apperr"
)

// Wrap inspects a database error and converts it into a meaningful
// [apperr.AppError]. It hides driver details from the client while
// classifying the error type.
//
// # Classification
//
//   - pgx.ErrNoRows             -> 404 Not Found
//   - SQLSTATE 23505 (unique)   -> 409 Conflict
//   - anything else             -> 500 Internal
//
// The unique-violation mapping is what makes the database the arbiter of
// concurrent duplicate registrations: of two racing inserts with the same
// email, exactly one receives the constraint violation and therefore a 409.
func Wrap(err error, resource string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.NotFound(resource)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return apperr.Conflict(resource + " already exists")
	}

	return apperr.Internal(err)
}

// IsUniqueViolation reports whether err is a Postgres unique-constraint
// violation (SQLSTATE 23505).
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
