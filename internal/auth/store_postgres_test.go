// Copyright (c) 2026 DevOpsCorp. All rights reserved.

package auth

import (
	"errors"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devopscorp/auth-api/internal/platform/apperr"
)

/*
TestConflictFromConstraint maps the violated unique constraint to the same
field-specific 409 the registration pre-checks produce, so the loser of a
concurrent duplicate insert reports an identical conflict.
*/
func TestConflictFromConstraint(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
	}{
		{
			"email_constraint",
			&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"},
			"Email already exists",
		},
		{
			"username_constraint",
			&pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"},
			"Username already exists",
		},
		{
			"unrecognized_constraint",
			&pgconn.PgError{Code: "23505", ConstraintName: "users_pkey"},
			"User already exists",
		},
		{
			"non_postgres_error",
			errors.New("unexpected"),
			"User already exists",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := conflictFromConstraint(tt.err)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, http.StatusConflict, ae.HTTPStatus)
			assert.Equal(t, tt.message, ae.Message)
		})
	}
}
