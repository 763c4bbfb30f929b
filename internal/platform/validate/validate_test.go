// Copyright (c) 2026 DevOpsCorp. All rights reserved.

package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devopscorp/auth-api/internal/platform/apperr"
	"github.com/devopscorp/auth-api/internal/platform/validate"
)

/*
TestValidator_Required tests the mandatory field validation logic.
*/
func TestValidator_Required(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		hasError bool
	}{
		{"valid_string", "alice", false},
		{"empty_string", "", true},
		{"whitespace_only", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Required("username", tt.value, "Username is required")

			if tt.hasError {
				assert.True(t, v.HasErrors())
				err := v.Err()
				require.NotNil(t, err)

				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, "VALIDATION_ERROR", ae.Code)
				assert.Equal(t, "Username is required", ae.Fields["username"])
			} else {
				assert.False(t, v.HasErrors())
				assert.Nil(t, v.Err())
			}
		})
	}
}

/*
TestValidator_Email checks the email format validation rule.
*/
func TestValidator_Email(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		isValid bool
	}{
		{"valid_email", "test@example.com", true},
		{"invalid_format", "invalid-email", false},
		{"missing_domain", "test@", false},
		{"empty", "", false},
		{"display_name_form", "Alice <alice@example.com>", false},
		{"dotless_domain", "alice@localhost", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Email("email", tt.email, "Invalid email format")

			if tt.isValid {
				assert.False(t, v.HasErrors())
			} else {
				assert.True(t, v.HasErrors())
			}
		})
	}
}

/*
TestValidator_FirstErrorPerFieldWins ensures a blank field reports "required"
rather than the follow-up length error, matching the one-error-per-field
response contract.
*/
func TestValidator_FirstErrorPerFieldWins(t *testing.T) {
	v := &validate.Validator{}
	err := v.
		Required("password", "", "Password is required").
		MinLen("password", "", 6, "Password must be at least 6 characters").
		Err()

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, map[string]string{"password": "Password is required"}, ae.Fields)
}

/*
TestValidator_Chain tests the fluent API (chaining multiple rules).
*/
func TestValidator_Chain(t *testing.T) {
	v := &validate.Validator{}

	err := v.
		Required("username", "alice", "Username is required").
		MinLen("username", "alice", 3, "Username must be at least 3 characters").
		MaxLen("username", "alice", 10).
		Email("email", "alice@example.com", "Invalid email format").
		Err()

	assert.NoError(t, err)
	assert.False(t, v.HasErrors())
}

/*
TestValidator_Chain_Failure tests error accumulation across fields.
*/
func TestValidator_Chain_Failure(t *testing.T) {
	v := &validate.Validator{}

	err := v.
		Required("username", "", "Username is required").
		Required("email", "", "Email is required").
		MinLen("password", "12345", 6, "Password must be at least 6 characters").
		Err()

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)

	// One entry per failed field.
	assert.Len(t, ae.Fields, 3)
	assert.Contains(t, ae.Fields, "username")
	assert.Contains(t, ae.Fields, "email")
	assert.Contains(t, ae.Fields, "password")
}

/*
TestValidator_OneOf tests the closed-set rule used for role updates.
*/
func TestValidator_OneOf(t *testing.T) {
	v := &validate.Validator{}
	assert.NoError(t, v.OneOf("role", "admin", "user", "admin").Err())

	v = &validate.Validator{}
	err := v.OneOf("role", "superuser", "user", "admin").Err()
	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Contains(t, ae.Fields["role"], "Must be one of")
}
