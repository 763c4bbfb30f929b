// Copyright (c) 2026 DevOpsCorp. All rights reserved.

package middleware_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devopscorp/auth-api/internal/auth"
	"github.com/devopscorp/auth-api/internal/platform/ctxutil"
	"github.com/devopscorp/auth-api/internal/platform/middleware"
	"github.com/devopscorp/auth-api/internal/platform/sec"
)

// stubVerifier accepts exactly one token string and returns canned claims.
type stubVerifier struct {
	accept string
	claims *sec.UserClaims
}

func (verifier *stubVerifier) Verify(tokenString string) (*sec.UserClaims, error) {
	if tokenString == verifier.accept {
		return verifier.claims, nil
	}
	return nil, errors.New("verification failed")
}

// decodeError unmarshals the standard failure envelope.
func decodeError(t *testing.T, recorder *httptest.ResponseRecorder) (bool, string) {
	t.Helper()
	var body struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return body.Success, body.Error
}

/*
TestRequireAuth covers the three outcomes of the bearer-token guard: absent
token, rejected token, and accepted token with claims injected downstream.
*/
func TestRequireAuth(t *testing.T) {
	verifier := &stubVerifier{
		accept: "good-token",
		claims: &sec.UserClaims{ID: 7, Username: "alice", Email: "a@x.com", Role: "user"},
	}

	var seenClaims *sec.UserClaims
	next := http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		seenClaims = ctxutil.GetClaims(request.Context())
		writer.WriteHeader(http.StatusNoContent)
	})
	guarded := middleware.RequireAuth(verifier)(next)

	t.Run("missing_token", func(t *testing.T) {
		seenClaims = nil
		recorder := httptest.NewRecorder()
		guarded.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/me", nil))

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		success, message := decodeError(t, recorder)
		assert.False(t, success)
		assert.Equal(t, "No token provided", message)
		assert.Nil(t, seenClaims)
	})

	t.Run("invalid_token", func(t *testing.T) {
		seenClaims = nil
		request := httptest.NewRequest(http.MethodGet, "/me", nil)
		request.Header.Set("Authorization", "Bearer bad-token")

		recorder := httptest.NewRecorder()
		guarded.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		success, message := decodeError(t, recorder)
		assert.False(t, success)
		assert.Equal(t, "Invalid or expired token", message)
		assert.Nil(t, seenClaims)
	})

	t.Run("valid_token", func(t *testing.T) {
		seenClaims = nil
		request := httptest.NewRequest(http.MethodGet, "/me", nil)
		request.Header.Set("Authorization", "Bearer good-token")

		recorder := httptest.NewRecorder()
		guarded.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusNoContent, recorder.Code)
		require.NotNil(t, seenClaims)
		assert.Equal(t, int64(7), seenClaims.ID)
	})
}

/*
TestRequireRole verifies the role gate: anonymous requests get 401, an
insufficient role gets 403, and admin passes through.
*/
func TestRequireRole(t *testing.T) {
	next := http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusNoContent)
	})
	adminOnly := middleware.RequireRole(auth.UserRoleAdmin)(next)

	t.Run("anonymous", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		adminOnly.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/users", nil))

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("insufficient_role", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodGet, "/users", nil)
		ctx := ctxutil.WithClaims(request.Context(), &sec.UserClaims{ID: 1, Role: "user"})

		recorder := httptest.NewRecorder()
		adminOnly.ServeHTTP(recorder, request.WithContext(ctx))

		assert.Equal(t, http.StatusForbidden, recorder.Code)
		success, message := decodeError(t, recorder)
		assert.False(t, success)
		assert.Equal(t, "Insufficient permissions", message)
	})

	t.Run("admin", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodGet, "/users", nil)
		ctx := ctxutil.WithClaims(request.Context(), &sec.UserClaims{ID: 1, Role: "admin"})

		recorder := httptest.NewRecorder()
		adminOnly.ServeHTTP(recorder, request.WithContext(ctx))

		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})
}
