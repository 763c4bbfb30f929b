// Copyright (c) 2026 DevOpsCorp. All rights reserved.

package sec_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devopscorp/auth-api/internal/platform/sec"
)

const testSecret = "unit-test-secret-at-least-32-bytes!!"

/*
TestNewTokenService_Configuration rejects unusable configurations at
construction time: these must be fatal startup errors, not runtime fallbacks.
*/
func TestNewTokenService_Configuration(t *testing.T) {
	tests := []struct {
		name      string
		secret    string
		algorithm string
		ttl       time.Duration
		wantError bool
	}{
		{"hs256", testSecret, "HS256", time.Hour, false},
		{"hs384", testSecret, "HS384", time.Hour, false},
		{"hs512", testSecret, "HS512", time.Hour, false},
		{"empty_secret", "", "HS256", time.Hour, true},
		{"zero_ttl", testSecret, "HS256", 0, true},
		{"rsa_not_hmac", testSecret, "RS256", time.Hour, true},
		{"none_algorithm", testSecret, "none", time.Hour, true},
		{"unknown_algorithm", testSecret, "HS1024", time.Hour, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := sec.NewTokenService(tt.secret, tt.algorithm, tt.ttl)
			if tt.wantError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

/*
TestTokenService_RoundTrip verifies that claims survive issue+verify intact
while the clock is before expiry.
*/
func TestTokenService_RoundTrip(t *testing.T) {
	service, err := sec.NewTokenService(testSecret, "HS256", time.Hour)
	require.NoError(t, err)

	claims := sec.UserClaims{
		ID:       42,
		Username: "alice",
		Email:    "a@x.com",
		Role:     "user",
	}

	token, err := service.Issue(claims)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	decoded, err := service.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, claims, *decoded)
}

/*
TestTokenService_Verify_Failures collapses every failure mode into the single
ErrInvalidToken outcome: tampered signature, truncation, expiry, garbage input,
wrong secret, and wrong algorithm family are all indistinguishable.
*/
func TestTokenService_Verify_Failures(t *testing.T) {
	service, err := sec.NewTokenService(testSecret, "HS256", time.Hour)
	require.NoError(t, err)

	token, err := service.Issue(sec.UserClaims{ID: 1, Username: "bob", Email: "b@x.com", Role: "user"})
	require.NoError(t, err)

	t.Run("tampered_signature", func(t *testing.T) {
		tampered := token[:len(token)-1] + flipChar(token[len(token)-1])
		claims, err := service.Verify(tampered)
		assert.Nil(t, claims)
		assert.ErrorIs(t, err, sec.ErrInvalidToken)
	})

	t.Run("truncated", func(t *testing.T) {
		claims, err := service.Verify(token[:len(token)-1])
		assert.Nil(t, claims)
		assert.ErrorIs(t, err, sec.ErrInvalidToken)
	})

	t.Run("malformed", func(t *testing.T) {
		for _, garbage := range []string{"", "not-a-token", "a.b", "a.b.c.d"} {
			claims, err := service.Verify(garbage)
			assert.Nil(t, claims)
			assert.ErrorIs(t, err, sec.ErrInvalidToken)
		}
	})

	t.Run("expired", func(t *testing.T) {
		shortLived, err := sec.NewTokenService(testSecret, "HS256", time.Nanosecond)
		require.NoError(t, err)

		expiredToken, err := shortLived.Issue(sec.UserClaims{ID: 1})
		require.NoError(t, err)

		// The 1ns lifetime has elapsed long before this call.
		claims, err := shortLived.Verify(expiredToken)
		assert.Nil(t, claims)
		assert.ErrorIs(t, err, sec.ErrInvalidToken)
	})

	t.Run("wrong_secret", func(t *testing.T) {
		other, err := sec.NewTokenService("a-completely-different-secret-value", "HS256", time.Hour)
		require.NoError(t, err)

		claims, err := other.Verify(token)
		assert.Nil(t, claims)
		assert.ErrorIs(t, err, sec.ErrInvalidToken)
	})

	t.Run("wrong_algorithm_family", func(t *testing.T) {
		hs512, err := sec.NewTokenService(testSecret, "HS512", time.Hour)
		require.NoError(t, err)

		hs512Token, err := hs512.Issue(sec.UserClaims{ID: 1})
		require.NoError(t, err)

		claims, err := service.Verify(hs512Token)
		assert.Nil(t, claims)
		assert.ErrorIs(t, err, sec.ErrInvalidToken)
	})
}

/*
TestExtractBearerToken covers the case-insensitive scheme match and the
"absence is not an error" contract.
*/
func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"standard", "Bearer abc.def.ghi", "abc.def.ghi"},
		{"lowercase_scheme", "bearer abc.def.ghi", "abc.def.ghi"},
		{"uppercase_scheme", "BEARER abc.def.ghi", "abc.def.ghi"},
		{"extra_whitespace", "Bearer   abc.def.ghi", "abc.def.ghi"},
		{"empty_header", "", ""},
		{"scheme_only", "Bearer", ""},
		{"wrong_scheme", "Basic dXNlcjpwYXNz", ""},
		{"no_scheme", "abc.def.ghi", ""},
		{"trailing_junk", "Bearer abc def", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sec.ExtractBearerToken(tt.header))
		})
	}
}

// flipChar returns a different character so a signature byte changes for sure.
func flipChar(c byte) string {
	if c == 'a' {
		return "b"
	}
	return "a"
}
