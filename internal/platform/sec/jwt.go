// Copyright (c) 2026 DevOpsCorp. All rights reserved.

// Package sec provides cryptographic primitives and token management.
//
// # Architecture
//
// This package isolates security-sensitive code (hashing, JWT signing) from
// the domain logic. It acts as an infrastructure service injected into the
// application layer via small interfaces.
package sec

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is the single failure outcome of [TokenService.Verify].
//
// # Why one error?
//
// Malformed tokens, bad signatures, and expired tokens all collapse into this
// error so that callers (and, transitively, API clients) cannot distinguish
// cryptographic failure modes.
var ErrInvalidToken = errors.New("sec: invalid or expired token")

// UserClaims is the identity claim set embedded in every session token.
type UserClaims struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// tokenClaims is the full JWT payload: the registered iat/exp claims plus the
// identity set nested under "data". The nesting matches the wire format the
// frontend already parses.
type tokenClaims struct {
	jwt.RegisteredClaims

	Data UserClaims `json:"data"`
}

// TokenService issues and verifies HMAC-signed session tokens.
//
// # Concurrency
//
// TokenService is immutable after construction and safe for concurrent use.
type TokenService struct {
	secret []byte
	method jwt.SigningMethod
	ttl    time.Duration
}

// NewTokenService creates a [TokenService] for the given shared secret,
// signing algorithm name (HS256, HS384 or HS512), and token lifetime.
//
// An empty secret or a non-HMAC algorithm is a configuration error; callers
// are expected to treat it as fatal at startup.
func NewTokenService(secret, algorithm string, ttl time.Duration) (*TokenService, error) {
	if secret == "" {
		return nil, errors.New("sec: signing secret must not be empty")
	}
	if ttl <= 0 {
		return nil, errors.New("sec: token TTL must be positive")
	}

	method := jwt.GetSigningMethod(algorithm)
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, errors.New("sec: unsupported signing algorithm " + algorithm)
	}

	return &TokenService{
		secret: []byte(secret),
		method: method,
		ttl:    ttl,
	}, nil
}

// Issue creates a signed token embedding the given claim set.
// Issued-at is now; expiry is now plus the configured TTL.
func (service *TokenService) Issue(claims UserClaims) (string, error) {
	currentTime := time.Now()
	payload := tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(currentTime),
			ExpiresAt: jwt.NewNumericDate(currentTime.Add(service.ttl)),
		},
		Data: claims,
	}

	token := jwt.NewWithClaims(service.method, payload)
	signedToken, err := token.SignedString(service.secret)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign token: %w", err)
	}

	return signedToken, nil
}

// Verify checks the signature and expiry of a token string and returns the
// embedded claim set.
//
// # Returns
//   - The [*UserClaims] if the token is authentic and not yet expired.
//   - [ErrInvalidToken] for every failure mode.
func (service *TokenService) Verify(tokenString string) (*UserClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &tokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Reject tokens signed with a different method family, including the
		// classic alg=none downgrade.
		if token.Method.Alg() != service.method.Alg() {
			return nil, ErrInvalidToken
		}
		return service.secret, nil
	})

	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	payload, ok := token.Claims.(*tokenClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	return &payload.Data, nil
}

// ExtractBearerToken pulls the token out of an Authorization header value.
//
// The "Bearer" scheme is matched case-insensitively. An absent or malformed
// header yields an empty string, never an error: missing credentials are a
// normal anonymous state, not a fault.
func ExtractBearerToken(authorizationHeader string) string {
	if authorizationHeader == "" {
		return ""
	}

	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}

	return parts[1]
}
