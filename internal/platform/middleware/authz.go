// Copyright (c) 2026 DevOpsCorp. All rights reserved.

package middleware

import (
	"net/http"

	"github.com/devopscorp/auth-api/internal/auth"
	"github.com/devopscorp/auth-api/internal/platform/apperr"
	"github.com/devopscorp/auth-api/internal/platform/constants"
	"github.com/devopscorp/auth-api/internal/platform/ctxutil"
	"github.com/devopscorp/auth-api/internal/platform/respond"
	"github.com/devopscorp/auth-api/internal/platform/sec"
)

// TokenVerifier defines the interface needed to verify tokens in middleware.
//
// # Why an interface?
//
// Defining TokenVerifier here decouples the middleware from the concrete
// [sec.TokenService], allowing mocks to be injected during unit testing.
type TokenVerifier interface {
	Verify(tokenString string) (*sec.UserClaims, error)
}

// RequireAuth blocks requests that do not carry a valid bearer token.
//
// # Flow
//  1. Extract the token from 'Authorization: Bearer <token>' (case-insensitive scheme).
//  2. If absent, abort with HTTP 401 "No token provided".
//  3. Verify signature and expiry via [TokenVerifier]; on failure abort with
//     HTTP 401 "Invalid or expired token".
//  4. Inject the verified [*sec.UserClaims] into the request context.
//
// The guard is an ordinary middleware that writes the 401 and stops the
// chain; it is mounted only on protected route groups, so a malformed
// Authorization header on a public route stays anonymous.
func RequireAuth(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			token := sec.ExtractBearerToken(request.Header.Get(constants.HeaderAuthorization))
			if token == "" {
				respond.Error(writer, request, apperr.Unauthorized("No token provided"))
				return
			}

			claims, err := verifier.Verify(token)
			if err != nil {
				respond.Error(writer, request, apperr.Unauthorized("Invalid or expired token"))
				return
			}

			ctx := ctxutil.WithClaims(request.Context(), claims)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequireRole blocks requests whose authenticated user does not meet the
// required role level.
//
// # Usage
//
// Must be registered in the router AFTER [RequireAuth].
func RequireRole(role auth.UserRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			claims := ctxutil.GetClaims(request.Context())

			if claims == nil {
				respond.Error(writer, request, apperr.Unauthorized("No token provided"))
				return
			}

			if !auth.UserRole(claims.Role).AtLeast(role) {
				respond.Error(writer, request, apperr.Forbidden("Insufficient permissions"))
				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}
