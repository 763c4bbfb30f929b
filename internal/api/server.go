// Copyright (c) 2026 DevOpsCorp. All rights reserved.

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost presentation layer boundary.
  - It acts as the central composition root for the HTTP transport (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.

The route table is plain Go: every path maps to a typed handler method, so a
missing handler is a compile error rather than a runtime dispatch failure.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/devopscorp/auth-api/internal/admin"
	"github.com/devopscorp/auth-api/internal/auth"
	"github.com/devopscorp/auth-api/internal/platform/config"
	"github.com/devopscorp/auth-api/internal/platform/constants"
	"github.com/devopscorp/auth-api/internal/platform/middleware"
	"github.com/devopscorp/auth-api/internal/platform/respond"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
//
// # Usage
//
// New domains add a field here — no other change to server.go is required.
type Handlers struct {
	// Liveness is the /health handler — always returns 200 if the process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler — returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Auth handles registration, login, introspection, and logout.
	Auth *auth.Handler

	// Admin handles administrative user management.
	Admin *admin.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers the route table.
func NewServer(cfg *config.Config, log *slog.Logger, verifier middleware.TokenVerifier, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(middleware.DebugMode(cfg.Debug))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.CORS(cfg.CORSOrigin))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Application API
	r.Route("/api", func(api chi.Router) {
		// Public routes. Logout never checks the token: there is no
		// server-side session state to clear.
		api.Post("/register", h.Auth.Register)
		api.Post("/login", h.Auth.Login)
		api.Post("/logout", h.Auth.Logout)

		// Protected routes.
		api.Group(func(protected chi.Router) {
			protected.Use(middleware.RequireAuth(verifier))
			protected.Get("/me", h.Auth.Me)

			// Administrative routes stack RequireRole on top of RequireAuth.
			protected.Group(func(adminOnly chi.Router) {
				adminOnly.Use(middleware.RequireRole(auth.UserRoleAdmin))
				adminOnly.Get("/users", h.Admin.ListUsers)
				adminOnly.Put("/users/{id}/role", h.Admin.UpdateRole)
				adminOnly.Delete("/users/{id}", h.Admin.DeleteUser)
			})
		})
	})

	// # Fallbacks
	// Unmatched paths and methods both produce the standard 404 body.
	r.NotFound(notFoundHandler)
	r.MethodNotAllowed(notFoundHandler)

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// Router exposes the composed handler, primarily for tests driving the
// server through httptest.
func (s *Server) Router() http.Handler {
	return s.router
}

// notFoundHandler writes the canonical unmatched-route response.
func notFoundHandler(writer http.ResponseWriter, request *http.Request) {
	respond.JSON(writer, http.StatusNotFound, map[string]any{
		"success": false,
		"error":   "Route not found",
	})
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}
