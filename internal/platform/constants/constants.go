// Copyright (c) 2026 DevOpsCorp. All rights reserved.

/*
Package constants provides centralized, immutable values for the service.

It defines default timeouts and cross-cutting keys that are shared between
different layers of the system, keeping magic strings and magic numbers out
of the business logic.
*/
package constants

import "time"

// # Metadata

const (
	// ServiceName is reported by the /health endpoint.
	ServiceName = "auth-api"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	DefaultReadTimeout = 5 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out writes of the response.
	DefaultWriteTimeout = 10 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle.
	GlobalRequestTimeout = 30 * time.Second

	// ShutdownTimeout is how long we wait for in-flight requests to complete during shutdown.
	ShutdownTimeout = 30 * time.Second
)

// # HTTP Headers

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderAuthorization = "Authorization"
)

// # Timestamp Formatting

const (
	// HealthTimestampFormat is the layout used for the /health timestamp field.
	HealthTimestampFormat = "2006-01-02 15:04:05"
)
