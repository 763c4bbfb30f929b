// Copyright (c) 2026 DevOpsCorp. All rights reserved.

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components via constructors.
  - Zero Hidden State: No global variables are used to store config.

A missing JWT_SECRET or DATABASE_URL fails Load, which callers treat as a
fatal startup error — there is no runtime fallback secret.
*/
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// # Configuration Schema

// Config holds all runtime configuration for the auth API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`

	// Debug controls whether 500 responses carry the underlying error detail.
	Debug bool `env:"APP_DEBUG" envDefault:"false"`

	// Relational Database (PostgreSQL)
	DatabaseURL string `env:"DATABASE_URL,required"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// Session token signing
	JWTSecret     string `env:"JWT_SECRET,required"`
	JWTAlgorithm  string `env:"JWT_ALGORITHM"  envDefault:"HS256"`
	JWTExpiration int    `env:"JWT_EXPIRATION" envDefault:"3600"` // seconds

	// BcryptCost is the work factor for password hashing.
	BcryptCost int `env:"BCRYPT_COST" envDefault:"12"`

	// CORSOrigin is the value emitted as Access-Control-Allow-Origin.
	CORSOrigin string `env:"CORS_ORIGIN" envDefault:"*"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {
	cfg := &Config{}

	// Use the 'env' package to map environment variables to struct fields.
	// This will fail if any field marked with 'required' is missing.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if cfg.JWTExpiration <= 0 {
		return nil, fmt.Errorf("config: JWT_EXPIRATION must be positive, got %d", cfg.JWTExpiration)
	}

	return cfg, nil
}

// TokenTTL returns the configured token lifetime as a [time.Duration].
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.JWTExpiration) * time.Second
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
