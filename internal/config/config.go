// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-tree-admin server and admin CLI. It is populated by merging values from
// environment variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds site-wide settings: keys, session parameters and the
	// themes and languages offered by the user edit form.
	App App `envPrefix:"APP_"`

	// Storage holds the database connection settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP and
	// gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// Mail holds the outgoing mail relay settings.
	Mail Mail `envPrefix:"MAIL_"`

	// Cleanup holds the inactivity cleanup defaults.
	Cleanup Cleanup `envPrefix:"CLEANUP_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration for the storage backend.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// App holds application-level configuration values.
type App struct {
	// HashKey is the HMAC key anti-forgery tokens are derived from.
	// Must be kept confidential.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// TokenSignKey is the secret key used to sign and verify session tokens.
	// Must be kept confidential.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every session token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// SessionDuration specifies how long a session remains valid after
	// sign-in (e.g. "24h").
	// Env: APP_SESSION_DURATION
	SessionDuration time.Duration `env:"SESSION_DURATION"`

	// Themes lists the themes a user may pick.
	// Env: APP_THEMES (comma separated)
	Themes []string `env:"THEMES"`

	// Languages lists the interface languages a user may pick, as BCP 47 tags.
	// Env: APP_LANGUAGES (comma separated)
	Languages []string `env:"LANGUAGES"`

	// MailFrom is the sender address of notifications sent outside of any tree.
	// Env: APP_MAIL_FROM
	MailFrom string `env:"MAIL_FROM"`

	// BaseURL is the public address of the site, quoted in notifications.
	// Env: APP_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// Version is the version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address of the gRPC health server. Empty
	// disables it.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is the database connection string. "postgres://" and
	// "postgresql://" DSNs open PostgreSQL; "sqlite://" or "file:" DSNs
	// open SQLite.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Mail holds the settings of the HTTP mail relay.
type Mail struct {
	// RelayURL is the endpoint notifications are posted to. Empty means
	// notifications are only logged.
	// Env: MAIL_RELAY_URL
	RelayURL string `env:"RELAY_URL"`

	// APIKey is sent as a bearer token to the relay.
	// Env: MAIL_API_KEY
	APIKey string `env:"API_KEY"`

	// Timeout bounds a single relay call.
	// Env: MAIL_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
}

// Cleanup holds the inactivity cleanup defaults.
type Cleanup struct {
	// Months is the default inactivity threshold in months (1–12).
	// Env: CLEANUP_MONTHS
	Months int `env:"MONTHS"`

	// Actor is the administrator account the admin CLI acts as.
	// Env: CLEANUP_ACTOR
	Actor string `env:"ACTOR"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Unset values receive their defaults before validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
