// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// sync client and the sync backend. It is populated by merging values from
// a .env file, environment variables, command-line flags and an optional
// JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds identity, token and version settings.
	App App `envPrefix:"APP_"`

	// Storage holds the database connection settings. The client points
	// it at a SQLite file, the backend at PostgreSQL.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the listen address and timeouts of the backend.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the client's connection to the backend.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds background job settings of the client.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file merged
	// on top of env and flags. Env: CONFIG, flags: -c / -config.
	JSONFilePath string `env:"CONFIG"`

	// DotEnvPath names a .env file loaded before the environment is parsed.
	// Variables already present in the environment take precedence.
	// Env: DOTENV_PATH, flag: -env-file. Defaults to ".env".
	DotEnvPath string `env:"DOTENV_PATH"`

	// IssueTokenFor makes the backend print a signed token for this user id
	// and exit. Flag only: -issue-token.
	IssueTokenFor int64
}

// Storage groups the configuration of the persistence backend.
type Storage struct {
	// DB holds the database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the database.
type DB struct {
	// DSN is a SQLite file path on the client and a PostgreSQL connection
	// string on the backend.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// App holds application-level configuration values.
type App struct {
	// UserID is the user the client synchronizes.
	// Env: APP_USER_ID
	UserID int64 `env:"USER_ID"`

	// DeviceName and Platform describe this device on registration.
	// Env: APP_DEVICE_NAME, APP_PLATFORM
	DeviceName string `env:"DEVICE_NAME"`
	Platform   string `env:"PLATFORM"`

	// LogFile is where the client writes its rotated log.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of issued tokens.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is how long an issued token stays valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Version is the semantic version of the running application, exposed
	// via /api/version/ and sent on device registration.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network and timeout settings of the backend HTTP server.
type Server struct {
	// HTTPAddress is the "host:port" the backend listens on.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the client's settings for talking to the backend.
type Adapter struct {
	// HTTPAddress is the base URL (or host:port) of the sync backend.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// Token is the bearer token presented to the backend. Without it the
	// client runs offline and every sync reports "not logged in".
	// Env: ADAPTER_TOKEN
	Token string `env:"TOKEN"`

	// RequestTimeout bounds a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SyncInterval is the period of the background sync.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`
}

// GetStructuredConfig loads and merges the configuration from all sources in
// the following priority order (last source wins for non-zero fields):
//  1. .env file (only for variables not already set)
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 1-3)
func GetStructuredConfig() (*StructuredConfig, error) {
	return getStructuredConfig(os.Args[1:])
}

func getStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv(args).
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
