// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// server and the client binaries.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token, password hashing and version settings.
	App App `envPrefix:"APP_"`

	// Storage holds the server database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds listener addresses and timeouts.
	Server Server `envPrefix:"SERVER_"`

	// Telemetry holds the OpenTelemetry exporter settings.
	Telemetry Telemetry `envPrefix:"TELEMETRY_"`

	// Adapter holds the client's view of the server API.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Client holds client-only local storage settings.
	Client Client `envPrefix:"CLIENT_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// TokenSignKey is the HMAC key used to sign and verify session tokens.
	// Required on the server.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in, and required of, every
	// session token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// PasswordHashCost is the bcrypt cost for new password hashes. Zero or
	// out-of-range values use bcrypt's default.
	// Env: APP_PASSWORD_HASH_COST
	PasswordHashCost int `env:"PASSWORD_HASH_COST"`

	// Version is exposed via GET /version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the server's persistence settings.
type Storage struct {
	DB DBConfig `envPrefix:"DB_"`
}

// DBConfig holds connection settings for PostgreSQL.
type DBConfig struct {
	// DSN is the PostgreSQL connection string. When empty the server keeps
	// accounts and notes in memory.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// Env: STORAGE_DB_MAX_OPEN_CONNS
	MaxOpenConns int `env:"MAX_OPEN_CONNS"`

	// Env: STORAGE_DB_MAX_IDLE_CONNS
	MaxIdleConns int `env:"MAX_IDLE_CONNS"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the host:port the REST API listens on.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the host:port of the gRPC health service. Empty
	// disables the gRPC listener.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Telemetry configures tracing export.
type Telemetry struct {
	// OTLPEndpoint is the OTLP/HTTP collector endpoint (host:port). Empty
	// disables tracing.
	// Env: TELEMETRY_OTLP_ENDPOINT
	OTLPEndpoint string `env:"OTLP_ENDPOINT"`

	// ServiceName is reported as service.name on every span.
	// Env: TELEMETRY_SERVICE_NAME
	ServiceName string `env:"SERVICE_NAME"`
}

// Adapter holds the client's connection settings for the notes API.
type Adapter struct {
	// HTTPAddress is the base URL of the notes API,
	// e.g. "http://localhost:8080".
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Client holds client-only settings.
type Client struct {
	// SessionDSN is the SQLite file that stores the current login.
	// Env: CLIENT_SESSION_DSN
	SessionDSN string `env:"SESSION_DSN"`
}

// GetServerConfig loads and validates the server configuration from the
// environment, args (usually os.Args[1:]) and the optional JSON file.
func GetServerConfig(args []string) (*StructuredConfig, error) {
	cfg, _, err := newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		withDefaults().
		build()
	if err != nil {
		return nil, err
	}

	if err = cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid server config: %w", err)
	}

	return cfg, nil
}
