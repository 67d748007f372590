// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-bio-console server. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds credential and account settings.
	App App `envPrefix:"APP_"`

	// Biometric holds template encryption and matching settings.
	Biometric Biometric `envPrefix:"BIOMETRIC_"`

	// Storage holds configuration for the relational database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP and
	// gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the address of a remote console used by the CLI client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for the extraction pool and background
	// jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration for all storage backends used by the
// application.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// App holds application-level configuration values that control the session
// credential and the bootstrap account.
type App struct {
	// TokenSignKey is the secret key used to sign and verify session
	// credentials. Must be kept confidential.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued credential.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a credential and its session remain
	// valid after login (e.g. "1h", "30m").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// AdminLogin and AdminPassword describe the account created at startup
	// when it does not exist yet. Both empty disables seeding.
	// Env: APP_ADMIN_LOGIN, APP_ADMIN_PASSWORD
	AdminLogin    string `env:"ADMIN_LOGIN"`
	AdminPassword string `env:"ADMIN_PASSWORD"`

	// Version is the semantic version string of the running application.
	// Exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Biometric holds template protection and decision settings.
type Biometric struct {
	// EncryptionKey is the passphrase the template key is derived from.
	// Rotating it makes every enrolled template undecryptable.
	// Env: BIOMETRIC_ENCRYPTION_KEY
	EncryptionKey string `env:"ENCRYPTION_KEY"`

	// EncryptionSalt is the Argon2id salt for EncryptionKey.
	// Env: BIOMETRIC_ENCRYPTION_SALT
	EncryptionSalt string `env:"ENCRYPTION_SALT"`

	// FaceTolerance is the allowed distance for faces; the similarity
	// threshold is 1 - FaceTolerance.
	// Env: BIOMETRIC_FACE_TOLERANCE
	FaceTolerance float64 `env:"FACE_TOLERANCE"`

	// VoiceThreshold is the minimal cosine similarity for a voice match.
	// Env: BIOMETRIC_VOICE_THRESHOLD
	VoiceThreshold float64 `env:"VOICE_THRESHOLD"`

	// FaceCascadePath is the path to the pigo frontal face cascade file.
	// Env: BIOMETRIC_FACE_CASCADE_PATH
	FaceCascadePath string `env:"FACE_CASCADE_PATH"`

	// EnrollmentCompletesLogin moves a session straight to Complete after a
	// successful first enrollment instead of asking for a verification.
	// Env: BIOMETRIC_ENROLLMENT_COMPLETES_LOGIN
	EnrollmentCompletesLogin bool `env:"ENROLLMENT_COMPLETES_LOGIN"`

	// VerifyRatePerMinute and VerifyBurst bound verification attempts per
	// user.
	// Env: BIOMETRIC_VERIFY_RATE_PER_MINUTE, BIOMETRIC_VERIFY_BURST
	VerifyRatePerMinute float64 `env:"VERIFY_RATE_PER_MINUTE"`
	VerifyBurst         int     `env:"VERIFY_BURST"`

	// MaxPayloadBytes bounds the decoded size of a single capture.
	// Env: BIOMETRIC_MAX_PAYLOAD_BYTES
	MaxPayloadBytes int `env:"MAX_PAYLOAD_BYTES"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address on which the gRPC server listens,
	// in "host:port" format (e.g. "0.0.0.0:9090").
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects the driver by its scheme:
	// "postgres://..." opens PostgreSQL through pgx, "sqlite://path" or
	// "file:path" opens SQLite.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Adapter holds the remote console address used by the CLI client.
type Adapter struct {
	// HTTPAddress is the base address of the console HTTP API.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds the extraction pool size and the session sweep interval.
type Workers struct {
	// PoolSize is the number of extractions allowed to run at once.
	// Zero means GOMAXPROCS.
	// Env: WORKERS_POOL_SIZE
	PoolSize int `env:"POOL_SIZE"`

	// SessionSweepInterval is how often expired sessions are purged.
	// Env: WORKERS_SESSION_SWEEP_INTERVAL
	SessionSweepInterval time.Duration `env:"SESSION_SWEEP_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Defaults are applied after merging. Returns an error if any source fails
// to load or a required secret is missing.
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	return cfg, cfg.validate()
}
