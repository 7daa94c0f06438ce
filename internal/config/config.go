// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// API server and the web rendering service. It aggregates all
// sub-configurations and is populated by merging defaults, environment
// variables, command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: environment label, log level,
	// the shared API token and password hashing parameters.
	App App `envPrefix:"APP_"`

	// Server holds network and timeout settings of the API server.
	Server Server `envPrefix:"SERVER_"`

	// Web holds settings of the frontend rendering service.
	Web Web `envPrefix:"WEB_"`

	// Workers holds settings of the background worker pools.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Environment is a free-form deployment label ("development",
	// "production", ...) logged at startup and shown in rendered pages.
	// Env: APP_ENVIRONMENT
	Environment string `env:"ENVIRONMENT"`

	// LogLevel is the minimal zerolog level ("debug", "info", "warn", "error").
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// APIToken is the shared secret every caller of the API must present as
	// "Authorization: Bearer <token>". Must be kept confidential.
	// Env: APP_API_TOKEN
	APIToken string `env:"API_TOKEN"`

	// HealthPath is the only request path exempt from authentication.
	// Env: APP_HEALTH_PATH
	HealthPath string `env:"HEALTH_PATH"`

	// PBKDF2Iterations is the iteration count embedded into newly created
	// password hash records. Values below 100000 are rejected.
	// Env: APP_PBKDF2_ITERATIONS
	PBKDF2Iterations int `env:"PBKDF2_ITERATIONS"`

	// PBKDF2MaxIterations is the highest iteration count a record may carry
	// to be verified. Records above it are treated as corrupt.
	// Env: APP_PBKDF2_MAX_ITERATIONS
	PBKDF2MaxIterations int `env:"PBKDF2_MAX_ITERATIONS"`

	// Version is the semantic version string of the running application.
	// Exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network and timeout settings for the API server.
type Server struct {
	// HTTPAddress is the TCP address on which the API server listens,
	// in "host:port" format (e.g. "127.0.0.1:8000").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// CORSOrigins lists the browser origins allowed to call the API.
	// Env: SERVER_CORS_ORIGINS (comma separated)
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:","`
}

// Web holds settings of the frontend rendering service.
type Web struct {
	// HTTPAddress is the TCP address on which the web service listens.
	// Env: WEB_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// APIURL is the base URL of the API server the web service calls.
	// Env: WEB_API_URL
	APIURL string `env:"API_URL"`

	// APIToken is the bearer token the web service presents to the API.
	// Falls back to App.APIToken when empty.
	// Env: WEB_API_TOKEN
	APIToken string `env:"API_TOKEN"`

	// StaticDir is the directory served under /static/.
	// Env: WEB_STATIC_DIR
	StaticDir string `env:"STATIC_DIR"`

	// RequestTimeout bounds every outbound call to the API.
	// Env: WEB_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background worker pools.
type Workers struct {
	// HashWorkers is the number of goroutines dedicated to password hashing
	// and verification.
	// Env: WORKERS_HASH_WORKERS
	HashWorkers int `env:"HASH_WORKERS"`
}

// Clone returns a deep copy of cfg. Slices are copied so that the clone can
// be handed to concurrent readers without sharing backing arrays.
func (cfg *StructuredConfig) Clone() StructuredConfig {
	clone := *cfg
	if cfg.Server.CORSOrigins != nil {
		clone.Server.CORSOrigins = append([]string(nil), cfg.Server.CORSOrigins...)
	}
	return clone
}

// WebAPIToken returns the token the web service must send to the API.
func (cfg *StructuredConfig) WebAPIToken() string {
	if cfg.Web.APIToken != "" {
		return cfg.Web.APIToken
	}
	return cfg.App.APIToken
}
