// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Defaults applied to fields that no source has set.
const (
	DefaultAppName        = "CUI Validator API"
	DefaultAppDescription = "Validate a Romanian company identification number (CUI)"
	DefaultAppAuthor      = "Cristian L."
	DefaultLogLevel       = "debug"

	DefaultHTTPAddress     = "0.0.0.0:8000"
	DefaultRequestTimeout  = 10 * time.Second
	DefaultShutdownTimeout = 5 * time.Second

	// DefaultDotEnvPath is read, when present, before the environment.
	DefaultDotEnvPath = ".env"
)

// StructuredConfig is the top-level configuration container for the
// service. It is populated by merging values from environment variables,
// command-line flags, an optional JSON file and finally the built-in
// defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the metadata reported by /about and /version and the log level.
	App App `envPrefix:"APP_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Name is the API name reported by /about.
	// Env: APP_NAME
	Name string `env:"NAME"`

	// Description is the API description reported by /about.
	// Env: APP_DESCRIPTION
	Description string `env:"DESCRIPTION"`

	// Author is the API author reported by /about.
	// Env: APP_AUTHOR
	Author string `env:"AUTHOR"`

	// Version is the version string exposed via /version. When empty, the
	// linker-injected build version is used instead.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name (e.g. "debug", "info", "warn").
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8000").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds reading a request and writing its response
	// (e.g. "10s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout is how long in-flight requests are given to finish
	// once a stop signal is received.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`

	// RateLimit is the number of requests per second the server accepts
	// before answering 429. Zero disables rate limiting.
	// Env: SERVER_RATE_LIMIT
	RateLimit float64 `env:"RATE_LIMIT"`

	// RateBurst is the number of requests allowed at once. When zero and
	// RateLimit is set, it defaults to RateLimit rounded up.
	// Env: SERVER_RATE_BURST
	RateBurst int `env:"RATE_BURST"`
}

// defaultConfig returns the values used for fields left empty by every
// other source.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Name:        DefaultAppName,
			Description: DefaultAppDescription,
			Author:      DefaultAppAuthor,
			LogLevel:    DefaultLogLevel,
		},
		Server: Server{
			HTTPAddress:     DefaultHTTPAddress,
			RequestTimeout:  DefaultRequestTimeout,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (the first source providing a non-zero field wins):
//  1. Environment variables, including those loaded from a ./.env file
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// args are the command-line arguments without the program name.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv(DefaultDotEnvPath).
		withEnv().
		withFlags(args).
		withJSON().
		withDefaults().
		build()
}
