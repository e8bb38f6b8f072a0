// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artem Voskresensky

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the sealnote
// client. It aggregates all sub-configurations and is populated by merging
// values from environment variables, command-line flags, an optional JSON
// file, and built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the share-link base URL
	// and the application version.
	App App `envPrefix:"APP_"`

	// Adapter holds network address, timeout, and retry settings for the
	// outbound note-store transport.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds configuration for the local persistence backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged under the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// LinkBaseURL is the origin used to build shareable note links
	// ({LinkBaseURL}/note/{locator}). Usually the public address of the
	// web front end, which may differ from the API address.
	// Env: APP_LINK_BASE_URL
	LinkBaseURL string `env:"LINK_BASE_URL"`

	// Version is the semantic version string of the running application
	// (e.g. "1.2.3").
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Adapter holds settings for the outbound HTTP transport to the note store.
type Adapter struct {
	// HTTPAddress is the base URL of the note store API
	// (e.g. "https://api.example.com" or "localhost:8000").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every single request attempt; an attempt
	// exceeding it is aborted and classified as a timeout (e.g. "10s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RetryCount is the number of additional attempts after the first
	// failed one. Zero disables retries.
	// Env: ADAPTER_RETRY_COUNT
	RetryCount int `env:"RETRY_COUNT"`

	// RetryWaitTime is the fixed delay between attempts (e.g. "1s").
	// Env: ADAPTER_RETRY_WAIT_TIME
	RetryWaitTime time.Duration `env:"RETRY_WAIT_TIME"`
}

// Storage groups the configuration for the local storage backends.
type Storage struct {
	// DB holds the local database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite file path used by the client
	// (e.g. "~/.config/sealnote/client.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (earlier sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
