// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Supported storage backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Supported password hashing modes.
const (
	HashingBcrypt = "bcrypt"
	HashingPlain  = "plain"
)

// StructuredConfig is the top-level configuration container for the client.
// It is populated by merging values from environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds account rules: password hashing and length policy.
	App App `envPrefix:"APP_"`

	// Storage selects and configures the key-value backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Log holds logging output settings.
	Log Log `envPrefix:"LOG_"`

	// UI holds terminal UI settings.
	UI UI `envPrefix:"UI_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// EnvFilePath is the optional path to a .env file loaded before the
	// environment is parsed. Populated via the ENV_FILE environment variable.
	EnvFilePath string `env:"ENV_FILE"`
}

// App holds account policy settings.
type App struct {
	// PasswordHashing is either "bcrypt" or "plain".
	// Env: APP_PASSWORD_HASHING
	PasswordHashing string `env:"PASSWORD_HASHING"`

	// BcryptCost is the bcrypt work factor used when PasswordHashing is
	// "bcrypt".
	// Env: APP_BCRYPT_COST
	BcryptCost int `env:"BCRYPT_COST"`

	// MinPasswordLength is the shortest password accepted at signup and
	// reset. Never below 6.
	// Env: APP_MIN_PASSWORD_LENGTH
	MinPasswordLength int `env:"MIN_PASSWORD_LENGTH"`
}

// Storage holds settings for the key-value store that backs accounts,
// the session and preferences.
type Storage struct {
	// Backend is one of "file", "sqlite" or "memory".
	// Env: STORAGE_BACKEND
	Backend string `env:"BACKEND"`

	// Path is the JSON file path (file backend) or the database file
	// (sqlite backend). Ignored by the memory backend.
	// Env: STORAGE_PATH
	Path string `env:"PATH"`

	// LockTimeout bounds how long a read-modify-write cycle waits for the
	// cross-process lock.
	// Env: STORAGE_LOCK_TIMEOUT
	LockTimeout time.Duration `env:"LOCK_TIMEOUT"`
}

// Log holds logging output settings.
type Log struct {
	// File is where client logs are appended.
	// Env: LOG_FILE
	File string `env:"FILE"`
}

// UI holds terminal UI settings.
type UI struct {
	// Inline disables the alternate screen buffer.
	// Env: UI_INLINE
	Inline bool `env:"INLINE"`
}

// GetStructuredConfig loads, merges, defaults and validates the
// configuration from all available sources.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(nil).
		withJSON().
		build()
}
