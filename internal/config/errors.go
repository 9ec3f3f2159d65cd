package config

import "errors"

// Validation errors returned when the merged configuration is incomplete or
// invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (unknown backend, empty path, non-positive lock timeout).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid account policy settings
	// (unknown hashing mode, bcrypt cost out of range, password length
	// below the floor).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)
