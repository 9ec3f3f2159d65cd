// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

const (
	minBcryptCost = 4
	maxBcryptCost = 31

	// floorPasswordLength is the shortest password any configuration may allow.
	floorPasswordLength = 6
)

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used at startup. It runs after setDefaults.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Storage.Backend {
	case BackendFile, BackendSQLite:
		if cfg.Storage.Path == "" {
			return fmt.Errorf("%w: %s backend needs a path", ErrInvalidStorageConfigs, cfg.Storage.Backend)
		}
	case BackendMemory:
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidStorageConfigs, cfg.Storage.Backend)
	}

	if cfg.Storage.LockTimeout <= 0 {
		return fmt.Errorf("%w: lock timeout must be positive", ErrInvalidStorageConfigs)
	}

	switch cfg.App.PasswordHashing {
	case HashingBcrypt:
		if cfg.App.BcryptCost < minBcryptCost || cfg.App.BcryptCost > maxBcryptCost {
			return fmt.Errorf("%w: bcrypt cost %d out of range [%d, %d]",
				ErrInvalidAppConfigs, cfg.App.BcryptCost, minBcryptCost, maxBcryptCost)
		}
	case HashingPlain:
	default:
		return fmt.Errorf("%w: unknown password hashing %q", ErrInvalidAppConfigs, cfg.App.PasswordHashing)
	}

	if cfg.App.MinPasswordLength < floorPasswordLength {
		return fmt.Errorf("%w: minimum password length %d is below %d",
			ErrInvalidAppConfigs, cfg.App.MinPasswordLength, floorPasswordLength)
	}

	return nil
}
