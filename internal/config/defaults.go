// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"time"
)

const (
	defaultBcryptCost        = 10
	defaultMinPasswordLength = 6
	defaultLockTimeout       = 5 * time.Second
	defaultStoreDir          = "skillscope"
)

// setDefaults fills every field still unset after merging.
func (cfg *StructuredConfig) setDefaults() {
	if cfg.App.PasswordHashing == "" {
		cfg.App.PasswordHashing = HashingBcrypt
	}
	if cfg.App.BcryptCost == 0 {
		cfg.App.BcryptCost = defaultBcryptCost
	}
	if cfg.App.MinPasswordLength == 0 {
		cfg.App.MinPasswordLength = defaultMinPasswordLength
	}

	if cfg.Storage.Backend == "" {
		cfg.Storage.Backend = BackendFile
	}
	if cfg.Storage.Path == "" && cfg.Storage.Backend != BackendMemory {
		cfg.Storage.Path = defaultStoragePath(cfg.Storage.Backend)
	}
	if cfg.Storage.LockTimeout == 0 {
		cfg.Storage.LockTimeout = defaultLockTimeout
	}

	if cfg.Log.File == "" {
		cfg.Log.File = filepath.Join(baseDir(), "client.log")
	}
}

func defaultStoragePath(backend string) string {
	name := "store.json"
	if backend == BackendSQLite {
		name = "store.db"
	}
	return filepath.Join(baseDir(), name)
}

func baseDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return defaultStoreDir
	}
	return filepath.Join(dir, defaultStoreDir)
}
