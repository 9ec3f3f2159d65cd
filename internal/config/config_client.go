// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientApp holds the account policy used by the client services.
type ClientApp struct {
	// PasswordHashing is "bcrypt" or "plain".
	PasswordHashing string
	// BcryptCost is the bcrypt work factor.
	BcryptCost int
	// MinPasswordLength is the shortest accepted password.
	MinPasswordLength int
}

// ClientStorage holds key-value store settings.
type ClientStorage struct {
	// Backend is "file", "sqlite" or "memory".
	Backend string
	// Path is the store file or database path.
	Path string
	// LockTimeout bounds waiting for the cross-process lock.
	LockTimeout time.Duration
}

// ClientLog holds client logging settings.
type ClientLog struct {
	// File is where client logs are appended.
	File string
}

// ClientUI holds terminal UI settings.
type ClientUI struct {
	// Inline disables the alternate screen buffer.
	Inline bool
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Storage ClientStorage
	Log     ClientLog
	UI      ClientUI
}

// GetClientConfig builds a client-specific config view from the merged
// structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return clientConfigFrom(cfg), nil
}

func clientConfigFrom(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			PasswordHashing:   cfg.App.PasswordHashing,
			BcryptCost:        cfg.App.BcryptCost,
			MinPasswordLength: cfg.App.MinPasswordLength,
		},
		Storage: ClientStorage{
			Backend:     cfg.Storage.Backend,
			Path:        cfg.Storage.Path,
			LockTimeout: cfg.Storage.LockTimeout,
		},
		Log: ClientLog{File: cfg.Log.File},
		UI:  ClientUI{Inline: cfg.UI.Inline},
	}
}
