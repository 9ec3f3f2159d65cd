// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"time"
)

// parseFlags parses the client's command-line flags.
//
// Flags:
//
//	-b storage backend (file, sqlite, memory)
//	-s storage path (JSON file or sqlite database)
//	-lock-timeout storage lock timeout (e.g. "5s")
//	-hashing password hashing mode (bcrypt, plain)
//	-bcrypt-cost bcrypt work factor
//	-min-password minimum password length
//	-log-file log file path
//	-inline run the UI without the alternate screen
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("skillscope", flag.ContinueOnError)

	var (
		backend, storagePath, hashing, logFile, jsonConfigPath string
		lockTimeout                                            time.Duration
		bcryptCost, minPassword                                int
		inline                                                 bool
	)

	fs.StringVar(&backend, "b", "", "Storage backend: file, sqlite or memory")
	fs.StringVar(&storagePath, "s", "", "Storage path")
	fs.DurationVar(&lockTimeout, "lock-timeout", 0, "Storage lock timeout (e.g. 5s)")
	fs.StringVar(&hashing, "hashing", "", "Password hashing: bcrypt or plain")
	fs.IntVar(&bcryptCost, "bcrypt-cost", 0, "Bcrypt work factor")
	fs.IntVar(&minPassword, "min-password", 0, "Minimum password length")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.BoolVar(&inline, "inline", false, "Run without the alternate screen")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			PasswordHashing:   hashing,
			BcryptCost:        bcryptCost,
			MinPasswordLength: minPassword,
		},
		Storage: Storage{
			Backend:     backend,
			Path:        storagePath,
			LockTimeout: lockTimeout,
		},
		Log:          Log{File: logFile},
		UI:           UI{Inline: inline},
		JSONFilePath: jsonConfigPath,
	}, nil
}
