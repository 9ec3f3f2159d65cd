// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the JSON config file.
type StructuredJSONConfig struct {
	App struct {
		PasswordHashing   string `json:"password_hashing"`
		BcryptCost        int    `json:"bcrypt_cost"`
		MinPasswordLength int    `json:"min_password_length"`
	} `json:"app,omitempty"`

	Storage struct {
		Backend     string   `json:"backend"`
		Path        string   `json:"path"`
		LockTimeout Duration `json:"lock_timeout"`
	} `json:"storage,omitempty"`

	Log struct {
		File string `json:"file"`
	} `json:"log,omitempty"`

	UI struct {
		Inline bool `json:"inline"`
	} `json:"ui,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	return &StructuredConfig{
		App: App{
			PasswordHashing:   jsonCfg.App.PasswordHashing,
			BcryptCost:        jsonCfg.App.BcryptCost,
			MinPasswordLength: jsonCfg.App.MinPasswordLength,
		},
		Storage: Storage{
			Backend:     jsonCfg.Storage.Backend,
			Path:        jsonCfg.Storage.Path,
			LockTimeout: time.Duration(jsonCfg.Storage.LockTimeout),
		},
		Log: Log{File: jsonCfg.Log.File},
		UI:  UI{Inline: jsonCfg.UI.Inline},
	}, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as from integer nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
