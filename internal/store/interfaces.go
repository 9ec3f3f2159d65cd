// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/skillscope/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// KeyValueStore is the persistence medium behind every client store: a flat
// string-to-string map, the way browser local storage behaves.
type KeyValueStore interface {
	// Get returns the value stored under key, or [ErrKeyNotFound].
	Get(ctx context.Context, key string) (string, error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
	// Lock takes the store-wide exclusive lock used for read-modify-write
	// cycles. The returned function releases it. Returns [ErrLockTimeout]
	// when the lock could not be taken within the configured timeout.
	Lock(ctx context.Context) (unlock func(), err error)
	// Close releases the backend's resources.
	Close() error
}

// UserRecords is the list of registered accounts.
type UserRecords interface {
	LoadAll(ctx context.Context) []models.UserRecord
	SaveAll(ctx context.Context, records []models.UserRecord) error
	Update(ctx context.Context, fn func(records []models.UserRecord) ([]models.UserRecord, error)) error
}

// Session holds the account that is currently signed in.
type Session interface {
	Restore(ctx context.Context) *models.UserRecord
	Establish(ctx context.Context, record models.UserRecord) error
	Clear(ctx context.Context) error
	Current() *models.UserRecord
}

// Preferences holds per-device settings that survive logout.
type Preferences interface {
	Language(ctx context.Context) string
	SetLanguage(ctx context.Context, language string) error
	Theme(ctx context.Context) models.Theme
	SetTheme(ctx context.Context, theme models.Theme) error
}
