// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/skillscope/internal/logger"
	"github.com/MKhiriev/skillscope/models"
)

// UsersKey holds the JSON array of every registered account.
const UsersKey = "skillscope_users"

// CredentialStore persists the list of registered accounts under [UsersKey].
type CredentialStore struct {
	kv     KeyValueStore
	logger *logger.Logger
}

// NewCredentialStore returns a CredentialStore on top of kv.
func NewCredentialStore(kv KeyValueStore, logger *logger.Logger) *CredentialStore {
	return &CredentialStore{kv: kv, logger: logger}
}

// LoadAll returns every well-formed stored account in storage order.
//
// It never fails: a missing key yields an empty list, and unreadable storage
// or a value that is not a JSON array is logged and also yields an empty list.
// Entries rejected by [models.ParseUserRecord] are dropped with a warning.
func (s *CredentialStore) LoadAll(ctx context.Context) []models.UserRecord {
	records := make([]models.UserRecord, 0)

	value, err := s.kv.Get(ctx, UsersKey)
	if errors.Is(err, ErrKeyNotFound) {
		return records
	}
	if err != nil {
		s.logger.Warn().Err(err).Str("func", "*CredentialStore.LoadAll").Msg("cannot read accounts, treating store as empty")
		return records
	}

	var raw []json.RawMessage
	if err = json.Unmarshal([]byte(value), &raw); err != nil {
		s.logger.Warn().Err(err).Str("func", "*CredentialStore.LoadAll").Msg("stored accounts are not a JSON array, treating store as empty")
		return records
	}

	for i, entry := range raw {
		record, err := models.ParseUserRecord(entry)
		if err != nil {
			s.logger.Warn().Err(err).Int("index", i).Str("func", "*CredentialStore.LoadAll").Msg("dropping malformed account")
			continue
		}
		records = append(records, record)
	}

	return records
}

// SaveAll overwrites the stored list with records.
func (s *CredentialStore) SaveAll(ctx context.Context, records []models.UserRecord) error {
	if records == nil {
		records = []models.UserRecord{}
	}

	payload, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode accounts: %w", err)
	}

	if err = s.kv.Set(ctx, UsersKey, string(payload)); err != nil {
		return fmt.Errorf("save accounts: %w", err)
	}
	return nil
}

// Update runs one read-modify-write cycle under the store lock: the current
// list is loaded, passed to fn, and fn's result is saved. Nothing is saved if
// fn returns an error, which is returned unchanged.
func (s *CredentialStore) Update(ctx context.Context, fn func(records []models.UserRecord) ([]models.UserRecord, error)) error {
	unlock, err := s.kv.Lock(ctx)
	if err != nil {
		return err
	}
	defer unlock()

	records, err := fn(s.LoadAll(ctx))
	if err != nil {
		return err
	}

	return s.SaveAll(ctx, records)
}
