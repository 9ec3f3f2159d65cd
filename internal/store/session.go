// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/skillscope/internal/logger"
	"github.com/MKhiriev/skillscope/models"
)

// SessionKey holds the JSON of the signed-in account.
const SessionKey = "skillscope_currentUser"

// SessionStore persists the signed-in account under [SessionKey] and keeps
// it in memory for the running process.
type SessionStore struct {
	kv     KeyValueStore
	logger *logger.Logger

	mu      sync.RWMutex
	current *models.UserRecord
}

// NewSessionStore returns a SessionStore with nobody signed in.
func NewSessionStore(kv KeyValueStore, logger *logger.Logger) *SessionStore {
	return &SessionStore{kv: kv, logger: logger}
}

// Restore loads the persisted session, if any, and makes it current.
//
// A value that does not parse as an account is removed from storage and
// Restore returns nil, so the next call is a clean miss.
func (s *SessionStore) Restore(ctx context.Context) *models.UserRecord {
	value, err := s.kv.Get(ctx, SessionKey)
	if errors.Is(err, ErrKeyNotFound) {
		s.setCurrent(nil)
		return nil
	}
	if err != nil {
		s.logger.Warn().Err(err).Str("func", "*SessionStore.Restore").Msg("cannot read session")
		s.setCurrent(nil)
		return nil
	}

	record, err := models.ParseUserRecord(json.RawMessage(value))
	if err != nil {
		s.logger.Warn().Err(err).Str("func", "*SessionStore.Restore").Msg("discarding unreadable session")
		if err = s.kv.Remove(ctx, SessionKey); err != nil {
			s.logger.Err(err).Str("func", "*SessionStore.Restore").Msg("error removing unreadable session")
		}
		s.setCurrent(nil)
		return nil
	}

	s.setCurrent(&record)
	return s.Current()
}

// Establish persists record as the signed-in account and makes it current.
func (s *SessionStore) Establish(ctx context.Context, record models.UserRecord) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	if err = s.kv.Set(ctx, SessionKey, string(payload)); err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	s.setCurrent(&record)
	return nil
}

// Clear signs the current account out. The in-memory session is dropped even
// if removing the persisted copy fails.
func (s *SessionStore) Clear(ctx context.Context) error {
	s.setCurrent(nil)

	if err := s.kv.Remove(ctx, SessionKey); err != nil {
		return fmt.Errorf("remove session: %w", err)
	}
	return nil
}

// Current returns a copy of the signed-in account, or nil.
func (s *SessionStore) Current() *models.UserRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return nil
	}
	record := *s.current
	return &record
}

func (s *SessionStore) setCurrent(record *models.UserRecord) {
	s.mu.Lock()
	s.current = record
	s.mu.Unlock()
}
