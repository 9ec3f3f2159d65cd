// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/MKhiriev/skillscope/internal/logger"
)

// fileKV keeps every key in one JSON object on disk. Reads go to the file
// each time so that writes by other processes are seen; writes replace the
// file atomically through a temp file and rename.
//
// Every write rewrites the whole object, so it holds the lock file for the
// read-modify-write; otherwise writing one key could drop another process's
// write of a different key.
type fileKV struct {
	path   string
	logger *logger.Logger

	mu   sync.Mutex
	lock *storeLock
}

// NewFileKeyValueStore opens (or prepares to create) the JSON store at path.
// The cross-process lock lives next to it in "<path>.lock".
func NewFileKeyValueStore(path string, lockTimeout time.Duration, logger *logger.Logger) (KeyValueStore, error) {
	if path == "" {
		return nil, errors.New("file storage path is empty")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}

	logger.Debug().Str("path", path).Msg("opening file key-value store")

	return &fileKV{
		path:   path,
		logger: logger,
		lock:   newStoreLock(path+".lock", lockTimeout),
	}, nil
}

func (s *fileKV) Get(ctx context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.read()
	if err != nil {
		return "", err
	}

	value, ok := values[key]
	if !ok {
		return "", ErrKeyNotFound
	}
	return value, nil
}

func (s *fileKV) Set(ctx context.Context, key, value string) error {
	return s.mutate(ctx, func(values map[string]string) bool {
		values[key] = value
		return true
	})
}

func (s *fileKV) Remove(ctx context.Context, key string) error {
	return s.mutate(ctx, func(values map[string]string) bool {
		if _, ok := values[key]; !ok {
			return false
		}
		delete(values, key)
		return true
	})
}

// mutate applies fn to the stored object under the file lock and writes the
// result if fn reports a change.
func (s *fileKV) mutate(ctx context.Context, fn func(values map[string]string) bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	unlock, err := s.lock.lockFile(ctx)
	if err != nil {
		return err
	}
	defer unlock()

	values, err := s.readForWrite()
	if err != nil {
		return err
	}

	if !fn(values) {
		return nil
	}
	return s.write(values)
}

func (s *fileKV) Lock(ctx context.Context) (func(), error) {
	return s.lock.lock(ctx)
}

func (s *fileKV) Close() error {
	return nil
}

func (s *fileKV) read() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read storage file: %w", err)
	}

	if len(data) == 0 {
		return map[string]string{}, nil
	}

	values := map[string]string{}
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptStore, err)
	}

	return values, nil
}

// readForWrite is read for mutations: a corrupt file is replaced by an empty
// store instead of blocking every future write.
func (s *fileKV) readForWrite() (map[string]string, error) {
	values, err := s.read()
	if errors.Is(err, ErrCorruptStore) {
		s.logger.Warn().Err(err).Str("path", s.path).Msg("discarding corrupt storage file")
		return map[string]string{}, nil
	}
	return values, err
}

func (s *fileKV) write(values map[string]string) error {
	payload, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return fmt.Errorf("encode storage: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".skillscope-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp storage file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err = tmp.Write(payload); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp storage file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync temp storage file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp storage file: %w", err)
	}
	if err = os.Chmod(tmpName, 0o600); err != nil {
		return fmt.Errorf("chmod temp storage file: %w", err)
	}

	if err = os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("replace storage file: %w", err)
	}

	return nil
}
