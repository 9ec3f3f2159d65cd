package store

import (
	"context"
	"sync"
)

// memoryKV keeps values in process memory only. Used for tests and for
// throwaway sessions started with the memory backend.
type memoryKV struct {
	mu     sync.RWMutex
	values map[string]string
	lock   *storeLock
}

// NewMemoryKeyValueStore returns an empty in-memory store.
func NewMemoryKeyValueStore() KeyValueStore {
	return &memoryKV{
		values: make(map[string]string),
		lock:   newStoreLock("", 0),
	}
}

func (s *memoryKV) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	if !ok {
		return "", ErrKeyNotFound
	}
	return value, nil
}

func (s *memoryKV) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value
	return nil
}

func (s *memoryKV) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.values, key)
	return nil
}

func (s *memoryKV) Lock(ctx context.Context) (func(), error) {
	return s.lock.lock(ctx)
}

func (s *memoryKV) Close() error {
	return nil
}
