// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gofrs/flock"
)

const lockRetryDelay = 25 * time.Millisecond

// storeLock serialises read-modify-write cycles within the process (sem) and,
// when a lock file is configured, across processes sharing the same store.
type storeLock struct {
	sem     chan struct{}
	file    *sharedFlock
	timeout time.Duration
}

// newStoreLock returns a lock guarding lockPath. An empty lockPath gives an
// in-process lock only.
func newStoreLock(lockPath string, timeout time.Duration) *storeLock {
	l := &storeLock{
		sem:     make(chan struct{}, 1),
		timeout: timeout,
	}
	if lockPath != "" {
		l.file = &sharedFlock{file: flock.New(lockPath)}
	}
	return l
}

// lock takes the exclusive lock used by multi-step updates.
func (l *storeLock) lock(ctx context.Context) (func(), error) {
	ctx, cancel := l.withTimeout(ctx)
	defer cancel()

	select {
	case l.sem <- struct{}{}:
	case <-ctx.Done():
		return nil, lockError(ctx.Err())
	}

	if l.file == nil {
		return func() { <-l.sem }, nil
	}

	release, err := l.file.acquire(ctx)
	if err != nil {
		<-l.sem
		return nil, lockError(err)
	}

	return func() {
		release()
		<-l.sem
	}, nil
}

// lockFile keeps other processes out for a single file rewrite. If this
// handle already holds the file lock (an update is in progress) it only adds
// a reference.
func (l *storeLock) lockFile(ctx context.Context) (func(), error) {
	if l.file == nil {
		return func() {}, nil
	}

	ctx, cancel := l.withTimeout(ctx)
	defer cancel()

	release, err := l.file.acquire(ctx)
	if err != nil {
		return nil, lockError(err)
	}
	return release, nil
}

func (l *storeLock) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if l.timeout > 0 {
		return context.WithTimeout(ctx, l.timeout)
	}
	return ctx, func() {}
}

// sharedFlock reference-counts one flock so that every goroutine of the
// handle can use it while it is held. The file is unlocked with the last
// reference.
type sharedFlock struct {
	mu   sync.Mutex
	refs int
	file *flock.Flock
}

func (s *sharedFlock) acquire(ctx context.Context) (func(), error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.refs == 0 {
		locked, err := s.file.TryLockContext(ctx, lockRetryDelay)
		if err == nil && !locked {
			err = ctx.Err()
		}
		if err != nil {
			return nil, err
		}
	}
	s.refs++

	var once sync.Once
	return func() {
		once.Do(s.release)
	}, nil
}

func (s *sharedFlock) release() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.refs--
	if s.refs == 0 {
		_ = s.file.Unlock()
	}
}

func lockError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrLockTimeout
	}
	return fmt.Errorf("error taking storage lock: %w", err)
}
