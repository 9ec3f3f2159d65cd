// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/skillscope/internal/logger"
)

const kvTable = "kv"

// sqliteKV stores every key as one row of the kv table.
type sqliteKV struct {
	db   *DB
	lock *storeLock
}

// NewSQLiteKeyValueStore connects to the database at dsn, runs the
// migrations and returns the store. The cross-process lock lives in
// "<dsn>.lock".
func NewSQLiteKeyValueStore(ctx context.Context, dsn string, lockTimeout time.Duration, logger *logger.Logger) (KeyValueStore, error) {
	db, err := NewConnectSQLite(ctx, dsn, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return newSQLiteKV(db, newStoreLock(dsn+".lock", lockTimeout)), nil
}

func newSQLiteKV(db *DB, lock *storeLock) *sqliteKV {
	return &sqliteKV{db: db, lock: lock}
}

func (s *sqliteKV) Get(ctx context.Context, key string) (string, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select("value").From(kvTable).Where(sq.Eq{"key": key}).ToSql()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", ErrKeyNotFound
	case err != nil:
		log.Err(err).Str("func", "*sqliteKV.Get").Str("key", key).Msg("error reading key")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, nil
}

func (s *sqliteKV) Set(ctx context.Context, key, value string) error {
	log := logger.FromContext(ctx)

	query, args, err := sq.Insert(kvTable).
		Columns("key", "value", "updated_at").
		Values(key, value, sq.Expr("CURRENT_TIMESTAMP")).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*sqliteKV.Set").Str("key", key).Msg("error writing key")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqliteKV) Remove(ctx context.Context, key string) error {
	log := logger.FromContext(ctx)

	query, args, err := sq.Delete(kvTable).Where(sq.Eq{"key": key}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*sqliteKV.Remove").Str("key", key).Msg("error removing key")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqliteKV) Lock(ctx context.Context) (func(), error) {
	return s.lock.lock(ctx)
}

func (s *sqliteKV) Close() error {
	return s.db.Close()
}
