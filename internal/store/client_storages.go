package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/skillscope/internal/config"
	"github.com/MKhiriev/skillscope/internal/logger"
)

// ClientStorages groups every client-side store into a single value that can
// be passed around the service layer. All stores share one [KeyValueStore].
type ClientStorages struct {
	// KV is the backend chosen by configuration. Close it on shutdown.
	KV KeyValueStore

	Credentials *CredentialStore
	Session     *SessionStore
	Preferences *PreferenceStore
}

// NewClientStorages opens the key-value backend named in cfg.Backend ("file",
// "sqlite" or "memory") and builds the stores on top of it.
//
// Returns [ErrUnknownBackend] for any other backend name, or an error if the
// backend cannot be opened.
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Str("backend", cfg.Backend).Msg("creating new storages...")

	var (
		kv  KeyValueStore
		err error
	)
	switch cfg.Backend {
	case config.BackendFile:
		kv, err = NewFileKeyValueStore(cfg.Path, cfg.LockTimeout, logger)
	case config.BackendSQLite:
		kv, err = NewSQLiteKeyValueStore(context.Background(), cfg.Path, cfg.LockTimeout, logger)
	case config.BackendMemory:
		kv = NewMemoryKeyValueStore()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s storage: %w", cfg.Backend, err)
	}

	return NewStorages(kv, logger), nil
}

// NewStorages builds the stores on an already opened backend.
func NewStorages(kv KeyValueStore, logger *logger.Logger) *ClientStorages {
	return &ClientStorages{
		KV:          kv,
		Credentials: NewCredentialStore(kv, logger),
		Session:     NewSessionStore(kv, logger),
		Preferences: NewPreferenceStore(kv, logger),
	}
}

var (
	_ UserRecords = (*CredentialStore)(nil)
	_ Session     = (*SessionStore)(nil)
	_ Preferences = (*PreferenceStore)(nil)
)
