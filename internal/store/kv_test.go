package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/skillscope/internal/logger"
	"github.com/MKhiriev/skillscope/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type kvFactory func(t *testing.T) KeyValueStore

func backends() map[string]kvFactory {
	return map[string]kvFactory{
		"memory": func(t *testing.T) KeyValueStore {
			return NewMemoryKeyValueStore()
		},
		"file": func(t *testing.T) KeyValueStore {
			kv, err := NewFileKeyValueStore(filepath.Join(t.TempDir(), "store.json"), 100*time.Millisecond, logger.Nop())
			require.NoError(t, err)
			return kv
		},
		"sqlite": func(t *testing.T) KeyValueStore {
			kv, err := NewSQLiteKeyValueStore(context.Background(), filepath.Join(t.TempDir(), "store.db"), 100*time.Millisecond, logger.Nop())
			require.NoError(t, err)
			t.Cleanup(func() { kv.Close() })
			return kv
		},
	}
}

func TestKeyValueStore_Contract(t *testing.T) {
	for name, newKV := range backends() {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			kv := newKV(t)

			_, err := kv.Get(ctx, "missing")
			assert.ErrorIs(t, err, ErrKeyNotFound)

			require.NoError(t, kv.Set(ctx, "k", "v1"))
			value, err := kv.Get(ctx, "k")
			require.NoError(t, err)
			assert.Equal(t, "v1", value)

			require.NoError(t, kv.Set(ctx, "k", "v2"))
			value, err = kv.Get(ctx, "k")
			require.NoError(t, err)
			assert.Equal(t, "v2", value)

			require.NoError(t, kv.Set(ctx, "other", `{"json":true}`))

			require.NoError(t, kv.Remove(ctx, "k"))
			_, err = kv.Get(ctx, "k")
			assert.ErrorIs(t, err, ErrKeyNotFound)

			// removing an absent key is fine
			require.NoError(t, kv.Remove(ctx, "k"))

			value, err = kv.Get(ctx, "other")
			require.NoError(t, err)
			assert.Equal(t, `{"json":true}`, value)
		})
	}
}

func TestKeyValueStore_LockIsExclusive(t *testing.T) {
	for name, newKV := range backends() {
		t.Run(name, func(t *testing.T) {
			kv := newKV(t)

			unlock, err := kv.Lock(context.Background())
			require.NoError(t, err)

			ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
			defer cancel()
			_, err = kv.Lock(ctx)
			assert.ErrorIs(t, err, ErrLockTimeout)

			unlock()

			unlock, err = kv.Lock(context.Background())
			require.NoError(t, err)
			unlock()
		})
	}
}

func TestFileKV_SharedBetweenInstances(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "store.json")

	first, err := NewFileKeyValueStore(path, 100*time.Millisecond, logger.Nop())
	require.NoError(t, err)
	second, err := NewFileKeyValueStore(path, 100*time.Millisecond, logger.Nop())
	require.NoError(t, err)

	require.NoError(t, first.Set(ctx, "k", "from first"))
	value, err := second.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "from first", value)

	unlock, err := first.Lock(ctx)
	require.NoError(t, err)
	_, err = second.Lock(ctx)
	assert.ErrorIs(t, err, ErrLockTimeout)
	unlock()

	unlock, err = second.Lock(ctx)
	require.NoError(t, err)
	unlock()
}

func TestFileKV_WritesWaitForOtherHandlesLock(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "store.json")

	first, err := NewFileKeyValueStore(path, time.Second, logger.Nop())
	require.NoError(t, err)
	second, err := NewFileKeyValueStore(path, 50*time.Millisecond, logger.Nop())
	require.NoError(t, err)

	unlock, err := first.Lock(ctx)
	require.NoError(t, err)

	// the holder can still write while it has the lock
	require.NoError(t, first.Set(ctx, "k", "from first"))

	assert.ErrorIs(t, second.Set(ctx, "other", "from second"), ErrLockTimeout)
	assert.ErrorIs(t, second.Remove(ctx, "k"), ErrLockTimeout)

	unlock()

	require.NoError(t, second.Set(ctx, "other", "from second"))
	value, err := first.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "from first", value)
}

func TestFileKV_ConcurrentHandlesKeepEveryAccount(t *testing.T) {
	const n = 20

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "store.json")

	first, err := NewFileKeyValueStore(path, 10*time.Second, logger.Nop())
	require.NoError(t, err)
	second, err := NewFileKeyValueStore(path, 10*time.Second, logger.Nop())
	require.NoError(t, err)

	accounts := NewCredentialStore(first, logger.Nop())
	sessions := NewSessionStore(second, logger.Nop())

	var wg sync.WaitGroup
	errs := make(chan error, 2*n)
	for i := range n {
		wg.Add(2)
		go func() {
			defer wg.Done()
			record := jane()
			record.Username = fmt.Sprintf("user%d", i)
			errs <- accounts.Update(ctx, func(records []models.UserRecord) ([]models.UserRecord, error) {
				return append(records, record), nil
			})
		}()
		go func() {
			defer wg.Done()
			errs <- sessions.Establish(ctx, jane())
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	assert.Len(t, NewCredentialStore(second, logger.Nop()).LoadAll(ctx), n)
}

func TestFileKV_CorruptFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "store.json")
	require.NoError(t, os.WriteFile(path, []byte("[1, 2"), 0o600))

	kv, err := NewFileKeyValueStore(path, time.Second, logger.Nop())
	require.NoError(t, err)

	_, err = kv.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrCorruptStore)

	// a write starts over from an empty store
	require.NoError(t, kv.Set(ctx, "k", "v"))
	value, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", value)
}

func TestFileKV_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	kv, err := NewFileKeyValueStore(path, time.Second, logger.Nop())
	require.NoError(t, err)

	_, err = kv.Get(context.Background(), "k")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestFileKV_WritesPrivateFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	kv, err := NewFileKeyValueStore(path, time.Second, logger.Nop())
	require.NoError(t, err)

	require.NoError(t, kv.Set(context.Background(), "k", "v"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	for _, e := range entries {
		assert.NotContains(t, e.Name(), ".tmp", "temp file left behind")
	}
}

func TestNewFileKeyValueStore_EmptyPath(t *testing.T) {
	_, err := NewFileKeyValueStore("", time.Second, logger.Nop())
	assert.Error(t, err)
}
