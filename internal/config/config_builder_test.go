package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilderGetsDefaults verifies that a builder without sources
// yields the documented defaults.
func TestBuild_EmptyBuilderGetsDefaults(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)

	assert.Equal(t, BackendFile, cfg.Storage.Backend)
	assert.NotEmpty(t, cfg.Storage.Path)
	assert.Equal(t, "store.json", filepath.Base(cfg.Storage.Path))
	assert.Equal(t, defaultLockTimeout, cfg.Storage.LockTimeout)
	assert.Equal(t, HashingBcrypt, cfg.App.PasswordHashing)
	assert.Equal(t, defaultBcryptCost, cfg.App.BcryptCost)
	assert.Equal(t, 6, cfg.App.MinPasswordLength)
	assert.NotEmpty(t, cfg.Log.File)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourceWins verifies that later configs override earlier
// non-zero fields while zero fields keep earlier values.
func TestBuild_LaterSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Storage: Storage{Backend: BackendSQLite, Path: "/tmp/a.db"}},
		&StructuredConfig{Storage: Storage{Path: "/tmp/b.db"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, BackendSQLite, cfg.Storage.Backend)
	assert.Equal(t, "/tmp/b.db", cfg.Storage.Path)
}

// TestBuild_SQLiteDefaultPath verifies the default database file name.
func TestBuild_SQLiteDefaultPath(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Storage: Storage{Backend: BackendSQLite}})

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "store.db", filepath.Base(cfg.Storage.Path))
}

// TestBuild_MemoryHasNoPath verifies that the memory backend gets no path.
func TestBuild_MemoryHasNoPath(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Storage: Storage{Backend: BackendMemory}})

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Empty(t, cfg.Storage.Path)
}

// TestBuild_InvalidResult verifies that validation errors surface from build.
func TestBuild_InvalidResult(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{App: App{MinPasswordLength: 4}})

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

// TestWithEnv_ReadsEnvVars verifies that environment variables are picked up.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "sqlite")
	t.Setenv("APP_PASSWORD_HASHING", "plain")

	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "sqlite", b.configs[0].Storage.Backend)
	assert.Equal(t, "plain", b.configs[0].App.PasswordHashing)
}

// TestWithEnv_LoadsDotEnvFile verifies that ENV_FILE is loaded before parsing.
func TestWithEnv_LoadsDotEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("STORAGE_LOCK_TIMEOUT=7s\n"), 0o600))
	t.Setenv("ENV_FILE", path)
	// t.Setenv restores the variable after the test; godotenv only sets it
	// when absent, so register it for cleanup first.
	t.Setenv("STORAGE_LOCK_TIMEOUT", "")
	require.NoError(t, os.Unsetenv("STORAGE_LOCK_TIMEOUT"))

	b := newConfigBuilder().withEnv()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, 7*time.Second, b.configs[0].Storage.LockTimeout)
}

// TestWithEnv_MissingExplicitDotEnv verifies that an explicit but missing env
// file is reported.
func TestWithEnv_MissingExplicitDotEnv(t *testing.T) {
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))

	b := newConfigBuilder().withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// TestWithEnv_InvalidValue verifies that an unparseable value sets b.err.
func TestWithEnv_InvalidValue(t *testing.T) {
	t.Setenv("APP_BCRYPT_COST", "many")

	b := newConfigBuilder().withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

// TestWithFlags_Appends verifies that parsed flags become one config entry.
func TestWithFlags_Appends(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-b", "memory"})

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "memory", b.configs[0].Storage.Backend)
}

// TestWithFlags_UnknownFlag verifies that a bad flag is recorded as an error.
func TestWithFlags_UnknownFlag(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-nope"})

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_NoPath verifies that nothing is appended without a path.
func TestWithJSON_NoPath(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withJSON()

	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

// TestWithJSON_OverridesEarlierSources verifies the full env → flags → JSON
// chain.
func TestWithJSON_OverridesEarlierSources(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"storage": map[string]any{"path": "/tmp/from-json.json", "lock_timeout": "2s"},
	})
	t.Setenv("STORAGE_PATH", "/tmp/from-env.json")

	cfg, err := newConfigBuilder().
		withEnv().
		withFlags([]string{"-config", path, "-hashing", "plain"}).
		withJSON().
		build()

	require.NoError(t, err)
	assert.Equal(t, "/tmp/from-json.json", cfg.Storage.Path)
	assert.Equal(t, 2*time.Second, cfg.Storage.LockTimeout)
	assert.Equal(t, HashingPlain, cfg.App.PasswordHashing)
}

// TestWithJSON_MissingFile verifies that an unreadable JSON file sets b.err.
func TestWithJSON_MissingFile(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: filepath.Join(t.TempDir(), "nope.json")})

	b.withJSON()

	assert.Error(t, b.err)
}

// ── client view ───────────────────────────────────────────────────────────────

func TestClientConfigFrom(t *testing.T) {
	cfg := &StructuredConfig{
		App:     App{PasswordHashing: HashingBcrypt, BcryptCost: 12, MinPasswordLength: 8},
		Storage: Storage{Backend: BackendSQLite, Path: "/tmp/s.db", LockTimeout: time.Second},
		Log:     Log{File: "/tmp/c.log"},
		UI:      UI{Inline: true},
	}

	client := clientConfigFrom(cfg)

	assert.Equal(t, 12, client.App.BcryptCost)
	assert.Equal(t, 8, client.App.MinPasswordLength)
	assert.Equal(t, BackendSQLite, client.Storage.Backend)
	assert.Equal(t, "/tmp/s.db", client.Storage.Path)
	assert.Equal(t, time.Second, client.Storage.LockTimeout)
	assert.Equal(t, "/tmp/c.log", client.Log.File)
	assert.True(t, client.UI.Inline)
}
