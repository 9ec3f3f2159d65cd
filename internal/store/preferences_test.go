package store

import (
	"context"
	"testing"

	"github.com/MKhiriev/skillscope/internal/logger"
	"github.com/MKhiriev/skillscope/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreferenceStore_Defaults(t *testing.T) {
	s := NewPreferenceStore(NewMemoryKeyValueStore(), logger.Nop())
	ctx := context.Background()

	assert.Equal(t, "English", s.Language(ctx))
	assert.Equal(t, models.ThemeDark, s.Theme(ctx))
}

func TestPreferenceStore_Language(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKeyValueStore()
	s := NewPreferenceStore(kv, logger.Nop())

	require.NoError(t, s.SetLanguage(ctx, "Tamil"))
	assert.Equal(t, "Tamil", s.Language(ctx))

	assert.ErrorIs(t, s.SetLanguage(ctx, "Klingon"), ErrInvalidPreference)
	assert.Equal(t, "Tamil", s.Language(ctx))

	// garbage written by something else falls back to the default
	require.NoError(t, kv.Set(ctx, LanguageKey, "Klingon"))
	assert.Equal(t, "English", s.Language(ctx))
}

func TestPreferenceStore_Theme(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKeyValueStore()
	s := NewPreferenceStore(kv, logger.Nop())

	require.NoError(t, s.SetTheme(ctx, models.ThemeLight))
	assert.Equal(t, models.ThemeLight, s.Theme(ctx))

	assert.ErrorIs(t, s.SetTheme(ctx, "sepia"), ErrInvalidPreference)

	require.NoError(t, kv.Set(ctx, ThemeKey, "sepia"))
	assert.Equal(t, models.ThemeDark, s.Theme(ctx))
}
