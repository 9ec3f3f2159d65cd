package service

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/MKhiriev/skillscope/internal/logger"
	"github.com/MKhiriev/skillscope/internal/mock"
	"github.com/MKhiriev/skillscope/internal/store"
	"github.com/MKhiriev/skillscope/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPreferenceService_NextLanguageCycles(t *testing.T) {
	ctx := context.Background()
	svc := NewPreferenceService(store.NewPreferenceStore(store.NewMemoryKeyValueStore(), logger.Nop()))

	assert.Equal(t, "English", svc.Language(ctx))

	seen := []string{}
	for range models.Languages {
		next, err := svc.NextLanguage(ctx)
		require.NoError(t, err)
		seen = append(seen, next)
	}

	assert.Equal(t, slices.Concat(models.Languages[1:], models.Languages[:1]), seen)
	assert.Equal(t, "English", svc.Language(ctx))
}

func TestPreferenceService_ToggleTheme(t *testing.T) {
	ctx := context.Background()
	svc := NewPreferenceService(store.NewPreferenceStore(store.NewMemoryKeyValueStore(), logger.Nop()))

	assert.Equal(t, models.ThemeDark, svc.Theme(ctx))

	theme, err := svc.ToggleTheme(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.ThemeLight, theme)
	assert.Equal(t, models.ThemeLight, svc.Theme(ctx))
}

func TestPreferenceService_SaveErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	prefs := mock.NewMockPreferences(ctrl)
	prefs.EXPECT().Theme(gomock.Any()).Return(models.ThemeDark)
	prefs.EXPECT().SetTheme(gomock.Any(), models.ThemeLight).Return(errors.New("read-only"))
	prefs.EXPECT().Language(gomock.Any()).Return("English")
	prefs.EXPECT().SetLanguage(gomock.Any(), "Hindi").Return(errors.New("read-only"))

	svc := NewPreferenceService(prefs)

	_, err := svc.ToggleTheme(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
	_, err = svc.NextLanguage(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}
