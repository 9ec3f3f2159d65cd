package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/skillscope/internal/logger"
	"github.com/MKhiriev/skillscope/models"
)

// Preference keys. Both survive logout.
const (
	LanguageKey = "skillscope_language"
	ThemeKey    = "skillscope_theme"
)

// PreferenceStore persists the interface language and colour theme.
type PreferenceStore struct {
	kv     KeyValueStore
	logger *logger.Logger
}

func NewPreferenceStore(kv KeyValueStore, logger *logger.Logger) *PreferenceStore {
	return &PreferenceStore{kv: kv, logger: logger}
}

// Language returns the saved language, or the first of [models.Languages]
// when nothing valid is saved.
func (s *PreferenceStore) Language(ctx context.Context) string {
	value, err := s.kv.Get(ctx, LanguageKey)
	if err != nil {
		if !errors.Is(err, ErrKeyNotFound) {
			s.logger.Warn().Err(err).Msg("cannot read language preference")
		}
		return models.Languages[0]
	}

	if !models.IsLanguage(value) {
		s.logger.Warn().Str("language", value).Msg("ignoring unsupported language preference")
		return models.Languages[0]
	}
	return value
}

func (s *PreferenceStore) SetLanguage(ctx context.Context, language string) error {
	if !models.IsLanguage(language) {
		return fmt.Errorf("%w: language %q", ErrInvalidPreference, language)
	}
	return s.kv.Set(ctx, LanguageKey, language)
}

// Theme returns the saved theme, dark by default.
func (s *PreferenceStore) Theme(ctx context.Context) models.Theme {
	value, err := s.kv.Get(ctx, ThemeKey)
	if err != nil {
		if !errors.Is(err, ErrKeyNotFound) {
			s.logger.Warn().Err(err).Msg("cannot read theme preference")
		}
		return models.ThemeDark
	}

	theme := models.Theme(value)
	if !theme.Valid() {
		return models.ThemeDark
	}
	return theme
}

func (s *PreferenceStore) SetTheme(ctx context.Context, theme models.Theme) error {
	if !theme.Valid() {
		return fmt.Errorf("%w: theme %q", ErrInvalidPreference, theme)
	}
	return s.kv.Set(ctx, ThemeKey, string(theme))
}
