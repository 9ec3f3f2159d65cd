package service

import (
	"context"
	"slices"

	"github.com/MKhiriev/skillscope/internal/store"
	"github.com/MKhiriev/skillscope/models"
)

type preferenceService struct {
	prefs store.Preferences
}

// NewPreferenceService returns a [PreferenceService] over prefs.
func NewPreferenceService(prefs store.Preferences) PreferenceService {
	return &preferenceService{prefs: prefs}
}

func (s *preferenceService) Language(ctx context.Context) string {
	return s.prefs.Language(ctx)
}

// NextLanguage saves and returns the language after the current one in
// [models.Languages], wrapping around.
func (s *preferenceService) NextLanguage(ctx context.Context) (string, error) {
	i := slices.Index(models.Languages, s.prefs.Language(ctx))
	next := models.Languages[(i+1)%len(models.Languages)]

	if err := s.prefs.SetLanguage(ctx, next); err != nil {
		return "", internalError("save language", err)
	}
	return next, nil
}

func (s *preferenceService) Theme(ctx context.Context) models.Theme {
	return s.prefs.Theme(ctx)
}

func (s *preferenceService) ToggleTheme(ctx context.Context) (models.Theme, error) {
	next := s.prefs.Theme(ctx).Toggle()

	if err := s.prefs.SetTheme(ctx, next); err != nil {
		return "", internalError("save theme", err)
	}
	return next, nil
}
