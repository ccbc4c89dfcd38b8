package application

import (
	"context"
	"fmt"

	"github.com/ericfisherdev/portfolio/internal/domain/model"
	"github.com/ericfisherdev/portfolio/internal/domain/port/driven"
)

// ThemeService reads and persists the theme preference.
type ThemeService struct {
	store driven.PreferenceStore
}

// NewThemeService creates a ThemeService backed by the given store.
func NewThemeService(store driven.PreferenceStore) *ThemeService {
	return &ThemeService{store: store}
}

// Load returns the persisted theme, or dark when nothing is stored.
func (s *ThemeService) Load(ctx context.Context) (model.Theme, error) {
	v, ok, err := s.store.Get(ctx, model.ThemePreferenceKey)
	if err != nil {
		return model.ThemeDark, fmt.Errorf("load theme preference: %w", err)
	}
	if !ok {
		return model.ThemeDark, nil
	}
	return model.DecodeTheme(v), nil
}

// Reset forgets the stored theme so the next Load falls back to dark.
func (s *ThemeService) Reset(ctx context.Context) error {
	if err := s.store.Delete(ctx, model.ThemePreferenceKey); err != nil {
		return fmt.Errorf("reset theme preference: %w", err)
	}
	return nil
}

// Toggle flips current, persists the result and returns it. The returned
// theme is valid even when persisting fails.
func (s *ThemeService) Toggle(ctx context.Context, current model.Theme) (model.Theme, error) {
	next := current.Toggle()
	if err := s.store.Set(ctx, model.ThemePreferenceKey, next.Encode()); err != nil {
		return next, fmt.Errorf("save theme preference: %w", err)
	}
	return next, nil
}
