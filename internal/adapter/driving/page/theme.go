package page

import (
	"context"
	"log/slog"

	"github.com/ericfisherdev/portfolio/internal/application"
	"github.com/ericfisherdev/portfolio/internal/dom"
	"github.com/ericfisherdev/portfolio/internal/domain/model"
)

const lightModeClass = "light-mode"

// ThemeToggle applies the colour theme to the document and persists changes.
type ThemeToggle struct {
	doc    dom.Document
	svc    *application.ThemeService
	state  *State
	logger *slog.Logger
}

// NewThemeToggle creates a ThemeToggle.
func NewThemeToggle(doc dom.Document, svc *application.ThemeService, state *State, logger *slog.Logger) *ThemeToggle {
	return &ThemeToggle{doc: doc, svc: svc, state: state, logger: logger}
}

// Restore applies the persisted theme. Storage failures fall back to dark.
func (t *ThemeToggle) Restore(ctx context.Context) {
	theme, err := t.svc.Load(ctx)
	if err != nil {
		t.logger.Warn("restoring theme failed, using default", "error", err)
	}
	t.apply(theme)
}

// Toggle flips the theme, applies it and persists it.
func (t *ThemeToggle) Toggle(ctx context.Context) model.Theme {
	next, err := t.svc.Toggle(ctx, t.state.Theme)
	if err != nil {
		t.logger.Warn("persisting theme failed", "theme", next, "error", err)
	}
	t.apply(next)
	return next
}

// Bind wires every .theme-toggle control. It returns the listener removers.
func (t *ThemeToggle) Bind(ctx context.Context) []func() {
	var removers []func()
	for _, btn := range t.doc.QuerySelectorAll(".theme-toggle") {
		removers = append(removers, btn.AddEventListener(dom.EventClick, func(*dom.Event) {
			t.Toggle(ctx)
		}))
	}
	return removers
}

func (t *ThemeToggle) apply(theme model.Theme) {
	t.state.Theme = theme

	if body := t.doc.Body(); body != nil {
		if theme == model.ThemeLight {
			body.AddClass(lightModeClass)
		} else {
			body.RemoveClass(lightModeClass)
		}
	}
	if icon := t.doc.QuerySelector(".theme-icon"); icon != nil {
		icon.SetText(theme.Glyph())
	}
}
