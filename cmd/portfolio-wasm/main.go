//go:build js && wasm

// Command portfolio-wasm is the browser bundle: it binds the page
// controllers to the live document.
package main

import (
	"context"
	"log/slog"
	"os"

	githubadapter "github.com/ericfisherdev/portfolio/internal/adapter/driven/github"
	"github.com/ericfisherdev/portfolio/internal/adapter/driven/localstorage"
	"github.com/ericfisherdev/portfolio/internal/adapter/driving/browser"
	"github.com/ericfisherdev/portfolio/internal/adapter/driving/page"
	"github.com/ericfisherdev/portfolio/internal/application"
	"github.com/ericfisherdev/portfolio/internal/config"
	"github.com/ericfisherdev/portfolio/internal/domain/port/driven"
)

func main() {
	// os.Stderr is the browser console under js/wasm.
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if err := run(logger); err != nil {
		logger.Error("fatal error", "error", err)
		return
	}

	// Callbacks registered with the browser need the runtime alive.
	select {}
}

func run(logger *slog.Logger) error {
	win := browser.NewWindow()

	cfg := config.Default()
	if err := page.ApplyBodyDataset(win.Document(), cfg); err != nil {
		return err
	}

	lister, err := githubadapter.NewClient(cfg.GitHub.APIURL, cfg.GitHub.PerPage, logger)
	if err != nil {
		return err
	}

	var prefs driven.PreferenceStore
	if store, err := localstorage.New(); err == nil {
		prefs = store
	} else {
		logger.Warn("theme will not persist", "error", err)
		prefs = memoryStore{}
	}

	pg := page.New(cfg, page.Deps{
		Window:   win,
		Projects: application.NewProjectService(lister, cfg.Rules, logger),
		Themes:   application.NewThemeService(prefs),
		Logger:   logger,
	})

	ctx := context.Background()
	pg.Start(ctx)

	go func() {
		if err := pg.LoadProjects(ctx); err != nil {
			logger.Warn("projects unavailable", "error", err)
		}
	}()
	return nil
}

// memoryStore keeps nothing; it stands in when localStorage is blocked.
type memoryStore struct{}

func (memoryStore) Get(context.Context, string) (string, bool, error) { return "", false, nil }
func (memoryStore) Set(context.Context, string, string) error { return nil }
func (memoryStore) Delete(context.Context, string) error { return nil }
