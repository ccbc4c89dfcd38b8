package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	githubadapter "github.com/ericfisherdev/portfolio/internal/adapter/driven/github"
	sqliteadapter "github.com/ericfisherdev/portfolio/internal/adapter/driven/sqlite"
	"github.com/ericfisherdev/portfolio/internal/adapter/driving/page"
	webhandler "github.com/ericfisherdev/portfolio/internal/adapter/driving/web"
	"github.com/ericfisherdev/portfolio/internal/application"
	"github.com/ericfisherdev/portfolio/internal/config"
	"github.com/ericfisherdev/portfolio/internal/dom"
	"github.com/ericfisherdev/portfolio/internal/dom/memdom"
	"github.com/ericfisherdev/portfolio/internal/domain/port/driven"
)

// previewOptions are the preview command flags.
type previewOptions struct {
	scroll      float64
	toggleTheme bool
	resetTheme  bool
	out         string
	settle      time.Duration
	viewport    float64
}

func newPreviewCmd(root *rootOptions) *cobra.Command {
	opts := previewOptions{}

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Run the page headlessly and print the rendered document",
		Long: `preview loads the page shell into an in-memory document, restores the
theme from the local profile, fetches the account's repositories, scrolls,
lets animations settle on a virtual clock and prints the resulting HTML.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := root.load(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			db, err := sqliteadapter.OpenProfile(ctx, cfg.ProfilePath)
			if err != nil {
				return fmt.Errorf("opening profile: %w", err)
			}
			defer func() {
				if closeErr := db.Close(); closeErr != nil {
					logger.Error("error closing profile", "error", closeErr)
				}
			}()
			if version, dirty, err := sqliteadapter.SchemaVersion(db.Writer); err == nil {
				logger.Debug("profile opened", "path", db.Path(), "schema_version", version, "dirty", dirty)
			}

			lister, err := githubadapter.NewClient(cfg.GitHub.APIURL, cfg.GitHub.PerPage, logger)
			if err != nil {
				return err
			}

			prefs := sqliteadapter.NewPreferenceRepo(db)
			if opts.out == "" {
				return runPreview(ctx, cfg, lister, prefs, opts, cmd.OutOrStdout(), logger)
			}
			return writeFile(opts.out, func(w io.Writer) error {
				return runPreview(ctx, cfg, lister, prefs, opts, w, logger)
			})
		},
	}

	cmd.Flags().Float64Var(&opts.scroll, "scroll", 0, "scroll offset in pixels before settling")
	cmd.Flags().BoolVar(&opts.resetTheme, "reset-theme", false, "forget the stored theme before the page starts")
	cmd.Flags().BoolVar(&opts.toggleTheme, "toggle-theme", false, "flip and persist the theme, as a click on the toggle would")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "write the document to this file instead of stdout")
	cmd.Flags().DurationVar(&opts.settle, "settle", 3*time.Second, "virtual time to let animations run")
	cmd.Flags().Float64Var(&opts.viewport, "viewport", 800, "viewport height in pixels")
	return cmd
}

// runPreview drives one headless page load and writes the final document.
// A failed fetch is rendered into the page and does not fail the preview.
func runPreview(
	ctx context.Context,
	cfg *config.Config,
	lister driven.RepositoryLister,
	prefs driven.PreferenceStore,
	opts previewOptions,
	out io.Writer,
	logger *slog.Logger,
) error {
	var shell bytes.Buffer
	if err := webhandler.Shell(webhandler.NewShellData(cfg)).Render(ctx, &shell); err != nil {
		return fmt.Errorf("rendering shell: %w", err)
	}

	win, err := memdom.Parse(&shell, memdom.WithViewportHeight(opts.viewport))
	if err != nil {
		return err
	}
	stackSections(win, opts.viewport)

	themes := application.NewThemeService(prefs)
	if opts.resetTheme {
		if err := themes.Reset(ctx); err != nil {
			return err
		}
	}

	pg := page.New(cfg, page.Deps{
		Window:   win,
		Projects: application.NewProjectService(lister, cfg.Rules, logger),
		Themes:   themes,
		Logger:   logger,
	})
	defer pg.Close()

	pg.Start(ctx)
	if opts.toggleTheme {
		theme := pg.ToggleTheme(ctx)
		logger.Info("theme toggled", "theme", theme)
	}

	if err := pg.LoadProjects(ctx); err != nil {
		if errors.Is(err, driven.ErrMissingContainer) {
			return err
		}
		logger.Warn("projects unavailable", "error", err)
	}

	win.Flush()
	win.Scroll(opts.scroll)
	win.Advance(opts.settle)

	logger.Debug("preview settled",
		"theme", pg.State().Theme,
		"scroll", win.ScrollY(),
		"pending_timers", pg.PendingTimers(),
	)
	return win.Doc().Render(out)
}

// stackSections lays the page's sections out as consecutive viewport-high
// blocks so scrolling has something to move through.
func stackSections(win *memdom.Window, height float64) {
	doc := win.Doc()
	if navbar := doc.Find("#navbar"); navbar != nil {
		navbar.SetLayout(dom.Rect{Height: 72})
	}
	for i, section := range doc.FindAll("section") {
		section.SetLayout(dom.Rect{Top: float64(i) * height, Height: height})
	}
}

// writeFile creates path and hands it to write. A close failure is reported
// when write itself succeeded, so a short write never exits cleanly.
func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, closeErr)
		}
	}()
	return write(f)
}
