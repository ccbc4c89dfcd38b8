package page

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/ericfisherdev/portfolio/internal/application"
	"github.com/ericfisherdev/portfolio/internal/config"
	"github.com/ericfisherdev/portfolio/internal/dom/memdom"
	"github.com/ericfisherdev/portfolio/internal/domain/model"
)

const fixturePage = `<!DOCTYPE html>
<html><head><title>Portfolio</title></head>
<body>
<nav class="navbar" id="navbar">
  <a class="nav-logo" href="#">FA</a>
  <button class="menu-toggle">menu</button>
  <ul class="nav-links" id="navLinks">
    <li><a class="nav-link" href="#about">About</a></li>
    <li><a class="nav-link" href="#projects">Projects</a></li>
    <li><a class="nav-link" href="#contact">Contact</a></li>
  </ul>
  <button class="theme-toggle"><span class="theme-icon">🌙</span></button>
</nav>
<section class="hero" id="home">
  <div class="gradient-orb"></div>
  <div class="gradient-orb"></div>
  <p class="hero-subtitle">Go dev</p>
</section>
<section class="about" id="about">
  <h2 class="section-title">About</h2>
  <div class="about-stats">
    <div class="stat-card"><span class="stat-number">12+</span></div>
    <div class="stat-card"><span class="stat-number" id="projectCount">0</span></div>
  </div>
</section>
<section class="skills" id="skills">
  <div class="skill-card"><span class="tag">Go</span><span class="tag">SQL</span></div>
</section>
<section class="projects" id="projects">
  <div class="projects-grid" id="projectsGrid"></div>
</section>
<section class="contact" id="contact">
  <div class="contact-card">mail</div>
</section>
<footer><div class="footer-content"><p>footer</p></div></footer>
</body></html>`

var (
	t1 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	t2 = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	t3 = time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
)

// fakeLister is a scripted RepositoryLister that counts calls.
type fakeLister struct {
	repos []model.Repository
	err   error
	calls int
}

func (f *fakeLister) ListRepositories(_ context.Context, _ string) ([]model.Repository, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.repos, nil
}

// mapStore is an in-memory PreferenceStore with injectable failures.
type mapStore struct {
	values map[string]string
	getErr error
	setErr error
}

func newMapStore() *mapStore {
	return &mapStore{values: make(map[string]string)}
}

func (s *mapStore) Get(_ context.Context, key string) (string, bool, error) {
	if s.getErr != nil {
		return "", false, s.getErr
	}
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *mapStore) Set(_ context.Context, key, value string) error {
	if s.setErr != nil {
		return s.setErr
	}
	s.values[key] = value
	return nil
}

func (s *mapStore) Delete(_ context.Context, key string) error {
	if s.setErr != nil {
		return s.setErr
	}
	delete(s.values, key)
	return nil
}

var errStorage = errors.New("storage unavailable")

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleRepos() []model.Repository {
	return []model.Repository{
		{Name: "old-tool", Language: "Go", Stars: 3, URL: "https://github.com/thinkmoving/old-tool", UpdatedAt: t1},
		{Name: "forked-lib", IsFork: true, URL: "https://github.com/thinkmoving/forked-lib", UpdatedAt: t3},
		{Name: "web_site", Language: "HTML", Homepage: "https://example.com", URL: "https://github.com/thinkmoving/web_site", UpdatedAt: t3},
		{Name: "api-server", Description: "REST `api`", URL: "https://github.com/thinkmoving/api-server", UpdatedAt: t2},
	}
}

type fixture struct {
	win    *memdom.Window
	page   *Page
	lister *fakeLister
	store  *mapStore
	cfg    *config.Config
}

func newFixture(t *testing.T, lister *fakeLister, store *mapStore, opts ...memdom.Option) *fixture {
	t.Helper()

	if lister == nil {
		lister = &fakeLister{}
	}
	if store == nil {
		store = newMapStore()
	}

	win := memdom.MustParse(fixturePage, opts...)
	cfg := config.Default()
	logger := discardLogger()

	p := New(cfg, Deps{
		Window:   win,
		Projects: application.NewProjectService(lister, cfg.Rules, logger),
		Themes:   application.NewThemeService(store),
		Logger:   logger,
	})
	t.Cleanup(p.Close)

	return &fixture{win: win, page: p, lister: lister, store: store, cfg: cfg}
}
