// Package page holds the portfolio page controllers. They run against the
// dom abstraction, so the same code drives the browser and the in-memory
// document used by preview and tests.
package page

import (
	"context"
	"log/slog"

	"github.com/ericfisherdev/portfolio/internal/application"
	"github.com/ericfisherdev/portfolio/internal/config"
	"github.com/ericfisherdev/portfolio/internal/dom"
	"github.com/ericfisherdev/portfolio/internal/domain/model"
)

// revealSelectors lists the static page blocks revealed on scroll.
var revealSelectors = []string{
	".about", ".skills", ".projects", ".contact",
	".skill-card", ".stat-card", ".contact-card",
	".about-text", ".about-stats",
}

// Deps groups the collaborators a Page needs.
type Deps struct {
	Window   dom.Window
	Projects *application.ProjectService
	Themes   *application.ThemeService
	Logger   *slog.Logger
}

// Page wires every controller to one document.
type Page struct {
	win      dom.Window
	doc      dom.Document
	state    *State
	timers   *timers
	animator *ScrollAnimator
	projects *ProjectsView
	theme    *ThemeToggle
	nav      *Navigation
	effects  *Effects
	logger   *slog.Logger
	removers []func()
	started  bool
}

// New builds a Page for cfg. Nothing touches the document until Start.
func New(cfg *config.Config, deps Deps) *Page {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	state := &State{Theme: model.ThemeDark}
	t := newTimers(deps.Window)
	doc := deps.Window.Document()
	animator := NewScrollAnimator(deps.Window, cfg.Page, t, logger)

	return &Page{
		win:      deps.Window,
		doc:      doc,
		state:    state,
		timers:   t,
		animator: animator,
		projects: NewProjectsView(doc, deps.Projects, animator, cfg.Account, cfg.ProfileURL(), logger),
		theme:    NewThemeToggle(doc, deps.Themes, state, logger),
		nav:      NewNavigation(deps.Window, cfg.Page, state),
		effects:  NewEffects(deps.Window, cfg.Page, t, cfg.Owner),
		logger:   logger,
	}
}

// Start restores the theme and binds every handler. It does not fetch
// projects; call LoadProjects for that. Start is a no-op after the first call.
func (p *Page) Start(ctx context.Context) {
	if p.started {
		return
	}
	p.started = true

	p.theme.Restore(ctx)

	p.removers = append(p.removers, p.theme.Bind(ctx)...)
	p.removers = append(p.removers, p.nav.Bind()...)
	p.removers = append(p.removers, p.effects.BindSmoothScroll()...)
	p.removers = append(p.removers, p.effects.BindParallax(), p.effects.BindMouseTrail())

	p.markStaggerItems()
	for _, sel := range revealSelectors {
		for _, el := range p.doc.QuerySelectorAll(sel) {
			p.animator.Observe(el)
		}
	}

	p.effects.WriteFooter()
	p.effects.StartTyping()

	p.logger.Debug("page started")
}

// LoadProjects runs the repository pipeline once. It blocks on the fetch.
func (p *Page) LoadProjects(ctx context.Context) error {
	return p.projects.Run(ctx)
}

// ToggleTheme flips and persists the theme as a click on the toggle would.
func (p *Page) ToggleTheme(ctx context.Context) model.Theme {
	return p.theme.Toggle(ctx)
}

// State returns a snapshot of the page state.
func (p *Page) State() State {
	return *p.state
}

// PendingTimers reports how many page callbacks are still scheduled.
func (p *Page) PendingTimers() int {
	return p.timers.pending()
}

// Close removes every listener, stops every timer and disconnects the
// scroll observer.
func (p *Page) Close() {
	for _, remove := range p.removers {
		remove()
	}
	p.removers = nil
	p.timers.stopAll()
	p.animator.Disconnect()
}

func (p *Page) markStaggerItems() {
	for _, card := range p.doc.QuerySelectorAll(".skill-card") {
		card.AddClass(staggerClass)
		for _, tag := range card.QuerySelectorAll(".tag") {
			tag.AddClass(staggerClass)
		}
	}
	for _, sel := range []string{".stat-card", ".contact-card"} {
		for _, card := range p.doc.QuerySelectorAll(sel) {
			card.AddClass(staggerClass)
		}
	}
}
