package page

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/ericfisherdev/portfolio/internal/application"
	"github.com/ericfisherdev/portfolio/internal/dom"
	"github.com/ericfisherdev/portfolio/internal/domain/port/driven"
)

const (
	projectsGridID = "projectsGrid"
	projectCountID = "projectCount"

	loadingMessage = "Loading projects from GitHub..."
	emptyMessage   = "No projects found"
	errorMessage   = "Unable to load projects. Please check back later."
)

// ProjectsView fetches the account's repositories and renders them into the
// projects grid.
type ProjectsView struct {
	doc        dom.Document
	svc        *application.ProjectService
	animator   *ScrollAnimator
	account    string
	profileURL string
	logger     *slog.Logger
}

// NewProjectsView creates a ProjectsView.
func NewProjectsView(
	doc dom.Document,
	svc *application.ProjectService,
	animator *ScrollAnimator,
	account, profileURL string,
	logger *slog.Logger,
) *ProjectsView {
	return &ProjectsView{
		doc:        doc,
		svc:        svc,
		animator:   animator,
		account:    account,
		profileURL: profileURL,
		logger:     logger,
	}
}

// Run renders the grid. Every outcome replaces the grid's children, so
// calling Run again never duplicates content. Fetch failures are rendered
// as a single message node and also returned.
func (v *ProjectsView) Run(ctx context.Context) error {
	grid := v.doc.GetElementByID(projectsGridID)
	if grid == nil {
		v.logger.Error("projects grid not found", "id", projectsGridID)
		return driven.ErrMissingContainer
	}

	grid.ReplaceChildren(v.loadingNode())

	cards, err := v.svc.Load(ctx, v.account)
	if err != nil {
		v.logger.Error("error fetching github projects", "account", v.account, "error", err)
		grid.ReplaceChildren(v.errorNode())
		v.clearCTA(grid)
		return err
	}

	if len(cards) == 0 {
		grid.ReplaceChildren(v.messageNode(emptyMessage))
		v.clearCTA(grid)
		v.publishCount(0)
		return nil
	}

	nodes := make([]dom.Element, len(cards))
	for i, card := range cards {
		nodes[i] = buildCard(v.doc, card)
	}
	grid.ReplaceChildren(nodes...)

	for _, node := range nodes {
		v.animator.Observe(node)
	}
	v.placeCTA(grid)
	v.publishCount(len(cards))

	v.logger.Info("projects rendered", "account", v.account, "count", len(cards))
	return nil
}

// placeCTA appends the profile link after the grid, replacing one left by
// an earlier run.
func (v *ProjectsView) placeCTA(grid dom.Element) {
	parent := grid.Parent()
	if parent == nil {
		return
	}
	v.clearCTA(grid)
	parent.AppendChild(buildCTA(v.doc, v.profileURL))
}

func (v *ProjectsView) clearCTA(grid dom.Element) {
	parent := grid.Parent()
	if parent == nil {
		return
	}
	for _, stale := range parent.QuerySelectorAll(".projects-cta") {
		stale.Remove()
	}
}

func (v *ProjectsView) publishCount(n int) {
	if counter := v.doc.GetElementByID(projectCountID); counter != nil {
		counter.SetText(strconv.Itoa(n))
	}
}

func (v *ProjectsView) loadingNode() dom.Element {
	wrapper := newElement(v.doc, "div", "loading-spinner")
	wrapper.AppendChild(newElement(v.doc, "div", "spinner"))
	msg := v.doc.CreateElement("p")
	msg.SetText(loadingMessage)
	wrapper.AppendChild(msg)
	return wrapper
}

func (v *ProjectsView) messageNode(text string) dom.Element {
	wrapper := newElement(v.doc, "div", "loading-spinner")
	msg := v.doc.CreateElement("p")
	msg.SetText(text)
	wrapper.AppendChild(msg)
	return wrapper
}

func (v *ProjectsView) errorNode() dom.Element {
	wrapper := v.messageNode(errorMessage)
	wrapper.Children()[0].SetStyle("color", "var(--color-accent-secondary)")
	return wrapper
}
