package page

import (
	"strconv"

	"github.com/ericfisherdev/portfolio/internal/config"
	"github.com/ericfisherdev/portfolio/internal/dom"
)

const (
	navbarID      = "navbar"
	navLinksID    = "navLinks"
	menuOpenClass = "show"
	scrolledClass = "scrolled"
	activeClass   = "active"
	progressClass = "scroll-progress"
	navLinkSelect = ".nav-link"
	menuToggleSel = ".menu-toggle"
	sectionSelect = "section"
)

// Navigation drives the navbar: mobile menu, scrolled state, progress bar
// and the active section link.
type Navigation struct {
	win   dom.Window
	doc   dom.Document
	opts  config.Page
	state *State
}

// NewNavigation creates a Navigation.
func NewNavigation(win dom.Window, opts config.Page, state *State) *Navigation {
	return &Navigation{win: win, doc: win.Document(), opts: opts, state: state}
}

// Bind wires the menu controls and the scroll listener.
func (n *Navigation) Bind() []func() {
	var removers []func()

	for _, toggle := range n.doc.QuerySelectorAll(menuToggleSel) {
		removers = append(removers, toggle.AddEventListener(dom.EventClick, func(*dom.Event) {
			if links := n.doc.GetElementByID(navLinksID); links != nil {
				links.ToggleClass(menuOpenClass)
			}
		}))
	}

	for _, link := range n.doc.QuerySelectorAll(navLinkSelect) {
		removers = append(removers, link.AddEventListener(dom.EventClick, func(*dom.Event) {
			if links := n.doc.GetElementByID(navLinksID); links != nil {
				links.RemoveClass(menuOpenClass)
			}
		}))
	}

	removers = append(removers, n.win.AddEventListener(dom.EventScroll, func(*dom.Event) {
		n.Update()
	}))
	return removers
}

// Update syncs the navbar with the current scroll offset.
func (n *Navigation) Update() {
	y := n.win.ScrollY()
	n.state.LastScroll = y

	if navbar := n.doc.GetElementByID(navbarID); navbar != nil {
		if y > n.opts.NavbarScrollOffset {
			navbar.AddClass(scrolledClass)
		} else {
			navbar.RemoveClass(scrolledClass)
		}
		n.updateProgress(navbar, y)
	}

	n.updateActiveLink(y)
}

func (n *Navigation) updateProgress(navbar dom.Element, y float64) {
	bar := n.doc.QuerySelector("." + progressClass)
	if bar == nil {
		bar = newElement(n.doc, "div", progressClass)
		navbar.AppendChild(bar)
	}

	percent := 0.0
	if scrollable := n.doc.ScrollHeight() - n.win.InnerHeight(); scrollable > 0 {
		percent = y / scrollable * 100
	}
	bar.SetStyle("width", formatNumber(percent)+"%")
}

func (n *Navigation) updateActiveLink(y float64) {
	current := ""
	for _, section := range n.doc.QuerySelectorAll(sectionSelect) {
		if y >= section.OffsetTop()-n.opts.ActiveSectionOffset {
			current = section.ID()
		}
	}

	for _, link := range n.doc.QuerySelectorAll(navLinkSelect) {
		link.RemoveClass(activeClass)
		if href, _ := link.Attr("href"); current != "" && href == "#"+current {
			link.AddClass(activeClass)
		}
	}
}

// formatNumber prints v the shortest way, normalising negative zero.
func formatNumber(v float64) string {
	if v == 0 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
