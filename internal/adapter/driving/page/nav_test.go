package page

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/portfolio/internal/dom"
)

// layoutSections gives the fixture sections stacked 600px boxes.
func layoutSections(f *fixture) {
	doc := f.win.Doc()
	doc.Find("#navbar").SetLayout(dom.Rect{Top: 0, Height: 80})
	for i, id := range []string{"home", "about", "skills", "projects", "contact"} {
		doc.Find("#"+id).SetLayout(dom.Rect{Top: float64(i) * 600, Height: 600})
	}
	doc.SetScrollHeight(3000)
}

func TestNavigation_MenuToggle(t *testing.T) {
	f := newFixture(t, nil, nil)
	f.page.Start(context.Background())
	links := f.win.Doc().Find("#navLinks")

	f.win.Doc().Find(".menu-toggle").Click()
	assert.True(t, links.HasClass(menuOpenClass))

	f.win.Doc().Find(".menu-toggle").Click()
	assert.False(t, links.HasClass(menuOpenClass))

	f.win.Doc().Find(".menu-toggle").Click()
	f.win.Doc().Find(`.nav-link[href="#contact"]`).Click()
	assert.False(t, links.HasClass(menuOpenClass), "following a link closes the menu")
}

func TestNavigation_ScrolledClassAndProgress(t *testing.T) {
	f := newFixture(t, nil, nil)
	layoutSections(f)
	f.page.Start(context.Background())
	navbar := f.win.Doc().Find("#navbar")

	f.win.Scroll(50)
	assert.False(t, navbar.HasClass(scrolledClass))

	f.win.Scroll(1100)
	assert.True(t, navbar.HasClass(scrolledClass))
	bars := f.win.Doc().FindAll(".scroll-progress")
	require.Len(t, bars, 1)
	assert.Equal(t, "50%", bars[0].Style("width"))
	assert.Equal(t, float64(1100), f.page.State().LastScroll)

	f.win.Scroll(0)
	assert.False(t, navbar.HasClass(scrolledClass))
	assert.Len(t, f.win.Doc().FindAll(".scroll-progress"), 1, "progress bar is created once")
	assert.Equal(t, "0%", bars[0].Style("width"))
}

func TestNavigation_ActiveSectionLink(t *testing.T) {
	f := newFixture(t, nil, nil)
	layoutSections(f)
	f.page.Start(context.Background())

	// about starts at 600; the 200px lead makes it current from 400.
	f.win.Scroll(450)
	assert.True(t, f.win.Doc().Find(`.nav-link[href="#about"]`).HasClass(activeClass))
	assert.False(t, f.win.Doc().Find(`.nav-link[href="#projects"]`).HasClass(activeClass))

	f.win.Scroll(1700)
	assert.False(t, f.win.Doc().Find(`.nav-link[href="#about"]`).HasClass(activeClass))
	assert.True(t, f.win.Doc().Find(`.nav-link[href="#projects"]`).HasClass(activeClass))
	assert.Len(t, f.win.Doc().FindAll(".nav-link.active"), 1)
}
