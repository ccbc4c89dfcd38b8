package page

import (
	"context"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/portfolio/internal/dom"
	"github.com/ericfisherdev/portfolio/internal/dom/memdom"
)

func TestEffects_SmoothScrollToAnchor(t *testing.T) {
	f := newFixture(t, nil, nil)
	layoutSections(f)
	f.page.Start(context.Background())

	ev := f.win.Doc().Find(`.nav-link[href="#projects"]`).Click()

	assert.True(t, ev.DefaultPrevented())
	assert.Equal(t, float64(1800-80), f.win.ScrollY())
}

func TestEffects_BareHashIsIgnored(t *testing.T) {
	f := newFixture(t, nil, nil)
	layoutSections(f)
	f.page.Start(context.Background())
	f.win.Scroll(900)

	ev := f.win.Doc().Find(".nav-logo").Click()

	assert.False(t, ev.DefaultPrevented())
	assert.Equal(t, float64(900), f.win.ScrollY())
}

func TestEffects_Parallax(t *testing.T) {
	f := newFixture(t, nil, nil)
	layoutSections(f)
	f.win.Doc().Find(".section-title").SetLayout(dom.Rect{Top: 700, Height: 40})
	f.page.Start(context.Background())

	f.win.Scroll(100)

	orbs := f.win.Doc().FindAll(".gradient-orb")
	require.Len(t, orbs, 2)
	assert.Equal(t, "translateY(-30px)", orbs[0].Style("transform"))
	assert.InDelta(t, -45, translatePx(t, orbs[1].Style("transform")), 1e-9)

	// title top is 600px into an 800px viewport: progress 0.75.
	assert.Equal(t, "translateY(-7.5px)", f.win.Doc().Find(".section-title").Style("transform"))

	f.win.Scroll(0)
	assert.Equal(t, "translateY(0px)", orbs[0].Style("transform"))
}

func translatePx(t *testing.T, transform string) float64 {
	t.Helper()
	raw := strings.TrimSuffix(strings.TrimPrefix(transform, "translateY("), "px)")
	v, err := strconv.ParseFloat(raw, 64)
	require.NoError(t, err, transform)
	return v
}

func TestEffects_MouseTrailExpires(t *testing.T) {
	f := newFixture(t, nil, nil)
	f.page.Start(context.Background())

	f.win.MouseMove(12, 34)
	f.win.Advance(500 * time.Millisecond)
	f.win.MouseMove(56, 78)

	trails := f.win.Doc().FindAll(".mouse-trail")
	require.Len(t, trails, 2)
	assert.Equal(t, "12px", trails[0].Style("left"))
	assert.Equal(t, "34px", trails[0].Style("top"))

	f.win.Advance(500 * time.Millisecond)
	assert.Len(t, f.win.Doc().FindAll(".mouse-trail"), 1)

	f.win.Advance(500 * time.Millisecond)
	assert.Empty(t, f.win.Doc().FindAll(".mouse-trail"))
}

func TestEffects_TypingEffect(t *testing.T) {
	f := newFixture(t, nil, nil)
	f.page.Start(context.Background())
	subtitle := f.win.Doc().Find(".hero-subtitle")

	assert.Equal(t, "", subtitle.Text())
	assert.Equal(t, "1", subtitle.Style("opacity"))

	f.win.Advance(time.Second)
	assert.Equal(t, "G", subtitle.Text())

	f.win.Advance(200 * time.Millisecond)
	assert.Equal(t, "Go ", subtitle.Text())

	f.win.Advance(time.Second)
	assert.Equal(t, "Go dev", subtitle.Text())
}

func TestEffects_FooterYear(t *testing.T) {
	start := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	f := newFixture(t, nil, nil, memdom.WithStartTime(start))
	f.page.Start(context.Background())

	assert.Equal(t, "© 2026 Fatima Abdi. All rights reserved.", f.win.Doc().Find(".footer-content p").Text())
}
