package page

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPage_StartMarksStaggerItems(t *testing.T) {
	f := newFixture(t, nil, nil)
	f.page.Start(context.Background())

	doc := f.win.Doc()
	for _, sel := range []string{".skill-card", ".skill-card .tag", ".stat-card", ".contact-card"} {
		for _, el := range doc.FindAll(sel) {
			assert.True(t, el.HasClass(staggerClass), sel)
		}
	}
}

func TestPage_StartRevealsVisibleBlocks(t *testing.T) {
	f := newFixture(t, nil, nil)
	f.page.Start(context.Background())
	f.win.Advance(3 * time.Second)

	doc := f.win.Doc()
	assert.True(t, doc.Find(".about").HasClass(revealClass))
	assert.True(t, doc.Find(".stat-card").HasClass(revealClass))
	assert.Equal(t, "12+", doc.Find(".stat-number").Text())
}

func TestPage_StartIsIdempotent(t *testing.T) {
	f := newFixture(t, nil, nil)
	ctx := context.Background()
	f.page.Start(ctx)
	f.page.Start(ctx)

	f.win.Doc().Find(".menu-toggle").Click()
	assert.True(t, f.win.Doc().Find("#navLinks").HasClass(menuOpenClass), "listeners bound once")
}

func TestPage_CloseStopsEverything(t *testing.T) {
	f := newFixture(t, &fakeLister{repos: sampleRepos()}, nil)
	ctx := context.Background()
	f.page.Start(ctx)
	require.NoError(t, f.page.LoadProjects(ctx))
	f.win.MouseMove(1, 1)
	require.Positive(t, f.page.PendingTimers())

	f.page.Close()

	assert.Equal(t, 0, f.page.PendingTimers())
	f.win.Advance(5 * time.Second)
	assert.Equal(t, "", f.win.Doc().Find(".hero-subtitle").Text(), "typing stopped")

	f.win.Doc().Find(".menu-toggle").Click()
	assert.False(t, f.win.Doc().Find("#navLinks").HasClass(menuOpenClass))

	f.win.MouseMove(2, 2)
	assert.Len(t, f.win.Doc().FindAll(".mouse-trail"), 1, "no new trail after close")
}
