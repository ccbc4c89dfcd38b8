package page

import (
	"fmt"

	"github.com/ericfisherdev/portfolio/internal/config"
	"github.com/ericfisherdev/portfolio/internal/dom"
)

// Effects binds the decorative handlers: smooth anchor scrolling, parallax,
// the mouse trail, the hero typing effect and the footer line.
type Effects struct {
	win    dom.Window
	doc    dom.Document
	opts   config.Page
	timers *timers
	owner  string
}

// NewEffects creates Effects. owner is printed in the footer.
func NewEffects(win dom.Window, opts config.Page, t *timers, owner string) *Effects {
	return &Effects{win: win, doc: win.Document(), opts: opts, timers: t, owner: owner}
}

// BindSmoothScroll makes in-page anchors scroll to their target, leaving
// room for the navbar.
func (e *Effects) BindSmoothScroll() []func() {
	var removers []func()
	for _, anchor := range e.doc.QuerySelectorAll(`a[href^="#"]`) {
		removers = append(removers, anchor.AddEventListener(dom.EventClick, func(ev *dom.Event) {
			href, _ := anchor.Attr("href")
			if href == "" || href == "#" {
				return
			}
			target := e.doc.QuerySelector(href)
			if target == nil {
				return
			}
			ev.PreventDefault()

			offset := 0.0
			if navbar := e.doc.QuerySelector(".navbar"); navbar != nil {
				offset = navbar.OffsetHeight()
			}
			e.win.ScrollTo(target.OffsetTop()-offset, true)
		}))
	}
	return removers
}

// BindParallax moves the background orbs and section titles with the
// scroll offset.
func (e *Effects) BindParallax() func() {
	return e.win.AddEventListener(dom.EventScroll, func(*dom.Event) {
		e.Parallax()
	})
}

// Parallax applies the transforms for the current scroll offset.
func (e *Effects) Parallax() {
	y := e.win.ScrollY()

	for i, orb := range e.doc.QuerySelectorAll(".gradient-orb") {
		speed := 0.3 + float64(i)*0.15
		orb.SetStyle("transform", translateY(-(y * speed)))
	}

	height := e.win.InnerHeight()
	if height <= 0 {
		return
	}
	for _, title := range e.doc.QuerySelectorAll(".section-title") {
		progress := title.BoundingClientRect().Top / height
		if progress < 1 && progress > -1 {
			title.SetStyle("transform", translateY((0.5-progress)*30))
		}
	}
}

// BindMouseTrail drops a short-lived dot at every pointer position.
func (e *Effects) BindMouseTrail() func() {
	return e.doc.AddEventListener(dom.EventMouseMove, func(ev *dom.Event) {
		body := e.doc.Body()
		if body == nil {
			return
		}
		dot := newElement(e.doc, "div", "mouse-trail")
		dot.SetStyle("left", formatNumber(ev.PageX)+"px")
		dot.SetStyle("top", formatNumber(ev.PageY)+"px")
		body.AppendChild(dot)

		e.timers.group(dot).after(e.opts.TrailLifetime, dot.Remove)
	})
}

// StartTyping clears the hero subtitle and types it back one character at
// a time.
func (e *Effects) StartTyping() {
	subtitle := e.doc.QuerySelector(".hero-subtitle")
	if subtitle == nil {
		return
	}

	text := []rune(subtitle.Text())
	subtitle.SetText("")
	subtitle.SetStyle("opacity", "1")

	g := e.timers.group(subtitle)
	typed := 0
	var next func()
	next = func() {
		if typed >= len(text) {
			return
		}
		typed++
		subtitle.SetText(string(text[:typed]))
		g.after(e.opts.TypingInterval, next)
	}
	g.after(e.opts.TypingDelay, next)
}

// WriteFooter stamps the copyright line with the current year.
func (e *Effects) WriteFooter() {
	if line := e.doc.QuerySelector(".footer-content p"); line != nil {
		line.SetText(fmt.Sprintf("© %d %s. All rights reserved.", e.win.Now().Year(), e.owner))
	}
}

func translateY(px float64) string {
	return "translateY(" + formatNumber(px) + "px)"
}
