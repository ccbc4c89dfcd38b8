package page

import (
	"log/slog"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/ericfisherdev/portfolio/internal/config"
	"github.com/ericfisherdev/portfolio/internal/dom"
)

const (
	revealClass  = "animate-in"
	staggerClass = "stagger-item"
	countedClass = "counted"

	// frameInterval approximates one animation frame of the count-up.
	frameInterval = 16 * time.Millisecond
)

// ScrollAnimator reveals observed elements once they scroll into view.
type ScrollAnimator struct {
	opts     config.Page
	timers   *timers
	observer dom.IntersectionObserver
	logger   *slog.Logger
}

// NewScrollAnimator creates a ScrollAnimator observing against win's viewport.
func NewScrollAnimator(win dom.Window, opts config.Page, t *timers, logger *slog.Logger) *ScrollAnimator {
	a := &ScrollAnimator{opts: opts, timers: t, logger: logger}
	a.observer = win.NewIntersectionObserver(dom.ObserverOptions{
		Threshold:  opts.Threshold,
		RootMargin: dom.Margin{Bottom: -opts.BottomMargin},
	}, a.handle)
	return a
}

// Observe registers el for a one-shot reveal.
func (a *ScrollAnimator) Observe(el dom.Element) {
	a.observer.Observe(el)
	el.OnRemove(func() { a.observer.Unobserve(el) })
}

// Disconnect stops observing every element.
func (a *ScrollAnimator) Disconnect() {
	a.observer.Disconnect()
}

func (a *ScrollAnimator) handle(entries []dom.IntersectionEntry) {
	for _, entry := range entries {
		if !entry.IsIntersecting {
			continue
		}
		a.observer.Unobserve(entry.Target)
		a.reveal(entry.Target)
	}
}

func (a *ScrollAnimator) reveal(el dom.Element) {
	el.AddClass(revealClass)

	for i, child := range el.QuerySelectorAll("." + staggerClass) {
		a.timers.group(child).after(time.Duration(i)*a.opts.StaggerStep, func() {
			child.AddClass(revealClass)
		})
	}

	if el.HasClass("stat-card") {
		a.countUp(el)
	}
}

// countUp animates the card's number from 0 to its current value, once.
func (a *ScrollAnimator) countUp(card dom.Element) {
	number := card.QuerySelector(".stat-number")
	if number == nil || number.HasClass(countedClass) {
		return
	}
	number.AddClass(countedClass)

	target, ok := parseLeadingInt(number.Text())
	if !ok {
		a.logger.Debug("stat number is not numeric", "text", number.Text())
		return
	}

	frames := float64(a.opts.CountDuration) / float64(frameInterval)
	if frames < 1 {
		frames = 1
	}
	increment := float64(target) / frames
	current := 0.0
	g := a.timers.group(number)

	var step func()
	step = func() {
		current += increment
		if current < float64(target) {
			number.SetText(strconv.Itoa(int(math.Floor(current))) + "+")
			g.frame(step)
			return
		}
		number.SetText(strconv.Itoa(target) + "+")
	}
	step()
}

// parseLeadingInt reads an optionally signed decimal integer at the start of
// s, ignoring leading whitespace and anything after the digits.
func parseLeadingInt(s string) (int, bool) {
	s = strings.TrimLeft(s, " \t\n\r\f\v")

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}
