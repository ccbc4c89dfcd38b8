package page

import (
	"strconv"

	"github.com/ericfisherdev/portfolio/internal/dom"
	"github.com/ericfisherdev/portfolio/internal/domain/model"
)

const (
	primaryLinkLabel = "View on GitHub"
	demoLinkLabel    = "Live Demo"
	ctaLabel         = "View All on GitHub"

	githubMarkSVG = `<svg width="20" height="20" viewBox="0 0 24 24" fill="currentColor">` +
		`<path d="M12 0C5.37 0 0 5.37 0 12c0 5.31 3.44 9.8 8.2 11.39.6.11.82-.26.82-.58v-2.03c-3.34.73-4.04-1.61-4.04-1.61-.55-1.39-1.33-1.76-1.33-1.76-1.09-.74.08-.73.08-.73 1.2.08 1.84 1.24 1.84 1.24 1.07 1.84 2.81 1.31 3.5 1 .1-.78.42-1.31.76-1.61-2.67-.3-5.47-1.33-5.47-5.93 0-1.31.47-2.38 1.24-3.22-.13-.3-.54-1.52.12-3.18 0 0 1-.32 3.3 1.23a11.5 11.5 0 0 1 6 0c2.28-1.55 3.29-1.23 3.29-1.23.66 1.66.25 2.88.12 3.18.77.84 1.23 1.91 1.23 3.22 0 4.61-2.81 5.62-5.48 5.92.43.37.81 1.1.81 2.22v3.29c0 .32.22.7.83.58C20.57 21.8 24 17.31 24 12c0-6.63-5.37-12-12-12z"/>` +
		`</svg>`
)

// newElement creates a tag with the given classes.
func newElement(doc dom.Document, tag string, classes ...string) dom.Element {
	el := doc.CreateElement(tag)
	if len(classes) > 0 {
		el.AddClass(classes...)
	}
	return el
}

// externalLink creates an anchor that opens in a new browsing context.
func externalLink(doc dom.Document, href, label string, classes ...string) dom.Element {
	a := newElement(doc, "a", classes...)
	a.SetAttr("href", href)
	a.SetAttr("target", "_blank")
	a.SetAttr("rel", "noopener noreferrer")
	a.SetText(label)
	return a
}

// buildCard renders one display card as a detached element tree.
func buildCard(doc dom.Document, card model.DisplayCard) dom.Element {
	root := newElement(doc, "div", "project-card", "stagger-item")

	header := newElement(doc, "div", "project-header")
	icon := newElement(doc, "div", "project-icon")
	icon.SetText(card.Icon)
	title := doc.CreateElement("h3")
	title.SetText(card.Title)
	header.AppendChild(icon)
	header.AppendChild(title)
	root.AppendChild(header)

	description := newElement(doc, "p", "project-description")
	description.SetText(card.Description)
	root.AppendChild(description)

	meta := newElement(doc, "div", "project-meta")
	if card.Language != "" {
		lang := newElement(doc, "div", "project-language")
		dot := newElement(doc, "span", "language-dot")
		dot.SetStyle("background-color", card.LanguageColor)
		label := doc.CreateElement("span")
		label.SetText(card.Language)
		lang.AppendChild(dot)
		lang.AppendChild(label)
		meta.AppendChild(lang)
	}
	if card.Stars > 0 {
		stars := newElement(doc, "div", "project-language")
		count := doc.CreateElement("span")
		count.SetText("⭐ " + strconv.Itoa(card.Stars))
		stars.AppendChild(count)
		meta.AppendChild(stars)
	}
	root.AppendChild(meta)

	links := newElement(doc, "div", "project-links")
	links.AppendChild(externalLink(doc, card.Links.Primary, primaryLinkLabel, "project-link"))
	if card.Links.Demo != "" {
		links.AppendChild(externalLink(doc, card.Links.Demo, demoLinkLabel, "project-link"))
	}
	root.AppendChild(links)

	return root
}

// buildCTA renders the "view all" call to action that follows the grid.
func buildCTA(doc dom.Document, profileURL string) dom.Element {
	wrapper := newElement(doc, "div", "projects-cta")
	wrapper.SetStyle("margin-top", "3rem")
	wrapper.SetStyle("text-align", "center")

	a := externalLink(doc, profileURL, "", "btn", "btn-primary")
	a.SetStyle("display", "inline-flex")
	a.SetStyle("align-items", "center")
	a.SetStyle("gap", "0.75rem")
	a.SetHTML(githubMarkSVG)
	label := doc.CreateElement("span")
	label.SetText(ctaLabel)
	a.AppendChild(label)

	wrapper.AppendChild(a)
	return wrapper
}
