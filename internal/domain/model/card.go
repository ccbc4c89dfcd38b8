package model

import "strings"

// NoDescriptionPlaceholder is shown for repositories without a description.
const NoDescriptionPlaceholder = "A GitHub repository with no description provided."

// CardLinks holds the outbound links of a card. Demo is empty when the
// repository has no homepage.
type CardLinks struct {
	Primary string
	Demo    string
}

// DisplayCard is the presentation form of one Repository.
type DisplayCard struct {
	Icon          string
	Title         string
	Description   string
	Language      string
	LanguageColor string
	Stars         int
	Links         CardLinks
}

// NewDisplayCard derives a card from a repository and the rule tables.
// It reads nothing else.
func NewDisplayCard(repo Repository, rules CardRules) DisplayCard {
	description := repo.Description
	if description == "" {
		description = NoDescriptionPlaceholder
	}

	return DisplayCard{
		Icon:          rules.Icons.IconFor(repo.Name),
		Title:         FormatTitle(repo.Name),
		Description:   description,
		Language:      repo.Language,
		LanguageColor: rules.Languages.ColorFor(repo.Language),
		Stars:         repo.Stars,
		Links: CardLinks{
			Primary: repo.URL,
			Demo:    repo.Homepage,
		},
	}
}

// FormatTitle turns a repository name into a display title: dashes and
// underscores become spaces and the first letter of every word is
// uppercased. Applying it to its own output is a no-op.
func FormatTitle(name string) string {
	var b strings.Builder
	b.Grow(len(name))

	prevWord := false
	for _, r := range name {
		if r == '-' || r == '_' {
			r = ' '
		}
		word := isWordRune(r)
		if word && !prevWord && r >= 'a' && r <= 'z' {
			r -= 'a' - 'A'
		}
		b.WriteRune(r)
		prevWord = word
	}
	return b.String()
}

// isWordRune matches the ASCII word class used for title boundaries.
func isWordRune(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '_'
}
