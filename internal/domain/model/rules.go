package model

import "strings"

// IconRule maps a case-sensitive keyword found in a repository name to a glyph.
type IconRule struct {
	Keyword string `koanf:"keyword" yaml:"keyword"`
	Glyph   string `koanf:"glyph" yaml:"glyph"`
}

// IconRules is an ordered icon table. The first rule whose keyword is a
// substring of the name wins; Fallback is used when none match.
type IconRules struct {
	Rules    []IconRule `koanf:"rules" yaml:"rules"`
	Fallback string     `koanf:"fallback" yaml:"fallback"`
}

// IconFor returns the glyph for a repository name.
func (t IconRules) IconFor(name string) string {
	for _, rule := range t.Rules {
		if rule.Keyword != "" && strings.Contains(name, rule.Keyword) {
			return rule.Glyph
		}
	}
	return t.Fallback
}

// LanguageColors maps a language name to a display color.
type LanguageColors struct {
	Colors   map[string]string `koanf:"colors" yaml:"colors"`
	Fallback string            `koanf:"fallback" yaml:"fallback"`
}

// ColorFor returns the color for language, or Fallback when the language is
// empty or unmapped.
func (t LanguageColors) ColorFor(language string) string {
	if language == "" {
		return t.Fallback
	}
	if c, ok := t.Colors[language]; ok && c != "" {
		return c
	}
	return t.Fallback
}

// CardRules bundles the static tables a DisplayCard is derived from.
type CardRules struct {
	Icons     IconRules      `koanf:"icons" yaml:"icons"`
	Languages LanguageColors `koanf:"languages" yaml:"languages"`
}

// DefaultIconRules returns the stock icon table in declaration order.
func DefaultIconRules() IconRules {
	return IconRules{
		Rules: []IconRule{
			{Keyword: "Face", Glyph: "🤖"},
			{Keyword: "face", Glyph: "🤖"},
			{Keyword: "Recognition", Glyph: "👤"},
			{Keyword: "Graph", Glyph: "📊"},
			{Keyword: "Music", Glyph: "🎵"},
			{Keyword: "music", Glyph: "🎵"},
			{Keyword: "Spotify", Glyph: "🎧"},
			{Keyword: "spotify", Glyph: "🎧"},
			{Keyword: "Dashboard", Glyph: "📱"},
			{Keyword: "dashboard", Glyph: "📱"},
			{Keyword: "Todo", Glyph: "✅"},
			{Keyword: "Site", Glyph: "🌐"},
			{Keyword: "site", Glyph: "🌐"},
			{Keyword: "Military", Glyph: "🎖️"},
			{Keyword: "Portfolio", Glyph: "💼"},
			{Keyword: "portfolio", Glyph: "💼"},
		},
		Fallback: "📦",
	}
}

// DefaultLanguageColors returns the stock language color table.
func DefaultLanguageColors() LanguageColors {
	return LanguageColors{
		Colors: map[string]string{
			"JavaScript": "#f7df1e",
			"TypeScript": "#3178c6",
			"Python":     "#3776ab",
			"PHP":        "#777bb4",
			"Java":       "#b07219",
			"CSS":        "#563d7c",
			"HTML":       "#e34c26",
			"C++":        "#f34b7d",
			"C":          "#555555",
			"Ruby":       "#cc342d",
			"Go":         "#00add8",
			"Rust":       "#dea584",
			"Swift":      "#ffac45",
			"Kotlin":     "#a97bff",
		},
		Fallback: "#8b949e",
	}
}

// DefaultCardRules returns both stock tables.
func DefaultCardRules() CardRules {
	return CardRules{
		Icons:     DefaultIconRules(),
		Languages: DefaultLanguageColors(),
	}
}
