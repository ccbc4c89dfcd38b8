package model

// Theme is the visual mode of the page.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// ThemePreferenceKey is the preference entry the theme is persisted under.
const ThemePreferenceKey = "darkMode"

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}

// Glyph returns the indicator shown on the toggle button.
func (t Theme) Glyph() string {
	if t == ThemeLight {
		return "☀️"
	}
	return "🌙"
}

// Encode returns the stored form: "true" for dark, "false" for light.
func (t Theme) Encode() string {
	if t == ThemeLight {
		return "false"
	}
	return "true"
}

// DecodeTheme parses a stored value. Only "false" selects light mode;
// anything else, including a missing value, is dark.
func DecodeTheme(v string) Theme {
	if v == "false" {
		return ThemeLight
	}
	return ThemeDark
}
