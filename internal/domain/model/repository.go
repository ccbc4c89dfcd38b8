package model

import "time"

// Repository is one source repository as reported by the hosting API.
// Optional text fields are empty when the API returns null.
type Repository struct {
	Name        string
	Description string
	Language    string
	Stars       int
	Homepage    string
	URL         string
	IsFork      bool
	UpdatedAt   time.Time
}

// HasLanguage reports whether the API detected a primary language.
func (r Repository) HasLanguage() bool {
	return r.Language != ""
}
