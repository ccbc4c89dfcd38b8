package web

import (
	"strconv"
	"strings"

	"github.com/ericfisherdev/portfolio/internal/config"
)

// ShellData is everything the page shell prints. Repository data is never
// part of it: the browser fetches and renders projects itself.
type ShellData struct {
	Owner      string
	Account    string
	ProfileURL string
	// AboutHTML is sanitized markup produced by RenderMarkdown.
	AboutHTML string
	// APIURL, ProfileBaseURL and PerPage travel to the browser bundle as
	// body data-* attributes.
	APIURL         string
	ProfileBaseURL string
	PerPage        string
	// AssetsPath is the URL prefix of the wasm bundle and wasm_exec.js.
	AssetsPath string
}

// NewShellData derives the shell fields from cfg.
func NewShellData(cfg *config.Config) ShellData {
	return ShellData{
		Owner:          cfg.Owner,
		Account:        cfg.Account,
		ProfileURL:     cfg.ProfileURL(),
		AboutHTML:      RenderMarkdown(cfg.About),
		APIURL:         cfg.GitHub.APIURL,
		ProfileBaseURL: cfg.GitHub.ProfileBaseURL,
		PerPage:        strconv.Itoa(cfg.GitHub.PerPage),
		AssetsPath:     "/assets/",
	}
}

// initials returns the upper-cased first letter of each word in name.
func initials(name string) string {
	var b strings.Builder
	for _, word := range strings.Fields(name) {
		for _, r := range word {
			b.WriteString(strings.ToUpper(string(r)))
			break
		}
	}
	return b.String()
}
