package page

import (
	"fmt"
	"strconv"

	"github.com/ericfisherdev/portfolio/internal/config"
	"github.com/ericfisherdev/portfolio/internal/dom"
)

// ApplyBodyDataset overlays the data-* attributes of <body> onto cfg. The
// page shell prints them so the browser bundle needs no config file.
func ApplyBodyDataset(doc dom.Document, cfg *config.Config) error {
	body := doc.Body()
	if body == nil {
		return cfg.Validate()
	}

	for attr, field := range map[string]*string{
		"data-account":     &cfg.Account,
		"data-owner":       &cfg.Owner,
		"data-api-url":     &cfg.GitHub.APIURL,
		"data-profile-url": &cfg.GitHub.ProfileBaseURL,
	} {
		if v, ok := body.Attr(attr); ok && v != "" {
			*field = v
		}
	}

	if v, ok := body.Attr("data-per-page"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("data-per-page %q: %w", v, err)
		}
		cfg.GitHub.PerPage = n
	}
	return cfg.Validate()
}
