package config

import (
	"time"

	"github.com/ericfisherdev/portfolio/internal/domain/model"
)

// Default returns a Config with the stock account, tables and timings.
func Default() *Config {
	return &Config{
		Account:     "thinkmoving",
		Owner:       "Fatima Abdi",
		About:       "I design and ship **small, dependable** systems.",
		ListenAddr:  "127.0.0.1:8080",
		AssetsDir:   "dist",
		ProfilePath: "portfolio-profile.db",
		GitHub: GitHub{
			APIURL:         "https://api.github.com/",
			ProfileBaseURL: "https://github.com/",
			PerPage:        100,
		},
		Rules: model.DefaultCardRules(),
		Page:  DefaultPage(),
	}
}

// DefaultPage returns the stock controller timings.
func DefaultPage() Page {
	return Page{
		Threshold:           0.15,
		BottomMargin:        50,
		StaggerStep:         100 * time.Millisecond,
		CountDuration:       2 * time.Second,
		NavbarScrollOffset:  100,
		ActiveSectionOffset: 200,
		TrailLifetime:       time.Second,
		TypingDelay:         time.Second,
		TypingInterval:      100 * time.Millisecond,
	}
}
