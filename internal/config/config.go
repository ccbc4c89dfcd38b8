// Package config loads application configuration from an optional YAML file
// overlaid with environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/ericfisherdev/portfolio/internal/domain/model"
)

// EnvPrefix prefixes every environment override. A double underscore
// separates nesting levels: PORTFOLIO_GITHUB__PER_PAGE -> github.per_page.
const EnvPrefix = "PORTFOLIO_"

// Config holds the application configuration.
type Config struct {
	Account     string          `koanf:"account" yaml:"account"`
	Owner       string          `koanf:"owner" yaml:"owner"`
	About       string          `koanf:"about" yaml:"about"`
	ListenAddr  string          `koanf:"listen_addr" yaml:"listen_addr"`
	AssetsDir   string          `koanf:"assets_dir" yaml:"assets_dir"`
	ProfilePath string          `koanf:"profile_path" yaml:"profile_path"`
	GitHub      GitHub          `koanf:"github" yaml:"github"`
	Rules       model.CardRules `koanf:"rules" yaml:"rules"`
	Page        Page            `koanf:"page" yaml:"page"`
}

// GitHub configures the repository listing endpoint.
type GitHub struct {
	APIURL         string `koanf:"api_url" yaml:"api_url"`
	ProfileBaseURL string `koanf:"profile_base_url" yaml:"profile_base_url"`
	PerPage        int    `koanf:"per_page" yaml:"per_page"`
}

// Page holds the timings and offsets of the page controllers.
type Page struct {
	Threshold           float64       `koanf:"threshold" yaml:"threshold"`
	BottomMargin        float64       `koanf:"bottom_margin" yaml:"bottom_margin"`
	StaggerStep         time.Duration `koanf:"stagger_step" yaml:"stagger_step"`
	CountDuration       time.Duration `koanf:"count_duration" yaml:"count_duration"`
	NavbarScrollOffset  float64       `koanf:"navbar_scroll_offset" yaml:"navbar_scroll_offset"`
	ActiveSectionOffset float64       `koanf:"active_section_offset" yaml:"active_section_offset"`
	TrailLifetime       time.Duration `koanf:"trail_lifetime" yaml:"trail_lifetime"`
	TypingDelay         time.Duration `koanf:"typing_delay" yaml:"typing_delay"`
	TypingInterval      time.Duration `koanf:"typing_interval" yaml:"typing_interval"`
}

// ProfileURL returns the public profile link for the configured account.
func (c *Config) ProfileURL() string {
	return strings.TrimSuffix(c.GitHub.ProfileBaseURL, "/") + "/" + c.Account
}

// Load reads configuration from the YAML file at path (skipped when path is
// empty or the file does not exist), then overlays PORTFOLIO_* environment
// variables, then validates the result.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := Default()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	// Slices decode index-wise over the defaults, so a shorter table from the
	// file would keep the default tail. Replace the table wholesale instead.
	if k.Exists("rules.icons.rules") {
		var rules []model.IconRule
		if err := k.Unmarshal("rules.icons.rules", &rules); err != nil {
			return nil, fmt.Errorf("unmarshalling icon rules: %w", err)
		}
		cfg.Rules.Icons.Rules = rules
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// envKey maps PORTFOLIO_GITHUB__API_URL to github.api_url.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// Validate checks that the configuration contains usable values.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Account) == "" {
		return fmt.Errorf("account is required")
	}
	if c.GitHub.PerPage < 1 || c.GitHub.PerPage > 100 {
		return fmt.Errorf("github.per_page must be between 1 and 100, got %d", c.GitHub.PerPage)
	}
	if c.Page.Threshold <= 0 || c.Page.Threshold > 1 {
		return fmt.Errorf("page.threshold must be in (0, 1], got %v", c.Page.Threshold)
	}

	durations := map[string]time.Duration{
		"page.stagger_step":    c.Page.StaggerStep,
		"page.count_duration":  c.Page.CountDuration,
		"page.trail_lifetime":  c.Page.TrailLifetime,
		"page.typing_delay":    c.Page.TypingDelay,
		"page.typing_interval": c.Page.TypingInterval,
	}
	for name, d := range durations {
		if d < 0 {
			return fmt.Errorf("%s must be non-negative, got %s", name, d)
		}
	}
	return nil
}
