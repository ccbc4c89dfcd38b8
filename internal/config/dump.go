package config

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Dump writes cfg as YAML that Load reads back unchanged.
func Dump(w io.Writer, cfg *Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return enc.Close()
}

// MarshalYAML prints durations as "100ms" rather than nanoseconds.
func (p Page) MarshalYAML() (any, error) {
	return struct {
		Threshold           float64 `yaml:"threshold"`
		BottomMargin        float64 `yaml:"bottom_margin"`
		StaggerStep         string  `yaml:"stagger_step"`
		CountDuration       string  `yaml:"count_duration"`
		NavbarScrollOffset  float64 `yaml:"navbar_scroll_offset"`
		ActiveSectionOffset float64 `yaml:"active_section_offset"`
		TrailLifetime       string  `yaml:"trail_lifetime"`
		TypingDelay         string  `yaml:"typing_delay"`
		TypingInterval      string  `yaml:"typing_interval"`
	}{
		Threshold:           p.Threshold,
		BottomMargin:        p.BottomMargin,
		StaggerStep:         p.StaggerStep.String(),
		CountDuration:       p.CountDuration.String(),
		NavbarScrollOffset:  p.NavbarScrollOffset,
		ActiveSectionOffset: p.ActiveSectionOffset,
		TrailLifetime:       p.TrailLifetime.String(),
		TypingDelay:         p.TypingDelay.String(),
		TypingInterval:      p.TypingInterval.String(),
	}, nil
}
