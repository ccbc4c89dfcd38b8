package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolateConfigEnv unsets every PORTFOLIO_ env var so tests don't inherit
// values from the host environment. t.Cleanup restores original values.
func isolateConfigEnv(t *testing.T) {
	t.Helper()
	for _, kv := range os.Environ() {
		key, orig, _ := strings.Cut(kv, "=")
		if !strings.HasPrefix(key, EnvPrefix) {
			continue
		}
		t.Cleanup(func() { os.Setenv(key, orig) })
		os.Unsetenv(key)
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "portfolio.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	isolateConfigEnv(t)

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, "thinkmoving", cfg.Account)
	assert.Equal(t, "127.0.0.1:8080", cfg.ListenAddr)
	assert.Equal(t, 100, cfg.GitHub.PerPage)
	assert.Equal(t, 0.15, cfg.Page.Threshold)
	assert.Equal(t, 100*time.Millisecond, cfg.Page.StaggerStep)
	assert.Equal(t, "https://github.com/thinkmoving", cfg.ProfileURL())
	assert.Len(t, cfg.Rules.Icons.Rules, 16)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	isolateConfigEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yml"))

	require.NoError(t, err)
	assert.Equal(t, "thinkmoving", cfg.Account)
}

func TestLoad_FileThenEnv(t *testing.T) {
	isolateConfigEnv(t)
	path := writeConfig(t, `
account: octocat
owner: The Octocat
github:
  per_page: 30
page:
  stagger_step: 250ms
rules:
  icons:
    fallback: "*"
    rules:
      - keyword: cli
        glyph: "⌨️"
  languages:
    colors:
      Zig: "#ec915c"
`)
	t.Setenv("PORTFOLIO_ACCOUNT", "hubot")
	t.Setenv("PORTFOLIO_GITHUB__PER_PAGE", "50")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "hubot", cfg.Account)
	assert.Equal(t, "The Octocat", cfg.Owner)
	assert.Equal(t, 50, cfg.GitHub.PerPage)
	assert.Equal(t, 250*time.Millisecond, cfg.Page.StaggerStep)

	// The icon table is replaced, not merged index-wise.
	require.Len(t, cfg.Rules.Icons.Rules, 1)
	assert.Equal(t, "cli", cfg.Rules.Icons.Rules[0].Keyword)
	assert.Equal(t, "*", cfg.Rules.Icons.Fallback)

	// Language colors merge over the defaults.
	assert.Equal(t, "#ec915c", cfg.Rules.Languages.ColorFor("Zig"))
	assert.Equal(t, "#00add8", cfg.Rules.Languages.ColorFor("Go"))
}

func TestLoad_InvalidDuration(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("PORTFOLIO_PAGE__TYPING_DELAY", "soon")

	_, err := Load("")

	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "ok", mutate: func(*Config) {}},
		{name: "empty account", mutate: func(c *Config) { c.Account = " " }, wantErr: "account is required"},
		{name: "per page too large", mutate: func(c *Config) { c.GitHub.PerPage = 500 }, wantErr: "github.per_page"},
		{name: "zero threshold", mutate: func(c *Config) { c.Page.Threshold = 0 }, wantErr: "page.threshold"},
		{name: "negative stagger", mutate: func(c *Config) { c.Page.StaggerStep = -time.Second }, wantErr: "page.stagger_step"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
