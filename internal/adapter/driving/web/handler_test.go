package web

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/portfolio/internal/adapter/driving/page"
	"github.com/ericfisherdev/portfolio/internal/config"
	"github.com/ericfisherdev/portfolio/internal/dom/memdom"
)

func newTestMux(t *testing.T, shell ShellData) (*http.ServeMux, string) {
	t.Helper()
	assets := t.TempDir()
	mux := http.NewServeMux()
	RegisterRoutes(mux, NewHandler(shell, slog.New(slog.NewTextHandler(io.Discard, nil))), assets)
	return mux, assets
}

func TestIndex_RendersShell(t *testing.T) {
	mux, _ := newTestMux(t, NewShellData(config.Default()))

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	body := rec.Body.String()
	assert.Contains(t, body, `id="projectsGrid"`)
	assert.Contains(t, body, `data-account="thinkmoving"`)
	assert.Contains(t, body, `href="https://github.com/thinkmoving"`)
	assert.Contains(t, body, `/assets/wasm_exec.js`)
}

func TestIndex_EscapesConfigValues(t *testing.T) {
	shell := ShellData{Owner: `<script>x</script>`, Account: `a"b`, ProfileURL: "https://github.com/a", AssetsPath: "/assets/"}
	mux, _ := newTestMux(t, shell)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	body := rec.Body.String()
	assert.NotContains(t, body, "<script>x</script>")
	assert.Contains(t, body, "&lt;script&gt;x&lt;/script&gt;")
	assert.Contains(t, body, `data-account="a&#34;b"`)
}

func TestIndex_UnknownPathIs404(t *testing.T) {
	mux, _ := newTestMux(t, NewShellData(config.Default()))

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStaticAssets(t *testing.T) {
	mux, _ := newTestMux(t, NewShellData(config.Default()))

	for _, path := range []string{"/static/style.css", "/static/boot.js"} {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.NotZero(t, rec.Body.Len(), path)
	}
}

func TestBundleAssets(t *testing.T) {
	mux, assets := newTestMux(t, NewShellData(config.Default()))
	require.NoError(t, os.WriteFile(filepath.Join(assets, "portfolio.wasm"), []byte("\x00asm"), 0o600))

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/assets/portfolio.wasm", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/wasm", rec.Header().Get("Content-Type"))
}

func TestShell_HasControllerAnchors(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Shell(NewShellData(config.Default())).Render(context.Background(), &buf))

	win, err := memdom.Parse(&buf)
	require.NoError(t, err)

	for _, sel := range []string{
		"#navbar", "#navLinks", ".menu-toggle", ".theme-toggle .theme-icon",
		".hero-subtitle", ".gradient-orb", "#projectsGrid", "#projectCount",
		".stat-card .stat-number", ".skill-card .tag", ".contact-card",
		".footer-content p", `a[href="#projects"]`,
	} {
		assert.NotNil(t, win.Doc().Find(sel), sel)
	}
}

func TestInitials(t *testing.T) {
	assert.Equal(t, "FA", initials("Fatima Abdi"))
	assert.Equal(t, "", initials("  "))
	assert.Equal(t, "ÉL", initials("élodie lambert"))
}

func TestShell_ServerConfigReachesBrowserBundle(t *testing.T) {
	server := config.Default()
	server.Account = "octocat"
	server.Owner = "Mona Lisa"
	server.GitHub.APIURL = "https://ghe.example.com/api/v3/"
	server.GitHub.ProfileBaseURL = "https://ghe.example.com/"
	server.GitHub.PerPage = 25

	var buf bytes.Buffer
	require.NoError(t, Shell(NewShellData(server)).Render(context.Background(), &buf))
	win, err := memdom.Parse(&buf)
	require.NoError(t, err)

	browser := config.Default()
	require.NoError(t, page.ApplyBodyDataset(win.Document(), browser))

	assert.Equal(t, server.Account, browser.Account)
	assert.Equal(t, server.Owner, browser.Owner)
	assert.Equal(t, server.GitHub.APIURL, browser.GitHub.APIURL)
	assert.Equal(t, server.GitHub.ProfileBaseURL, browser.GitHub.ProfileBaseURL)
	assert.Equal(t, server.GitHub.PerPage, browser.GitHub.PerPage)
	assert.Equal(t, "https://ghe.example.com/octocat", browser.ProfileURL())
}

func TestShell_AboutRenderedFromMarkdown(t *testing.T) {
	cfg := config.Default()
	cfg.About = "Builds **fast** tools <script>alert(1)</script>"

	var buf bytes.Buffer
	require.NoError(t, Shell(NewShellData(cfg)).Render(context.Background(), &buf))
	win, err := memdom.Parse(&buf)
	require.NoError(t, err)

	about := win.Doc().Find(".about-text")
	require.NotNil(t, about)
	assert.NotNil(t, about.QuerySelector("strong"))
	assert.Nil(t, about.QuerySelector("script"))
}
