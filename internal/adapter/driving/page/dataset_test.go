package page

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/portfolio/internal/config"
	"github.com/ericfisherdev/portfolio/internal/dom/memdom"
)

func TestApplyBodyDataset(t *testing.T) {
	win := memdom.MustParse(`<html><body data-account="octocat" data-owner="Mona" data-api-url="https://ghe.example.com/api/v3/"></body></html>`)
	cfg := config.Default()

	require.NoError(t, ApplyBodyDataset(win.Document(), cfg))

	assert.Equal(t, "octocat", cfg.Account)
	assert.Equal(t, "Mona", cfg.Owner)
	assert.Equal(t, "https://ghe.example.com/api/v3/", cfg.GitHub.APIURL)
	assert.Equal(t, "https://github.com/octocat", cfg.ProfileURL())
}

func TestApplyBodyDataset_EmptyAttributesKeepDefaults(t *testing.T) {
	win := memdom.MustParse(`<html><body data-account=""></body></html>`)
	cfg := config.Default()

	require.NoError(t, ApplyBodyDataset(win.Document(), cfg))

	assert.Equal(t, config.Default().Account, cfg.Account)
}

func TestApplyBodyDataset_PerPage(t *testing.T) {
	win := memdom.MustParse(`<html><body data-per-page="30"></body></html>`)
	cfg := config.Default()

	require.NoError(t, ApplyBodyDataset(win.Document(), cfg))
	assert.Equal(t, 30, cfg.GitHub.PerPage)

	bad := memdom.MustParse(`<html><body data-per-page="lots"></body></html>`)
	assert.Error(t, ApplyBodyDataset(bad.Document(), config.Default()))

	outOfRange := memdom.MustParse(`<html><body data-per-page="500"></body></html>`)
	assert.Error(t, ApplyBodyDataset(outOfRange.Document(), config.Default()))
}
