// Package github implements the RepositoryLister port using the go-github library.
package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	gh "github.com/google/go-github/v82/github"
	"github.com/gregjones/httpcache"

	"github.com/gofri/go-github-ratelimit/v2/github_ratelimit"

	"github.com/ericfisherdev/portfolio/internal/domain/model"
	"github.com/ericfisherdev/portfolio/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.RepositoryLister = (*Client)(nil)

// defaultPerPage is the largest page the REST API serves.
const defaultPerPage = 100

// Client implements the driven.RepositoryLister port using the go-github library.
// Requests are unauthenticated.
type Client struct {
	gh      *gh.Client
	perPage int
	logger  *slog.Logger
}

// NewClient creates a new GitHub API client with the following transport stack:
//  1. httpcache (ETag-based conditional request caching)
//  2. go-github-ratelimit (secondary rate limit middleware, sleeps on 429)
//  3. go-github (GitHub REST API client)
//
// baseURL may be empty to use the public API.
func NewClient(baseURL string, perPage int, logger *slog.Logger) (*Client, error) {
	cacheTransport := httpcache.NewMemoryCacheTransport()
	rateLimitClient := github_ratelimit.NewClient(cacheTransport)
	return newClient(rateLimitClient, baseURL, perPage, logger)
}

// NewClientWithHTTPClient creates a Client with a custom http.Client and base URL.
// This constructor is intended for testing, allowing injection of an httptest server.
func NewClientWithHTTPClient(httpClient *http.Client, baseURL string, logger *slog.Logger) (*Client, error) {
	return newClient(httpClient, baseURL, defaultPerPage, logger)
}

func newClient(httpClient *http.Client, baseURL string, perPage int, logger *slog.Logger) (*Client, error) {
	client := gh.NewClient(httpClient)

	if baseURL != "" {
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		u, err := url.Parse(baseURL)
		if err != nil {
			return nil, fmt.Errorf("parsing base URL: %w", err)
		}
		client.BaseURL = u
	}

	if perPage <= 0 || perPage > defaultPerPage {
		perPage = defaultPerPage
	}

	return &Client{
		gh:      client,
		perPage: perPage,
		logger:  logger,
	}, nil
}

// ListRepositories returns the first page of the account's public
// repositories. Only one request is made; when the API reports further pages
// the result is truncated and a warning is logged.
func (c *Client) ListRepositories(ctx context.Context, account string) ([]model.Repository, error) {
	opts := &gh.RepositoryListByUserOptions{
		Sort:      "updated",
		Direction: "desc",
		ListOptions: gh.ListOptions{
			PerPage: c.perPage,
		},
	}

	repos, resp, err := c.gh.Repositories.ListByUser(ctx, account, opts)
	if err != nil {
		return nil, fmt.Errorf("listing repositories for %s: %w", account, classifyError(err))
	}

	c.logRateLimit(resp, account, len(repos))

	if resp != nil && resp.NextPage != 0 {
		c.logger.Warn("repository list truncated to first page",
			"account", account,
			"per_page", c.perPage,
			"next_page", resp.NextPage,
		)
	}

	result := make([]model.Repository, 0, len(repos))
	for _, r := range repos {
		if r == nil {
			continue
		}
		result = append(result, mapRepository(r))
	}
	return result, nil
}

// mapRepository converts a go-github Repository to a domain model Repository.
func mapRepository(r *gh.Repository) model.Repository {
	return model.Repository{
		Name:        r.GetName(),
		Description: r.GetDescription(),
		Language:    r.GetLanguage(),
		Stars:       r.GetStargazersCount(),
		Homepage:    r.GetHomepage(),
		URL:         r.GetHTMLURL(),
		IsFork:      r.GetFork(),
		UpdatedAt:   r.GetUpdatedAt().Time,
	}
}

// classifyError wraps err with the driven sentinel describing its kind:
// an HTTPStatusError for rejected responses, ErrPayload for undecodable
// bodies and ErrNetworkFailure for everything else.
func classifyError(err error) error {
	if status := responseStatus(err); status != 0 {
		return fmt.Errorf("%w: %w", &driven.HTTPStatusError{StatusCode: status}, err)
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: %w", driven.ErrPayload, err)
	}

	return fmt.Errorf("%w: %w", driven.ErrNetworkFailure, err)
}

func responseStatus(err error) int {
	var errResp *gh.ErrorResponse
	if errors.As(err, &errResp) && errResp.Response != nil {
		return errResp.Response.StatusCode
	}
	var rateErr *gh.RateLimitError
	if errors.As(err, &rateErr) && rateErr.Response != nil {
		return rateErr.Response.StatusCode
	}
	var abuseErr *gh.AbuseRateLimitError
	if errors.As(err, &abuseErr) && abuseErr.Response != nil {
		return abuseErr.Response.StatusCode
	}
	return 0
}

func (c *Client) logRateLimit(resp *gh.Response, account string, count int) {
	if resp == nil {
		return
	}

	c.logger.Debug("github api call",
		"endpoint", "users/"+account+"/repos",
		"count", count,
		"rate_remaining", resp.Rate.Remaining,
		"rate_limit", resp.Rate.Limit,
	)

	if resp.Rate.Limit > 0 && resp.Rate.Remaining < 10 {
		c.logger.Warn("github rate limit low",
			"remaining", resp.Rate.Remaining,
			"reset_in", time.Until(resp.Rate.Reset.Time).Round(time.Second),
		)
	}
}
