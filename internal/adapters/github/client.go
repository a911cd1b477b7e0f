// Package github provides a minimal GitHub REST v3 client for repository discovery
package github

import (
	"context"
	"net/http"
	"strings"
	"time"

	"reposcout/internal/core/version"
	perr "reposcout/internal/platform/errors"
	"reposcout/internal/platform/logger"
)

const (
	baseURLDefault = "https://api.github.com"
	defaultTimeout = 10 * time.Second

	defaultMaxPages = 3
	defaultOverscan = 2
	perPageCap      = 100
)

// Options configures the Client
type Options struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration

	// Personal access token. Empty means tokenless which is very low quota
	Token string

	// Search pagination tuning
	// MaxPages caps how many sequential result pages a search walks
	// Overscan multiplies the requested limit to decide when enough rows accumulated
	MaxPages int
	Overscan int
}

// Client talks to the GitHub REST API
type Client struct {
	http *http.Client
	opts Options
	log  logger.Logger
}

// NewClient creates a new Client with sane defaults
func NewClient(o Options) *Client {
	if o.BaseURL == "" {
		o.BaseURL = baseURLDefault
	}
	o.BaseURL = strings.TrimRight(o.BaseURL, "/")
	if o.UserAgent == "" {
		o.UserAgent = "reposcout/" + version.Info().Version
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	if o.MaxPages <= 0 {
		o.MaxPages = defaultMaxPages
	}
	if o.Overscan <= 0 {
		o.Overscan = defaultOverscan
	}
	return &Client{
		http: &http.Client{Timeout: o.Timeout},
		opts: o,
		log:  *logger.Named("github"),
	}
}

// HasToken reports whether the client carries an auth token
func (c *Client) HasToken() bool { return strings.TrimSpace(c.opts.Token) != "" }

// do issues a single request with auth headers and returns the raw response
// callers own status classification and body lifecycle
func (c *Client) do(ctx context.Context, method, path string) (*http.Response, error) {
	url := c.opts.BaseURL + path

	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnknown, "github new request failed")
	}
	req.Header.Set("User-Agent", c.opts.UserAgent)
	req.Header.Set("Accept", "application/vnd.github+json")
	if tok := strings.TrimSpace(c.opts.Token); tok != "" {
		req.Header.Set("Authorization", "token "+tok)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	lat := time.Since(start)

	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "github do failed")
	}

	rem, reset := parseRateHeaders(resp.Header)
	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("latency", lat).
		Int("rate_remaining", rem).
		Time("rate_reset", reset).
		Msg("github http response")

	return resp, nil
}
