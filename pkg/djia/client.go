// Package djia fetches Dow Jones opening values from the community-run
// plain-text sources used by the geohashing game.
package djia

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/geohash-tools/geohash-cli/internal/geohash"
)

// DefaultSources lists the plain-text DJIA endpoints, tried in order. Each
// returns the opening value for the date appended as YYYY/MM/DD.
var DefaultSources = []string{
	"http://geo.crox.net/djia/",
	"http://www1.geo.crox.net/djia/",
	"http://www2.geo.crox.net/djia/",
	"http://carabiner.peeron.com/xkcd/map/data/",
}

// ErrNoData means every source was tried and none returned a value for the
// date. It wraps the core sentinel so callers can classify with errors.Is.
var ErrNoData = fmt.Errorf("djia: no source has data: %w", geohash.ErrUnresolvableDJIA)

// maxBodyBytes bounds the response read; a valid body is a short number.
const maxBodyBytes = 1 << 10

// Provider supplies the DJIA opening value for a trading day.
type Provider interface {
	Opening(ctx context.Context, date geohash.Date) (geohash.Value, error)
}

// Client fetches opening values over HTTP, falling back across sources.
type Client struct {
	httpClient *http.Client
	sources    []string
	limiter    *rate.Limiter
	userAgent  string
	maxRetries int
}

// Option configures the Client.
type Option func(*Client)

// WithSources overrides the source URL list.
func WithSources(sources []string) Option {
	return func(c *Client) {
		if len(sources) > 0 {
			c.sources = sources
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// WithRateLimit sets the request rate across all sources.
func WithRateLimit(perSec float64, burst int) Option {
	return func(c *Client) { c.limiter = rate.NewLimiter(rate.Limit(perSec), burst) }
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// WithMaxRetries sets the attempt count per source for transient failures.
func WithMaxRetries(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.maxRetries = n
		}
	}
}

// NewClient creates a Client over the default sources.
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: 5 * time.Second},
		sources:    DefaultSources,
		limiter:    rate.NewLimiter(2, 4),
		userAgent:  "geohash-cli/1.0",
		maxRetries: 2,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Opening implements Provider by trying each source in order and returning
// the first parsable value. A source that is offline or has no data for the
// date is skipped; if all miss, the failure wraps ErrNoData.
func (c *Client) Opening(ctx context.Context, date geohash.Date) (geohash.Value, error) {
	path := strings.ReplaceAll(date.String(), "-", "/")

	var lastErr error
	for _, src := range c.sources {
		val, err := c.fetch(ctx, src+path)
		if err == nil {
			return val, nil
		}
		if ctx.Err() != nil {
			return geohash.Value{}, eris.Wrapf(err, "djia: fetch %s", date)
		}
		lastErr = err
		zap.L().Debug("djia source failed, trying next",
			zap.String("source", src),
			zap.Error(err),
		)
	}

	return geohash.Value{}, eris.Wrapf(ErrNoData, "djia: %s (last: %v)", date, lastErr)
}

// fetch requests one source URL, retrying transient failures.
func (c *Client) fetch(ctx context.Context, rawURL string) (geohash.Value, error) {
	var lastErr error
	for attempt := range c.maxRetries {
		if err := c.limiter.Wait(ctx); err != nil {
			return geohash.Value{}, eris.Wrap(err, "djia: rate limiter wait")
		}

		val, retryable, err := c.fetchOnce(ctx, rawURL)
		if err == nil {
			return val, nil
		}
		lastErr = err
		if !retryable || ctx.Err() != nil {
			return geohash.Value{}, err
		}
		if attempt < c.maxRetries-1 {
			zap.L().Warn("djia request failed, retrying",
				zap.String("url", rawURL),
				zap.Int("attempt", attempt+1),
				zap.Error(err),
			)
			c.backoff(ctx, attempt)
		}
	}
	return geohash.Value{}, lastErr
}

func (c *Client) fetchOnce(ctx context.Context, rawURL string) (geohash.Value, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return geohash.Value{}, false, eris.Wrap(err, "djia: build request")
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return geohash.Value{}, true, eris.Wrap(err, "djia: request")
	}
	defer resp.Body.Close() //nolint:errcheck

	switch {
	case resp.StatusCode == http.StatusOK:
		// fall through to parse
	case resp.StatusCode >= 500:
		return geohash.Value{}, true, eris.Errorf("djia: status %d from %s", resp.StatusCode, rawURL)
	default:
		// 404 here means the source has no value for the date yet.
		return geohash.Value{}, false, eris.Errorf("djia: status %d from %s", resp.StatusCode, rawURL)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return geohash.Value{}, true, eris.Wrap(err, "djia: read body")
	}

	val, err := geohash.ParseValue(strings.TrimSpace(string(body)))
	if err != nil {
		return geohash.Value{}, false, eris.Wrapf(err, "djia: body from %s", rawURL)
	}
	return val, false, nil
}

func (c *Client) backoff(ctx context.Context, attempt int) {
	d := time.Duration(attempt+1) * 250 * time.Millisecond
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
