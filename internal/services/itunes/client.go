package itunes

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// MaxLimit is the largest result count the Search API accepts
const MaxLimit = 200

var (
	// ErrRateLimited indicates the API rate limit was exceeded
	ErrRateLimited = errors.New("itunes api rate limit exceeded")

	// ErrNoResults indicates a lookup matched nothing
	ErrNoResults = errors.New("no results found")
)

// statusError is returned for non-200 responses
type statusError struct {
	StatusCode int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("unexpected status: %d", e.StatusCode)
}

// Config holds configuration for the iTunes client
type Config struct {
	RequestsPerMinute int           // Default: 20, the documented public limit
	BurstSize         int           // Default: 2
	Timeout           time.Duration // Default: 10s, per attempt
	MaxRetries        int           // Default: 3
	RetryBackoff      time.Duration // Default: 1s, doubled per attempt
	DefaultLimit      int           // Default: 50
	Country           string        // Optional storefront filter
	UserAgent         string
	BaseURL           string // Default: https://itunes.apple.com
}

// Client handles communication with the iTunes Search API
type Client struct {
	httpClient  *http.Client
	rateLimiter *rate.Limiter
	config      Config
	metrics     clientMetrics
}

type clientMetrics struct {
	requests      atomic.Int64
	rateLimitHits atomic.Int64
	errors        atomic.Int64
}

// NewClient creates a new iTunes API client
func NewClient(cfg Config) *Client {
	if cfg.RequestsPerMinute <= 0 {
		cfg.RequestsPerMinute = 20
	}
	if cfg.BurstSize <= 0 {
		cfg.BurstSize = 2
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 3
	}
	if cfg.RetryBackoff <= 0 {
		cfg.RetryBackoff = time.Second
	}
	if cfg.DefaultLimit <= 0 {
		cfg.DefaultLimit = 50
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = "PodcastCatalog/1.0"
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://itunes.apple.com"
	}
	cfg.BaseURL = strings.TrimSuffix(cfg.BaseURL, "/")

	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		rateLimiter: rate.NewLimiter(
			rate.Every(time.Minute/time.Duration(cfg.RequestsPerMinute)),
			cfg.BurstSize,
		),
		config: cfg,
	}
}

// Search finds podcasts matching term. media and entity default to podcast.
func (c *Client) Search(ctx context.Context, term string, opts *SearchOptions) (*SearchResults, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, errors.New("search term cannot be empty")
	}

	media, entity, limit, country := "podcast", "podcast", c.config.DefaultLimit, c.config.Country
	if opts != nil {
		if opts.Media != "" {
			media = opts.Media
		}
		if opts.Entity != "" {
			entity = opts.Entity
		}
		if opts.Limit > 0 {
			limit = opts.Limit
		}
		if opts.Country != "" {
			country = opts.Country
		}
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	params := url.Values{}
	params.Set("term", term)
	params.Set("media", media)
	params.Set("entity", entity)
	params.Set("limit", strconv.Itoa(limit))
	if country != "" {
		params.Set("country", country)
	}

	resp, err := c.doRequestWithRetry(ctx, c.config.BaseURL+"/search?"+params.Encode())
	if err != nil {
		return nil, fmt.Errorf("search podcasts %q: %w", term, err)
	}

	results := toSearchResults(term, resp)
	log.WithFields(log.Fields{
		"term":    term,
		"results": len(results.Entries),
	}).Debug("itunes search completed")

	return results, nil
}

// Lookup fetches a single podcast by its track id
func (c *Client) Lookup(ctx context.Context, trackID int64) (*Entry, error) {
	params := url.Values{}
	params.Set("id", strconv.FormatInt(trackID, 10))
	params.Set("entity", "podcast")

	resp, err := c.doRequestWithRetry(ctx, c.config.BaseURL+"/lookup?"+params.Encode())
	if err != nil {
		return nil, fmt.Errorf("lookup podcast %d: %w", trackID, err)
	}

	results := toSearchResults("", resp)
	if len(results.Entries) == 0 {
		return nil, ErrNoResults
	}
	return results.Entries[0], nil
}

// doRequestWithRetry retries rate limited and transient failures with exponential backoff
func (c *Client) doRequestWithRetry(ctx context.Context, rawURL string) (*searchResponse, error) {
	var lastErr error
	backoff := c.config.RetryBackoff

	for attempt := 0; attempt < c.config.MaxRetries; attempt++ {
		resp, err := c.doRequest(ctx, rawURL)
		if err == nil {
			return resp, nil
		}
		if !isRetryable(err) {
			return nil, err
		}
		lastErr = err

		if attempt == c.config.MaxRetries-1 {
			break
		}

		log.WithError(err).WithField("attempt", attempt+1).Debug("retrying itunes request")
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
			backoff *= 2
		}
	}

	return nil, fmt.Errorf("max retries exceeded: %w", lastErr)
}

// doRequest performs a single HTTP request
func (c *Client) doRequest(ctx context.Context, rawURL string) (*searchResponse, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter wait: %w", err)
	}

	c.metrics.requests.Add(1)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.config.UserAgent)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Encoding", "gzip")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.errors.Add(1)
		return nil, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		c.metrics.rateLimitHits.Add(1)
		return nil, ErrRateLimited
	}
	if resp.StatusCode != http.StatusOK {
		c.metrics.errors.Add(1)
		return nil, &statusError{StatusCode: resp.StatusCode}
	}

	// Setting Accept-Encoding ourselves disables the transport's transparent decompression
	var reader io.Reader = resp.Body
	if strings.Contains(resp.Header.Get("Content-Encoding"), "gzip") {
		gzReader, err := gzip.NewReader(resp.Body)
		if err != nil {
			c.metrics.errors.Add(1)
			return nil, fmt.Errorf("create gzip reader: %w", err)
		}
		defer gzReader.Close()
		reader = gzReader
	}

	var result searchResponse
	if err := json.NewDecoder(reader).Decode(&result); err != nil {
		c.metrics.errors.Add(1)
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return &result, nil
}

// GetMetrics returns current client metrics
func (c *Client) GetMetrics() map[string]int64 {
	return map[string]int64{
		"requests":        c.metrics.requests.Load(),
		"rate_limit_hits": c.metrics.rateLimitHits.Load(),
		"errors":          c.metrics.errors.Load(),
	}
}

func isRetryable(err error) bool {
	if errors.Is(err, ErrRateLimited) {
		return true
	}

	var status *statusError
	if errors.As(err, &status) {
		return status.StatusCode >= http.StatusInternalServerError
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return netErr.Timeout()
	}

	return false
}
