package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"cinetrack/pkg/cache"

	"go.uber.org/zap"
)

const (
	DefaultBaseURL  = "https://api.themoviedb.org/3"
	DefaultLanguage = "en-US"
	DefaultTimeout  = 10 * time.Second

	maxBodyBytes = 8 << 20
)

type Config struct {
	APIKey   string
	BaseURL  string
	Language string
	Timeout  time.Duration
}

type Client struct {
	baseURL  string
	apiKey   string
	language string
	timeout  time.Duration
	http     *http.Client
	cache    cache.Store
	log      *zap.Logger
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithCache stores successful bodies so repeated lookups skip the network.
func WithCache(store cache.Store) Option {
	return func(c *Client) { c.cache = store }
}

func NewClient(cfg Config, log *zap.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:   cfg.APIKey,
		language: cfg.Language,
		timeout:  cfg.Timeout,
		http:     &http.Client{},
		log:      log.With(zap.String("client", "tmdb")),
	}
	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	if c.language == "" {
		c.language = DefaultLanguage
	}
	if c.timeout <= 0 {
		c.timeout = DefaultTimeout
	}

	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch GETs endpoint with params plus the API key and language, decoding the
// JSON body into dest. Non-2xx answers come back as *UpstreamError.
func (c *Client) Fetch(ctx context.Context, endpoint string, params url.Values, dest any) error {
	return c.FetchWithTimeout(ctx, endpoint, params, dest, c.timeout)
}

// FetchWithTimeout is Fetch with a per-call deadline instead of the client default.
func (c *Client) FetchWithTimeout(ctx context.Context, endpoint string, params url.Values, dest any, timeout time.Duration) error {
	path := strings.Trim(endpoint, "/")

	query := url.Values{}
	for k, vs := range params {
		for _, v := range vs {
			query.Add(k, v)
		}
	}
	if query.Get("language") == "" {
		query.Set("language", c.language)
	}

	// cache key leaves the API key out
	cacheKey := path + "?" + query.Encode()
	if c.cache != nil {
		if body, ok := c.cache.Get(ctx, cacheKey); ok {
			if err := json.Unmarshal(body, dest); err == nil {
				return nil
			}
		}
	}

	query.Set("api_key", c.apiKey)
	reqURL := c.baseURL + "/" + path + "?" + query.Encode()

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return &UpstreamError{Endpoint: path, Query: cacheKey, Err: fmt.Errorf("build request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return &UpstreamError{Endpoint: path, Query: cacheKey, Err: err}
	}
	defer resp.Body.Close()

	c.log.Debug("TMDB request",
		zap.String("endpoint", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return &UpstreamError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Endpoint:   path,
			Query:      cacheKey,
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return &UpstreamError{Endpoint: path, Query: cacheKey, Err: fmt.Errorf("read body: %w", err)}
	}

	if err := json.Unmarshal(body, dest); err != nil {
		return &UpstreamError{Endpoint: path, Query: cacheKey, Err: fmt.Errorf("decode body: %w", err)}
	}

	if c.cache != nil {
		c.cache.Set(ctx, cacheKey, body)
	}

	return nil
}
