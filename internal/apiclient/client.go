// Analogue Memory - Nostalgia Catalog and Personal Collection Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/analoguememory

// Package apiclient is the typed client for the remote Analogue Memory REST
// backend.
//
// Every response is decoded into an explicit envelope type and validated
// before it is returned, so callers only ever see well-formed catalog data or
// an *APIError. Requests are rate limited, GET responses are cached for a
// short TTL, and CircuitBreakerClient adds a circuit breaker on top.
package apiclient

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"github.com/tomtom215/analoguememory/internal/cache"
	"github.com/tomtom215/analoguememory/internal/logging"
	"github.com/tomtom215/analoguememory/internal/metrics"
	"github.com/tomtom215/analoguememory/internal/models"
	"github.com/tomtom215/analoguememory/internal/validation"
)

const maxResponseBytes = 8 << 20

// Config configures a Client.
type Config struct {
	// BaseURL of the REST API, including the /api prefix.
	BaseURL string
	// AssetURL is the base for relative image paths.
	AssetURL string
	// Timeout per request. Default: 15s
	Timeout time.Duration
	// RateLimit is the sustained requests per second; <= 0 disables limiting.
	RateLimit float64
	// RateBurst is the limiter burst size. Default: 1
	RateBurst int
	// CacheTTL for GET responses; <= 0 disables caching.
	CacheTTL time.Duration
	// PageSize used by AllItems. Default: 100
	PageSize int
	// HTTPClient overrides the default client (tests).
	HTTPClient *http.Client
}

// TokenSource supplies the bearer token for authenticated requests. An empty
// token means the request is sent anonymously.
type TokenSource interface {
	Token() string
}

// Client talks to the remote backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	cache      *cache.Cache[[]byte]
	assets     AssetResolver
	pageSize   int
	tokens     TokenSource
}

// New creates a Client. tokens may be nil.
func New(cfg Config, tokens TokenSource) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = 100
	}
	if cfg.RateBurst <= 0 {
		cfg.RateBurst = 1
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	limit := rate.Inf
	if cfg.RateLimit > 0 {
		limit = rate.Limit(cfg.RateLimit)
	}

	c := &Client{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		httpClient: httpClient,
		limiter:    rate.NewLimiter(limit, cfg.RateBurst),
		assets:     NewAssetResolver(cfg.AssetURL),
		pageSize:   cfg.PageSize,
		tokens:     tokens,
	}
	if cfg.CacheTTL > 0 {
		c.cache = cache.New[[]byte]("upstream", cfg.CacheTTL)
	}
	return c
}

// SetTokenSource replaces the token source. Used when the auth manager is
// created after the client.
func (c *Client) SetTokenSource(tokens TokenSource) {
	c.tokens = tokens
}

// Assets returns the resolver used to map image paths.
func (c *Client) Assets() AssetResolver { return c.assets }

// Close releases the response cache.
func (c *Client) Close() {
	if c.cache != nil {
		c.cache.Close()
	}
}

func (c *Client) token() string {
	if c.tokens == nil {
		return ""
	}
	return c.tokens.Token()
}

// cacheKey scopes cached responses to the caller's token so one user's
// collection is never served to another.
func cacheKey(path, token string) string {
	if token == "" {
		return "GET " + path
	}
	sum := sha256.Sum256([]byte(token))
	return "GET " + path + "|" + hex.EncodeToString(sum[:6])
}

// invalidate drops cached responses whose path starts with prefix.
func (c *Client) invalidate(prefix string) {
	if c.cache != nil {
		c.cache.DeletePrefix("GET " + prefix)
	}
}

// do sends a request and returns the status and raw body of a 2xx response.
// Non-2xx responses are converted to *APIError.
func (c *Client) do(ctx context.Context, method, url string, body interface{}) (int, []byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return 0, nil, fmt.Errorf("rate limiter: %w", err)
	}

	var reader io.Reader = http.NoBody
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return 0, nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	if token := c.token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if id := logging.RequestIDFromContext(ctx); id != "" {
		req.Header.Set("X-Request-ID", id)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.RecordUpstreamRequest(method, "error", time.Since(start))
		return 0, nil, fmt.Errorf("%s %s: %w", method, url, err)
	}
	defer func() { _ = resp.Body.Close() }()
	metrics.RecordUpstreamRequest(method, strconv.Itoa(resp.StatusCode), time.Since(start))

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return 0, nil, fmt.Errorf("read response body: %w", err)
	}

	logging.Ctx(ctx).Debug().
		Str("method", method).
		Str("url", url).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("Upstream request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp.StatusCode, nil, decodeError(resp.StatusCode, data)
	}
	return resp.StatusCode, data, nil
}

// decodeError builds an APIError from an error response body. Bodies that
// are not JSON still produce an APIError with the default message.
func decodeError(status int, data []byte) *APIError {
	apiErr := &APIError{StatusCode: status, Message: DefaultErrorMessage}

	var body models.ErrorResponse
	if err := json.Unmarshal(data, &body); err != nil {
		return apiErr
	}
	if body.Message != "" {
		apiErr.Message = body.Message
	}
	apiErr.Code = body.Code
	if len(body.Errors) > 0 {
		apiErr.Fields = make(map[string]string, len(body.Errors))
		for _, fe := range body.Errors {
			apiErr.Fields[fe.Field] = fe.Message
		}
	}
	return apiErr
}

// decodeEnvelope parses and validates a success envelope.
func decodeEnvelope[T any](status int, data []byte) (*models.Envelope[T], error) {
	var env models.Envelope[T]
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, malformed(status, "invalid JSON: %v", err)
	}
	if env.Status != models.StatusSuccess {
		return nil, malformed(status, "unexpected envelope status %q", env.Status)
	}
	if env.Data == nil {
		return nil, malformed(status, "envelope has no data")
	}
	if verr := validation.ValidateStruct(env.Data); verr != nil {
		apiErr := malformed(status, "invalid payload: %s", verr.Error())
		apiErr.Fields = verr.Fields()
		return nil, apiErr
	}
	return &env, nil
}

// call performs a request against the API base and decodes its envelope.
// Successful GET responses are cached.
func call[T any](ctx context.Context, c *Client, method, path string, body interface{}) (*models.Envelope[T], error) {
	var key string
	if method == http.MethodGet && c.cache != nil {
		key = cacheKey(path, c.token())
		if data, ok := c.cache.Get(key); ok {
			return decodeEnvelope[T](http.StatusOK, data)
		}
	}

	status, data, err := c.do(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}

	env, err := decodeEnvelope[T](status, data)
	if err != nil {
		logging.Ctx(ctx).Warn().Err(err).Str("path", path).Msg("Rejected upstream response")
		return nil, err
	}
	if key != "" {
		c.cache.Set(key, data)
	}
	return env, nil
}
