package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dafibh/fortuna/fortuna-web/internal/casing"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

// DefaultTimeout bounds every call to the API
const DefaultTimeout = 15 * time.Second

// maxErrorBody caps how much of an error response is read
const maxErrorBody = 64 << 10

// Client talks to the finance REST API. Payloads are camelCase in memory
// and snake_case on the wire; the client converts in both directions.
// It is safe for concurrent use.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	limiter    *rate.Limiter
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithRateLimit throttles outbound calls to perMinute with the given burst
func WithRateLimit(perMinute, burst int) Option {
	return func(c *Client) {
		if perMinute <= 0 {
			return
		}
		c.limiter = rate.NewLimiter(rate.Limit(float64(perMinute)/60.0), burst)
	}
}

// NewClient creates a client for the API at baseURL
func NewClient(baseURL string, timeout time.Duration, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse api base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("api base url must be http or https, got %q", baseURL)
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	c := &Client{
		baseURL:    u,
		httpClient: &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// request describes one API call
type request struct {
	method string
	path   string
	query  url.Values
	token  string
	body   any
}

// do performs the call and decodes a successful response into out, which
// may be nil when the body is irrelevant.
func (c *Client) do(ctx context.Context, r request, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return &APIError{Message: "rate limit wait", Cause: err}
		}
	}

	var body io.Reader
	if r.body != nil {
		data, err := encodeBody(r.body)
		if err != nil {
			return &APIError{Message: "encode request", Cause: err}
		}
		body = bytes.NewReader(data)
	}

	endpoint := c.baseURL.JoinPath(r.path)
	if len(r.query) > 0 {
		endpoint.RawQuery = r.query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, r.method, endpoint.String(), body)
	if err != nil {
		return &APIError{Message: "build request", Cause: err}
	}

	requestID := uuid.New().String()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if r.token != "" {
		req.Header.Set("Authorization", "Bearer "+r.token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Warn().
			Err(err).
			Str("method", r.method).
			Str("path", r.path).
			Str("request_id", requestID).
			Msg("API request failed")
		return &APIError{Message: "request failed", Cause: err}
	}
	defer resp.Body.Close()

	log.Debug().
		Str("method", r.method).
		Str("path", r.path).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Str("request_id", requestID).
		Msg("API request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errorFromResponse(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &APIError{Status: resp.StatusCode, Message: "read response", Cause: err}
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := casing.UnmarshalCamel(data, out); err != nil {
		return &APIError{Status: resp.StatusCode, Message: "decode response", Cause: err}
	}
	return nil
}

// encodeBody turns a camelCase payload into snake_case JSON. Maps go
// through casing.Encode so Undefined entries are dropped and explicit nils
// are kept; structs rely on their omitempty tags.
func encodeBody(v any) ([]byte, error) {
	if m, ok := v.(map[string]any); ok {
		return json.Marshal(casing.Encode(m))
	}
	return casing.MarshalSnake(v)
}

// errorFromResponse builds an APIError from a non-2xx response, picking
// the message out of the common error body shapes.
func errorFromResponse(resp *http.Response) error {
	data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	apiErr := &APIError{Status: resp.StatusCode}

	var payload struct {
		Message string `json:"message"`
		Detail  string `json:"detail"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(data, &payload); err == nil {
		switch {
		case payload.Message != "":
			apiErr.Message = payload.Message
		case payload.Detail != "":
			apiErr.Message = payload.Detail
		case payload.Error != "":
			apiErr.Message = payload.Error
		}
	}
	if apiErr.Message == "" {
		apiErr.Message = strings.TrimSpace(string(data))
	}
	if len(apiErr.Message) > 200 {
		apiErr.Message = apiErr.Message[:200]
	}
	return apiErr
}

// IsUnauthorized reports whether err is an API rejection of the token
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && (apiErr.Status == http.StatusUnauthorized || apiErr.Status == http.StatusForbidden)
}
