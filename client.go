package smarttub

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"
)

const (
	// DefaultBaseURL is the SmartTub API base URL.
	DefaultBaseURL = "https://api.smarttub.io"

	// DefaultAuthURL is the Auth0 token endpoint used for login.
	DefaultAuthURL = "https://smarttub.auth0.com/oauth/token"

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second
)

// Client is a SmartTub API client.
//
// A Client is safe to share between goroutines for reads, but Login replaces
// the session's bearer token in place; callers that re-login while requests
// are in flight must serialize externally (or use one Client per goroutine).
type Client struct {
	baseURL    string
	authURL    string
	httpClient *http.Client
	logger     *slog.Logger

	mu      sync.RWMutex
	session *Session
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets a custom base URL for the API.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithAuthURL sets a custom authentication endpoint.
func WithAuthURL(url string) Option {
	return func(c *Client) {
		c.authURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithTimeout sets the HTTP request timeout.
// This option can be applied in any order relative to other options.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if c.httpClient == nil {
			c.httpClient = &http.Client{}
		}
		c.httpClient.Timeout = timeout
	}
}

// NewClient creates a new SmartTub API client. The client is unauthenticated
// until Login succeeds.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		authURL:    DefaultAuthURL,
		httpClient: defaultHTTPClient(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// defaultHTTPClient returns the default HTTP client configuration.
func defaultHTTPClient() *http.Client {
	return &http.Client{
		Timeout: DefaultTimeout,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
			DisableKeepAlives:   false,
		},
	}
}

// Session returns a copy of the current session, or nil before Login.
func (c *Client) Session() *Session {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.session == nil {
		return nil
	}
	session := *c.session
	return &session
}

// Request performs a generic authenticated call against the API and returns
// the raw response body. Most callers should prefer the typed methods; this
// is the escape hatch for endpoints the library does not model.
func (c *Client) Request(ctx context.Context, method, path string, body any) (json.RawMessage, error) {
	data, err := c.do(ctx, method, path, body)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(data), nil
}

// do performs an authenticated HTTP request and returns the response body.
func (c *Client) do(ctx context.Context, method, path string, body any) ([]byte, error) {
	c.mu.RLock()
	session := c.session
	c.mu.RUnlock()
	if session == nil {
		return nil, ErrNotLoggedIn
	}

	url := c.baseURL + "/" + path

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+session.AccessToken)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logResponse(ctx, method, path, 0, time.Since(start), err)
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Body: string(respBody)}
		c.logResponse(ctx, method, path, resp.StatusCode, time.Since(start), apiErr)
		return nil, apiErr
	}

	c.logResponse(ctx, method, path, resp.StatusCode, time.Since(start), nil)
	return respBody, nil
}

// get performs a GET request.
func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	return c.do(ctx, http.MethodGet, path, nil)
}

// post performs a POST request.
func (c *Client) post(ctx context.Context, path string, body any) ([]byte, error) {
	return c.do(ctx, http.MethodPost, path, body)
}

// patch performs a PATCH request.
func (c *Client) patch(ctx context.Context, path string, body any) ([]byte, error) {
	return c.do(ctx, http.MethodPatch, path, body)
}
