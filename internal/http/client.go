// Package http implements the authenticated transport for the ConvertKit
// API: api_key injection, secret gating, and uniform error mapping.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/convertkit-go/convertkit/internal/constants"
	"github.com/convertkit-go/convertkit/pkg/convertkit"
)

const defaultUserAgent = "convertkit-go/1.0"

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Client is an HTTP client for the ConvertKit API. Every request carries
// the api_key; secret-gated callers obtain the api_secret through Secret,
// which fails before any network activity when no secret is configured.
type Client struct {
	baseURL    string
	apiKey     string
	apiSecret  string
	httpClient *retryablehttp.Client
	logger     Logger
	debug      bool
	userAgent  string
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets a logger for the client.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent sets a custom User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithRetryConfig opts in to retries for transient failures. The default
// client performs exactly one attempt per request.
func WithRetryConfig(retryMax int, retryWaitMin, retryWaitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = retryMax
		c.httpClient.RetryWaitMin = retryWaitMin
		c.httpClient.RetryWaitMax = retryWaitMax
	}
}

// WithHTTPClient sets the underlying standard HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient = httpClient
	}
}

// NewClient creates a new transport bound to baseURL and the given
// credentials. apiSecret may be empty; secret-gated operations will then
// fail with convertkit.ErrSecretRequired.
func NewClient(baseURL, apiKey, apiSecret string, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.Logger = nil

	client := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		apiKey:     apiKey,
		apiSecret:  apiSecret,
		httpClient: retryClient,
		userAgent:  defaultUserAgent,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Response represents an HTTP response.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Secret returns the configured API secret, or ErrSecretRequired when the
// client was built without one. Callers must check this before issuing
// secret-gated requests.
func (c *Client) Secret() (string, error) {
	if c.apiSecret == "" {
		return "", convertkit.ErrSecretRequired
	}

	return c.apiSecret, nil
}

// Get issues a GET request with the api_key injected into the query.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	params := cloneValues(query)
	params.Set(constants.APIKeyParam, c.apiKey)

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	return c.do(req, path)
}

// PostForm issues a POST request with a form-encoded body; the api_key is
// injected as a form field.
func (c *Client) PostForm(ctx context.Context, path string, form url.Values) (*Response, error) {
	params := cloneValues(form)
	params.Set(constants.APIKeyParam, c.apiKey)

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, strings.NewReader(params.Encode()))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return c.do(req, path)
}

func (c *Client) do(req *retryablehttp.Request, path string) (*Response, error) {
	req.Header.Set("User-Agent", c.userAgent)

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"path":   path,
		})
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", req.Method, path, err)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	response := &Response{
		StatusCode: resp.StatusCode,
		Headers:    resp.Header,
		Body:       body,
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"method": req.Method,
			"path":   path,
			"status": resp.StatusCode,
		})
	}

	if resp.StatusCode >= 300 {
		return response, &convertkit.APIError{StatusCode: resp.StatusCode, Body: body}
	}

	return response, nil
}

func cloneValues(values url.Values) url.Values {
	cloned := make(url.Values, len(values))
	for key, entries := range values {
		cloned[key] = append([]string(nil), entries...)
	}

	return cloned
}
