// Package client implements the convertkit.Client facade on top of the
// authenticated transport.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/convertkit-go/convertkit/internal/constants"
	"github.com/convertkit-go/convertkit/internal/http"
	"github.com/convertkit-go/convertkit/pkg/convertkit"
)

// Client implements the convertkit.Client interface.
type Client struct {
	httpClient *http.Client
	logger     convertkit.Logger

	forms     *FormsClient
	tags      *TagsClient
	sequences *SequencesClient
}

var _ convertkit.Client = (*Client)(nil)

// New creates a new ConvertKit API client.
func New(config *convertkit.Config) (*Client, error) {
	if config.APIKey == "" {
		return nil, convertkit.ErrMissingAPIKey
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = convertkit.DefaultBaseURL
	}

	httpClient := http.NewClient(baseURL, config.APIKey, config.APISecret, httpOptions(config)...)

	client := &Client{
		httpClient: httpClient,
		logger:     config.Logger,
	}

	client.forms = NewFormsClient(client)
	client.tags = NewTagsClient(client)
	client.sequences = NewSequencesClient(client)

	return client, nil
}

// httpOptions builds transport options from config.
func httpOptions(config *convertkit.Config) []http.Option {
	var opts []http.Option

	if config.Logger != nil {
		opts = append(opts, http.WithLogger(&loggerAdapter{logger: config.Logger}))
	}

	if config.Debug {
		opts = append(opts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		opts = append(opts, http.WithUserAgent(config.UserAgent))
	}

	if config.RetryMax > 0 {
		opts = append(opts, http.WithRetryConfig(config.RetryMax, constants.DefaultRetryWaitMin, constants.DefaultRetryWaitMax))
	}

	return opts
}

// Forms implements convertkit.Client.Forms.
func (c *Client) Forms() convertkit.FormsClient {
	return c.forms
}

// Tags implements convertkit.Client.Tags.
func (c *Client) Tags() convertkit.TagsClient {
	return c.tags
}

// Sequences implements convertkit.Client.Sequences.
func (c *Client) Sequences() convertkit.SequencesClient {
	return c.sequences
}

// Account implements convertkit.Client.Account. Secret-gated.
func (c *Client) Account(ctx context.Context) (*convertkit.Account, error) {
	secret, err := c.httpClient.Secret()
	if err != nil {
		return nil, fmt.Errorf("account: %w", err)
	}

	query := url.Values{}
	query.Set(constants.APISecretParam, secret)

	envelope, err := c.GetJSON(ctx, "/account", query)
	if err != nil {
		return nil, fmt.Errorf("getting account: %w", err)
	}

	return convertkit.NewAccount(envelope, c), nil
}

// GetJSON issues a GET and decodes the response envelope. Numbers are kept
// as json.Number so entity ids survive untruncated.
func (c *Client) GetJSON(ctx context.Context, path string, query url.Values) (map[string]interface{}, error) {
	resp, err := c.httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, err
	}

	return decodeJSON(resp.Body)
}

// PostFormJSON issues a form-encoded POST and decodes the response
// envelope.
func (c *Client) PostFormJSON(ctx context.Context, path string, form url.Values) (map[string]interface{}, error) {
	resp, err := c.httpClient.PostForm(ctx, path, form)
	if err != nil {
		return nil, err
	}

	return decodeJSON(resp.Body)
}

func decodeJSON(body []byte) (map[string]interface{}, error) {
	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()

	var envelope map[string]interface{}

	err := decoder.Decode(&envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing response: %w", err)
	}

	return envelope, nil
}

// loggerAdapter adapts convertkit.Logger to http.Logger.
type loggerAdapter struct {
	logger convertkit.Logger
}

func (l *loggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, fields)
}

func (l *loggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, fields)
}

func (l *loggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, fields)
}

func (l *loggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, fields)
}
