// Package ckclient provides the main entry point for creating ConvertKit API clients
package ckclient

import (
	"strings"

	"github.com/convertkit-go/convertkit/internal/client"
	"github.com/convertkit-go/convertkit/pkg/convertkit"
)

// New creates a new ConvertKit API client from the given configuration.
func New(config *convertkit.Config) (convertkit.Client, error) {
	if config == nil {
		config = &convertkit.Config{}
	}

	// Normalize the base URL
	if config.BaseURL != "" {
		baseURL := strings.TrimSuffix(config.BaseURL, "/")
		if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
			baseURL = "https://" + baseURL
		}

		config.BaseURL = baseURL
	}

	c, err := client.New(config)
	if err != nil {
		return nil, err
	}

	return c, nil
}

// NewWithKey creates a new client with just an API key (no secret).
// Secret-gated operations will fail with convertkit.ErrSecretRequired.
func NewWithKey(apiKey string) (convertkit.Client, error) {
	return New(&convertkit.Config{APIKey: apiKey})
}

// NewWithSecret creates a new client with an API key and secret.
func NewWithSecret(apiKey, apiSecret string) (convertkit.Client, error) {
	return New(&convertkit.Config{APIKey: apiKey, APISecret: apiSecret})
}
