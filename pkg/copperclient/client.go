// Package copperclient provides the main entry point for creating Copper
// API clients.
package copperclient

import (
	"fmt"
	"os"
	"strings"

	"github.com/fivetwenty-io/copper-client/internal/client"
	"github.com/fivetwenty-io/copper-client/internal/constants"
	"github.com/fivetwenty-io/copper-client/pkg/copper"
)

// New creates a new Copper API client.
func New(config *copper.Config) (copper.Client, error) {
	if config == nil {
		return nil, copper.ErrConfigRequired
	}

	if config.APIKey == "" || config.UserEmail == "" {
		return nil, copper.ErrCredentialsRequired
	}

	// Normalize base URL
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = constants.DefaultBaseURL
	}

	baseURL = strings.TrimSuffix(baseURL, "/")
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}

	config.BaseURL = baseURL

	apiClient, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return apiClient, nil
}

// NewWithCredentials creates a client from an API key and user email against
// the public API.
func NewWithCredentials(apiKey, userEmail string) (copper.Client, error) {
	return New(&copper.Config{
		APIKey:    apiKey,
		UserEmail: userEmail,
	})
}

// NewFromEnvironment creates a client from COPPER_API_KEY, COPPER_USER_EMAIL,
// and optionally COPPER_BASE_URL.
func NewFromEnvironment() (copper.Client, error) {
	return New(&copper.Config{
		APIKey:    os.Getenv(constants.EnvAPIKey),
		UserEmail: os.Getenv(constants.EnvUserEmail),
		BaseURL:   os.Getenv(constants.EnvBaseURL),
	})
}
