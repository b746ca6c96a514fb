// Package auth builds the authentication headers Copper requires on every
// request.
package auth

import (
	"context"
	"encoding/base64"
	"errors"
	"os"

	"github.com/fivetwenty-io/copper-client/internal/constants"
)

// Credential errors.
var (
	ErrAPIKeyRequired    = errors.New("API key is required")
	ErrUserEmailRequired = errors.New("user email is required")
)

// CredentialsProvider supplies the per-request authentication headers.
type CredentialsProvider interface {
	Headers(ctx context.Context) (map[string]string, error)
}

// StaticCredentials holds a fixed API key and user email.
type StaticCredentials struct {
	apiKey    string
	userEmail string
}

// NewStaticCredentials validates and stores the key/email pair.
func NewStaticCredentials(apiKey, userEmail string) (*StaticCredentials, error) {
	if apiKey == "" {
		return nil, ErrAPIKeyRequired
	}

	if userEmail == "" {
		return nil, ErrUserEmailRequired
	}

	return &StaticCredentials{apiKey: apiKey, userEmail: userEmail}, nil
}

// Headers returns the token headers plus a Basic fallback. Copper accepts
// either scheme; sending both keeps older endpoints working.
func (c *StaticCredentials) Headers(ctx context.Context) (map[string]string, error) {
	basic := base64.StdEncoding.EncodeToString([]byte(c.userEmail + ":" + c.apiKey))

	return map[string]string{
		constants.HeaderAccessToken: c.apiKey,
		constants.HeaderUserEmail:   c.userEmail,
		constants.HeaderApplication: constants.ApplicationValue,
		"Authorization":             "Basic " + basic,
	}, nil
}

// FromEnvironment builds credentials from COPPER_API_KEY and
// COPPER_USER_EMAIL.
func FromEnvironment() (*StaticCredentials, error) {
	return NewStaticCredentials(
		os.Getenv(constants.EnvAPIKey),
		os.Getenv(constants.EnvUserEmail),
	)
}
