// Package constants defines shared constants used across the client.
package constants

import "time"

// API endpoint configuration.
const (
	// DefaultBaseURL is the public Copper API endpoint.
	DefaultBaseURL = "https://api.copper.com"

	// APIVersion is the API version path segment.
	APIVersion = "v1"

	// APIPathPrefix is prepended to every resource path.
	APIPathPrefix = "/api/" + APIVersion
)

// HTTP client defaults.
const (
	// DefaultHTTPTimeout is the per-request timeout.
	DefaultHTTPTimeout = 30 * time.Second

	// DefaultRetryMax is the number of retries for transient failures.
	DefaultRetryMax = 3

	// DefaultRetryWaitMin is the initial retry backoff.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax caps the retry backoff.
	DefaultRetryWaitMax = 60 * time.Second

	// DefaultUserAgent identifies the client on the wire.
	DefaultUserAgent = "copper-client-go/1.0"
)

// Authentication header names. Copper authenticates every request with an
// API key plus the email it was issued for.
const (
	HeaderAccessToken = "X-PW-AccessToken"
	HeaderUserEmail   = "X-PW-UserEmail"
	HeaderApplication = "X-PW-Application"

	// ApplicationValue is the fixed X-PW-Application value for the
	// developer API.
	ApplicationValue = "developer_api"
)

// Environment variable names for credential discovery.
const (
	EnvAPIKey    = "COPPER_API_KEY"
	EnvUserEmail = "COPPER_USER_EMAIL"
	EnvBaseURL   = "COPPER_BASE_URL"
)

// Resource endpoints without an entity type.
const (
	EndpointRateLimits = "/rate_limits"
)

// Pagination defaults.
const (
	DefaultPageSize = 20
	MaxPageSize     = 200
)

// Cache defaults.
const (
	DefaultCacheSize = 1000
	DefaultCacheTTL  = 5 * time.Minute
)

// File permissions for CLI configuration.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)
