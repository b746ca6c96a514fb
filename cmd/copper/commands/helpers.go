package commands

import (
	"encoding/json"
	"errors"
	"os"
	"strconv"

	"github.com/fivetwenty-io/copper-client/pkg/copper"
	"github.com/fivetwenty-io/copper-client/pkg/copperclient"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"

	NotAvailable = "N/A"
)

// Common static errors used throughout the commands package.
var (
	ErrCredentialsNotConfigured = errors.New("credentials not configured (run 'copper login' or set --api-key and --email)")
	ErrRecordIDRequired         = errors.New("record ID is required")
	ErrInvalidRecordID          = errors.New("record ID must be an integer")
	ErrBatchFileRequired        = errors.New("batch input file is required (--from-file)")
)

// createClient builds an API client from flags, config file, and environment.
func createClient() (copper.Client, error) {
	apiKey := viper.GetString("api_key")
	email := viper.GetString("email")

	if apiKey == "" || email == "" {
		return nil, ErrCredentialsNotConfigured
	}

	config := &copper.Config{
		APIKey:    apiKey,
		UserEmail: email,
		BaseURL:   viper.GetString("api"),
		Debug:     viper.GetBool("verbose"),
	}

	return copperclient.New(config)
}

// parseRecordID converts a positional argument to a record ID.
func parseRecordID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, ErrInvalidRecordID
	}

	return id, nil
}

// renderJSON writes the value as indented JSON to stdout.
func renderJSON(value interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	return encoder.Encode(value)
}

// renderYAML writes the value as YAML to stdout.
func renderYAML(value interface{}) error {
	encoder := yaml.NewEncoder(os.Stdout)
	defer func() { _ = encoder.Close() }()

	return encoder.Encode(value)
}

// structuredOutput renders value as JSON or YAML when the output flag asks
// for it. Returns false when the caller should render a table instead.
func structuredOutput(value interface{}) (bool, error) {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		return true, renderJSON(value)
	case OutputFormatYAML:
		return true, renderYAML(value)
	default:
		return false, nil
	}
}

// formatID renders an optional record ID.
func formatID(id *int64) string {
	if id == nil {
		return NotAvailable
	}

	return strconv.FormatInt(*id, 10)
}

// formatString renders an optional string field.
func formatString(s *string) string {
	if s == nil {
		return NotAvailable
	}

	return *s
}

// formatTimestamp renders an optional timestamp as a date.
func formatTimestamp(ts *copper.Timestamp) string {
	if ts == nil {
		return NotAvailable
	}

	return ts.Format("2006-01-02")
}
