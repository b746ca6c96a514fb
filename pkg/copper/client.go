package copper

import (
	"context"
	"encoding/json"
	"time"
)

// Client is the top-level interface for the Copper API.
type Client interface {
	People() PeopleClient
	Companies() CompaniesClient
	Opportunities() OpportunitiesClient
	Tasks() TasksClient

	Batch() BatchClient
	Related() RelatedClient
	Activities() ActivitiesClient

	// RateLimits returns the account's current API rate limit state.
	RateLimits(ctx context.Context) (*RateLimits, error)
}

// PeopleClient manages person records.
type PeopleClient interface {
	List(ctx context.Context, opts *ListOptions) ([]*Person, error)
	Get(ctx context.Context, id int64) (*Person, error)
	Create(ctx context.Context, person *Person) (*Person, error)
	Update(ctx context.Context, id int64, person *Person) (*Person, error)
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, query *SearchQuery) ([]*Person, error)
}

// CompaniesClient manages company records.
type CompaniesClient interface {
	List(ctx context.Context, opts *ListOptions) ([]*Company, error)
	Get(ctx context.Context, id int64) (*Company, error)
	Create(ctx context.Context, company *Company) (*Company, error)
	Update(ctx context.Context, id int64, company *Company) (*Company, error)
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, query *SearchQuery) ([]*Company, error)
}

// OpportunitiesClient manages opportunity records.
type OpportunitiesClient interface {
	List(ctx context.Context, opts *ListOptions) ([]*Opportunity, error)
	Get(ctx context.Context, id int64) (*Opportunity, error)
	Create(ctx context.Context, opportunity *Opportunity) (*Opportunity, error)
	Update(ctx context.Context, id int64, opportunity *Opportunity) (*Opportunity, error)
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, query *SearchQuery) ([]*Opportunity, error)
}

// TasksClient manages task records.
type TasksClient interface {
	List(ctx context.Context, opts *ListOptions) ([]*Task, error)
	Get(ctx context.Context, id int64) (*Task, error)
	Create(ctx context.Context, task *Task) (*Task, error)
	Update(ctx context.Context, id int64, task *Task) (*Task, error)
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, query *SearchQuery) ([]*Task, error)
}

// BatchClient runs multi-record operations. Records are processed strictly
// in input order, one at a time, and each record is attempted at most once.
type BatchClient interface {
	Create(ctx context.Context, entityType EntityType, records []interface{}, opts *BatchOptions) (*BatchOutcome, error)
	Update(ctx context.Context, entityType EntityType, updates []BatchUpdate, opts *BatchOptions) (*BatchOutcome, error)
	Delete(ctx context.Context, entityType EntityType, ids []int64, opts *BatchOptions) (*BatchOutcome, error)
}

// RelatedClient fetches records related to an existing record.
type RelatedClient interface {
	// List returns records of relatedType linked to the given record. For
	// RelatedActivities the entries come back under Activities as raw
	// payloads; every other type is decoded into Data.
	List(ctx context.Context, entityType EntityType, id int64, relatedType RelatedType, opts *PageOptions) (*RelatedList, error)
}

// ActivitiesClient reads the activity feed for a record.
type ActivitiesClient interface {
	ListForRecord(ctx context.Context, entityType EntityType, id int64, filter *ActivityFilter) (*ActivityList, error)
}

// Logger is the structured logging interface accepted by the client.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config holds client configuration.
type Config struct {
	// APIKey is the Copper developer API key.
	APIKey string `json:"api_key" yaml:"api_key"`

	// UserEmail is the email address the key was issued for.
	UserEmail string `json:"user_email" yaml:"user_email"`

	// BaseURL overrides the API endpoint. Defaults to the public API.
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty"`

	// UserAgent overrides the User-Agent header.
	UserAgent string `json:"user_agent,omitempty" yaml:"user_agent,omitempty"`

	// HTTPTimeout is the per-request timeout. Zero means the default.
	HTTPTimeout time.Duration `json:"http_timeout,omitempty" yaml:"http_timeout,omitempty"`

	// RetryMax is the number of retries for transient failures. A negative
	// value disables retries; zero means the default.
	RetryMax     int           `json:"retry_max,omitempty" yaml:"retry_max,omitempty"`
	RetryWaitMin time.Duration `json:"retry_wait_min,omitempty" yaml:"retry_wait_min,omitempty"`
	RetryWaitMax time.Duration `json:"retry_wait_max,omitempty" yaml:"retry_wait_max,omitempty"`

	// Debug enables request and response logging.
	Debug bool `json:"debug,omitempty" yaml:"debug,omitempty"`

	// Logger receives structured log output. Nil disables logging.
	Logger Logger `json:"-" yaml:"-"`

	// Interceptors run around every request the client sends. Nil disables
	// interception.
	Interceptors *InterceptorChain `json:"-" yaml:"-"`

	// Cache configures GET response caching. Nil disables caching.
	Cache *CacheConfig `json:"cache,omitempty" yaml:"cache,omitempty"`
}

// DecodeRecords decodes a wire-format list of entity payloads through the
// codec for entityType, validating each one.
func DecodeRecords(entityType EntityType, raw []json.RawMessage) ([]interface{}, error) {
	codec, err := codecFor(entityType)
	if err != nil {
		return nil, err
	}

	records := make([]interface{}, 0, len(raw))

	for _, payload := range raw {
		record, err := codec.decode(payload)
		if err != nil {
			return nil, err
		}

		records = append(records, record)
	}

	return records, nil
}
