// Package client implements the Copper API client.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/fivetwenty-io/copper-client/internal/auth"
	"github.com/fivetwenty-io/copper-client/internal/constants"
	internalhttp "github.com/fivetwenty-io/copper-client/internal/http"
	"github.com/fivetwenty-io/copper-client/pkg/copper"
)

// Client implements the copper.Client interface.
type Client struct {
	httpClient *internalhttp.Client

	people        *PeopleClient
	companies     *CompaniesClient
	opportunities *OpportunitiesClient
	tasks         *TasksClient
	batch         *BatchClient
	related       *RelatedClient
	activities    *ActivitiesClient
}

// New creates a new Copper API client from configuration.
func New(config *copper.Config) (*Client, error) {
	if config == nil {
		config = &copper.Config{}
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = constants.DefaultBaseURL
	}

	var credentials auth.CredentialsProvider

	if config.APIKey != "" || config.UserEmail != "" {
		creds, err := auth.NewStaticCredentials(config.APIKey, config.UserEmail)
		if err != nil {
			return nil, err
		}

		credentials = creds
	}

	opts := []internalhttp.Option{}

	if config.Logger != nil {
		opts = append(opts, internalhttp.WithLogger(config.Logger))
	}

	if config.Debug {
		opts = append(opts, internalhttp.WithDebug(true))
	}

	if config.UserAgent != "" {
		opts = append(opts, internalhttp.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		opts = append(opts, internalhttp.WithTimeout(config.HTTPTimeout))
	}

	if config.RetryMax != 0 || config.RetryWaitMin > 0 || config.RetryWaitMax > 0 {
		retryMax := config.RetryMax
		if retryMax < 0 {
			retryMax = 0
		} else if retryMax == 0 {
			retryMax = constants.DefaultRetryMax
		}

		waitMin := config.RetryWaitMin
		if waitMin <= 0 {
			waitMin = constants.DefaultRetryWaitMin
		}

		waitMax := config.RetryWaitMax
		if waitMax <= 0 {
			waitMax = constants.DefaultRetryWaitMax
		}

		opts = append(opts, internalhttp.WithRetryConfig(retryMax, waitMin, waitMax))
	}

	if config.Interceptors != nil {
		opts = append(opts, internalhttp.WithInterceptors(config.Interceptors))
	}

	if config.Cache != nil {
		cache, err := copper.NewCacheFromConfig(config.Cache)
		if err != nil {
			return nil, fmt.Errorf("creating cache: %w", err)
		}

		ttl := constants.DefaultCacheTTL
		if config.Cache.Options != nil && config.Cache.Options.TTL > 0 {
			ttl = config.Cache.Options.TTL
		}

		opts = append(opts, internalhttp.WithCache(cache, ttl))
	}

	client := &Client{
		httpClient: internalhttp.NewClient(baseURL, credentials, opts...),
	}

	client.people = &PeopleClient{client: client}
	client.companies = &CompaniesClient{client: client}
	client.opportunities = &OpportunitiesClient{client: client}
	client.tasks = &TasksClient{client: client}
	client.batch = &BatchClient{client: client}
	client.related = &RelatedClient{client: client}
	client.activities = &ActivitiesClient{client: client}

	return client, nil
}

// People returns the people client.
func (c *Client) People() copper.PeopleClient {
	return c.people
}

// Companies returns the companies client.
func (c *Client) Companies() copper.CompaniesClient {
	return c.companies
}

// Opportunities returns the opportunities client.
func (c *Client) Opportunities() copper.OpportunitiesClient {
	return c.opportunities
}

// Tasks returns the tasks client.
func (c *Client) Tasks() copper.TasksClient {
	return c.tasks
}

// Batch returns the batch client.
func (c *Client) Batch() copper.BatchClient {
	return c.batch
}

// Related returns the related-records client.
func (c *Client) Related() copper.RelatedClient {
	return c.related
}

// Activities returns the activities client.
func (c *Client) Activities() copper.ActivitiesClient {
	return c.activities
}

// RateLimits returns the account's current API rate limit state.
func (c *Client) RateLimits(ctx context.Context) (*copper.RateLimits, error) {
	resp, err := c.get(ctx, constants.EndpointRateLimits, nil)
	if err != nil {
		return nil, err
	}

	var limits copper.RateLimits

	err = json.Unmarshal(resp.Body, &limits)
	if err != nil {
		return nil, &copper.MalformedResponseError{Entity: "rate_limits", Err: err}
	}

	return &limits, nil
}

// rawBody passes pre-encoded JSON through the transport unchanged.
func rawBody(body []byte) json.RawMessage {
	return json.RawMessage(body)
}

func apiPath(path string) string {
	return constants.APIPathPrefix + path
}

func entityPath(entityType copper.EntityType, id int64) string {
	return entityType.Path() + "/" + strconv.FormatInt(id, 10)
}

func (c *Client) get(ctx context.Context, path string, query url.Values) (*internalhttp.Response, error) {
	return c.httpClient.Get(ctx, apiPath(path), query)
}

func (c *Client) post(ctx context.Context, path string, body interface{}) (*internalhttp.Response, error) {
	return c.httpClient.Post(ctx, apiPath(path), body)
}

func (c *Client) put(ctx context.Context, path string, body interface{}) (*internalhttp.Response, error) {
	return c.httpClient.Put(ctx, apiPath(path), body)
}

func (c *Client) delete(ctx context.Context, path string) (*internalhttp.Response, error) {
	return c.httpClient.Delete(ctx, apiPath(path))
}

// listQuery converts list options to query parameters.
func listQuery(opts *copper.ListOptions) url.Values {
	if opts == nil {
		return nil
	}

	query := url.Values{}

	if opts.PageSize > 0 {
		query.Set("page_size", strconv.Itoa(opts.PageSize))
	}

	if opts.PageNumber > 0 {
		query.Set("page_number", strconv.Itoa(opts.PageNumber))
	}

	if opts.SortBy != "" {
		query.Set("sort_by", opts.SortBy)
	}

	if opts.SortDirection != "" {
		query.Set("sort_direction", opts.SortDirection)
	}

	if len(query) == 0 {
		return nil
	}

	return query
}

// searchBody converts a search query to the POST body the search endpoints
// expect.
func searchBody(query *copper.SearchQuery) map[string]interface{} {
	body := make(map[string]interface{})

	if query == nil {
		return body
	}

	if query.Query != "" {
		body["name"] = query.Query
	}

	for field, value := range query.Fields {
		body[field] = value
	}

	if query.PageSize > 0 {
		body["page_size"] = query.PageSize
	}

	if query.PageNumber > 0 {
		body["page_number"] = query.PageNumber
	}

	return body
}

// listRaw fetches a collection endpoint and splits the response array into
// raw records.
func (c *Client) listRaw(ctx context.Context, path string, query url.Values) ([]json.RawMessage, error) {
	resp, err := c.get(ctx, path, query)
	if err != nil {
		return nil, err
	}

	return splitRecords(path, resp.Body)
}

// searchRaw posts a search request and splits the response array.
func (c *Client) searchRaw(ctx context.Context, path string, body interface{}) ([]json.RawMessage, error) {
	resp, err := c.post(ctx, path, body)
	if err != nil {
		return nil, err
	}

	return splitRecords(path, resp.Body)
}

func splitRecords(path string, body []byte) ([]json.RawMessage, error) {
	var raw []json.RawMessage

	err := json.Unmarshal(body, &raw)
	if err != nil {
		return nil, &copper.MalformedResponseError{Entity: path, Err: fmt.Errorf("expected array response: %w", err)}
	}

	return raw, nil
}
