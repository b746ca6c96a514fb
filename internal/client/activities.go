package client

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"

	"github.com/fivetwenty-io/copper-client/pkg/copper"
)

// ActivitiesClient implements copper.ActivitiesClient.
type ActivitiesClient struct {
	client *Client
}

// ListForRecord fetches the activity history of a single record. Activity
// payloads vary by activity type so entries stay raw.
func (c *ActivitiesClient) ListForRecord(ctx context.Context, entityType copper.EntityType, id int64, filter *copper.ActivityFilter) (*copper.ActivityList, error) {
	path := entityPath(entityType, id) + "/activities"

	resp, err := c.client.get(ctx, path, activityQuery(filter))
	if err != nil {
		return nil, err
	}

	var envelope struct {
		Data     []json.RawMessage `json:"data"`
		Metadata json.RawMessage   `json:"metadata"`
	}

	err = json.Unmarshal(resp.Body, &envelope)
	if err != nil {
		return nil, &copper.MalformedResponseError{Entity: "activities", Err: err}
	}

	return &copper.ActivityList{
		Activities: envelope.Data,
		Metadata:   envelope.Metadata,
	}, nil
}

// activityQuery translates a filter into query parameters, omitting absent
// fields.
func activityQuery(filter *copper.ActivityFilter) url.Values {
	if filter == nil {
		return nil
	}

	query := url.Values{}

	for _, activityType := range filter.Types {
		query.Add("activity_types", activityType)
	}

	if filter.DateFrom != "" {
		query.Set("date_from", filter.DateFrom)
	}

	if filter.DateTo != "" {
		query.Set("date_to", filter.DateTo)
	}

	if filter.PageSize > 0 {
		query.Set("page_size", strconv.Itoa(filter.PageSize))
	}

	if filter.PageNumber > 0 {
		query.Set("page_number", strconv.Itoa(filter.PageNumber))
	}

	if len(query) == 0 {
		return nil
	}

	return query
}
