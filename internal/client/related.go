package client

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"

	"github.com/fivetwenty-io/copper-client/pkg/copper"
)

// RelatedClient implements copper.RelatedClient.
type RelatedClient struct {
	client *Client
}

// List fetches records of relatedType linked to the given record.
//
// The API shape differs by related type: "activities" responses carry their
// entries under an "activities" key and the entries are left undecoded;
// every other type comes back under "data" and each entry is decoded and
// validated as its entity type. Metadata passes through untouched.
func (c *RelatedClient) List(ctx context.Context, entityType copper.EntityType, id int64, relatedType copper.RelatedType, opts *copper.PageOptions) (*copper.RelatedList, error) {
	if relatedType == copper.RelatedActivities {
		resp, err := c.client.get(ctx, entityPath(entityType, id)+"/activities", pageQuery(opts))
		if err != nil {
			return nil, err
		}

		var envelope struct {
			Data     []json.RawMessage `json:"data"`
			Metadata json.RawMessage   `json:"metadata"`
		}

		err = json.Unmarshal(resp.Body, &envelope)
		if err != nil {
			return nil, &copper.MalformedResponseError{Entity: string(relatedType), Err: err}
		}

		return &copper.RelatedList{
			Activities: envelope.Data,
			Metadata:   envelope.Metadata,
		}, nil
	}

	path := entityPath(entityType, id) + "/related/" + string(relatedType)

	resp, err := c.client.get(ctx, path, pageQuery(opts))
	if err != nil {
		return nil, err
	}

	var envelope struct {
		Data     []json.RawMessage `json:"data"`
		Metadata json.RawMessage   `json:"metadata"`
	}

	err = json.Unmarshal(resp.Body, &envelope)
	if err != nil {
		return nil, &copper.MalformedResponseError{Entity: string(relatedType), Err: err}
	}

	records, err := copper.DecodeRecords(copper.EntityType(relatedType), envelope.Data)
	if err != nil {
		return nil, err
	}

	return &copper.RelatedList{
		Data:     records,
		Metadata: envelope.Metadata,
	}, nil
}

func pageQuery(opts *copper.PageOptions) url.Values {
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

	if len(query) == 0 {
		return nil
	}

	return query
}
