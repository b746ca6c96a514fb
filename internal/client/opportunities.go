package client

import (
	"context"

	"github.com/fivetwenty-io/copper-client/pkg/copper"
)

// OpportunitiesClient implements copper.OpportunitiesClient.
type OpportunitiesClient struct {
	client *Client
}

// List returns a page of opportunities.
func (c *OpportunitiesClient) List(ctx context.Context, opts *copper.ListOptions) ([]*copper.Opportunity, error) {
	raw, err := c.client.listRaw(ctx, copper.EntityOpportunities.Path(), listQuery(opts))
	if err != nil {
		return nil, err
	}

	opportunities := make([]*copper.Opportunity, 0, len(raw))

	for _, payload := range raw {
		opportunity, err := copper.OpportunityFromWire(payload)
		if err != nil {
			return nil, err
		}

		opportunities = append(opportunities, opportunity)
	}

	return opportunities, nil
}

// Get returns the opportunity with the given ID.
func (c *OpportunitiesClient) Get(ctx context.Context, id int64) (*copper.Opportunity, error) {
	resp, err := c.client.get(ctx, entityPath(copper.EntityOpportunities, id), nil)
	if err != nil {
		return nil, err
	}

	return copper.OpportunityFromWire(resp.Body)
}

// Create creates an opportunity and returns the stored record.
func (c *OpportunitiesClient) Create(ctx context.Context, opportunity *copper.Opportunity) (*copper.Opportunity, error) {
	body, err := opportunity.ToWire()
	if err != nil {
		return nil, err
	}

	resp, err := c.client.post(ctx, copper.EntityOpportunities.Path(), rawBody(body))
	if err != nil {
		return nil, err
	}

	return copper.OpportunityFromWire(resp.Body)
}

// Update applies changes to the opportunity with the given ID.
func (c *OpportunitiesClient) Update(ctx context.Context, id int64, opportunity *copper.Opportunity) (*copper.Opportunity, error) {
	body, err := opportunity.ToWire()
	if err != nil {
		return nil, err
	}

	resp, err := c.client.put(ctx, entityPath(copper.EntityOpportunities, id), rawBody(body))
	if err != nil {
		return nil, err
	}

	return copper.OpportunityFromWire(resp.Body)
}

// Delete removes the opportunity with the given ID.
func (c *OpportunitiesClient) Delete(ctx context.Context, id int64) error {
	_, err := c.client.delete(ctx, entityPath(copper.EntityOpportunities, id))

	return err
}

// Search finds opportunities matching the query.
func (c *OpportunitiesClient) Search(ctx context.Context, query *copper.SearchQuery) ([]*copper.Opportunity, error) {
	raw, err := c.client.searchRaw(ctx, copper.EntityOpportunities.Path()+"/search", searchBody(query))
	if err != nil {
		return nil, err
	}

	opportunities := make([]*copper.Opportunity, 0, len(raw))

	for _, payload := range raw {
		opportunity, err := copper.OpportunityFromWire(payload)
		if err != nil {
			return nil, err
		}

		opportunities = append(opportunities, opportunity)
	}

	return opportunities, nil
}
