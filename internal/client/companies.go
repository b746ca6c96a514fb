package client

import (
	"context"

	"github.com/fivetwenty-io/copper-client/pkg/copper"
)

// CompaniesClient implements copper.CompaniesClient.
type CompaniesClient struct {
	client *Client
}

// List returns a page of companies.
func (c *CompaniesClient) List(ctx context.Context, opts *copper.ListOptions) ([]*copper.Company, error) {
	raw, err := c.client.listRaw(ctx, copper.EntityCompanies.Path(), listQuery(opts))
	if err != nil {
		return nil, err
	}

	companies := make([]*copper.Company, 0, len(raw))

	for _, payload := range raw {
		company, err := copper.CompanyFromWire(payload)
		if err != nil {
			return nil, err
		}

		companies = append(companies, company)
	}

	return companies, nil
}

// Get returns the company with the given ID.
func (c *CompaniesClient) Get(ctx context.Context, id int64) (*copper.Company, error) {
	resp, err := c.client.get(ctx, entityPath(copper.EntityCompanies, id), nil)
	if err != nil {
		return nil, err
	}

	return copper.CompanyFromWire(resp.Body)
}

// Create creates a company and returns the stored record.
func (c *CompaniesClient) Create(ctx context.Context, company *copper.Company) (*copper.Company, error) {
	body, err := company.ToWire()
	if err != nil {
		return nil, err
	}

	resp, err := c.client.post(ctx, copper.EntityCompanies.Path(), rawBody(body))
	if err != nil {
		return nil, err
	}

	return copper.CompanyFromWire(resp.Body)
}

// Update applies changes to the company with the given ID.
func (c *CompaniesClient) Update(ctx context.Context, id int64, company *copper.Company) (*copper.Company, error) {
	body, err := company.ToWire()
	if err != nil {
		return nil, err
	}

	resp, err := c.client.put(ctx, entityPath(copper.EntityCompanies, id), rawBody(body))
	if err != nil {
		return nil, err
	}

	return copper.CompanyFromWire(resp.Body)
}

// Delete removes the company with the given ID.
func (c *CompaniesClient) Delete(ctx context.Context, id int64) error {
	_, err := c.client.delete(ctx, entityPath(copper.EntityCompanies, id))

	return err
}

// Search finds companies matching the query.
func (c *CompaniesClient) Search(ctx context.Context, query *copper.SearchQuery) ([]*copper.Company, error) {
	raw, err := c.client.searchRaw(ctx, copper.EntityCompanies.Path()+"/search", searchBody(query))
	if err != nil {
		return nil, err
	}

	companies := make([]*copper.Company, 0, len(raw))

	for _, payload := range raw {
		company, err := copper.CompanyFromWire(payload)
		if err != nil {
			return nil, err
		}

		companies = append(companies, company)
	}

	return companies, nil
}
