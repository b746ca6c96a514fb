package client

import (
	"context"

	"github.com/fivetwenty-io/copper-client/pkg/copper"
)

// PeopleClient implements copper.PeopleClient.
type PeopleClient struct {
	client *Client
}

// List returns a page of people.
func (c *PeopleClient) List(ctx context.Context, opts *copper.ListOptions) ([]*copper.Person, error) {
	raw, err := c.client.listRaw(ctx, copper.EntityPeople.Path(), listQuery(opts))
	if err != nil {
		return nil, err
	}

	people := make([]*copper.Person, 0, len(raw))

	for _, payload := range raw {
		person, err := copper.PersonFromWire(payload)
		if err != nil {
			return nil, err
		}

		people = append(people, person)
	}

	return people, nil
}

// Get returns the person with the given ID.
func (c *PeopleClient) Get(ctx context.Context, id int64) (*copper.Person, error) {
	resp, err := c.client.get(ctx, entityPath(copper.EntityPeople, id), nil)
	if err != nil {
		return nil, err
	}

	return copper.PersonFromWire(resp.Body)
}

// Create creates a person and returns the stored record.
func (c *PeopleClient) Create(ctx context.Context, person *copper.Person) (*copper.Person, error) {
	body, err := person.ToWire()
	if err != nil {
		return nil, err
	}

	resp, err := c.client.post(ctx, copper.EntityPeople.Path(), rawBody(body))
	if err != nil {
		return nil, err
	}

	return copper.PersonFromWire(resp.Body)
}

// Update applies changes to the person with the given ID.
func (c *PeopleClient) Update(ctx context.Context, id int64, person *copper.Person) (*copper.Person, error) {
	body, err := person.ToWire()
	if err != nil {
		return nil, err
	}

	resp, err := c.client.put(ctx, entityPath(copper.EntityPeople, id), rawBody(body))
	if err != nil {
		return nil, err
	}

	return copper.PersonFromWire(resp.Body)
}

// Delete removes the person with the given ID.
func (c *PeopleClient) Delete(ctx context.Context, id int64) error {
	_, err := c.client.delete(ctx, entityPath(copper.EntityPeople, id))

	return err
}

// Search finds people matching the query.
func (c *PeopleClient) Search(ctx context.Context, query *copper.SearchQuery) ([]*copper.Person, error) {
	raw, err := c.client.searchRaw(ctx, copper.EntityPeople.Path()+"/search", searchBody(query))
	if err != nil {
		return nil, err
	}

	people := make([]*copper.Person, 0, len(raw))

	for _, payload := range raw {
		person, err := copper.PersonFromWire(payload)
		if err != nil {
			return nil, err
		}

		people = append(people, person)
	}

	return people, nil
}
