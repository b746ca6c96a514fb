package client

import (
	"context"

	"github.com/fivetwenty-io/copper-client/pkg/copper"
)

// TasksClient implements copper.TasksClient.
type TasksClient struct {
	client *Client
}

// List returns a page of tasks.
func (c *TasksClient) List(ctx context.Context, opts *copper.ListOptions) ([]*copper.Task, error) {
	raw, err := c.client.listRaw(ctx, copper.EntityTasks.Path(), listQuery(opts))
	if err != nil {
		return nil, err
	}

	tasks := make([]*copper.Task, 0, len(raw))

	for _, payload := range raw {
		task, err := copper.TaskFromWire(payload)
		if err != nil {
			return nil, err
		}

		tasks = append(tasks, task)
	}

	return tasks, nil
}

// Get returns the task with the given ID.
func (c *TasksClient) Get(ctx context.Context, id int64) (*copper.Task, error) {
	resp, err := c.client.get(ctx, entityPath(copper.EntityTasks, id), nil)
	if err != nil {
		return nil, err
	}

	return copper.TaskFromWire(resp.Body)
}

// Create creates a task and returns the stored record.
func (c *TasksClient) Create(ctx context.Context, task *copper.Task) (*copper.Task, error) {
	body, err := task.ToWire()
	if err != nil {
		return nil, err
	}

	resp, err := c.client.post(ctx, copper.EntityTasks.Path(), rawBody(body))
	if err != nil {
		return nil, err
	}

	return copper.TaskFromWire(resp.Body)
}

// Update applies changes to the task with the given ID.
func (c *TasksClient) Update(ctx context.Context, id int64, task *copper.Task) (*copper.Task, error) {
	body, err := task.ToWire()
	if err != nil {
		return nil, err
	}

	resp, err := c.client.put(ctx, entityPath(copper.EntityTasks, id), rawBody(body))
	if err != nil {
		return nil, err
	}

	return copper.TaskFromWire(resp.Body)
}

// Delete removes the task with the given ID.
func (c *TasksClient) Delete(ctx context.Context, id int64) error {
	_, err := c.client.delete(ctx, entityPath(copper.EntityTasks, id))

	return err
}

// Search finds tasks matching the query.
func (c *TasksClient) Search(ctx context.Context, query *copper.SearchQuery) ([]*copper.Task, error) {
	raw, err := c.client.searchRaw(ctx, copper.EntityTasks.Path()+"/search", searchBody(query))
	if err != nil {
		return nil, err
	}

	tasks := make([]*copper.Task, 0, len(raw))

	for _, payload := range raw {
		task, err := copper.TaskFromWire(payload)
		if err != nil {
			return nil, err
		}

		tasks = append(tasks, task)
	}

	return tasks, nil
}
