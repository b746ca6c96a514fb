package client

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/fivetwenty-io/copper-client/pkg/copper"
)

// errMissingCreateID marks a create response that carried no record ID.
var errMissingCreateID = errors.New("create response missing id")

// BatchClient implements copper.BatchClient. Records are processed strictly
// in input order, one request at a time. A record is attempted at most once;
// the executor never retries or rolls back.
type BatchClient struct {
	client *Client
}

// Create creates each record in order. Records that fail validation are
// reported without a request being sent.
func (c *BatchClient) Create(ctx context.Context, entityType copper.EntityType, records []interface{}, opts *copper.BatchOptions) (*copper.BatchOutcome, error) {
	if opts == nil {
		opts = copper.DefaultBatchOptions()
	}

	run := newBatchRun(len(records), opts)

	for _, record := range records {
		err := ctx.Err()
		if err != nil {
			return run.outcome(), err
		}

		body, err := copper.ToWire(entityType, record)
		if err != nil {
			if run.fail(err, nil, record) {
				break
			}

			continue
		}

		resp, err := c.client.post(ctx, entityType.Path(), rawBody(body))
		if err != nil {
			if run.fail(err, nil, record) {
				break
			}

			continue
		}

		id := extractID(resp.Body)
		if id == nil {
			err = &copper.MalformedResponseError{Entity: string(entityType), Err: errMissingCreateID}
			if run.fail(err, nil, record) {
				break
			}

			continue
		}

		run.succeed(id)
	}

	return run.outcome(), nil
}

// Update applies each update in order. The ID on the update is
// authoritative; an id inside the record data is ignored.
func (c *BatchClient) Update(ctx context.Context, entityType copper.EntityType, updates []copper.BatchUpdate, opts *copper.BatchOptions) (*copper.BatchOutcome, error) {
	if opts == nil {
		opts = copper.DefaultBatchOptions()
	}

	run := newBatchRun(len(updates), opts)

	for _, update := range updates {
		err := ctx.Err()
		if err != nil {
			return run.outcome(), err
		}

		body, err := copper.ToWire(entityType, update.Record)
		if err != nil {
			failedID := update.ID
			if run.fail(err, &failedID, update) {
				break
			}

			continue
		}

		_, err = c.client.put(ctx, entityPath(entityType, update.ID), rawBody(body))
		if err != nil {
			failedID := update.ID
			if run.fail(err, &failedID, update) {
				break
			}

			continue
		}

		id := update.ID
		run.succeed(&id)
	}

	return run.outcome(), nil
}

// Delete removes each record in order. IDs go straight to the API without
// any marshaling step.
func (c *BatchClient) Delete(ctx context.Context, entityType copper.EntityType, ids []int64, opts *copper.BatchOptions) (*copper.BatchOutcome, error) {
	if opts == nil {
		opts = copper.DefaultBatchOptions()
	}

	run := newBatchRun(len(ids), opts)

	for _, id := range ids {
		err := ctx.Err()
		if err != nil {
			return run.outcome(), err
		}

		_, err = c.client.delete(ctx, entityPath(entityType, id))
		if err != nil {
			failedID := id
			if run.fail(err, &failedID, nil) {
				break
			}

			continue
		}

		deleted := id
		run.succeed(&deleted)
	}

	return run.outcome(), nil
}

// batchRun accumulates results for one batch operation.
type batchRun struct {
	opts      *copper.BatchOptions
	results   []copper.BatchResult
	total     int
	succeeded int
	failed    int
}

func newBatchRun(total int, opts *copper.BatchOptions) *batchRun {
	return &batchRun{
		opts:    opts,
		results: make([]copper.BatchResult, 0, total),
		total:   total,
	}
}

func (r *batchRun) succeed(id *int64) {
	r.succeeded++
	r.results = append(r.results, copper.BatchResult{Success: true, ID: id})
}

// fail records a failure and reports whether the run should stop. Update
// and delete failures keep the record ID so callers can tell which record
// was rejected.
func (r *batchRun) fail(err error, id *int64, details interface{}) bool {
	r.failed++

	if r.opts.ReturnErrors {
		r.results = append(r.results, copper.BatchResult{
			Success: false,
			ID:      id,
			Error: &copper.BatchError{
				Message: err.Error(),
				Details: details,
			},
		})
	}

	return !r.opts.ContinueOnError
}

func (r *batchRun) outcome() *copper.BatchOutcome {
	return &copper.BatchOutcome{
		Results: r.results,
		Summary: copper.BatchSummary{
			Total:     r.total,
			Succeeded: r.succeeded,
			Failed:    r.failed,
		},
	}
}

// extractID pulls the record ID out of a create response.
func extractID(body []byte) *int64 {
	var record struct {
		ID *int64 `json:"id"`
	}

	err := json.Unmarshal(body, &record)
	if err != nil {
		return nil
	}

	return record.ID
}
