package copper

// BatchOptions controls how the batch executor reacts to per-record failures.
// A nil options value means continue past failures and report them.
type BatchOptions struct {
	// ContinueOnError keeps processing remaining records after a failure.
	// When false the executor stops at the first failure; records after it
	// are never attempted.
	ContinueOnError bool `json:"continue_on_error"`

	// ReturnErrors includes failure entries in the result list. When false
	// only successful results are returned, though the summary still counts
	// every attempted record.
	ReturnErrors bool `json:"return_errors"`
}

// DefaultBatchOptions returns the executor defaults.
func DefaultBatchOptions() *BatchOptions {
	return &BatchOptions{
		ContinueOnError: true,
		ReturnErrors:    true,
	}
}

// BatchUpdate pairs a record ID with the data to apply. The ID here is
// authoritative; any id field inside Record is ignored.
type BatchUpdate struct {
	ID     int64       `json:"id"`
	Record interface{} `json:"record"`
}

// BatchResult is the outcome for a single record in a batch.
type BatchResult struct {
	Success bool        `json:"success"`
	ID      *int64      `json:"id,omitempty"`
	Error   *BatchError `json:"error,omitempty"`
}

// BatchError describes why one record failed. Details carries the offending
// input record so callers can retry or log it.
type BatchError struct {
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// BatchSummary aggregates a batch run. Total always equals the number of
// input records, including records never attempted after an early stop.
type BatchSummary struct {
	Total     int `json:"total"`
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`
}

// BatchOutcome is the full result of a batch operation.
type BatchOutcome struct {
	Results []BatchResult `json:"results"`
	Summary BatchSummary  `json:"summary"`
}
