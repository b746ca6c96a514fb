package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fivetwenty-io/copper-client/internal/client"
	"github.com/fivetwenty-io/copper-client/pkg/copper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) (*client.Client, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	apiClient, err := client.New(&copper.Config{BaseURL: server.URL, RetryMax: -1})
	require.NoError(t, err)

	return apiClient, server
}

func TestBatchCreate_AllSucceed(t *testing.T) {
	t.Parallel()

	var requests []string

	apiClient, _ := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "POST", request.Method)
		assert.Equal(t, "/api/v1/people", request.URL.Path)

		var body map[string]interface{}
		_ = json.NewDecoder(request.Body).Decode(&body)
		requests = append(requests, body["name"].(string))

		_ = json.NewEncoder(writer).Encode(map[string]interface{}{"id": 123, "name": body["name"]})
	}))

	records := []interface{}{
		&copper.Person{Name: "A"},
		&copper.Person{Name: "B"},
	}

	outcome, err := apiClient.Batch().Create(context.Background(), copper.EntityPeople, records, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B"}, requests)
	assert.Equal(t, 2, outcome.Summary.Total)
	assert.Equal(t, 2, outcome.Summary.Succeeded)
	assert.Equal(t, 0, outcome.Summary.Failed)

	require.Len(t, outcome.Results, 2)

	for _, result := range outcome.Results {
		assert.True(t, result.Success)
		require.NotNil(t, result.ID)
		assert.Equal(t, int64(123), *result.ID)
	}
}

func TestBatchCreate_ValidationFailureSendsNoRequest(t *testing.T) {
	t.Parallel()

	calls := 0

	apiClient, _ := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		calls++
		_ = json.NewEncoder(writer).Encode(map[string]interface{}{"id": 1})
	}))

	records := []interface{}{
		&copper.Person{Name: ""}, // fails validation
		&copper.Person{Name: "B"},
	}

	outcome, err := apiClient.Batch().Create(context.Background(), copper.EntityPeople, records, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
	assert.Equal(t, 2, outcome.Summary.Total)
	assert.Equal(t, 1, outcome.Summary.Succeeded)
	assert.Equal(t, 1, outcome.Summary.Failed)

	require.Len(t, outcome.Results, 2)
	assert.False(t, outcome.Results[0].Success)
	require.NotNil(t, outcome.Results[0].Error)
	assert.Contains(t, outcome.Results[0].Error.Message, "name")
	assert.NotNil(t, outcome.Results[0].Error.Details)
	assert.True(t, outcome.Results[1].Success)
}

func TestBatchCreate_WrongRecordType(t *testing.T) {
	t.Parallel()

	apiClient, _ := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		t.Error("no request should be sent")
	}))

	records := []interface{}{
		&copper.Company{Name: "Not a person"},
	}

	outcome, err := apiClient.Batch().Create(context.Background(), copper.EntityPeople, records, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, outcome.Summary.Failed)
	require.Len(t, outcome.Results, 1)
	assert.Contains(t, outcome.Results[0].Error.Message, "*copper.Company")
}

func TestBatchCreate_MissingIDIsFailure(t *testing.T) {
	t.Parallel()

	apiClient, _ := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		// 200 response without an id field
		_ = json.NewEncoder(writer).Encode(map[string]interface{}{"name": "Ada"})
	}))

	records := []interface{}{&copper.Person{Name: "Ada"}}

	outcome, err := apiClient.Batch().Create(context.Background(), copper.EntityPeople, records, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, outcome.Summary.Total)
	assert.Equal(t, 0, outcome.Summary.Succeeded)
	assert.Equal(t, 1, outcome.Summary.Failed)

	require.Len(t, outcome.Results, 1)
	assert.False(t, outcome.Results[0].Success)
	require.NotNil(t, outcome.Results[0].Error)
	assert.Contains(t, outcome.Results[0].Error.Message, "missing id")
}

func TestBatchCreate_StopOnFirstError(t *testing.T) {
	t.Parallel()

	calls := 0

	apiClient, _ := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		calls++

		if calls == 1 {
			writer.WriteHeader(http.StatusUnprocessableEntity)
			_ = json.NewEncoder(writer).Encode(map[string]string{"message": "rejected"})

			return
		}

		_ = json.NewEncoder(writer).Encode(map[string]interface{}{"id": 1})
	}))

	records := []interface{}{
		&copper.Person{Name: "A"},
		&copper.Person{Name: "B"},
		&copper.Person{Name: "C"},
	}

	opts := &copper.BatchOptions{ContinueOnError: false, ReturnErrors: true}

	outcome, err := apiClient.Batch().Create(context.Background(), copper.EntityPeople, records, opts)
	require.NoError(t, err)

	// B and C never attempted
	assert.Equal(t, 1, calls)
	assert.Equal(t, 3, outcome.Summary.Total)
	assert.Equal(t, 0, outcome.Summary.Succeeded)
	assert.Equal(t, 1, outcome.Summary.Failed)
	require.Len(t, outcome.Results, 1)
	assert.Contains(t, outcome.Results[0].Error.Message, "rejected")
}

func TestBatchCreate_SuppressedErrors(t *testing.T) {
	t.Parallel()

	apiClient, _ := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusInternalServerError)
	}))

	records := []interface{}{&copper.Person{Name: "A"}}
	opts := &copper.BatchOptions{ContinueOnError: true, ReturnErrors: false}

	outcome, err := apiClient.Batch().Create(context.Background(), copper.EntityPeople, records, opts)
	require.NoError(t, err)

	assert.Empty(t, outcome.Results)
	assert.Equal(t, 1, outcome.Summary.Total)
	assert.Equal(t, 1, outcome.Summary.Failed)
}

func TestBatchUpdate_OuterIDAuthoritative(t *testing.T) {
	t.Parallel()

	var paths []string

	apiClient, _ := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "PUT", request.Method)
		paths = append(paths, request.URL.Path)
		_ = json.NewEncoder(writer).Encode(map[string]interface{}{"id": 1})
	}))

	inner := int64(999)
	updates := []copper.BatchUpdate{
		{ID: 7, Record: &copper.Person{ID: &inner, Name: "Renamed"}},
	}

	outcome, err := apiClient.Batch().Update(context.Background(), copper.EntityPeople, updates, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"/api/v1/people/7"}, paths)
	require.Len(t, outcome.Results, 1)
	assert.True(t, outcome.Results[0].Success)
	require.NotNil(t, outcome.Results[0].ID)
	assert.Equal(t, int64(7), *outcome.Results[0].ID)
}

func TestBatchDelete_ContinuesPastFailures(t *testing.T) {
	t.Parallel()

	var paths []string

	apiClient, _ := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "DELETE", request.Method)
		paths = append(paths, request.URL.Path)

		if strings.HasSuffix(request.URL.Path, "/2") {
			writer.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(writer).Encode(map[string]string{"message": "not found"})

			return
		}

		writer.WriteHeader(http.StatusOK)
	}))

	outcome, err := apiClient.Batch().Delete(context.Background(), copper.EntityTasks, []int64{1, 2, 3}, nil)
	require.NoError(t, err)

	// all three IDs attempted despite the middle failure
	assert.Equal(t, []string{"/api/v1/tasks/1", "/api/v1/tasks/2", "/api/v1/tasks/3"}, paths)
	assert.Equal(t, 3, outcome.Summary.Total)
	assert.Equal(t, 2, outcome.Summary.Succeeded)
	assert.Equal(t, 1, outcome.Summary.Failed)

	require.Len(t, outcome.Results, 3)
	assert.True(t, outcome.Results[0].Success)
	assert.False(t, outcome.Results[1].Success)
	assert.True(t, outcome.Results[2].Success)

	// the failed entry keeps its ID
	require.NotNil(t, outcome.Results[1].ID)
	assert.Equal(t, int64(2), *outcome.Results[1].ID)
}

func TestBatchCreate_CancelledContext(t *testing.T) {
	t.Parallel()

	apiClient, _ := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		t.Error("no request should be sent")
	}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	records := []interface{}{&copper.Person{Name: "A"}}

	_, err := apiClient.Batch().Create(ctx, copper.EntityPeople, records, nil)
	require.ErrorIs(t, err, context.Canceled)
}
