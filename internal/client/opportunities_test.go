package client_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/fivetwenty-io/copper-client/pkg/copper"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpportunitiesGet(t *testing.T) {
	t.Parallel()

	apiClient, _ := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/v1/opportunities/7", request.URL.Path)

		_ = json.NewEncoder(writer).Encode(map[string]interface{}{
			"id":             7,
			"name":           "Q3 renewal",
			"status":         "Open",
			"monetary_value": "12500.50",
			"win_probability": 60,
		})
	}))

	opportunity, err := apiClient.Opportunities().Get(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, "Q3 renewal", opportunity.Name)
	require.NotNil(t, opportunity.MonetaryValue)
	assert.True(t, opportunity.MonetaryValue.Equal(decimal.RequireFromString("12500.50")))
	require.NotNil(t, opportunity.WinProbability)
	assert.Equal(t, int64(60), *opportunity.WinProbability)
}

func TestOpportunitiesCreate(t *testing.T) {
	t.Parallel()

	apiClient, _ := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "POST", request.Method)
		assert.Equal(t, "/api/v1/opportunities", request.URL.Path)

		body, err := io.ReadAll(request.Body)
		require.NoError(t, err)

		var sent map[string]interface{}
		require.NoError(t, json.Unmarshal(body, &sent))
		assert.Equal(t, "Expansion deal", sent["name"])
		assert.Equal(t, "High", sent["priority"])
		assert.NotContains(t, sent, "status")

		_ = json.NewEncoder(writer).Encode(map[string]interface{}{"id": 8, "name": "Expansion deal"})
	}))

	created, err := apiClient.Opportunities().Create(context.Background(), &copper.Opportunity{
		Name:     "Expansion deal",
		Priority: copper.String(copper.PriorityHigh),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(8), *created.ID)
}

func TestOpportunitiesCreate_TooManyDecimalPlaces(t *testing.T) {
	t.Parallel()

	requests := 0
	apiClient, _ := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		requests++
	}))

	value := decimal.RequireFromString("10.123")

	_, err := apiClient.Opportunities().Create(context.Background(), &copper.Opportunity{
		Name:          "Bad value",
		MonetaryValue: &value,
	})
	require.Error(t, err)
	assert.True(t, copper.IsValidation(err))
	assert.ErrorIs(t, err, copper.ErrDecimalPrecision)
	assert.Equal(t, 0, requests)
}

func TestOpportunitiesUpdate(t *testing.T) {
	t.Parallel()

	apiClient, _ := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "PUT", request.Method)
		assert.Equal(t, "/api/v1/opportunities/7", request.URL.Path)

		_ = json.NewEncoder(writer).Encode(map[string]interface{}{"id": 7, "name": "Q3 renewal", "status": "Won"})
	}))

	updated, err := apiClient.Opportunities().Update(context.Background(), 7, &copper.Opportunity{
		Name:   "Q3 renewal",
		Status: copper.String(copper.OpportunityStatusWon),
	})
	require.NoError(t, err)
	assert.Equal(t, "Won", *updated.Status)
}

func TestOpportunitiesSearch(t *testing.T) {
	t.Parallel()

	apiClient, _ := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "POST", request.Method)
		assert.Equal(t, "/api/v1/opportunities/search", request.URL.Path)

		body, err := io.ReadAll(request.Body)
		require.NoError(t, err)

		var sent map[string]interface{}
		require.NoError(t, json.Unmarshal(body, &sent))
		assert.Equal(t, "renewal", sent["name"])

		_ = json.NewEncoder(writer).Encode([]map[string]interface{}{
			{"id": 7, "name": "Q3 renewal", "monetary_value": 9900},
		})
	}))

	results, err := apiClient.Opportunities().Search(context.Background(), &copper.SearchQuery{Query: "renewal"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.True(t, results[0].MonetaryValue.Equal(decimal.NewFromInt(9900)))
}
