package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/fivetwenty-io/copper-client/internal/auth"
	copperhttp "github.com/fivetwenty-io/copper-client/internal/http"
	"github.com/fivetwenty-io/copper-client/pkg/copper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockLogger for testing.
type MockLogger struct {
	logs []map[string]interface{}
}

func (l *MockLogger) Debug(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "debug", "msg": msg, "fields": fields})
}

func (l *MockLogger) Info(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "info", "msg": msg, "fields": fields})
}

func (l *MockLogger) Warn(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "warn", "msg": msg, "fields": fields})
}

func (l *MockLogger) Error(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "error", "msg": msg, "fields": fields})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Do(t *testing.T) {
	t.Parallel()
	t.Run("successful request", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/api/v1/people/1", request.URL.Path)
			assert.Equal(t, "GET", request.Method)
			assert.Equal(t, "test-key", request.Header.Get("X-PW-AccessToken"))
			assert.Equal(t, "user@example.com", request.Header.Get("X-PW-UserEmail"))
			assert.Equal(t, "developer_api", request.Header.Get("X-PW-Application"))
			assert.Equal(t, "application/json", request.Header.Get("Accept"))

			response := map[string]interface{}{"id": 1, "name": "Ada"}
			_ = json.NewEncoder(writer).Encode(response)
		}))
		defer server.Close()

		creds, err := auth.NewStaticCredentials("test-key", "user@example.com")
		require.NoError(t, err)

		client := copperhttp.NewClient(server.URL, creds)

		req := &copperhttp.Request{
			Method: "GET",
			Path:   "/api/v1/people/1",
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var result map[string]interface{}

		err = json.Unmarshal(resp.Body, &result)
		require.NoError(t, err)
		assert.Equal(t, "Ada", result["name"])
	})

	t.Run("request with query parameters", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/api/v1/people", request.URL.Path)
			assert.Equal(t, "page_number=2", request.URL.RawQuery)
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := copperhttp.NewClient(server.URL, nil)

		req := &copperhttp.Request{
			Method: "GET",
			Path:   "/api/v1/people",
			Query:  url.Values{"page_number": []string{"2"}},
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("request with body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "POST", request.Method)
			assert.Equal(t, "application/json", request.Header.Get("Content-Type"))

			var body map[string]string

			_ = json.NewDecoder(request.Body).Decode(&body)
			assert.Equal(t, "Ada Lovelace", body["name"])

			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := copperhttp.NewClient(server.URL, nil)

		req := &copperhttp.Request{
			Method: "POST",
			Path:   "/api/v1/people",
			Body:   map[string]string{"name": "Ada Lovelace"},
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("error response", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(writer).Encode(map[string]string{"message": "Resource not found"})
		}))
		defer server.Close()

		client := copperhttp.NewClient(server.URL, nil)

		req := &copperhttp.Request{
			Method: "GET",
			Path:   "/api/v1/people/99999",
		}

		resp, err := client.Do(context.Background(), req)
		require.Error(t, err)
		assert.Equal(t, 404, resp.StatusCode)

		apiErr := &copper.APIError{}
		ok := errors.As(err, &apiErr)
		require.True(t, ok)
		assert.Equal(t, 404, apiErr.StatusCode)
		assert.Equal(t, "Resource not found", apiErr.Message)
		assert.True(t, copper.IsNotFound(err))
	})

	t.Run("custom headers", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "custom-value", request.Header.Get("X-Custom-Header"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := copperhttp.NewClient(server.URL, nil)

		req := &copperhttp.Request{
			Method: "GET",
			Path:   "/api/v1/people",
			Headers: map[string]string{
				"X-Custom-Header": "custom-value",
			},
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("with debug logging", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusOK)
			_ = json.NewEncoder(writer).Encode(map[string]string{"result": "ok"})
		}))
		defer server.Close()

		logger := &MockLogger{}
		client := copperhttp.NewClient(server.URL, nil, copperhttp.WithLogger(logger), copperhttp.WithDebug(true))

		req := &copperhttp.Request{
			Method: "GET",
			Path:   "/api/v1/people",
		}

		_, err := client.Do(context.Background(), req)
		require.NoError(t, err)

		// Should have logged request and response
		assert.Len(t, logger.logs, 2)
		assert.Equal(t, "HTTP Request", logger.logs[0]["msg"])
		assert.Equal(t, "HTTP Response", logger.logs[1]["msg"])
	})
}

func TestClient_Methods(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		method string
		fn     func(*copperhttp.Client, context.Context) (*copperhttp.Response, error)
	}{
		{
			name:   "GET",
			method: "GET",
			fn: func(c *copperhttp.Client, ctx context.Context) (*copperhttp.Response, error) {
				return c.Get(ctx, "/test", nil)
			},
		},
		{
			name:   "POST",
			method: "POST",
			fn: func(c *copperhttp.Client, ctx context.Context) (*copperhttp.Response, error) {
				return c.Post(ctx, "/test", map[string]string{"key": "value"})
			},
		},
		{
			name:   "PUT",
			method: "PUT",
			fn: func(c *copperhttp.Client, ctx context.Context) (*copperhttp.Response, error) {
				return c.Put(ctx, "/test", map[string]string{"key": "value"})
			},
		},
		{
			name:   "PATCH",
			method: "PATCH",
			fn: func(c *copperhttp.Client, ctx context.Context) (*copperhttp.Response, error) {
				return c.Patch(ctx, "/test", map[string]string{"key": "value"})
			},
		},
		{
			name:   "DELETE",
			method: "DELETE",
			fn: func(c *copperhttp.Client, ctx context.Context) (*copperhttp.Response, error) {
				return c.Delete(ctx, "/test")
			},
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.method, request.Method)
				assert.Equal(t, "/test", request.URL.Path)
				writer.WriteHeader(http.StatusOK)
			}))
			defer server.Close()

			client := copperhttp.NewClient(server.URL, nil)
			resp, err := testCase.fn(client, context.Background())
			require.NoError(t, err)
			assert.Equal(t, 200, resp.StatusCode)
		})
	}
}

func TestClient_RetryLogic(t *testing.T) {
	t.Parallel()
	t.Run("retries on 5xx errors", func(t *testing.T) {
		t.Parallel()

		attempts := 0

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts++
			if attempts < 3 {
				writer.WriteHeader(http.StatusInternalServerError)
			} else {
				writer.WriteHeader(http.StatusOK)
			}
		}))
		defer server.Close()

		client := copperhttp.NewClient(server.URL, nil, copperhttp.WithRetryConfig(3, 10*time.Millisecond, 100*time.Millisecond))

		resp, err := client.Get(context.Background(), "/test", nil)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, 3, attempts)
	})

	t.Run("retries on rate limiting", func(t *testing.T) {
		t.Parallel()

		attempts := 0

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts++
			if attempts == 1 {
				writer.WriteHeader(http.StatusTooManyRequests)
			} else {
				writer.WriteHeader(http.StatusOK)
			}
		}))
		defer server.Close()

		client := copperhttp.NewClient(server.URL, nil, copperhttp.WithRetryConfig(2, 10*time.Millisecond, 100*time.Millisecond))

		resp, err := client.Get(context.Background(), "/test", nil)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, 2, attempts)
	})
}

func TestClient_GetCaching(t *testing.T) {
	t.Parallel()

	hits := 0

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		hits++
		_ = json.NewEncoder(writer).Encode(map[string]string{"name": "Ada"})
	}))
	defer server.Close()

	cache := copper.NewMemoryCache(10)
	client := copperhttp.NewClient(server.URL, nil, copperhttp.WithCache(cache, time.Minute))

	resp1, err := client.Get(context.Background(), "/api/v1/people/1", nil)
	require.NoError(t, err)

	resp2, err := client.Get(context.Background(), "/api/v1/people/1", nil)
	require.NoError(t, err)

	assert.Equal(t, resp1.Body, resp2.Body)
	assert.Equal(t, 1, hits)
}

func TestClient_Interceptors(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "injected", request.Header.Get("X-Injected"))
		writer.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	chain := copper.NewInterceptorChain()
	chain.AddRequestInterceptor(copper.HeaderInterceptor(map[string]string{"X-Injected": "injected"}))

	var observed []int

	chain.AddResponseInterceptor(func(ctx context.Context, req *copper.Request, resp *copper.Response) error {
		observed = append(observed, resp.StatusCode)

		return nil
	})

	client := copperhttp.NewClient(server.URL, nil, copperhttp.WithInterceptors(chain))

	resp, err := client.Get(context.Background(), "/test", nil)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, []int{200}, observed)
}
