package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/neighborhood-service/internal/config"
)

func testConfig(baseURL string) *config.LLMConfig {
	return &config.LLMConfig{
		APIKey:         "test_key",
		Model:          "openai/gpt-4o-mini",
		BaseURL:        baseURL,
		RequestTimeout: 5,
	}
}

func TestClient_Complete(t *testing.T) {
	logger, _ := zap.NewDevelopment()

	t.Run("successful request", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/chat/completions", r.URL.Path)
			assert.Equal(t, "Bearer test_key", r.Header.Get("Authorization"))
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var reqBody chatRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&reqBody))
			assert.Equal(t, "openai/gpt-4o-mini", reqBody.Model)
			assert.Equal(t, float64(0), reqBody.Temperature)
			require.Len(t, reqBody.Messages, 1)
			assert.Equal(t, "user", reqBody.Messages[0].Role)
			assert.Equal(t, "rate this area", reqBody.Messages[0].Content)
			require.NotNil(t, reqBody.ResponseFormat)
			assert.Equal(t, "json_object", reqBody.ResponseFormat.Type)

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"choices":[{"message":{"content":"{\"verdict\":\"good\"}"}}]}`))
		}))
		defer server.Close()

		client := NewClient(testConfig(server.URL), logger)

		content, err := client.Complete(context.Background(), "rate this area")
		require.NoError(t, err)
		assert.Equal(t, `{"verdict":"good"}`, content)
	})

	t.Run("api error status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"error":{"message":"rate limited"}}`))
		}))
		defer server.Close()

		client := NewClient(testConfig(server.URL), logger)

		_, err := client.Complete(context.Background(), "rate this area")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "llm API error")
		assert.Contains(t, err.Error(), "429")
	})

	t.Run("error payload with ok status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"error":{"message":"model not found"}}`))
		}))
		defer server.Close()

		client := NewClient(testConfig(server.URL), logger)

		_, err := client.Complete(context.Background(), "rate this area")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "model not found")
	})

	t.Run("empty choices", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"choices":[]}`))
		}))
		defer server.Close()

		client := NewClient(testConfig(server.URL), logger)

		_, err := client.Complete(context.Background(), "rate this area")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "empty choices")
	})

	t.Run("transport error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		client := NewClient(testConfig(server.URL), logger)

		_, err := client.Complete(context.Background(), "rate this area")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to execute request")
	})
}

func TestClient_Name(t *testing.T) {
	client := NewClient(testConfig("http://localhost"), zap.NewNop())
	assert.Equal(t, "openai/gpt-4o-mini", client.Name())
}
