package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const completionResponse = `{
	"id": "chatcmpl-123",
	"object": "chat.completion",
	"created": 1700000000,
	"model": "gpt-4o-mini",
	"choices": [
		{
			"index": 0,
			"message": {"role": "assistant", "content": %q},
			"finish_reason": "stop"
		}
	]
}`

func newCompletionServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *atomic.Int32) {
	t.Helper()

	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		handler(w, r)
	}))
	t.Cleanup(server.Close)

	return server, &calls
}

func TestClient_GetCompletion(t *testing.T) {
	t.Parallel()

	t.Run("returns the model reply", func(t *testing.T) {
		t.Parallel()

		server, calls := newCompletionServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/chat/completions", r.URL.Path)
			assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

			var body struct {
				Model    string `json:"model"`
				Messages []struct {
					Role    string `json:"role"`
					Content string `json:"content"`
				} `json:"messages"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "gpt-4o-mini", body.Model)
			require.Len(t, body.Messages, 1)
			assert.Equal(t, "user", body.Messages[0].Role)
			assert.Equal(t, "What time is it?", body.Messages[0].Content)

			w.Header().Set("Content-Type", "application/json")
			_, _ = fmt.Fprintf(w, completionResponse, "It is noon.")
		})

		client := NewClient("sk-test", server.URL+"/", server.Client())

		reply := client.GetCompletion(context.Background(), "What time is it?")
		assert.Equal(t, "It is noon.", reply)
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("falls back when the key is missing", func(t *testing.T) {
		t.Parallel()

		client := NewClient("", "", nil)

		assert.False(t, client.Available())
		assert.Equal(t, FallbackUnavailable, client.GetCompletion(context.Background(), "hello"))
	})

	t.Run("falls back on provider errors without retrying", func(t *testing.T) {
		t.Parallel()

		statuses := []int{
			http.StatusUnauthorized,
			http.StatusTooManyRequests,
			http.StatusInternalServerError,
		}

		for _, status := range statuses {
			t.Run(http.StatusText(status), func(t *testing.T) {
				t.Parallel()

				server, calls := newCompletionServer(t, func(w http.ResponseWriter, r *http.Request) {
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(status)
					_, _ = fmt.Fprint(w, `{"error":{"message":"nope","type":"server_error"}}`)
				})

				client := NewClient("sk-test", server.URL+"/", server.Client())

				assert.Equal(t, FallbackRequestFailed, client.GetCompletion(context.Background(), "hello"))
				assert.Equal(t, int32(1), calls.Load())
			})
		}
	})

	t.Run("falls back on an empty choice list", func(t *testing.T) {
		t.Parallel()

		server, _ := newCompletionServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = fmt.Fprint(w, `{"id":"chatcmpl-123","object":"chat.completion","created":1700000000,"model":"gpt-4o-mini","choices":[]}`)
		})

		client := NewClient("sk-test", server.URL+"/", server.Client())

		assert.Equal(t, FallbackRequestFailed, client.GetCompletion(context.Background(), "hello"))
	})

	t.Run("falls back on blank content", func(t *testing.T) {
		t.Parallel()

		server, _ := newCompletionServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = fmt.Fprintf(w, completionResponse, "  ")
		})

		client := NewClient("sk-test", server.URL+"/", server.Client())

		assert.Equal(t, FallbackRequestFailed, client.GetCompletion(context.Background(), "hello"))
	})

	t.Run("falls back when the provider is unreachable", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		client := NewClient("sk-test", server.URL+"/", nil)

		assert.Equal(t, FallbackRequestFailed, client.GetCompletion(context.Background(), "hello"))
	})
}
