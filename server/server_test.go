package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/NextMind-AI/whatsapp-webhook/openai"
	"github.com/NextMind-AI/whatsapp-webhook/processor"
	"github.com/NextMind-AI/whatsapp-webhook/whatsapp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// callRecorder collects outbound calls from both fake upstreams in arrival order.
type callRecorder struct {
	mu    sync.Mutex
	calls []string
	sent  []map[string]any
}

func (r *callRecorder) record(name string, body map[string]any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, name)
	if body != nil {
		r.sent = append(r.sent, body)
	}
}

func (r *callRecorder) snapshot() ([]string, []map[string]any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.calls...), append([]map[string]any(nil), r.sent...)
}

func newUpstreams(t *testing.T, completionStatus, graphStatus int) (*callRecorder, *Server) {
	t.Helper()
	recorder := &callRecorder{}

	openAIServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		recorder.record("completion", nil)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(completionStatus)
		if completionStatus != http.StatusOK {
			_, _ = fmt.Fprint(w, `{"error":{"message":"rate limited","type":"requests"}}`)
			return
		}
		_, _ = fmt.Fprint(w, `{"id":"chatcmpl-1","object":"chat.completion","created":1700000000,"model":"gpt-4o-mini","choices":[{"index":0,"message":{"role":"assistant","content":"Yes, blue and green."},"finish_reason":"stop"}]}`)
	}))
	t.Cleanup(openAIServer.Close)

	graphServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		name := "send"
		if body["status"] == "read" {
			name = "read"
		}
		recorder.record(name, body)

		w.WriteHeader(graphStatus)
		if graphStatus != http.StatusOK {
			_, _ = fmt.Fprint(w, `{"error":{"message":"Invalid parameter"}}`)
			return
		}
		if name == "read" {
			_, _ = fmt.Fprint(w, `{"success":true}`)
			return
		}
		_, _ = fmt.Fprint(w, `{"messaging_product":"whatsapp","messages":[{"id":"wamid.reply"}]}`)
	}))
	t.Cleanup(graphServer.Close)

	completion := openai.NewClient("sk-test", openAIServer.URL+"/", openAIServer.Client())
	relay := whatsapp.NewClient("graph-token", graphServer.URL, "v22.0", graphServer.Client())
	mp := processor.NewMessageProcessor(completion, relay, testVerifyToken)

	return recorder, New(mp, "test")
}

func TestServer_EndToEnd(t *testing.T) {
	t.Parallel()

	t.Run("completion, reply and read in order", func(t *testing.T) {
		t.Parallel()
		recorder, s := newUpstreams(t, http.StatusOK, http.StatusOK)

		code, _ := postWebhook(t, s, loadFixture(t))
		require.Equal(t, http.StatusOK, code)

		calls, sent := recorder.snapshot()
		assert.Equal(t, []string{"completion", "send", "read"}, calls)
		require.Len(t, sent, 2)
		assert.Equal(t, map[string]any{"body": "Yes, blue and green."}, sent[0]["text"])
		assert.Equal(t, "16505551234", sent[0]["to"])
		assert.Equal(t, "wamid.HBgLMTY1MDM4Nzk0MzkVAgASGBQzQTRBNjU5OUFFRTAzODEwMTQ0RgA=", sent[1]["message_id"])
	})

	t.Run("redelivery repeats every call", func(t *testing.T) {
		t.Parallel()
		recorder, s := newUpstreams(t, http.StatusOK, http.StatusOK)

		for range 2 {
			code, _ := postWebhook(t, s, loadFixture(t))
			require.Equal(t, http.StatusOK, code)
		}

		calls, _ := recorder.snapshot()
		assert.Equal(t, []string{"completion", "send", "read", "completion", "send", "read"}, calls)
	})

	t.Run("provider failure sends the fallback reply", func(t *testing.T) {
		t.Parallel()
		recorder, s := newUpstreams(t, http.StatusTooManyRequests, http.StatusOK)

		code, _ := postWebhook(t, s, loadFixture(t))
		require.Equal(t, http.StatusOK, code)

		calls, sent := recorder.snapshot()
		assert.Equal(t, []string{"completion", "send", "read"}, calls)
		require.NotEmpty(t, sent)
		assert.Equal(t, map[string]any{"body": openai.FallbackRequestFailed}, sent[0]["text"])
	})

	t.Run("relay failures still acknowledge", func(t *testing.T) {
		t.Parallel()
		recorder, s := newUpstreams(t, http.StatusOK, http.StatusBadRequest)

		code, status := postWebhook(t, s, loadFixture(t))
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, "success", status.Status)

		calls, _ := recorder.snapshot()
		assert.Equal(t, []string{"completion", "send", "read"}, calls)
	})

	t.Run("malformed payload makes no outbound calls", func(t *testing.T) {
		t.Parallel()
		recorder, s := newUpstreams(t, http.StatusOK, http.StatusOK)

		code, _ := postWebhook(t, s, []byte(strings.Repeat("[", 3)))
		assert.Equal(t, http.StatusBadRequest, code)

		calls, _ := recorder.snapshot()
		assert.Empty(t, calls)
	})
}
