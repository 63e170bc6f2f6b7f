package openai

import (
	"net/http"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/rs/zerolog/log"
)

// Client wraps the OpenAI SDK client used to generate chat replies.
// A Client built without an API key has no SDK client and answers every
// request with FallbackUnavailable.
type Client struct {
	client *openai.Client
}

// NewClient creates the OpenAI wrapper. The HTTP client is shared with the rest of
// the process; SDK retries are disabled so each message costs one completion call.
func NewClient(apiKey, baseURL string, httpClient *http.Client) *Client {
	if apiKey == "" {
		log.Error().Msg("OpenAI API key is not set, completions are unavailable")
		return &Client{}
	}

	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if httpClient != nil {
		opts = append(opts, option.WithHTTPClient(httpClient))
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	client := openai.NewClient(opts...)

	return &Client{
		client: &client,
	}
}

// Available reports whether the SDK client was initialised.
func (c *Client) Available() bool {
	return c != nil && c.client != nil
}
