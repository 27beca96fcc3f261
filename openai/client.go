package openai

import (
	"net/http"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// Client wraps the OpenAI client and classifies user messages into the
// intents the conversation flow understands.
type Client struct {
	client *openai.Client
	model  openai.ChatModel
}

// NewClient creates a new OpenAI client wrapper with the specified API key and HTTP client.
// Extra request options (base URL, retries) are applied after the defaults.
func NewClient(apiKey, model string, httpClient *http.Client, opts ...option.RequestOption) Client {
	options := append([]option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithHTTPClient(httpClient),
	}, opts...)

	client := openai.NewClient(options...)

	return Client{
		client: &client,
		model:  openai.ChatModel(model),
	}
}
