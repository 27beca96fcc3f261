package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/NextMind-AI/shopbot-go/nlu"

	"github.com/openai/openai-go"
	"github.com/rs/zerolog/log"
)

var errEmptyCompletion = errors.New("completion has no choices")

// Classify implements nlu.Classifier using a strict JSON schema response.
func (c Client) Classify(ctx context.Context, text string) (*nlu.Classification, error) {
	chatCompletion, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(text),
		},
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &openai.ResponseFormatJSONSchemaParam{JSONSchema: createSchemaParam()},
		},
		Model:       c.model,
		Temperature: openai.Float(0),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to classify message: %w", err)
	}
	if len(chatCompletion.Choices) == 0 {
		return nil, errEmptyCompletion
	}

	content := chatCompletion.Choices[0].Message.Content

	var list IntentList
	if err := json.Unmarshal([]byte(content), &list); err != nil {
		return nil, fmt.Errorf("failed to parse classification: %w", err)
	}

	classification := &nlu.Classification{Text: text}
	for _, intent := range list.Intents {
		classification.Intents = append(classification.Intents, nlu.Intent{
			Name:       nlu.IntentName(strings.ToLower(strings.TrimSpace(intent.Name))),
			Confidence: intent.Confidence,
			Entities: nlu.Entities{
				Product:     strings.TrimSpace(intent.Product),
				PhoneNumber: strings.TrimSpace(intent.PhoneNumber),
			},
		})
	}
	classification.Rank()

	log.Debug().
		Str("text", text).
		Str("model", string(c.model)).
		Int("intents", len(classification.Intents)).
		Msg("OpenAI classification received")

	return classification, nil
}
