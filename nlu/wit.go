package nlu

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	witEntityIntent  = "intent"
	witEntityProduct = "product"
	witEntityPhone   = "phone_number"
)

// WitClient classifies text with the Wit.ai /message endpoint. It accepts
// both the legacy response (intents under entities.intent) and the current
// one (top-level intents, "name:role" entity keys).
type WitClient struct {
	token      string
	baseURL    string
	apiVersion string
	httpClient *http.Client
}

func NewWitClient(token, baseURL, apiVersion string, httpClient *http.Client) *WitClient {
	return &WitClient{
		token:      token,
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiVersion: apiVersion,
		httpClient: httpClient,
	}
}

type witEntity struct {
	Value      any     `json:"value"`
	Confidence float64 `json:"confidence"`
}

type witIntent struct {
	Name       string  `json:"name"`
	Confidence float64 `json:"confidence"`
}

type witResponse struct {
	Text       string                 `json:"text"`
	LegacyText string                 `json:"_text"`
	Intents    []witIntent            `json:"intents"`
	Entities   map[string][]witEntity `json:"entities"`
}

func (c *WitClient) Classify(ctx context.Context, text string) (*Classification, error) {
	query := url.Values{}
	query.Set("q", text)
	if c.apiVersion != "" {
		query.Set("v", c.apiVersion)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/message?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var witResp witResponse
	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()
	if err := decoder.Decode(&witResp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	classification := witResp.toClassification(text)

	log.Debug().
		Str("text", text).
		Int("intents", len(classification.Intents)).
		Msg("Wit classification received")

	return classification, nil
}

func (r witResponse) toClassification(text string) *Classification {
	entities := make(map[string][]witEntity, len(r.Entities))
	for key, values := range r.Entities {
		entities[entityName(key)] = append(entities[entityName(key)], values...)
	}

	shared := Entities{
		Product:     firstValue(entities[witEntityProduct]),
		PhoneNumber: firstValue(entities[witEntityPhone]),
	}

	classification := &Classification{Text: text}

	for _, intent := range r.Intents {
		classification.Intents = append(classification.Intents, Intent{
			Name:       IntentName(intent.Name),
			Confidence: intent.Confidence,
			Entities:   shared,
		})
	}
	if len(r.Intents) == 0 {
		for _, intent := range entities[witEntityIntent] {
			classification.Intents = append(classification.Intents, Intent{
				Name:       IntentName(valueString(intent.Value)),
				Confidence: intent.Confidence,
				Entities:   shared,
			})
		}
	}

	classification.Rank()
	return classification
}

// entityName maps "wit$phone_number:phone_number" and "product:product" to
// their bare entity names.
func entityName(key string) string {
	name, _, _ := strings.Cut(key, ":")
	return strings.TrimPrefix(name, "wit$")
}

func firstValue(values []witEntity) string {
	for _, v := range values {
		if s := valueString(v.Value); s != "" {
			return s
		}
	}
	return ""
}

func valueString(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(value)
	case json.Number:
		return value.String()
	default:
		return fmt.Sprint(value)
	}
}
