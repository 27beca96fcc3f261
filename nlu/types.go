// Package nlu defines classification results shared by the intent
// classifiers and provides the Wit.ai adapter.
package nlu

import (
	"context"
	"sort"
)

// IntentName is a classified user goal. Only the declared constants are
// acted upon; any other value is treated as not understood.
type IntentName string

const (
	IntentGreetings IntentName = "greetings"
	IntentBuy       IntentName = "buy"
	IntentPhone     IntentName = "phone"
)

// IntentNames lists every intent the dispatcher acts upon.
func IntentNames() []IntentName {
	return []IntentName{IntentGreetings, IntentBuy, IntentPhone}
}

// Known reports whether n is one of the declared intents.
func (n IntentName) Known() bool {
	for _, known := range IntentNames() {
		if n == known {
			return true
		}
	}
	return false
}

// Entities are the typed values extracted alongside an intent.
type Entities struct {
	Product     string `json:"product,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
}

type Intent struct {
	Name       IntentName `json:"name"`
	Confidence float64    `json:"confidence"`
	Entities   Entities   `json:"entities"`
}

// Classification holds intents ranked by descending confidence.
type Classification struct {
	Text    string   `json:"text"`
	Intents []Intent `json:"intents"`
}

// Rank sorts the intents by descending confidence, keeping the provider
// order for ties.
func (c *Classification) Rank() {
	sort.SliceStable(c.Intents, func(i, j int) bool {
		return c.Intents[i].Confidence > c.Intents[j].Confidence
	})
}

// Classifier turns raw user text into a Classification.
type Classifier interface {
	Classify(ctx context.Context, text string) (*Classification, error)
}
