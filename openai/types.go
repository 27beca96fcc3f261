package openai

import (
	"github.com/invopop/jsonschema"
	"github.com/openai/openai-go"
)

// ClassifiedIntent is one intent as returned by the model.
type ClassifiedIntent struct {
	// Name is the intent identifier
	Name string `json:"name" jsonschema:"enum=greetings,enum=buy,enum=phone" jsonschema_description:"The intent identifier"`
	// Confidence ranks the intent against the others
	Confidence float64 `json:"confidence" jsonschema_description:"Confidence between 0 and 1"`
	// Product is the product name mentioned by the user, if any
	Product string `json:"product" jsonschema_description:"Product name mentioned by the user, empty when absent"`
	// PhoneNumber is the phone number typed by the user, if any
	PhoneNumber string `json:"phone_number" jsonschema_description:"Phone number typed by the user, empty when absent"`
}

// IntentList is the structured output requested from the model.
type IntentList struct {
	Intents []ClassifiedIntent `json:"intents" jsonschema_description:"Intents ordered from most to least likely"`
}

// GenerateSchema creates a JSON schema for the given type T.
// It uses reflection to generate a strict schema that disallows additional properties
// and doesn't use references for better compatibility with OpenAI's API.
func GenerateSchema[T any]() any {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	schema := reflector.Reflect(v)
	return schema
}

// IntentListResponseSchema is the pre-generated JSON schema for IntentList.
var IntentListResponseSchema = GenerateSchema[IntentList]()

// createSchemaParam creates an OpenAI schema parameter for structured output.
func createSchemaParam() openai.ResponseFormatJSONSchemaJSONSchemaParam {
	return openai.ResponseFormatJSONSchemaJSONSchemaParam{
		Name:        "intent_list",
		Description: openai.String("The intents found in the user message"),
		Schema:      IntentListResponseSchema,
		Strict:      openai.Bool(true),
	}
}
