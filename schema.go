package areply

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// SchemaVersion identifies the response contract agents answer against.
const SchemaVersion = "describe-output-v1"

// OutputSchema returns the JSON schema every agent response must satisfy.
// The same document is embedded in each request as output_schema so agents
// can see the contract they are answering.
func OutputSchema() map[string]any {
	return map[string]any{
		"$schema": "https://json-schema.org/draft/2020-12/schema",
		"$id":     "https://metalagman.github.io/areply/describe-output-v1.json",
		"title":   "Symbol Description Output",
		"type":    "object",
		"required": []string{
			"summary",
			"purpose",
			"side_effects",
			"confidence",
		},
		"additionalProperties": false,
		"properties": map[string]any{
			"summary": map[string]any{
				"type":        "string",
				"minLength":   1,
				"description": "Short, specific summary of symbol behavior.",
			},
			"purpose": map[string]any{
				"type":        "string",
				"minLength":   1,
				"description": "Primary responsibility of the symbol.",
			},
			"side_effects": map[string]any{
				"type":        "string",
				"minLength":   1,
				"description": "External effects, IO, mutation, or notable interactions.",
			},
			"confidence": map[string]any{
				"type":        "string",
				"enum":        []string{"low", "medium", "high"},
				"description": "Confidence level in the generated description.",
			},
		},
	}
}

// OutputSchemaJSON renders OutputSchema as indented, newline-terminated JSON.
func OutputSchemaJSON() ([]byte, error) {
	data, err := json.MarshalIndent(OutputSchema(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal output schema: %w", err)
	}

	return append(data, '\n'), nil
}

// ValidateResponseJSON checks raw response bytes against OutputSchema.
func ValidateResponseJSON(data []byte) error {
	schemaLoader := gojsonschema.NewGoLoader(OutputSchema())
	docLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return fmt.Errorf("validate response schema: %w", err)
	}

	if result.Valid() {
		return nil
	}

	errs := make([]string, 0, len(result.Errors()))
	for _, err := range result.Errors() {
		errs = append(errs, err.String())
	}

	return fmt.Errorf("%w: %s", ErrSchemaMismatch, strings.Join(errs, "; "))
}
