package finextract

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// buildRecordSchema returns the record shape as a JSON-Schema (draft 2020-12
// subset) generic map. This is a shape check only: key and value types, no
// value-level constraints.
func buildRecordSchema() map[string]any {
	yearValues := map[string]any{
		"type":                 "object",
		"additionalProperties": map[string]any{"type": "number"},
	}
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"company_name": map[string]any{"type": "string"},
			"fiscal_years": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"financial_data": map[string]any{
				"type":                 "object",
				"additionalProperties": yearValues,
			},
			"currency": map[string]any{"type": "string"},
			"units":    map[string]any{"type": "string"},
			"notes": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
	}
}

var recordSchema = mustCompileRecordSchema()

func mustCompileRecordSchema() *jsonschema.Schema {
	b, err := json.Marshal(buildRecordSchema())
	if err != nil {
		panic(fmt.Sprintf("marshal record schema: %v", err))
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("record.json", bytes.NewReader(b)); err != nil {
		panic(fmt.Sprintf("add record schema: %v", err))
	}
	return compiler.MustCompile("record.json")
}

// validateRecordShape checks already-decoded JSON against the record shape.
func validateRecordShape(v any) error {
	return recordSchema.Validate(v)
}
