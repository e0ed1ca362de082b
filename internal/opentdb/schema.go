package opentdb

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// responseSchema describes the expected shape of an Open Trivia DB response.
// Validation runs before decoding so a malformed body is reported as a
// distinct bad-data failure instead of silently decoding to zero values.
var responseSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"response_code": map[string]any{
			"type": "integer",
		},
		"results": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"category":       map[string]any{"type": "string"},
					"type":           map[string]any{"type": "string", "enum": []any{"multiple", "boolean"}},
					"difficulty":     map[string]any{"type": "string", "enum": []any{"easy", "medium", "hard"}},
					"question":       map[string]any{"type": "string"},
					"correct_answer": map[string]any{"type": "string"},
					"incorrect_answers": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
				},
				"required": []any{"type", "difficulty", "question", "correct_answer", "incorrect_answers"},
			},
		},
	},
	"required": []any{"response_code", "results"},
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// validateBody checks raw against responseSchema.
// Returns *ErrBadData on any failure.
func validateBody(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return &ErrBadData{
			Content: raw,
			Err:     fmt.Errorf("invalid JSON: %w", err),
		}
	}

	compiled, err := getCompiledSchema()
	if err != nil {
		return &ErrBadData{
			Content: raw,
			Err:     fmt.Errorf("compile response schema: %w", err),
		}
	}

	if err := compiled.Validate(parsed); err != nil {
		return &ErrBadData{
			Content: raw,
			Err:     fmt.Errorf("schema validation failed: %w", err),
		}
	}

	return nil
}

// getCompiledSchema compiles responseSchema once and caches it.
func getCompiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value (any), not raw
		// bytes. Marshal then unmarshal to get a clean any representation.
		defBytes, err := json.Marshal(responseSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://opentdb-response.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}
