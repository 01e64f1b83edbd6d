// Package jsonschema validates JSON documents against JSON Schema documents.
package jsonschema

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Validate reports whether the document satisfies the schema. A malformed
// schema or document is an error, not a validation failure.
func Validate(document, schema string) (bool, error) {
	compiled, err := compile(schema)
	if err != nil {
		return false, err
	}

	var data any
	if err := json.Unmarshal([]byte(document), &data); err != nil {
		return false, fmt.Errorf("invalid JSON: %w", err)
	}

	return compiled.Validate(data) == nil, nil
}

// ValidateWithErrors is Validate, additionally returning every individual
// violation when the document does not satisfy the schema.
func ValidateWithErrors(document, schema string) (bool, []error) {
	compiled, err := compile(schema)
	if err != nil {
		return false, []error{err}
	}

	var data any
	if err := json.Unmarshal([]byte(document), &data); err != nil {
		return false, []error{fmt.Errorf("invalid JSON: %w", err)}
	}

	err = compiled.Validate(data)
	if err == nil {
		return true, nil
	}
	if validationErr, ok := err.(*jsonschema.ValidationError); ok {
		return false, flatten(validationErr)
	}
	return false, []error{err}
}

func compile(schema string) (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", strings.NewReader(schema)); err != nil {
		return nil, fmt.Errorf("invalid schema: %w", err)
	}
	compiled, err := compiler.Compile("schema.json")
	if err != nil {
		return nil, fmt.Errorf("invalid schema: %w", err)
	}
	return compiled, nil
}

func flatten(err *jsonschema.ValidationError) []error {
	var errs []error
	if err.Message != "" {
		errs = append(errs, fmt.Errorf("validation error at %s: %s", err.InstanceLocation, err.Message))
	}
	for _, cause := range err.Causes {
		errs = append(errs, flatten(cause)...)
	}
	return errs
}
