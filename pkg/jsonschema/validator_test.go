package jsonschema

import (
	"testing"
)

const userSchema = `{
	"type": "object",
	"required": ["id", "name"],
	"properties": {
		"id": {"type": "integer"},
		"name": {"type": "string", "minLength": 1}
	}
}`

func TestValidate_Valid(t *testing.T) {
	valid, err := Validate(`{"id": 1, "name": "alice"}`, userSchema)
	if err != nil {
		t.Fatalf("Error validating: %v", err)
	}
	if !valid {
		t.Error("Expected document to be valid")
	}
}

func TestValidate_Invalid(t *testing.T) {
	valid, err := Validate(`{"id": "one"}`, userSchema)
	if err != nil {
		t.Fatalf("Error validating: %v", err)
	}
	if valid {
		t.Error("Expected document to be invalid")
	}
}

func TestValidate_MalformedDocument(t *testing.T) {
	if _, err := Validate(`{not json`, userSchema); err == nil {
		t.Error("Expected an error for a malformed document")
	}
}

func TestValidate_MalformedSchema(t *testing.T) {
	if _, err := Validate(`{}`, `{"type": 42}`); err == nil {
		t.Error("Expected an error for a malformed schema")
	}
}

func TestValidateWithErrors(t *testing.T) {
	valid, errs := ValidateWithErrors(`{"id": "one", "name": ""}`, userSchema)
	if valid {
		t.Fatal("Expected document to be invalid")
	}
	if len(errs) == 0 {
		t.Fatal("Expected individual violations")
	}
}

func TestValidateWithErrors_Valid(t *testing.T) {
	valid, errs := ValidateWithErrors(`{"id": 2, "name": "bob"}`, userSchema)
	if !valid {
		t.Fatalf("Expected document to be valid, got %v", errs)
	}
	if errs != nil {
		t.Errorf("Expected no errors, got %v", errs)
	}
}
