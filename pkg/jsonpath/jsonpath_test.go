package jsonpath

import (
	"testing"
)

const testDocument = `{
	"user": {"id": 42, "name": "alice", "tags": ["admin", "ops"]},
	"active": true,
	"score": 3.14,
	"missing": null
}`

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{"nested field", "$.user.name", "alice"},
		{"number", "$.user.id", "42"},
		{"float", "$.score", "3.14"},
		{"boolean", "$.active", "true"},
		{"array index", "$.user.tags[0]", "admin"},
		{"bracket notation", "$['user']['name']", "alice"},
		{"double quoted bracket", `$["user"]["id"]`, "42"},
		{"null value", "$.missing", "null"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Extract(testDocument, tt.path)
			if err != nil {
				t.Fatalf("Error extracting %s: %v", tt.path, err)
			}
			if got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestExtract_PathNotFound(t *testing.T) {
	if _, err := Extract(testDocument, "$.user.email"); err == nil {
		t.Error("Expected an error for a missing path")
	}
}

func TestExtract_EmptyInputs(t *testing.T) {
	if _, err := Extract("", "$.a"); err == nil {
		t.Error("Expected an error for an empty document")
	}
	if _, err := Extract(testDocument, ""); err == nil {
		t.Error("Expected an error for an empty path")
	}
}

func TestExtractAll(t *testing.T) {
	results, err := ExtractAll(testDocument, map[string]string{
		"name": "$.user.name",
		"id":   "$.user.id",
	})
	if err != nil {
		t.Fatalf("Error extracting: %v", err)
	}
	if results["name"] != "alice" || results["id"] != "42" {
		t.Errorf("Unexpected results: %v", results)
	}
}

func TestExtractAll_FirstFailureAborts(t *testing.T) {
	_, err := ExtractAll(testDocument, map[string]string{
		"bad": "$.nope",
	})
	if err == nil {
		t.Error("Expected an error for a failing path")
	}
}

func TestToGjsonPath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"$.a.b", "a.b"},
		{"$.items[2].id", "items.2.id"},
		{"$['a']['b']", "a.b"},
		{"$", "@this"},
		{"a.b", "a.b"},
	}

	for _, tt := range tests {
		if got := toGjsonPath(tt.in); got != tt.want {
			t.Errorf("toGjsonPath(%q): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}
