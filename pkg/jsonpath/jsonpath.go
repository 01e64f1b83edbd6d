// Package jsonpath extracts values from JSON documents using JSONPath
// expressions, translated onto gjson's path syntax.
package jsonpath

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// Extract returns the value at a JSONPath expression as a string.
// Null values render as "null"; a missing path is an error.
func Extract(document, path string) (string, error) {
	if document == "" {
		return "", fmt.Errorf("empty JSON document")
	}
	if path == "" {
		return "", fmt.Errorf("empty JSONPath expression")
	}

	result := gjson.Get(document, toGjsonPath(path))
	if !result.Exists() {
		return "", fmt.Errorf("path not found: %s", path)
	}
	if result.Type == gjson.Null {
		return "null", nil
	}
	return result.String(), nil
}

// ExtractAll extracts a value for each named JSONPath expression from one
// document. The first failing path aborts the extraction.
func ExtractAll(document string, paths map[string]string) (map[string]string, error) {
	if document == "" {
		return nil, fmt.Errorf("empty JSON document")
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no JSONPath expressions provided")
	}

	results := make(map[string]string, len(paths))
	for name, path := range paths {
		value, err := Extract(document, path)
		if err != nil {
			return nil, fmt.Errorf("extracting %q: %w", name, err)
		}
		results[name] = value
	}
	return results, nil
}

// toGjsonPath converts a JSONPath expression into gjson path syntax:
// $.users[0].name becomes users.0.name, and "$" alone addresses the root.
func toGjsonPath(path string) string {
	path = strings.TrimPrefix(path, "$")
	path = strings.TrimPrefix(path, ".")
	if path == "" {
		return "@this"
	}

	// Bracket notation: ['name'] / ["name"] / [0] all collapse to dot form.
	replacer := strings.NewReplacer("['", ".", "']", "", `["`, ".", `"]`, "", "[", ".", "]", "")
	path = replacer.Replace(path)
	return strings.TrimPrefix(path, ".")
}
