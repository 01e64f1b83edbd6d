package argscheck

import (
	"bytes"
	"testing"
)

func TestNotBlank(t *testing.T) {
	if err := NotBlank("value", "param"); err != nil {
		t.Errorf("Expected no error for a non-blank value, got %v", err)
	}
	for _, value := range []string{"", "   ", "\t\n"} {
		if err := NotBlank(value, "param"); err == nil {
			t.Errorf("Expected an error for blank value %q", value)
		}
	}
}

func TestNotBlank_NamesTheParameter(t *testing.T) {
	err := NotBlank("", "uri")
	if err == nil || err.Error() != `parameter "uri" may not be blank` {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestNotNil(t *testing.T) {
	if err := NotNil("anything", "param"); err != nil {
		t.Errorf("Expected no error for a non-nil value, got %v", err)
	}
	if err := NotNil(nil, "entity"); err == nil {
		t.Error("Expected an error for a nil value")
	}
}

func TestNotNil_TypedNil(t *testing.T) {
	var reader *bytes.Reader
	if err := NotNil(reader, "content"); err == nil {
		t.Error("Expected an error for a typed nil pointer")
	}

	var fn func()
	if err := NotNil(fn, "callback"); err == nil {
		t.Error("Expected an error for a typed nil func")
	}

	if err := NotNil(bytes.NewReader([]byte("x")), "content"); err != nil {
		t.Errorf("Expected no error for a live pointer, got %v", err)
	}
}

func TestCheck(t *testing.T) {
	if err := Check(true, "must hold"); err != nil {
		t.Errorf("Expected no error when the condition holds, got %v", err)
	}
	err := Check(false, "name/value pairs must have even length")
	if err == nil || err.Error() != "name/value pairs must have even length" {
		t.Errorf("Unexpected error: %v", err)
	}
}
