package output

import (
	"strings"
	"testing"
)

func TestColorSchemes(t *testing.T) {
	// Test DefaultColorScheme
	defaultScheme := DefaultColorScheme()
	if defaultScheme.Method == nil {
		t.Error("DefaultColorScheme.Method should not be nil")
	}
	if defaultScheme.URL == nil {
		t.Error("DefaultColorScheme.URL should not be nil")
	}
	if defaultScheme.StatusOK == nil {
		t.Error("DefaultColorScheme.StatusOK should not be nil")
	}
	if defaultScheme.StatusWarn == nil {
		t.Error("DefaultColorScheme.StatusWarn should not be nil")
	}
	if defaultScheme.StatusError == nil {
		t.Error("DefaultColorScheme.StatusError should not be nil")
	}
	if defaultScheme.HeaderKey == nil {
		t.Error("DefaultColorScheme.HeaderKey should not be nil")
	}
	if defaultScheme.HeaderValue == nil {
		t.Error("DefaultColorScheme.HeaderValue should not be nil")
	}
	if defaultScheme.Success == nil {
		t.Error("DefaultColorScheme.Success should not be nil")
	}
	if defaultScheme.Error == nil {
		t.Error("DefaultColorScheme.Error should not be nil")
	}

	// Test NoColorScheme: every style must render without escape codes
	noColorScheme := NoColorScheme()
	if got := noColorScheme.Method.Sprint("GET"); got != "GET" {
		t.Errorf("NoColorScheme.Method should render plain text, got %q", got)
	}
	if got := noColorScheme.StatusOK.Sprint("200 OK"); got != "200 OK" {
		t.Errorf("NoColorScheme.StatusOK should render plain text, got %q", got)
	}
	if got := noColorScheme.HeaderKey.Sprint("Accept"); got != "Accept" {
		t.Errorf("NoColorScheme.HeaderKey should render plain text, got %q", got)
	}
}

func TestIcons(t *testing.T) {
	if SuccessIcon(true) != "✓" {
		t.Errorf("Expected plain checkmark, got %q", SuccessIcon(true))
	}
	if ErrorIcon(true) != "✗" {
		t.Errorf("Expected plain cross, got %q", ErrorIcon(true))
	}

	// Colored variants still carry the symbol
	if !strings.Contains(SuccessIcon(false), "✓") {
		t.Errorf("Expected checkmark in colored icon, got %q", SuccessIcon(false))
	}
	if !strings.Contains(ErrorIcon(false), "✗") {
		t.Errorf("Expected cross in colored icon, got %q", ErrorIcon(false))
	}
}
