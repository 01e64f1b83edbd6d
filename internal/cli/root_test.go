package cli

import (
	"testing"
)

func TestRootCommandWiring(t *testing.T) {
	expected := map[string]bool{
		"get":    false,
		"post":   false,
		"put":    false,
		"delete": false,
		"run":    false,
	}

	for _, cmd := range RootCmd.Commands() {
		if _, ok := expected[cmd.Name()]; ok {
			expected[cmd.Name()] = true
		}
	}

	for name, found := range expected {
		if !found {
			t.Errorf("Expected %q command to be registered", name)
		}
	}
}

func TestRequestCommandFlags(t *testing.T) {
	for _, flag := range []string{"header", "query", "verbose", "timeout", "no-color", "no-redirect"} {
		if getCmd.Flags().Lookup(flag) == nil {
			t.Errorf("Expected get command to have the %q flag", flag)
		}
	}

	// Body-carrying commands additionally take -d.
	if postCmd.Flags().Lookup("data") == nil {
		t.Error("Expected post command to have the data flag")
	}
	if putCmd.Flags().Lookup("data") == nil {
		t.Error("Expected put command to have the data flag")
	}
	if deleteCmd.Flags().Lookup("data") != nil {
		t.Error("Expected delete command to have no data flag")
	}
}
