// Package config loads request-suite definitions for the CLI run command.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Suite is a named sequence of requests dispatched against one base URL.
type Suite struct {
	BaseURL string            `yaml:"baseUrl" json:"baseUrl"`
	Headers map[string]string `yaml:"headers,omitempty" json:"headers,omitempty"`
	Timeout string            `yaml:"timeout,omitempty" json:"timeout,omitempty"`
	Requests []Request        `yaml:"requests" json:"requests"`
}

// Request is one request definition inside a suite.
type Request struct {
	Name         string            `yaml:"name" json:"name"`
	Method       string            `yaml:"method" json:"method"`
	Path         string            `yaml:"path" json:"path"`
	Headers      map[string]string `yaml:"headers,omitempty" json:"headers,omitempty"`
	Query        map[string]string `yaml:"query,omitempty" json:"query,omitempty"`
	Body         string            `yaml:"body,omitempty" json:"body,omitempty"`
	ExpectStatus int               `yaml:"expectStatus,omitempty" json:"expectStatus,omitempty"`
	Extract      map[string]string `yaml:"extract,omitempty" json:"extract,omitempty"`
	Schema       string            `yaml:"schema,omitempty" json:"schema,omitempty"`
}

// Load reads and parses a suite file. Supported formats:
//   - .yaml, .yml (or no extension) -> YAML
//   - .json -> JSON (parsed by the YAML decoder, a superset)
func Load(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading suite file: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml", ".json", "":
	default:
		return nil, fmt.Errorf("unsupported suite file format %q", ext)
	}

	var suite Suite
	if err := yaml.Unmarshal(data, &suite); err != nil {
		return nil, fmt.Errorf("parsing suite file: %w", err)
	}

	if err := suite.Validate(); err != nil {
		return nil, err
	}
	return &suite, nil
}

// Validate checks the suite for structural problems, reporting all of them
// at once.
func (s *Suite) Validate() error {
	var problems []string

	if strings.TrimSpace(s.BaseURL) == "" {
		problems = append(problems, "baseUrl is required")
	}
	if s.Timeout != "" {
		if _, err := time.ParseDuration(s.Timeout); err != nil {
			problems = append(problems, fmt.Sprintf("timeout %q is not a valid duration", s.Timeout))
		}
	}
	if len(s.Requests) == 0 {
		problems = append(problems, "at least one request is required")
	}
	for i, req := range s.Requests {
		label := req.Name
		if label == "" {
			label = fmt.Sprintf("request #%d", i+1)
			problems = append(problems, fmt.Sprintf("%s: name is required", label))
		}
		if strings.TrimSpace(req.Method) == "" {
			problems = append(problems, fmt.Sprintf("%s: method is required", label))
		}
		if req.ExpectStatus != 0 && (req.ExpectStatus < 100 || req.ExpectStatus > 599) {
			problems = append(problems, fmt.Sprintf("%s: expectStatus %d is not a valid status code", label, req.ExpectStatus))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid suite: %s", strings.Join(problems, "; "))
	}
	return nil
}

// ParsedTimeout returns the suite timeout, or def when none is set.
func (s *Suite) ParsedTimeout(def time.Duration) time.Duration {
	if s.Timeout == "" {
		return def
	}
	d, err := time.ParseDuration(s.Timeout)
	if err != nil {
		return def
	}
	return d
}
