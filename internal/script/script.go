// Package script runs YAML scenarios against a demo variant over
// {int64, string, uuid.UUID}. Scenarios exercise get-or-construct, strict
// reads and clearing step by step, optionally checking each outcome.
package script

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Operations a step may name.
const (
	OpAt    = "at"
	OpGet   = "get"
	OpClear = "clear"
	OpState = "state"
)

// Scenario errors.
var (
	ErrInvalidStep = errors.New("invalid step")
	ErrExpectation = errors.New("expectation failed")
)

// Document is a parsed scenario file.
type Document struct {
	Name  string `yaml:"name"`
	Steps []Step `yaml:"steps"`
}

// Step is one operation against the variant.
type Step struct {
	Op          string  `yaml:"op"`
	Index       *int    `yaml:"index,omitempty"`
	Value       string  `yaml:"value,omitempty"`
	ExpectError bool    `yaml:"expect_error,omitempty"`
	ExpectValue *string `yaml:"expect_value,omitempty"`
}

// Parse decodes a scenario document.
func Parse(data []byte) (Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("parse scenario: %w", err)
	}
	if len(doc.Steps) == 0 {
		return Document{}, fmt.Errorf("%w: scenario has no steps", ErrInvalidStep)
	}
	return doc, nil
}

// LoadFile reads and parses a scenario file.
func LoadFile(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("read scenario: %w", err)
	}
	return Parse(data)
}
