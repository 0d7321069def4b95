package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario defines a demonstration contract test: which demos to run and
// what their transcripts must look like.
type Scenario struct {
	// Name uniquely identifies this scenario.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// RunToken is an optional fixed run token for deterministic output.
	// If empty, defaults to "test-run-default" for golden comparison.
	RunToken string `yaml:"run_token,omitempty"`

	// Demos lists the registered demo names to run, in order.
	Demos []string `yaml:"demos"`

	// Assertions validate the resulting transcripts.
	// Supported types: output_contains, output_count, output_order.
	Assertions []Assertion `yaml:"assertions,omitempty"`
}

// Assertion validates one property of a demo's transcript.
type Assertion struct {
	// Type specifies the assertion type:
	// - "output_contains": transcript contains the exact line
	// - "output_count": transcript has exactly Count lines
	// - "output_order": Lines appear in order (gaps allowed)
	Type string `yaml:"type"`

	// Demo is the demo whose transcript is inspected.
	Demo string `yaml:"demo"`

	// Line is the expected line (used by output_contains).
	Line string `yaml:"line,omitempty"`

	// Lines is the expected order (used by output_order).
	Lines []string `yaml:"lines,omitempty"`

	// Count is the expected line count (used by output_count).
	Count int `yaml:"count,omitempty"`
}

// Assertion type constants.
const (
	AssertOutputContains = "output_contains"
	AssertOutputCount    = "output_count"
	AssertOutputOrder    = "output_order"
)

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed, contains
// unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	// Strict field validation catches typos like "assertion:" vs "assertions:".
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := scenario.Validate(); err != nil {
		return nil, err
	}

	return &scenario, nil
}

// Validate checks structural requirements beyond YAML well-formedness.
func (s *Scenario) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("scenario name is required")
	}
	if len(s.Demos) == 0 {
		return fmt.Errorf("scenario %q: at least one demo is required", s.Name)
	}

	for i, a := range s.Assertions {
		if a.Demo == "" {
			return fmt.Errorf("scenario %q: assertion %d: demo is required", s.Name, i)
		}
		switch a.Type {
		case AssertOutputContains:
			if a.Line == "" {
				return fmt.Errorf("scenario %q: assertion %d: output_contains requires line", s.Name, i)
			}
		case AssertOutputCount:
			if a.Count < 0 {
				return fmt.Errorf("scenario %q: assertion %d: output_count requires count >= 0", s.Name, i)
			}
		case AssertOutputOrder:
			if len(a.Lines) == 0 {
				return fmt.Errorf("scenario %q: assertion %d: output_order requires lines", s.Name, i)
			}
		default:
			return fmt.Errorf("scenario %q: assertion %d: unknown type %q", s.Name, i, a.Type)
		}
	}

	return nil
}
