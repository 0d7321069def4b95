package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateScenarioBytes_Valid(t *testing.T) {
	errs := ValidateScenarioBytes([]byte(`
name: sample
description: "A sample"
run_token: "test-run-001"
demos:
  - move-animal
assertions:
  - type: output_contains
    demo: move-animal
    line: "Moving with speed: 10"
`))
	assert.Empty(t, errs)
}

func TestValidateScenarioBytes_MinimalValid(t *testing.T) {
	errs := ValidateScenarioBytes([]byte(`
name: sample
demos:
  - error-bag
`))
	assert.Empty(t, errs)
}

func TestValidateScenarioBytes_NotYAML(t *testing.T) {
	errs := ValidateScenarioBytes([]byte("name: [unclosed"))
	require.Len(t, errs, 1)
	assert.Equal(t, ErrScenarioNotYAML, errs[0].Code)
}

func TestValidateScenarioBytes_MissingName(t *testing.T) {
	errs := ValidateScenarioBytes([]byte(`
demos:
  - move-animal
`))
	require.NotEmpty(t, errs)
	assert.Equal(t, ErrScenarioSchemaViolation, errs[0].Code)
}

func TestValidateScenarioBytes_EmptyDemos(t *testing.T) {
	errs := ValidateScenarioBytes([]byte(`
name: sample
demos: []
`))
	assert.NotEmpty(t, errs)
}

func TestValidateScenarioBytes_BadAssertionType(t *testing.T) {
	errs := ValidateScenarioBytes([]byte(`
name: sample
demos:
  - move-animal
assertions:
  - type: trace_contains
    demo: move-animal
`))
	require.NotEmpty(t, errs)
	assert.Equal(t, ErrScenarioSchemaViolation, errs[0].Code)
}

func TestValidateScenarioBytes_UnknownFieldRejected(t *testing.T) {
	// #Scenario is closed, so stray fields violate the schema.
	errs := ValidateScenarioBytes([]byte(`
name: sample
demos:
  - move-animal
extra_field: true
`))
	assert.NotEmpty(t, errs)
}

func TestValidateScenarioBytes_NegativeCount(t *testing.T) {
	errs := ValidateScenarioBytes([]byte(`
name: sample
demos:
  - move-animal
assertions:
  - type: output_count
    demo: move-animal
    count: -1
`))
	assert.NotEmpty(t, errs)
}

func TestValidateScenarioFile_MissingFile(t *testing.T) {
	errs := ValidateScenarioFile("/nonexistent/scenario.yaml")
	require.Len(t, errs, 1)
	assert.Equal(t, ErrScenarioNotYAML, errs[0].Code)
}
