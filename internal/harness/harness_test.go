package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shapelab/shapelab/internal/demo"
)

func TestRun_PassingScenario(t *testing.T) {
	scenario := &Scenario{
		Name:     "move_animal",
		RunToken: "test-run-001",
		Demos:    []string{"move-animal"},
		Assertions: []Assertion{
			{Type: AssertOutputContains, Demo: "move-animal", Line: "Moving with speed: 10"},
			{Type: AssertOutputCount, Demo: "move-animal", Count: 2},
		},
	}

	result, err := Run(scenario)
	require.NoError(t, err)
	assert.True(t, result.Pass)
	assert.Empty(t, result.Errors)
	require.Len(t, result.Transcripts, 1)
	assert.Equal(t, "test-run-001", result.Transcripts[0].RunToken)
}

func TestRun_FailingAssertionIsNotARunError(t *testing.T) {
	scenario := &Scenario{
		Name:  "wrong_count",
		Demos: []string{"move-animal"},
		Assertions: []Assertion{
			{Type: AssertOutputCount, Demo: "move-animal", Count: 99},
		},
	}

	result, err := Run(scenario)
	require.NoError(t, err)
	assert.False(t, result.Pass)
	require.Len(t, result.Errors, 1)

	var ae *AssertionError
	assert.ErrorAs(t, result.Errors[0], &ae)
}

func TestRun_UnknownDemoIsARunError(t *testing.T) {
	scenario := &Scenario{
		Name:  "unknown_demo",
		Demos: []string{"no-such-demo"},
	}

	_, err := Run(scenario)
	require.Error(t, err)
	assert.True(t, demo.IsUnknownDemo(err))
}

func TestRun_InvalidScenarioRejected(t *testing.T) {
	_, err := Run(&Scenario{Name: "empty"})
	assert.Error(t, err)
}

func TestRun_DefaultRunToken(t *testing.T) {
	scenario := &Scenario{
		Name:  "default_token",
		Demos: []string{"error-bag"},
	}

	result, err := Run(scenario)
	require.NoError(t, err)
	require.Len(t, result.Transcripts, 1)
	assert.Equal(t, "test-run-default", result.Transcripts[0].RunToken)
}

func TestRun_Deterministic(t *testing.T) {
	scenario := &Scenario{
		Name:     "repeat",
		RunToken: "test-run-007",
		Demos:    []string{"overload-add", "error-bag"},
	}

	first, err := Run(scenario)
	require.NoError(t, err)
	second, err := Run(scenario)
	require.NoError(t, err)

	firstSnap, err := Snapshot(scenario, first)
	require.NoError(t, err)
	secondSnap, err := Snapshot(scenario, second)
	require.NoError(t, err)
	assert.Equal(t, firstSnap, secondSnap)
}
