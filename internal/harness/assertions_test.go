package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shapelab/shapelab/internal/demo"
)

func testTranscripts() map[string]*demo.Transcript {
	return map[string]*demo.Transcript{
		"use-vehicle": {
			RunToken: "test-run-default",
			Demo:     "use-vehicle",
			Lines: []demo.Line{
				{Seq: 1, Text: "Driving..."},
				{Seq: 2, Text: "Driving a truck..."},
				{Seq: 3, Text: "Loading cargo: 1000"},
			},
		},
	}
}

func TestAssertOutputContains_Found(t *testing.T) {
	err := evalAssertion(testTranscripts(), Assertion{
		Type: AssertOutputContains,
		Demo: "use-vehicle",
		Line: "Loading cargo: 1000",
	})
	assert.NoError(t, err)
}

func TestAssertOutputContains_NotFound(t *testing.T) {
	err := evalAssertion(testTranscripts(), Assertion{
		Type: AssertOutputContains,
		Demo: "use-vehicle",
		Line: "Loading cargo: 9999",
	})
	require.Error(t, err)

	var ae *AssertionError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, AssertOutputContains, ae.Type)
	assert.Contains(t, ae.Error(), "Loading cargo: 9999")
}

func TestAssertOutputContains_ExactMatchOnly(t *testing.T) {
	// Substrings don't count.
	err := evalAssertion(testTranscripts(), Assertion{
		Type: AssertOutputContains,
		Demo: "use-vehicle",
		Line: "Loading cargo",
	})
	assert.Error(t, err)
}

func TestAssertOutputCount(t *testing.T) {
	err := evalAssertion(testTranscripts(), Assertion{
		Type:  AssertOutputCount,
		Demo:  "use-vehicle",
		Count: 3,
	})
	assert.NoError(t, err)

	err = evalAssertion(testTranscripts(), Assertion{
		Type:  AssertOutputCount,
		Demo:  "use-vehicle",
		Count: 2,
	})
	assert.Error(t, err)
}

func TestAssertOutputOrder_GapsAllowed(t *testing.T) {
	err := evalAssertion(testTranscripts(), Assertion{
		Type:  AssertOutputOrder,
		Demo:  "use-vehicle",
		Lines: []string{"Driving...", "Loading cargo: 1000"},
	})
	assert.NoError(t, err)
}

func TestAssertOutputOrder_WrongOrder(t *testing.T) {
	err := evalAssertion(testTranscripts(), Assertion{
		Type:  AssertOutputOrder,
		Demo:  "use-vehicle",
		Lines: []string{"Loading cargo: 1000", "Driving..."},
	})
	require.Error(t, err)

	var ae *AssertionError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, AssertOutputOrder, ae.Type)
}

func TestAssertOutputOrder_MissingLine(t *testing.T) {
	err := evalAssertion(testTranscripts(), Assertion{
		Type:  AssertOutputOrder,
		Demo:  "use-vehicle",
		Lines: []string{"Driving...", "Parking..."},
	})
	assert.Error(t, err)
}

func TestEvalAssertion_DemoNotRun(t *testing.T) {
	err := evalAssertion(testTranscripts(), Assertion{
		Type: AssertOutputContains,
		Demo: "move-animal",
		Line: "Moving with speed: 10",
	})
	require.Error(t, err)

	var ae *AssertionError
	require.ErrorAs(t, err, &ae)
	assert.Contains(t, ae.Actual, "not run")
}
