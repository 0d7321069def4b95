package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shapelab/shapelab/internal/demo"
)

func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	cmd := NewRootCommand()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRunSingleDemo(t *testing.T) {
	stdout, _, err := executeCommand(t, "run", "move-animal")
	require.NoError(t, err)

	assert.Contains(t, stdout, "=== move-animal")
	assert.Contains(t, stdout, "[1] Moving with speed: 10")
	assert.Contains(t, stdout, "[2] Moving with speed: 45")
}

func TestRunAllDemos(t *testing.T) {
	stdout, _, err := executeCommand(t, "run")
	require.NoError(t, err)

	for _, d := range demo.All() {
		assert.Contains(t, stdout, "=== "+d.Name)
	}
}

func TestRunUnknownDemo(t *testing.T) {
	_, _, err := executeCommand(t, "run", "no-such-demo")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "no-such-demo")
}

func TestRunPreservesArgumentOrder(t *testing.T) {
	stdout, _, err := executeCommand(t, "run", "use-vehicle", "move-animal")
	require.NoError(t, err)

	vehicleIdx := bytes.Index([]byte(stdout), []byte("=== use-vehicle"))
	animalIdx := bytes.Index([]byte(stdout), []byte("=== move-animal"))
	require.GreaterOrEqual(t, vehicleIdx, 0)
	require.GreaterOrEqual(t, animalIdx, 0)
	assert.Less(t, vehicleIdx, animalIdx)
}

func TestRunJSONOutput(t *testing.T) {
	stdout, _, err := executeCommand(t, "run", "--format", "json", "overload-add")
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, "ok", resp.Status)

	raw, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	var payload []transcriptPayload
	require.NoError(t, json.Unmarshal(raw, &payload))
	require.Len(t, payload, 1)
	assert.Equal(t, "overload-add", payload[0].Demo)
	assert.NotEmpty(t, payload[0].RunToken)
	require.NotEmpty(t, payload[0].Lines)
	assert.Equal(t, int64(1), payload[0].Lines[0].Seq)
}

func TestRunIsDeterministicInText(t *testing.T) {
	first, _, err := executeCommand(t, "run", "optional-access")
	require.NoError(t, err)
	second, _, err := executeCommand(t, "run", "optional-access")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
