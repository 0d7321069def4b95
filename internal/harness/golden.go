package harness

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/shapelab/shapelab/internal/demo"
)

// Snapshot produces the canonical JSON form of a scenario execution:
// the scenario name plus every transcript in scenario order. All strings
// go through the same canonical encoding as transcripts, so the bytes
// are deterministic across runs.
func Snapshot(scenario *Scenario, result *Result) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	buf.WriteString(`"scenario":`)
	name, err := demo.EncodeCanonicalString(scenario.Name)
	if err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}
	buf.Write(name)

	buf.WriteString(`,"transcripts":[`)
	for i, tr := range result.Transcripts {
		if i > 0 {
			buf.WriteByte(',')
		}
		canonical, err := tr.Canonical()
		if err != nil {
			return nil, fmt.Errorf("snapshot transcript %d: %w", i, err)
		}
		buf.Write(canonical)
	}
	buf.WriteByte(']')

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// RunWithGolden executes a scenario and compares the transcript snapshot
// against a golden file stored in testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Golden files are the source of truth for expected transcript output.
// Returns an error if scenario execution fails; a snapshot mismatch is a
// test failure (via goldie), not an error.
func RunWithGolden(t *testing.T, scenario *Scenario) error {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return err
	}

	snapshot, err := Snapshot(scenario, result)
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenario.Name, snapshot)

	return nil
}
