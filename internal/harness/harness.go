package harness

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/shapelab/shapelab/internal/demo"
	"github.com/shapelab/shapelab/internal/testutil"
)

// Result holds the outcome of a scenario execution.
type Result struct {
	// Pass is true when every assertion held.
	Pass bool

	// Errors lists the assertion failures, in assertion order.
	Errors []error

	// Transcripts holds one transcript per demo, in scenario order.
	Transcripts []*demo.Transcript
}

// Run executes a scenario and returns the result.
//
// Each scenario run is isolated and deterministic: a fixed run token
// (from scenario.run_token, defaulting to "test-run-default") and a
// resettable logical clock reset before each demo. Re-running the same
// scenario produces byte-identical transcripts.
//
// Run returns an error only when the scenario itself cannot execute
// (unknown demo, demo failure). Assertion failures are reported through
// Result.Pass and Result.Errors, not as a run error.
func Run(scenario *Scenario) (*Result, error) {
	if err := scenario.Validate(); err != nil {
		return nil, err
	}

	// One resettable clock for the whole scenario: resetting before each
	// demo pins seq values no matter how often the scenario re-runs.
	clock := testutil.NewDeterministicClock()
	runner := demo.NewRunnerWithClocks(
		testutil.NewFixedTokenGenerator(scenario.RunToken),
		slog.New(slog.NewTextHandler(io.Discard, nil)), // Suppress logs in tests
		func() demo.Sequencer {
			clock.Reset()
			return clock
		},
	)

	ctx := context.Background()

	result := &Result{Pass: true}
	byName := make(map[string]*demo.Transcript, len(scenario.Demos))
	for _, name := range scenario.Demos {
		tr, err := runner.Run(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("scenario %q: %w", scenario.Name, err)
		}
		result.Transcripts = append(result.Transcripts, tr)
		byName[name] = tr
	}

	for _, a := range scenario.Assertions {
		if err := evalAssertion(byName, a); err != nil {
			result.Pass = false
			result.Errors = append(result.Errors, err)
		}
	}

	return result, nil
}
