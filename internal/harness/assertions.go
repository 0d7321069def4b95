package harness

import (
	"fmt"
	"strings"

	"github.com/shapelab/shapelab/internal/demo"
)

// AssertionError is returned when an assertion fails.
// It includes the full transcript to help debug the failure.
type AssertionError struct {
	Type     string      // Assertion type for categorization
	Demo     string      // Demo whose transcript was inspected
	Expected string      // Human-readable expected outcome
	Actual   string      // Human-readable actual outcome
	Lines    []demo.Line // Full transcript for debugging context
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder

	fmt.Fprintf(&buf, "Assertion failed: %s on %s\n", e.Type, e.Demo)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s\n", e.Actual)

	fmt.Fprintf(&buf, "\nFull transcript:\n")
	for _, line := range e.Lines {
		fmt.Fprintf(&buf, "  [%d] %s\n", line.Seq, line.Text)
	}

	return buf.String()
}

// evalAssertion checks one assertion against the scenario's transcripts,
// keyed by demo name.
func evalAssertion(transcripts map[string]*demo.Transcript, a Assertion) error {
	tr, ok := transcripts[a.Demo]
	if !ok {
		return &AssertionError{
			Type:     a.Type,
			Demo:     a.Demo,
			Expected: fmt.Sprintf("a transcript for demo %q", a.Demo),
			Actual:   "demo was not run by this scenario",
		}
	}

	switch a.Type {
	case AssertOutputContains:
		return assertOutputContains(tr, a)
	case AssertOutputCount:
		return assertOutputCount(tr, a)
	case AssertOutputOrder:
		return assertOutputOrder(tr, a)
	default:
		return fmt.Errorf("unknown assertion type %q", a.Type)
	}
}

// assertOutputContains checks that the transcript carries the exact line.
func assertOutputContains(tr *demo.Transcript, a Assertion) error {
	for _, line := range tr.Lines {
		if line.Text == a.Line {
			return nil
		}
	}

	return &AssertionError{
		Type:     AssertOutputContains,
		Demo:     a.Demo,
		Expected: fmt.Sprintf("line %q", a.Line),
		Actual:   "not found in transcript",
		Lines:    tr.Lines,
	}
}

// assertOutputCount checks the exact number of transcript lines.
func assertOutputCount(tr *demo.Transcript, a Assertion) error {
	if len(tr.Lines) == a.Count {
		return nil
	}

	return &AssertionError{
		Type:     AssertOutputCount,
		Demo:     a.Demo,
		Expected: fmt.Sprintf("%d lines", a.Count),
		Actual:   fmt.Sprintf("%d lines", len(tr.Lines)),
		Lines:    tr.Lines,
	}
}

// assertOutputOrder checks that the lines appear in the given order.
// Lines don't need to be consecutive - intervening lines are allowed.
func assertOutputOrder(tr *demo.Transcript, a Assertion) error {
	next := 0
	for _, line := range tr.Lines {
		if next < len(a.Lines) && line.Text == a.Lines[next] {
			next++
		}
	}

	if next == len(a.Lines) {
		return nil
	}

	return &AssertionError{
		Type:     AssertOutputOrder,
		Demo:     a.Demo,
		Expected: fmt.Sprintf("lines in order: %v", a.Lines),
		Actual:   fmt.Sprintf("order broken at %q", a.Lines[next]),
		Lines:    tr.Lines,
	}
}
