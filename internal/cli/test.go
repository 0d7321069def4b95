package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shapelab/shapelab/internal/harness"
)

// ScenarioResult holds the result of a single scenario execution.
type ScenarioResult struct {
	Name   string   `json:"name"`
	File   string   `json:"file"`
	Pass   bool     `json:"pass"`
	Errors []string `json:"errors,omitempty"`
}

// TestResult holds the overall test result.
type TestResult struct {
	Scenarios []ScenarioResult `json:"scenarios"`
	Passed    int              `json:"passed"`
	Failed    int              `json:"failed"`
	Total     int              `json:"total"`
}

// NewTestCommand creates the test command.
func NewTestCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "test <scenario-file-or-dir>",
		Short: "Run scenario contract tests",
		Long: `Run scenario files through the harness, evaluating every assertion
against the demo transcripts.

Exit codes:
  0 - All scenarios passed
  1 - One or more scenarios failed
  2 - Command error (invalid paths, unknown demos, etc.)

Examples:
  shapelab test ./testdata/scenarios
  shapelab test ./testdata/scenarios/animal_and_vehicle.yaml
  shapelab test ./testdata/scenarios --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTests(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runTests(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	files, err := findScenarioFiles(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to find scenario files", err)
	}
	if len(files) == 0 {
		return NewExitError(ExitCommandError, fmt.Sprintf("no scenario files found in %s", path))
	}

	result := TestResult{
		Scenarios: make([]ScenarioResult, 0, len(files)),
		Total:     len(files),
	}

	for _, file := range files {
		sr := runScenarioFile(file, formatter)
		result.Scenarios = append(result.Scenarios, sr)
		if sr.Pass {
			result.Passed++
		} else {
			result.Failed++
		}
	}

	if opts.Format == "json" {
		if err := formatter.Success(result); err != nil {
			return err
		}
	} else {
		out := cmd.OutOrStdout()
		for _, sr := range result.Scenarios {
			if sr.Pass {
				fmt.Fprintf(out, "PASS  %s\n", sr.Name)
				continue
			}
			fmt.Fprintf(out, "FAIL  %s\n", sr.Name)
			for _, msg := range sr.Errors {
				fmt.Fprintf(out, "      %s\n", msg)
			}
		}
		fmt.Fprintf(out, "\n%d passed, %d failed, %d total\n", result.Passed, result.Failed, result.Total)
	}

	if result.Failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d of %d scenarios failed", result.Failed, result.Total))
	}
	return nil
}

// runScenarioFile validates, loads and executes one scenario file.
// Failures are reported in the result, never as panics.
func runScenarioFile(file string, formatter *OutputFormatter) ScenarioResult {
	formatter.VerboseLog("running scenario %s", file)

	if errs := harness.ValidateScenarioFile(file); len(errs) > 0 {
		msgs := make([]string, len(errs))
		for i, e := range errs {
			msgs[i] = e.Error()
		}
		return ScenarioResult{Name: file, File: file, Errors: msgs}
	}

	scenario, err := harness.LoadScenario(file)
	if err != nil {
		return ScenarioResult{Name: file, File: file, Errors: []string{err.Error()}}
	}

	result, err := harness.Run(scenario)
	if err != nil {
		return ScenarioResult{Name: scenario.Name, File: file, Errors: []string{err.Error()}}
	}

	sr := ScenarioResult{Name: scenario.Name, File: file, Pass: result.Pass}
	for _, e := range result.Errors {
		sr.Errors = append(sr.Errors, e.Error())
	}
	return sr
}
