package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shapelab/shapelab/internal/harness"
)

// ValidationResult holds validation results for one scenario file.
type ValidationResult struct {
	File   string                    `json:"file"`
	Valid  bool                      `json:"valid"`
	Errors []harness.ValidationError `json:"errors,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <scenario-file-or-dir>",
		Short: "Validate scenario files without running them",
		Long: `Validate scenario YAML files against the scenario schema.

Performs YAML parsing and CUE schema validation without executing any
demo. Faster than test for development feedback.

Exit codes:
  0 - All files valid
  1 - One or more files invalid
  2 - Command error (path not found, etc.)`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, path string, cmd *cobra.Command) error {
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

	results := make([]ValidationResult, 0, len(files))
	invalid := 0
	for _, file := range files {
		formatter.VerboseLog("validating %s", file)
		errs := harness.ValidateScenarioFile(file)
		results = append(results, ValidationResult{
			File:   file,
			Valid:  len(errs) == 0,
			Errors: errs,
		})
		if len(errs) > 0 {
			invalid++
		}
	}

	if opts.Format == "json" {
		if err := formatter.Success(results); err != nil {
			return err
		}
	} else {
		out := cmd.OutOrStdout()
		for _, r := range results {
			if r.Valid {
				fmt.Fprintf(out, "ok    %s\n", r.File)
				continue
			}
			fmt.Fprintf(out, "FAIL  %s\n", r.File)
			for _, e := range r.Errors {
				fmt.Fprintf(out, "      %s\n", e.Error())
			}
		}
	}

	if invalid > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d of %d scenario files invalid", invalid, len(files)))
	}
	return nil
}

// findScenarioFiles returns the YAML files under path, or path itself
// when it names a single file.
func findScenarioFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("path not found: %s", path)
	}
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		return []string{path}, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml") {
			files = append(files, filepath.Join(path, name))
		}
	}
	return files, nil
}
