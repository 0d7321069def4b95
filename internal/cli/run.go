package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/shapelab/shapelab/internal/demo"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions

	// Tokens allows overriding the run token generator (for testing).
	// If nil, defaults to UUIDv7Generator.
	Tokens demo.TokenGenerator
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "run [demo ...]",
		Short: "Run demonstrations and print their transcripts",
		Long: `Run registered demonstrations and print their transcripts.

With no arguments every registered demo runs in registry order;
otherwise only the named demos run, in the given order.

Example:
  shapelab run
  shapelab run move-animal use-vehicle
  shapelab run --format json overload-add`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemos(opts, args, cmd)
		},
	}

	return cmd
}

// transcriptPayload is the JSON shape of one transcript in run output.
type transcriptPayload struct {
	Demo     string      `json:"demo"`
	RunToken string      `json:"run_token"`
	Lines    []demo.Line `json:"lines"`
}

func runDemos(opts *RunOptions, names []string, cmd *cobra.Command) error {
	// Configure logging based on verbose flag
	logLevel := slog.LevelInfo
	if opts.Verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))

	tokens := opts.Tokens
	if tokens == nil {
		tokens = demo.UUIDv7Generator{}
	}
	runner := demo.NewRunner(tokens, logger)

	if len(names) == 0 {
		for _, d := range demo.All() {
			names = append(names, d.Name)
		}
	}

	ctx := cmd.Context()
	transcripts := make([]*demo.Transcript, 0, len(names))
	for _, name := range names {
		tr, err := runner.Run(ctx, name)
		if err != nil {
			if demo.IsUnknownDemo(err) {
				return WrapExitError(ExitCommandError, fmt.Sprintf("unknown demo %q", name), err)
			}
			return WrapExitError(ExitFailure, fmt.Sprintf("demo %q failed", name), err)
		}
		transcripts = append(transcripts, tr)
	}

	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	if opts.Format == "json" {
		payload := make([]transcriptPayload, len(transcripts))
		for i, tr := range transcripts {
			payload[i] = transcriptPayload{
				Demo:     tr.Demo,
				RunToken: tr.RunToken,
				Lines:    tr.Lines,
			}
		}
		return formatter.Success(payload)
	}

	out := cmd.OutOrStdout()
	for _, tr := range transcripts {
		fmt.Fprintf(out, "=== %s\n", tr.Demo)
		for _, line := range tr.Lines {
			fmt.Fprintf(out, "  [%d] %s\n", line.Seq, line.Text)
		}
	}
	return nil
}
