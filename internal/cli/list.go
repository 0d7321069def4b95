package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shapelab/shapelab/internal/demo"
)

// demoInfo is the JSON shape of one registry entry in list output.
type demoInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered demonstrations",
		Long: `List every registered demonstration in registry order.

Example:
  shapelab list
  shapelab list --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(rootOpts, cmd)
		},
	}

	return cmd
}

func runList(opts *RootOptions, cmd *cobra.Command) error {
	demos := demo.All()

	if opts.Format == "json" {
		formatter := &OutputFormatter{
			Format: opts.Format,
			Writer: cmd.OutOrStdout(),
		}
		infos := make([]demoInfo, len(demos))
		for i, d := range demos {
			infos[i] = demoInfo{Name: d.Name, Description: d.Description}
		}
		return formatter.Success(infos)
	}

	out := cmd.OutOrStdout()
	for _, d := range demos {
		fmt.Fprintf(out, "%-18s %s\n", d.Name, d.Description)
	}
	return nil
}
