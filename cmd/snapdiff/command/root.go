package command

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Execute runs the root command.
func Execute() {
	rootCmd := &cobra.Command{
		Use:   "snapdiff",
		Short: "Visual regression comparator for two HTML snapshots",
		Long: `snapdiff extracts element descriptors from two rendered HTML
snapshots and reports their visual differences, ranked by severity.

Available Commands:
  compare    Compare two HTML files (default)
  extract    Extract a single HTML file into a JSON element report`,
	}

	rootCmd.AddCommand(NewCompareCommand())
	rootCmd.AddCommand(NewExtractCommand())

	rootCmd.Run = func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			cmd.Help()
			return
		}
		compareCmd := NewCompareCommand()
		compareCmd.Run(cmd, args)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
