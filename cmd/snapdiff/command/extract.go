package command

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/snapdiff/snapdiff/extract"
)

// NewExtractCommand creates the extract command.
func NewExtractCommand() *cobra.Command {
	var id, url string
	var selectorTimeout time.Duration

	cmd := &cobra.Command{
		Use:   "extract [file.html]",
		Short: "Extract an element report from an HTML file",
		Long: `Parse an HTML file and print the resulting element report as
JSON, the same shape a snapshot tool would hand to compare.

Examples:
  snapdiff extract page.html
  snapdiff extract page.html --id baseline > baseline.json`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			path := args[0]

			raw, err := os.ReadFile(path)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", path, err)
				os.Exit(1)
			}

			reportURL := url
			if reportURL == "" {
				reportURL = path
			}

			report, err := extract.FromHTML(string(raw), id, reportURL, path, selectorTimeout)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error extracting %s: %v\n", path, err)
				os.Exit(1)
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(report); err != nil {
				fmt.Fprintf(os.Stderr, "Error encoding report: %v\n", err)
				os.Exit(1)
			}
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "report id (defaults to empty)")
	cmd.Flags().StringVar(&url, "url", "", "report url (defaults to the file path)")
	cmd.Flags().DurationVar(&selectorTimeout, "selector-timeout", 50*time.Millisecond, "per-strategy selector generation timeout")

	return cmd
}
