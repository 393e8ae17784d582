package command

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"

	"github.com/snapdiff/snapdiff/compare"
	"github.com/snapdiff/snapdiff/compare/diff"
	"github.com/snapdiff/snapdiff/compare/options"
	"github.com/snapdiff/snapdiff/extract"
	"github.com/snapdiff/snapdiff/internal/htmlutil"
)

// ANSI color constants for severity-ranked output.
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorGreen  = "\033[32m"
	colorCyan   = "\033[36m"
)

// NewCompareCommand creates the compare command.
func NewCompareCommand() *cobra.Command {
	var mode string
	var format string
	var selectorTimeout time.Duration

	cmd := &cobra.Command{
		Use:   "compare [baseline.html] [compare.html]",
		Short: "Compare two HTML snapshots",
		Long: `Extract element descriptors from two HTML files and print a
severity-ranked visual-regression summary.

Examples:
  snapdiff compare baseline.html compare.html
  snapdiff compare baseline.html compare.html --mode dynamic`,
		Args: cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			baselinePath, comparePath := args[0], args[1]

			baselineHTML, err := os.ReadFile(baselinePath)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error reading baseline file: %v\n", err)
				os.Exit(1)
			}
			compareHTML, err := os.ReadFile(comparePath)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error reading compare file: %v\n", err)
				os.Exit(1)
			}

			baselineReport, err := extract.FromHTML(string(baselineHTML), "baseline", baselinePath, baselinePath, selectorTimeout)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error extracting baseline: %v\n", err)
				os.Exit(1)
			}
			compareReport, err := extract.FromHTML(string(compareHTML), "compare", comparePath, comparePath, selectorTimeout)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error extracting compare file: %v\n", err)
				os.Exit(1)
			}

			comparator := compare.NewComparator(options.DefaultConfig())
			result, err := comparator.Compare(baselineReport, compareReport, mode)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}

			if format == "html" {
				fmt.Println(renderHTMLReport(result))
			} else {
				printSummary(result)
			}
		},
	}

	cmd.Flags().StringVarP(&mode, "mode", "m", "static", "comparison mode: static or dynamic")
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text or html")
	cmd.Flags().DurationVar(&selectorTimeout, "selector-timeout", 50*time.Millisecond, "per-strategy selector generation timeout")

	return cmd
}

// renderHTMLReport builds a standalone HTML table of every modified
// element's differences, one row per difference, classed by severity so
// a stylesheet can color-code the report without any JavaScript.
func renderHTMLReport(result *compare.ComparisonResult) string {
	var sb strings.Builder

	htmlutil.NewTag("h1").RenderText(&sb, fmt.Sprintf("%s vs %s (%s mode)", result.Baseline.URL, result.Compare.URL, result.Mode))
	htmlutil.NewTag("table").AddAttribute("border", "1").RenderOpen(&sb)

	header := htmlutil.NewTag("tr")
	header.RenderOpen(&sb)
	for _, col := range []string{"Element", "Property", "Severity", "Baseline", "Compare"} {
		htmlutil.NewTag("th").RenderText(&sb, col)
	}
	header.RenderClose(&sb)

	for _, elementResult := range result.Comparison.Results {
		for _, d := range elementResult.Differences {
			row := htmlutil.NewTag("tr").AddClass(string(d.Severity))
			row.RenderOpen(&sb)
			htmlutil.NewTag("td").RenderText(&sb, elementResult.ElementID)
			htmlutil.NewTag("td").RenderText(&sb, d.Property)
			htmlutil.NewTag("td").RenderText(&sb, string(d.Severity))
			htmlutil.NewTag("td").RenderText(&sb, d.BaseValue)
			htmlutil.NewTag("td").RenderText(&sb, d.CompareValue)
			row.RenderClose(&sb)
		}
	}

	htmlutil.NewTag("table").RenderClose(&sb)
	return sb.String()
}

func printSummary(result *compare.ComparisonResult) {
	fmt.Printf("%s vs %s (%s mode)\n", result.Baseline.URL, result.Compare.URL, result.Mode)
	fmt.Printf("matched %d/%d elements (%.0f%% match rate)\n\n",
		result.Matching.TotalMatched, result.Baseline.TotalElements, result.Matching.MatchRate)

	counts := result.Comparison.Summary.SeverityCounts
	fmt.Printf("%d critical, %d high, %d medium, %d low — %d total differences across %d modified elements\n\n",
		counts.Critical, counts.High, counts.Medium, counts.Low,
		result.Comparison.Summary.TotalDifferences, result.Comparison.Summary.ModifiedElements)

	for _, elementResult := range result.Comparison.Results {
		if elementResult.TotalDifferences == 0 {
			continue
		}
		printElementResult(elementResult)
	}

	fmt.Printf("\ndone in %dms\n", result.DurationMS)
}

func printElementResult(r diff.ElementResult) {
	fmt.Printf("%s<%s> %s (%d differences)%s\n", colorCyan, r.TagName, r.ElementID, r.TotalDifferences, colorReset)

	diffs := append([]diff.Difference(nil), r.Differences...)
	sort.SliceStable(diffs, func(i, j int) bool { return severityRank(diffs[i].Severity) > severityRank(diffs[j].Severity) })

	for _, d := range diffs {
		color := severityColor(d.Severity)
		if d.Property == "textContent" {
			printTextDiff(d)
			continue
		}
		fmt.Printf("  %s[%s] %s: %q -> %q%s\n", color, d.Severity, d.Property, d.BaseValue, d.CompareValue, colorReset)
	}
}

func printTextDiff(d diff.Difference) {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(d.BaseValue, d.CompareValue, false)
	fmt.Printf("  [%s] textContent: ", d.Severity)
	for _, part := range diffs {
		switch part.Type {
		case diffmatchpatch.DiffInsert:
			fmt.Print(colorGreen + part.Text + colorReset)
		case diffmatchpatch.DiffDelete:
			fmt.Print(colorRed + part.Text + colorReset)
		default:
			fmt.Print(part.Text)
		}
	}
	fmt.Println()
}

func severityColor(s diff.Severity) string {
	switch s {
	case diff.SeverityCritical:
		return colorRed
	case diff.SeverityHigh:
		return colorRed
	case diff.SeverityMedium:
		return colorYellow
	default:
		return colorGreen
	}
}

func severityRank(s diff.Severity) int {
	switch s {
	case diff.SeverityCritical:
		return 3
	case diff.SeverityHigh:
		return 2
	case diff.SeverityMedium:
		return 1
	default:
		return 0
	}
}
