// Package modes selects the static/dynamic filter preset for a comparison
// and assembles the per-mode summary rollup over a set of per-element
// diff results.
package modes

import (
	"math"

	"github.com/snapdiff/snapdiff/compare/diff"
	"github.com/snapdiff/snapdiff/compare/options"
)

// Summary is the aggregated outcome across every matched element pair in
// one comparison.
type Summary struct {
	TotalElements     int                  `json:"totalElements"`
	UnchangedElements int                  `json:"unchangedElements"`
	ModifiedElements  int                  `json:"modifiedElements"`
	TotalDifferences  int                  `json:"totalDifferences"`
	SeverityCounts    diff.SeverityCounts  `json:"severityCounts"`
}

// Resolve looks up the ModeFilter for mode ("static" or "dynamic") from cfg.
// The caller is expected to fail loudly (via options.Config.Filter's own
// ok return) on an unrecognized mode; Resolve just forwards that contract.
func Resolve(cfg *options.Config, mode string) (options.ModeFilter, bool) {
	return cfg.Filter(mode)
}

// Assemble rolls up a slice of per-element diff results into a Summary.
// An element with zero differences counts as unchanged; any other element
// counts as modified. Severity counts are summed across every element's
// differences, not just the element's single overall severity.
func Assemble(results []diff.ElementResult) Summary {
	var s Summary
	s.TotalElements = len(results)

	for _, r := range results {
		if r.TotalDifferences == 0 {
			s.UnchangedElements++
		} else {
			s.ModifiedElements++
		}
		s.TotalDifferences += r.TotalDifferences

		counts := diff.CountSeverities(r.Differences)
		s.SeverityCounts.Critical += counts.Critical
		s.SeverityCounts.High += counts.High
		s.SeverityCounts.Medium += counts.Medium
		s.SeverityCounts.Low += counts.Low
	}

	return s
}

// MatchRate computes the percentage of baseline elements that found a
// match, rounded to the nearest whole percent. A zero-element baseline
// reports a 100% match rate (nothing to miss).
func MatchRate(matched, baselineTotal int) float64 {
	if baselineTotal == 0 {
		return 100
	}
	return math.Round(float64(matched) / float64(baselineTotal) * 100)
}
