package compare

import (
	"time"

	"github.com/snapdiff/snapdiff/compare/debug"
	"github.com/snapdiff/snapdiff/compare/diff"
	"github.com/snapdiff/snapdiff/compare/match"
	"github.com/snapdiff/snapdiff/compare/model"
	"github.com/snapdiff/snapdiff/compare/modes"
	"github.com/snapdiff/snapdiff/compare/options"
	"github.com/snapdiff/snapdiff/compare/styles"
)

// ReportMeta is the trimmed-down identity of a report carried into the
// comparison result, without its (potentially large) element list.
type ReportMeta struct {
	ID            string    `json:"id"`
	URL           string    `json:"url"`
	Title         string    `json:"title"`
	Timestamp     time.Time `json:"timestamp"`
	TotalElements int       `json:"totalElements"`
}

// MatchingStats summarizes how the element matcher partitioned the two
// element sets.
type MatchingStats struct {
	TotalMatched      int     `json:"totalMatched"`
	UnmatchedBaseline int     `json:"unmatchedBaseline"`
	UnmatchedCompare  int     `json:"unmatchedCompare"`
	MatchRate         float64 `json:"matchRate"`
}

// Comparison carries the mode, the per-element results and the rolled-up
// summary.
type Comparison struct {
	Mode    string                 `json:"mode"`
	Results []diff.ElementResult   `json:"results"`
	Summary modes.Summary          `json:"summary"`
}

// ElementSummary is a minimal description of an element that did not find
// a match on the other side.
type ElementSummary struct {
	ElementID string `json:"elementId"`
	TagName   string `json:"tagName"`
}

// UnmatchedElements groups the unmatched-element summaries from both
// sides of a comparison.
type UnmatchedElements struct {
	Baseline []ElementSummary `json:"baseline"`
	Compare  []ElementSummary `json:"compare"`
}

// ComparisonResult is the full output of one Comparator.Compare call,
// matching the documented output schema.
type ComparisonResult struct {
	Baseline          ReportMeta        `json:"baseline"`
	Compare           ReportMeta        `json:"compare"`
	Mode              string            `json:"mode"`
	Matching          MatchingStats     `json:"matching"`
	Comparison        Comparison        `json:"comparison"`
	UnmatchedElements UnmatchedElements `json:"unmatchedElements"`
	DurationMS        int64             `json:"duration"`
	Timestamp         time.Time         `json:"timestamp"`
}

// Comparator is the end-to-end facade: it owns the frozen configuration
// and the normalizer built from it, and exposes Compare as the single
// entry point a caller needs.
type Comparator struct {
	cfg        *options.Config
	normalizer *styles.Normalizer
}

// NewComparator builds a Comparator from cfg. Passing nil uses
// options.DefaultConfig().
func NewComparator(cfg *options.Config) *Comparator {
	if cfg == nil {
		cfg = options.DefaultConfig()
	}
	cache := styles.NewCache(cfg.Normalization.CacheEnabled, cfg.Normalization.CacheMaxEntries)
	normalizer := styles.NewNormalizer(cache, cfg.Normalization.RoundingDecimals)
	return &Comparator{cfg: cfg, normalizer: normalizer}
}

// Compare runs a full baseline-vs-compare comparison under the named mode
// ("static" or "dynamic"). An unrecognized mode fails loudly with an
// *Error rather than silently defaulting.
func (c *Comparator) Compare(baseline, compareReport model.Report, mode string) (*ComparisonResult, error) {
	start := time.Now()

	filter, ok := c.cfg.Filter(mode)
	if !ok {
		return nil, ErrInvalidMode(mode)
	}

	matchCfg := match.Config{
		MinConfidence:     c.cfg.Confidence.Min,
		HighConfidence:    c.cfg.Confidence.High,
		PositionTolerance: c.cfg.Matching.PositionTolerance,
		TestAttributes:    c.cfg.Attributes.Priority,
	}
	matchResult := match.Matcher(baseline.Elements, compareReport.Elements, matchCfg)

	results := make([]diff.ElementResult, 0, len(matchResult.Matches))
	for _, m := range matchResult.Matches {
		results = append(results, diff.CompareElements(m.BaselineElement, m.CompareElement, filter, c.normalizer))
	}

	summary := modes.Assemble(results)
	matchRate := modes.MatchRate(len(matchResult.Matches), len(baseline.Elements))

	result := &ComparisonResult{
		Baseline: ReportMeta{
			ID: baseline.ID, URL: baseline.URL, Title: baseline.Title,
			Timestamp: baseline.Timestamp, TotalElements: len(baseline.Elements),
		},
		Compare: ReportMeta{
			ID: compareReport.ID, URL: compareReport.URL, Title: compareReport.Title,
			Timestamp: compareReport.Timestamp, TotalElements: len(compareReport.Elements),
		},
		Mode: mode,
		Matching: MatchingStats{
			TotalMatched:      len(matchResult.Matches),
			UnmatchedBaseline: len(matchResult.UnmatchedBaseline),
			UnmatchedCompare:  len(matchResult.UnmatchedCompare),
			MatchRate:         matchRate,
		},
		Comparison: Comparison{
			Mode:    mode,
			Results: results,
			Summary: summary,
		},
		UnmatchedElements: UnmatchedElements{
			Baseline: summarize(matchResult.UnmatchedBaseline),
			Compare:  summarize(matchResult.UnmatchedCompare),
		},
		Timestamp: start,
	}
	result.DurationMS = time.Since(start).Milliseconds()

	if debug.Enabled() {
		cacheStats := c.normalizer.CacheStats()
		debug.LogWithData("compare", "normalize", "normalization cache stats", map[string]interface{}{
			"hitRate":         cacheStats.HitRate(),
			"absoluteEntries": cacheStats.AbsoluteHits + cacheStats.AbsoluteMisses,
			"relativeEntries": cacheStats.RelativeHits + cacheStats.RelativeMisses,
		})
		debug.LogTiming("compare", "compare", "comparison complete", result.DurationMS)
	}

	return result, nil
}

func summarize(elements []model.ElementDescriptor) []ElementSummary {
	out := make([]ElementSummary, 0, len(elements))
	for _, e := range elements {
		out = append(out, ElementSummary{ElementID: e.ID, TagName: e.TagName})
	}
	return out
}
