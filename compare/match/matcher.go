// Package match pairs elements across two element reports using the five
// fixed-confidence strategies in order: test attribute, id, CSS
// selector, XPath, and position, in that priority order, with first-come
// first-served conflict resolution on the compare side.
package match

import (
	"math"
	"sort"

	"github.com/snapdiff/snapdiff/compare/debug"
	"github.com/snapdiff/snapdiff/compare/model"
)

// Match pairs one baseline element with one compare element under the
// strategy and confidence that produced the pairing.
type Match struct {
	BaselineIndex   int
	CompareIndex    int
	Confidence      float64
	Strategy        string
	BaselineElement model.ElementDescriptor
	CompareElement  model.ElementDescriptor
}

// Result is the full output of one Matcher run.
type Result struct {
	Matches           []Match
	UnmatchedBaseline []model.ElementDescriptor
	UnmatchedCompare  []model.ElementDescriptor
}

// Config carries the knobs matching depends on: the minimum
// confidence to emit a match, the confidence above which early-exit is
// taken, the position-matching distance tolerance, and the ordered
// attribute names checked for the test-attribute strategy.
type Config struct {
	MinConfidence     float64
	HighConfidence    float64
	PositionTolerance float64
	TestAttributes    []string
}

const earlyExitConfidence = 0.90
const positionStrategyScale = 0.30

// matchAttempt is one strategy's candidate pairing for a baseline element,
// before the highest-confidence one is picked.
type matchAttempt struct {
	confidence float64
	index      int
	strategy   string
}

// Matcher runs the five-strategy cascade and returns every baseline/compare
// pairing plus the leftovers. Output is emitted in baseline input order
// so earlier baseline elements win contested matches.
func Matcher(baseline, compare []model.ElementDescriptor, cfg Config) Result {
	if cfg.MinConfidence <= 0 {
		cfg.MinConfidence = 0.5
	}
	if cfg.PositionTolerance <= 0 {
		cfg.PositionTolerance = 50
	}
	if len(cfg.TestAttributes) == 0 {
		cfg.TestAttributes = []string{"data-testid", "data-test", "data-qa", "data-cy", "data-automation-id"}
	}

	byTestAttr, byID, byCSS, byXPath := buildLookups(compare, cfg.TestAttributes)
	grid := newSpatialGrid(compare, cfg.PositionTolerance)

	claimed := make([]bool, len(compare))
	var matches []Match
	var unmatchedBaseline []model.ElementDescriptor

	for bi, base := range baseline {
		best, bestIdx, bestStrategy, found := bestMatch(base, compare, claimed, cfg, byTestAttr, byID, byCSS, byXPath, grid)
		if !found || best < cfg.MinConfidence {
			unmatchedBaseline = append(unmatchedBaseline, base)
			continue
		}
		claimed[bestIdx] = true
		matches = append(matches, Match{
			BaselineIndex:   bi,
			CompareIndex:    bestIdx,
			Confidence:      best,
			Strategy:        bestStrategy,
			BaselineElement: base,
			CompareElement:  compare[bestIdx],
		})
	}

	var unmatchedCompare []model.ElementDescriptor
	for i, el := range compare {
		if !claimed[i] {
			unmatchedCompare = append(unmatchedCompare, el)
		}
	}

	if debug.Enabled() {
		debug.LogWithData("match", "matcher", "matched elements by strategy", strategyCounts(matches))
	}

	return Result{Matches: matches, UnmatchedBaseline: unmatchedBaseline, UnmatchedCompare: unmatchedCompare}
}

func strategyCounts(matches []Match) map[string]interface{} {
	counts := make(map[string]interface{})
	for _, m := range matches {
		if n, ok := counts[m.Strategy].(int); ok {
			counts[m.Strategy] = n + 1
		} else {
			counts[m.Strategy] = 1
		}
	}
	return counts
}

func buildLookups(compare []model.ElementDescriptor, testAttrs []string) (
	byTestAttr map[string]int, byID map[string]int, byCSS map[string]int, byXPath map[string]int,
) {
	byTestAttr = make(map[string]int)
	byID = make(map[string]int)
	byCSS = make(map[string]int)
	byXPath = make(map[string]int)

	for i, el := range compare {
		for _, attrName := range testAttrs {
			if v, ok := el.Attributes[attrName]; ok && v != "" {
				key := attrName + "=" + v
				if _, exists := byTestAttr[key]; !exists {
					byTestAttr[key] = i
				}
			}
		}
		if el.ElementID != "" {
			if _, exists := byID[el.ElementID]; !exists {
				byID[el.ElementID] = i
			}
		}
		if el.Selectors.CSS != "" {
			if _, exists := byCSS[el.Selectors.CSS]; !exists {
				byCSS[el.Selectors.CSS] = i
			}
		}
		if el.Selectors.XPath != "" {
			if _, exists := byXPath[el.Selectors.XPath]; !exists {
				byXPath[el.Selectors.XPath] = i
			}
		}
	}
	return
}

// bestMatch tries the five strategies in priority order for one baseline
// element, early-exiting once a candidate reaches cfg.HighConfidence (0.90
// when unset), and otherwise returning the highest-confidence candidate
// across every strategy tried.
func bestMatch(
	base model.ElementDescriptor, compare []model.ElementDescriptor, claimed []bool, cfg Config,
	byTestAttr, byID, byCSS, byXPath map[string]int, grid *spatialGrid,
) (confidence float64, index int, strategy string, found bool) {
	var attempts []matchAttempt
	high := cfg.HighConfidence
	if high <= 0 {
		high = earlyExitConfidence
	}

	for _, attrName := range cfg.TestAttributes {
		if v, ok := base.Attributes[attrName]; ok && v != "" {
			if idx, exists := byTestAttr[attrName+"="+v]; exists && !claimed[idx] {
				attempts = append(attempts, matchAttempt{1.0, idx, "test-attribute"})
			}
		}
	}
	if best, ok := highestConfidence(attempts); ok && best.confidence >= high {
		return best.confidence, best.index, best.strategy, true
	}

	if base.ElementID != "" {
		if idx, exists := byID[base.ElementID]; exists && !claimed[idx] {
			attempts = append(attempts, matchAttempt{0.95, idx, "id"})
		}
	}
	if best, ok := highestConfidence(attempts); ok && best.confidence >= high {
		return best.confidence, best.index, best.strategy, true
	}

	if base.Selectors.CSS != "" {
		if idx, exists := byCSS[base.Selectors.CSS]; exists && !claimed[idx] {
			conf := math.Max(0.85, avgConfidence(base.Selectors.CSSConfidence, compare[idx].Selectors.CSSConfidence))
			attempts = append(attempts, matchAttempt{conf, idx, "css-selector"})
		}
	}
	if best, ok := highestConfidence(attempts); ok && best.confidence >= high {
		return best.confidence, best.index, best.strategy, true
	}

	if base.Selectors.XPath != "" {
		if idx, exists := byXPath[base.Selectors.XPath]; exists && !claimed[idx] {
			conf := math.Max(0.80, avgConfidence(base.Selectors.XPathConfidence, compare[idx].Selectors.XPathConfidence))
			attempts = append(attempts, matchAttempt{conf, idx, "xpath"})
		}
	}
	if best, ok := highestConfidence(attempts); ok && best.confidence >= high {
		return best.confidence, best.index, best.strategy, true
	}

	if base.Position != nil {
		for _, idx := range grid.candidates(base.Position.X, base.Position.Y, base.TagName) {
			if claimed[idx] || compare[idx].Position == nil || compare[idx].TagName != base.TagName {
				continue
			}
			d := distance(*base.Position, *compare[idx].Position)
			if d > cfg.PositionTolerance {
				continue
			}
			conf := math.Max(0.1, 1-d/cfg.PositionTolerance) * positionStrategyScale
			attempts = append(attempts, matchAttempt{conf, idx, "position"})
		}
	}

	best, ok := highestConfidence(attempts)
	if !ok {
		return 0, 0, "", false
	}
	return best.confidence, best.index, best.strategy, true
}

func highestConfidence(attempts []matchAttempt) (matchAttempt, bool) {
	if len(attempts) == 0 {
		return matchAttempt{}, false
	}
	sorted := append([]matchAttempt{}, attempts...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].confidence > sorted[j].confidence })
	return sorted[0], true
}

func avgConfidence(a, b int) float64 {
	return float64(a+b) / 2.0 / 100.0
}

func distance(a, b model.Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}
