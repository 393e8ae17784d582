package selectors

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/andybalholm/cascadia"
	"github.com/snapdiff/snapdiff/compare/selectors/xpathvm"
	"golang.org/x/net/html"
)

// Result is a generated selector or XPath plus the robustness score of the
// strategy that produced it.
type Result struct {
	Value      string
	Confidence int
	Strategy   string
}

// positionalFallbackConfidence is the fixed confidence returned when every
// tiered strategy fails.
const positionalFallbackConfidence = 30

// GenerateCSS produces a CSS selector for target within root's document,
// trying tier groups in order and never returning an empty value.
func GenerateCSS(target, root *html.Node, perStrategyTimeout time.Duration) Result {
	for _, group := range CSSTierGroups() {
		if best, ok := runCSSGroup(group, target, root, perStrategyTimeout); ok {
			return Result{Value: best.Value, Confidence: best.Robustness, Strategy: fmt.Sprintf("css-tier-%d", best.Tier)}
		}
	}
	return Result{Value: positionalFallbackCSS(target), Confidence: positionalFallbackConfidence, Strategy: "positional-fallback"}
}

// GenerateXPath produces an XPath for target within root's document, trying
// tier groups in order and never returning an empty value.
func GenerateXPath(target, root *html.Node, perStrategyTimeout time.Duration) Result {
	for _, group := range XPathTierGroups() {
		if best, ok := runXPathGroup(group, target, root, perStrategyTimeout); ok {
			return Result{Value: best.Value, Confidence: best.Robustness, Strategy: fmt.Sprintf("xpath-tier-%d", best.Tier)}
		}
	}
	return Result{Value: positionalFallbackXPath(target), Confidence: positionalFallbackConfidence, Strategy: "positional-fallback"}
}

// runCSSGroup launches every strategy in group concurrently, waits for all
// to settle (or time out), verifies each surviving candidate against the
// live document (with anchoring if not unique), and returns the
// lowest-tier verified candidate.
func runCSSGroup(group TierGroup, target, root *html.Node, timeout time.Duration) (Candidate, bool) {
	var mu sync.Mutex
	var verified []Candidate
	var wg sync.WaitGroup

	for _, strat := range group.Strategies {
		wg.Add(1)
		go func(s Strategy) {
			defer wg.Done()
			for _, c := range runStrategy(s, target, root, timeout) {
				if final, ok := verifyOrAnchorCSS(root, target, c.Value); ok {
					mu.Lock()
					verified = append(verified, Candidate{Value: final, Tier: c.Tier, Robustness: c.Robustness})
					mu.Unlock()
				}
			}
		}(strat)
	}
	wg.Wait()

	return lowestTier(verified)
}

func runXPathGroup(group TierGroup, target, root *html.Node, timeout time.Duration) (Candidate, bool) {
	var mu sync.Mutex
	var verified []Candidate
	var wg sync.WaitGroup

	for _, strat := range group.Strategies {
		wg.Add(1)
		go func(s Strategy) {
			defer wg.Done()
			for _, c := range runStrategy(s, target, root, timeout) {
				if final, ok := verifyOrDisambiguateXPath(root, target, c.Value); ok {
					mu.Lock()
					verified = append(verified, Candidate{Value: final, Tier: c.Tier, Robustness: c.Robustness})
					mu.Unlock()
				}
			}
		}(strat)
	}
	wg.Wait()

	return lowestTier(verified)
}

// runStrategy isolates one strategy call behind a per-strategy timeout and
// panic recovery: a timed-out or panicking strategy silently yields no
// candidates (a strategy timeout or thrown error is treated as a
// silent null").
func runStrategy(s Strategy, target, root *html.Node, timeout time.Duration) []Candidate {
	done := make(chan []Candidate, 1)
	go func() {
		defer func() {
			if recover() != nil {
				done <- nil
			}
		}()
		done <- s(target, root)
	}()

	select {
	case cands := <-done:
		return cands
	case <-time.After(timeout):
		return nil
	}
}

func lowestTier(candidates []Candidate) (Candidate, bool) {
	if len(candidates) == 0 {
		return Candidate{}, false
	}
	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].Tier < candidates[j].Tier })
	return candidates[0], true
}

// verifyOrAnchorCSS checks that sel resolves to exactly target; if it
// matches more than one element, it walks up to 6 ancestors trying
// "#stableAncestorId <sel>" (or a stable test-attribute anchor), accepting
// the first anchored form that becomes unique.
func verifyOrAnchorCSS(root, target *html.Node, sel string) (string, bool) {
	if ok := cssMatchesExactly(root, target, sel); ok {
		return sel, true
	}

	for _, a := range ancestors(target, 6) {
		id := attrOr(a, "id")
		if IsStable(id) {
			anchored := fmt.Sprintf("#%s %s", escapeCSSIdent(id), sel)
			if cssMatchesExactly(root, target, anchored) {
				return anchored, true
			}
		}
		for _, name := range []string{"data-testid", "data-test", "data-qa"} {
			if v, ok := attr(a, name); ok && v != "" {
				anchored := fmt.Sprintf(`[%s="%s"] %s`, name, escapeCSSString(v), sel)
				if cssMatchesExactly(root, target, anchored) {
					return anchored, true
				}
			}
		}
	}
	return "", false
}

func cssMatchesExactly(root, target *html.Node, sel string) bool {
	compiled, err := cascadia.Compile(sel)
	if err != nil {
		return false
	}
	matches := cascadia.QueryAll(root, compiled)
	return len(matches) == 1 && matches[0] == target
}

// verifyOrDisambiguateXPath checks that path resolves to exactly target;
// if it resolves to more than one element including target, it appends a
// "[N]" position filter selecting target by document order among the
// matches.
func verifyOrDisambiguateXPath(root, target *html.Node, path string) (string, bool) {
	matches := xpathvm.Evaluate(root, path)
	if len(matches) == 0 {
		return "", false
	}
	if len(matches) == 1 {
		if matches[0] == target {
			return path, true
		}
		return "", false
	}

	for i, m := range matches {
		if m == target {
			return fmt.Sprintf("(%s)[%d]", path, i+1), true
		}
	}
	return "", false
}

// positionalFallbackXPath builds an absolute, same-tag-sibling-indexed
// path, breaking early at the first stable-id ancestor. It never returns
// an empty string.
func positionalFallbackXPath(target *html.Node) string {
	var segments []string
	n := target
	for n != nil && n.Type == html.ElementNode {
		id := attrOr(n, "id")
		if IsStable(id) {
			segments = append([]string{fmt.Sprintf(`//*[@id='%s']`, escapeXPathLiteral(id))}, segments...)
			return strings.Join(segments, "")
		}
		segments = append([]string{fmt.Sprintf("/%s[%d]", tag(n), sameTagIndex(n))}, segments...)
		n = n.Parent
	}
	return strings.Join(segments, "")
}

// positionalFallbackCSS is the CSS analog: an nth-of-type chain, breaking
// early at the first stable-id ancestor.
func positionalFallbackCSS(target *html.Node) string {
	var segments []string
	n := target
	for n != nil && n.Type == html.ElementNode {
		id := attrOr(n, "id")
		if IsStable(id) {
			segments = append([]string{"#" + escapeCSSIdent(id)}, segments...)
			return strings.Join(segments, " > ")
		}
		segments = append([]string{fmt.Sprintf("%s:nth-of-type(%d)", tag(n), sameTagIndex(n))}, segments...)
		n = n.Parent
	}
	return strings.Join(segments, " > ")
}
