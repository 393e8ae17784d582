package selectors

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// cssTierRobustness is the fixed tier→robustness table for CSS strategies
// (tiers 1->10, robustness 100 -> 19).
var cssTierRobustness = map[int]int{
	1: 100, 2: 91, 3: 82, 4: 73, 5: 64,
	6: 55, 7: 46, 8: 37, 9: 28, 10: 19,
}

func cssCandidate(tier int, value string) Candidate {
	return Candidate{Value: value, Tier: tier, Robustness: cssTierRobustness[tier]}
}

// CSSTierGroups returns the three concurrency groups for CSS selector
// generation: tiers <=4, 5-7, 8-10.
func CSSTierGroups() []TierGroup {
	return []TierGroup{
		{Strategies: []Strategy{cssByID, cssByDataTestAttrs, cssByCombinedDataAttrs, cssByTypeAndName}},
		{Strategies: []Strategy{cssByStableClasses, cssByParentIDChild, cssByAncestorIDDescendant}},
		{Strategies: []Strategy{cssByPseudoClass, cssByNthChild, cssByNthOfType}},
	}
}

// cssByID (tier 1): #id, the highest-robustness strategy.
func cssByID(target, root *html.Node) []Candidate {
	id := attrOr(target, "id")
	if !IsStable(id) {
		return nil
	}
	return []Candidate{cssCandidate(1, "#"+escapeCSSIdent(id))}
}

// cssByDataTestAttrs (tier 2): a single test attribute, e.g. [data-testid="x"].
func cssByDataTestAttrs(target, root *html.Node) []Candidate {
	var out []Candidate
	for _, name := range []string{"data-testid", "data-test", "data-qa", "data-cy", "data-automation-id"} {
		if v, ok := attr(target, name); ok && v != "" {
			out = append(out, cssCandidate(2, fmt.Sprintf(`[%s="%s"]`, name, escapeCSSString(v))))
		}
	}
	return out
}

// cssByCombinedDataAttrs (tier 3): two data-* attributes combined for extra
// specificity beyond a single test attribute.
func cssByCombinedDataAttrs(target, root *html.Node) []Candidate {
	attrs := dataAttrs(target)
	if len(attrs) < 2 {
		return nil
	}
	var parts []string
	for k, v := range attrs {
		parts = append(parts, fmt.Sprintf(`[%s="%s"]`, k, escapeCSSString(v)))
		if len(parts) == 2 {
			break
		}
	}
	return []Candidate{cssCandidate(3, tag(target)+strings.Join(parts, ""))}
}

// cssByTypeAndName (tier 4): tag[type][name], common for form controls.
func cssByTypeAndName(target, root *html.Node) []Candidate {
	typ, hasType := attr(target, "type")
	name, hasName := attr(target, "name")
	if !hasType && !hasName {
		return nil
	}
	sel := tag(target)
	if hasType {
		sel += fmt.Sprintf(`[type="%s"]`, escapeCSSString(typ))
	}
	if hasName {
		sel += fmt.Sprintf(`[name="%s"]`, escapeCSSString(name))
	}
	return []Candidate{cssCandidate(4, sel)}
}

// cssByStableClasses (tier 5): up to three stable class tokens.
func cssByStableClasses(target, root *html.Node) []Candidate {
	classes := StableClasses(attrOr(target, "class"), 3)
	if len(classes) == 0 {
		return nil
	}
	sel := tag(target)
	for _, c := range classes {
		sel += "." + escapeCSSIdent(c)
	}
	return []Candidate{cssCandidate(5, sel)}
}

// cssByParentIDChild (tier 6): #parentId > child.
func cssByParentIDChild(target, root *html.Node) []Candidate {
	if target.Parent == nil {
		return nil
	}
	parentID := attrOr(target.Parent, "id")
	if !IsStable(parentID) {
		return nil
	}
	return []Candidate{cssCandidate(6, fmt.Sprintf("#%s > %s", escapeCSSIdent(parentID), tag(target)))}
}

// cssByAncestorIDDescendant (tier 7): #ancestorId descendant.
func cssByAncestorIDDescendant(target, root *html.Node) []Candidate {
	for _, a := range ancestors(target, 6) {
		id := attrOr(a, "id")
		if IsStable(id) {
			return []Candidate{cssCandidate(7, fmt.Sprintf("#%s %s", escapeCSSIdent(id), tag(target)))}
		}
	}
	return nil
}

var pseudoClassesToCheck = []string{"disabled", "required", "checked", "read-only"}

// cssByPseudoClass (tier 8): tag:pseudo for state-carrying attributes.
func cssByPseudoClass(target, root *html.Node) []Candidate {
	var out []Candidate
	for _, p := range pseudoClassesToCheck {
		if _, ok := attr(target, p); ok {
			out = append(out, cssCandidate(8, tag(target)+":"+p))
		}
	}
	return out
}

// cssByNthChild (tier 9): tag:nth-child(n) relative to the parent.
func cssByNthChild(target, root *html.Node) []Candidate {
	if target.Parent == nil {
		return nil
	}
	return []Candidate{cssCandidate(9, fmt.Sprintf("%s:nth-child(%d)", tag(target), childIndex(target)))}
}

// cssByNthOfType (tier 10): the weakest CSS strategy, tag:nth-of-type(n).
func cssByNthOfType(target, root *html.Node) []Candidate {
	if target.Parent == nil {
		return nil
	}
	return []Candidate{cssCandidate(10, fmt.Sprintf("%s:nth-of-type(%d)", tag(target), sameTagIndex(target)))}
}

func escapeCSSIdent(s string) string {
	var sb strings.Builder
	for _, r := range s {
		switch {
		case r == '_' || r == '-' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9'):
			sb.WriteRune(r)
		default:
			sb.WriteByte('\\')
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

func escapeCSSString(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}
