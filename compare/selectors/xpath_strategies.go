package selectors

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// xpathTierRobustness is the fixed tier->robustness table for XPath
// strategies (tiers 0->21, robustness 99 -> 36). Tier 22
// (global (//*)[N]) is never generated — positional fallback replaces it.
var xpathTierRobustness = map[int]int{
	0: 99, 1: 96, 2: 93, 3: 90, 4: 87, 5: 84, 6: 81, 7: 78, 8: 75, 9: 72, 10: 69,
	11: 66, 12: 63, 13: 60, 14: 57, 15: 54, 16: 51, 17: 48, 18: 45, 19: 42, 20: 39, 21: 36,
}

func xpathCandidate(tier int, value string) Candidate {
	return Candidate{Value: value, Tier: tier, Robustness: xpathTierRobustness[tier]}
}

// XPathTierGroups returns the four concurrency groups for XPath selector
// generation: tiers <=5, 6-10, 11-15, 16-21.
func XPathTierGroups() []TierGroup {
	return []TierGroup{
		{Strategies: []Strategy{
			xpByExactText, xpByTestAttrs, xpByStableID, xpByNormalizedText, xpByStableAttributes, xpByDataAttrs,
		}},
		{Strategies: []Strategy{
			xpBySemanticAncestorID, xpByFollowingSiblingText, xpBySiblingContext, xpByAncestorChain, xpByTypeAndName,
		}},
		{Strategies: []Strategy{
			xpByAriaLabel, xpByPartialText, xpByParentWithID, xpByClassCombo, xpByAncestorAnyStableAttr,
		}},
		{Strategies: []Strategy{
			xpByRole, xpByHrefOrSrc, xpByAltOrTitle, xpByAbsolutePath, xpByTagPositionInParent, xpByTypePositionInGrandparent,
		}},
	}
}

// xpByExactText (tier 0): the highest-confidence XPath strategy, matching
// on the element's complete trimmed text.
func xpByExactText(target, root *html.Node) []Candidate {
	text := textOf(target)
	if text == "" || len(text) > 80 || !IsStaticText(text) {
		return nil
	}
	return []Candidate{xpathCandidate(0, fmt.Sprintf(`//%s[contains(normalize-space(.), '%s')]`, tag(target), escapeXPathLiteral(text)))}
}

// xpByTestAttrs (tier 1).
func xpByTestAttrs(target, root *html.Node) []Candidate {
	var out []Candidate
	for _, name := range []string{"data-testid", "data-test", "data-qa", "data-cy", "data-automation-id"} {
		if v, ok := attr(target, name); ok && v != "" {
			out = append(out, xpathCandidate(1, fmt.Sprintf(`//%s[@%s='%s']`, tag(target), name, escapeXPathLiteral(v))))
		}
	}
	return out
}

// xpByStableID (tier 2).
func xpByStableID(target, root *html.Node) []Candidate {
	id := attrOr(target, "id")
	if !IsStable(id) {
		return nil
	}
	return []Candidate{xpathCandidate(2, fmt.Sprintf(`//%s[@id='%s']`, tag(target), escapeXPathLiteral(id)))}
}

// xpByNormalizedText (tier 3): a shorter, whitespace-normalized text match,
// useful when the full text is too volatile to match exactly.
func xpByNormalizedText(target, root *html.Node) []Candidate {
	text := normalizeSpace(textOf(target))
	if text == "" || !IsStaticText(text) {
		return nil
	}
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	snippet := words[0]
	if len(words) > 1 {
		snippet = words[0] + " " + words[1]
	}
	return []Candidate{xpathCandidate(3, fmt.Sprintf(`//%s[contains(normalize-space(.), '%s')]`, tag(target), escapeXPathLiteral(snippet)))}
}

// xpByStableAttributes (tier 4): the first stable non-id, non-data
// attribute present.
func xpByStableAttributes(target, root *html.Node) []Candidate {
	for _, name := range stableAttrNames {
		if v, ok := attr(target, name); ok && v != "" && IsStable(v) {
			return []Candidate{xpathCandidate(4, fmt.Sprintf(`//%s[@%s='%s']`, tag(target), name, escapeXPathLiteral(v)))}
		}
	}
	return nil
}

// xpByDataAttrs (tier 5): any data-* attribute not already covered by the
// fixed test-attribute list.
func xpByDataAttrs(target, root *html.Node) []Candidate {
	for k, v := range dataAttrs(target) {
		if v == "" {
			continue
		}
		return []Candidate{xpathCandidate(5, fmt.Sprintf(`//%s[@%s='%s']`, tag(target), k, escapeXPathLiteral(v)))}
	}
	return nil
}

// xpBySemanticAncestorID (tier 6): nearest stable-id ancestor, descendant
// axis down to the target tag.
func xpBySemanticAncestorID(target, root *html.Node) []Candidate {
	for _, a := range ancestors(target, 8) {
		id := attrOr(a, "id")
		if IsStable(id) {
			return []Candidate{xpathCandidate(6, fmt.Sprintf(`//%s[@id='%s']//%s`, tag(a), escapeXPathLiteral(id), tag(target)))}
		}
	}
	return nil
}

// xpByFollowingSiblingText (tier 7): locate via a preceding sibling's text
// plus the following-sibling axis, useful for label/input pairs.
func xpByFollowingSiblingText(target, root *html.Node) []Candidate {
	precedingText, ok := precedingSiblingText(target)
	if !ok || precedingText == "" || target.PrevSibling == nil || !IsStaticText(precedingText) {
		return nil
	}
	prevTag := ""
	for c := target.PrevSibling; c != nil; c = c.PrevSibling {
		if c.Type == html.ElementNode {
			prevTag = tag(c)
			break
		}
	}
	if prevTag == "" {
		return nil
	}
	return []Candidate{xpathCandidate(7, fmt.Sprintf(`//%s[contains(normalize-space(.), '%s')]/following-sibling::%s[1]`,
		prevTag, escapeXPathLiteral(precedingText), tag(target)))}
}

// xpBySiblingContext (tier 8): index the target among its same-tag
// siblings, scoped under the immediate parent tag. Ancestor ids are not
// consulted.
func xpBySiblingContext(target, root *html.Node) []Candidate {
	if target.Parent == nil {
		return nil
	}
	idx := sameTagIndex(target)
	parentTag := tag(target.Parent)
	if parentTag == "" {
		return nil
	}
	return []Candidate{xpathCandidate(8, fmt.Sprintf(`//%s/%s[%d]`, parentTag, tag(target), idx))}
}

// xpByAncestorChain (tier 9): two-level ancestor/parent tag chain.
func xpByAncestorChain(target, root *html.Node) []Candidate {
	anc := ancestors(target, 2)
	if len(anc) < 2 {
		return nil
	}
	return []Candidate{xpathCandidate(9, fmt.Sprintf(`//%s//%s/%s`, tag(anc[1]), tag(anc[0]), tag(target)))}
}

// xpByTypeAndName (tier 10).
func xpByTypeAndName(target, root *html.Node) []Candidate {
	typ, hasType := attr(target, "type")
	name, hasName := attr(target, "name")
	if !hasType || !hasName {
		return nil
	}
	return []Candidate{xpathCandidate(10, fmt.Sprintf(`//%s[@type='%s'][@name='%s']`, tag(target), escapeXPathLiteral(typ), escapeXPathLiteral(name)))}
}

// xpByAriaLabel (tier 11).
func xpByAriaLabel(target, root *html.Node) []Candidate {
	v, ok := attr(target, "aria-label")
	if !ok || v == "" {
		return nil
	}
	return []Candidate{xpathCandidate(11, fmt.Sprintf(`//%s[@aria-label='%s']`, tag(target), escapeXPathLiteral(v)))}
}

// xpByPartialText (tier 12): contains(normalize-space(.), ...) over a
// short fragment, the last resort before structural strategies.
func xpByPartialText(target, root *html.Node) []Candidate {
	text := normalizeSpace(textOf(target))
	if text == "" || !IsStaticText(text) {
		return nil
	}
	fragment := text
	if len(fragment) > 24 {
		fragment = fragment[:24]
	}
	return []Candidate{xpathCandidate(12, fmt.Sprintf(`//%s[contains(normalize-space(.), '%s')]`, tag(target), escapeXPathLiteral(fragment)))}
}

// xpByParentWithID (tier 13): parent's id plus, if the parent has more than
// one same-tag child, a position index.
func xpByParentWithID(target, root *html.Node) []Candidate {
	if target.Parent == nil {
		return nil
	}
	parentID := attrOr(target.Parent, "id")
	if !IsStable(parentID) {
		return nil
	}
	sameTagSiblings := 0
	for _, sib := range elementSiblings(target) {
		if tag(sib) == tag(target) {
			sameTagSiblings++
		}
	}
	base := fmt.Sprintf(`//*[@id='%s']/%s`, escapeXPathLiteral(parentID), tag(target))
	if sameTagSiblings > 1 {
		base = fmt.Sprintf(`%s[%d]`, base, sameTagIndex(target))
	}
	return []Candidate{xpathCandidate(13, base)}
}

// xpByClassCombo (tier 14): stable class combinations, a single class and,
// when a second stable class is present, a class pair — one strategy
// emitting up to two candidates, same as the other multi-candidate tiers.
func xpByClassCombo(target, root *html.Node) []Candidate {
	classes := StableClasses(attrOr(target, "class"), 2)
	if len(classes) == 0 {
		return nil
	}
	out := []Candidate{xpathCandidate(14, fmt.Sprintf(`//%s[contains(concat(' ', normalize-space(@class), ' '), ' %s ')]`, tag(target), classes[0]))}
	if len(classes) >= 2 {
		out = append(out, xpathCandidate(14, fmt.Sprintf(
			`//%s[contains(concat(' ', normalize-space(@class), ' '), ' %s ')][contains(concat(' ', normalize-space(@class), ' '), ' %s ')]`,
			tag(target), classes[0], classes[1])))
	}
	return out
}

// xpByAncestorAnyStableAttr (tier 15): first ancestor carrying any stable
// attribute at all, not just id.
func xpByAncestorAnyStableAttr(target, root *html.Node) []Candidate {
	for _, a := range ancestors(target, 8) {
		for _, name := range stableAttrNames {
			if v, ok := attr(a, name); ok && IsStable(v) {
				return []Candidate{xpathCandidate(15, fmt.Sprintf(`//%s[@%s='%s']//%s`, tag(a), name, escapeXPathLiteral(v), tag(target)))}
			}
		}
	}
	return nil
}

// xpByRole (tier 16).
func xpByRole(target, root *html.Node) []Candidate {
	v, ok := attr(target, "role")
	if !ok || v == "" {
		return nil
	}
	return []Candidate{xpathCandidate(16, fmt.Sprintf(`//%s[@role='%s']`, tag(target), escapeXPathLiteral(v)))}
}

// xpByHrefOrSrc (tier 17).
func xpByHrefOrSrc(target, root *html.Node) []Candidate {
	for _, name := range []string{"href", "src"} {
		if v, ok := attr(target, name); ok && v != "" {
			return []Candidate{xpathCandidate(17, fmt.Sprintf(`//%s[@%s='%s']`, tag(target), name, escapeXPathLiteral(v)))}
		}
	}
	return nil
}

// xpByAltOrTitle (tier 18).
func xpByAltOrTitle(target, root *html.Node) []Candidate {
	for _, name := range []string{"alt", "title"} {
		if v, ok := attr(target, name); ok && v != "" {
			return []Candidate{xpathCandidate(18, fmt.Sprintf(`//%s[@%s='%s']`, tag(target), name, escapeXPathLiteral(v)))}
		}
	}
	return nil
}

// xpByAbsolutePath (tier 19): same-tag sibling-indexed absolute path from
// the document root, breaking early at the first stable-id ancestor.
func xpByAbsolutePath(target, root *html.Node) []Candidate {
	return []Candidate{xpathCandidate(19, positionalFallbackXPath(target))}
}

// xpByTagPositionInParent (tier 20): the target's raw child position under
// its immediate parent.
func xpByTagPositionInParent(target, root *html.Node) []Candidate {
	if target.Parent == nil {
		return nil
	}
	return []Candidate{xpathCandidate(20, fmt.Sprintf(`//%s/*[%d]`, tag(target.Parent), childIndex(target)))}
}

// xpByTypePositionInGrandparent (tier 21): the target's tag, indexed among
// its same-tag siblings, scoped under its parent and grandparent tag
// chain — the last strategy before positional fallback.
func xpByTypePositionInGrandparent(target, root *html.Node) []Candidate {
	anc := ancestors(target, 2)
	if len(anc) < 2 {
		return nil
	}
	grandparent, parent := anc[1], anc[0]
	return []Candidate{xpathCandidate(21, fmt.Sprintf(`//%s/%s/%s[%d]`, tag(grandparent), tag(parent), tag(target), sameTagIndex(target)))}
}

func escapeXPathLiteral(s string) string {
	return strings.ReplaceAll(s, "'", "")
}
