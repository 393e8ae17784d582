// Package xpathvm evaluates the narrow XPath subset the selector generator
// itself emits: child and descendant axes, tag-name and wildcard steps,
// [@attr='value']/[N] predicates, a normalize-space(.) text predicate,
// and a single following-sibling::tag[N] step. It is not a general XPath
// 1.0 engine — no ecosystem XPath library exists in the reference corpus
// for Go. Two forms the generator also emits fall outside this subset: the
// class-combination predicate contains(concat(' ', normalize-space(@class),
// ' '), ...) and the parenthesized (path)[N] form. Parse rejects both, and
// Evaluate returns nil for them.
package xpathvm

import (
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

type axis int

const (
	axisChild axis = iota
	axisDescendantOrSelf
	axisFollowingSibling
)

type predicate struct {
	attrName string
	attrVal  string
	position int // 0 means "no position filter"
	hasPos   bool
	textHas  string // non-empty means "contains(normalize-space(.), textHas)"
}

type step struct {
	axis  axis
	tag   string // "*" for wildcard
	preds []predicate
}

// Parse compiles an XPath string into a sequence of steps. It returns
// ok=false if the string uses syntax outside the supported subset.
func Parse(path string) (steps []step, ok bool) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, false
	}

	leadingDescendant := false
	if strings.HasPrefix(path, "//") {
		leadingDescendant = true
		path = path[2:]
	} else if strings.HasPrefix(path, "/") {
		path = path[1:]
	} else {
		return nil, false
	}

	rawSteps := splitSteps(path)
	steps = make([]step, 0, len(rawSteps))
	pendingDescendant := leadingDescendant
	for _, raw := range rawSteps {
		if raw == "" {
			// An empty segment marks a "//" (descendant-or-self) axis
			// between the surrounding steps.
			pendingDescendant = true
			continue
		}
		s, ok := parseStep(raw)
		if !ok {
			return nil, false
		}
		if pendingDescendant && s.axis == axisChild {
			s.axis = axisDescendantOrSelf
		}
		pendingDescendant = false
		steps = append(steps, s)
	}
	return steps, true
}

// splitSteps splits a path on '/' while respecting bracketed predicates and
// quoted string literals inside them, and recognizes "following-sibling::"
// as part of a single step rather than a path separator.
func splitSteps(path string) []string {
	var out []string
	depth := 0
	inQuote := byte(0)
	start := 0
	for i := 0; i < len(path); i++ {
		c := path[i]
		switch {
		case inQuote != 0:
			if c == inQuote {
				inQuote = 0
			}
		case c == '\'' || c == '"':
			inQuote = c
		case c == '[':
			depth++
		case c == ']':
			depth--
		case c == '/' && depth == 0:
			out = append(out, path[start:i])
			start = i + 1
		}
	}
	out = append(out, path[start:])
	return out
}

func parseStep(raw string) (step, bool) {
	s := step{axis: axisChild}
	rest := raw

	if strings.HasPrefix(rest, "following-sibling::") {
		s.axis = axisFollowingSibling
		rest = rest[len("following-sibling::"):]
	}

	bracket := strings.IndexByte(rest, '[')
	var tagPart, predPart string
	if bracket == -1 {
		tagPart = rest
	} else {
		tagPart = rest[:bracket]
		predPart = rest[bracket:]
	}
	if tagPart == "" {
		return step{}, false
	}
	s.tag = tagPart

	for len(predPart) > 0 {
		if predPart[0] != '[' {
			return step{}, false
		}
		end := strings.IndexByte(predPart, ']')
		if end == -1 {
			return step{}, false
		}
		body := predPart[1:end]
		p, ok := parsePredicate(body)
		if !ok {
			return step{}, false
		}
		s.preds = append(s.preds, p)
		predPart = predPart[end+1:]
	}
	return s, true
}

func parsePredicate(body string) (predicate, bool) {
	body = strings.TrimSpace(body)
	if n, err := strconv.Atoi(body); err == nil {
		return predicate{position: n, hasPos: true}, true
	}
	if strings.HasPrefix(body, "@") {
		eq := strings.Index(body, "=")
		if eq == -1 {
			return predicate{}, false
		}
		name := strings.TrimPrefix(body[:eq], "@")
		val := unquote(strings.TrimSpace(body[eq+1:]))
		return predicate{attrName: name, attrVal: val}, true
	}
	if strings.HasPrefix(body, "contains(normalize-space(.)") {
		start := strings.Index(body, ",")
		if start == -1 {
			return predicate{}, false
		}
		rest := strings.TrimSpace(body[start+1:])
		rest = strings.TrimSuffix(rest, ")")
		return predicate{textHas: unquote(strings.TrimSpace(rest))}, true
	}
	return predicate{}, false
}

func unquote(s string) string {
	if len(s) >= 2 {
		if (s[0] == '\'' && s[len(s)-1] == '\'') || (s[0] == '"' && s[len(s)-1] == '"') {
			return s[1 : len(s)-1]
		}
	}
	return s
}

// Evaluate runs a parsed path against root and returns every matching
// element node, in document order.
func Evaluate(root *html.Node, path string) []*html.Node {
	steps, ok := Parse(path)
	if !ok {
		return nil
	}
	current := []*html.Node{root}
	for _, s := range steps {
		current = applyStep(current, s)
		if len(current) == 0 {
			return nil
		}
	}
	return current
}

func applyStep(nodes []*html.Node, s step) []*html.Node {
	var candidates []*html.Node
	for _, n := range nodes {
		switch s.axis {
		case axisChild:
			candidates = append(candidates, elementChildren(n)...)
		case axisDescendantOrSelf:
			candidates = append(candidates, descendants(n)...)
		case axisFollowingSibling:
			candidates = append(candidates, followingSiblings(n)...)
		}
	}

	var tagFiltered []*html.Node
	for _, c := range candidates {
		if s.tag == "*" || c.Data == s.tag {
			tagFiltered = append(tagFiltered, c)
		}
	}

	for _, p := range s.preds {
		tagFiltered = applyPredicate(tagFiltered, p)
	}
	return tagFiltered
}

func applyPredicate(nodes []*html.Node, p predicate) []*html.Node {
	if p.hasPos {
		if p.position < 1 || p.position > len(nodes) {
			return nil
		}
		return []*html.Node{nodes[p.position-1]}
	}
	var out []*html.Node
	for _, n := range nodes {
		if p.attrName != "" {
			if attrValue(n, p.attrName) != p.attrVal {
				continue
			}
		}
		if p.textHas != "" {
			if !strings.Contains(normalizeSpace(textContent(n)), p.textHas) {
				continue
			}
		}
		out = append(out, n)
	}
	return out
}

func elementChildren(n *html.Node) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, c)
		}
	}
	return out
}

func descendants(n *html.Node) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode {
				out = append(out, c)
				walk(c)
			}
		}
	}
	walk(n)
	return out
}

func followingSiblings(n *html.Node) []*html.Node {
	var out []*html.Node
	for c := n.NextSibling; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, c)
		}
	}
	return out
}

func attrValue(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.TextNode {
			sb.WriteString(node.Data)
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
