package selectors

import (
	"strings"

	"golang.org/x/net/html"
)

// attr returns the value of key on n, and whether it was present.
func attr(n *html.Node, key string) (string, bool) {
	if n == nil {
		return "", false
	}
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func attrOr(n *html.Node, key string) string {
	v, _ := attr(n, key)
	return v
}

func tag(n *html.Node) string {
	if n == nil || n.Type != html.ElementNode {
		return ""
	}
	return n.Data
}

func classList(n *html.Node) []string {
	return strings.Fields(attrOr(n, "class"))
}

// textOf concatenates the direct and descendant text of n, collapsing
// whitespace the way a browser's textContent would.
func textOf(n *html.Node) string {
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
	return strings.Join(strings.Fields(sb.String()), " ")
}

func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// ancestors returns n's ancestor chain, nearest first, up to max entries.
func ancestors(n *html.Node, max int) []*html.Node {
	var out []*html.Node
	for p := n.Parent; p != nil && len(out) < max; p = p.Parent {
		if p.Type == html.ElementNode {
			out = append(out, p)
		}
	}
	return out
}

// elementSiblings returns the element-type siblings of n's parent, in
// document order, including n itself.
func elementSiblings(n *html.Node) []*html.Node {
	if n.Parent == nil {
		return []*html.Node{n}
	}
	var out []*html.Node
	for c := n.Parent.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, c)
		}
	}
	return out
}

// sameTagIndex returns the 1-based position of n among its parent's
// same-tag element children, in document order.
func sameTagIndex(n *html.Node) int {
	idx := 0
	for _, sib := range elementSiblings(n) {
		if tag(sib) == tag(n) {
			idx++
			if sib == n {
				return idx
			}
		}
	}
	return idx
}

// childIndex returns the 1-based position of n among all of its parent's
// element children, in document order.
func childIndex(n *html.Node) int {
	idx := 0
	for _, sib := range elementSiblings(n) {
		idx++
		if sib == n {
			return idx
		}
	}
	return idx
}

// followingSiblingText returns the text of the first following element
// sibling, if any.
func followingSiblingText(n *html.Node) (string, bool) {
	for c := n.NextSibling; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return textOf(c), true
		}
	}
	return "", false
}

// precedingSiblingText returns the text of the immediately preceding
// element sibling, if any.
func precedingSiblingText(n *html.Node) (string, bool) {
	for c := n.PrevSibling; c != nil; c = c.PrevSibling {
		if c.Type == html.ElementNode {
			return textOf(c), true
		}
	}
	return "", false
}

var stableAttrNames = []string{"name", "type", "role", "href", "src", "alt", "title", "aria-label", "for", "placeholder"}

// dataAttrs returns the element's data-* attributes as a map keyed by
// attribute name; iteration order over it is not defined.
func dataAttrs(n *html.Node) map[string]string {
	out := map[string]string{}
	for _, a := range n.Attr {
		if strings.HasPrefix(a.Key, "data-") {
			out[a.Key] = a.Val
		}
	}
	return out
}
