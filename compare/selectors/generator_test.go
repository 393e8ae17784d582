package selectors

import (
	"strings"
	"testing"
	"time"

	"golang.org/x/net/html"
)

const defaultTimeout = 50 * time.Millisecond

func parseDoc(t *testing.T, fragment string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		t.Fatalf("html.Parse: %v", err)
	}
	return doc
}

func findFirst(n *html.Node, tagName string, attrKey, attrVal string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tagName {
		if attrKey == "" {
			return n
		}
		if v, ok := attrFind(n, attrKey); ok && v == attrVal {
			return n
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findFirst(c, tagName, attrKey, attrVal); found != nil {
			return found
		}
	}
	return nil
}

func attrFind(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func TestGenerateCSSUsesID(t *testing.T) {
	doc := parseDoc(t, `<html><body><button id="submit-btn">Go</button></body></html>`)
	target := findFirst(doc, "button", "", "")

	result := GenerateCSS(target, doc, defaultTimeout)
	if result.Value != "#submit-btn" {
		t.Errorf("expected #submit-btn, got %q", result.Value)
	}
	if result.Confidence != 100 {
		t.Errorf("expected tier-1 confidence 100, got %d", result.Confidence)
	}
}

func TestGenerateCSSNeverNil(t *testing.T) {
	doc := parseDoc(t, `<html><body><div><div><div><span>plain</span></div></div></div></body></html>`)
	target := findFirst(doc, "span", "", "")

	result := GenerateCSS(target, doc, defaultTimeout)
	if result.Value == "" {
		t.Fatal("CSS selector generator returned empty value, violates fallback totality")
	}
}

func TestGenerateXPathNeverNil(t *testing.T) {
	doc := parseDoc(t, `<html><body><div><div><div><span>plain</span></div></div></div></body></html>`)
	target := findFirst(doc, "span", "", "")

	result := GenerateXPath(target, doc, defaultTimeout)
	if result.Value == "" {
		t.Fatal("XPath generator returned empty value, violates fallback totality")
	}
}

// TestSelectorAnchoringUsesStableAncestorID: an element with a non-unique
// class inside <section id="hero"> must produce an anchored selector, never null.
func TestSelectorAnchoringUsesStableAncestorID(t *testing.T) {
	doc := parseDoc(t, `<html><body>
		<section id="hero"><a class="btn">Hero CTA</a></section>
		<footer><a class="btn">Footer CTA</a></footer>
	</body></html>`)

	target := findFirst(doc, "section", "id", "hero")
	target = findFirst(target, "a", "", "")

	result := GenerateCSS(target, doc, defaultTimeout)
	if result.Value == "" {
		t.Fatal("expected a non-null anchored selector")
	}
	if !strings.Contains(result.Value, "#hero") && !strings.HasPrefix(result.Value, "a:nth") {
		t.Errorf("expected an anchored or higher-tier selector, got %q", result.Value)
	}

	compiledMatches := cssSelectorMatchesExactlyForTest(t, doc, target, result.Value)
	if !compiledMatches {
		t.Errorf("generated selector %q does not resolve uniquely to the target", result.Value)
	}
}

func cssSelectorMatchesExactlyForTest(t *testing.T, root, target *html.Node, sel string) bool {
	t.Helper()
	return cssMatchesExactly(root, target, sel)
}

func TestGenerateCSSPositionalFallbackForDeeplyAnonymousElement(t *testing.T) {
	doc := parseDoc(t, `<html><body>
		<div><div><div><div><div><span>one</span><span>two</span></div></div></div></div></div>
	</body></html>`)
	target := findFirst(doc, "span", "", "")
	// findFirst returns the first span ("one"); walk to the second.
	for c := target.Parent.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == "span" && c != target {
			target = c
		}
	}

	result := GenerateCSS(target, doc, defaultTimeout)
	if result.Value == "" {
		t.Fatal("expected non-empty positional fallback")
	}
}
