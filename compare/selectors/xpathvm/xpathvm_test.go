package xpathvm

import (
	"strings"
	"testing"

	"golang.org/x/net/html"
)

func parseDoc(t *testing.T, fragment string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		t.Fatalf("html.Parse: %v", err)
	}
	return doc
}

func TestEvaluateChildAxis(t *testing.T) {
	doc := parseDoc(t, `<html><body><div id="hero"><button>Go</button></div></body></html>`)
	matches := Evaluate(doc, "//div[@id='hero']/button")
	if len(matches) != 1 || matches[0].Data != "button" {
		t.Fatalf("expected one button match, got %d", len(matches))
	}
}

func TestEvaluateDescendantAxis(t *testing.T) {
	doc := parseDoc(t, `<html><body><section><div><span>x</span></div></section></body></html>`)
	matches := Evaluate(doc, "//span")
	if len(matches) != 1 {
		t.Fatalf("expected one span, got %d", len(matches))
	}
}

func TestEvaluatePositionPredicate(t *testing.T) {
	doc := parseDoc(t, `<html><body><ul><li>a</li><li>b</li><li>c</li></ul></body></html>`)
	matches := Evaluate(doc, "//li[2]")
	if len(matches) != 1 || textContent(matches[0]) != "b" {
		t.Fatalf("expected li[2] = b, got %#v", matches)
	}
}

func TestEvaluateContainsText(t *testing.T) {
	doc := parseDoc(t, `<html><body><button>Submit order</button><button>Cancel</button></body></html>`)
	matches := Evaluate(doc, "//button[contains(normalize-space(.), 'Submit')]")
	if len(matches) != 1 {
		t.Fatalf("expected one matching button, got %d", len(matches))
	}
}

func TestEvaluateFollowingSibling(t *testing.T) {
	doc := parseDoc(t, `<html><body><label>Name</label><input id="name-input"/></body></html>`)
	matches := Evaluate(doc, "//label/following-sibling::input[1]")
	if len(matches) != 1 || attrValue(matches[0], "id") != "name-input" {
		t.Fatalf("expected the input following label, got %#v", matches)
	}
}

func TestEvaluateNoMatch(t *testing.T) {
	doc := parseDoc(t, `<html><body><div></div></body></html>`)
	if matches := Evaluate(doc, "//span[@id='missing']"); matches != nil {
		t.Fatalf("expected no matches, got %#v", matches)
	}
}

func TestEvaluateMidPathDescendant(t *testing.T) {
	doc := parseDoc(t, `<html><body><section id="hero"><div><span>x</span></div></section></body></html>`)
	matches := Evaluate(doc, "//section[@id='hero']//span")
	if len(matches) != 1 {
		t.Fatalf("expected one span reached via mid-path descendant axis, got %d", len(matches))
	}
}

func TestEvaluateUnsupportedSyntaxReturnsNil(t *testing.T) {
	doc := parseDoc(t, `<html><body><div></div></body></html>`)
	if matches := Evaluate(doc, "(//*)[3]"); matches != nil {
		t.Fatalf("expected unsupported global-position syntax to yield no matches, got %#v", matches)
	}
}
