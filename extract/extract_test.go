package extract

import (
	"strings"
	"testing"
	"time"
)

const fixtureHTML = `
<html>
<head><title>Fixture</title></head>
<body>
  <section id="hero">
    <button class="btn" data-testid="submit" style="color: red; width: 10px;">Go</button>
    <p class="btn">Not a button</p>
  </section>
</body>
</html>`

func TestFromHTMLExtractsElements(t *testing.T) {
	report, err := FromHTML(fixtureHTML, "r1", "https://example.com", "Fixture", 50*time.Millisecond)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(report.Elements) == 0 {
		t.Fatal("expected at least one extracted element")
	}

	var foundButton bool
	for _, e := range report.Elements {
		if e.TagName == "button" {
			foundButton = true
			if e.Styles["color"] != "red" {
				t.Errorf("expected button color style 'red', got %q", e.Styles["color"])
			}
			if e.Attributes["data-testid"] != "submit" {
				t.Errorf("expected data-testid attribute 'submit', got %q", e.Attributes["data-testid"])
			}
			if e.Selectors.CSS == "" {
				t.Error("expected a non-empty generated CSS selector")
			}
			if e.Selectors.XPath == "" {
				t.Error("expected a non-empty generated XPath")
			}
		}
	}
	if !foundButton {
		t.Fatal("expected a button element to be extracted")
	}
}

func TestFromHTMLSkipsNonContentTags(t *testing.T) {
	report, err := FromHTML(fixtureHTML, "r1", "https://example.com", "Fixture", 50*time.Millisecond)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, e := range report.Elements {
		if skipTags[e.TagName] {
			t.Errorf("expected %q to be skipped, but it was extracted", e.TagName)
		}
	}
}

func TestFromHTMLGeneratesUniqueSelectorsForDuplicateClass(t *testing.T) {
	report, err := FromHTML(fixtureHTML, "r1", "https://example.com", "Fixture", 50*time.Millisecond)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	seen := map[string]int{}
	for _, e := range report.Elements {
		if e.Selectors.CSS != "" {
			seen[e.Selectors.CSS]++
		}
	}
	for css, count := range seen {
		if count > 1 {
			t.Errorf("expected generated CSS selector %q to be unique per element, matched %d elements", css, count)
		}
	}
}

func TestParseStyleAttr(t *testing.T) {
	props := parseStyleAttr("color: red; width:10px ;  ;malformed")
	if props["color"] != "red" || props["width"] != "10px" {
		t.Errorf("unexpected parse result: %+v", props)
	}
	if len(props) != 2 {
		t.Errorf("expected exactly 2 parsed properties, got %d: %+v", len(props), props)
	}
}

func TestParseStyleAttrEmpty(t *testing.T) {
	if props := parseStyleAttr(""); len(props) != 0 {
		t.Errorf("expected empty map for empty style attr, got %+v", props)
	}
}

func TestFromHTMLInvalidMarkupStillParses(t *testing.T) {
	// html.Parse is lenient by design (it implements the HTML5 parsing
	// algorithm's error recovery); malformed markup should never error.
	report, err := FromHTML("<div><span>unterminated", "r1", "https://example.com", "t", 0)
	if err != nil {
		t.Fatalf("unexpected error on malformed markup: %v", err)
	}
	if len(report.Elements) == 0 {
		t.Fatal("expected recovered elements from malformed markup")
	}
}

func TestDocumentHelperParsesSameMarkup(t *testing.T) {
	doc, err := Document(fixtureHTML)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Find("button").Length() != 1 {
		t.Errorf("expected 1 button via goquery, got %d", doc.Find("button").Length())
	}
	if !strings.Contains(doc.Find("section").AttrOr("id", ""), "hero") {
		t.Errorf("expected section#hero, got %q", doc.Find("section").AttrOr("id", ""))
	}
}
