package htmlutil

import (
	"strings"
	"testing"
)

func render(t *Tag) string {
	var sb strings.Builder
	t.RenderOpen(&sb)
	return sb.String()
}

func TestAddAttributeOverwritesSameName(t *testing.T) {
	tag := NewTag("tr").AddAttribute("data-element", "e1").AddAttribute("data-element", "e2")
	got := render(tag)
	if strings.Count(got, "data-element") != 1 {
		t.Errorf("expected a single data-element attribute, got %q", got)
	}
	if !strings.Contains(got, `data-element="e2"`) {
		t.Errorf("expected the later value to win, got %q", got)
	}
}

func TestRenderOpenIncludesClassesAndStyles(t *testing.T) {
	tag := NewTag("tr").AddClass("critical").AddClass("modified").AddStyle("color", "red")
	got := render(tag)
	want := `<tr class="critical modified" style="color:red;">`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderOpenEscapesAttributeValues(t *testing.T) {
	tag := NewTag("td").AddAttribute("title", `a "quoted" value`)
	got := render(tag)
	if !strings.Contains(got, "&quot;quoted&quot;") {
		t.Errorf("expected escaped attribute value, got %q", got)
	}
}

func TestRenderClose(t *testing.T) {
	var sb strings.Builder
	NewTag("div").RenderClose(&sb)
	if sb.String() != "</div>" {
		t.Errorf("got %q, want %q", sb.String(), "</div>")
	}
}

func TestRenderTextEscapesContent(t *testing.T) {
	var sb strings.Builder
	NewTag("td").RenderText(&sb, "a < b & c")
	if sb.String() != "<td>a &lt; b &amp; c</td>" {
		t.Errorf("got %q", sb.String())
	}
}
