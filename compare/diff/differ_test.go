package diff

import (
	"testing"

	"github.com/snapdiff/snapdiff/compare/model"
	"github.com/snapdiff/snapdiff/compare/options"
	"github.com/snapdiff/snapdiff/compare/styles"
)

func newTestNormalizer() *styles.Normalizer {
	return styles.NewNormalizer(styles.NewCache(true, 100), 2)
}

// TestColorWithinToleranceIsUnchanged: base rgb(255,0,0) vs compare
// rgb(253,1,0), static mode, must produce zero differences (within color
// tolerance 5).
func TestColorWithinToleranceIsUnchanged(t *testing.T) {
	base := model.ElementDescriptor{ID: "e1", TagName: "div", Styles: map[string]string{"color": "rgb(255, 0, 0)"}}
	compareEl := model.ElementDescriptor{ID: "e1", TagName: "div", Styles: map[string]string{"color": "rgb(253, 1, 0)"}}

	filter := options.DefaultConfig().Modes.Static
	result := CompareElements(base, compareEl, filter, newTestNormalizer())

	if result.TotalDifferences != 0 {
		t.Fatalf("expected 0 differences within color tolerance, got %d: %+v", result.TotalDifferences, result.Differences)
	}
}

// TestCriticalDisplayChangeDetected: base display:block vs compare
// display:none must be critical/layout.
func TestCriticalDisplayChangeDetected(t *testing.T) {
	base := model.ElementDescriptor{ID: "e1", TagName: "div", Styles: map[string]string{"display": "block"}}
	compareEl := model.ElementDescriptor{ID: "e1", TagName: "div", Styles: map[string]string{"display": "none"}}

	filter := options.DefaultConfig().Modes.Static
	result := CompareElements(base, compareEl, filter, newTestNormalizer())

	if result.TotalDifferences != 1 {
		t.Fatalf("expected exactly 1 difference, got %d", result.TotalDifferences)
	}
	d := result.Differences[0]
	if d.Severity != SeverityCritical {
		t.Errorf("expected critical severity, got %q", d.Severity)
	}
	if d.Category != "layout" {
		t.Errorf("expected layout category, got %q", d.Category)
	}
}

func TestColorToleranceContract(t *testing.T) {
	tol := options.Tolerances{Color: 5, Size: 3, Opacity: 0.01}
	if isSignificant("color", "rgba(255, 0, 0, 1)", "rgba(253, 2, 0, 1)", tol) {
		t.Error("expected within-tolerance color diff to be insignificant")
	}
	if !isSignificant("color", "rgba(255, 0, 0, 1)", "rgba(240, 0, 0, 1)", tol) {
		t.Error("expected out-of-tolerance color diff to be significant")
	}
}

// TestFontSizeUsesPixelToleranceNotExactMatch: font-size and line-height
// are typography-categorized but still size-typed properties, so a
// sub-tolerance pixel delta must be reported unchanged rather than falling
// through to exact-string inequality.
func TestFontSizeUsesPixelToleranceNotExactMatch(t *testing.T) {
	tol := options.Tolerances{Color: 5, Size: 3, Opacity: 0.01}
	if isSignificant("font-size", "16px", "17px", tol) {
		t.Error("expected a 1px font-size delta within tolerance to be insignificant")
	}
	if !isSignificant("font-size", "16px", "30px", tol) {
		t.Error("expected a 14px font-size delta beyond tolerance to be significant")
	}
	if isSignificant("line-height", "20px", "21px", tol) {
		t.Error("expected a 1px line-height delta within tolerance to be insignificant")
	}
}

func TestDiffAddedRemoved(t *testing.T) {
	base := model.ElementDescriptor{ID: "e1", TagName: "div", Styles: map[string]string{"color": "red"}}
	compareEl := model.ElementDescriptor{ID: "e1", TagName: "div", Styles: map[string]string{"color": "red", "opacity": "0.5"}}

	filter := options.DefaultConfig().Modes.Static
	result := CompareElements(base, compareEl, filter, newTestNormalizer())

	var found bool
	for _, d := range result.Differences {
		if d.Property == "opacity" && d.Type == Added {
			found = true
		}
	}
	if !found {
		t.Errorf("expected an 'added' diff for opacity, got %+v", result.Differences)
	}
}

func TestDiffTextContent(t *testing.T) {
	base := model.ElementDescriptor{ID: "e1", TagName: "p", TextContent: "hello"}
	compareEl := model.ElementDescriptor{ID: "e1", TagName: "p", TextContent: "goodbye"}

	filter := options.DefaultConfig().Modes.Static
	result := CompareElements(base, compareEl, filter, newTestNormalizer())

	var found bool
	for _, d := range result.Differences {
		if d.Property == "textContent" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a textContent diff under static mode, got %+v", result.Differences)
	}
}

func TestDiffTextContentIgnoredInDynamicMode(t *testing.T) {
	base := model.ElementDescriptor{ID: "e1", TagName: "p", TextContent: "hello"}
	compareEl := model.ElementDescriptor{ID: "e1", TagName: "p", TextContent: "goodbye"}

	filter := options.DefaultConfig().Modes.Dynamic
	result := CompareElements(base, compareEl, filter, newTestNormalizer())

	for _, d := range result.Differences {
		if d.Property == "textContent" {
			t.Errorf("expected no textContent diff under dynamic mode, got %+v", d)
		}
	}
}

func TestDiffStructuralAttributesOnly(t *testing.T) {
	base := model.ElementDescriptor{ID: "e1", TagName: "div", Attributes: map[string]string{"role": "button", "data-random": "abc"}}
	compareEl := model.ElementDescriptor{ID: "e1", TagName: "div", Attributes: map[string]string{"role": "link", "data-random": "xyz"}}

	filter := options.DefaultConfig().Modes.Dynamic
	result := CompareElements(base, compareEl, filter, newTestNormalizer())

	for _, d := range result.Differences {
		if d.Property == "attr:data-random" {
			t.Errorf("expected data-random to be excluded by structuralAttributesOnly, got %+v", d)
		}
	}

	var foundRole bool
	for _, d := range result.Differences {
		if d.Property == "attr:role" {
			foundRole = true
		}
	}
	if !foundRole {
		t.Error("expected attr:role to be reported (in the structural allow-list)")
	}
}

// TestDiffCompleteness: every property present in either normalized style
// map is either reported or implicitly unchanged.
func TestDiffCompleteness(t *testing.T) {
	base := model.ElementDescriptor{ID: "e1", TagName: "div", Styles: map[string]string{"color": "red", "width": "10px"}}
	compareEl := model.ElementDescriptor{ID: "e1", TagName: "div", Styles: map[string]string{"color": "red", "width": "999px"}}

	filter := options.DefaultConfig().Modes.Static
	result := CompareElements(base, compareEl, filter, newTestNormalizer())

	reported := map[string]bool{}
	for _, d := range result.Differences {
		reported[d.Property] = true
	}
	if !reported["width"] {
		t.Error("expected width diff to be reported")
	}
	if reported["color"] {
		t.Error("expected unchanged color to not be reported")
	}
}
