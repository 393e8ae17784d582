package styles

import "testing"

func TestNormalizeDispatchesByCategory(t *testing.T) {
	n := NewNormalizer(NewCache(true, 100), 2)
	ctx := &ElementContext{FontSize: 16}

	out := n.Normalize(map[string]string{
		"color":      "red",
		"width":      "1em",
		"font-family": "arial",
		"display":    "block",
	}, ctx)

	if out["color"] != "rgba(255, 0, 0, 1)" {
		t.Errorf("color = %q", out["color"])
	}
	if out["width"] != "16px" {
		t.Errorf("width = %q", out["width"])
	}
	if out["font-family"] != "Arial" {
		t.Errorf("font-family = %q", out["font-family"])
	}
	if out["display"] != "block" {
		t.Errorf("display = %q, want passthrough", out["display"])
	}
}

func TestUnitNormalizationAcrossShorthandAndContext(t *testing.T) {
	n := NewNormalizer(NewCache(true, 100), 2)
	baseCtx := &ElementContext{FontSize: 16}

	base := n.Normalize(map[string]string{"width": "1em"}, baseCtx)
	compare := n.Normalize(map[string]string{"width": "16px"}, nil)

	if base["width"] != "16.00px" && base["width"] != "16px" {
		t.Fatalf("expected base width to normalize to 16px, got %q", base["width"])
	}
	if compare["width"] != "16px" {
		t.Fatalf("expected compare width to normalize to 16px, got %q", compare["width"])
	}
	if base["width"] != compare["width"] {
		t.Errorf("expected zero diff between %q and %q", base["width"], compare["width"])
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	n := NewNormalizer(NewCache(true, 100), 2)
	ctx := &ElementContext{FontSize: 16, ParentWidth: 300}

	styles := map[string]string{
		"color":   "RED",
		"width":   "50%",
		"margin":  "10px 20px",
		"display": "block",
	}

	once := n.Normalize(styles, ctx)
	twice := n.Normalize(once, ctx)

	for k, v := range once {
		if twice[k] != v {
			t.Errorf("Normalize not idempotent for %q: once=%q twice=%q", k, v, twice[k])
		}
	}
}

func TestNormalizeNilStylesReturnsNil(t *testing.T) {
	n := NewNormalizer(NewCache(true, 100), 2)
	if out := n.Normalize(nil, nil); out != nil {
		t.Errorf("expected nil in, nil out, got %#v", out)
	}
}

func TestNormalizeWithNilCacheStillWorks(t *testing.T) {
	n := NewNormalizer(nil, 2)
	out := n.Normalize(map[string]string{"color": "red"}, nil)
	if out["color"] != "rgba(255, 0, 0, 1)" {
		t.Errorf("color = %q", out["color"])
	}
}
