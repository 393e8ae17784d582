package styles

import "testing"

func TestNormalizeColor(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"hex 6-digit", "#ff0000", "rgba(255, 0, 0, 1)"},
		{"hex 3-digit", "#f00", "rgba(255, 0, 0, 1)"},
		{"hex 8-digit with alpha", "#ff000080", "rgba(255, 0, 0, 0.5)"},
		{"named red", "red", "rgba(255, 0, 0, 1)"},
		{"named case-insensitive", "ReD", "rgba(255, 0, 0, 1)"},
		{"transparent", "transparent", "rgba(0, 0, 0, 0)"},
		{"currentcolor passthrough", "currentColor", "currentColor"},
		{"rgb standardizes whitespace", "rgb(255,0,0)", "rgba(255, 0, 0, 1)"},
		{"rgba passthrough alpha", "rgba(255, 0, 0, 0.5)", "rgba(255, 0, 0, 0.5)"},
		{"hsl red", "hsl(0, 100%, 50%)", "rgba(255, 0, 0, 1)"},
		{"hsl hue wraps", "hsl(360, 100%, 50%)", "rgba(255, 0, 0, 1)"},
		{"invalid returns original", "not-a-color(1,2,3)", "not-a-color(1,2,3)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeColor(tt.input)
			if got != tt.expected {
				t.Errorf("NormalizeColor(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNormalizeColorIdempotent(t *testing.T) {
	inputs := []string{"#ff0000", "red", "rgb(10, 20, 30)", "hsl(200, 50%, 50%)"}
	for _, in := range inputs {
		once := NormalizeColor(in)
		twice := NormalizeColor(once)
		if once != twice {
			t.Errorf("NormalizeColor not idempotent for %q: once=%q twice=%q", in, once, twice)
		}
	}
}

func TestHexVsNamedColorEquivalence(t *testing.T) {
	hex := NormalizeColor("#ff0000")
	named := NormalizeColor("red")
	if hex != named {
		t.Errorf("hex and named forms of the same color must normalize equal: %q vs %q", hex, named)
	}
}

func TestParseRGBAChannels(t *testing.T) {
	r, g, b, a, ok := ParseRGBAChannels("rgba(255, 0, 0, 1)")
	if !ok || r != 255 || g != 0 || b != 0 || a != 1 {
		t.Errorf("ParseRGBAChannels mismatch: r=%d g=%d b=%d a=%v ok=%v", r, g, b, a, ok)
	}

	if _, _, _, _, ok := ParseRGBAChannels("red"); ok {
		t.Error("ParseRGBAChannels should reject non-canonical input")
	}
}

func TestRelativeLuminance(t *testing.T) {
	white := RelativeLuminance(255, 255, 255)
	black := RelativeLuminance(0, 0, 0)
	if white <= black {
		t.Errorf("expected white luminance > black, got white=%f black=%f", white, black)
	}
	if black != 0 {
		t.Errorf("expected black luminance 0, got %f", black)
	}
	if white < 0.99 || white > 1.01 {
		t.Errorf("expected white luminance ~1, got %f", white)
	}
}
