package styles

import "testing"

func TestNormalizeFontFamily(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"known alias lowercase", "arial", "Arial"},
		{"known alias already canonical", "Arial", "Arial"},
		{"generic keyword", "Sans-Serif", "sans-serif"},
		{"quoted face", `"Helvetica Neue", arial`, "Helvetica Neue, Arial"},
		{"unknown face title-cased", "my custom font", "My Custom Font"},
		{"stack with generic fallback", "Arial, sans-serif", "Arial, sans-serif"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeFontFamily(tt.input)
			if got != tt.expected {
				t.Errorf("NormalizeFontFamily(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNormalizeFontFamilyIdempotent(t *testing.T) {
	inputs := []string{"arial", `"Helvetica Neue", sans-serif`, "my custom font"}
	for _, in := range inputs {
		once := NormalizeFontFamily(in)
		twice := NormalizeFontFamily(once)
		if once != twice {
			t.Errorf("NormalizeFontFamily not idempotent for %q: once=%q twice=%q", in, once, twice)
		}
	}
}

func TestNormalizeFontFamilyEmptyReturnsOriginal(t *testing.T) {
	if got := NormalizeFontFamily(""); got != "" {
		t.Errorf("NormalizeFontFamily(\"\") = %q, want empty string", got)
	}
}
