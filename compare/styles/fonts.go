package styles

import "strings"

// genericFontFamilies are CSS generic keywords, always lowercased
// regardless of how they were cased in the source stylesheet.
var genericFontFamilies = map[string]bool{
	"serif": true, "sans-serif": true, "monospace": true, "cursive": true, "fantasy": true,
	"system-ui": true, "ui-serif": true, "ui-sans-serif": true, "ui-monospace": true, "ui-rounded": true,
}

// fontAliases canonicalizes common font family names to their conventional
// mixed-case spelling, the way a browser's font matching would present
// them, regardless of how a stylesheet author capitalized them.
var fontAliases = map[string]string{
	"arial":              "Arial",
	"helvetica":          "Helvetica",
	"helvetica neue":     "Helvetica Neue",
	"verdana":            "Verdana",
	"tahoma":             "Tahoma",
	"georgia":            "Georgia",
	"times":              "Times",
	"times new roman":    "Times New Roman",
	"courier":            "Courier",
	"courier new":        "Courier New",
	"trebuchet ms":       "Trebuchet MS",
	"segoe ui":           "Segoe UI",
	"roboto":             "Roboto",
	"open sans":          "Open Sans",
	"lato":               "Lato",
	"montserrat":         "Montserrat",
	"ubuntu":             "Ubuntu",
	"calibri":            "Calibri",
	"consolas":           "Consolas",
	"sf pro text":        "SF Pro Text",
	"sf pro display":     "SF Pro Display",
	"-apple-system":      "-apple-system",
	"blinkmacsystemfont": "BlinkMacSystemFont",
}

// NormalizeFontFamily strips quoting, lowercases generic families, maps
// known faces to their canonical case via fontAliases, and Title-Cases
// anything unrecognized. Parse failures (an empty
// face list) return the original value.
func NormalizeFontFamily(value string) (out string) {
	original := value
	defer recoverToOriginal(&original, &out)

	faces := strings.Split(value, ",")
	normalized := make([]string, 0, len(faces))
	for _, face := range faces {
		trimmed := strings.TrimSpace(face)
		trimmed = unquote(trimmed)
		if trimmed == "" {
			continue
		}

		lower := strings.ToLower(trimmed)
		switch {
		case genericFontFamilies[lower]:
			normalized = append(normalized, lower)
		case fontAliases[lower] != "":
			normalized = append(normalized, fontAliases[lower])
		default:
			normalized = append(normalized, titleCase(trimmed))
		}
	}

	if len(normalized) == 0 {
		return original
	}
	return strings.Join(normalized, ", ")
}

func unquote(s string) string {
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		if w == "" {
			continue
		}
		runes := []rune(w)
		runes[0] = toUpperRune(runes[0])
		for j := 1; j < len(runes); j++ {
			runes[j] = toLowerRune(runes[j])
		}
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

func toUpperRune(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - ('a' - 'A')
	}
	return r
}

func toLowerRune(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}
