// Package extract builds ElementDescriptor/Report fixtures from a live
// HTML document. It is a thin, best-effort demo/test builder — it does
// not resolve computed styles, inherit the cascade, or attempt layout; it
// exists so the CLI and selector-generation tests have a real DOM to work
// against.
package extract

import "strings"

// parseStyleAttr parses an inline style attribute ("color: red; width:
// 10px;") into a property/value map. Malformed declarations are skipped
// rather than aborting the whole parse.
func parseStyleAttr(style string) map[string]string {
	props := make(map[string]string)
	if style == "" {
		return props
	}

	for _, decl := range strings.Split(style, ";") {
		decl = strings.TrimSpace(decl)
		if decl == "" {
			continue
		}
		parts := strings.SplitN(decl, ":", 2)
		if len(parts) != 2 {
			continue
		}
		prop := strings.ToLower(strings.TrimSpace(parts[0]))
		value := strings.TrimSpace(parts[1])
		if prop != "" && value != "" {
			props[prop] = value
		}
	}
	return props
}
