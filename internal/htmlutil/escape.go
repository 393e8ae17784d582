// Package htmlutil builds small HTML fragments for the CLI's HTML report
// output, without pulling in a templating engine for what is a handful of
// tags and escaped strings.
package htmlutil

import "strings"

// EscapeAttr escapes the characters that would break an HTML attribute
// value: quotes, ampersands and angle brackets.
func EscapeAttr(s string) string {
	replacer := strings.NewReplacer(
		"&", "&amp;",
		"\"", "&quot;",
		"'", "&#39;",
		"<", "&lt;",
		">", "&gt;",
	)
	return replacer.Replace(s)
}

// EscapeText escapes the characters that would be misinterpreted as markup
// inside HTML element text content.
func EscapeText(s string) string {
	replacer := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
	)
	return replacer.Replace(s)
}
