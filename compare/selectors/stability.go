// Package selectors generates stable, unique CSS selectors and XPaths for a
// DOM element via tiered, time-bounded strategy cascades.
package selectors

import (
	"regexp"
	"strings"
)

// unstablePatterns flags id/class/attribute values judged likely to be
// machine-generated (CSS-in-JS hashes, framework scaffolding, counters)
// rather than author-assigned and durable across re-renders.
var unstablePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^Mui`),
	regexp.MustCompile(`makeStyles-`),
	regexp.MustCompile(`^css-[a-z0-9]+$`),
	regexp.MustCompile(`^jss\d+`),
	regexp.MustCompile(`^sc-`),
	regexp.MustCompile(`^emotion-`),
	regexp.MustCompile(`lwc-`),
	regexp.MustCompile(`^_[a-z0-9]{5,}$`),
	regexp.MustCompile(`\d{4,}$`),
}

// IsStable reports whether value is unlikely to be machine-generated.
func IsStable(value string) bool {
	if strings.TrimSpace(value) == "" {
		return false
	}
	for _, re := range unstablePatterns {
		if re.MatchString(value) {
			return false
		}
	}
	return true
}

// StableClasses returns up to max class tokens from a raw class attribute
// string that pass IsStable, in source order.
func StableClasses(classAttr string, max int) []string {
	var out []string
	for _, c := range strings.Fields(classAttr) {
		if IsStable(c) {
			out = append(out, c)
			if len(out) >= max {
				break
			}
		}
	}
	return out
}

var (
	timestampRe = regexp.MustCompile(`\d{4}-\d{2}-\d{2}|\d{10,13}`)
	counterRe   = regexp.MustCompile(`^\d+$|\(\d+\)$`)
	currencyRe  = regexp.MustCompile(`[$€£¥]\s?\d`)
)

// IsStaticText reports whether text is judged content-invariant: free of
// timestamps, numeric counters, and currency amounts.
func IsStaticText(text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}
	if timestampRe.MatchString(trimmed) || counterRe.MatchString(trimmed) || currencyRe.MatchString(trimmed) {
		return false
	}
	return true
}
