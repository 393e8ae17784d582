// Package styles canonicalizes heterogeneous CSS value forms — colors,
// lengths, shorthands, fonts — into a single comparable representation,
// backed by a split absolute/context-dependent cache.
package styles

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// numberUnitRe splits a leading signed decimal from its trailing unit
// token, e.g. "-1.5em" -> ("-1.5", "em").
var numberUnitRe = regexp.MustCompile(`^(-?\d+(?:\.\d+)?)([a-zA-Z%]*)$`)

// roundN rounds to the configured decimal precision. Every numeric output
// produced by the normalizers (unit conversions, color alpha) passes
// through this single helper so the two rounding conventions the original
// implementation mixed never both appear in one
// build: the module fixes on decimals-place rounding everywhere.
func roundN(value float64, decimals int) float64 {
	pow := math.Pow(10, float64(decimals))
	return math.Round(value*pow) / pow
}

// formatNumber renders a rounded float the way CSS expects: the shortest
// form of the value rounded to decimals places, with no trailing zeros
// ("16", "37.8", "0.5").
func formatNumber(value float64, decimals int) string {
	return strconv.FormatFloat(roundN(value, decimals), 'f', -1, 64)
}

// parseNumberUnit parses a raw CSS length token into its numeric part and
// unit suffix. ok is false if value isn't of the form <number><unit?>.
func parseNumberUnit(value string) (number float64, unit string, ok bool) {
	trimmed := strings.TrimSpace(value)
	m := numberUnitRe.FindStringSubmatch(trimmed)
	if m == nil {
		return 0, "", false
	}
	n, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, "", false
	}
	return n, strings.ToLower(m[2]), true
}

// passthroughTokens are keyword values no normalizer should attempt to
// touch; they're returned verbatim by both the color and unit normalizers.
var passthroughTokens = map[string]bool{
	"auto": true, "none": true, "inherit": true, "initial": true, "unset": true,
}

func isPassthroughToken(value string) bool {
	return passthroughTokens[strings.ToLower(strings.TrimSpace(value))]
}

// recoverToOriginal is deferred by every normalizer entry point so a panic
// deep in a parser (a malformed regex group, a bad index) degrades to "use
// the original value" instead of aborting the whole comparison — the
// failure-isolation contract below.
func recoverToOriginal(original *string, out *string) {
	if r := recover(); r != nil {
		*out = *original
	}
}

// stableJSON renders a context map deterministically (sorted keys) for use
// as part of a relative-tier cache key. It intentionally avoids
// encoding/json so key order is guaranteed without depending on map
// iteration being stable across versions of the json package.
func stableJSON(context map[string]float64) string {
	if len(context) == 0 {
		return "{}"
	}
	keys := make([]string, 0, len(context))
	for k := range context {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	sb.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprintf(&sb, "%q:%s", k, formatNumber(context[k], 4))
	}
	sb.WriteByte('}')
	return sb.String()
}
