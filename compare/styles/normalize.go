package styles

import (
	"strings"

	"github.com/snapdiff/snapdiff/compare/constants"
)

// Normalizer expands shorthand CSS properties, then dispatches each
// longhand property to the color, unit or font normalizer (or passes it
// through unchanged), consulting and populating the two-tier cache along
// the way.
type Normalizer struct {
	cache    *Cache
	decimals int
}

// NewNormalizer builds a Normalizer backed by the given cache. Pass a nil
// cache to disable caching entirely (every call re-normalizes).
func NewNormalizer(cache *Cache, decimals int) *Normalizer {
	if decimals <= 0 {
		decimals = 2
	}
	return &Normalizer{cache: cache, decimals: decimals}
}

// CacheStats returns a snapshot of the underlying cache's hit/miss
// counters, for callers that want to surface hit-rate telemetry.
func (n *Normalizer) CacheStats() Stats {
	return n.cache.Stats()
}

// relativeUnitTokenNames lists the unit tokens that make a size value's
// canonical form depend on element context.
var relativeUnitTokenNames = []string{"em", "rem", "%", "vw", "vh", "vmin", "vmax"}

func hasRelativeUnitToken(value string) bool {
	for _, unit := range relativeUnitTokenNames {
		if strings.HasSuffix(value, unit) {
			// Guard against false positives like "rem" matching inside
			// "0.5rem" is fine (suffix), but avoid "m" spuriously matching
			// unit "%"-less words; parseNumberUnit is the authority, this
			// is just a fast pre-check to decide the cache tier.
			if _, parsedUnit, ok := parseNumberUnit(value); ok && parsedUnit == unit {
				return true
			}
		}
	}
	return false
}

// contextMap flattens an ElementContext into the map[string]float64 shape
// the cache key fingerprint expects ("context = {fontSize,
// parentFontSize, parentWidth, parentHeight, viewportWidth, viewportHeight}").
func contextMap(element *ElementContext) map[string]float64 {
	if element == nil {
		return nil
	}
	return map[string]float64{
		"fontSize":       element.FontSize,
		"parentFontSize": element.ParentFontSize,
		"parentWidth":    element.ParentWidth,
		"parentHeight":   element.ParentHeight,
		"viewportWidth":  element.ViewportWidth,
		"viewportHeight": element.ViewportHeight,
	}
}

// NormalizeProperty normalizes a single property/value pair, consulting
// the cache tier appropriate to the property and value. element may be
// nil.
func (n *Normalizer) NormalizeProperty(property, value string, element *ElementContext) (result string) {
	defer func() {
		if recover() != nil {
			result = value
		}
	}()

	switch {
	case constants.ColorProperties[property]:
		if cached, ok := n.cache.GetAbsolute(property, value); ok {
			return cached
		}
		out := NormalizeColor(value)
		n.cache.SetAbsolute(property, value, out)
		return out

	case constants.SizeProperties[property]:
		if hasRelativeUnitToken(value) {
			ctx := contextMap(element)
			if cached, ok := n.cache.GetRelative(property, value, ctx); ok {
				return cached
			}
			out := NormalizeUnit(property, value, element, n.decimals)
			n.cache.SetRelative(property, value, ctx, out)
			return out
		}
		if cached, ok := n.cache.GetAbsolute(property, value); ok {
			return cached
		}
		out := NormalizeUnit(property, value, element, n.decimals)
		n.cache.SetAbsolute(property, value, out)
		return out

	case property == "font-family":
		if cached, ok := n.cache.GetAbsolute(property, value); ok {
			return cached
		}
		out := NormalizeFontFamily(value)
		n.cache.SetAbsolute(property, value, out)
		return out

	default:
		return value
	}
}

// Normalize expands shorthands and normalizes every resulting longhand
// property. A nil input is returned unchanged; normalize(normalize(s))
// == normalize(s) holds because every normalizer function is itself
// idempotent on its own canonical output.
func (n *Normalizer) Normalize(styles map[string]string, element *ElementContext) map[string]string {
	if styles == nil {
		return styles
	}

	expanded := ExpandShorthand(styles)

	result := make(map[string]string, len(expanded))
	for property, value := range expanded {
		result[property] = n.NormalizeProperty(property, value, element)
	}
	return result
}
