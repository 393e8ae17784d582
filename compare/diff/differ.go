package diff

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/snapdiff/snapdiff/compare/constants"
	"github.com/snapdiff/snapdiff/compare/model"
	"github.com/snapdiff/snapdiff/compare/options"
	"github.com/snapdiff/snapdiff/compare/styles"
)

// ElementResult is the per-element outcome of CompareElements: the full
// set of significant differences found between one matched pair.
type ElementResult struct {
	ElementID        string       `json:"elementId"`
	TagName          string       `json:"tagName"`
	TotalDifferences int          `json:"totalDifferences"`
	Differences      []Difference `json:"differences"`
}

// CompareElements diffs one matched baseline/compare element pair under
// the given mode filter, normalizing both style maps via normalizer first.
func CompareElements(base, compareEl model.ElementDescriptor, filter options.ModeFilter, normalizer *styles.Normalizer) (result ElementResult) {
	result.ElementID = base.ID
	result.TagName = base.TagName

	baseStyles := normalizer.Normalize(base.Styles, nil)
	compareStyles := normalizer.Normalize(compareEl.Styles, nil)

	var diffs []Difference
	for _, property := range unionKeys(baseStyles, compareStyles) {
		if filter.IgnoredProperties[property] {
			continue
		}
		baseVal, baseOk := baseStyles[property]
		compareVal, compareOk := compareStyles[property]

		d := classifyStyleDiff(property, baseVal, baseOk, compareVal, compareOk, filter.Tolerances)
		if d.Type != Unchanged {
			diffs = append(diffs, d)
		}
	}

	if filter.CompareTextContent {
		baseText := strings.TrimSpace(base.TextContent)
		compareText := strings.TrimSpace(compareEl.TextContent)
		if baseText != compareText {
			diffs = append(diffs, Difference{
				Property:     "textContent",
				BaseValue:    baseText,
				CompareValue: compareText,
				Type:         Modified,
				Category:     constants.CategoryContent,
				Severity:     SeverityLow,
			})
		}
	}

	diffs = append(diffs, attributeDiffs(base.Attributes, compareEl.Attributes, filter)...)

	for i := range diffs {
		diffs[i].Severity = Classify(diffs[i])
	}

	result.Differences = diffs
	result.TotalDifferences = len(diffs)
	return result
}

func classifyStyleDiff(property, baseVal string, baseOk bool, compareVal string, compareOk bool, tol options.Tolerances) Difference {
	d := Difference{Property: property, BaseValue: baseVal, CompareValue: compareVal, Category: constants.CategoryOf(property)}

	switch {
	case !baseOk && compareOk:
		d.Type = Added
		return d
	case baseOk && !compareOk:
		d.Type = Removed
		return d
	case baseVal == compareVal:
		d.Type = Unchanged
		return d
	}

	if isSignificant(property, baseVal, compareVal, tol) {
		d.Type = Modified
	} else {
		d.Type = Unchanged
	}
	return d
}

// isSignificant applies per-category tolerance rules: color channel and
// alpha delta, pixel-size delta, opacity delta, else exact-string equality.
func isSignificant(property, baseVal, compareVal string, tol options.Tolerances) bool {
	category := constants.CategoryOf(property)
	isColor := category == constants.CategoryVisual && (constants.ColorProperties[property] || strings.Contains(property, "color"))
	isSize := category == constants.CategoryLayout || category == constants.CategorySpacing || category == constants.CategoryPosition ||
		constants.SizeProperties[property] || strings.Contains(property, "width") || strings.Contains(property, "height") || strings.Contains(property, "size")

	switch {
	case property == "opacity":
		bv, ok1 := parseFloat(baseVal)
		cv, ok2 := parseFloat(compareVal)
		if !ok1 || !ok2 {
			return baseVal != compareVal
		}
		return math.Abs(bv-cv) > tol.Opacity

	case isColor:
		br, bg, bb, ba, ok1 := styles.ParseRGBAChannels(baseVal)
		cr, cg, cb, ca, ok2 := styles.ParseRGBAChannels(compareVal)
		if !ok1 || !ok2 {
			return baseVal != compareVal
		}
		if math.Abs(ba-ca) > tol.Opacity {
			return true
		}
		return absInt(br-cr) > tol.Color || absInt(bg-cg) > tol.Color || absInt(bb-cb) > tol.Color

	case isSize:
		bv, ok1 := parsePx(baseVal)
		cv, ok2 := parsePx(compareVal)
		if !ok1 || !ok2 {
			return baseVal != compareVal
		}
		return math.Abs(bv-cv) > tol.Size

	default:
		return baseVal != compareVal
	}
}

func parseFloat(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return v, err == nil
}

func parsePx(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "px")
	return parseFloat(s)
}

func absInt(n int) float64 {
	if n < 0 {
		return float64(-n)
	}
	return float64(n)
}

func attributeDiffs(base, compareAttrs map[string]string, filter options.ModeFilter) []Difference {
	keys := unionKeys(base, compareAttrs)
	var out []Difference
	for _, key := range keys {
		if filter.StructuralOnlyAttrs {
			allow := filter.StructuralAttributes
			if allow == nil {
				allow = constants.StructuralAttributes
			}
			if !allow[key] {
				continue
			}
		}
		baseVal, baseOk := base[key]
		compareVal, compareOk := compareAttrs[key]
		if baseVal == compareVal && baseOk == compareOk {
			continue
		}

		d := Difference{Property: "attr:" + key, BaseValue: baseVal, CompareValue: compareVal, Category: constants.CategoryAttribute}
		switch {
		case !baseOk:
			d.Type = Added
		case !compareOk:
			d.Type = Removed
		default:
			d.Type = Modified
		}
		out = append(out, d)
	}
	return out
}

// unionKeys returns the sorted union of two maps' keys so output is
// deterministic regardless of Go's randomized map iteration order.
func unionKeys(a, b map[string]string) []string {
	seen := make(map[string]bool, len(a)+len(b))
	var keys []string
	for k := range a {
		if !seen[k] {
			seen[k] = true
			keys = append(keys, k)
		}
	}
	for k := range b {
		if !seen[k] {
			seen[k] = true
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}
