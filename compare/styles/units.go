package styles

import "strings"

// absoluteUnitFactors converts an absolute CSS unit to px using the
// standard 96px-per-inch conversion.
var absoluteUnitFactors = map[string]float64{
	"pt": 1.3333,
	"pc": 16,
	"in": 96,
	"cm": 37.7952755906,
	"mm": 3.77952755906,
	"q":  0.94488188976,
}

var relativeUnits = map[string]bool{
	"em": true, "rem": true, "%": true, "vw": true, "vh": true, "vmin": true, "vmax": true,
}

// ElementContext carries the layout facts a relative unit needs to resolve
// to an absolute px value: the element's own and its parent's font size,
// the parent's content box, and the viewport. Any field may be zero when
// unknown — zero/unavailable references fall back per-property below.
type ElementContext struct {
	FontSize       float64
	ParentFontSize float64
	RootFontSize   float64
	ParentWidth    float64
	ParentHeight   float64
	ViewportWidth  float64
	ViewportHeight float64
}

// noElementFontSizeFallback is the px-per-rem/em assumed when a relative
// unit is encountered with no element context at all. The Open
// Question #2 permits either "leave the token unchanged" or "assume 16px";
// this module documents and locks in the *unchanged-token* policy — see
// NormalizeUnit below — and NormalizeUnit does not use this constant.
const noElementFontSizeFallback = 16.0

// NormalizeUnit converts a raw CSS length/percentage to its canonical px
// form. A percentage with no resolvable reference is returned unchanged.
// element may be nil: this module's policy is
// to return relative-unit tokens unchanged when no context is available,
// rather than guessing a 16px baseline — round-trip tests lock this in.
func NormalizeUnit(property, value string, element *ElementContext, decimals int) (out string) {
	original := value
	defer recoverToOriginal(&original, &out)

	trimmed := strings.TrimSpace(value)
	if isPassthroughToken(trimmed) {
		return trimmed
	}
	if trimmed == "0" {
		return "0px"
	}

	number, unit, ok := parseNumberUnit(trimmed)
	if !ok {
		return original
	}
	if unit == "" {
		// A bare non-zero number with no unit is not a length CSS
		// recognizes; leave it untouched rather than guess.
		return original
	}

	if factor, isAbsolute := absoluteUnitFactors[unit]; isAbsolute {
		return formatNumber(number*factor, decimals) + "px"
	}

	if !relativeUnits[unit] {
		return original
	}
	if element == nil {
		return trimmed
	}

	switch unit {
	case "em":
		if element.FontSize == 0 {
			return trimmed
		}
		return formatNumber(number*element.FontSize, decimals) + "px"
	case "rem":
		root := element.RootFontSize
		if root == 0 {
			return trimmed
		}
		return formatNumber(number*root, decimals) + "px"
	case "%":
		ref := percentReference(property, element)
		if ref == 0 {
			return trimmed
		}
		return formatNumber(number/100*ref, decimals) + "px"
	case "vw":
		if element.ViewportWidth == 0 {
			return trimmed
		}
		return formatNumber(number/100*element.ViewportWidth, decimals) + "px"
	case "vh":
		if element.ViewportHeight == 0 {
			return trimmed
		}
		return formatNumber(number/100*element.ViewportHeight, decimals) + "px"
	case "vmin":
		min := smaller(element.ViewportWidth, element.ViewportHeight)
		if min == 0 {
			return trimmed
		}
		return formatNumber(number/100*min, decimals) + "px"
	case "vmax":
		max := larger(element.ViewportWidth, element.ViewportHeight)
		if max == 0 {
			return trimmed
		}
		return formatNumber(number/100*max, decimals) + "px"
	}

	return original
}

// percentReference picks the dimension a percentage resolves against,
// based on the property family: width-family against
// parent width, height-family against parent height, font-size against
// parent font-size, padding/margin (which are percentage-of-width per CSS)
// against parent width.
func percentReference(property string, element *ElementContext) float64 {
	switch {
	case strings.Contains(property, "height"):
		return element.ParentHeight
	case property == "font-size":
		return element.ParentFontSize
	case strings.Contains(property, "width"),
		strings.Contains(property, "margin"),
		strings.Contains(property, "padding"),
		property == "left", property == "right", property == "top", property == "bottom":
		return element.ParentWidth
	default:
		return element.ParentWidth
	}
}

func smaller(a, b float64) float64 {
	if a == 0 || b == 0 {
		return 0
	}
	if a < b {
		return a
	}
	return b
}

func larger(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
