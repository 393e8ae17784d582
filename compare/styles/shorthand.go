package styles

import (
	"regexp"
	"strings"
)

var (
	borderWidthTokenRe = regexp.MustCompile(`^\d+(\.\d+)?(px|em|rem|pt|%)$`)
	borderStyleTokens  = map[string]bool{
		"none": true, "hidden": true, "dotted": true, "dashed": true, "solid": true,
		"double": true, "groove": true, "ridge": true, "inset": true, "outset": true,
	}

	fontSizeRe = regexp.MustCompile(`(\d+(?:\.\d+)?(?:px|em|rem|pt|%|vh|vw))(?:/(\S+))?\s+(.+)$`)
	fontWeightTokens = map[string]bool{
		"normal": true, "bold": true, "bolder": true, "lighter": true,
		"100": true, "200": true, "300": true, "400": true, "500": true,
		"600": true, "700": true, "800": true, "900": true,
	}
	fontStyleTokens   = map[string]bool{"normal": true, "italic": true, "oblique": true}
	fontVariantTokens = map[string]bool{"normal": true, "small-caps": true}

	hexColorInBackgroundRe = regexp.MustCompile(`#[0-9a-fA-F]{3,8}\b`)
	rgbColorInBackgroundRe = regexp.MustCompile(`rgba?\([^)]*\)`)
	hslColorInBackgroundRe = regexp.MustCompile(`hsla?\([^)]*\)`)
)

// ExpandShorthand splits margin/padding/border/font/background shorthand
// properties in styles into their longhand equivalents, leaving everything
// else untouched. On any internal failure it returns the input unchanged
// on any failure, the input mapping is returned unchanged.
func ExpandShorthand(styles map[string]string) (out map[string]string) {
	defer func() {
		if recover() != nil {
			out = styles
		}
	}()

	if styles == nil {
		return styles
	}

	result := make(map[string]string, len(styles))
	for k, v := range styles {
		result[k] = v
	}

	if v, ok := styles["margin"]; ok {
		expandBox(result, "margin", v)
	}
	if v, ok := styles["padding"]; ok {
		expandBox(result, "padding", v)
	}
	if v, ok := styles["border"]; ok {
		expandBorder(result, v)
	}
	if v, ok := styles["font"]; ok {
		expandFont(result, v)
	}
	if v, ok := styles["background"]; ok {
		expandBackground(result, v)
	}

	return result
}

// expandBox expands the 1/2/3/4-value box model for margin/padding. Skips
// expansion if any longhand is already explicitly present.
func expandBox(result map[string]string, prop, value string) {
	sides := [4]string{prop + "-top", prop + "-right", prop + "-bottom", prop + "-left"}
	for _, side := range sides {
		if _, exists := result[side]; exists {
			return
		}
	}

	parts := strings.Fields(value)
	var top, right, bottom, left string
	switch len(parts) {
	case 1:
		top, right, bottom, left = parts[0], parts[0], parts[0], parts[0]
	case 2:
		top, right, bottom, left = parts[0], parts[1], parts[0], parts[1]
	case 3:
		top, right, bottom, left = parts[0], parts[1], parts[2], parts[1]
	case 4:
		top, right, bottom, left = parts[0], parts[1], parts[2], parts[3]
	default:
		return
	}

	result[sides[0]] = top
	result[sides[1]] = right
	result[sides[2]] = bottom
	result[sides[3]] = left
}

// expandBorder classifies the whitespace-separated tokens of a border
// shorthand into width/style/color by shape.
func expandBorder(result map[string]string, value string) {
	var width, style, color string
	for _, token := range strings.Fields(value) {
		switch {
		case borderWidthTokenRe.MatchString(token):
			width = token
		case borderStyleTokens[strings.ToLower(token)]:
			style = strings.ToLower(token)
		default:
			color = token
		}
	}

	if width != "" {
		result["border-width"] = width
	}
	if style != "" {
		result["border-style"] = style
	}
	if color != "" {
		result["border-color"] = color
	}
}

// expandFont extracts font-size (with optional /line-height) and the
// trailing family list from a font shorthand; preceding tokens classify as
// weight/style/variant from fixed vocabularies.
func expandFont(result map[string]string, value string) {
	m := fontSizeRe.FindStringSubmatch(value)
	if m == nil {
		return
	}

	size := m[1]
	lineHeight := m[2]
	family := strings.TrimSpace(m[3])

	prefix := strings.TrimSpace(value[:strings.Index(value, m[1])])
	for _, token := range strings.Fields(prefix) {
		lower := strings.ToLower(token)
		switch {
		case fontWeightTokens[lower]:
			result["font-weight"] = lower
		case fontStyleTokens[lower]:
			result["font-style"] = lower
		case fontVariantTokens[lower]:
			result["font-variant"] = lower
		}
	}

	result["font-size"] = size
	if lineHeight != "" {
		result["line-height"] = lineHeight
	}
	if family != "" {
		result["font-family"] = family
	}
}

// expandBackground extracts a background-color from a background
// shorthand. If the shorthand references an image or gradient, the
// shorthand is left in place untouched since the
// background-image portion can't be safely discarded.
func expandBackground(result map[string]string, value string) {
	lower := strings.ToLower(value)
	if strings.Contains(lower, "url(") || strings.Contains(lower, "gradient(") {
		return
	}

	if m := hexColorInBackgroundRe.FindString(value); m != "" {
		result["background-color"] = m
		return
	}
	if m := rgbColorInBackgroundRe.FindString(value); m != "" {
		result["background-color"] = m
		return
	}
	if m := hslColorInBackgroundRe.FindString(value); m != "" {
		result["background-color"] = m
		return
	}
	for _, token := range strings.Fields(value) {
		if _, ok := namedColors[strings.ToLower(token)]; ok {
			result["background-color"] = strings.ToLower(token)
			return
		}
	}
}
