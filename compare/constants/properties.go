// Package constants holds the fixed CSS property name tables the comparator
// dispatches on: the color set and size set consumed by the normalizer,
// the category table consumed by the property differ, and the
// severity sets consumed by the severity analyzer.
package constants

// Color-typed properties normalize through the color normalizer.
var ColorProperties = map[string]bool{
	"color":                      true,
	"background-color":           true,
	"border-color":               true,
	"border-top-color":           true,
	"border-right-color":         true,
	"border-bottom-color":        true,
	"border-left-color":          true,
	"outline-color":              true,
	"text-decoration-color":      true,
	"column-rule-color":          true,
	"caret-color":                true,
}

// Size-typed properties normalize through the unit normalizer.
var SizeProperties = map[string]bool{
	"width":                true,
	"height":               true,
	"min-width":            true,
	"max-width":            true,
	"min-height":           true,
	"max-height":           true,
	"top":                  true,
	"right":                true,
	"bottom":               true,
	"left":                 true,
	"margin-top":           true,
	"margin-right":         true,
	"margin-bottom":        true,
	"margin-left":          true,
	"padding-top":          true,
	"padding-right":        true,
	"padding-bottom":       true,
	"padding-left":         true,
	"border-top-width":     true,
	"border-right-width":   true,
	"border-bottom-width":  true,
	"border-left-width":    true,
	"border-top-left-radius":     true,
	"border-top-right-radius":    true,
	"border-bottom-left-radius":  true,
	"border-bottom-right-radius": true,
	"font-size":       true,
	"line-height":     true,
	"letter-spacing":  true,
	"word-spacing":    true,
	"gap":             true,
	"row-gap":         true,
	"column-gap":      true,
	"grid-gap":        true,
	"outline-width":   true,
	"outline-offset":  true,
	"text-indent":     true,
}

// Property categories (spacing is checked before layout so margin/padding
// longhands don't fall through to the generic layout bucket).
const (
	CategoryLayout     = "layout"
	CategoryVisual      = "visual"
	CategoryTypography = "typography"
	CategorySpacing    = "spacing"
	CategoryPosition   = "position"
	CategoryContent    = "content"
	CategoryAttribute  = "attribute"
	CategoryOther      = "other"
)

// PropertyCategories maps a property name to its fixed category. Properties
// absent from this table fall back to CategoryOther.
var PropertyCategories = map[string]string{
	"display":        CategoryLayout,
	"width":          CategoryLayout,
	"height":         CategoryLayout,
	"min-width":      CategoryLayout,
	"max-width":      CategoryLayout,
	"min-height":     CategoryLayout,
	"max-height":     CategoryLayout,
	"float":          CategoryLayout,
	"overflow":       CategoryLayout,
	"flex-direction": CategoryLayout,
	"justify-content": CategoryLayout,
	"align-items":    CategoryLayout,
	"box-sizing":     CategoryLayout,

	"color":                 CategoryVisual,
	"background-color":      CategoryVisual,
	"background-image":      CategoryVisual,
	"border-color":          CategoryVisual,
	"border-top-color":      CategoryVisual,
	"border-right-color":    CategoryVisual,
	"border-bottom-color":   CategoryVisual,
	"border-left-color":     CategoryVisual,
	"outline-color":         CategoryVisual,
	"box-shadow":            CategoryVisual,
	"opacity":               CategoryVisual,
	"visibility":            CategoryVisual,
	"border-top-left-radius":     CategoryVisual,
	"border-top-right-radius":    CategoryVisual,
	"border-bottom-left-radius":  CategoryVisual,
	"border-bottom-right-radius": CategoryVisual,

	"font-family":      CategoryTypography,
	"font-size":        CategoryTypography,
	"font-weight":      CategoryTypography,
	"font-style":       CategoryTypography,
	"line-height":      CategoryTypography,
	"text-align":       CategoryTypography,
	"text-decoration":  CategoryTypography,
	"text-transform":   CategoryTypography,
	"letter-spacing":   CategoryTypography,
	"word-spacing":     CategoryTypography,

	"margin-top":          CategorySpacing,
	"margin-right":        CategorySpacing,
	"margin-bottom":       CategorySpacing,
	"margin-left":         CategorySpacing,
	"padding-top":         CategorySpacing,
	"padding-right":       CategorySpacing,
	"padding-bottom":      CategorySpacing,
	"padding-left":        CategorySpacing,
	"gap":                 CategorySpacing,
	"row-gap":             CategorySpacing,
	"column-gap":          CategorySpacing,
	"grid-gap":            CategorySpacing,

	"position": CategoryPosition,
	"top":      CategoryPosition,
	"right":    CategoryPosition,
	"bottom":   CategoryPosition,
	"left":     CategoryPosition,
	"z-index":  CategoryPosition,
}

// CategoryOf classifies a property, falling back to name-based heuristics
// ("or name contains ...") before defaulting to Other.
func CategoryOf(property string) string {
	if cat, ok := PropertyCategories[property]; ok {
		return cat
	}
	if containsAny(property, "color") {
		return CategoryVisual
	}
	if containsAny(property, "width", "height", "size") {
		return CategoryLayout
	}
	return CategoryOther
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if indexOf(s, sub) {
			return true
		}
	}
	return false
}

func indexOf(s, sub string) bool {
	if len(sub) == 0 || len(sub) > len(s) {
		return len(sub) == 0
	}
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return true
		}
	}
	return false
}

// Severity property sets, checked in fixed precedence order.
var (
	CriticalProperties = map[string]bool{
		"display":  true,
		"visibility": true,
		"position": true,
		"z-index":  true,
	}

	HighProperties = map[string]bool{
		"width":        true,
		"height":       true,
		"max-width":    true,
		"min-width":    true,
		"max-height":   true,
		"min-height":   true,
		"color":        true,
		"background-color": true,
		"opacity":      true,
		"font-size":    true,
		"font-family":  true,
		"font-weight":  true,
	}

	MediumProperties = map[string]bool{
		"margin-top":        true,
		"margin-right":      true,
		"margin-bottom":     true,
		"margin-left":       true,
		"padding-top":       true,
		"padding-right":     true,
		"padding-bottom":    true,
		"padding-left":      true,
		"border-top-width":  true,
		"border-right-width": true,
		"border-bottom-width": true,
		"border-left-width": true,
		"line-height":       true,
		"text-align":        true,
		"font-style":        true,
	}
)

// BlockLikeDisplay/OutOfFlowPosition enumerate the tokens the severity analyzer
// treats specially when deciding whether a display/position change is
// layout-breaking.
var (
	BlockLikeDisplay = map[string]bool{
		"block":        true,
		"flex":         true,
		"grid":         true,
		"inline-block": true,
	}

	OutOfFlowPosition = map[string]bool{
		"absolute": true,
		"fixed":    true,
	}
)

// StructuralAttributes is the default allow-list used when the active mode
// sets structuralAttributesOnly.
var StructuralAttributes = map[string]bool{
	"role":        true,
	"aria-label":  true,
	"type":        true,
	"name":        true,
	"data-testid": true,
}

// TestAttributePriority is the default ordered list of attributes strategy
// 1 of the element matcher checks; all 5 are used by default.
var TestAttributePriority = []string{
	"data-testid",
	"data-test",
	"data-qa",
	"data-cy",
	"data-automation-id",
}
