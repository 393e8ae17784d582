package diff

import (
	"math"
	"strings"

	"github.com/snapdiff/snapdiff/compare/constants"
	"github.com/snapdiff/snapdiff/compare/styles"
)

const (
	displayBreakingThresholdPct = 50.0
	opacityHighThreshold        = 0.3
	luminanceHighThreshold       = 0.4
	fontSizeHighThresholdPct     = 25.0
)

// Classify assigns a severity to one difference following the fixed
// precedence: critical, then high, then medium, else low.
func Classify(d Difference) Severity {
	if d.Type == Unchanged {
		return SeverityLow
	}

	if constants.CriticalProperties[d.Property] || isLayoutBreaking(d) {
		return SeverityCritical
	}
	if constants.HighProperties[d.Property] || isHighVisualImpact(d) {
		return SeverityHigh
	}
	if constants.MediumProperties[d.Property] || d.Category == constants.CategoryLayout {
		return SeverityMedium
	}
	return SeverityLow
}

func isLayoutBreaking(d Difference) bool {
	switch d.Property {
	case "display":
		return d.BaseValue == "none" || d.CompareValue == "none" ||
			(constants.BlockLikeDisplay[d.BaseValue] != constants.BlockLikeDisplay[d.CompareValue])
	case "position":
		return (constants.OutOfFlowPosition[d.BaseValue] || constants.OutOfFlowPosition[d.CompareValue]) && d.BaseValue != d.CompareValue
	case "width", "height":
		base, ok1 := parsePx(d.BaseValue)
		compareVal, ok2 := parsePx(d.CompareValue)
		if !ok1 || !ok2 || base == 0 {
			return false
		}
		pct := math.Abs(compareVal-base) / base * 100
		return pct > displayBreakingThresholdPct
	default:
		return false
	}
}

func isHighVisualImpact(d Difference) bool {
	switch {
	case d.Property == "opacity":
		base, ok1 := parseFloat(d.BaseValue)
		compareVal, ok2 := parseFloat(d.CompareValue)
		return ok1 && ok2 && math.Abs(compareVal-base) > opacityHighThreshold

	case strings.Contains(d.Property, "color"):
		br, bg, bb, _, ok1 := styles.ParseRGBAChannels(d.BaseValue)
		cr, cg, cb, _, ok2 := styles.ParseRGBAChannels(d.CompareValue)
		if !ok1 || !ok2 {
			return false
		}
		baseLum := styles.RelativeLuminance(br, bg, bb)
		compareLum := styles.RelativeLuminance(cr, cg, cb)
		return math.Abs(baseLum-compareLum) > luminanceHighThreshold

	case d.Property == "font-size":
		base, ok1 := parsePx(d.BaseValue)
		compareVal, ok2 := parsePx(d.CompareValue)
		if !ok1 || !ok2 || base == 0 {
			return false
		}
		pct := math.Abs(compareVal-base) / base * 100
		return pct > fontSizeHighThresholdPct

	default:
		return false
	}
}

// OverallSeverity returns the highest severity present among diffs, or
// SeverityLow if diffs is empty.
func OverallSeverity(diffs []Difference) Severity {
	overall := SeverityLow
	for _, d := range diffs {
		overall = MaxSeverity(overall, d.Severity)
	}
	return overall
}

// SeverityCounts tallies how many differences fall into each severity
// bucket.
type SeverityCounts struct {
	Critical int `json:"critical"`
	High     int `json:"high"`
	Medium   int `json:"medium"`
	Low      int `json:"low"`
}

// CountSeverities aggregates diffs into a SeverityCounts.
func CountSeverities(diffs []Difference) SeverityCounts {
	var c SeverityCounts
	for _, d := range diffs {
		switch d.Severity {
		case SeverityCritical:
			c.Critical++
		case SeverityHigh:
			c.High++
		case SeverityMedium:
			c.Medium++
		default:
			c.Low++
		}
	}
	return c
}
