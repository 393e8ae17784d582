// Package diff computes per-property differences between two elements'
// normalized styles (and attributes/text), classifying each by category
// and tolerance-aware significance, and assigns a severity to each.
package diff

// DiffType enumerates how a property changed between baseline and compare.
type DiffType string

const (
	Added     DiffType = "added"
	Removed   DiffType = "removed"
	Modified  DiffType = "modified"
	Unchanged DiffType = "unchanged"
)

// Severity enumerates the four levels a difference can be assigned,
// ordered from least to most severe.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// severityRank gives the total order critical > high > medium > low used by
// overall-severity aggregation.
var severityRank = map[Severity]int{
	SeverityLow:      0,
	SeverityMedium:   1,
	SeverityHigh:     2,
	SeverityCritical: 3,
}

// MaxSeverity returns the more severe of a and b.
func MaxSeverity(a, b Severity) Severity {
	if severityRank[b] > severityRank[a] {
		return b
	}
	return a
}

// Difference is one property's comparison outcome.
type Difference struct {
	Property     string   `json:"property"`
	BaseValue    string   `json:"baseValue"`
	CompareValue string   `json:"compareValue"`
	Type         DiffType `json:"type"`
	Category     string   `json:"category"`
	Severity     Severity `json:"severity"`
}
