package compare

import (
	"fmt"
	"strings"
)

// Error represents a failure at the comparator boundary: a programmer error
// such as an unrecognized mode keyword, or a malformed input
// report. Per-property and per-strategy failures inside normalization,
// selector generation, matching and diffing are never surfaced this way —
// they are absorbed locally and reported, if at all, as Details on a
// non-fatal telemetry callback instead.
//
// Error is deliberately shaped like an aggregate: one top-level Message
// plus zero or more Details, so a single Compare call can report more than
// one malformed element without aborting early.
type Error struct {
	Message string  `json:"message"`
	Details []Detail `json:"details"`
}

// Detail describes a single offending property, element or input.
type Detail struct {
	ElementID string `json:"elementId,omitempty"`
	Property  string `json:"property,omitempty"`
	Message   string `json:"message"`
}

func (e *Error) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Message)

	n := len(e.Details)
	if n > 0 {
		sb.WriteString(":\n")
	}
	for i, d := range e.Details {
		if d.ElementID != "" && d.Property != "" {
			fmt.Fprintf(&sb, "- element %s, property %s: %s", d.ElementID, d.Property, d.Message)
		} else if d.ElementID != "" {
			fmt.Fprintf(&sb, "- element %s: %s", d.ElementID, d.Message)
		} else {
			fmt.Fprintf(&sb, "- %s", d.Message)
		}
		if i != n-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// ErrInvalidMode reports an unrecognized comparison mode keyword.
func ErrInvalidMode(mode string) *Error {
	return &Error{
		Message: "invalid comparison mode",
		Details: []Detail{{Message: fmt.Sprintf("mode %q is not one of: static, dynamic", mode)}},
	}
}

// ErrMalformedReport reports that a report's element list could not be
// used as given (e.g. a nil slice where elements were expected).
func ErrMalformedReport(reportID, reason string) *Error {
	return &Error{
		Message: "malformed element report",
		Details: []Detail{{ElementID: reportID, Message: reason}},
	}
}
