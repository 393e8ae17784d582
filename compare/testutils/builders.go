// Package testutils provides small fixture builders for constructing
// element descriptors and reports in tests without repeating struct
// literals everywhere.
package testutils

import (
	"time"

	"github.com/snapdiff/snapdiff/compare/model"
)

// Element builds an ElementDescriptor with the given id, tag and styles.
// Attributes, position and selectors default to zero values; use the
// With* helpers below to add them.
func Element(id, tagName string, styles map[string]string) model.ElementDescriptor {
	return model.ElementDescriptor{
		ID:      id,
		TagName: tagName,
		Styles:  styles,
	}
}

// WithElementID returns a copy of e with ElementID set.
func WithElementID(e model.ElementDescriptor, elementID string) model.ElementDescriptor {
	e.ElementID = elementID
	return e
}

// WithAttributes returns a copy of e with Attributes set.
func WithAttributes(e model.ElementDescriptor, attrs map[string]string) model.ElementDescriptor {
	e.Attributes = attrs
	return e
}

// WithPosition returns a copy of e with Position set.
func WithPosition(e model.ElementDescriptor, x, y float64) model.ElementDescriptor {
	e.Position = &model.Point{X: x, Y: y}
	return e
}

// WithSelectors returns a copy of e with a CSS/XPath selector pair set.
func WithSelectors(e model.ElementDescriptor, css string, cssConfidence int, xpath string, xpathConfidence int) model.ElementDescriptor {
	e.Selectors = model.SelectorInfo{
		CSS: css, CSSConfidence: cssConfidence,
		XPath: xpath, XPathConfidence: xpathConfidence,
	}
	return e
}

// WithTextContent returns a copy of e with TextContent set.
func WithTextContent(e model.ElementDescriptor, text string) model.ElementDescriptor {
	e.TextContent = text
	return e
}

// Report builds a Report with a fixed, deterministic timestamp (tests must
// never depend on wall-clock time) and the given elements.
func Report(id, url, title string, elements ...model.ElementDescriptor) model.Report {
	return model.Report{
		ID:        id,
		URL:       url,
		Title:     title,
		Timestamp: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		Elements:  elements,
	}
}
