// Package model holds the shared element-report data types consumed and
// produced across the comparator's subpackages (compare, match, diff,
// modes). It exists as its own leaf package, rather than living in the
// root compare package, so match and diff can depend on the element types
// without importing the facade that in turn depends on them.
package model

import "time"

// Point is an element's absolute page position in CSS pixels.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// SelectorInfo is the precomputed selector pair an extractor attaches to an
// element descriptor. It is produced upstream by selector generation
// and consumed here only as matching input — the comparator never
// regenerates selectors for elements it is diffing.
type SelectorInfo struct {
	CSS             string `json:"css"`
	CSSConfidence   int    `json:"cssConfidence"`
	XPath           string `json:"xpath"`
	XPathConfidence int    `json:"xpathConfidence"`
}

// ElementDescriptor is an enriched, extractor-produced record of one DOM
// element. Within a single Report, ID is unique and, when non-empty,
// Selectors.CSS/XPath match exactly one element in the originating DOM.
type ElementDescriptor struct {
	ID          string            `json:"id"`
	TagName     string            `json:"tagName"`
	ElementID   string            `json:"elementId"`
	ClassName   string            `json:"className"`
	Attributes  map[string]string `json:"attributes"`
	TextContent string            `json:"textContent"`
	Styles      map[string]string `json:"styles"`
	Position    *Point            `json:"position,omitempty"`
	Selectors   SelectorInfo      `json:"selectors"`
}

// Report is one snapshot of a rendered page: the set of elements extracted
// from it plus the page metadata needed to label a comparison.
type Report struct {
	ID        string              `json:"id"`
	URL       string              `json:"url"`
	Title     string              `json:"title"`
	Timestamp time.Time           `json:"timestamp"`
	Elements  []ElementDescriptor `json:"elements"`
}

// NormalizedStyles carries the same keys as an ElementDescriptor's Styles
// map after shorthand expansion, with every value in canonical form.
type NormalizedStyles map[string]string
