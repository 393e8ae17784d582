package compare

import "github.com/snapdiff/snapdiff/compare/model"

// These aliases let callers write compare.ElementDescriptor/compare.Report
// while the underlying types live in compare/model, where match and diff
// can depend on them without importing this facade package in turn.
type (
	Point              = model.Point
	SelectorInfo        = model.SelectorInfo
	ElementDescriptor   = model.ElementDescriptor
	Report              = model.Report
	NormalizedStyles    = model.NormalizedStyles
)
