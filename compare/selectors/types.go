package selectors

import "golang.org/x/net/html"

// Candidate is one selector/xpath string a strategy proposes, tagged with
// the tier (and derived robustness score) that produced it.
type Candidate struct {
	Value      string
	Tier       int
	Robustness int
}

// Strategy generates zero or more candidates for target, given the
// document root it lives in (needed for ancestor/sibling-relative
// strategies and for verification later in the pipeline).
type Strategy func(target *html.Node, root *html.Node) []Candidate

// TierGroup is a contiguous run of same-robustness-class strategies that
// are run concurrently before the tiered cascade picks a winner.
type TierGroup struct {
	Strategies []Strategy
}
