// Package options contains the frozen configuration surface consumed by
// the comparator and its collaborators. Mirrors the render-options pattern
// of a small struct plus functional setters: construct once with
// DefaultConfig, apply Option values, then treat as read-only.
package options

import "time"

// ModeFilter is one comparison-mode preset: static or dynamic.
type ModeFilter struct {
	IgnoredProperties      map[string]bool
	CompareTextContent     bool
	StructuralOnlyAttrs    bool
	StructuralAttributes   map[string]bool
	Tolerances             Tolerances
}

// Tolerances bounds how different two property values may be before the
// property differ reports them as modified.
type Tolerances struct {
	Color   float64 // per-channel, 0-255 scale
	Size    float64 // px
	Opacity float64 // 0-1 scale
}

// Config is the frozen configuration object the comparator is constructed
// with. Nothing in compare/, selectors/, match/, diff/ or styles/ mutates
// it after construction.
type Config struct {
	Confidence struct {
		Min  float64
		High float64
	}

	Matching struct {
		PositionTolerance float64
	}

	Modes struct {
		Static  ModeFilter
		Dynamic ModeFilter
	}

	Severity struct {
		Critical []string
		High     []string
		Medium   []string
	}

	PropertyCategories struct {
		Layout     []string
		Visual     []string
		Typography []string
		Spacing    []string
		Position   []string
	}

	Normalization struct {
		CacheEnabled    bool
		CacheMaxEntries int
		RoundingDecimals int
	}

	Selectors struct {
		CSSPerStrategyTimeout   time.Duration
		XPathPerStrategyTimeout time.Duration
	}

	Attributes struct {
		Priority []string
	}
}

// Option configures a Config in-place during construction.
type Option func(*Config)

// DefaultConfig returns the built-in default configuration.
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Confidence.Min = 0.5
	cfg.Confidence.High = 0.9

	cfg.Matching.PositionTolerance = 50

	cfg.Modes.Static = ModeFilter{
		IgnoredProperties:  map[string]bool{},
		CompareTextContent: true,
		Tolerances:         Tolerances{Color: 5, Size: 3, Opacity: 0.01},
	}
	cfg.Modes.Dynamic = ModeFilter{
		IgnoredProperties: map[string]bool{
			"background-image": true,
			"content":          true,
			"cursor":           true,
			"pointer-events":   true,
		},
		CompareTextContent:   false,
		StructuralOnlyAttrs:  true,
		StructuralAttributes: map[string]bool{
			"role": true, "aria-label": true, "type": true, "name": true, "data-testid": true,
		},
		Tolerances: Tolerances{Color: 8, Size: 5, Opacity: 0.02},
	}

	cfg.Normalization.CacheEnabled = true
	cfg.Normalization.CacheMaxEntries = 2000
	cfg.Normalization.RoundingDecimals = 2

	cfg.Selectors.CSSPerStrategyTimeout = 50 * time.Millisecond
	cfg.Selectors.XPathPerStrategyTimeout = 80 * time.Millisecond

	cfg.Attributes.Priority = []string{
		"data-testid", "data-test", "data-qa", "data-cy", "data-automation-id",
	}

	return cfg
}

// New builds a Config from DefaultConfig with the given options applied.
func New(opts ...Option) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithPositionTolerance overrides the Euclidean-distance tolerance (px)
// used by the matcher's position strategy.
func WithPositionTolerance(px float64) Option {
	return func(c *Config) { c.Matching.PositionTolerance = px }
}

// WithMinConfidence overrides the minimum confidence a match must reach to
// be emitted.
func WithMinConfidence(min float64) Option {
	return func(c *Config) { c.Confidence.Min = min }
}

// WithCacheMaxEntries overrides the absolute-tier LRU capacity; the
// relative tier is always half this value.
func WithCacheMaxEntries(n int) Option {
	return func(c *Config) { c.Normalization.CacheMaxEntries = n }
}

// WithRoundingDecimals overrides the decimal precision normalization
// rounds numeric output to.
func WithRoundingDecimals(decimals int) Option {
	return func(c *Config) { c.Normalization.RoundingDecimals = decimals }
}

// WithSelectorTimeouts overrides the per-strategy timeouts used by the CSS
// and XPath selector-generation tier groups.
func WithSelectorTimeouts(css, xpath time.Duration) Option {
	return func(c *Config) {
		c.Selectors.CSSPerStrategyTimeout = css
		c.Selectors.XPathPerStrategyTimeout = xpath
	}
}

// Filter returns the ModeFilter for the named mode. The comparator fails
// loudly for unrecognized modes rather than silently falling back.
func (c *Config) Filter(mode string) (ModeFilter, bool) {
	switch mode {
	case "static":
		return c.Modes.Static, true
	case "dynamic":
		return c.Modes.Dynamic, true
	default:
		return ModeFilter{}, false
	}
}
