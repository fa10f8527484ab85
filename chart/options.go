// SPDX-License-Identifier: MIT
// Package: lvbars/chart
//
// options.go — functional options for New.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs
//     (negative sizes). Rendering and scaling never panic.
//   • Cross-field checks (max < min) are reported by New as errors.

package chart

import "github.com/katalvlaran/lvbars/scale"

// Defaults of the placeholder chart.
const (
	DefaultBarCount = 20
	DefaultSeed     = 13
	DefaultBarWidth = 12 // px, Tailwind w-3
	DefaultGap      = 4  // px, Tailwind gap-1
)

// config is the resolved option set behind a Placeholder.
type config struct {
	values    []float64
	barCount  int
	seed      int64
	scale     scale.Options
	className string
	barWidth  int
	gap       int
}

// defaultConfig returns the dashboard defaults.
func defaultConfig() config {
	return config{
		barCount: DefaultBarCount,
		seed:     DefaultSeed,
		scale:    scale.DefaultOptions(),
		barWidth: DefaultBarWidth,
		gap:      DefaultGap,
	}
}

// Option customizes a Placeholder before its bars are computed.
type Option func(*config)

// WithValues draws the given raw values instead of generated ones.
// The slice is copied. An empty list keeps the generated fallback.
func WithValues(values ...float64) Option {
	cp := append([]float64(nil), values...)
	return func(c *config) {
		c.values = cp
	}
}

// WithBarCount sets how many bars are generated when no values are given.
// Panics if n < 0.
func WithBarCount(n int) Option {
	if n < 0 {
		panic("chart: WithBarCount(n<0)")
	}
	return func(c *config) {
		c.barCount = n
	}
}

// WithSeed sets the seed of the generated fallback sequence.
// Any value is accepted; seed and -seed draw the same bars.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.seed = seed
	}
}

// WithHeight sets the container height in px. Panics if h < 0.
func WithHeight(h int) Option {
	if h < 0 {
		panic("chart: WithHeight(h<0)")
	}
	return func(c *config) {
		c.scale.TotalHeight = h
	}
}

// WithMinBarHeight sets the shortest bar height in px. Panics if h < 0.
func WithMinBarHeight(h int) Option {
	if h < 0 {
		panic("chart: WithMinBarHeight(h<0)")
	}
	return func(c *config) {
		c.scale.MinBarHeight = h
	}
}

// WithMaxBarHeight sets the tallest bar height in px; 0 restores the
// derived default (height − margin). Panics if h < 0.
func WithMaxBarHeight(h int) Option {
	if h < 0 {
		panic("chart: WithMaxBarHeight(h<0)")
	}
	return func(c *config) {
		c.scale.MaxBarHeight = h
	}
}

// WithClassName appends extra CSS classes to the HTML container.
func WithClassName(class string) Option {
	return func(c *config) {
		c.className = class
	}
}

// WithBarWidth sets the SVG bar width in px. Panics if w <= 0.
func WithBarWidth(w int) Option {
	if w <= 0 {
		panic("chart: WithBarWidth(w<=0)")
	}
	return func(c *config) {
		c.barWidth = w
	}
}

// WithGap sets the SVG spacing between bars in px. Panics if g < 0.
func WithGap(g int) Option {
	if g < 0 {
		panic("chart: WithGap(g<0)")
	}
	return func(c *config) {
		c.gap = g
	}
}
