// SPDX-License-Identifier: MIT

package chart

import (
	"fmt"

	"github.com/katalvlaran/lvbars/scale"
	"github.com/katalvlaran/lvbars/seqgen"
)

// Placeholder is a computed bar chart. Heights are derived once in New.
type Placeholder struct {
	cfg  config
	bars []int
}

// New resolves opts over the defaults, validates them and computes the bars.
//
// Errors:
//   - ErrInvalidOptions (wrapping scale.ErrInvertedRange) when an explicit
//     max bar height is below the min bar height.
//
// Complexity: O(n) for n bars.
func New(opts ...Option) (*Placeholder, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.scale.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", MethodNew, ErrInvalidOptions, err)
	}

	return &Placeholder{cfg: cfg, bars: computeBars(cfg)}, nil
}

// computeBars picks caller values when present, otherwise the generated
// sequence, and scales them into the configured range.
func computeBars(cfg config) []int {
	if len(cfg.values) > 0 {
		return scale.Scale(cfg.values, cfg.scale)
	}
	return scale.ScaleInts(seqgen.Generate(cfg.barCount, cfg.seed), cfg.scale)
}

// Bars returns a copy of the bar heights in px, in input order.
func (p *Placeholder) Bars() []int {
	out := make([]int, len(p.bars))
	copy(out, p.bars)
	return out
}

// Len returns the number of bars.
func (p *Placeholder) Len() int {
	return len(p.bars)
}

// Height returns the container height in px.
func (p *Placeholder) Height() int {
	return p.cfg.scale.TotalHeight
}

// MaxBarHeight returns the resolved tallest bar height in px.
func (p *Placeholder) MaxBarHeight() int {
	return scale.MaxHeight(p.cfg.scale)
}

// Generated reports whether the bars come from the seeded fallback sequence.
func (p *Placeholder) Generated() bool {
	return len(p.cfg.values) == 0
}
