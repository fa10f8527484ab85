// SPDX-License-Identifier: MIT

package chart

import (
	"math"
	"strings"
)

// SparklineChars are the block characters used by Sparkline, lowest first.
var SparklineChars = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Sparkline renders heights as width block characters, relative to the
// smallest and largest height. When width differs from len(heights) the
// heights are sampled by position.
//
// Edge cases:
//   - width <= 0       ⇒ ""
//   - no heights       ⇒ width lowest blocks
//   - all heights equal ⇒ width lowest blocks
func Sparkline(heights []int, width int) string {
	if width <= 0 {
		return ""
	}
	if len(heights) == 0 {
		return strings.Repeat(string(SparklineChars[0]), width)
	}

	lo, hi := heights[0], heights[0]
	for _, h := range heights[1:] {
		lo = min(lo, h)
		hi = max(hi, h)
	}
	if lo == hi {
		return strings.Repeat(string(SparklineChars[0]), width)
	}

	top := len(SparklineChars) - 1
	out := make([]rune, width)
	for i := range out {
		idx := i * len(heights) / width
		level := int(math.Round(float64(heights[idx]-lo) / float64(hi-lo) * float64(top)))
		out[i] = SparklineChars[clampLevel(level, top)]
	}
	return string(out)
}

// Sparkline renders the placeholder's bars; width <= 0 draws one block per bar.
func (p *Placeholder) Sparkline(width int) string {
	if width <= 0 {
		width = len(p.bars)
	}
	return Sparkline(p.bars, width)
}

func clampLevel(level, top int) int {
	if level < 0 {
		return 0
	}
	if level > top {
		return top
	}
	return level
}
