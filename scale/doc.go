// Package scale maps arbitrary numeric series onto a bounded range of integer
// pixel heights, ready to be drawn as bars.
//
// What it does:
//
//	Values are normalized against a span anchored at zero,
//	  lo = min(values ∪ {0}),  hi = max(values ∪ {0}),  span = hi − lo,
//	then mapped linearly into [MinBarHeight, MaxHeight] and rounded half-up.
//	Anchoring at zero keeps a baseline even when every value is positive
//	(or every value negative), so [1 1 1] draws full bars and [0 0 0] draws
//	minimal ones.
//
// Guarantees:
//   - len(out) == len(values), order preserved
//   - every height in [MinBarHeight, MaxHeight(opts)]
//   - span == 0 ⇒ every height == MinBarHeight
//   - empty input ⇒ empty output; Scale never fails and never panics
//
// Usage:
//
//	opts := scale.DefaultOptions()     // min 8, container 160, margin 24
//	opts.MaxBarHeight = 100
//	h := scale.Scale([]float64{0, 5, 10}, opts) // [8 54 100]
//
// Complexity: O(n) time, O(n) memory.
package scale
