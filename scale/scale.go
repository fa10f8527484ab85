package scale

import "math"

// MaxHeight resolves the top of the output range.
//
// Policy:
//   - explicit MaxBarHeight ⇒ used as is, raised to MinBarHeight if smaller
//     so the range is never inverted;
//   - otherwise ⇒ max(MinBarHeight+1, TotalHeight−Margin), never empty even
//     for tiny containers.
//
// Complexity: O(1).
func MaxHeight(opts Options) int {
	if opts.HasMaxBarHeight() {
		return max(opts.MaxBarHeight, opts.MinBarHeight)
	}
	return max(opts.MinBarHeight+1, opts.TotalHeight-opts.Margin)
}

// Bounds returns the zero-anchored extent of values:
// lo = min(values ∪ {0}), hi = max(values ∪ {0}), span = hi − lo.
//
// Complexity: O(n).
func Bounds(values []float64) (lo, hi, span float64) {
	for _, v := range values {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi, hi - lo
}

// Scale maps values onto integer heights in [opts.MinBarHeight, MaxHeight(opts)].
//
// Algorithm:
//  1. lo, hi, span = Bounds(values).
//  2. span == 0 ⇒ every height is MinBarHeight.
//  3. Otherwise for each v:
//     norm = (v − lo) / span                      // [0, 1]
//     h    = ⌊MinBarHeight + norm·(top − MinBarHeight) + ½⌋
//     h    = clamp(h, MinBarHeight, top)
//
// values is never modified. An empty input yields an empty, non-nil slice.
// A NaN value is drawn at MinBarHeight.
//
// Example:
//
//	Scale([]float64{0, 5, 10}, Options{MinBarHeight: 8, MaxBarHeight: 100}) // [8 54 100]
//	Scale([]float64{0, 0, 0}, Options{MinBarHeight: 8, MaxBarHeight: 100})  // [8 8 8]
//
// Complexity: O(n) time, O(n) memory.
func Scale(values []float64, opts Options) []int {
	out := make([]int, len(values))
	if len(values) == 0 {
		return out
	}

	floor := opts.MinBarHeight
	top := MaxHeight(opts)
	lo, _, span := Bounds(values)

	if span == 0 {
		for i := range out {
			out[i] = floor
		}
		return out
	}

	rng := float64(top - floor)
	for i, v := range values {
		norm := (v - lo) / span
		if math.IsNaN(norm) {
			out[i] = floor
			continue
		}
		h := int(math.Floor(float64(floor) + norm*rng + 0.5))
		out[i] = clamp(h, floor, top)
	}

	return out
}

// ScaleInts is Scale over integer input, e.g. a seqgen sequence.
// Complexity: O(n) time, O(n) memory.
func ScaleInts(values []int, opts Options) []int {
	f := make([]float64, len(values))
	for i, v := range values {
		f[i] = float64(v)
	}
	return Scale(f, opts)
}

// clamp bounds x into [lo, hi].
func clamp(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
