// Package seqgen produces reproducible sequences of bounded integers from a
// numeric seed, using the Park–Miller "minimal standard" multiplicative LCG.
//
// 🚀 What is it for?
//
//	Placeholder charts need bars that look random but never change between
//	renders, test runs or machines. seqgen turns (count, seed) into the same
//	slice of values every time:
//	  • dashboard skeletons and empty states
//	  • snapshot / golden-file tests
//	  • demo data for sparklines
//
// ✨ Key properties:
//   - deterministic: identical (count, seed) ⇒ identical output, bit for bit
//   - sign invariant: seed and -seed produce the same stream
//   - bounded: every value lies in [MinValue, MaxValue] = [10, 109]
//   - total: count <= 0 yields an empty slice, never an error
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvbars/seqgen"
//
//	vals := seqgen.Generate(5, 42) // [10 67 35 54 75]
//
//	g := seqgen.NewGenerator(42)    // same stream, one value at a time
//	first := g.Next()               // 10
//
// Algorithm:
//
//	x₀ = |seed| mod M, replaced by 13 when zero
//	xₖ = A·xₖ₋₁ mod M,  A = 48271, M = 2³¹−1
//	vₖ = 10 + ⌊xₖ/M · 100⌋
//
// Performance:
//
//   - Time:   O(count)
//   - Memory: O(count) for Generate, O(1) for Generator.Fill
//
// Generate is safe for concurrent use. A *Generator is not; give each
// goroutine its own.
package seqgen
