package seqgen

// Generator is the stateful form of Generate: it yields the same stream one
// value at a time. The zero value is not usable; construct with NewGenerator.
//
// A Generator is not safe for concurrent use.
type Generator struct {
	x int64 // current LCG state, always in [1, Modulus-1]
}

// NewGenerator returns a Generator positioned at the start of seed's stream.
// Complexity: O(1).
func NewGenerator(seed int64) *Generator {
	return &Generator{x: NormalizeSeed(seed)}
}

// Next advances the state once and returns the next value in
// [MinValue, MaxValue].
//
// Multiplier·x stays below 2⁴⁷, so the product fits in int64 and the
// fraction x/Modulus is exact in float64.
//
// Complexity: O(1).
func (g *Generator) Next() int {
	g.x = (Multiplier * g.x) % Modulus
	frac := float64(g.x) / float64(Modulus) // [0, 1)

	return MinValue + int(frac*ValueSpan)
}

// Fill writes len(dst) consecutive values into dst without allocating.
// Complexity: O(len(dst)).
func (g *Generator) Fill(dst []int) {
	for i := range dst {
		dst[i] = g.Next()
	}
}

// State returns the raw LCG state, in [1, Modulus-1].
func (g *Generator) State() int64 {
	return g.x
}
