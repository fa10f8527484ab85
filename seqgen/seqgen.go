package seqgen

// Stream parameters of the minimal standard generator.
const (
	// Modulus is the Mersenne prime 2³¹−1.
	Modulus int64 = 2147483647

	// Multiplier is a full-period multiplier for Modulus.
	Multiplier int64 = 48271

	// FallbackSeed replaces a seed that normalizes to zero, the absorbing
	// fixed point of a multiplicative LCG.
	FallbackSeed int64 = 13
)

// Output range of every generated value.
const (
	// MinValue is the smallest value Generate can return.
	MinValue = 10

	// ValueSpan is the number of distinct values: outputs are MinValue+[0, ValueSpan).
	ValueSpan = 100

	// MaxValue is the largest value Generate can return.
	MaxValue = MinValue + ValueSpan - 1
)

// NormalizeSeed maps any seed onto the generator's initial state:
// |seed| mod Modulus, or FallbackSeed when that is zero.
//
// The remainder is taken before the sign is dropped, so math.MinInt64
// does not overflow.
//
// Complexity: O(1).
func NormalizeSeed(seed int64) int64 {
	x := seed % Modulus
	if x < 0 {
		x = -x
	}
	if x == 0 {
		x = FallbackSeed
	}
	return x
}

// Generate returns exactly count values in [MinValue, MaxValue] derived from seed.
//
// Steps:
//  1. x = NormalizeSeed(seed).
//  2. Repeat count times: x = Multiplier·x mod Modulus,
//     v = MinValue + ⌊x/Modulus · ValueSpan⌋.
//
// A negative count is treated as zero. The result is never nil.
//
// Example:
//
//	Generate(5, 42)  // [10 67 35 54 75]
//	Generate(5, -42) // [10 67 35 54 75]
//	Generate(0, 7)   // []
//
// Complexity: O(count) time, O(count) memory.
func Generate(count int, seed int64) []int {
	if count < 0 {
		count = 0
	}
	out := make([]int, count)
	NewGenerator(seed).Fill(out)

	return out
}
