package scale_test

import (
	"testing"

	"github.com/katalvlaran/lvbars/scale"
	"github.com/katalvlaran/lvbars/seqgen"
)

// benchmarkScale runs Scale on n generated values with default options.
func benchmarkScale(b *testing.B, n int) {
	raw := seqgen.Generate(n, 42)
	f := make([]float64, n)
	for i, v := range raw {
		f[i] = float64(v)
	}
	opts := scale.DefaultOptions()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = scale.Scale(f, opts)
	}
}

// BenchmarkScale_Small benchmarks the default 20-bar chart.
func BenchmarkScale_Small(b *testing.B) { benchmarkScale(b, 20) }

// BenchmarkScale_Large benchmarks a 10k-bar series.
func BenchmarkScale_Large(b *testing.B) { benchmarkScale(b, 10_000) }
