package chart_test

import (
	"testing"
	"unicode/utf8"

	"github.com/katalvlaran/lvbars/chart"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSparkline_Levels maps the lowest and highest heights to the extreme blocks.
func TestSparkline_Levels(t *testing.T) {
	assert.Equal(t, "▁▅█", chart.Sparkline([]int{8, 54, 100}, 3))
	assert.Equal(t, "▂▅▁█▄", chart.Sparkline([]int{37, 67, 28, 96, 57}, 5))
}

// TestSparkline_EdgeCases covers width<=0, empty and flat inputs.
func TestSparkline_EdgeCases(t *testing.T) {
	assert.Equal(t, "", chart.Sparkline([]int{1, 2}, 0))
	assert.Equal(t, "", chart.Sparkline([]int{1, 2}, -4))
	assert.Equal(t, "▁▁▁", chart.Sparkline(nil, 3))
	assert.Equal(t, "▁▁", chart.Sparkline([]int{8, 8, 8}, 2))
}

// TestSparkline_Resample checks the output width when sampling.
func TestSparkline_Resample(t *testing.T) {
	assert.Equal(t, 40, utf8.RuneCountInString(chart.Sparkline([]int{1, 5, 9}, 40)))
	assert.Equal(t, "▁█", chart.Sparkline([]int{0, 0, 10, 10}, 2))
}

// TestPlaceholder_Sparkline draws one block per bar by default.
func TestPlaceholder_Sparkline(t *testing.T) {
	p, err := chart.New(chart.WithValues(3, 6, 2, 9, 5), chart.WithHeight(120))
	require.NoError(t, err)

	assert.Equal(t, "▂▅▁█▄", p.Sparkline(0))
	assert.Equal(t, 10, utf8.RuneCountInString(p.Sparkline(10)))
}
