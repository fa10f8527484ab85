package scale

// Defaults of the placeholder chart container.
const (
	// DefaultMinBarHeight is the height of a bar at the bottom of the span.
	DefaultMinBarHeight = 8

	// DefaultTotalHeight is the container height the bars are fitted into.
	DefaultTotalHeight = 160

	// DefaultMargin is the vertical space reserved inside the container
	// (padding and border) when MaxBarHeight is derived.
	DefaultMargin = 24
)

// Options configures Scale.
//
// Fields:
//   - MinBarHeight — height assigned to the smallest value of the span.
//   - MaxBarHeight — height assigned to the largest value of the span.
//     Zero means "absent": MaxHeight derives it from TotalHeight and Margin.
//   - TotalHeight  — container height, used only when MaxBarHeight is absent.
//   - Margin       — space subtracted from TotalHeight for the derived maximum.
//
// Example:
//
//	opts := DefaultOptions()
//	opts.TotalHeight = 120 // derived max = 96
type Options struct {
	MinBarHeight int
	MaxBarHeight int
	TotalHeight  int
	Margin       int
}

// DefaultOptions returns the placeholder chart defaults:
// MinBarHeight=8, MaxBarHeight derived, TotalHeight=160, Margin=24.
func DefaultOptions() Options {
	return Options{
		MinBarHeight: DefaultMinBarHeight,
		TotalHeight:  DefaultTotalHeight,
		Margin:       DefaultMargin,
	}
}

// HasMaxBarHeight reports whether MaxBarHeight was set explicitly.
func (o Options) HasMaxBarHeight() bool {
	return o.MaxBarHeight != 0
}
