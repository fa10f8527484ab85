package scale

import (
	"errors"
	"fmt"
)

// Scale itself is total. These sentinels are returned only by
// Options.Validate, for callers that prefer to reject odd options up front.
var (
	// ErrNegativeHeight indicates a negative MinBarHeight, MaxBarHeight,
	// TotalHeight or Margin.
	ErrNegativeHeight = errors.New("scale: heights must be non-negative")

	// ErrInvertedRange indicates an explicit MaxBarHeight below MinBarHeight.
	ErrInvertedRange = errors.New("scale: MaxBarHeight must be >= MinBarHeight")
)

// Validate checks o for values Scale would have to silently correct.
// Errors wrap ErrNegativeHeight or ErrInvertedRange; use errors.Is.
//
// Complexity: O(1).
func (o Options) Validate() error {
	switch {
	case o.MinBarHeight < 0:
		return fmt.Errorf("MinBarHeight=%d: %w", o.MinBarHeight, ErrNegativeHeight)
	case o.MaxBarHeight < 0:
		return fmt.Errorf("MaxBarHeight=%d: %w", o.MaxBarHeight, ErrNegativeHeight)
	case o.TotalHeight < 0:
		return fmt.Errorf("TotalHeight=%d: %w", o.TotalHeight, ErrNegativeHeight)
	case o.Margin < 0:
		return fmt.Errorf("Margin=%d: %w", o.Margin, ErrNegativeHeight)
	case o.HasMaxBarHeight() && o.MaxBarHeight < o.MinBarHeight:
		return fmt.Errorf("MaxBarHeight=%d < MinBarHeight=%d: %w", o.MaxBarHeight, o.MinBarHeight, ErrInvertedRange)
	}
	return nil
}
