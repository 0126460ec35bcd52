package sheet

import (
	"errors"
	"fmt"
	"math"
	"time"
)

var (
	ErrNotAttached   = errors.New("sheet controller is not attached to a sheet")
	ErrInvalidSize   = errors.New("sheet size must be within [0, 1]")
	ErrZeroDuration  = errors.New("animation duration must be positive")
	ErrInvalidConfig = errors.New("invalid sheet config")
)

// Config is the static configuration of a sheet. Sizes are fractions of
// the container height.
type Config struct {
	MinSize     float64
	MaxSize     float64
	InitialSize float64

	Snap bool
	// SnapSizes are extra stops between MinSize and MaxSize, ascending.
	// When empty the sheet stops at its content size (or the midpoint when
	// no content has been measured).
	SnapSizes []float64
	// SnapAnimationDuration fixes how long a snap takes. Zero derives the
	// speed from the release velocity.
	SnapAnimationDuration time.Duration

	ShouldCloseOnMinExtent bool
}

func DefaultConfig() Config {
	return Config{
		MinSize:                0.25,
		MaxSize:                1.0,
		InitialSize:            0.5,
		ShouldCloseOnMinExtent: true,
	}
}

// Validate checks the bounds and snap sizes.
func (c Config) Validate() error {
	for _, v := range append([]float64{c.MinSize, c.MaxSize, c.InitialSize}, c.SnapSizes...) {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: size %v is not a finite number", ErrInvalidConfig, v)
		}
	}
	if c.MinSize < 0 || c.MaxSize > 1 || c.MinSize > c.MaxSize {
		return fmt.Errorf("%w: need 0 <= min (%v) <= max (%v) <= 1", ErrInvalidConfig, c.MinSize, c.MaxSize)
	}
	if c.InitialSize < c.MinSize || c.InitialSize > c.MaxSize {
		return fmt.Errorf("%w: initial size %v outside [%v, %v]", ErrInvalidConfig, c.InitialSize, c.MinSize, c.MaxSize)
	}
	if c.SnapAnimationDuration < 0 {
		return fmt.Errorf("%w: negative snap animation duration", ErrInvalidConfig)
	}
	for i, s := range c.SnapSizes {
		if s < c.MinSize || s > c.MaxSize {
			return fmt.Errorf("%w: snap size %v outside [%v, %v]", ErrInvalidConfig, s, c.MinSize, c.MaxSize)
		}
		if i > 0 && s <= c.SnapSizes[i-1] {
			return fmt.Errorf("%w: snap sizes must be strictly ascending", ErrInvalidConfig)
		}
	}
	return nil
}

// snapSizes returns the ordered stops, always starting at MinSize and
// ending at MaxSize. contentSize is ignored unless it lies strictly
// between the bounds.
func (c Config) snapSizes(contentSize float64) []float64 {
	if len(c.SnapSizes) == 0 {
		mid := (c.MinSize + c.MaxSize) / 2
		if contentSize > c.MinSize && contentSize < c.MaxSize {
			mid = contentSize
		}
		if mid <= c.MinSize || mid >= c.MaxSize {
			return []float64{c.MinSize, c.MaxSize}
		}
		return []float64{c.MinSize, mid, c.MaxSize}
	}
	sizes := make([]float64, 0, len(c.SnapSizes)+2)
	if c.SnapSizes[0] != c.MinSize {
		sizes = append(sizes, c.MinSize)
	}
	sizes = append(sizes, c.SnapSizes...)
	if c.SnapSizes[len(c.SnapSizes)-1] != c.MaxSize {
		sizes = append(sizes, c.MaxSize)
	}
	return sizes
}
