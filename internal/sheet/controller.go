package sheet

import (
	"fmt"
	"time"

	"github.com/depeter/dragsheet/internal/anim"
	"github.com/depeter/dragsheet/internal/physics"
)

// Controller moves a sheet programmatically. It must be attached to a
// Sheet; every method on a detached controller returns ErrNotAttached and
// does nothing.
type Controller struct {
	sheet *Sheet
}

func NewController() *Controller {
	return &Controller{}
}

func (c *Controller) IsAttached() bool {
	return c.sheet != nil
}

func (c *Controller) attached() (*Sheet, error) {
	if c.sheet == nil {
		return nil, ErrNotAttached
	}
	return c.sheet, nil
}

// Size returns the current size as a fraction of the container.
func (c *Controller) Size() (float64, error) {
	s, err := c.attached()
	if err != nil {
		return 0, err
	}
	return s.extent.CurrentSize(), nil
}

// Pixels returns the current size in pixels.
func (c *Controller) Pixels() (float64, error) {
	s, err := c.attached()
	if err != nil {
		return 0, err
	}
	return s.extent.CurrentPixels(), nil
}

func (c *Controller) SizeToPixels(size float64) (float64, error) {
	s, err := c.attached()
	if err != nil {
		return 0, err
	}
	return s.extent.SizeToPixels(size), nil
}

func (c *Controller) PixelsToSize(pixels float64) (float64, error) {
	s, err := c.attached()
	if err != nil {
		return 0, err
	}
	return s.extent.PixelsToSize(pixels), nil
}

// JumpTo moves the sheet to size immediately. Snapping stays off until the
// user drags again.
func (c *Controller) JumpTo(size float64) error {
	s, err := c.attached()
	if err != nil {
		return err
	}
	if err := checkSize(size); err != nil {
		return err
	}
	e := s.extent
	e.CancelActivity()
	e.hasDragged = false
	e.hasChanged = true
	e.UpdateSize(size)
	return nil
}

// AnimateTo moves the sheet to size over d along curve (linear when nil).
// The returned channel closes when the animation completes or is
// interrupted by another activity; interruption is not an error.
func (c *Controller) AnimateTo(size float64, d time.Duration, curve physics.Curve) (<-chan struct{}, error) {
	s, err := c.attached()
	if err != nil {
		return nil, err
	}
	if err := checkSize(size); err != nil {
		return nil, err
	}
	if d <= 0 {
		return nil, fmt.Errorf("animate to %v: %w", size, ErrZeroDuration)
	}

	e := s.extent
	ctrl := anim.NewController(s.loop, e.CurrentSize())
	s.list.CancelDrag()
	e.hasDragged = false
	e.hasChanged = true
	e.StartActivity(ctrl.Stop)
	ctrl.AddListener(func() {
		s.extent.UpdateSize(ctrl.Value())
	})
	target := min(max(size, e.MinSize()), e.MaxSize())
	return ctrl.AnimateTo(target, d, curve), nil
}

// Reset returns the sheet to its initial size with its content unscrolled
// and clears the interaction flags.
func (c *Controller) Reset() error {
	s, err := c.attached()
	if err != nil {
		return err
	}
	e := s.extent
	e.CancelActivity()
	e.hasDragged = false
	e.hasChanged = false
	s.list.CancelDrag()
	if s.list.Offset() != 0 {
		s.list.JumpTo(0)
	}
	e.UpdateSize(e.InitialSize())
	return nil
}

func checkSize(size float64) error {
	if size < 0 || size > 1 {
		return fmt.Errorf("size %v: %w", size, ErrInvalidSize)
	}
	return nil
}
