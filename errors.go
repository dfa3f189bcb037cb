package vid

import (
	"errors"
	"fmt"
)

// Sentinel errors for vid package.
var (
	// ErrOutOfRange is returned when a pixel coordinate lies outside the
	// framebuffer.
	ErrOutOfRange = errors.New("vid: coordinate out of range")

	// ErrSizeMismatch is returned when a Segment clipped for one canvas size
	// is drawn into a framebuffer of another size.
	ErrSizeMismatch = errors.New("vid: segment clipped for a different framebuffer size")

	// ErrDisplaySize is returned when a display buffer does not hold exactly
	// width*height pixels.
	ErrDisplaySize = errors.New("vid: display buffer size mismatch")
)

// OutOfRangeError records a pixel access outside the framebuffer.
type OutOfRangeError struct {
	X, Y          int
	Width, Height int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("vid: point (%d, %d) out of range for %dx%d framebuffer", e.X, e.Y, e.Width, e.Height)
}

// Unwrap returns ErrOutOfRange.
func (e *OutOfRangeError) Unwrap() error {
	return ErrOutOfRange
}
