package vid

import (
	"fmt"
	"image"

	"github.com/WimbledonLabs/graphics-vid/internal/blend"
	"github.com/WimbledonLabs/graphics-vid/internal/clip"
	"github.com/WimbledonLabs/graphics-vid/internal/color"
	"github.com/WimbledonLabs/graphics-vid/internal/raster"
)

// Storage selects the pixel representation of a Framebuffer.
type Storage uint8

const (
	// StorageLinear stores linear-light float pixels. Frames must pass
	// through Encode before display.
	StorageLinear Storage = iota

	// StorageEncoded stores packed display values and blends them directly.
	StorageEncoded
)

// String returns the storage name.
func (s Storage) String() string {
	switch s {
	case StorageLinear:
		return "linear"
	case StorageEncoded:
		return "encoded"
	default:
		return fmt.Sprintf("Storage(%d)", uint8(s))
	}
}

// Framebuffer is a row-major grid of pixels, width*height long, with the
// pixel (x, y) at index x + y*width.
//
// A Framebuffer is not safe for concurrent mutation.
type Framebuffer struct {
	width   int
	height  int
	storage Storage
	linear  []Linear
	encoded []uint32
}

// NewFramebuffer creates a framebuffer cleared to black.
// It panics if width or height is negative.
func NewFramebuffer(width, height int, opts ...FramebufferOption) *Framebuffer {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("vid: invalid framebuffer size %dx%d", width, height))
	}

	o := defaultFramebufferOptions()
	for _, opt := range opts {
		opt(&o)
	}

	fb := &Framebuffer{width: width, height: height, storage: o.storage}
	switch o.storage {
	case StorageEncoded:
		fb.encoded = make([]uint32, width*height)
	default:
		fb.storage = StorageLinear
		fb.linear = make([]Linear, width*height)
	}
	fb.Clear(Black)
	return fb
}

// Width returns the framebuffer width in pixels.
func (fb *Framebuffer) Width() int { return fb.width }

// Height returns the framebuffer height in pixels.
func (fb *Framebuffer) Height() int { return fb.height }

// Storage returns the pixel representation chosen at construction.
func (fb *Framebuffer) Storage() Storage { return fb.storage }

// Bounds returns the framebuffer rectangle.
func (fb *Framebuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, fb.width, fb.height)
}

// Index returns the offset of pixel (x, y). It does not check bounds.
func (fb *Framebuffer) Index(x, y int) int {
	return x + y*fb.width
}

// In reports whether p lies inside the framebuffer.
func (fb *Framebuffer) In(p image.Point) bool {
	return p.X >= 0 && p.X < fb.width && p.Y >= 0 && p.Y < fb.height
}

// Clear sets every pixel to c.
func (fb *Framebuffer) Clear(c Color) {
	if fb.storage == StorageEncoded {
		v := uint32(c.Encoded())
		for i := range fb.encoded {
			fb.encoded[i] = v
		}
		return
	}
	v := c.Linear()
	for i := range fb.linear {
		fb.linear[i] = v
	}
}

// At returns the pixel at (x, y): a Linear for linear storage, an Encoded
// for encoded storage. Outside the framebuffer it returns the zero value
// of that type.
func (fb *Framebuffer) At(x, y int) Color {
	inside := fb.In(image.Pt(x, y))
	if fb.storage == StorageEncoded {
		if !inside {
			return Encoded(0)
		}
		return Encoded(fb.encoded[fb.Index(x, y)])
	}
	if !inside {
		return Linear{}
	}
	return fb.linear[fb.Index(x, y)]
}

// Blend composites c onto the pixel at (x, y) with coverage a:
// out = c*a + old*(1-a) per channel, with the result opaque.
// It returns an *OutOfRangeError if (x, y) lies outside the framebuffer.
func (fb *Framebuffer) Blend(x, y int, c Color, a float32) error {
	if !fb.In(image.Pt(x, y)) {
		return &OutOfRangeError{X: x, Y: y, Width: fb.width, Height: fb.height}
	}
	fb.blendAt(fb.Index(x, y), c, a)
	return nil
}

func (fb *Framebuffer) blendAt(i int, c Color, a float32) {
	if fb.storage == StorageEncoded {
		fb.encoded[i] = blend.OverPacked(fb.encoded[i], uint32(opaqueEncoded(c)), a)
		return
	}
	fb.linear[i] = Linear(blend.Over(color.ColorF32(fb.linear[i]), color.ColorF32(c.Linear()), a))
}

// opaqueEncoded converts a draw color for encoded storage. Drawing weighs a
// color by coverage only, so the A of a Linear is ignored as it is in
// linear storage.
func opaqueEncoded(c Color) Encoded {
	if l, ok := c.(Linear); ok {
		l.A = 1
		return l.Encoded()
	}
	return c.Encoded()
}

// DrawLine draws an anti-aliased line from p0 to p1. The segment is clipped
// to the framebuffer first; a segment entirely outside draws nothing.
func (fb *Framebuffer) DrawLine(c Color, p0, p1 image.Point) {
	s, ok := clip.Line(p0, p1, fb.width, fb.height)
	if !ok {
		return
	}
	fb.rasterize(c, s)
}

// DrawSegment draws a segment previously returned by Clip. It returns
// ErrSizeMismatch if the segment was clipped for a framebuffer of another
// size.
func (fb *Framebuffer) DrawSegment(c Color, s Segment) error {
	if !s.seg.Valid() || s.seg.Size() != image.Pt(fb.width, fb.height) {
		return fmt.Errorf("draw %v for %dx%d: %w", s, fb.width, fb.height, ErrSizeMismatch)
	}
	fb.rasterize(c, s.seg)
	return nil
}

// rasterize draws an already clipped segment. A coordinate outside the
// framebuffer here means the clipper broke its contract, so it panics
// with the *OutOfRangeError instead of returning it.
func (fb *Framebuffer) rasterize(c Color, s clip.Segment) {
	// Resolve the color once for the whole line.
	var src Color = c.Linear()
	if fb.storage == StorageEncoded {
		src = opaqueEncoded(c)
	}

	p0, p1 := s.Points()
	raster.Line(raster.PixelFunc(func(x, y int, a float32) {
		if !fb.In(image.Pt(x, y)) {
			panic(&OutOfRangeError{X: x, Y: y, Width: fb.width, Height: fb.height})
		}
		if a > 0 {
			fb.blendAt(fb.Index(x, y), src, a)
		}
	}), p0, p1)
}
