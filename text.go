package vid

import (
	"image"

	"github.com/WimbledonLabs/graphics-vid/text"
)

// DrawText draws s with the built-in stroke font. origin is the top-left
// corner of the first character cell and size the cell height in pixels.
// Glyph strokes are drawn at full coverage and clipped to the framebuffer.
//
// See package text for the layout rules and options.
func (fb *Framebuffer) DrawText(c Color, origin image.Point, size float64, s string, opts ...text.Option) {
	for st := range text.Strokes(origin, size, s, opts...) {
		fb.DrawLine(c, st.P0, st.P1)
	}
}

// MeasureText returns the pixel extent DrawText would occupy for s.
func MeasureText(size float64, s string, opts ...text.Option) image.Point {
	return text.Measure(size, s, opts...)
}
