package vid

import "github.com/WimbledonLabs/graphics-vid/internal/color"

// Color is a color that can be drawn into a Framebuffer.
//
// Linear and Encoded are its only implementations, and the two methods
// below are the only place where linear and display-encoded values are
// converted into each other.
type Color interface {
	// Linear returns the color as linear light.
	Linear() Linear

	// Encoded returns the color as a packed display value.
	Encoded() Encoded

	isColor()
}

// Linear is a linear-light color. Each channel is in [0,1].
// A scales the color when it is encoded for display; drawing ignores it
// and uses the per-pixel coverage instead.
type Linear struct {
	R, G, B, A float32
}

// Common colors.
var (
	Black = Linear{A: 1}
	White = Linear{R: 1, G: 1, B: 1, A: 1}
)

// RGB returns an opaque linear color.
func RGB(r, g, b float32) Linear {
	return Linear{R: r, G: g, B: b, A: 1}
}

// Gray returns an opaque linear gray of intensity v.
func Gray(v float32) Linear {
	return Linear{R: v, G: v, B: v, A: 1}
}

// Scale multiplies the RGB channels by k.
func (c Linear) Scale(k float32) Linear {
	return Linear{R: c.R * k, G: c.G * k, B: c.B * k, A: c.A}
}

// Linear returns c.
func (c Linear) Linear() Linear { return c }

// Encoded applies the display curve to c, scaling each channel by A first.
func (c Linear) Encoded() Encoded {
	return Encoded(color.Encode(color.ColorF32(c)))
}

func (Linear) isColor() {}

// Encoded is a display-encoded color packed as 0x00RRGGBB.
// The top byte is ignored; an Encoded color always covers fully.
type Encoded uint32

// RGB8 packs three display channels.
func RGB8(r, g, b uint8) Encoded {
	return Encoded(color.Pack(r, g, b))
}

// RGB returns the display channels of c.
func (c Encoded) RGB() (r, g, b uint8) {
	return color.Unpack(uint32(c))
}

// Linear inverts the display curve. The result is opaque.
func (c Encoded) Linear() Linear {
	return Linear(color.Decode(uint32(c)))
}

// Encoded returns c with the top byte cleared.
func (c Encoded) Encoded() Encoded { return c & 0xffffff }

func (Encoded) isColor() {}
