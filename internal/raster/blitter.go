// Package raster converts clipped line segments into per-pixel coverage.
package raster

// Blitter receives the coverage produced by Line. Coverage values are in
// [0,1]; every pixel handed to a Blitter lies inside the bounding box of
// the segment being drawn.
type Blitter interface {
	// BlitH covers the span [x, x+width) of row y fully.
	BlitH(x, y, width int)

	// BlitV covers the span [y, y+height) of column x fully.
	BlitV(x, y, height int)

	// BlitAntiH2 covers (x, y) with alpha0 and (x+1, y) with alpha1.
	BlitAntiH2(x, y int, alpha0, alpha1 float32)

	// BlitAntiV2 covers (x, y) with alpha0 and (x, y+1) with alpha1.
	BlitAntiV2(x, y int, alpha0, alpha1 float32)
}

// PixelFunc adapts a per-pixel coverage callback to the Blitter interface.
type PixelFunc func(x, y int, coverage float32)

// BlitH implements Blitter.
func (f PixelFunc) BlitH(x, y, width int) {
	for i := range width {
		f(x+i, y, 1)
	}
}

// BlitV implements Blitter.
func (f PixelFunc) BlitV(x, y, height int) {
	for i := range height {
		f(x, y+i, 1)
	}
}

// BlitAntiH2 implements Blitter.
func (f PixelFunc) BlitAntiH2(x, y int, alpha0, alpha1 float32) {
	f(x, y, alpha0)
	f(x+1, y, alpha1)
}

// BlitAntiV2 implements Blitter.
func (f PixelFunc) BlitAntiV2(x, y int, alpha0, alpha1 float32) {
	f(x, y, alpha0)
	f(x, y+1, alpha1)
}
