package raster

import "image"

// Line rasterizes the segment p0-p1 with error-accumulation anti-aliasing.
//
// Vertical, horizontal and exact 45° diagonal segments are drawn at full
// coverage. Other segments step one pixel along their major axis and split
// that step's coverage between the row (or column) the line is on and the
// adjacent one it is drifting towards. The final endpoint is always drawn
// at full coverage, so a degenerate segment is a single full pixel.
//
// Line does no clipping: the caller must ensure the segment's bounding box
// lies inside whatever the blitter writes to.
func Line(b Blitter, p0, p1 image.Point) {
	dx := p1.X - p0.X
	dy := p1.Y - p0.Y
	adx, ady := abs(dx), abs(dy)

	switch {
	case dx == 0:
		b.BlitV(p0.X, min(p0.Y, p1.Y), ady+1)
		return
	case dy == 0:
		b.BlitH(min(p0.X, p1.X), p0.Y, adx+1)
		return
	case adx == ady:
		diagonal(b, p0, sign(dx), sign(dy), adx)
	case adx > ady:
		xMajor(b, p0, p1, ady, adx)
	default:
		yMajor(b, p0, p1, adx, ady)
	}

	b.BlitH(p1.X, p1.Y, 1)
}

// diagonal draws every pixel of a 45° segment except the last.
func diagonal(b Blitter, p image.Point, xdir, ydir, n int) {
	for i := range n {
		b.BlitH(p.X+i*xdir, p.Y+i*ydir, 1)
	}
}

// xMajor steps x from p0 towards p1. The error term is num/den with
// den = |dx| and grows by |dy| per step, so it is exact: y never passes
// p1.Y before the loop ends and the adjacent row stays within the
// segment's bounding box.
func xMajor(b Blitter, p0, p1 image.Point, step, den int) {
	xdir := sign(p1.X - p0.X)
	ydir := sign(p1.Y - p0.Y)

	num := 0
	y := p0.Y
	for x := p0.X; x != p1.X; x += xdir {
		e := float32(num) / float32(den)
		if ydir > 0 {
			b.BlitAntiV2(x, y, 1-e, e)
		} else {
			b.BlitAntiV2(x, y-1, e, 1-e)
		}
		num += step
		if num >= den {
			y += ydir
			num -= den
		}
	}
}

// yMajor is xMajor with the axes swapped.
func yMajor(b Blitter, p0, p1 image.Point, step, den int) {
	xdir := sign(p1.X - p0.X)
	ydir := sign(p1.Y - p0.Y)

	num := 0
	x := p0.X
	for y := p0.Y; y != p1.Y; y += ydir {
		e := float32(num) / float32(den)
		if xdir > 0 {
			b.BlitAntiH2(x, y, 1-e, e)
		} else {
			b.BlitAntiH2(x-1, y, e, 1-e)
		}
		num += step
		if num >= den {
			x += xdir
			num -= den
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
