// Package clip restricts line segments to a framebuffer rectangle.
package clip

import (
	"image"
	"math"
)

// Segment is a line segment whose endpoints both lie inside the canvas it
// was clipped against. Only Line produces valid segments; the zero value
// is invalid.
type Segment struct {
	p0, p1 image.Point
	size   image.Point
}

// Points returns the segment's endpoints.
func (s Segment) Points() (p0, p1 image.Point) {
	return s.p0, s.p1
}

// Size returns the width and height of the canvas the segment was clipped
// against.
func (s Segment) Size() image.Point {
	return s.size
}

// Valid reports whether s was produced by Line.
func (s Segment) Valid() bool {
	return s.size.X > 0 && s.size.Y > 0
}

// coordLimit bounds rounded intersection coordinates so that float to int
// conversion stays well defined for absurd inputs.
const coordLimit = 1 << 30

// Line clips the segment p0-p1 to the canvas [0,width-1]×[0,height-1].
// It returns false if no part of the segment lies on the canvas.
//
// Segments already on the canvas are returned unchanged. Axis-aligned
// segments keep their fixed coordinate and have the varying one clamped.
// Any other segment is reordered so that its first endpoint has the smaller
// x, and the new endpoints are chosen among the original endpoints and the
// line's intersections with the four canvas edges: the surviving candidate
// with minimal x becomes the first endpoint, the one with maximal x the
// second. Candidates sharing an x are ordered by y in the direction of
// travel, so a steep segment keeps its full visible extent.
func Line(p0, p1 image.Point, width, height int) (Segment, bool) {
	if width <= 0 || height <= 0 {
		return Segment{}, false
	}
	size := image.Pt(width, height)
	canvas := image.Rectangle{Max: size}

	if p0.In(canvas) && p1.In(canvas) {
		return Segment{p0: p0, p1: p1, size: size}, true
	}

	switch {
	case p0.X == p1.X:
		if p0.X < 0 || p0.X >= width || !overlaps(p0.Y, p1.Y, height) {
			return Segment{}, false
		}
		p0.Y = clampInt(p0.Y, 0, height-1)
		p1.Y = clampInt(p1.Y, 0, height-1)
		return Segment{p0: p0, p1: p1, size: size}, true

	case p0.Y == p1.Y:
		if p0.Y < 0 || p0.Y >= height || !overlaps(p0.X, p1.X, width) {
			return Segment{}, false
		}
		p0.X = clampInt(p0.X, 0, width-1)
		p1.X = clampInt(p1.X, 0, width-1)
		return Segment{p0: p0, p1: p1, size: size}, true
	}

	return general(p0, p1, canvas)
}

// general clips a segment that is neither vertical nor horizontal.
func general(p0, p1 image.Point, canvas image.Rectangle) (Segment, bool) {
	if p0.X > p1.X {
		p0, p1 = p1, p0
	}

	// y = m*x + b
	m := float64(p1.Y-p0.Y) / float64(p1.X-p0.X)
	b := float64(p0.Y) - m*float64(p0.X)
	xMax := float64(canvas.Max.X - 1)
	yMax := float64(canvas.Max.Y - 1)

	candidates := [6]image.Point{
		p0,
		p1,
		{X: 0, Y: roundCoord(b)},
		{X: canvas.Max.X - 1, Y: roundCoord(m*xMax + b)},
		{X: roundCoord(-b / m), Y: 0},
		{X: roundCoord((yMax - b) / m), Y: canvas.Max.Y - 1},
	}

	bbox := image.Rect(p0.X, min(p0.Y, p1.Y), p1.X+1, max(p0.Y, p1.Y)+1)

	ydir := 1
	if p1.Y < p0.Y {
		ydir = -1
	}
	before := func(a, b image.Point) bool {
		return a.X < b.X || (a.X == b.X && a.Y*ydir < b.Y*ydir)
	}

	var first, last image.Point
	found := false
	for _, c := range candidates {
		if !c.In(canvas) || !c.In(bbox) {
			continue
		}
		if !found {
			first, last, found = c, c, true
			continue
		}
		if before(c, first) {
			first = c
		}
		if before(last, c) {
			last = c
		}
	}
	if !found {
		return Segment{}, false
	}
	return Segment{p0: first, p1: last, size: canvas.Max}, true
}

// overlaps reports whether the closed range between a and b intersects
// [0, n-1].
func overlaps(a, b, n int) bool {
	lo, hi := min(a, b), max(a, b)
	return hi >= 0 && lo < n
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

func roundCoord(v float64) int {
	if math.IsNaN(v) {
		return -coordLimit
	}
	return int(math.Round(max(-coordLimit, min(v, coordLimit))))
}
