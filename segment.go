package vid

import (
	"fmt"
	"image"

	"github.com/WimbledonLabs/graphics-vid/internal/clip"
)

// Segment is a line segment clipped to a framebuffer size. Both endpoints
// lie inside that framebuffer. Segments are created only by Clip and
// Framebuffer.Clip; the zero value draws nothing and is rejected by
// DrawSegment.
type Segment struct {
	seg clip.Segment
}

// Clip restricts the segment p0-p1 to a width×height framebuffer.
// It returns false if no part of the segment is visible.
//
// Segments already inside are returned unchanged. Axis-aligned segments
// are clamped along their length. Other segments are ordered left to
// right and cut where the line crosses the framebuffer edges.
func Clip(p0, p1 image.Point, width, height int) (Segment, bool) {
	s, ok := clip.Line(p0, p1, width, height)
	return Segment{seg: s}, ok
}

// Clip restricts the segment p0-p1 to fb. See the package-level Clip.
func (fb *Framebuffer) Clip(p0, p1 image.Point) (Segment, bool) {
	return Clip(p0, p1, fb.width, fb.height)
}

// Points returns the clipped endpoints.
func (s Segment) Points() (p0, p1 image.Point) {
	return s.seg.Points()
}

// Size returns the framebuffer size the segment was clipped for.
func (s Segment) Size() image.Point {
	return s.seg.Size()
}

// String formats the segment as "(x0,y0)-(x1,y1)".
func (s Segment) String() string {
	p0, p1 := s.seg.Points()
	return fmt.Sprintf("%v-%v", p0, p1)
}
