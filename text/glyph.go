package text

import (
	"fmt"
	"iter"
)

// Segment is one stroke of a glyph in unit glyph space.
type Segment struct {
	X0, Y0, X1, Y1 float32
}

// Glyph is the outline of one character. The zero Glyph is blank.
type Glyph struct {
	segs []Segment
}

// Len returns the number of segments in the outline.
func (g Glyph) Len() int {
	return len(g.segs)
}

// Segment returns the i-th segment. It panics if i is out of range.
func (g Glyph) Segment(i int) Segment {
	return g.segs[i]
}

// Segments iterates over the outline in drawing order.
func (g Glyph) Segments() iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		for _, s := range g.segs {
			if !yield(s) {
				return
			}
		}
	}
}

const (
	firstPrintable = 0x20
	lastPrintable  = 0x7e
)

// glyphs is indexed by ASCII code and never modified after init.
var glyphs [128]Glyph

// Grid the outlines are authored on: x in [0,gridW], y in [0,gridH].
const (
	gridW = 4
	gridH = 8
)

func init() {
	for r, strokes := range outlines {
		glyphs[r] = buildGlyph(r, strokes)
	}
}

// buildGlyph turns polylines of grid coordinates (x0,y0, x1,y1, ...) into
// unit-space segments.
func buildGlyph(r rune, strokes [][]int) Glyph {
	var segs []Segment
	for _, pts := range strokes {
		if len(pts) < 4 || len(pts)%2 != 0 {
			panic(fmt.Sprintf("text: malformed outline for %q", r))
		}
		for i := 2; i < len(pts); i += 2 {
			segs = append(segs, Segment{
				X0: float32(pts[i-2]) / gridW,
				Y0: float32(pts[i-1]) / gridH,
				X1: float32(pts[i]) / gridW,
				Y1: float32(pts[i+1]) / gridH,
			})
		}
	}
	return Glyph{segs: segs}
}

// Lookup returns the outline for r. It reports false for anything outside
// printable ASCII. The space character has an empty outline.
func Lookup(r rune) (Glyph, bool) {
	if r < firstPrintable || r > lastPrintable {
		return Glyph{}, false
	}
	return glyphs[r], true
}
