package text

import (
	"image"
	"iter"
	"log/slog"
	"math"

	"github.com/go-text/typesetting/segmenter"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// Phi is the golden ratio, which fixes the proportions of a character cell.
const Phi = 1.618033988749895

// Metrics are the cell dimensions for one font size, in pixels.
type Metrics struct {
	CharWidth  float64 // size/φ
	CharHeight float64 // size
	Spacing    float64 // size/φ²
}

// MetricsFor returns the cell dimensions for size.
func MetricsFor(size float64) Metrics {
	return Metrics{
		CharWidth:  size / Phi,
		CharHeight: size,
		Spacing:    size / (Phi * Phi),
	}
}

// Advance is the horizontal distance between consecutive cells.
func (m Metrics) Advance() float64 {
	return m.CharWidth + m.Spacing
}

// LineHeight is the vertical distance between consecutive lines.
func (m Metrics) LineHeight() float64 {
	return m.CharHeight + m.Spacing
}

// Stroke is a glyph segment placed in pixel coordinates.
type Stroke struct {
	P0, P1 image.Point
}

// Strokes lays out s at the given size with the top-left corner of its first
// cell at origin, and yields every glyph segment in pixel coordinates.
//
// The pen advances one cell per rune. Runes without an outline leave a
// blank cell. Strokes may fall outside any particular framebuffer; callers
// clip them.
func Strokes(origin image.Point, size float64, s string, opts ...Option) iter.Seq[Stroke] {
	o := newOptions(opts)
	return func(yield func(Stroke) bool) {
		m := MetricsFor(size)
		for line, runes := range lines(s, o.fold) {
			y := origin.Y + round(float64(line)*m.LineHeight())
			pen := float64(origin.X)
			for r := range cells(runes, o.fold) {
				g, ok := Lookup(r)
				if !ok {
					logger().Debug("text: no glyph", slog.String("rune", string(r)))
				}
				if !placeGlyph(g, image.Pt(round(pen), y), m, yield) {
					return
				}
				pen += m.Advance()
			}
		}
	}
}

// Measure returns the size in pixels of the box enclosing the cells that
// Strokes would lay out for s with the same options. Blank cells count.
func Measure(size float64, s string, opts ...Option) image.Point {
	o := newOptions(opts)
	m := MetricsFor(size)
	var n, cols int
	for _, runes := range lines(s, o.fold) {
		c := 0
		for range cells(runes, o.fold) {
			c++
		}
		cols = max(cols, c)
		n++
	}
	if n == 0 {
		return image.Point{}
	}

	var w int
	if cols > 0 {
		w = round(float64(cols-1)*m.Advance() + m.CharWidth)
	}
	h := round(float64(n-1)*m.LineHeight() + m.CharHeight)
	return image.Pt(w, h)
}

func placeGlyph(g Glyph, at image.Point, m Metrics, yield func(Stroke) bool) bool {
	for seg := range g.Segments() {
		st := Stroke{
			P0: at.Add(image.Pt(round(float64(seg.X0)*m.CharWidth), round(float64(seg.Y0)*m.CharHeight))),
			P1: at.Add(image.Pt(round(float64(seg.X1)*m.CharWidth), round(float64(seg.Y1)*m.CharHeight))),
		}
		if !yield(st) {
			return false
		}
	}
	return true
}

// lines splits s at mandatory line breaks, folding it first if fold is
// set. The break characters themselves are dropped. Text that ends in a
// break does not produce an empty last line.
func lines(s string, fold bool) iter.Seq2[int, []rune] {
	return func(yield func(int, []rune) bool) {
		if s == "" {
			return
		}
		if fold {
			s = norm.NFD.String(width.Narrow.String(s))
		}

		var seg segmenter.Segmenter
		seg.InitWithString(s)

		n := 0
		var cur []rune
		it := seg.LineIterator()
		for it.Next() {
			l := it.Line()
			cur = append(cur, l.Text...)
			if !l.IsMandatoryBreak {
				continue
			}
			if !yield(n, trimBreak(cur)) {
				return
			}
			n++
			cur = nil
		}
	}
}

// cells yields the rune drawn in each cell of a line: every rune, or the
// base rune of every grapheme cluster when fold is set.
func cells(runes []rune, fold bool) iter.Seq[rune] {
	return func(yield func(rune) bool) {
		if len(runes) == 0 {
			return
		}
		if !fold {
			for _, r := range runes {
				if !yield(r) {
					return
				}
			}
			return
		}
		var seg segmenter.Segmenter
		seg.Init(runes)
		it := seg.GraphemeIterator()
		for it.Next() {
			if !yield(it.Grapheme().Text[0]) {
				return
			}
		}
	}
}

// trimBreak removes trailing hard line break characters.
func trimBreak(runes []rune) []rune {
	for len(runes) > 0 && isBreak(runes[len(runes)-1]) {
		runes = runes[:len(runes)-1]
	}
	return runes
}

func isBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}

func round(v float64) int {
	return int(math.Round(v))
}
