package text

import "testing"

func TestLookup_PrintableASCII(t *testing.T) {
	for r := rune(0x20); r <= 0x7e; r++ {
		g, ok := Lookup(r)
		if !ok {
			t.Errorf("Lookup(%q) not found", r)
			continue
		}
		if r != ' ' && g.Len() == 0 {
			t.Errorf("Lookup(%q) has an empty outline", r)
		}
		for i := range g.Len() {
			s := g.Segment(i)
			for _, v := range []float32{s.X0, s.Y0, s.X1, s.Y1} {
				if v < 0 || v > 1 {
					t.Errorf("Lookup(%q) segment %d = %+v leaves the unit cell", r, i, s)
				}
			}
		}
	}
}

func TestLookup_Space(t *testing.T) {
	g, ok := Lookup(' ')
	if !ok || g.Len() != 0 {
		t.Errorf("Lookup(' ') = %d segments, %v; want 0, true", g.Len(), ok)
	}
}

func TestLookup_Missing(t *testing.T) {
	for _, r := range []rune{0, '\t', '\n', 0x1f, 0x7f, '\u00e9', '\uff21', '\u2603', -1} {
		if _, ok := Lookup(r); ok {
			t.Errorf("Lookup(%q) found a glyph", r)
		}
	}
}

func TestGlyph_Segments(t *testing.T) {
	g, _ := Lookup('E')
	if g.Len() != 4 {
		t.Fatalf("'E' has %d segments, want 4", g.Len())
	}

	i := 0
	for s := range g.Segments() {
		if s != g.Segment(i) {
			t.Errorf("Segments()[%d] = %+v, want %+v", i, s, g.Segment(i))
		}
		i++
	}
	if i != g.Len() {
		t.Errorf("Segments() yielded %d, want %d", i, g.Len())
	}

	n := 0
	for range g.Segments() {
		n++
		break
	}
	if n != 1 {
		t.Errorf("Segments() ignored break")
	}
}

func TestGlyph_Zero(t *testing.T) {
	var g Glyph
	if g.Len() != 0 {
		t.Errorf("zero Glyph Len() = %d", g.Len())
	}
	for range g.Segments() {
		t.Error("zero Glyph yielded a segment")
	}
}

func TestBuildGlyph(t *testing.T) {
	g := buildGlyph('x', [][]int{{0, 0, 4, 8, 0, 8}})
	want := []Segment{
		{X0: 0, Y0: 0, X1: 1, Y1: 1},
		{X0: 1, Y0: 1, X1: 0, Y1: 1},
	}
	if g.Len() != len(want) {
		t.Fatalf("Len() = %d, want %d", g.Len(), len(want))
	}
	for i, w := range want {
		if g.Segment(i) != w {
			t.Errorf("Segment(%d) = %+v, want %+v", i, g.Segment(i), w)
		}
	}
}

func TestBuildGlyph_Malformed(t *testing.T) {
	for _, pts := range [][]int{{0, 0, 1}, {0, 0}} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("buildGlyph(%v) did not panic", pts)
				}
			}()
			buildGlyph('?', [][]int{pts})
		}()
	}
}
