package vid

import (
	"errors"
	"image"
	"math"
	"testing"
)

// sumRed adds up the red channel of a linear framebuffer.
func sumRed(fb *Framebuffer) float64 {
	var sum float64
	for y := range fb.Height() {
		for x := range fb.Width() {
			sum += float64(fb.At(x, y).Linear().R)
		}
	}
	return sum
}

// lit returns the pixels whose red channel is not zero.
func lit(fb *Framebuffer) map[image.Point]float32 {
	m := map[image.Point]float32{}
	for y := range fb.Height() {
		for x := range fb.Width() {
			if r := fb.At(x, y).Linear().R; r != 0 {
				m[image.Pt(x, y)] = r
			}
		}
	}
	return m
}

func TestNewFramebuffer(t *testing.T) {
	tests := []struct {
		name string
		opts []FramebufferOption
		want Storage
	}{
		{"default", nil, StorageLinear},
		{"linear", []FramebufferOption{WithStorage(StorageLinear)}, StorageLinear},
		{"encoded", []FramebufferOption{WithStorage(StorageEncoded)}, StorageEncoded},
		{"unknown falls back", []FramebufferOption{WithStorage(Storage(9))}, StorageLinear},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fb := NewFramebuffer(7, 3, tt.opts...)
			if fb.Width() != 7 || fb.Height() != 3 {
				t.Errorf("size = %dx%d, want 7x3", fb.Width(), fb.Height())
			}
			if fb.Storage() != tt.want {
				t.Errorf("Storage() = %v, want %v", fb.Storage(), tt.want)
			}
			if got := fb.At(6, 2).Encoded(); got != 0 {
				t.Errorf("new framebuffer pixel = %#06x, want black", uint32(got))
			}
		})
	}
}

func TestNewFramebuffer_NegativePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewFramebuffer(-1, 5) did not panic")
		}
	}()
	NewFramebuffer(-1, 5)
}

func TestStorage_String(t *testing.T) {
	for s, want := range map[Storage]string{
		StorageLinear:  "linear",
		StorageEncoded: "encoded",
		Storage(7):     "Storage(7)",
	} {
		if got := s.String(); got != want {
			t.Errorf("Storage(%d).String() = %q, want %q", uint8(s), got, want)
		}
	}
}

func TestFramebuffer_IndexAndIn(t *testing.T) {
	fb := NewFramebuffer(71, 43)
	if got := fb.Index(3, 2); got != 3+2*71 {
		t.Errorf("Index(3, 2) = %d, want %d", got, 3+2*71)
	}
	if fb.Bounds() != image.Rect(0, 0, 71, 43) {
		t.Errorf("Bounds() = %v", fb.Bounds())
	}

	for _, p := range []image.Point{{0, 0}, {70, 42}, {35, 0}} {
		if !fb.In(p) {
			t.Errorf("In(%v) = false", p)
		}
	}
	for _, p := range []image.Point{{-1, 0}, {71, 0}, {0, 43}, {0, -1}} {
		if fb.In(p) {
			t.Errorf("In(%v) = true", p)
		}
	}
}

func TestFramebuffer_ClearAndAt(t *testing.T) {
	lin := NewFramebuffer(4, 4)
	lin.Clear(Gray(0.5))
	if got := lin.At(2, 2); got != Gray(0.5) {
		t.Errorf("linear At = %v, want %v", got, Gray(0.5))
	}
	if got := lin.At(9, 9); got != (Linear{}) {
		t.Errorf("linear At outside = %v, want zero", got)
	}

	enc := NewFramebuffer(4, 4, WithStorage(StorageEncoded))
	enc.Clear(Encoded(0xff123456))
	if got := enc.At(1, 3); got != Encoded(0x123456) {
		t.Errorf("encoded At = %v, want 0x123456", got)
	}
	if got := enc.At(-1, 0); got != Encoded(0) {
		t.Errorf("encoded At outside = %v, want zero", got)
	}

	enc.Clear(White)
	if got := enc.At(0, 0); got != Encoded(0xffffff) {
		t.Errorf("encoded storage cleared to White = %v, want 0xffffff", got)
	}
}

func TestFramebuffer_Blend(t *testing.T) {
	tests := []struct {
		name    string
		storage Storage
		c       Color
		a       float32
		want    Encoded
	}{
		{"linear full", StorageLinear, White, 1, 0xffffff},
		{"linear none", StorageLinear, White, 0, 0x000000},
		{"linear half", StorageLinear, RGB(1, 0, 0), 0.5, 0xba0000},
		{"encoded quarter", StorageEncoded, RGB8(0xff, 0xff, 0xff), 0.25, 0x404040},
		{"encoded takes linear color", StorageEncoded, White, 0.5, 0x808080},
		{"clamped coverage", StorageEncoded, Encoded(0x00ff00), 3, 0x00ff00},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fb := NewFramebuffer(3, 3, WithStorage(tt.storage))
			if err := fb.Blend(1, 1, tt.c, tt.a); err != nil {
				t.Fatalf("Blend() error = %v", err)
			}
			if got := fb.At(1, 1).Encoded(); got != tt.want {
				t.Errorf("pixel = %#06x, want %#06x", uint32(got), uint32(tt.want))
			}
		})
	}
}

func TestFramebuffer_BlendForcesOpaque(t *testing.T) {
	fb := NewFramebuffer(2, 2)
	fb.Clear(Linear{R: 1, A: 0})
	if err := fb.Blend(0, 0, Black, 0.5); err != nil {
		t.Fatal(err)
	}
	got := fb.At(0, 0).Linear()
	if got.A != 1 || got.R != 0.5 {
		t.Errorf("pixel = %+v, want R 0.5 and A 1", got)
	}
}

func TestFramebuffer_BlendOutOfRange(t *testing.T) {
	fb := NewFramebuffer(71, 43)
	for _, p := range []image.Point{{-1, 0}, {71, 0}, {0, 43}, {100, -100}} {
		err := fb.Blend(p.X, p.Y, White, 1)
		if !errors.Is(err, ErrOutOfRange) {
			t.Fatalf("Blend(%v) error = %v, want ErrOutOfRange", p, err)
		}
		var oor *OutOfRangeError
		if !errors.As(err, &oor) {
			t.Fatalf("Blend(%v) error is %T, want *OutOfRangeError", p, err)
		}
		if oor.X != p.X || oor.Y != p.Y || oor.Width != 71 || oor.Height != 43 {
			t.Errorf("OutOfRangeError = %+v", oor)
		}
	}
}

func TestFramebuffer_DrawLineExact(t *testing.T) {
	tests := []struct {
		name   string
		p0, p1 image.Point
		want   []image.Point
	}{
		{"horizontal", image.Pt(2, 5), image.Pt(6, 5), []image.Point{{2, 5}, {3, 5}, {4, 5}, {5, 5}, {6, 5}}},
		{"diagonal", image.Pt(0, 0), image.Pt(4, 4), []image.Point{{0, 0}, {1, 1}, {2, 2}, {3, 3}, {4, 4}}},
		{"point", image.Pt(9, 9), image.Pt(9, 9), []image.Point{{9, 9}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fb := NewFramebuffer(71, 43)
			fb.DrawLine(White, tt.p0, tt.p1)
			got := lit(fb)
			if len(got) != len(tt.want) {
				t.Fatalf("lit %d pixels, want %d: %v", len(got), len(tt.want), got)
			}
			for _, p := range tt.want {
				if got[p] != 1 {
					t.Errorf("pixel %v = %v, want 1", p, got[p])
				}
			}
		})
	}
}

func TestFramebuffer_DrawLineEnergy(t *testing.T) {
	segments := [][2]image.Point{
		{{0, 0}, {70, 42}},
		{{70, 0}, {0, 42}},
		{{3, 40}, {60, 2}},
		{{10, 0}, {12, 42}},
		{{0, 20}, {70, 21}},
	}
	for _, s := range segments {
		fb := NewFramebuffer(71, 43)
		fb.DrawLine(White, s[0], s[1])
		d := s[1].Sub(s[0])
		want := float64(max(abs(d.X), abs(d.Y)) + 1)
		if got := sumRed(fb); math.Abs(got-want) > 1e-5*want {
			t.Errorf("DrawLine(%v, %v) energy = %v, want %v", s[0], s[1], got, want)
		}
	}
}

func TestFramebuffer_DrawLineOutside(t *testing.T) {
	fb := NewFramebuffer(71, 43)
	fb.DrawLine(White, image.Pt(-50, -5), image.Pt(-1, -40))
	fb.DrawLine(White, image.Pt(80, 0), image.Pt(90, 42))
	if n := len(lit(fb)); n != 0 {
		t.Errorf("lines outside the framebuffer lit %d pixels", n)
	}

	empty := NewFramebuffer(0, 0)
	empty.DrawLine(White, image.Pt(0, 0), image.Pt(5, 5))
}

func TestFramebuffer_DrawLineClipped(t *testing.T) {
	fb := NewFramebuffer(71, 43)
	fb.DrawLine(White, image.Pt(-20, 7), image.Pt(200, 7))
	got := lit(fb)
	if len(got) != 71 {
		t.Fatalf("lit %d pixels, want the full row of 71", len(got))
	}
	for x := range 71 {
		if got[image.Pt(x, 7)] != 1 {
			t.Fatalf("pixel (%d, 7) = %v, want 1", x, got[image.Pt(x, 7)])
		}
	}
}

// Every pair of on-canvas endpoints draws without touching anything
// outside the framebuffer.
func TestFramebuffer_DrawLineAllPoints(t *testing.T) {
	if testing.Short() {
		t.Skip("exhaustive endpoint sweep")
	}
	const w, h = 71, 43
	fb := NewFramebuffer(w, h)
	for y0 := range h {
		for x0 := range w {
			for y1 := range h {
				for x1 := range w {
					fb.DrawLine(White, image.Pt(x0, y0), image.Pt(x1, y1))
				}
			}
		}
	}
}

func TestFramebuffer_DrawLineAllPointsClipped(t *testing.T) {
	const w, h = 17, 11
	const margin = 9
	fb := NewFramebuffer(w, h, WithStorage(StorageEncoded))
	for y0 := -margin; y0 < h+margin; y0++ {
		for x0 := -margin; x0 < w+margin; x0++ {
			for y1 := -margin; y1 < h+margin; y1++ {
				for x1 := -margin; x1 < w+margin; x1++ {
					fb.DrawLine(Encoded(0xffffff), image.Pt(x0, y0), image.Pt(x1, y1))
				}
			}
		}
	}
}

func TestFramebuffer_DrawSegment(t *testing.T) {
	fb := NewFramebuffer(71, 43)

	s, ok := fb.Clip(image.Pt(-10, 5), image.Pt(100, 5))
	if !ok {
		t.Fatal("Clip rejected a visible segment")
	}
	if err := fb.DrawSegment(White, s); err != nil {
		t.Fatalf("DrawSegment() error = %v", err)
	}
	if n := len(lit(fb)); n != 71 {
		t.Errorf("lit %d pixels, want 71", n)
	}

	other := NewFramebuffer(70, 43)
	if err := other.DrawSegment(White, s); !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("DrawSegment on another size error = %v, want ErrSizeMismatch", err)
	}
	if err := fb.DrawSegment(White, Segment{}); !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("DrawSegment(zero) error = %v, want ErrSizeMismatch", err)
	}
}

func TestFramebuffer_DrawLineEncodedStorage(t *testing.T) {
	fb := NewFramebuffer(10, 10, WithStorage(StorageEncoded))
	fb.DrawLine(RGB8(0, 0xff, 0), image.Pt(0, 0), image.Pt(4, 2))

	if got := fb.At(0, 0); got != Encoded(0x00ff00) {
		t.Errorf("start pixel = %v, want 0x00ff00", got)
	}
	if got := fb.At(4, 2); got != Encoded(0x00ff00) {
		t.Errorf("end pixel = %v, want 0x00ff00", got)
	}
	// Coverage 1/2 at x = 1: 0xff*0.5 rounds to 0x80.
	if got := fb.At(1, 0); got != Encoded(0x008000) {
		t.Errorf("pixel (1, 0) = %v, want 0x008000", got)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func TestFramebuffer_DrawIgnoresLinearAlpha(t *testing.T) {
	for _, storage := range []Storage{StorageLinear, StorageEncoded} {
		t.Run(storage.String(), func(t *testing.T) {
			fb := NewFramebuffer(8, 4, WithStorage(storage))
			fb.DrawLine(Linear{R: 1, A: 0}, image.Pt(0, 0), image.Pt(7, 0))
			if err := fb.Blend(3, 2, Linear{G: 1, A: 0.25}, 1); err != nil {
				t.Fatal(err)
			}

			if got := fb.At(5, 0).Encoded(); got != 0xff0000 {
				t.Errorf("line pixel = %#06x, want 0xff0000", uint32(got))
			}
			if got := fb.At(3, 2).Encoded(); got != 0x00ff00 {
				t.Errorf("blended pixel = %#06x, want 0x00ff00", uint32(got))
			}
		})
	}
}
