package vid

import (
	"errors"
	"image"
	"math/rand/v2"
	"testing"
)

// scribble draws n random lines, some of them partly off the canvas.
func scribble(fb *Framebuffer, n int, seed uint64) {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	w, h := fb.Width(), fb.Height()
	for range n {
		p0 := image.Pt(rng.IntN(w+20)-10, rng.IntN(h+20)-10)
		p1 := image.Pt(rng.IntN(w+20)-10, rng.IntN(h+20)-10)
		c := RGB(rng.Float32(), rng.Float32(), rng.Float32())
		fb.DrawLine(c, p0, p1)
	}
}

func TestEncode_FixedPoints(t *testing.T) {
	fb := NewFramebuffer(3, 1)
	_ = fb.Blend(0, 0, Black, 1)
	_ = fb.Blend(1, 0, White, 1)
	_ = fb.Blend(2, 0, Gray(0.5), 1)

	dst := make([]uint32, 3)
	if err := Encode(fb, dst); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	want := []uint32{0x000000, 0xffffff, 0xbababa}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("dst[%d] = %#06x, want %#06x", i, dst[i], want[i])
		}
	}
}

func TestEncode_EncodedStorageCopies(t *testing.T) {
	fb := NewFramebuffer(2, 2, WithStorage(StorageEncoded))
	fb.Clear(Encoded(0x7f123456))

	dst := make([]uint32, 4)
	if err := Encode(fb, dst); err != nil {
		t.Fatal(err)
	}
	for i, p := range dst {
		if p != 0x123456 {
			t.Errorf("dst[%d] = %#x, want 0x123456", i, p)
		}
	}
}

func TestEncode_TranslucentClear(t *testing.T) {
	fb := NewFramebuffer(2, 1)
	fb.Clear(Linear{R: 1, G: 1, B: 1, A: 0.5})
	_ = fb.Blend(1, 0, White, 1)

	dst := make([]uint32, 2)
	if err := Encode(fb, dst); err != nil {
		t.Fatal(err)
	}
	if dst[0] != 0xbababa {
		t.Errorf("untouched pixel = %#06x, want 0xbababa", dst[0])
	}
	if dst[1] != 0xffffff {
		t.Errorf("drawn pixel = %#06x, want 0xffffff", dst[1])
	}
}

func TestEncode_DisplaySize(t *testing.T) {
	fb := NewFramebuffer(4, 4)
	for _, n := range []int{0, 15, 17} {
		if err := Encode(fb, make([]uint32, n)); !errors.Is(err, ErrDisplaySize) {
			t.Errorf("Encode into %d pixels error = %v, want ErrDisplaySize", n, err)
		}
	}

	enc := NewEncoder()
	defer enc.Close()
	if err := enc.Encode(fb, make([]uint32, 3)); !errors.Is(err, ErrDisplaySize) {
		t.Errorf("Encoder.Encode error = %v, want ErrDisplaySize", err)
	}
}

func TestEncoder_MatchesSequential(t *testing.T) {
	tests := []struct {
		name string
		opts []EncoderOption
	}{
		{"defaults", nil},
		{"one worker", []EncoderOption{WithWorkers(1)}},
		{"odd bands", []EncoderOption{WithWorkers(3), WithBandHeight(5)}},
		{"band per row", []EncoderOption{WithWorkers(4), WithBandHeight(1)}},
		{"band taller than frame", []EncoderOption{WithBandHeight(1000)}},
		{"bad band height keeps default", []EncoderOption{WithBandHeight(-1)}},
	}

	fb := NewFramebuffer(64, 37)
	scribble(fb, 200, 1)
	want := make([]uint32, 64*37)
	if err := Encode(fb, want); err != nil {
		t.Fatal(err)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc := NewEncoder(tt.opts...)
			defer enc.Close()

			got := make([]uint32, len(want))
			if err := enc.Encode(fb, got); err != nil {
				t.Fatalf("Encode() error = %v", err)
			}
			for i := range want {
				if got[i] != want[i] {
					t.Fatalf("pixel %d = %#06x, want %#06x", i, got[i], want[i])
				}
			}
		})
	}
}

func TestEncoder_FastCurve(t *testing.T) {
	fb := NewFramebuffer(40, 30)
	scribble(fb, 100, 2)

	want := make([]uint32, 40*30)
	_ = Encode(fb, want)

	enc := NewEncoder(WithFastCurve(true), WithWorkers(2))
	defer enc.Close()
	got := make([]uint32, len(want))
	if err := enc.Encode(fb, got); err != nil {
		t.Fatal(err)
	}

	for i := range want {
		wr, wg, wb := Encoded(want[i]).RGB()
		gr, gg, gb := Encoded(got[i]).RGB()
		if diff8(wr, gr) > 1 || diff8(wg, gg) > 1 || diff8(wb, gb) > 1 {
			t.Fatalf("pixel %d = %#06x, want within 1 of %#06x", i, got[i], want[i])
		}
	}
}

func TestEncoder_AfterClose(t *testing.T) {
	fb := NewFramebuffer(8, 8)
	scribble(fb, 10, 3)
	want := make([]uint32, 64)
	_ = Encode(fb, want)

	enc := NewEncoder(WithWorkers(2))
	if enc.Workers() != 2 {
		t.Errorf("Workers() = %d, want 2", enc.Workers())
	}
	enc.Close()
	enc.Close()

	got := make([]uint32, 64)
	if err := enc.Encode(fb, got); err != nil {
		t.Fatal(err)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("pixel %d = %#06x, want %#06x", i, got[i], want[i])
		}
	}
}

func TestEncoder_EncodedStorage(t *testing.T) {
	fb := NewFramebuffer(16, 9, WithStorage(StorageEncoded))
	scribble(fb, 40, 4)

	want := make([]uint32, 16*9)
	_ = Encode(fb, want)

	enc := NewEncoder(WithBandHeight(2))
	defer enc.Close()
	got := make([]uint32, len(want))
	_ = enc.Encode(fb, got)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("pixel %d = %#06x, want %#06x", i, got[i], want[i])
		}
	}
}

func diff8(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
