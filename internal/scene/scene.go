package scene

import (
	"fmt"
	"image"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	vid "github.com/WimbledonLabs/graphics-vid"
)

// printable is every printable ASCII character after the space.
const printable = "!\"#$%&'()*+,-./0123456789:;<=>?@ABCDEFGHIJKLMNOPQRSTUVWXYZ[\\]^_`abcdefghijklmnopqrstuvwxyz{|}~"

// codeSample is drawn as one multi-line string.
const codeSample = `fb.DrawText(
    vid.White,
    image.Pt(60, 150),
    20,
    " !\"#$%&'()*+,-./0123456789:;<=>?@[\\]^_{|}~",
)`

// ladder lists the font sizes sampled down the left edge, with the row
// of each label and sample.
var ladder = []struct {
	size          float64
	labelY, textY int
}{
	{6, 89, 89},
	{8, 100, 100},
	{10, 115, 114},
	{12, 133, 131},
	{14, 154, 151},
	{16, 178, 174},
	{18, 205, 200},
}

// Scene draws demo frames for a configuration.
type Scene struct {
	cfg Config
}

// New returns a scene for cfg.
func New(cfg Config) *Scene {
	return &Scene{cfg: cfg}
}

// Config returns the scene configuration.
func (s *Scene) Config() Config {
	return s.cfg
}

// Render clears fb and draws frame number frame into it.
func (s *Scene) Render(fb *vid.Framebuffer, frame int) {
	fb.Clear(vid.Black)
	s.drawGrid(fb, frame)
	if s.cfg.Text.Show {
		s.drawText(fb)
	}
}

func (s *Scene) drawGrid(fb *vid.Framebuffer, frame int) {
	g := s.cfg.Grid
	offset := (frame * g.Speed) % g.Cell
	if offset < 0 {
		offset += g.Cell
	}

	for row := 1; row <= g.Rows; row++ {
		y0 := row*g.Cell + offset
		y1 := y0 + g.Cell
		v := s.Intensity(y0)
		if v == 0 {
			continue
		}
		c := g.Color.Linear().Scale(v)

		for col := 1; col <= g.Cols; col++ {
			x0 := col * g.Cell
			x1 := x0 + g.Cell
			tl := s.Warp(image.Pt(x0, y0))
			tr := s.Warp(image.Pt(x1, y0))
			br := s.Warp(image.Pt(x1, y1))
			bl := s.Warp(image.Pt(x0, y1))

			fb.DrawLine(c, tl, tr)
			fb.DrawLine(c, tr, br)
			fb.DrawLine(c, br, bl)
			fb.DrawLine(c, bl, tl)
			fb.DrawLine(c, bl, tr)
		}
	}
}

// Intensity returns the brightness of a grid row whose top edge is at y:
// (y/height)² up to the fade start, then falling linearly to zero at the
// fade end.
func (s *Scene) Intensity(y int) float32 {
	g := s.cfg.Grid
	curve := func(y int) float64 {
		v := float64(y) / float64(s.cfg.Height)
		return v * v
	}

	switch {
	case y <= g.FadeStart:
		return float32(curve(max(y, 0)))
	case y >= g.FadeEnd:
		return 0
	}
	t := float64(g.FadeEnd-y) / float64(g.FadeEnd-g.FadeStart)
	return float32(curve(g.FadeStart) * t)
}

// Warp pulls p towards the frame centre by a factor of y/height, so rows
// near the top converge like a floor seen in perspective.
func (s *Scene) Warp(p image.Point) image.Point {
	w, h := float64(s.cfg.Width), float64(s.cfg.Height)
	d := float64(p.Y) / h
	m := mgl64.Translate2D(w/2, h/2).Mul3(mgl64.Scale2D(d, d)).Mul3(mgl64.Translate2D(-w/2, -h/2))
	v := m.Mul3x1(mgl64.Vec3{float64(p.X), float64(p.Y), 1})
	return image.Pt(int(math.Round(v.X())), int(math.Round(v.Y())))
}

func (s *Scene) drawText(fb *vid.Framebuffer) {
	c := s.cfg.Text.Color.Linear()

	fb.DrawText(c, image.Pt(750, 250), 40, "0123456789")
	fb.DrawText(c, image.Pt(100, 325), 40, "THE QUICK BROWN FOX JUMPS OVER THE LAZY DOG")
	fb.DrawText(c, image.Pt(100, 400), 40, "the quick brown fox jumps over the lazy dog")
	fb.DrawText(c, image.Pt(100, 480), 20, codeSample)

	for _, l := range ladder {
		fb.DrawText(c, image.Pt(10, l.labelY), 8, fmt.Sprintf("%2d pt: ", int(l.size)))
		fb.DrawText(c, image.Pt(60, l.textY), l.size, printable)
	}
}
