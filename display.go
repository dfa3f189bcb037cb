package vid

import (
	"fmt"
	"image"
	stdcolor "image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
)

// Display is an encoded frame: Width*Height packed 0x00RRGGBB pixels in
// row-major order, as produced by Encode. It implements image.Image.
type Display struct {
	Pix    []uint32
	Width  int
	Height int
}

// NewDisplay allocates a display buffer matching fb.
func NewDisplay(fb *Framebuffer) *Display {
	return &Display{
		Pix:    make([]uint32, fb.width*fb.height),
		Width:  fb.width,
		Height: fb.height,
	}
}

// Encode fills d from fb using the sequential encoder.
func (d *Display) Encode(fb *Framebuffer) error {
	return Encode(fb, d.Pix)
}

// ToImage converts the display buffer to an opaque image.RGBA.
func (d *Display) ToImage() *image.RGBA {
	img := image.NewRGBA(d.Bounds())
	d.CopyRGBA(img)
	return img
}

// CopyRGBA writes the display buffer into img as opaque pixels, starting at
// img.Rect.Min. Pixels outside img are ignored.
func (d *Display) CopyRGBA(img *image.RGBA) {
	w := min(d.Width, img.Rect.Dx())
	h := min(d.Height, img.Rect.Dy())
	for y := range h {
		row := img.Pix[y*img.Stride : y*img.Stride+w*4]
		for x, p := range d.Pix[y*d.Width : y*d.Width+w] {
			r, g, b := Encoded(p).RGB()
			row[x*4+0] = r
			row[x*4+1] = g
			row[x*4+2] = b
			row[x*4+3] = 0xff
		}
	}
}

// Magnify returns the frame scaled up by an integer factor with
// nearest-neighbour sampling, so individual pixels stay sharp.
// Factors below 1 are treated as 1.
func (d *Display) Magnify(factor int) *image.RGBA {
	src := d.ToImage()
	if factor <= 1 {
		return src
	}
	dst := image.NewRGBA(image.Rect(0, 0, d.Width*factor, d.Height*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// SavePNG saves the display buffer to a PNG file.
func (d *Display) SavePNG(path string) error {
	return saveImage(path, d.ToImage(), png.Encode)
}

// SaveBMP saves the display buffer to a BMP file.
func (d *Display) SaveBMP(path string) error {
	return saveImage(path, d.ToImage(), bmp.Encode)
}

// Save writes a PNG or BMP file depending on the extension of path.
func (d *Display) Save(path string) error {
	return SaveImage(path, d.ToImage())
}

// SaveImage writes img to a PNG or BMP file depending on the extension of
// path. It accepts the result of Magnify as well as a Display.
func SaveImage(path string, img image.Image) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return saveImage(path, img, png.Encode)
	case ".bmp":
		return saveImage(path, img, bmp.Encode)
	default:
		return fmt.Errorf("vid: unsupported image format %q", filepath.Ext(path))
	}
}

func saveImage(path string, img image.Image, encode func(w io.Writer, m image.Image) error) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// At implements the image.Image interface.
func (d *Display) At(x, y int) stdcolor.Color {
	if x < 0 || x >= d.Width || y < 0 || y >= d.Height {
		return stdcolor.RGBA{}
	}
	r, g, b := Encoded(d.Pix[x+y*d.Width]).RGB()
	return stdcolor.RGBA{R: r, G: g, B: b, A: 0xff}
}

// Bounds implements the image.Image interface.
func (d *Display) Bounds() image.Rectangle {
	return image.Rect(0, 0, d.Width, d.Height)
}

// ColorModel implements the image.Image interface.
func (d *Display) ColorModel() stdcolor.Model {
	return stdcolor.RGBAModel
}
