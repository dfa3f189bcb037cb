package vid

import (
	"fmt"
	"log/slog"

	"github.com/WimbledonLabs/graphics-vid/internal/color"
	"github.com/WimbledonLabs/graphics-vid/internal/parallel"
)

// Encode converts fb into packed 0x00RRGGBB display pixels in dst, which
// must hold exactly Width*Height values.
//
// Linear pixels are scaled by their alpha and passed through the display
// curve; encoded pixels are copied. Encode runs on the calling goroutine;
// use an Encoder to spread the work across cores.
func Encode(fb *Framebuffer, dst []uint32) error {
	if err := checkDisplay(fb, dst); err != nil {
		return err
	}
	encodeRows(fb, dst, 0, fb.height, color.Encode)
	return nil
}

// Encoder converts framebuffers to display pixels in parallel, one band of
// rows per task. The result is identical to Encode unless WithFastCurve is
// set.
//
// An Encoder is safe for concurrent use on distinct buffers. Close it to
// release its goroutines.
type Encoder struct {
	pool       *parallel.WorkerPool
	bandHeight int
	encode     func(color.ColorF32) uint32
}

// NewEncoder starts an Encoder.
func NewEncoder(opts ...EncoderOption) *Encoder {
	o := defaultEncoderOptions()
	for _, opt := range opts {
		opt(&o)
	}

	e := &Encoder{
		pool:       parallel.NewWorkerPool(o.workers),
		bandHeight: o.bandHeight,
		encode:     color.Encode,
	}
	if o.fastCurve {
		e.encode = color.EncodeFast
	}

	Logger().Debug("vid: encoder started",
		slog.Int("workers", e.pool.Workers()),
		slog.Int("band_height", e.bandHeight),
		slog.Bool("fast_curve", o.fastCurve))
	return e
}

// Workers returns the number of encoding goroutines.
func (e *Encoder) Workers() int {
	return e.pool.Workers()
}

// Encode converts fb into dst like the package-level Encode, returning
// once every band is done. After Close it encodes on the calling
// goroutine.
func (e *Encoder) Encode(fb *Framebuffer, dst []uint32) error {
	if err := checkDisplay(fb, dst); err != nil {
		return err
	}

	bands := parallel.Split(fb.height, e.bandHeight)
	e.pool.Run(len(bands), func(i int) {
		encodeRows(fb, dst, bands[i].Y0, bands[i].Y1, e.encode)
	})
	return nil
}

// Close stops the encoder's goroutines. It is safe to call more than once.
func (e *Encoder) Close() {
	e.pool.Close()
}

func checkDisplay(fb *Framebuffer, dst []uint32) error {
	if want := fb.width * fb.height; len(dst) != want {
		return fmt.Errorf("display holds %d pixels, framebuffer %dx%d needs %d: %w",
			len(dst), fb.width, fb.height, want, ErrDisplaySize)
	}
	return nil
}

// encodeRows converts rows [y0, y1) of fb into dst.
func encodeRows(fb *Framebuffer, dst []uint32, y0, y1 int, encode func(color.ColorF32) uint32) {
	lo, hi := y0*fb.width, y1*fb.width
	if fb.storage == StorageEncoded {
		for i, p := range fb.encoded[lo:hi] {
			dst[lo+i] = p & 0xffffff
		}
		return
	}
	for i, p := range fb.linear[lo:hi] {
		dst[lo+i] = encode(color.ColorF32(p))
	}
}
