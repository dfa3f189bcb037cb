package vid

// FramebufferOption configures a Framebuffer during creation.
//
// Example:
//
//	// Linear storage, ready for the gamma stage (the default)
//	fb := vid.NewFramebuffer(1920, 1080)
//
//	// Pixels stored display-encoded, blended without gamma
//	fb := vid.NewFramebuffer(320, 200, vid.WithStorage(vid.StorageEncoded))
type FramebufferOption func(*framebufferOptions)

type framebufferOptions struct {
	storage Storage
}

func defaultFramebufferOptions() framebufferOptions {
	return framebufferOptions{storage: StorageLinear}
}

// WithStorage selects how a Framebuffer stores its pixels.
func WithStorage(s Storage) FramebufferOption {
	return func(o *framebufferOptions) {
		o.storage = s
	}
}

// EncoderOption configures an Encoder during creation.
//
// Example:
//
//	enc := vid.NewEncoder(vid.WithWorkers(8), vid.WithBandHeight(32))
//	defer enc.Close()
type EncoderOption func(*encoderOptions)

type encoderOptions struct {
	workers    int
	bandHeight int
	fastCurve  bool
}

// defaultBandHeight balances scheduling overhead against load spread for
// frames around 1080 rows.
const defaultBandHeight = 16

func defaultEncoderOptions() encoderOptions {
	return encoderOptions{
		workers:    0, // GOMAXPROCS
		bandHeight: defaultBandHeight,
	}
}

// WithWorkers sets the number of encoding goroutines.
// Zero or a negative value uses GOMAXPROCS.
func WithWorkers(n int) EncoderOption {
	return func(o *encoderOptions) {
		o.workers = n
	}
}

// WithBandHeight sets how many rows one worker encodes per task.
// Zero or a negative value keeps the default.
func WithBandHeight(rows int) EncoderOption {
	return func(o *encoderOptions) {
		if rows > 0 {
			o.bandHeight = rows
		}
	}
}

// WithFastCurve makes the Encoder use a lookup table for the display curve.
// Results may differ from Encode by one step per channel near black.
func WithFastCurve(enabled bool) EncoderOption {
	return func(o *encoderOptions) {
		o.fastCurve = enabled
	}
}
