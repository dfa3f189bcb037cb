// Package vid draws anti-aliased lines and stroke text into a linear-light
// framebuffer and encodes it for display.
//
// # Overview
//
// vid is a small CPU renderer for video-style output. Drawing happens in
// linear light; a separate encode step applies the display curve and packs
// each pixel as 0x00RRGGBB, ready for a texture upload or an image file.
//
// # Quick Start
//
//	import vid "github.com/WimbledonLabs/graphics-vid"
//
//	fb := vid.NewFramebuffer(1920, 1080)
//	fb.DrawLine(vid.White, image.Pt(10, 10), image.Pt(400, 90))
//	fb.DrawText(vid.RGB(1, 0, 1), image.Pt(100, 325), 40, "HELLO")
//
//	enc := vid.NewEncoder()
//	defer enc.Close()
//	disp := vid.NewDisplay(fb)
//	_ = enc.Encode(fb, disp.Pix)
//	_ = disp.Save("frame.png")
//
// # Architecture
//
// The library is organized into:
//   - Public API: Framebuffer, Color, Segment, Encoder, Display
//   - Internal: clip (segment clipping), raster (Wu lines), blend
//     (compositing), color (display curve), parallel (band workers)
//   - text: a fixed-advance stroke font laid out with the golden ratio
//
// # Coordinate System
//
// Pixel coordinates are integers:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// Lines are clipped to the framebuffer before rasterization, so any
// endpoints are accepted.
//
// # Color
//
// Linear values are light intensities in [0,1]. Encoded values are what a
// display expects. Blending a Linear onto a framebuffer with linear storage
// is physically correct; framebuffers with encoded storage skip the gamma
// stage and blend display values directly.
package vid

// Version is the current version of the library.
const Version = "0.1.0"
