// Command viddemo renders the vid demo scene: a scrolling perspective grid
// with text samples. It opens a window by default, or writes a still with
// -snapshot.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	vid "github.com/WimbledonLabs/graphics-vid"
	"github.com/WimbledonLabs/graphics-vid/internal/scene"
)

func main() {
	var (
		configPath = flag.String("config", "viddemo.toml", "TOML config file; missing means defaults")
		logLevel   = flag.String("log-level", "info", "log level: debug, info, warn or error")
		width      = flag.Int("width", 0, "frame width, overrides the config")
		height     = flag.Int("height", 0, "frame height, overrides the config")
		workers    = flag.Int("workers", -1, "encoder goroutines, 0 for GOMAXPROCS; overrides the config")
		snapshot   = flag.String("snapshot", "", "render headless and save the last frame to this .png or .bmp file")
		frames     = flag.Int("frames", 1, "frames to render with -snapshot")
		scale      = flag.Int("scale", 1, "integer magnification of the -snapshot image")
		fullscreen = flag.Bool("fullscreen", false, "open the window on the primary monitor")
	)
	flag.Parse()

	if err := InitLogger(*logLevel); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	cfg, err := scene.Load(*configPath)
	if err != nil {
		logger.Error("loading config", "err", err)
		os.Exit(1)
	}
	if *width > 0 {
		cfg.Width = *width
	}
	if *height > 0 {
		cfg.Height = *height
	}
	if *workers >= 0 {
		cfg.Encoder.Workers = *workers
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid config", "err", err)
		os.Exit(1)
	}

	if *snapshot != "" {
		err = runSnapshot(cfg, *snapshot, *frames, *scale)
	} else {
		err = runWindow(cfg, *fullscreen)
	}
	if err != nil {
		logger.Error("viddemo failed", "err", err)
		os.Exit(1)
	}
}

// renderer owns the per-frame state shared by the window and snapshot
// paths.
type renderer struct {
	scene *scene.Scene
	fb    *vid.Framebuffer
	disp  *vid.Display
	enc   *vid.Encoder
	frame int
}

func newRenderer(cfg scene.Config) *renderer {
	fb := vid.NewFramebuffer(cfg.Width, cfg.Height)
	return &renderer{
		scene: scene.New(cfg),
		fb:    fb,
		disp:  vid.NewDisplay(fb),
		enc:   vid.NewEncoder(cfg.Encoder.Options()...),
	}
}

// step draws and encodes the next frame and returns how long it took.
func (r *renderer) step() (time.Duration, error) {
	start := time.Now()
	r.scene.Render(r.fb, r.frame)
	if err := r.enc.Encode(r.fb, r.disp.Pix); err != nil {
		return 0, fmt.Errorf("frame %d: %w", r.frame, err)
	}
	r.frame++
	return time.Since(start), nil
}

func (r *renderer) Close() {
	r.enc.Close()
}

func runSnapshot(cfg scene.Config, path string, frames, scale int) error {
	r := newRenderer(cfg)
	defer r.Close()

	var total time.Duration
	for range max(frames, 1) {
		d, err := r.step()
		if err != nil {
			return err
		}
		total += d
		logger.Debug("frame", "n", r.frame-1, "time", d)
	}
	logger.Info("rendered",
		"frames", r.frame,
		"size", fmt.Sprintf("%dx%d", cfg.Width, cfg.Height),
		"workers", r.enc.Workers(),
		"avg", total/time.Duration(r.frame))

	if err := vid.SaveImage(path, r.disp.Magnify(scale)); err != nil {
		return err
	}
	logger.Info("snapshot saved", "path", path, "scale", max(scale, 1))
	return nil
}
