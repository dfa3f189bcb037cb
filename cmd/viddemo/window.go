package main

import (
	"errors"
	"image"
	"runtime"
	"time"

	gl "github.com/go-gl/gl/v3.1/gles2"
	"github.com/go-gl/glfw/v3.3/glfw"

	vid "github.com/WimbledonLabs/graphics-vid"
	"github.com/WimbledonLabs/graphics-vid/internal/scene"
)

func init() {
	runtime.LockOSThread()
}

// window is the interactive demo: it renders one frame per tick and shows
// it until Escape is pressed or the window is closed.
type window struct {
	r         *renderer
	presenter *Presenter
	fbSize    image.Point
	isRunning bool

	// frame time statistics since the last report
	frames int
	spent  time.Duration
}

func runWindow(cfg scene.Config, fullscreen bool) error {
	err := glfw.Init()
	if err != nil {
		return err
	}
	defer glfw.Terminate()

	monitor := glfw.GetPrimaryMonitor()
	if monitor == nil {
		return errors.New("no monitors found")
	}
	mode := monitor.GetVideoMode()
	if mode == nil {
		return errors.New("video mode cannot be determined")
	}
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.Focused, glfw.True)
	glfw.WindowHint(glfw.AutoIconify, glfw.False)
	glfw.WindowHint(glfw.DoubleBuffer, glfw.True)
	glfw.WindowHint(glfw.ClientAPI, glfw.OpenGLESAPI)
	glfw.WindowHint(glfw.ContextVersionMajor, 2)

	width, height := min(cfg.Width, mode.Width), min(cfg.Height, mode.Height)
	var target *glfw.Monitor
	if fullscreen {
		glfw.WindowHint(glfw.RefreshRate, mode.RefreshRate)
		width, height, target = mode.Width, mode.Height, monitor
	}
	win, err := glfw.CreateWindow(width, height, "viddemo", target, nil)
	if err != nil {
		return err
	}
	defer win.Destroy()

	w := &window{isRunning: true}
	framebufferSizeCallback := func(_ *glfw.Window, width, height int) {
		w.fbSize = image.Pt(width, height)
		gl.Viewport(0, 0, int32(width), int32(height))
		logger.Debug("framebuffer resized", "width", width, "height", height)
	}
	win.SetFramebufferSizeCallback(framebufferSizeCallback)
	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if action == glfw.Press && key == glfw.KeyEscape {
			w.isRunning = false
		}
	})
	win.SetCloseCallback(func(*glfw.Window) {
		w.isRunning = false
	})
	win.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		return err
	}
	fbWidth, fbHeight := win.GetFramebufferSize()
	framebufferSizeCallback(win, fbWidth, fbHeight)

	w.presenter, err = CreatePresenter(cfg.Width, cfg.Height)
	if err != nil {
		return err
	}
	defer w.presenter.Close()
	w.r = newRenderer(cfg)
	defer w.r.Close()

	logger.Info("window opened",
		"width", width, "height", height,
		"frame", image.Pt(cfg.Width, cfg.Height),
		"workers", w.r.enc.Workers(),
		"fps", cfg.FPS,
		"version", vid.Version)

	frameSeconds := 1.0 / float64(cfg.FPS)
	for w.isRunning {
		start := glfw.GetTime()
		gl.ClearColor(0, 0, 0, 1)
		gl.Clear(gl.COLOR_BUFFER_BIT)
		if err := w.render(cfg.FPS); err != nil {
			return err
		}
		win.SwapBuffers()
		elapsedSeconds := glfw.GetTime() - start
		if frameSeconds > elapsedSeconds {
			glfw.WaitEventsTimeout(frameSeconds - elapsedSeconds)
		} else {
			glfw.PollEvents()
		}
	}
	logger.Info("window closed", "frames", w.r.frame)
	return nil
}

// render draws the next frame and reports the average frame time once per
// second of frames.
func (w *window) render(fps int) error {
	d, err := w.r.step()
	if err != nil {
		return err
	}
	w.presenter.Present(w.r.disp, w.fbSize)

	logger.Debug("frame", "n", w.r.frame-1, "time", d)
	w.frames++
	w.spent += d
	if w.frames >= fps {
		logger.Info("frame time", "avg", w.spent/time.Duration(w.frames), "frames", w.r.frame)
		w.frames, w.spent = 0, 0
	}
	return nil
}
