// Package scene renders the demo frame: a scrolling, perspective-warped
// grid and a set of text samples.
package scene

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"

	vid "github.com/WimbledonLabs/graphics-vid"
)

// Config is the demo configuration, read from TOML.
type Config struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
	FPS    int `toml:"fps"`

	Grid    GridConfig    `toml:"grid"`
	Text    TextConfig    `toml:"text"`
	Encoder EncoderConfig `toml:"encoder"`
}

// GridConfig describes the scrolling grid.
type GridConfig struct {
	Cell      int   `toml:"cell"` // cell edge in pixels
	Cols      int   `toml:"cols"`
	Rows      int   `toml:"rows"`
	Speed     int   `toml:"speed"`      // pixels scrolled per frame
	FadeStart int   `toml:"fade_start"` // row y where lines start to fade out
	FadeEnd   int   `toml:"fade_end"`   // row y where lines are gone
	Color     Color `toml:"color"`
}

// TextConfig describes the text samples.
type TextConfig struct {
	Color Color `toml:"color"`
	Show  bool  `toml:"show"`
}

// EncoderConfig maps onto vid.EncoderOption values.
type EncoderConfig struct {
	Workers    int  `toml:"workers"`
	BandHeight int  `toml:"band_height"`
	FastCurve  bool `toml:"fast_curve"`
}

// Options returns the encoder options for c.
func (c EncoderConfig) Options() []vid.EncoderOption {
	return []vid.EncoderOption{
		vid.WithWorkers(c.Workers),
		vid.WithBandHeight(c.BandHeight),
		vid.WithFastCurve(c.FastCurve),
	}
}

// Default returns the 1080p demo configuration.
func Default() Config {
	return Config{
		Width:  1920,
		Height: 1080,
		FPS:    60,
		Grid: GridConfig{
			Cell:      50,
			Cols:      36,
			Rows:      25,
			Speed:     1,
			FadeStart: 950,
			FadeEnd:   1000,
			Color:     Color(vid.RGB(1, 0, 1)),
		},
		Text: TextConfig{
			Color: Color(vid.White),
			Show:  true,
		},
		Encoder: EncoderConfig{BandHeight: 16},
	}
}

// Load reads a TOML file on top of Default. A missing file yields the
// defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
	}
	cfg, err := Decode(bytes.NewReader(data))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode reads TOML from r on top of Default. Unknown keys are errors.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return Config{}, fmt.Errorf("unknown config keys:\n%s", strict.String())
		}
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the configuration can drive a frame.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("invalid frame size %dx%d", c.Width, c.Height)
	case c.FPS <= 0:
		return fmt.Errorf("invalid fps %d", c.FPS)
	case c.Grid.Cell <= 0:
		return fmt.Errorf("invalid grid cell %d", c.Grid.Cell)
	case c.Grid.Cols < 0 || c.Grid.Rows < 0:
		return fmt.Errorf("invalid grid %dx%d", c.Grid.Cols, c.Grid.Rows)
	case c.Grid.FadeEnd < c.Grid.FadeStart:
		return fmt.Errorf("grid fade ends (%d) before it starts (%d)", c.Grid.FadeEnd, c.Grid.FadeStart)
	}
	return nil
}

// Color is a linear color written in TOML as an sRGB hex string such as
// "#ff00ff" or "#f0f".
type Color vid.Linear

// Linear returns c as a vid color.
func (c Color) Linear() vid.Linear {
	return vid.Linear(c)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(b []byte) error {
	col, err := colorful.Hex(string(b))
	if err != nil {
		return err
	}
	r, g, bl := col.LinearRgb()
	*c = Color(vid.RGB(float32(r), float32(g), float32(bl)))
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	col := colorful.LinearRgb(float64(c.R), float64(c.G), float64(c.B))
	return []byte(col.Clamped().Hex()), nil
}
