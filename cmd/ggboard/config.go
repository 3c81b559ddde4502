package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/gogpu/ggboard"
	"github.com/gogpu/ggboard/shape"
)

// Config is the board.toml file:
//
//	width = 640
//	height = 480
//	antialias = false
//	line_width = 1.0
//	output = "frame.png"
//
//	[background]
//	red = 255
//	green = 40
//	blue = 255
//	alpha = 100
type Config struct {
	Width      int         `toml:"width"`
	Height     int         `toml:"height"`
	Antialias  bool        `toml:"antialias"`
	LineWidth  float64     `toml:"line_width"`
	Output     string      `toml:"output"`
	Background *ColorTable `toml:"background"`
}

// ColorTable is a color in TOML form.
type ColorTable struct {
	Red   uint8 `toml:"red"`
	Green uint8 `toml:"green"`
	Blue  uint8 `toml:"blue"`
	Alpha uint8 `toml:"alpha"`
}

// DefaultConfig returns the settings used without a config file.
func DefaultConfig() Config {
	return Config{
		Width:     640,
		Height:    480,
		LineWidth: 1,
		Output:    "frame.png",
	}
}

// LoadConfig reads path over the defaults. Unknown keys are an error so
// typos do not go unnoticed.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return cfg, err
	}
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("config %s: unknown keys %v", path, undecoded)
	}
	return cfg, nil
}

// BoardOptions converts the config to board options.
func (c Config) BoardOptions() []ggboard.Option {
	opts := []ggboard.Option{
		ggboard.WithAntialias(c.Antialias),
		ggboard.WithLineWidth(c.LineWidth),
	}
	if c.Background != nil {
		opts = append(opts, ggboard.WithBackground(shape.Color{
			R: c.Background.Red,
			G: c.Background.Green,
			B: c.Background.Blue,
			A: c.Background.Alpha,
		}))
	}
	return opts
}
