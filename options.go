package ggboard

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/ggboard/render"
	"github.com/gogpu/ggboard/shape"
)

// DefaultBackground is the color of the background shape installed by New.
var DefaultBackground = shape.Color{R: 255, G: 40, B: 255, A: 100}

// Option configures a Board during creation.
//
// Example:
//
//	b, err := ggboard.New(800, 600,
//	    ggboard.WithBackground(shape.RGB(255, 255, 255)),
//	    ggboard.WithAntialias(true),
//	)
type Option func(*options)

type options struct {
	background    shape.Color
	hasBackground bool
	antialias     bool
	lineWidth     float64
	rasterizer    gg.Renderer
}

func defaultOptions() options {
	return options{
		background:    DefaultBackground,
		hasBackground: true,
		lineWidth:     render.DefaultLineWidth,
	}
}

// WithBackground sets the color of the background shape.
func WithBackground(c shape.Color) Option {
	return func(o *options) {
		o.background = c
		o.hasBackground = true
	}
}

// WithoutBackground starts the board with an empty registry.
func WithoutBackground() Option {
	return func(o *options) {
		o.hasBackground = false
	}
}

// WithAntialias toggles anti-aliased line strokes. Default off.
func WithAntialias(aa bool) Option {
	return func(o *options) {
		o.antialias = aa
	}
}

// WithLineWidth sets the stroke width of lines.
func WithLineWidth(w float64) Option {
	return func(o *options) {
		o.lineWidth = w
	}
}

// WithRasterizer injects the gg.Renderer that strokes paths.
// Use this for testing or for a custom backend.
func WithRasterizer(r gg.Renderer) Option {
	return func(o *options) {
		o.rasterizer = r
	}
}
