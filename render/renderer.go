// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package render paints shape drawables into a gg.Pixmap.
//
// Rasterization is delegated to a gg.Renderer (gg's software renderer by
// default). This package only maps descriptions to paths and paints, and
// drives the conditional render pass over a shape.Registry.
package render

import (
	"errors"
	"fmt"
	"image"

	"github.com/gogpu/gg"

	"github.com/gogpu/ggboard/internal/logging"
	"github.com/gogpu/ggboard/shape"
)

// DefaultLineWidth is the stroke width used for lines.
const DefaultLineWidth = 1.0

// ErrDegeneratePath is returned when a path has fewer than two points.
var ErrDegeneratePath = errors.New("render: degenerate path")

// Option configures a Renderer during creation.
type Option func(*Renderer)

// WithAntialias toggles anti-aliased strokes. Default false, matching a
// pixel-exact drawing board.
func WithAntialias(aa bool) Option {
	return func(r *Renderer) {
		r.antialias = aa
	}
}

// WithLineWidth sets the stroke width. Non-positive widths are ignored.
func WithLineWidth(w float64) Option {
	return func(r *Renderer) {
		if w > 0 {
			r.lineWidth = w
		}
	}
}

// WithRasterizer replaces gg's software renderer.
func WithRasterizer(rr gg.Renderer) Option {
	return func(r *Renderer) {
		if rr != nil {
			r.rasterizer = rr
		}
	}
}

// Renderer paints drawables into one shared pixmap.
// It is the only writer of that pixmap and is not safe for concurrent use.
type Renderer struct {
	pixmap     *gg.Pixmap
	rasterizer gg.Renderer
	lineWidth  float64
	antialias  bool
}

// New creates a Renderer drawing into pm.
func New(pm *gg.Pixmap, opts ...Option) *Renderer {
	r := &Renderer{
		pixmap:    pm,
		lineWidth: DefaultLineWidth,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.rasterizer == nil {
		r.rasterizer = gg.NewSoftwareRenderer(pm.Width(), pm.Height())
	}
	return r
}

// Pixmap returns the target pixmap.
func (r *Renderer) Pixmap() *gg.Pixmap {
	return r.pixmap
}

// Paint draws one drawable: the description first, then the drawable's
// sprite if its cache is one.
func (r *Renderer) Paint(d *shape.Drawable) error {
	switch desc := d.Description().(type) {
	case shape.Fill:
		r.pixmap.Clear(gg.FromColor(desc.Color))
	case shape.Line, shape.Polyline:
		if err := r.stroke(desc.Paint(), shape.Path(desc)); err != nil {
			return fmt.Errorf("drawable %q: %w", d.ID(), err)
		}
	default:
		return fmt.Errorf("drawable %q: unsupported description %T", d.ID(), desc)
	}
	if s, ok := d.Cache().(*Sprite); ok {
		s.compositeOnto(r.image())
	}
	return nil
}

// Render runs a pass over reg if it needs a redraw and reports whether it
// did. Drawables are painted in registry order; each painted drawable is
// acknowledged, a failing one is logged, skipped and stays dirty. The
// registry itself is acknowledged once at the end of the pass.
func (r *Renderer) Render(reg *shape.Registry) bool {
	if !reg.NeedsRedraw() {
		return false
	}
	log := logging.Get()
	painted, skipped := 0, 0
	for d := range reg.All() {
		if err := r.Paint(d); err != nil {
			log.Warn("render: skipping drawable", "id", d.ID(), "err", err)
			skipped++
			continue
		}
		d.AcknowledgeDrawn()
		painted++
	}
	reg.AcknowledgeDrawn()
	log.Debug("render: pass complete", "painted", painted, "skipped", skipped)
	return true
}

func (r *Renderer) stroke(c shape.Color, pts []shape.Point) error {
	if len(pts) < 2 {
		return fmt.Errorf("%w: %d point(s)", ErrDegeneratePath, len(pts))
	}
	path := gg.NewPath()
	path.MoveTo(float64(pts[0].X), float64(pts[0].Y))
	for _, p := range pts[1:] {
		path.LineTo(float64(p.X), float64(p.Y))
	}

	paint := gg.NewPaint()
	paint.SetBrush(gg.Solid(gg.FromColor(c)))
	paint.LineWidth = r.lineWidth
	paint.Antialias = r.antialias
	return r.rasterizer.Stroke(r.pixmap, path, paint)
}

// image views the pixmap memory as an *image.RGBA without copying.
func (r *Renderer) image() *image.RGBA {
	return PixmapImage(r.pixmap)
}

// PixmapImage returns an *image.RGBA sharing pm's pixel memory.
func PixmapImage(pm *gg.Pixmap) *image.RGBA {
	return &image.RGBA{
		Pix:    pm.Data(),
		Stride: pm.Width() * 4,
		Rect:   image.Rect(0, 0, pm.Width(), pm.Height()),
	}
}
