// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggboard

import (
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/ggboard/batch"
	"github.com/gogpu/ggboard/render"
	"github.com/gogpu/ggboard/shape"
)

// ErrInvalidDimensions is returned by New when width or height is invalid.
var ErrInvalidDimensions = errors.New("ggboard: invalid dimensions")

// BackgroundID is the id of the background shape.
const BackgroundID = "background"

// BackgroundZ is the z-order of the background shape.
const BackgroundZ = math.MinInt32

// maxDimension bounds width and height so the RGBA buffer size fits an int.
const maxDimension = 1 << 15

// Board is a raster buffer plus the shapes painted into it.
type Board struct {
	pixmap   *gg.Pixmap
	shapes   *shape.Registry
	renderer *render.Renderer
}

// New creates a width x height board, installs the background shape and
// renders the first frame.
func New(width, height int, opts ...Option) (*Board, error) {
	if width <= 0 || height <= 0 || width > maxDimension || height > maxDimension {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	pm := gg.NewPixmap(width, height)
	b := &Board{
		pixmap: pm,
		shapes: shape.NewRegistry(),
		renderer: render.New(pm,
			render.WithAntialias(o.antialias),
			render.WithLineWidth(o.lineWidth),
			render.WithRasterizer(o.rasterizer),
		),
	}
	if o.hasBackground {
		b.shapes.Add(shape.New(BackgroundID, shape.Fill{Color: o.background}, BackgroundZ))
	}
	b.Render()
	return b, nil
}

// Width returns the board width in pixels.
func (b *Board) Width() int {
	return b.pixmap.Width()
}

// Height returns the board height in pixels.
func (b *Board) Height() int {
	return b.pixmap.Height()
}

// Shapes returns the board's registry. Mutating it directly is allowed;
// Render picks the changes up like any other.
func (b *Board) Shapes() *shape.Registry {
	return b.shapes
}

// Batch decodes a JSON batch and applies it. A batch that fails to decode
// is logged and dropped without touching the board; Batch then returns
// false.
func (b *Board) Batch(data []byte) bool {
	ops, err := batch.Decode(data)
	if err != nil {
		Logger().Warn("ggboard: rejected batch", "err", err, "size", len(data))
		return false
	}
	b.ApplyBatch(ops)
	return true
}

// ApplyBatch applies already decoded operations.
func (b *Board) ApplyBatch(ops batch.Ops) batch.Result {
	return batch.Apply(b.shapes, ops)
}

// PutPrimitive adds a shape under a generated id and returns the id.
func (b *Board) PutPrimitive(desc shape.Description, z int, opts ...shape.DrawableOption) string {
	id := b.shapes.GenerateID()
	b.shapes.Add(shape.New(id, desc, z, opts...))
	return id
}

// PutLine adds an opaque line at z-order 0 and returns its id.
func (b *Board) PutLine(c shape.Color, from, to shape.Point) string {
	return b.PutPrimitive(shape.Line{Color: c, From: from, To: to}, 0)
}

// ChangePrimitive applies t to the description of the shape with the given
// id. It reports whether the shape exists.
func (b *Board) ChangePrimitive(id string, t shape.Transform) bool {
	return b.shapes.Change(id, func(d *shape.Drawable) {
		d.ChangeDescription(t)
	})
}

// ChangeLine replaces a line wholesale. Shapes that are not lines are left
// as they are, though they still count as changed.
func (b *Board) ChangeLine(id string, c shape.Color, from, to shape.Point) bool {
	return b.ChangePrimitive(id, shape.ReplaceLine(shape.Line{Color: c, From: from, To: to}))
}

// DrawSprite draws into the sprite embedded in the shape with the given id
// and marks the board for redraw. It reports false if the shape is unknown
// or carries no sprite.
func (b *Board) DrawSprite(id string, fn func(dc *gg.Context)) bool {
	d, ok := b.shapes.Get(id)
	if !ok {
		return false
	}
	s, ok := d.Cache().(*render.Sprite)
	if !ok {
		return false
	}
	return b.shapes.Change(id, func(*shape.Drawable) {
		s.Draw(fn)
	})
}

// Remove deletes the shape with the given id.
func (b *Board) Remove(id string) bool {
	return b.shapes.Remove(id)
}

// Render repaints the buffer if anything changed since the last frame and
// reports whether it did.
func (b *Board) Render() bool {
	return b.renderer.Render(b.shapes)
}

// Buffer returns the raw RGBA pixels, 4 bytes per pixel, row by row.
// The slice aliases the board's memory; it stays valid for the board's
// lifetime and reflects every Render.
func (b *Board) Buffer() []byte {
	return b.pixmap.Data()
}

// BufferSize returns len(Buffer()).
func (b *Board) BufferSize() int {
	return len(b.pixmap.Data())
}

// Image returns an *image.RGBA sharing the board's memory.
func (b *Board) Image() *image.RGBA {
	return render.PixmapImage(b.pixmap)
}

// Format returns the texture format of Buffer, for hosts that upload it to
// a GPU texture.
func (b *Board) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}
