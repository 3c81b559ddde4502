// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"image"

	"github.com/gogpu/gg"
	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/ggboard/shape"
)

// Sprite is a private sub-canvas a drawable can embed as its render cache.
// Drawing into it marks it stale, which makes the owning drawable need a
// redraw even if its description did not change. The renderer composites
// the sprite over the board at Origin after painting the description.
//
// Sprite implements shape.RenderCapability.
type Sprite struct {
	ctx    *gg.Context
	pixmap *gg.Pixmap
	origin shape.Point
	stale  bool
}

// NewSprite creates a transparent width x height sprite placed at origin.
func NewSprite(width, height int, origin shape.Point) *Sprite {
	pm := gg.NewPixmap(width, height)
	return &Sprite{
		ctx:    gg.NewContext(width, height, gg.WithPixmap(pm)),
		pixmap: pm,
		origin: origin,
		stale:  true,
	}
}

// Draw calls fn with the sprite's drawing context and marks it stale.
func (s *Sprite) Draw(fn func(dc *gg.Context)) {
	fn(s.ctx)
	s.stale = true
}

// Move places the sprite at origin and marks it stale.
func (s *Sprite) Move(origin shape.Point) {
	s.origin = origin
	s.stale = true
}

// Origin returns the top-left corner of the sprite on the board.
func (s *Sprite) Origin() shape.Point {
	return s.origin
}

// Pixmap returns the sprite's pixels.
func (s *Sprite) Pixmap() *gg.Pixmap {
	return s.pixmap
}

// NeedsRedraw implements shape.RenderCapability.
func (s *Sprite) NeedsRedraw() bool {
	return s.stale
}

// AcknowledgeDrawn implements shape.RenderCapability.
func (s *Sprite) AcknowledgeDrawn() {
	s.stale = false
}

func (s *Sprite) compositeOnto(dst *image.RGBA) {
	src := PixmapImage(s.pixmap)
	at := image.Pt(int(s.origin.X), int(s.origin.Y))
	r := src.Bounds().Add(at)
	xdraw.Draw(dst, r, src, image.Point{}, xdraw.Over)
}

var _ shape.RenderCapability = (*Sprite)(nil)
