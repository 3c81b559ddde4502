// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package shape

import (
	"cmp"
	"fmt"
)

// RenderCapability is the render-cache state a Drawable embeds.
// It lets a drawable's own cached renderer state (a private sub-canvas, a
// dependent sub-render) take part in invalidation without the Registry
// knowing its internals.
type RenderCapability interface {
	// NeedsRedraw reports whether the cache became stale since it was last
	// acknowledged.
	NeedsRedraw() bool

	// AcknowledgeDrawn marks the cache as up to date.
	AcknowledgeDrawn()
}

// NoCache is the RenderCapability of drawables without a render cache.
// It never needs a redraw.
type NoCache struct{}

func (NoCache) NeedsRedraw() bool { return false }
func (NoCache) AcknowledgeDrawn() {}

// DrawableOption configures a Drawable during creation.
type DrawableOption func(*Drawable)

// WithCache embeds c as the drawable's render cache.
// A nil capability keeps NoCache.
func WithCache(c RenderCapability) DrawableOption {
	return func(d *Drawable) {
		if c != nil {
			d.cache = c
		}
	}
}

// Drawable is a shape owned by a Registry: an identity, a description, a
// stacking key and change-tracking state.
//
// Two drawables with the same id are the same entity, whatever their content.
// Outside of tests, drawables are only mutated through Registry.Change.
type Drawable struct {
	id    string
	desc  Description
	z     int
	dirty bool
	cache RenderCapability
}

// New creates a dirty Drawable.
func New(id string, desc Description, z int, opts ...DrawableOption) *Drawable {
	d := &Drawable{
		id:    id,
		desc:  desc,
		z:     z,
		dirty: true,
		cache: NoCache{},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// ID returns the drawable identity.
func (d *Drawable) ID() string {
	return d.id
}

// Description returns the current description.
func (d *Drawable) Description() Description {
	return d.desc
}

// ZOrder returns the stacking key.
func (d *Drawable) ZOrder() int {
	return d.z
}

// SetZOrder changes the stacking key and marks the drawable dirty.
// Call it only from a Registry.Change mutator so the registry can restore
// its order.
func (d *Drawable) SetZOrder(z int) {
	d.z = z
	d.dirty = true
}

// Cache returns the embedded render capability.
func (d *Drawable) Cache() RenderCapability {
	return d.cache
}

// ChangeDescription replaces the description with t(current) and marks the
// drawable dirty, even when t leaves the description as it was.
func (d *Drawable) ChangeDescription(t Transform) {
	d.desc = Apply(d.desc, t)
	d.dirty = true
}

// NeedsRedraw reports whether the drawable or its cache changed since the
// last AcknowledgeDrawn.
func (d *Drawable) NeedsRedraw() bool {
	return d.dirty || d.cache.NeedsRedraw()
}

// AcknowledgeDrawn clears the drawable's own flag, then its cache's.
func (d *Drawable) AcknowledgeDrawn() {
	d.dirty = false
	d.cache.AcknowledgeDrawn()
}

// Compare orders drawables by z-order, then by id.
// It returns -1, 0 or +1 and is only meant for placement, not equality.
func (d *Drawable) Compare(other *Drawable) int {
	if c := cmp.Compare(d.z, other.z); c != 0 {
		return c
	}
	return cmp.Compare(d.id, other.id)
}

// String implements fmt.Stringer.
func (d *Drawable) String() string {
	return fmt.Sprintf("Drawable{id=%q z=%d %T dirty=%t}", d.id, d.z, d.desc, d.dirty)
}
