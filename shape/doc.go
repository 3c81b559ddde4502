// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package shape holds the retained drawing model of a board: value types for
// colors and points, the shape descriptions a drawable carries, the Drawable
// itself and the Registry that keeps drawables in paint order.
//
// # Paint order
//
// A Registry is always sorted by z-order ascending, ties broken by id
// ascending. Lower z paints first; later entries composite over earlier ones.
//
// # Change tracking
//
// Invalidation happens on two levels. Every Drawable has its own dirty flag,
// OR-ed with the state of an embedded RenderCapability (a drawable's private
// render cache). Independently, the Registry keeps one aggregate flag that is
// set by every successful mutation and cleared once per completed render
// pass. The aggregate is a coarse "something changed since the last frame"
// signal and is never recomputed from the members:
//
//	reg := shape.NewRegistry()
//	reg.Add(shape.New("a", shape.Line{Color: red, From: p0, To: p1}, 0))
//	if reg.NeedsRedraw() {
//	    for d := range reg.All() {
//	        paint(d)
//	        d.AcknowledgeDrawn()
//	    }
//	    reg.AcknowledgeDrawn()
//	}
//
// Registry is not safe for concurrent use.
package shape
