// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package shape

import "slices"

// Description is the drawable content of a shape.
// It is one of Line, Polyline or Fill.
//
// Descriptions are values: edits never modify a description in place, they
// rebuild it through a Transform.
type Description interface {
	// Paint returns the color the description is drawn with.
	Paint() Color
	isDescription()
}

// Line is a straight segment stroked with Color.
type Line struct {
	Color    Color
	From, To Point
}

func (l Line) Paint() Color { return l.Color }
func (Line) isDescription() {}

// Polyline is a connected path through Points stroked with Color.
// A polyline needs at least two points to be drawn.
type Polyline struct {
	Color  Color
	Points []Point
}

func (p Polyline) Paint() Color { return p.Color }
func (Polyline) isDescription() {}

// Fill replaces the whole raster buffer with Color.
type Fill struct {
	Color Color
}

func (f Fill) Paint() Color { return f.Color }
func (Fill) isDescription() {}

// Path returns the points of d in path order: [From, To] for a Line, a copy
// of Points for a Polyline and nil for a Fill.
func Path(d Description) []Point {
	switch v := d.(type) {
	case Line:
		return []Point{v.From, v.To}
	case Polyline:
		return slices.Clone(v.Points)
	default:
		return nil
	}
}

// Transform receives the current description and returns its replacement.
// A transform that edits a field the variant does not have must return the
// variant unchanged.
type Transform func(Description) Description

// Apply returns t(current). A nil transform or a nil result keeps current.
func Apply(current Description, t Transform) Description {
	if t == nil {
		return current
	}
	if next := t(current); next != nil {
		return next
	}
	return current
}

// Chain composes transforms left to right.
func Chain(ts ...Transform) Transform {
	return func(d Description) Description {
		for _, t := range ts {
			d = Apply(d, t)
		}
		return d
	}
}

// WithColor replaces the color of any variant, leaving geometry untouched.
func WithColor(c Color) Transform {
	return func(d Description) Description {
		switch v := d.(type) {
		case Line:
			v.Color = c
			return v
		case Polyline:
			return Polyline{Color: c, Points: slices.Clone(v.Points)}
		case Fill:
			v.Color = c
			return v
		}
		return d
	}
}

// WithFrom replaces the first point of the path. Fill is left unchanged.
func WithFrom(p Point) Transform {
	return func(d Description) Description {
		switch v := d.(type) {
		case Line:
			v.From = p
			return v
		case Polyline:
			if len(v.Points) == 0 {
				return d
			}
			pts := slices.Clone(v.Points)
			pts[0] = p
			return Polyline{Color: v.Color, Points: pts}
		}
		return d
	}
}

// WithTo replaces the last point of the path. Fill is left unchanged.
func WithTo(p Point) Transform {
	return func(d Description) Description {
		switch v := d.(type) {
		case Line:
			v.To = p
			return v
		case Polyline:
			if len(v.Points) == 0 {
				return d
			}
			pts := slices.Clone(v.Points)
			pts[len(pts)-1] = p
			return Polyline{Color: v.Color, Points: pts}
		}
		return d
	}
}

// ReplaceLine swaps a Line for the given one. Other variants are unchanged.
func ReplaceLine(l Line) Transform {
	return func(d Description) Description {
		if _, ok := d.(Line); ok {
			return l
		}
		return d
	}
}
