// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package batch replays decoded add/remove/change operation lists against a
// shape.Registry.
//
// A batch is applied in three passes: every add in list order, then every
// remove, then every change. Items are independent: an unknown id is logged
// and skipped, and nothing applied before it is rolled back.
package batch

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gogpu/ggboard/shape"
)

// Color is the wire form of shape.Color.
type Color struct {
	Red   uint8 `json:"red"`
	Green uint8 `json:"green"`
	Blue  uint8 `json:"blue"`
	Alpha uint8 `json:"alpha"`
}

// Shape converts c to a shape.Color.
func (c Color) Shape() shape.Color {
	return shape.Color{R: c.Red, G: c.Green, B: c.Blue, A: c.Alpha}
}

// Point is the wire form of shape.Point.
type Point struct {
	X uint32 `json:"x"`
	Y uint32 `json:"y"`
}

// Shape converts p to a shape.Point.
func (p Point) Shape() shape.Point {
	return shape.Point{X: p.X, Y: p.Y}
}

// AddOp adds a line.
type AddOp struct {
	ID   string `json:"id"`
	Fill Color  `json:"fill"`
	From Point  `json:"from"`
	To   Point  `json:"to"`
	Z    int    `json:"z,omitempty"`
}

// Drawable builds the drawable the operation adds.
func (op AddOp) Drawable() *shape.Drawable {
	return shape.New(op.ID, shape.Line{
		Color: op.Fill.Shape(),
		From:  op.From.Shape(),
		To:    op.To.Shape(),
	}, op.Z)
}

// RemoveOp removes a drawable by id. On the wire it is either the bare id
// string or an object {"id": "..."}.
type RemoveOp struct {
	ID string `json:"id"`
}

// UnmarshalJSON accepts both wire forms.
func (op *RemoveOp) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return errors.New("remove: null item")
	}
	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		op.ID = id
		return nil
	}
	var obj struct {
		ID *string `json:"id"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("remove: %w", err)
	}
	if obj.ID == nil {
		return errors.New("remove: missing id")
	}
	op.ID = *obj.ID
	return nil
}

// ChangeOp edits an existing drawable. Only the fields that are set are
// applied.
type ChangeOp struct {
	ID   string `json:"id"`
	Fill *Color `json:"fill,omitempty"`
	From *Point `json:"from,omitempty"`
	To   *Point `json:"to,omitempty"`
}

// Transform returns the description edit the operation carries: fill first,
// then from, then to.
func (op ChangeOp) Transform() shape.Transform {
	var ts []shape.Transform
	if op.Fill != nil {
		ts = append(ts, shape.WithColor(op.Fill.Shape()))
	}
	if op.From != nil {
		ts = append(ts, shape.WithFrom(op.From.Shape()))
	}
	if op.To != nil {
		ts = append(ts, shape.WithTo(op.To.Shape()))
	}
	return shape.Chain(ts...)
}

// Ops is one decoded batch.
type Ops struct {
	Add    []AddOp    `json:"add"`
	Remove []RemoveOp `json:"remove"`
	Change []ChangeOp `json:"change"`
}

// Empty reports whether the batch carries no operation.
func (o Ops) Empty() bool {
	return len(o.Add) == 0 && len(o.Remove) == 0 && len(o.Change) == 0
}
