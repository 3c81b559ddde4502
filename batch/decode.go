// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package batch

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ErrMalformed is wrapped by every Decode error.
var ErrMalformed = errors.New("batch: malformed batch")

// wireOps mirrors Ops with pointers so missing lists can be told apart from
// empty ones.
type wireOps struct {
	Add    *[]wireAdd    `json:"add"`
	Remove *[]RemoveOp   `json:"remove"`
	Change *[]wireChange `json:"change"`
}

type wireChange struct {
	ID   *string `json:"id"`
	Fill *Color  `json:"fill"`
	From *Point  `json:"from"`
	To   *Point  `json:"to"`
}

type wireAdd struct {
	ID   *string `json:"id"`
	Fill *Color  `json:"fill"`
	From *Point  `json:"from"`
	To   *Point  `json:"to"`
	Z    int     `json:"z"`
}

// Decode parses one JSON batch:
//
//	{"add":[{"id":"l","fill":{"red":255,"green":0,"blue":0,"alpha":255},
//	         "from":{"x":0,"y":0},"to":{"x":10,"y":10}}],
//	 "remove":["old"],
//	 "change":[{"id":"l","to":{"x":1,"y":0}}]}
//
// All three lists are required. Add items need every field but z; change
// items need an id. Channels outside 0-255 and negative coordinates are
// rejected. On error nothing is returned, so a caller applying the result
// never sees a partial batch.
func Decode(data []byte) (Ops, error) {
	var w wireOps
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&w); err != nil {
		return Ops{}, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return Ops{}, fmt.Errorf("%w: trailing data after batch", ErrMalformed)
	}

	switch {
	case w.Add == nil:
		return Ops{}, fmt.Errorf("%w: missing field \"add\"", ErrMalformed)
	case w.Remove == nil:
		return Ops{}, fmt.Errorf("%w: missing field \"remove\"", ErrMalformed)
	case w.Change == nil:
		return Ops{}, fmt.Errorf("%w: missing field \"change\"", ErrMalformed)
	}

	ops := Ops{
		Add:    make([]AddOp, 0, len(*w.Add)),
		Remove: *w.Remove,
		Change: make([]ChangeOp, 0, len(*w.Change)),
	}
	for i, a := range *w.Add {
		if a.ID == nil || a.Fill == nil || a.From == nil || a.To == nil {
			return Ops{}, fmt.Errorf("%w: add[%d]: id, fill, from and to are required", ErrMalformed, i)
		}
		ops.Add = append(ops.Add, AddOp{ID: *a.ID, Fill: *a.Fill, From: *a.From, To: *a.To, Z: a.Z})
	}
	for i, c := range *w.Change {
		if c.ID == nil {
			return Ops{}, fmt.Errorf("%w: change[%d]: id is required", ErrMalformed, i)
		}
		ops.Change = append(ops.Change, ChangeOp{ID: *c.ID, Fill: c.Fill, From: c.From, To: c.To})
	}
	return ops, nil
}

// Encode is the inverse of Decode. Nil lists are written as empty arrays.
func Encode(ops Ops) ([]byte, error) {
	if ops.Add == nil {
		ops.Add = []AddOp{}
	}
	if ops.Remove == nil {
		ops.Remove = []RemoveOp{}
	}
	if ops.Change == nil {
		ops.Change = []ChangeOp{}
	}
	return json.Marshal(ops)
}
