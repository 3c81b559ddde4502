// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package batch

import (
	"github.com/gogpu/ggboard/internal/logging"
	"github.com/gogpu/ggboard/shape"
)

// Result summarizes one Apply call.
type Result struct {
	Added   int
	Removed int
	Changed int

	// Missed lists the ids of removes and changes whose target was not
	// found, in application order.
	Missed []string
}

// Apply replays ops against reg: adds, then removes, then changes, each in
// list order. Missing ids are logged and recorded in the result; they never
// stop the batch.
func Apply(reg *shape.Registry, ops Ops) Result {
	var res Result
	for _, op := range ops.Add {
		reg.Add(op.Drawable())
		res.Added++
	}
	for _, op := range ops.Remove {
		if reg.Remove(op.ID) {
			res.Removed++
		} else {
			res.Missed = append(res.Missed, op.ID)
		}
	}
	for _, op := range ops.Change {
		t := op.Transform()
		ok := reg.Change(op.ID, func(d *shape.Drawable) {
			d.ChangeDescription(t)
		})
		if ok {
			res.Changed++
		} else {
			res.Missed = append(res.Missed, op.ID)
		}
	}
	logging.Get().Debug("batch: applied",
		"added", res.Added, "removed", res.Removed, "changed", res.Changed, "missed", len(res.Missed))
	return res
}
