// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package shape

import (
	"iter"
	"slices"
	"strconv"

	"github.com/gogpu/ggboard/internal/logging"
)

// Registry is an ordered collection of drawables with an aggregate dirty
// flag. Entries are kept sorted by (z-order, id) at insertion time.
//
// Ids are unique: adding a drawable whose id is already present replaces
// the older entry.
type Registry struct {
	items []*Drawable
	dirty bool
}

// NewRegistry creates an empty registry. A new registry needs a redraw so
// the first frame always clears the buffer.
func NewRegistry() *Registry {
	return &Registry{
		items: make([]*Drawable, 0, 16),
		dirty: true,
	}
}

// Len returns the number of drawables.
func (r *Registry) Len() int {
	return len(r.items)
}

// Add inserts d at its sorted position and marks the registry dirty.
// An existing drawable with the same id is dropped first.
func (r *Registry) Add(d *Drawable) {
	if i := r.index(d.id); i >= 0 {
		logging.Get().Info("shape: replacing drawable", "id", d.id, "previous", r.items[i].String())
		r.items = slices.Delete(r.items, i, i+1)
	}
	r.insert(d)
	r.dirty = true
}

// Remove deletes the drawable with the given id and marks the registry
// dirty. It reports whether the id was found.
func (r *Registry) Remove(id string) bool {
	i := r.index(id)
	if i < 0 {
		logging.Get().Info("shape: no drawable to remove", "id", id)
		return false
	}
	r.items = slices.Delete(r.items, i, i+1)
	r.dirty = true
	return true
}

// Change calls mutate on the drawable with the given id and marks the
// registry dirty. If the id is unknown, Change logs it, leaves the dirty
// flag as it was and returns false.
//
// The mutator may change the drawable's z-order; the entry is moved to keep
// the registry sorted.
func (r *Registry) Change(id string, mutate func(*Drawable)) bool {
	i := r.index(id)
	if i < 0 {
		logging.Get().Info("shape: no drawable to change", "id", id)
		return false
	}
	d := r.items[i]
	z := d.z
	if mutate != nil {
		mutate(d)
	}
	if d.z != z {
		r.items = slices.Delete(r.items, i, i+1)
		r.insert(d)
	}
	r.dirty = true
	return true
}

// Get returns the drawable with the given id.
func (r *Registry) Get(id string) (*Drawable, bool) {
	if i := r.index(id); i >= 0 {
		return r.items[i], true
	}
	return nil, false
}

// GenerateID returns the decimal form of the current size.
//
// The ids are only fresh while no drawable has been removed: after a
// removal the count goes down and a previously issued id comes back.
func (r *Registry) GenerateID() string {
	return strconv.Itoa(len(r.items))
}

// All returns the drawables in paint order. The sequence can be ranged over
// any number of times; it must not be used while the registry is mutated.
func (r *Registry) All() iter.Seq[*Drawable] {
	return func(yield func(*Drawable) bool) {
		for _, d := range r.items {
			if !yield(d) {
				return
			}
		}
	}
}

// IDs returns the ids in paint order.
func (r *Registry) IDs() []string {
	ids := make([]string, len(r.items))
	for i, d := range r.items {
		ids[i] = d.id
	}
	return ids
}

// NeedsRedraw reports whether anything changed since the last
// AcknowledgeDrawn. It does not look at the drawables' own flags.
func (r *Registry) NeedsRedraw() bool {
	return r.dirty
}

// AcknowledgeDrawn clears the aggregate flag. Drawables keep their own
// flags; whoever paints them acknowledges them.
func (r *Registry) AcknowledgeDrawn() {
	r.dirty = false
}

func (r *Registry) insert(d *Drawable) {
	i, _ := slices.BinarySearchFunc(r.items, d, (*Drawable).Compare)
	r.items = slices.Insert(r.items, i, d)
}

func (r *Registry) index(id string) int {
	for i, d := range r.items {
		if d.id == id {
			return i
		}
	}
	return -1
}
