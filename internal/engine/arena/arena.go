// Package arena implements an index-stable slab allocator for radix tree
// nodes, plus a tagged subset supporting O(1) expected uniform-random
// sampling (used to drive TTL eviction).
//
// This is deliberately NOT a bump-pointer/real-memory arena: nodes need to
// be removed individually while leaving every other node's index valid,
// since parent back-references and the tagged subset both hold onto raw
// indices across unrelated mutations. A freed slot's index is reused by a
// later Insert (the free list is itself a stack of slot indices), the same
// recycling idea as a classic free-list allocator, just operating on slice
// indices instead of raw pointers.
package arena

import "math/rand"

// NoIndex marks the absence of a value where int32 indices are used as
// sentinels (e.g. "no parent", "no overflow table").
const NoIndex int32 = -1

type slot[T any] struct {
	value    T
	occupied bool
	tagPos   int32 // position in Arena.tagged, or -1 if not tagged
}

// Arena is a slab of T, addressed by stable int32 indices.
//
// The zero value is ready to use.
type Arena[T any] struct {
	slots  []slot[T]
	free   []int32
	tagged []int32
}

// Insert stores v in a reused or newly appended slot and returns its index.
func (a *Arena[T]) Insert(v T) int32 {
	return a.insert(v, false)
}

// InsertTagged stores v and adds it to the tagged subset, for later
// sampling via SampleTagged.
func (a *Arena[T]) InsertTagged(v T) int32 {
	return a.insert(v, true)
}

func (a *Arena[T]) insert(v T, tag bool) int32 {
	var idx int32
	if n := len(a.free); n > 0 {
		idx = a.free[n-1]
		a.free = a.free[:n-1]
		a.slots[idx] = slot[T]{value: v, occupied: true, tagPos: NoIndex}
	} else {
		idx = int32(len(a.slots))
		a.slots = append(a.slots, slot[T]{value: v, occupied: true, tagPos: NoIndex})
	}

	if tag {
		a.Tag(idx)
	}

	return idx
}

// Get returns a pointer to the value at idx, or nil if idx is out of range
// or the slot is free.
func (a *Arena[T]) Get(idx int32) *T {
	if idx < 0 || int(idx) >= len(a.slots) || !a.slots[idx].occupied {
		return nil
	}

	return &a.slots[idx].value
}

// Remove evicts the value at idx, returning it and releasing the slot for
// reuse. Untags the slot first if it was tagged.
func (a *Arena[T]) Remove(idx int32) (T, bool) {
	var zero T
	if idx < 0 || int(idx) >= len(a.slots) || !a.slots[idx].occupied {
		return zero, false
	}

	a.Untag(idx)

	v := a.slots[idx].value
	a.slots[idx] = slot[T]{occupied: false}
	a.free = append(a.free, idx)

	return v, true
}

// Tag adds idx to the sampled subset. A no-op if already tagged.
func (a *Arena[T]) Tag(idx int32) {
	if idx < 0 || int(idx) >= len(a.slots) || !a.slots[idx].occupied {
		return
	}
	if a.slots[idx].tagPos != NoIndex {
		return
	}

	a.slots[idx].tagPos = int32(len(a.tagged))
	a.tagged = append(a.tagged, idx)
}

// Untag removes idx from the sampled subset via swap-with-last. A no-op if
// not tagged.
func (a *Arena[T]) Untag(idx int32) {
	if idx < 0 || int(idx) >= len(a.slots) {
		return
	}

	pos := a.slots[idx].tagPos
	if pos == NoIndex {
		return
	}

	last := int32(len(a.tagged)) - 1
	movedIdx := a.tagged[last]
	a.tagged[pos] = movedIdx
	a.tagged = a.tagged[:last]

	if movedIdx != idx {
		a.slots[movedIdx].tagPos = pos
	}
	a.slots[idx].tagPos = NoIndex
}

// SampleTagged returns a uniformly random (index, value) pair from the
// tagged subset. ok is false if the subset is empty.
func (a *Arena[T]) SampleTagged(rng *rand.Rand) (idx int32, value *T, ok bool) {
	if len(a.tagged) == 0 {
		return 0, nil, false
	}

	idx = a.tagged[rng.Intn(len(a.tagged))]

	return idx, &a.slots[idx].value, true
}

// Stats is a diagnostic snapshot of the arena's occupancy.
type Stats struct {
	Slots  int
	Free   int
	Tagged int
}

// Stats reports the arena's current slot/free/tagged counts.
func (a *Arena[T]) Stats() Stats {
	return Stats{Slots: len(a.slots), Free: len(a.free), Tagged: len(a.tagged)}
}
