// Package childtable implements the two-tier, unordered child container
// that hangs off every radix tree node.
//
// Most nodes have few children, so each node carries a small fixed-size
// inline array (Small) good for up to smallCap entries. A node whose
// children exceed that capacity grows an overflow table (Overflow), indexed
// separately and referenced by the node. Both tiers are deliberately
// unordered: lookup is linear scan by radix byte, and removal is a swap
// with the last live entry, which keeps mutation O(1) at the cost of
// losing iteration order. Keys are ASCII 1..=127, so radix 0 is reserved as
// an unused-slot marker.
package childtable

// SmallCap is the number of children that fit inline on a node before an
// Overflow table is needed.
const SmallCap = 9

// asciiMax is the largest radix byte a key may carry (keys are ASCII
// 1..=127, 0 is reserved).
const asciiMax = 127

// OverflowCap is the capacity of an Overflow table: the full ASCII radix
// range minus what Small already covers.
const OverflowCap = asciiMax - SmallCap

// Small is the inline child container embedded directly in a node.
type Small struct {
	radixes [SmallCap]byte
	idxs    [SmallCap]int32
	length  uint8
}

// Len reports the number of children held.
func (s *Small) Len() int { return int(s.length) }

// IsEmpty reports whether the table holds no children.
func (s *Small) IsEmpty() bool { return s.length == 0 }

// IsFull reports whether the table has reached SmallCap entries.
func (s *Small) IsFull() bool { return int(s.length) == SmallCap }

// Find returns the child index stored under radix, if any.
func (s *Small) Find(radix byte) (int32, bool) {
	for i := 0; i < int(s.length); i++ {
		if s.radixes[i] == radix {
			return s.idxs[i], true
		}
	}

	return 0, false
}

// Push appends a new (radix, idx) pair. The caller must ensure the table
// is not full and radix is not already present.
func (s *Small) Push(radix byte, idx int32) {
	n := s.length
	s.radixes[n] = radix
	s.idxs[n] = idx
	s.length++
}

// Remove deletes the entry for radix via swap-with-last, returning the
// removed index.
func (s *Small) Remove(radix byte) (int32, bool) {
	for i := 0; i < int(s.length); i++ {
		if s.radixes[i] != radix {
			continue
		}

		last := int(s.length) - 1
		removed := s.idxs[i]
		s.radixes[i] = s.radixes[last]
		s.idxs[i] = s.idxs[last]
		s.length--

		return removed, true
	}

	return 0, false
}

// SingleChild returns the sole (radix, idx) pair if the table holds exactly
// one entry.
func (s *Small) SingleChild() (radix byte, idx int32, ok bool) {
	if s.length != 1 {
		return 0, 0, false
	}

	return s.radixes[0], s.idxs[0], true
}

// Entry is a (radix, child index) pair, used by iteration.
type Entry struct {
	Radix byte
	Idx   int32
}

// Each calls fn for every (radix, idx) pair, in unspecified order.
func (s *Small) Each(fn func(radix byte, idx int32)) {
	for i := 0; i < int(s.length); i++ {
		fn(s.radixes[i], s.idxs[i])
	}
}

// Entries returns a snapshot slice of all (radix, idx) pairs.
func (s *Small) Entries() []Entry {
	out := make([]Entry, 0, s.length)
	s.Each(func(radix byte, idx int32) { out = append(out, Entry{radix, idx}) })

	return out
}

// Overflow is an out-of-line child table for nodes whose children exceed
// SmallCap. Same unordered, swap-remove semantics as Small, just with more
// room.
type Overflow struct {
	entries []Entry
}

// NewOverflow creates an Overflow table seeded with one entry.
func NewOverflow(radix byte, idx int32) *Overflow {
	return &Overflow{entries: []Entry{{radix, idx}}}
}

// Find returns the child index stored under radix, if any.
func (o *Overflow) Find(radix byte) (int32, bool) {
	for _, e := range o.entries {
		if e.Radix == radix {
			return e.Idx, true
		}
	}

	return 0, false
}

// Push appends a new (radix, idx) pair.
func (o *Overflow) Push(radix byte, idx int32) {
	o.entries = append(o.entries, Entry{radix, idx})
}

// Remove deletes the entry for radix via swap-with-last, returning the
// removed index.
func (o *Overflow) Remove(radix byte) (int32, bool) {
	for i, e := range o.entries {
		if e.Radix != radix {
			continue
		}

		last := len(o.entries) - 1
		removed := e.Idx
		o.entries[i] = o.entries[last]
		o.entries = o.entries[:last]

		return removed, true
	}

	return 0, false
}

// IsEmpty reports whether the table holds no children.
func (o *Overflow) IsEmpty() bool { return len(o.entries) == 0 }

// Each calls fn for every (radix, idx) pair, in unspecified order.
func (o *Overflow) Each(fn func(radix byte, idx int32)) {
	for _, e := range o.entries {
		fn(e.Radix, e.Idx)
	}
}

// Entries returns a snapshot slice of all (radix, idx) pairs.
func (o *Overflow) Entries() []Entry {
	out := make([]Entry, len(o.entries))
	copy(out, o.entries)

	return out
}
