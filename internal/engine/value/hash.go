package value

import "github.com/JoshuaBOUCHAT/radixox/internal/engine/hashtable"

// hashPromoteThreshold is the field count at which a HashValue abandons its
// linear-scan small-vector representation for the hashtable-backed tier.
// Mirrors the 16-entry threshold the sorted-set promotion uses; hashes have
// no ordering requirement so the same cutover works for the same reason
// (bounded scan cost beyond a handful of fields).
const hashPromoteThreshold = 16

type hashField struct {
	field []byte
	value []byte
}

// HashValue is a field→value map. Small hashes store fields as a linear
// vector to avoid hashing overhead; beyond hashPromoteThreshold fields it
// promotes to a hashtable.Map for O(1) lookup.
type HashValue struct {
	small []hashField
	large *hashtable.Map[[]byte]
}

func (*HashValue) RedisType() RedisType { return TypeHash }

// NewHash returns an empty hash.
func NewHash() *HashValue {
	return &HashValue{}
}

// Len reports the number of fields.
func (h *HashValue) Len() int {
	if h.large != nil {
		return h.large.Len()
	}
	return len(h.small)
}

// Get returns the value for field, if present.
func (h *HashValue) Get(field []byte) ([]byte, bool) {
	if h.large != nil {
		return h.large.Get(string(field))
	}
	for _, f := range h.small {
		if string(f.field) == string(field) {
			return f.value, true
		}
	}
	return nil, false
}

// Set inserts or updates field, returning true if field is new. Promotes to
// the hashtable tier once the small vector crosses hashPromoteThreshold.
func (h *HashValue) Set(field, val []byte) bool {
	if h.large != nil {
		return h.large.Set(string(field), val)
	}

	for i, f := range h.small {
		if string(f.field) == string(field) {
			h.small[i].value = val
			return false
		}
	}

	h.small = append(h.small, hashField{field: field, value: val})
	if len(h.small) > hashPromoteThreshold {
		h.promote()
	}
	return true
}

// Delete removes field, reporting whether it was present.
func (h *HashValue) Delete(field []byte) bool {
	if h.large != nil {
		return h.large.Delete(string(field))
	}

	for i, f := range h.small {
		if string(f.field) == string(field) {
			last := len(h.small) - 1
			h.small[i] = h.small[last]
			h.small = h.small[:last]
			return true
		}
	}
	return false
}

// Each calls fn for every field/value pair in unspecified order.
func (h *HashValue) Each(fn func(field, val []byte)) {
	if h.large != nil {
		h.large.Each(func(k string, v []byte) { fn([]byte(k), v) })
		return
	}
	for _, f := range h.small {
		fn(f.field, f.value)
	}
}

func (h *HashValue) promote() {
	large := hashtable.New[[]byte]()
	for _, f := range h.small {
		large.Set(string(f.field), f.value)
	}
	h.large = large
	h.small = nil
}
