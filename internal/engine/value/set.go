package value

import (
	"bytes"
	"sort"

	"github.com/JoshuaBOUCHAT/radixox/internal/engine/hashtable"
)

// SetValue is an unordered collection of distinct members, backed by a
// hashtable.Map for O(1) membership. Redis-visible iteration order is
// lexicographic, approximated by sorting at read time rather than keeping a
// persistent ordered structure — there's no generic ordered-set/B-tree type
// available, and a set is read far less often than it's mutated, so paying
// the sort cost on read keeps writes simple and allocation-free.
type SetValue struct {
	members *hashtable.Map[struct{}]
}

func (*SetValue) RedisType() RedisType { return TypeSet }

// NewSet returns an empty set.
func NewSet() *SetValue {
	return &SetValue{members: hashtable.New[struct{}]()}
}

// Len reports the number of members.
func (s *SetValue) Len() int { return s.members.Len() }

// Add inserts member, returning true if it was not already present.
func (s *SetValue) Add(member []byte) bool {
	return s.members.Set(string(member), struct{}{})
}

// Remove deletes member, reporting whether it was present.
func (s *SetValue) Remove(member []byte) bool {
	return s.members.Delete(string(member))
}

// Has reports whether member is in the set.
func (s *SetValue) Has(member []byte) bool {
	return s.members.Has(string(member))
}

// Members returns every member in lexicographic order.
func (s *SetValue) Members() [][]byte {
	out := make([][]byte, 0, s.members.Len())
	s.members.Each(func(k string, _ struct{}) { out = append(out, []byte(k)) })
	sort.Slice(out, func(i, j int) bool { return bytes.Compare(out[i], out[j]) < 0 })
	return out
}

// PopLargest removes and returns the lexicographically largest member. SPOP
// is deterministic here rather than random: it always pops the tail of the
// ordered member set.
func (s *SetValue) PopLargest() ([]byte, bool) {
	members := s.Members()
	if len(members) == 0 {
		return nil, false
	}

	largest := members[len(members)-1]
	s.members.Delete(string(largest))
	return largest, true
}
