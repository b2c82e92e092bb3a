package value

import (
	"bytes"
	"sort"

	"github.com/JoshuaBOUCHAT/radixox/internal/engine/hashtable"
)

// zsetPromoteThreshold is the member count at which a ZSetValue switches
// from its small linear-scan representation to the hashtable-backed score
// index: below it a linear scan beats hashing, above it the O(n) ZSCORE
// cost starts to matter.
const zsetPromoteThreshold = 16

type scoreMember struct {
	member []byte
	score  float64
}

func lessScoreMember(a, b scoreMember) bool {
	if a.score != b.score {
		return a.score < b.score
	}
	return bytes.Compare(a.member, b.member) < 0
}

// ZSetValue is a sorted set: a member→score map paired with an ordering by
// (score, member). Small sets keep a single sorted vector, doing both jobs
// with linear/binary-search scans. Past zsetPromoteThreshold members it
// keeps the sorted vector for ordered access but adds a hashtable.Map for
// O(1) ZSCORE, trading memory for avoiding the linear rescan a pure sorted
// vector would need on every lookup. There's no balanced-tree type in
// scope, so both tiers keep the ordering in a flat sorted slice rather than
// a self-balancing structure.
type ZSetValue struct {
	sorted []scoreMember
	scores *hashtable.Map[float64] // nil until promoted
}

func (*ZSetValue) RedisType() RedisType { return TypeZSet }

// NewZSet returns an empty sorted set.
func NewZSet() *ZSetValue {
	return &ZSetValue{}
}

// Len reports the number of members.
func (z *ZSetValue) Len() int { return len(z.sorted) }

// Score returns the score for member, if present.
func (z *ZSetValue) Score(member []byte) (float64, bool) {
	if z.scores != nil {
		return z.scores.Get(string(member))
	}

	for _, sm := range z.sorted {
		if bytes.Equal(sm.member, member) {
			return sm.score, true
		}
	}
	return 0, false
}

// Set inserts member with score, or updates its score if present. Returns
// true if member is new.
func (z *ZSetValue) Set(member []byte, score float64) bool {
	if old, ok := z.Score(member); ok {
		if old == score {
			return false
		}
		z.removeSorted(member)
		z.insertSorted(member, score)
		if z.scores != nil {
			z.scores.Set(string(member), score)
		}
		return false
	}

	z.insertSorted(member, score)
	if z.scores != nil {
		z.scores.Set(string(member), score)
	}

	if z.scores == nil && len(z.sorted) > zsetPromoteThreshold {
		z.promote()
	}
	return true
}

// Remove deletes member, reporting whether it was present.
func (z *ZSetValue) Remove(member []byte) bool {
	if _, ok := z.Score(member); !ok {
		return false
	}

	z.removeSorted(member)
	if z.scores != nil {
		z.scores.Delete(string(member))
	}
	return true
}

// Range returns members ordered by (score, member) for indices [start,
// stop] inclusive, clamped to bounds.
func (z *ZSetValue) Range(start, stop int) []scoreMember {
	n := len(z.sorted)
	if start < 0 {
		start = 0
	}
	if stop >= n {
		stop = n - 1
	}
	if start > stop || n == 0 {
		return nil
	}

	out := make([]scoreMember, stop-start+1)
	copy(out, z.sorted[start:stop+1])
	return out
}

// Member returns the member and score at a Range entry.
func Member(sm scoreMember) ([]byte, float64) { return sm.member, sm.score }

func (z *ZSetValue) insertSorted(member []byte, score float64) {
	sm := scoreMember{member: member, score: score}
	i := sort.Search(len(z.sorted), func(i int) bool { return !lessScoreMember(z.sorted[i], sm) })
	z.sorted = append(z.sorted, scoreMember{})
	copy(z.sorted[i+1:], z.sorted[i:])
	z.sorted[i] = sm
}

func (z *ZSetValue) removeSorted(member []byte) {
	for i, sm := range z.sorted {
		if bytes.Equal(sm.member, member) {
			z.sorted = append(z.sorted[:i], z.sorted[i+1:]...)
			return
		}
	}
}

func (z *ZSetValue) promote() {
	scores := hashtable.New[float64]()
	for _, sm := range z.sorted {
		scores.Set(string(sm.member), sm.score)
	}
	z.scores = scores
}
