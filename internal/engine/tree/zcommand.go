package tree

import (
	"strconv"

	"github.com/JoshuaBOUCHAT/radixox/internal/engine/value"
	"github.com/JoshuaBOUCHAT/radixox/internal/engineerr"
)

// ScoreMember is one score/member pair for ZADD.
type ScoreMember struct {
	Score  float64
	Member []byte
}

func (t *Tree) ensureZSet(key []byte, expiry uint64) (*value.ZSetValue, error) {
	idx := t.ensureKey(key)
	if cur := t.nodeValueMut(idx); cur != nil {
		if z, typ := value.AsZSet(*cur); typ == value.TypeZSet {
			return z, nil
		}
		return nil, engineerr.ErrWrongType
	}

	z := value.NewZSet()
	t.setNodeVal(idx, z, expiry)
	return z, nil
}

func (t *Tree) readZSet(key []byte) (*value.ZSetValue, bool, error) {
	v, ok := t.Get(key)
	if !ok {
		return nil, false, nil
	}
	z, typ := value.AsZSet(v)
	if typ != value.TypeZSet {
		return nil, false, engineerr.ErrWrongType
	}
	return z, true, nil
}

// ZAdd adds or updates one or more (score, member) pairs, creating the
// sorted set if absent. Returns the number of members that are newly
// added; updating the score of an existing member does not count.
func (t *Tree) ZAdd(key []byte, scoreMembers []ScoreMember, expiry uint64) (int, error) {
	t.owner.Enter()
	z, err := t.ensureZSet(key, expiry)
	if err != nil {
		return 0, err
	}

	added := 0
	for _, sm := range scoreMembers {
		if z.Set(sm.Member, sm.Score) {
			added++
		}
	}
	return added, nil
}

// ZCard returns the number of members in the sorted set at key.
func (t *Tree) ZCard(key []byte) (int, error) {
	t.owner.Enter()
	z, ok, err := t.readZSet(key)
	if err != nil || !ok {
		return 0, err
	}
	return z.Len(), nil
}

// ZRange returns members (and optionally scores, as decimal-string bytes
// interleaved after each member) ordered by (score, member) ascending, for
// the rank range [start, stop]. Negative indices count from the end.
func (t *Tree) ZRange(key []byte, start, stop int, withScores bool) ([][]byte, error) {
	t.owner.Enter()
	z, ok, err := t.readZSet(key)
	if err != nil || !ok {
		return nil, err
	}

	n := z.Len()
	start = normalizeRangeStart(start, n)
	stop = normalizeRangeStop(stop, n)
	if start > stop || n == 0 {
		return nil, nil
	}

	entries := z.Range(start, stop)
	out := make([][]byte, 0, len(entries)*2)
	for _, e := range entries {
		member, score := value.Member(e)
		out = append(out, member)
		if withScores {
			out = append(out, []byte(strconv.FormatFloat(score, 'f', -1, 64)))
		}
	}
	return out, nil
}

func normalizeRangeStart(start, n int) int {
	if start < 0 {
		start += n
		if start < 0 {
			start = 0
		}
		return start
	}
	if start > n {
		return n
	}
	return start
}

func normalizeRangeStop(stop, n int) int {
	if stop < 0 {
		stop += n
		if stop < 0 {
			stop = 0
		}
		return stop
	}
	if stop > n-1 {
		return n - 1
	}
	return stop
}

// ZScore returns the score of member in the sorted set at key.
func (t *Tree) ZScore(key, member []byte) (float64, bool, error) {
	t.owner.Enter()
	z, ok, err := t.readZSet(key)
	if err != nil || !ok {
		return 0, false, err
	}
	score, present := z.Score(member)
	return score, present, nil
}

// ZRem removes one or more members, auto-deleting the key when the sorted
// set becomes empty. Returns the number of members removed.
func (t *Tree) ZRem(key []byte, members [][]byte) (int, error) {
	t.owner.Enter()
	v, ok := t.Get(key)
	if !ok {
		return 0, nil
	}
	z, typ := value.AsZSet(v)
	if typ != value.TypeZSet {
		return 0, engineerr.ErrWrongType
	}

	removed := 0
	for _, m := range members {
		if z.Remove(m) {
			removed++
		}
	}
	if z.Len() == 0 {
		t.Del(key)
	}
	return removed, nil
}

// ZIncrBy adds increment to member's score, creating the member (with
// score == increment) if it isn't already present. Returns the new score.
func (t *Tree) ZIncrBy(key []byte, increment float64, member []byte) (float64, error) {
	t.owner.Enter()
	z, err := t.ensureZSet(key, noExpiry)
	if err != nil {
		return 0, err
	}

	newScore := increment
	if current, ok := z.Score(member); ok {
		newScore = current + increment
	}
	z.Set(member, newScore)
	return newScore, nil
}
