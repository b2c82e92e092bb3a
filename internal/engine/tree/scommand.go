package tree

import (
	"github.com/JoshuaBOUCHAT/radixox/internal/engine/value"
	"github.com/JoshuaBOUCHAT/radixox/internal/engineerr"
)

// SPopResult is the outcome of SPOP: called without a count it pops a
// single optional member, called with one it pops up to count members
// (possibly fewer, possibly none).
type SPopResult struct {
	multi   bool
	one     []byte
	hasOne  bool
	members [][]byte
}

// Single returns the popped member and whether one was available. Valid
// when the result came from SPop with hasCount=false.
func (r SPopResult) Single() ([]byte, bool) { return r.one, r.hasOne }

// Multi reports whether this result came from a counted SPOP.
func (r SPopResult) Multi() bool { return r.multi }

// Members returns the popped members for a counted SPOP.
func (r SPopResult) Members() [][]byte { return r.members }

func (t *Tree) ensureSet(key []byte, expiry uint64) (*value.SetValue, error) {
	idx := t.ensureKey(key)
	if cur := t.nodeValueMut(idx); cur != nil {
		if s, typ := value.AsSet(*cur); typ == value.TypeSet {
			return s, nil
		}
		return nil, engineerr.ErrWrongType
	}

	s := value.NewSet()
	t.setNodeVal(idx, s, expiry)
	return s, nil
}

func (t *Tree) readSet(key []byte) (*value.SetValue, bool, error) {
	v, ok := t.Get(key)
	if !ok {
		return nil, false, nil
	}
	s, typ := value.AsSet(v)
	if typ != value.TypeSet {
		return nil, false, engineerr.ErrWrongType
	}
	return s, true, nil
}

// SAdd adds one or more members to the set at key, creating it if absent.
// Returns the number of members newly inserted.
func (t *Tree) SAdd(key []byte, members [][]byte, expiry uint64) (int, error) {
	t.owner.Enter()
	s, err := t.ensureSet(key, expiry)
	if err != nil {
		return 0, err
	}

	added := 0
	for _, m := range members {
		if s.Add(m) {
			added++
		}
	}
	return added, nil
}

// SRem removes one or more members, auto-deleting the key when the set
// becomes empty. Returns the number of members removed.
func (t *Tree) SRem(key []byte, members [][]byte) (int, error) {
	t.owner.Enter()
	v, ok := t.Get(key)
	if !ok {
		return 0, nil
	}
	s, typ := value.AsSet(v)
	if typ != value.TypeSet {
		return 0, engineerr.ErrWrongType
	}

	removed := 0
	for _, m := range members {
		if s.Remove(m) {
			removed++
		}
	}
	if s.Len() == 0 {
		t.Del(key)
	}
	return removed, nil
}

// SMembers returns every member in lexicographic order. An empty result is
// followed by a cleanup delete, matching the fact that an empty set node
// should never remain visible after being read.
func (t *Tree) SMembers(key []byte) ([][]byte, error) {
	t.owner.Enter()
	s, ok, err := t.readSet(key)
	if err != nil || !ok {
		return nil, err
	}

	members := s.Members()
	if len(members) == 0 {
		t.Del(key)
	}
	return members, nil
}

// SIsMember reports whether member is in the set at key.
func (t *Tree) SIsMember(key, member []byte) (bool, error) {
	t.owner.Enter()
	s, ok, err := t.readSet(key)
	if err != nil || !ok {
		return false, err
	}
	return s.Has(member), nil
}

// SCard returns the number of members in the set at key.
func (t *Tree) SCard(key []byte) (int, error) {
	t.owner.Enter()
	s, ok, err := t.readSet(key)
	if err != nil || !ok {
		return 0, err
	}

	n := s.Len()
	if n == 0 {
		t.Del(key)
	}
	return n, nil
}

// SPop pops a single member when hasCount is false, or up to count members
// when it is true. A missing key auto-creates an empty set the same way
// the other set-mutating commands do, so it pops nothing and leaves an
// empty set behind rather than an error.
func (t *Tree) SPop(key []byte, count int, hasCount bool) (SPopResult, error) {
	t.owner.Enter()
	s, err := t.ensureSet(key, noExpiry)
	if err != nil {
		return SPopResult{}, err
	}

	if !hasCount {
		one, ok := s.PopLargest()
		return SPopResult{hasOne: ok, one: one}, nil
	}

	members := make([][]byte, 0, count)
	for i := 0; i < count; i++ {
		m, ok := s.PopLargest()
		if !ok {
			break
		}
		members = append(members, m)
	}
	return SPopResult{multi: true, members: members}, nil
}
