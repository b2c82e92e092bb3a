package tree

import (
	"github.com/JoshuaBOUCHAT/radixox/internal/engine/value"
	"github.com/JoshuaBOUCHAT/radixox/internal/engineerr"
)

// List commands follow the same get-or-create / auto-cleanup-on-empty idiom
// as the hash and set commands.

func (t *Tree) ensureList(key []byte, expiry uint64) (*value.ListValue, error) {
	idx := t.ensureKey(key)
	if cur := t.nodeValueMut(idx); cur != nil {
		if l, typ := value.AsList(*cur); typ == value.TypeList {
			return l, nil
		}
		return nil, engineerr.ErrWrongType
	}

	l := value.NewList()
	t.setNodeVal(idx, l, expiry)
	return l, nil
}

func (t *Tree) readList(key []byte) (*value.ListValue, bool, error) {
	v, ok := t.Get(key)
	if !ok {
		return nil, false, nil
	}
	l, typ := value.AsList(v)
	if typ != value.TypeList {
		return nil, false, engineerr.ErrWrongType
	}
	return l, true, nil
}

// LPush prepends one or more values to the list at key, creating it if
// absent. Values are pushed left-to-right, so the last argument ends up
// closest to the head. Returns the new length.
func (t *Tree) LPush(key []byte, values [][]byte, expiry uint64) (int, error) {
	t.owner.Enter()
	l, err := t.ensureList(key, expiry)
	if err != nil {
		return 0, err
	}
	for _, v := range values {
		l.PushLeft(v)
	}
	return l.Len(), nil
}

// RPush appends one or more values to the list at key, creating it if
// absent. Returns the new length.
func (t *Tree) RPush(key []byte, values [][]byte, expiry uint64) (int, error) {
	t.owner.Enter()
	l, err := t.ensureList(key, expiry)
	if err != nil {
		return 0, err
	}
	for _, v := range values {
		l.PushRight(v)
	}
	return l.Len(), nil
}

// LPop removes and returns the head of the list at key, auto-deleting the
// key when the list becomes empty.
func (t *Tree) LPop(key []byte) ([]byte, bool, error) {
	t.owner.Enter()
	v, ok := t.Get(key)
	if !ok {
		return nil, false, nil
	}
	l, typ := value.AsList(v)
	if typ != value.TypeList {
		return nil, false, engineerr.ErrWrongType
	}

	val, ok := l.PopLeft()
	if l.Len() == 0 {
		t.Del(key)
	}
	return val, ok, nil
}

// RPop removes and returns the tail of the list at key, auto-deleting the
// key when the list becomes empty.
func (t *Tree) RPop(key []byte) ([]byte, bool, error) {
	t.owner.Enter()
	v, ok := t.Get(key)
	if !ok {
		return nil, false, nil
	}
	l, typ := value.AsList(v)
	if typ != value.TypeList {
		return nil, false, engineerr.ErrWrongType
	}

	val, ok := l.PopRight()
	if l.Len() == 0 {
		t.Del(key)
	}
	return val, ok, nil
}

// LLen returns the number of elements in the list at key.
func (t *Tree) LLen(key []byte) (int, error) {
	t.owner.Enter()
	l, ok, err := t.readList(key)
	if err != nil || !ok {
		return 0, err
	}
	return l.Len(), nil
}

// LRange returns the elements in [start, stop] inclusive, head to tail.
// Negative indices count from the end.
func (t *Tree) LRange(key []byte, start, stop int) ([][]byte, error) {
	t.owner.Enter()
	l, ok, err := t.readList(key)
	if err != nil || !ok {
		return nil, err
	}

	n := l.Len()
	start = normalizeRangeStart(start, n)
	stop = normalizeRangeStop(stop, n)
	return l.Range(start, stop), nil
}

// LIndex returns the element at position i (0-based from the head).
// Negative indices count from the end.
func (t *Tree) LIndex(key []byte, i int) ([]byte, bool, error) {
	t.owner.Enter()
	l, ok, err := t.readList(key)
	if err != nil || !ok {
		return nil, false, err
	}

	if i < 0 {
		i += l.Len()
	}
	return l.Index(i)
}
