package tree

import (
	"sort"
	"strconv"

	"github.com/JoshuaBOUCHAT/radixox/internal/engine/value"
	"github.com/JoshuaBOUCHAT/radixox/internal/engineerr"
)

// FieldValue is one field/value pair for HSET.
type FieldValue struct {
	Field []byte
	Value []byte
}

// ensureHash returns the hash at key, creating an empty one with the given
// expiry if the key is absent or its value already expired. Reports
// ErrWrongType if key holds a non-hash value.
func (t *Tree) ensureHash(key []byte, expiry uint64) (*value.HashValue, error) {
	idx := t.ensureKey(key)
	if cur := t.nodeValueMut(idx); cur != nil {
		if h, typ := value.AsHash(*cur); typ == value.TypeHash {
			return h, nil
		}
		return nil, engineerr.ErrWrongType
	}

	h := value.NewHash()
	t.setNodeVal(idx, h, expiry)
	return h, nil
}

// readHash fetches the hash at key for a read-only command, reporting
// (nil, false, nil) when the key is absent. ErrWrongType on a type clash.
func (t *Tree) readHash(key []byte) (*value.HashValue, bool, error) {
	v, ok := t.Get(key)
	if !ok {
		return nil, false, nil
	}
	h, typ := value.AsHash(v)
	if typ != value.TypeHash {
		return nil, false, engineerr.ErrWrongType
	}
	return h, true, nil
}

// HSet sets one or more fields on the hash at key, creating it (with the
// given TTL, noExpiry for none) if absent. Returns the number of fields
// that were newly inserted, not updated.
func (t *Tree) HSet(key []byte, fieldValues []FieldValue, expiry uint64) (int, error) {
	t.owner.Enter()
	h, err := t.ensureHash(key, expiry)
	if err != nil {
		return 0, err
	}

	added := 0
	for _, fv := range fieldValues {
		if h.Set(fv.Field, fv.Value) {
			added++
		}
	}
	return added, nil
}

// HGet returns the value of a single hash field.
func (t *Tree) HGet(key, field []byte) ([]byte, bool, error) {
	t.owner.Enter()
	h, ok, err := t.readHash(key)
	if err != nil || !ok {
		return nil, false, err
	}
	return h.Get(field)
}

// HGetAll returns every field/value pair as a flat [field, value, ...]
// slice in lexicographic field order.
func (t *Tree) HGetAll(key []byte) ([][]byte, error) {
	t.owner.Enter()
	h, ok, err := t.readHash(key)
	if err != nil || !ok {
		return nil, err
	}

	type pair struct{ field, val []byte }
	pairs := make([]pair, 0, h.Len())
	h.Each(func(field, val []byte) { pairs = append(pairs, pair{field, val}) })
	sort.Slice(pairs, func(i, j int) bool { return string(pairs[i].field) < string(pairs[j].field) })

	out := make([][]byte, 0, len(pairs)*2)
	for _, p := range pairs {
		out = append(out, p.field, p.val)
	}
	return out, nil
}

// HDel removes one or more fields, auto-deleting the key when the hash
// becomes empty. Returns the number of fields removed.
func (t *Tree) HDel(key []byte, fields [][]byte) (int, error) {
	t.owner.Enter()
	v, ok := t.Get(key)
	if !ok {
		return 0, nil
	}
	h, typ := value.AsHash(v)
	if typ != value.TypeHash {
		return 0, engineerr.ErrWrongType
	}

	removed := 0
	for _, f := range fields {
		if h.Delete(f) {
			removed++
		}
	}
	if h.Len() == 0 {
		t.Del(key)
	}
	return removed, nil
}

// HExists reports whether field is present in the hash at key.
func (t *Tree) HExists(key, field []byte) (bool, error) {
	t.owner.Enter()
	h, ok, err := t.readHash(key)
	if err != nil || !ok {
		return false, err
	}
	_, present := h.Get(field)
	return present, nil
}

// HLen returns the number of fields in the hash at key.
func (t *Tree) HLen(key []byte) (int, error) {
	t.owner.Enter()
	h, ok, err := t.readHash(key)
	if err != nil || !ok {
		return 0, err
	}
	return h.Len(), nil
}

// HKeys returns every field name, in unspecified order.
func (t *Tree) HKeys(key []byte) ([][]byte, error) {
	t.owner.Enter()
	h, ok, err := t.readHash(key)
	if err != nil || !ok {
		return nil, err
	}
	out := make([][]byte, 0, h.Len())
	h.Each(func(field, _ []byte) { out = append(out, field) })
	return out, nil
}

// HVals returns every field value, in unspecified order.
func (t *Tree) HVals(key []byte) ([][]byte, error) {
	t.owner.Enter()
	h, ok, err := t.readHash(key)
	if err != nil || !ok {
		return nil, err
	}
	out := make([][]byte, 0, h.Len())
	h.Each(func(_, val []byte) { out = append(out, val) })
	return out, nil
}

// HMGet returns the value of each requested field, nil for any that are
// missing, always one result per input field.
func (t *Tree) HMGet(key []byte, fields [][]byte) ([][]byte, error) {
	t.owner.Enter()
	out := make([][]byte, len(fields))

	h, ok, err := t.readHash(key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return out, nil
	}
	for i, f := range fields {
		if v, present := h.Get(f); present {
			out[i] = v
		}
	}
	return out, nil
}

// HIncrBy increments a hash field's ASCII-decimal integer value, creating
// the field (and the hash, if needed) at 0 first. Returns the new value.
func (t *Tree) HIncrBy(key, field []byte, delta int64) (int64, error) {
	t.owner.Enter()
	h, err := t.ensureHash(key, noExpiry)
	if err != nil {
		return 0, err
	}

	current := int64(0)
	if raw, ok := h.Get(field); ok {
		n, ok := value.ToInt(value.StringValue{Bytes: raw})
		if !ok {
			return 0, engineerr.ErrNotAnInteger
		}
		current = n
	}

	sum, overflow := checkedAddInt64(current, delta)
	if overflow {
		return 0, engineerr.ErrOverflow
	}

	h.Set(field, []byte(strconv.FormatInt(sum, 10)))
	return sum, nil
}

// checkedAddInt64 adds a and b, reporting whether the result overflowed an
// int64 rather than silently wrapping.
func checkedAddInt64(a, b int64) (int64, bool) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, true
	}
	return sum, false
}
