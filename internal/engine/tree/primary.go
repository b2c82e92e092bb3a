package tree

import "github.com/JoshuaBOUCHAT/radixox/internal/engine/value"

// Exists counts how many of the given keys are currently present (and not
// expired). A key listed twice counts twice, matching Redis's EXISTS.
func (t *Tree) Exists(keys [][]byte) int {
	t.owner.Enter()
	count := 0
	for _, k := range keys {
		if _, ok := t.Get(k); ok {
			count++
		}
	}
	return count
}

// MGet returns one value per key, nil for any that are absent or expired.
func (t *Tree) MGet(keys [][]byte) []value.Value {
	t.owner.Enter()
	out := make([]value.Value, len(keys))
	for i, k := range keys {
		if v, ok := t.Get(k); ok {
			out[i] = v
		}
	}
	return out
}

// MSet writes every (key, value) pair atomically from the caller's point of
// view — the tree has no internal suspension points, so a sequential loop
// is indistinguishable from a batch write.
func (t *Tree) MSet(pairs []FieldValue) {
	t.owner.Enter()
	for _, p := range pairs {
		t.setInternal(p.Field, noExpiry, value.StringValue{Bytes: p.Value})
	}
}

// SetNX sets key to val only if it does not already exist. Returns whether
// the write happened.
func (t *Tree) SetNX(key []byte, val []byte) bool {
	t.owner.Enter()
	if _, ok := t.Get(key); ok {
		return false
	}
	t.setInternal(key, noExpiry, value.StringValue{Bytes: val})
	return true
}

// SetEX sets key to val with a TTL of ttlTicks ticks from now.
func (t *Tree) SetEX(key []byte, ttlTicks uint64, val []byte) {
	t.owner.Enter()
	t.SetTTL(key, ttlTicks, value.StringValue{Bytes: val})
}

// DBSize returns the total number of live keys in the tree.
func (t *Tree) DBSize() int {
	t.owner.Enter()
	return len(t.GetN(nil))
}

// FlushDB removes every key, returning the number removed.
func (t *Tree) FlushDB() int {
	t.owner.Enter()
	return t.DelN(nil)
}

// Type returns the Redis type name of the value at key, or "none" if the
// key is absent or expired.
func (t *Tree) Type(key []byte) string {
	t.owner.Enter()
	v, ok := t.Get(key)
	if !ok {
		return value.TypeNone.String()
	}
	return v.RedisType().String()
}
