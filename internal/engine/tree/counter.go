package tree

import (
	"math"

	"github.com/JoshuaBOUCHAT/radixox/internal/engine/value"
	"github.com/JoshuaBOUCHAT/radixox/internal/engineerr"
)

// IncrBy adds delta to the integer interpretation of key's current value,
// treating an absent or expired key as zero, and stores the result as an
// IntValue. An existing TTL is left untouched.
func (t *Tree) IncrBy(key []byte, delta int64) (int64, error) {
	t.owner.Enter()
	assertASCII(key)

	if idx, ok := t.traverseToKey(key); ok {
		if cur := t.nodeValueMut(idx); cur != nil {
			newVal, n, err := value.Incr(*cur, delta)
			if err != nil {
				return 0, err
			}
			*cur = newVal
			return n, nil
		}
	}

	t.setInternal(key, noExpiry, value.IntValue(delta))
	return delta, nil
}

// Incr increments key by 1.
func (t *Tree) Incr(key []byte) (int64, error) { return t.IncrBy(key, 1) }

// Decr decrements key by 1.
func (t *Tree) Decr(key []byte) (int64, error) { return t.IncrBy(key, -1) }

// DecrBy subtracts delta from key's integer value. Negating math.MinInt64
// overflows int64, so that one boundary value is reported as an overflow
// error directly instead of silently wrapping.
func (t *Tree) DecrBy(key []byte, delta int64) (int64, error) {
	if delta == math.MinInt64 {
		return 0, engineerr.ErrOverflow
	}
	return t.IncrBy(key, -delta)
}
