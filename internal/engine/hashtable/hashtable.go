// Package hashtable provides a small open-addressing string-keyed map used
// as the promoted storage tier once a Hash or sorted-set value outgrows its
// small-vector representation.
//
// Hashing is delegated to github.com/dolthub/maphash, which exposes the
// runtime's own AES-based hash function generically instead of forcing a
// detour through interface{} the way a plain map[string]V already would —
// the promoted tier exists specifically to avoid the linear scans of the
// small-vector tier, so it's worth keeping the hash path allocation-free.
package hashtable

import (
	"github.com/dolthub/maphash"
)

const (
	loadFactorNum = 3
	loadFactorDen = 4
)

type entry[V any] struct {
	key   string
	value V
	used  bool
}

// Map is an open-addressing, linear-probed string-keyed map.
type Map[V any] struct {
	hasher  maphash.Hasher[string]
	entries []entry[V]
	count   int
}

// New creates an empty Map.
func New[V any]() *Map[V] {
	return &Map[V]{hasher: maphash.NewHasher[string]()}
}

// Len reports the number of keys stored.
func (m *Map[V]) Len() int { return m.count }

// Get returns the value for key, if present.
func (m *Map[V]) Get(key string) (V, bool) {
	var zero V
	if len(m.entries) == 0 {
		return zero, false
	}

	i := m.slotFor(key)
	if m.entries[i].used && m.entries[i].key == key {
		return m.entries[i].value, true
	}

	return zero, false
}

// Has reports whether key is present.
func (m *Map[V]) Has(key string) bool {
	_, ok := m.Get(key)
	return ok
}

// Set inserts or updates the value for key. Returns true if key is new.
func (m *Map[V]) Set(key string, value V) bool {
	m.growIfNeeded()

	i := m.slotFor(key)
	if m.entries[i].used {
		m.entries[i].value = value
		return false
	}

	m.entries[i] = entry[V]{key: key, value: value, used: true}
	m.count++

	return true
}

// Delete removes key, returning true if it was present. Uses backward-shift
// deletion to keep the probe chain intact for linear probing.
func (m *Map[V]) Delete(key string) bool {
	if len(m.entries) == 0 {
		return false
	}

	i := m.slotFor(key)
	if !m.entries[i].used || m.entries[i].key != key {
		return false
	}

	n := len(m.entries)
	m.entries[i] = entry[V]{}
	m.count--

	j := (i + 1) % n
	for m.entries[j].used {
		k := int(m.hasher.Hash(m.entries[j].key)) % n
		if k < 0 {
			k += n
		}

		if !inProbeRange(k, i, j, n) {
			m.entries[i] = m.entries[j]
			m.entries[j] = entry[V]{}
			i = j
		}

		j = (j + 1) % n
	}

	return true
}

// Each calls fn for every stored key in unspecified order.
func (m *Map[V]) Each(fn func(key string, value V)) {
	for _, e := range m.entries {
		if e.used {
			fn(e.key, e.value)
		}
	}
}

func (m *Map[V]) slotFor(key string) int {
	n := len(m.entries)
	i := int(m.hasher.Hash(key) % uint64(n))

	for m.entries[i].used && m.entries[i].key != key {
		i = (i + 1) % n
	}

	return i
}

func (m *Map[V]) growIfNeeded() {
	if len(m.entries) == 0 {
		m.entries = make([]entry[V], 8)
		return
	}

	if m.count*loadFactorDen < len(m.entries)*loadFactorNum {
		return
	}

	old := m.entries
	m.entries = make([]entry[V], len(old)*2)
	m.count = 0

	for _, e := range old {
		if e.used {
			m.Set(e.key, e.value)
		}
	}
}

// inProbeRange reports whether slot k lies on the cyclic probe path from i
// (exclusive) to j (inclusive). An entry at j whose home slot k lies in that
// range never probed through the hole at i and stays put; any other entry
// is moved back into the hole.
func inProbeRange(k, i, j, n int) bool {
	if i <= j {
		return k > i && k <= j
	}

	return k > i || k <= j
}
