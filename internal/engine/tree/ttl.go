package tree

import "github.com/JoshuaBOUCHAT/radixox/internal/engine/arena"

// TTLStatus is the outcome of a GetTTL query.
type TTLStatus int

const (
	// KeyNotExist means the key is absent or has already expired.
	KeyNotExist TTLStatus = iota
	// KeyWithoutTTL means the key exists and never expires.
	KeyWithoutTTL
	// KeyWithTTL means the key exists and expires in the accompanying
	// remaining-ticks value.
	KeyWithTTL
)

// GetTTL reports a key's expiration status without mutating the tree (no
// lazy expiry cleanup — a stale-but-not-yet-swept entry still reads as
// KeyNotExist here).
func (t *Tree) GetTTL(key []byte) (TTLStatus, uint64) {
	t.owner.Enter()
	assertASCII(key)

	idx, ok := t.traverseToKey(key)
	if !ok {
		return KeyNotExist, 0
	}

	n := t.getNode(idx)
	if n.val == nil {
		return KeyNotExist, 0
	}
	switch {
	case n.val.expiry == noExpiry:
		return KeyWithoutTTL, 0
	case n.val.expiry <= t.now:
		return KeyNotExist, 0
	default:
		return KeyWithTTL, n.val.expiry - t.now
	}
}

// Expire sets a new TTL (in ticks from now) on an existing, unexpired key.
// Reports whether the key existed and the TTL was applied.
func (t *Tree) Expire(key []byte, ttlTicks uint64) bool {
	t.owner.Enter()
	assertASCII(key)

	idx, ok := t.traverseToKey(key)
	if !ok {
		return false
	}

	n := t.getNode(idx)
	if n.val == nil {
		return false
	}
	if n.val.expiry != noExpiry && n.val.expiry <= t.now {
		return false
	}

	wasPermanent := n.val.expiry == noExpiry
	n.val.expiry = saturatingAdd(t.now, ttlTicks)
	if wasPermanent {
		t.nodes.Tag(idx)
	}
	return true
}

// Persist removes a key's TTL, making it permanent. Reports whether the key
// existed and had a TTL to remove.
func (t *Tree) Persist(key []byte) bool {
	t.owner.Enter()
	assertASCII(key)

	idx, ok := t.traverseToKey(key)
	if !ok {
		return false
	}

	n := t.getNode(idx)
	if n.val == nil || n.val.expiry == noExpiry || n.val.expiry <= t.now {
		return false
	}

	n.val.expiry = noExpiry
	t.nodes.Untag(idx)
	return true
}

const (
	evictSampleSize = 20
	evictThreshold  = 5 // 25% of evictSampleSize
)

// EvictExpired probabilistically samples tagged (TTL-bearing) nodes and
// deletes the ones that have expired, Redis-style: sample up to
// evictSampleSize nodes, delete the expired ones, and repeat as long as at
// least 25% of a full sample round was expired. Returns the total number
// of entries evicted.
func (t *Tree) EvictExpired() int {
	t.owner.Enter()

	rng := newRand()
	total := 0

	for {
		evictedThisRound := 0
		sampled := 0

		for i := 0; i < evictSampleSize; i++ {
			idx, n, ok := t.nodes.SampleTagged(rng)
			if !ok {
				break
			}
			sampled++

			if n.val != nil && n.val.expired(t.now) {
				parentIdx := n.parentIdx
				parentRadix := n.parentRadix
				if parentIdx != arena.NoIndex {
					t.deleteNodeForEviction(idx, parentIdx, parentRadix)
					evictedThisRound++
				}
			}
		}

		total += evictedThisRound
		if sampled < evictSampleSize || evictedThisRound < evictThreshold {
			break
		}
	}

	return total
}

// deleteNodeForEviction mirrors deleteNodeInline but starts from the
// parent pointers carried on the sampled node itself, since eviction never
// traverses down from the root to find them.
func (t *Tree) deleteNodeForEviction(targetIdx, parentIdx int32, parentRadix byte) {
	target := t.tryGetNode(targetIdx)
	if target == nil {
		return
	}

	if target.hasChildren() {
		target.val = nil
		t.nodes.Untag(targetIdx)
		t.tryRecompress(targetIdx)
		return
	}

	t.nodes.Remove(targetIdx)
	t.removeChild(parentIdx, parentRadix)
	if parentIdx != t.rootIdx {
		t.tryRecompress(parentIdx)
	}
}
