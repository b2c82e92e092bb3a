package tree

import (
	"github.com/JoshuaBOUCHAT/radixox/internal/debug"
	"github.com/JoshuaBOUCHAT/radixox/internal/engine/value"
)

func assertASCII(key []byte) {
	for _, b := range key {
		debug.Assert(b < 0x80, "tree: key must be ASCII")
	}
}

// Get returns the value stored at key, or false if absent or expired.
// Expired keys are cleaned up (and their path recompressed) as a side
// effect.
func (t *Tree) Get(key []byte) (value.Value, bool) {
	t.owner.Enter()
	assertASCII(key)

	idx, ok := t.getIdx(key)
	if !ok {
		return nil, false
	}

	n := t.getNode(idx)
	if n.val == nil || n.val.expired(t.now) {
		return nil, false
	}
	return n.val.val, true
}

// getIdx resolves key to a node index, lazily expiring the node in place
// if its value has passed its expiry.
func (t *Tree) getIdx(key []byte) (int32, bool) {
	if len(key) == 0 {
		root := t.getNode(t.rootIdx)
		if root.val != nil && root.val.expired(t.now) {
			root.val = nil
			t.nodes.Untag(t.rootIdx)
			t.tryRecompress(t.rootIdx)
			return 0, false
		}
		return t.rootIdx, true
	}

	parentIdx := t.rootIdx
	parentRadix := key[0]
	idx, ok := t.find(t.rootIdx, key[0])
	if !ok {
		return 0, false
	}
	cursor := 1

	for {
		n := t.tryGetNode(idx)
		if n == nil {
			return 0, false
		}

		res := compareCompressionKey(n.compression, key[cursor:])
		switch res.kind {
		case compFinal:
			if n.val != nil && n.val.expired(t.now) {
				t.deleteNodeInline(idx, parentIdx, parentRadix)
				return 0, false
			}
			return idx, true
		case compPartial:
			return 0, false
		case compPath:
			cursor += n.compression.Len()
		}

		parentIdx = idx
		parentRadix = key[cursor]
		child, ok := t.find(idx, key[cursor])
		if !ok {
			return 0, false
		}
		idx = child
		cursor++
	}
}

// traverseToKey resolves key to a node index without expiring anything, for
// read-only TTL inspection.
func (t *Tree) traverseToKey(key []byte) (int32, bool) {
	if len(key) == 0 {
		return t.rootIdx, true
	}

	idx, ok := t.find(t.rootIdx, key[0])
	if !ok {
		return 0, false
	}
	cursor := 1

	for {
		n := t.tryGetNode(idx)
		if n == nil {
			return 0, false
		}

		res := compareCompressionKey(n.compression, key[cursor:])
		switch res.kind {
		case compFinal:
			return idx, true
		case compPartial:
			return 0, false
		case compPath:
			cursor += n.compression.Len()
		}

		child, ok := t.find(idx, key[cursor])
		if !ok {
			return 0, false
		}
		idx = child
		cursor++
	}
}

// ensureKey returns the node index for key, splitting or creating nodes
// along the way so the index is valid to write through afterward.
func (t *Tree) ensureKey(key []byte) int32 {
	if len(key) == 0 {
		return t.rootIdx
	}

	idx, ok := t.find(t.rootIdx, key[0])
	if !ok {
		return t.ensureLeaf(key, t.rootIdx)
	}
	cursor := 1

	for {
		n := t.getNode(idx)
		res := compareCompressionKey(n.compression, key[cursor:])

		switch res.kind {
		case compFinal:
			return idx
		case compPartial:
			return t.splitNode(res.commonLen, key[cursor:], idx, nil, nil)
		case compPath:
			cursor += n.compression.Len()
		}

		if child, ok := t.find(idx, key[cursor]); ok {
			idx = child
			cursor++
			continue
		}
		return t.ensureLeaf(key[cursor:], idx)
	}
}

// ensureLeaf creates a single new empty leaf for keyRest under parentIdx.
func (t *Tree) ensureLeaf(keyRest []byte, parentIdx int32) int32 {
	n := newEmptyLeaf(keyRest[1:], parentIdx, keyRest[0])
	idx := t.insert(n)
	t.pushChildIdx(parentIdx, idx, keyRest[0])
	return idx
}

// nodeValueMut returns a mutable handle to the value at idx, or nil if
// there is none or it has expired. TTL is left untouched by the caller.
func (t *Tree) nodeValueMut(idx int32) *value.Value {
	n := t.getNode(idx)
	if n.val == nil || n.val.expired(t.now) {
		return nil
	}
	return &n.val.val
}
