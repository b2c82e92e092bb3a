package tree

import (
	"github.com/JoshuaBOUCHAT/radixox/internal/engine/arena"
	"github.com/JoshuaBOUCHAT/radixox/internal/engine/childtable"
	"github.com/JoshuaBOUCHAT/radixox/internal/engine/value"
)

// Set inserts or replaces the value at key with no expiration.
func (t *Tree) Set(key []byte, val value.Value) {
	t.owner.Enter()
	t.setInternal(key, noExpiry, val)
}

// SetTTL inserts or replaces the value at key, expiring ttlTicks after the
// tree's current clock.
func (t *Tree) SetTTL(key []byte, ttlTicks uint64, val value.Value) {
	t.owner.Enter()
	expiry := saturatingAdd(t.now, ttlTicks)
	t.setInternal(key, expiry, val)
}

func saturatingAdd(a, b uint64) uint64 {
	sum := a + b
	if sum < a {
		return noExpiry - 1
	}
	return sum
}

func (t *Tree) setInternal(key []byte, expiry uint64, val value.Value) {
	assertASCII(key)

	if len(key) == 0 {
		t.setNodeVal(t.rootIdx, val, expiry)
		return
	}

	idx := t.rootIdx
	cursor := 0

	for {
		child, ok := t.find(idx, key[cursor])
		if !ok {
			t.createNodeWithVal(idx, key[cursor], val, key[cursor+1:], expiry)
			return
		}
		idx = child
		cursor++

		n := t.getNode(idx)
		res := compareCompressionKey(n.compression, key[cursor:])

		switch res.kind {
		case compFinal:
			t.setNodeVal(idx, val, expiry)
			return
		case compPath:
			cursor += n.compression.Len()
			continue
		}

		// compPartial: the existing compression only partially matches.
		t.splitNode(res.commonLen, key[cursor:], idx, &expiry, &val)
		return
	}
}

// setNodeVal replaces the value stored at idx, tagging/untagging the node
// in the TTL-sampling arena as its expiry transitions to/from permanent.
func (t *Tree) setNodeVal(idx int32, val value.Value, expiry uint64) {
	hadTTL := false
	if n := t.getNode(idx); n.val != nil {
		hadTTL = n.val.expiry != noExpiry
	}

	t.getNode(idx).val = &entry{val: val, expiry: expiry}

	hasTTL := expiry != noExpiry
	if hasTTL && !hadTTL {
		t.nodes.Tag(idx)
	} else if !hasTTL && hadTTL {
		t.nodes.Untag(idx)
	}
}

// splitNode handles a partial compression match: it carves the shared
// prefix into idx's compression, demotes the rest of idx's old content
// (compression tail, value, children) into a new sibling node, and either
// stores val on idx itself (if the key ends exactly at the split point) or
// creates a further new leaf for the remaining key bytes. Returns the node
// index now holding the key that triggered the split.
//
// ttl/val are nil when called from ensureKey, which only needs the
// structure created and stores no value itself.
func (t *Tree) splitNode(commonLen int, keyRest []byte, idx int32, ttl *uint64, val *value.Value) int32 {
	keyEndsAtSplit := commonLen == len(keyRest)
	valOnIntermediate := val != nil && keyEndsAtSplit

	n := t.getNode(idx)
	oldCompression := n.compression
	oldVal := n.val
	oldChilds := n.childs
	oldOverflowIdx := n.overflowIdx

	n.compression = oldCompression.Slice(0, commonLen)
	n.childs = childtable.Small{}
	n.overflowIdx = arena.NoIndex
	n.val = nil
	if oldVal != nil && oldVal.expiry != noExpiry {
		t.nodes.Untag(idx)
	}
	if valOnIntermediate {
		n.val = &entry{val: *val, expiry: derefTTL(ttl)}
		if n.val.expiry != noExpiry {
			t.nodes.Tag(idx)
		}
	}

	oldRadix := oldCompression.At(commonLen)
	oldHadTTL := oldVal != nil && oldVal.expiry != noExpiry

	oldChild := node{
		overflowIdx: oldOverflowIdx,
		compression: oldCompression.Slice(commonLen+1, oldCompression.Len()),
		val:         oldVal,
		childs:      oldChilds,
		parentIdx:   idx,
		parentRadix: oldRadix,
	}

	var oldChildIdx int32
	if oldHadTTL {
		oldChildIdx = t.insertTagged(oldChild)
	} else {
		oldChildIdx = t.insert(oldChild)
	}
	t.pushChildIdx(idx, oldChildIdx, oldRadix)
	t.iterAllChildren(oldChildIdx, func(_ byte, grandchildIdx int32) {
		if gc := t.tryGetNode(grandchildIdx); gc != nil {
			gc.parentIdx = oldChildIdx
		}
	})

	if keyEndsAtSplit {
		return idx
	}

	newRadix := keyRest[commonLen]
	newCompression := keyRest[commonLen+1:]
	if val != nil {
		return t.createNodeWithVal(idx, newRadix, *val, newCompression, derefTTL(ttl))
	}

	newLeaf := newEmptyLeaf(newCompression, idx, newRadix)
	newIdx := t.insert(newLeaf)
	t.pushChildIdx(idx, newIdx, newRadix)
	return newIdx
}

func derefTTL(ttl *uint64) uint64 {
	if ttl == nil {
		return noExpiry
	}
	return *ttl
}

// createNodeWithVal creates a brand-new leaf holding val under parentIdx,
// reached via radix, with compression as its remaining key fragment.
func (t *Tree) createNodeWithVal(parentIdx int32, radix byte, val value.Value, compression []byte, expiry uint64) int32 {
	leaf := newLeaf(compression, val, expiry, parentIdx, radix)

	var idx int32
	if expiry != noExpiry {
		idx = t.insertTagged(leaf)
	} else {
		idx = t.insert(leaf)
	}

	t.pushChildIdx(parentIdx, idx, radix)
	return idx
}
