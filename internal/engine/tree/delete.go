package tree

import (
	"github.com/JoshuaBOUCHAT/radixox/internal/engine/arena"
	"github.com/JoshuaBOUCHAT/radixox/internal/engine/childtable"
	"github.com/JoshuaBOUCHAT/radixox/internal/engine/value"
)

// Del removes key, returning its value if it existed.
func (t *Tree) Del(key []byte) (value.Value, bool) {
	t.owner.Enter()
	assertASCII(key)

	if len(key) == 0 {
		root := t.getNode(t.rootIdx)
		old := root.val
		root.val = nil
		if old != nil && old.expiry != noExpiry {
			t.nodes.Untag(t.rootIdx)
		}
		t.tryRecompress(t.rootIdx)
		if old == nil {
			return nil, false
		}
		return old.val, true
	}

	parentIdx := t.rootIdx
	parentRadix := key[0]
	idx, ok := t.find(parentIdx, parentRadix)
	if !ok {
		return nil, false
	}
	cursor := 1

	var targetIdx int32
	for {
		n := t.tryGetNode(idx)
		if n == nil {
			return nil, false
		}

		res := compareCompressionKey(n.compression, key[cursor:])
		switch res.kind {
		case compFinal:
			targetIdx = idx
			goto found
		case compPartial:
			return nil, false
		case compPath:
			cursor += n.compression.Len()
		}

		parentIdx = idx
		parentRadix = key[cursor]
		child, ok := t.find(idx, parentRadix)
		if !ok {
			return nil, false
		}
		idx = child
		cursor++
	}

found:
	target := t.getNode(targetIdx)
	if target.hasChildren() {
		old := target.val
		target.val = nil
		if old != nil && old.expiry != noExpiry {
			t.nodes.Untag(targetIdx)
		}
		t.tryRecompress(targetIdx)
		if old == nil {
			return nil, false
		}
		return old.val, true
	}

	removed, _ := t.nodes.Remove(targetIdx)
	t.removeChild(parentIdx, parentRadix)
	if parentIdx != t.rootIdx {
		t.tryRecompress(parentIdx)
	}
	if removed.val == nil {
		return nil, false
	}
	return removed.val.val, true
}

// DelN deletes every key under prefix, returning the number of values
// removed. An empty prefix clears the entire tree (the root node itself is
// kept, emptied).
func (t *Tree) DelN(prefix []byte) int {
	t.owner.Enter()
	assertASCII(prefix)

	if len(prefix) == 0 {
		root := t.getNode(t.rootIdx)
		hadVal := root.val != nil
		if hadVal && root.val.expiry != noExpiry {
			t.nodes.Untag(t.rootIdx)
		}
		root.val = nil
		children := t.collectChildIndices(t.rootIdx)
		root.childs = childtable.Small{}
		root.overflowIdx = arena.NoIndex

		freed := t.freeSubtreeIterative(children)
		if hadVal {
			freed++
		}
		return freed
	}

	parentIdx := t.rootIdx
	parentRadix := prefix[0]
	idx, ok := t.find(parentIdx, parentRadix)
	if !ok {
		return 0
	}
	cursor := 1

	var targetIdx int32
	for {
		n := t.tryGetNode(idx)
		if n == nil {
			return 0
		}

		res := compareCompressionKey(n.compression, prefix[cursor:])
		switch res.kind {
		case compFinal:
			targetIdx = idx
			goto found
		case compPartial:
			if res.commonLen == len(prefix)-cursor {
				targetIdx = idx
				goto found
			}
			return 0
		case compPath:
			cursor += n.compression.Len()
		}

		parentIdx = idx
		parentRadix = prefix[cursor]
		child, ok := t.find(idx, parentRadix)
		if !ok {
			return 0
		}
		idx = child
		cursor++
	}

found:
	t.removeChild(parentIdx, parentRadix)
	count := t.freeSubtreeIterative([]int32{targetIdx})
	if parentIdx != t.rootIdx {
		t.tryRecompress(parentIdx)
	}
	return count
}

// collectChildIndices returns every direct child index of idx.
func (t *Tree) collectChildIndices(idx int32) []int32 {
	var out []int32
	t.iterAllChildren(idx, func(_ byte, childIdx int32) {
		out = append(out, childIdx)
	})
	return out
}

// freeSubtreeIterative removes every node reachable from the given roots,
// without recursion, returning the count of nodes that held a value.
func (t *Tree) freeSubtreeIterative(roots []int32) int {
	stack := append([]int32(nil), roots...)
	count := 0

	for len(stack) > 0 {
		idx := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := t.tryGetNode(idx)
		if n == nil {
			continue
		}

		children := t.collectChildIndices(idx)
		stack = append(stack, children...)

		if n.val != nil {
			count++
		}
		if n.overflowIdx != arena.NoIndex {
			t.overflow.Remove(n.overflowIdx)
		}
		t.nodes.Remove(idx)
	}

	return count
}

// tryRecompress absorbs idx's single remaining child into idx itself when
// idx holds no value, the same single-path compaction the tree relies on
// after every deletion. The root is never recompressed: it has no radix of
// its own to absorb a child's compression under, and spec.md's invariant
// exempts it explicitly.
func (t *Tree) tryRecompress(idx int32) {
	if idx == t.rootIdx {
		return
	}

	n := t.tryGetNode(idx)
	if n == nil || n.val != nil {
		return
	}

	childRadix, childIdx, ok := t.singleChild(n)
	if !ok {
		return
	}

	child, ok := t.nodes.Remove(childIdx)
	if !ok {
		return
	}

	child.childs.Each(func(_ byte, grandchildIdx int32) {
		if gc := t.tryGetNode(grandchildIdx); gc != nil {
			gc.parentIdx = idx
		}
	})
	if child.overflowIdx != arena.NoIndex {
		if overflow := t.overflow.Get(child.overflowIdx); overflow != nil {
			overflow.Each(func(_ byte, grandchildIdx int32) {
				if gc := t.tryGetNode(grandchildIdx); gc != nil {
					gc.parentIdx = idx
				}
			})
		}
	}

	n = t.getNode(idx)
	n.compression.Push(childRadix)
	n.compression.Append(child.compression.Bytes())
	n.val = child.val
	n.childs = child.childs
	// Transfer the absorbed child's overflow table too, not just its
	// inline one — unlike dropping it, this keeps every grandchild
	// reachable after the absorption.
	n.overflowIdx = child.overflowIdx

	if n.val != nil && n.val.expiry != noExpiry {
		t.nodes.Tag(idx)
	}
}

// deleteNodeInline removes an expired node discovered during a read-path
// traversal (Get), keeping the tree's invariants intact the same way an
// explicit Del would.
func (t *Tree) deleteNodeInline(targetIdx, parentIdx int32, parentRadix byte) {
	target := t.getNode(targetIdx)
	if target.hasChildren() {
		if target.val != nil && target.val.expiry != noExpiry {
			t.nodes.Untag(targetIdx)
		}
		target.val = nil
		t.tryRecompress(targetIdx)
		return
	}

	t.nodes.Remove(targetIdx)
	t.removeChild(parentIdx, parentRadix)
	if parentIdx != t.rootIdx {
		t.tryRecompress(parentIdx)
	}
}
