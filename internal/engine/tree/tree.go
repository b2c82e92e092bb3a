package tree

import (
	"iter"
	"math/rand"

	"github.com/JoshuaBOUCHAT/radixox/internal/debug"
	"github.com/JoshuaBOUCHAT/radixox/internal/engine/arena"
	"github.com/JoshuaBOUCHAT/radixox/internal/engine/childtable"
	"github.com/JoshuaBOUCHAT/radixox/internal/ownership"
	"github.com/JoshuaBOUCHAT/radixox/pkg/xiter"
)

// Tree is a compressed radix tree mapping ASCII byte-string keys to
// [value.Value]s, with optional per-key expiration.
//
// A Tree is single-owner: every public method asserts (in debug builds)
// that it's called from the same goroutine as the first method call made
// on it; New itself records no owner.
// The zero value is not usable; construct with New.
type Tree struct {
	nodes    arena.Arena[node]
	overflow arena.Arena[childtable.Overflow]
	rootIdx  int32
	now      uint64
	owner    ownership.Checker
}

// New returns an empty Tree with its clock at zero.
func New() *Tree {
	t := &Tree{}
	t.rootIdx = t.nodes.Insert(newRootNode())
	return t
}

// AdvanceClock sets the tree's current tick, used to resolve relative TTLs
// and decide expiration. Callers own the tick source (a real clock, a
// logical counter, whatever); the tree only ever compares against it.
func (t *Tree) AdvanceClock(now uint64) {
	t.owner.Enter()
	t.now = now
}

// Now returns the tree's current tick.
func (t *Tree) Now() uint64 {
	t.owner.Enter()
	return t.now
}

func (t *Tree) getNode(idx int32) *node {
	n := t.nodes.Get(idx)
	debug.Assert(n != nil, "tree: node index %d is not occupied", idx)
	return n
}

func (t *Tree) tryGetNode(idx int32) *node {
	return t.nodes.Get(idx)
}

func (t *Tree) insert(n node) int32 {
	return t.nodes.Insert(n)
}

func (t *Tree) insertTagged(n node) int32 {
	return t.nodes.InsertTagged(n)
}

// find returns the child index reached from idx by radix, checking the
// inline table first and the overflow table second.
func (t *Tree) find(idx int32, radix byte) (int32, bool) {
	n := t.tryGetNode(idx)
	if n == nil {
		return 0, false
	}

	if child, ok := n.childs.Find(radix); ok {
		return child, true
	}
	if n.overflowIdx == arena.NoIndex {
		return 0, false
	}

	overflow := t.overflow.Get(n.overflowIdx)
	if overflow == nil {
		return 0, false
	}
	return overflow.Find(radix)
}

// pushChildIdx attaches child as idx's child under radix, promoting to the
// overflow table once the inline table is full.
func (t *Tree) pushChildIdx(parentIdx, childIdx int32, radix byte) {
	parent := t.getNode(parentIdx)

	if !parent.childs.IsFull() {
		parent.childs.Push(radix, childIdx)
		return
	}

	if parent.overflowIdx == arena.NoIndex {
		overflow := childtable.NewOverflow(radix, childIdx)
		parent.overflowIdx = t.overflow.Insert(*overflow)
		return
	}

	overflow := t.overflow.Get(parent.overflowIdx)
	debug.Assert(overflow != nil, "tree: parent %d has a dangling overflow index", parentIdx)
	overflow.Push(radix, childIdx)
}

// removeChild detaches the child reached from parentIdx by radix, if any.
func (t *Tree) removeChild(parentIdx int32, radix byte) {
	parent := t.tryGetNode(parentIdx)
	if parent == nil {
		// Parent was absorbed by recompression already; nothing to do.
		return
	}

	if _, ok := parent.childs.Remove(radix); ok {
		return
	}
	if parent.overflowIdx == arena.NoIndex {
		return
	}

	overflow := t.overflow.Get(parent.overflowIdx)
	debug.Assert(overflow != nil, "tree: parent %d has a dangling overflow index", parentIdx)
	overflow.Remove(radix)

	if overflow.IsEmpty() {
		t.overflow.Remove(parent.overflowIdx)
		parent.overflowIdx = arena.NoIndex
	}
}

// singleChild returns idx's only child, counting both the inline and
// overflow tables, if it has exactly one child total. Used by
// tryRecompress, which must not fire while a node still has two or more
// children spread across both tiers.
func (t *Tree) singleChild(n *node) (byte, int32, bool) {
	var overflowEntries []childtable.Entry
	if n.overflowIdx != arena.NoIndex {
		if overflow := t.overflow.Get(n.overflowIdx); overflow != nil {
			overflowEntries = overflow.Entries()
		}
	}

	if n.childs.Len()+len(overflowEntries) != 1 {
		return 0, 0, false
	}

	if n.childs.Len() == 1 {
		return n.childs.SingleChild()
	}

	return overflowEntries[0].Radix, overflowEntries[0].Idx, true
}

// childSeq adapts idx's inline-then-overflow child iteration into an
// iter.Seq2, so callers can compose it with pkg/xiter instead of threading
// a bespoke callback shape through every traversal.
func (t *Tree) childSeq(idx int32) iter.Seq2[byte, int32] {
	return func(yield func(byte, int32) bool) {
		n := t.tryGetNode(idx)
		if n == nil {
			return
		}

		stop := false
		n.childs.Each(func(radix byte, childIdx int32) {
			if !stop && !yield(radix, childIdx) {
				stop = true
			}
		})
		if stop || n.overflowIdx == arena.NoIndex {
			return
		}

		overflow := t.overflow.Get(n.overflowIdx)
		if overflow == nil {
			return
		}
		overflow.Each(func(radix byte, childIdx int32) {
			if !stop && !yield(radix, childIdx) {
				stop = true
			}
		})
	}
}

// iterAllChildren calls fn for every child of idx, inline then overflow.
func (t *Tree) iterAllChildren(idx int32, fn func(radix byte, childIdx int32)) {
	xiter.ForEach2(t.childSeq(idx), fn)
}

// Stats is a diagnostic snapshot of the tree's node/overflow occupancy.
type Stats struct {
	Nodes    arena.Stats
	Overflow arena.Stats
}

// Stats reports current node and overflow-table arena occupancy.
func (t *Tree) Stats() Stats {
	t.owner.Enter()
	return Stats{Nodes: t.nodes.Stats(), Overflow: t.overflow.Stats()}
}

// newRand is split out so eviction sampling can be swapped in tests.
func newRand() *rand.Rand {
	return rand.New(rand.NewSource(rand.Int63()))
}
