// Package tree implements the compressed radix tree at the center of the
// engine: path-compressed lookup/insert/delete, prefix and regex-guided
// scans, and TTL-driven eviction, all addressed through a stable slab
// arena rather than pointers.
package tree

import (
	"github.com/JoshuaBOUCHAT/radixox/internal/engine/arena"
	"github.com/JoshuaBOUCHAT/radixox/internal/engine/childtable"
	"github.com/JoshuaBOUCHAT/radixox/internal/engine/tinystr"
	"github.com/JoshuaBOUCHAT/radixox/internal/engine/value"
)

// noExpiry marks a value that never expires.
const noExpiry uint64 = ^uint64(0)

// NoExpiry is the absolute-expiry-tick sentinel callers pass to the
// collection-creating commands (HSet, SAdd, ZAdd, LPush, RPush) to mean
// "no TTL".
const NoExpiry = noExpiry

// entry pairs a stored value with its absolute expiry tick (noExpiry if
// permanent).
type entry struct {
	val    value.Value
	expiry uint64
}

func (e *entry) expired(now uint64) bool {
	return e.expiry != noExpiry && e.expiry < now
}

// node is one radix tree node: a compressed key fragment, an optional
// value, and up to childtable.SmallCap+childtable.OverflowCap children.
//
// parentIdx/parentRadix let TTL eviction walk straight from a randomly
// sampled node back up to its parent without a second traversal from the
// root.
type node struct {
	childs       childtable.Small
	overflowIdx  int32 // arena.NoIndex if no overflow table
	compression  tinystr.TinyStr
	val          *entry
	parentIdx    int32
	parentRadix  byte
}

func newRootNode() node {
	return node{overflowIdx: arena.NoIndex, parentIdx: arena.NoIndex}
}

func newEmptyLeaf(compression []byte, parentIdx int32, parentRadix byte) node {
	return node{
		overflowIdx: arena.NoIndex,
		compression: tinystr.FromBytes(compression),
		parentIdx:   parentIdx,
		parentRadix: parentRadix,
	}
}

func newLeaf(compression []byte, val value.Value, expiry uint64, parentIdx int32, parentRadix byte) node {
	n := newEmptyLeaf(compression, parentIdx, parentRadix)
	n.val = &entry{val: val, expiry: expiry}
	return n
}

func (n *node) hasChildren() bool {
	return !n.childs.IsEmpty() || n.overflowIdx != arena.NoIndex
}

// compResult is the outcome of comparing a node's compression fragment
// against the remaining bytes of a key being looked up.
type compResultKind int

const (
	// compPath: compression fully consumed, key has more bytes to go.
	compPath compResultKind = iota
	// compFinal: compression and key-rest match exactly.
	compFinal
	// compPartial: compression and key-rest diverge after commonLen bytes.
	compPartial
)

type compResult struct {
	kind      compResultKind
	commonLen int
}

func compareCompressionKey(compression tinystr.TinyStr, keyRest []byte) compResult {
	commonLen := commonPrefixLen(compression, keyRest)
	cLen := compression.Len()

	switch {
	case cLen == len(keyRest):
		if commonLen == len(keyRest) {
			return compResult{kind: compFinal}
		}
		return compResult{kind: compPartial, commonLen: commonLen}
	case cLen > len(keyRest):
		return compResult{kind: compPartial, commonLen: commonLen}
	default: // cLen < len(keyRest)
		if commonLen == cLen {
			return compResult{kind: compPath}
		}
		return compResult{kind: compPartial, commonLen: commonLen}
	}
}

func commonPrefixLen(compression tinystr.TinyStr, keyRest []byte) int {
	n := compression.Len()
	if len(keyRest) < n {
		n = len(keyRest)
	}
	for i := 0; i < n; i++ {
		if compression.At(i) != keyRest[i] {
			return i
		}
	}
	return n
}
