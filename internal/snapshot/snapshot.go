// Package snapshot writes a one-shot, operator-triggered diagnostic dump of
// every key currently held by a tree.Tree: its name, its Redis type, and an
// approximate size. It is not a persistence mechanism — the dump is never
// read back by this program — it exists so an operator can see what a live
// instance is holding without attaching a debugger.
//
// The dump is zstd-compressed with github.com/klauspost/compress/zstd: one
// streaming Encoder wraps the destination io.Writer, with a bufio.Writer
// batching the dump lines in front of it.
package snapshot

import (
	"bufio"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"

	"github.com/JoshuaBOUCHAT/radixox/internal/engine/tree"
	"github.com/JoshuaBOUCHAT/radixox/internal/engine/value"
)

// Entry describes one key in a dump.
type Entry struct {
	Key  string
	Type string
	Size int
}

// Collect walks every key in t and reports one Entry per key, in the same
// order Tree.GetN("") enumerates them.
func Collect(t *tree.Tree) []Entry {
	all := t.GetN(nil)
	entries := make([]Entry, len(all))
	for i, e := range all {
		entries[i] = Entry{Key: string(e.Key), Type: e.Val.RedisType().String(), Size: approxSize(e.Val)}
	}
	return entries
}

// approxSize estimates the in-memory footprint of v in bytes, counting
// element bytes/lengths rather than reaching into arena internals — good
// enough for an operator comparing keys by relative weight, not a precise
// accounting.
func approxSize(v value.Value) int {
	switch x := v.(type) {
	case value.StringValue:
		return len(x.Bytes)
	case value.IntValue:
		return 8
	default:
		if h, typ := value.AsHash(v); typ == value.TypeHash {
			return h.Len() * 16
		}
		if l, typ := value.AsList(v); typ == value.TypeList {
			return l.Len() * 16
		}
		if s, typ := value.AsSet(v); typ == value.TypeSet {
			return s.Len() * 16
		}
		if z, typ := value.AsZSet(v); typ == value.TypeZSet {
			return z.Len() * 24
		}
		return 0
	}
}

// Write compresses a line-oriented dump of t's entries ("key\ttype\tsize\n")
// to w, in a single zstd frame, and reports how many keys it wrote.
func Write(w io.Writer, t *tree.Tree) (int, error) {
	enc, err := zstd.NewWriter(w)
	if err != nil {
		return 0, fmt.Errorf("snapshot: new zstd writer: %w", err)
	}
	defer enc.Close()

	entries := Collect(t)
	bw := bufio.NewWriter(enc)
	for _, e := range entries {
		if _, err := fmt.Fprintf(bw, "%s\t%s\t%d\n", e.Key, e.Type, e.Size); err != nil {
			return 0, fmt.Errorf("snapshot: write entry: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return 0, fmt.Errorf("snapshot: flush: %w", err)
	}
	return len(entries), nil
}
