package tree

import (
	"github.com/JoshuaBOUCHAT/radixox/internal/engine/rscan"
	"github.com/JoshuaBOUCHAT/radixox/internal/engine/value"
	"github.com/JoshuaBOUCHAT/radixox/internal/engineerr"
)

// Entry is one key/value pair produced by a scan.
type Entry struct {
	Key []byte
	Val value.Value
}

// GetN returns every key-value pair whose key starts with prefix. An empty
// prefix returns the whole tree.
func (t *Tree) GetN(prefix []byte) []Entry {
	t.owner.Enter()
	assertASCII(prefix)

	var results []Entry

	if len(prefix) == 0 {
		t.collectAll(t.rootIdx, nil, &results)
		return results
	}

	idx := t.rootIdx
	cursor := 0
	keyPath := make([]byte, 0, len(prefix)+8)

	for {
		radix := prefix[cursor]
		childIdx, ok := t.find(idx, radix)
		if !ok {
			return results
		}
		idx = childIdx
		keyPath = append(keyPath, radix)

		n := t.tryGetNode(idx)
		if n == nil {
			return results
		}
		cursor++

		res := compareCompressionKey(n.compression, prefix[cursor:])
		switch res.kind {
		case compFinal:
			keyPath = append(keyPath, n.compression.Bytes()...)
			t.collectAllFrom(idx, keyPath, &results)
			return results
		case compPartial:
			if res.commonLen == len(prefix)-cursor {
				keyPath = append(keyPath, n.compression.Bytes()...)
				t.collectAllFrom(idx, keyPath, &results)
			}
			return results
		case compPath:
			keyPath = append(keyPath, n.compression.Bytes()...)
			cursor += n.compression.Len()
		}
	}
}

// collectAllFrom collects idx itself (key already complete in keyPath) and
// everything beneath it.
func (t *Tree) collectAllFrom(idx int32, keyPath []byte, results *[]Entry) {
	n := t.tryGetNode(idx)
	if n == nil {
		return
	}

	if n.val != nil && !n.val.expired(t.now) {
		*results = append(*results, Entry{Key: append([]byte(nil), keyPath...), Val: n.val.val})
	}

	t.iterAllChildren(idx, func(radix byte, childIdx int32) {
		childKey := append(append([]byte(nil), keyPath...), radix)
		t.collectAll(childIdx, childKey, results)
	})
}

// collectAll collects idx after appending its own compression to keyPrefix,
// then recurses into every child.
func (t *Tree) collectAll(idx int32, keyPrefix []byte, results *[]Entry) {
	n := t.tryGetNode(idx)
	if n == nil {
		return
	}

	keyPrefix = append(append([]byte(nil), keyPrefix...), n.compression.Bytes()...)

	if n.val != nil && !n.val.expired(t.now) {
		*results = append(*results, Entry{Key: append([]byte(nil), keyPrefix...), Val: n.val.val})
	}

	t.iterAllChildren(idx, func(radix byte, childIdx int32) {
		childKey := append(append([]byte(nil), keyPrefix...), radix)
		t.collectAll(childIdx, childKey, results)
	})
}

// GetNRegex returns every key-value pair whose key fully matches pattern.
// The pattern is compiled into a byte-stepping automaton and used to prune
// whole subtrees during traversal: a node whose compression drives the
// automaton into a dead state is skipped without visiting any of its
// children. No eviction is performed — expired entries are silently
// skipped.
func (t *Tree) GetNRegex(pattern string) ([]Entry, error) {
	t.owner.Enter()

	m, err := rscan.Compile(pattern)
	if err != nil {
		return nil, &engineerr.RegexBuildError{Pattern: pattern, Cause: err}
	}

	var results []Entry
	t.collectRegex(m, &results)
	return results, nil
}

type regexFrame struct {
	idx     int32
	keyPath []byte
	state   rscan.State
}

func (t *Tree) collectRegex(m *rscan.Matcher, results *[]Entry) {
	stack := []regexFrame{{idx: t.rootIdx, keyPath: nil, state: m.Start()}}

	for len(stack) > 0 {
		frame := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := t.tryGetNode(frame.idx)
		if n == nil {
			continue
		}

		state := frame.state
		dead := false
		compression := n.compression.Bytes()
		for _, b := range compression {
			state = m.Step(state, b)
			if m.Dead(state) {
				dead = true
				break
			}
		}
		if dead {
			continue
		}
		keyPath := append(append([]byte(nil), frame.keyPath...), compression...)

		if m.Matches(state) && n.val != nil && !n.val.expired(t.now) {
			*results = append(*results, Entry{Key: append([]byte(nil), keyPath...), Val: n.val.val})
		}

		t.iterAllChildren(frame.idx, func(radix byte, childIdx int32) {
			childState := m.Step(state, radix)
			if m.Dead(childState) {
				return
			}
			childKey := append(append([]byte(nil), keyPath...), radix)
			stack = append(stack, regexFrame{idx: childIdx, keyPath: childKey, state: childState})
		})
	}
}
