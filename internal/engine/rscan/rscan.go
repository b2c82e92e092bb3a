// Package rscan implements a small byte-at-a-time regular expression
// automaton used to prune radix-tree traversal: at each node, feeding the
// node's compression bytes through the automaton either kills the branch
// (dead state) or advances it, so whole subtrees can be skipped without
// ever materializing the keys under them.
//
// There is no DFA-automaton library in scope to build this on, so it's a
// compact byte-oriented Thompson/Pike-style NFA simulation over
// regexp/syntax's compiled Prog: a "state" is the epsilon-closed set of
// program positions reachable without consuming input, computed lazily per
// step instead of precomputed into a transition table.
//
// Word-boundary assertions (\b, \B) are not evaluated byte-at-a-time here
// (no lookbehind context is threaded through) and are treated as never
// satisfied; patterns relying on them won't match. Case folding on rune
// classes is likewise not applied. Both are documented limits of this
// traversal-pruning matcher, not of the engine's value storage.
package rscan

import (
	"regexp/syntax"
)

// Matcher drives anchored-start, anchored-end matching against a compiled
// pattern, one byte at a time.
type Matcher struct {
	prog *syntax.Prog
}

// Compile parses pattern and compiles it into a Matcher that requires a
// full match against the entire key (the pattern is implicitly anchored at
// both ends, mirroring Redis-style key-scan patterns).
func Compile(pattern string) (*Matcher, error) {
	re, err := syntax.Parse("(?:"+pattern+")\\z", syntax.Perl)
	if err != nil {
		return nil, err
	}

	prog, err := syntax.Compile(re)
	if err != nil {
		return nil, err
	}

	return &Matcher{prog: prog}, nil
}

// State is the automaton's position after consuming some prefix of bytes.
type State struct {
	raw     []uint32
	atStart bool
}

// Start returns the initial state, before any byte has been consumed.
func (m *Matcher) Start() State {
	return State{raw: []uint32{uint32(m.prog.Start)}, atStart: true}
}

// Dead reports whether no continuation of s can ever match.
func (m *Matcher) Dead(s State) bool {
	return len(s.raw) == 0
}

// Step consumes byte b, returning the resulting state. The result may be
// Dead.
func (m *Matcher) Step(s State, b byte) State {
	terminals, _ := m.closure(s.raw, s.atStart, false)

	var next []uint32
	seen := map[uint32]bool{}
	for _, pc := range terminals {
		inst := &m.prog.Inst[pc]
		if !runeInstMatchesByte(inst, b) {
			continue
		}
		out := uint32(inst.Out)
		if !seen[out] {
			seen[out] = true
			next = append(next, out)
		}
	}

	return State{raw: next, atStart: false}
}

// Matches reports whether s represents a completed match if no more bytes
// follow (the automaton's end-of-input transition).
func (m *Matcher) Matches(s State) bool {
	_, hasMatch := m.closure(s.raw, s.atStart, true)
	return hasMatch
}

// closure epsilon-expands raw into the set of Rune/RuneAny/Match terminal
// instructions reachable without consuming a byte, honoring begin/end-text
// assertions according to atStart/atEnd. Returns the terminal pc list and
// whether an InstMatch was reached.
func (m *Matcher) closure(raw []uint32, atStart, atEnd bool) ([]uint32, bool) {
	seen := map[uint32]bool{}
	var terminals []uint32
	hasMatch := false

	var visit func(pc uint32)
	visit = func(pc uint32) {
		if seen[pc] {
			return
		}
		seen[pc] = true

		inst := &m.prog.Inst[pc]
		switch inst.Op {
		case syntax.InstAlt, syntax.InstAltMatch:
			visit(uint32(inst.Out))
			visit(uint32(inst.Arg))
		case syntax.InstCapture, syntax.InstNop:
			visit(uint32(inst.Out))
		case syntax.InstEmptyWidth:
			if emptyWidthSatisfied(syntax.EmptyOp(inst.Arg), atStart, atEnd) {
				visit(uint32(inst.Out))
			}
		case syntax.InstMatch:
			hasMatch = true
		case syntax.InstRune, syntax.InstRune1, syntax.InstRuneAny, syntax.InstRuneAnyNotNL:
			terminals = append(terminals, pc)
		case syntax.InstFail:
			// dead end, contributes nothing
		}
	}

	for _, pc := range raw {
		visit(pc)
	}

	return terminals, hasMatch
}

// emptyWidthSatisfied decides whether a zero-width assertion holds given
// only whether we're at the very start of the key (atStart) or being asked
// to evaluate as if at the very end (atEnd, only true when Matches queries
// an end-of-input transition). Word-boundary assertions are never
// satisfied; see the package doc comment.
func emptyWidthSatisfied(op syntax.EmptyOp, atStart, atEnd bool) bool {
	switch {
	case op&syntax.EmptyBeginText != 0 && !atStart:
		return false
	case op&syntax.EmptyBeginLine != 0 && !atStart:
		return false
	case op&syntax.EmptyEndText != 0 && !atEnd:
		return false
	case op&syntax.EmptyEndLine != 0 && !atEnd:
		return false
	case op&(syntax.EmptyWordBoundary|syntax.EmptyNoWordBoundary) != 0:
		return false
	}
	return true
}

func runeInstMatchesByte(inst *syntax.Inst, b byte) bool {
	switch inst.Op {
	case syntax.InstRuneAny:
		return true
	case syntax.InstRuneAnyNotNL:
		return b != '\n'
	case syntax.InstRune, syntax.InstRune1:
		r := rune(b)
		for i := 0; i+1 < len(inst.Rune); i += 2 {
			if r >= inst.Rune[i] && r <= inst.Rune[i+1] {
				return true
			}
		}
		if len(inst.Rune) == 1 {
			return r == inst.Rune[0]
		}
		return false
	default:
		return false
	}
}
