// Package ownership makes the storage engine's single-owner access
// assumption debug-checkable instead of merely documented.
//
// Every exported entry point on a [github.com/JoshuaBOUCHAT/radixox/internal/engine/tree.Tree]
// is expected to be called from a single goroutine at a time (see the
// package-level docs on Tree for why: node indices and TTL sampling are not
// safe for concurrent mutation). [Checker.Enter] records the calling
// goroutine id on first use and debug-asserts every later call originates
// from that same goroutine.
package ownership

import (
	"github.com/timandy/routine"

	"github.com/JoshuaBOUCHAT/radixox/internal/debug"
)

// Checker tags the first goroutine that calls Enter and asserts, in debug
// builds, that every subsequent call comes from the same goroutine.
//
// The zero value is ready to use. Checker is not itself safe for concurrent
// use across goroutines that are expected to fail the check — that's the
// point: fail fast, in the caller's own debug build, rather than corrupt
// shared state silently.
type Checker struct {
	owner int64
}

// Enter records the calling goroutine as the owner on first use, and
// debug-asserts that later calls originate from that same goroutine.
// It is a no-op in non-debug builds.
func (c *Checker) Enter() {
	if !debug.Enabled {
		return
	}

	id := routine.Goid()
	if c.owner == 0 {
		c.owner = id
		return
	}

	debug.Assert(c.owner == id,
		"engine accessed from goroutine %d, but is owned by goroutine %d", id, c.owner)
}

// Release clears the recorded owner, allowing a different goroutine to take
// ownership on the next Enter. Used by tests that hand a Tree between
// goroutines sequentially (never concurrently).
func (c *Checker) Release() {
	c.owner = 0
}
