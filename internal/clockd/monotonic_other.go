//go:build !linux && !freebsd && !darwin

package clockd

import "time"

// monotonicNanos falls back to the runtime's own monotonic reading (which
// time.Now() already carries internally) on platforms golang.org/x/sys/unix
// doesn't cover here, measured as the time elapsed since monotonicBase.
var monotonicBase = time.Now()

func monotonicNanos() int64 {
	return int64(time.Since(monotonicBase))
}
