//go:build linux || freebsd || darwin

package clockd

import "golang.org/x/sys/unix"

// monotonicNanos reads CLOCK_MONOTONIC directly instead of going through
// time.Now(), the same way hivekit's hive/dirty package reaches past the
// standard library straight to golang.org/x/sys/unix for a platform syscall
// rather than an abstraction layered on top of it.
func monotonicNanos() int64 {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_MONOTONIC, &ts); err != nil {
		return 0
	}
	return int64(ts.Sec)*1e9 + int64(ts.Nsec)
}
