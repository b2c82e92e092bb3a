// Package engineerr holds the sentinel errors and small error types shared
// across the storage engine's command surface.
//
// Missing values are never represented by an error — the engine reports
// them as a plain (zero value, false) result, and the RESP front-end
// (internal/resp) is the layer that wraps that into an
// [github.com/JoshuaBOUCHAT/radixox/pkg/opt.Option] for its own response
// plumbing. Errors here are reserved for genuine failure modes: the stored
// value is the wrong Redis type for the requested operation, a counter
// operand isn't a valid integer, or an increment would overflow an int64.
package engineerr

import "errors"

var (
	// ErrWrongType is returned when a command is applied to a key holding a
	// value of an incompatible Redis type (the WRONGTYPE error family).
	ErrWrongType = errors.New("engineerr: operation against a key holding the wrong kind of value")

	// ErrNotAnInteger is returned when a counter operand, or the current
	// string value of a key, cannot be parsed as a base-10 int64.
	ErrNotAnInteger = errors.New("engineerr: value is not an integer or out of range")

	// ErrOverflow is returned when an increment/decrement would overflow
	// or underflow an int64.
	ErrOverflow = errors.New("engineerr: increment or decrement would overflow")
)

// RegexBuildError wraps a failure to compile a scan pattern into a matcher.
type RegexBuildError struct {
	Pattern string
	Cause   error
}

func (e *RegexBuildError) Error() string {
	return "engineerr: failed to build matcher for pattern " + e.Pattern + ": " + e.Cause.Error()
}

func (e *RegexBuildError) Unwrap() error { return e.Cause }
