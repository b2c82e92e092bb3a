package resp

import (
	"errors"

	"github.com/JoshuaBOUCHAT/radixox/internal/engineerr"
)

// errFrame maps an engine error to the RESP error string a Redis client
// expects, per spec.md §7's "user-visible failure behavior" table.
func errFrame(err error) Frame {
	switch {
	case errors.Is(err, engineerr.ErrWrongType):
		return ErrorFrame("WRONGTYPE Operation against a key holding the wrong kind of value")
	case errors.Is(err, engineerr.ErrNotAnInteger):
		return ErrorFrame("ERR value is not an integer or out of range")
	case errors.Is(err, engineerr.ErrOverflow):
		return ErrorFrame("ERR increment or decrement would overflow")
	default:
		var rb *engineerr.RegexBuildError
		if errors.As(err, &rb) {
			return ErrorFrame("ERR invalid pattern: " + err.Error())
		}
		return ErrorFrame("ERR " + err.Error())
	}
}

func wrongArity(name string) Frame {
	return ErrorFrame("ERR wrong number of arguments for '" + name + "' command")
}
