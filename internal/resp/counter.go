package resp

import (
	"strconv"

	"github.com/JoshuaBOUCHAT/radixox/internal/engine/tree"
)

func cmdIncr(t *tree.Tree, args [][]byte) Frame {
	if len(args) != 1 {
		return wrongArity("INCR")
	}
	n, err := t.Incr(args[0])
	if err != nil {
		return errFrame(err)
	}
	return Integer(n)
}

func cmdDecr(t *tree.Tree, args [][]byte) Frame {
	if len(args) != 1 {
		return wrongArity("DECR")
	}
	n, err := t.Decr(args[0])
	if err != nil {
		return errFrame(err)
	}
	return Integer(n)
}

func cmdIncrBy(t *tree.Tree, args [][]byte) Frame {
	if len(args) != 2 {
		return wrongArity("INCRBY")
	}
	delta, err := strconv.ParseInt(string(args[1]), 10, 64)
	if err != nil {
		return ErrorFrame("ERR value is not an integer or out of range")
	}
	n, err := t.IncrBy(args[0], delta)
	if err != nil {
		return errFrame(err)
	}
	return Integer(n)
}

func cmdDecrBy(t *tree.Tree, args [][]byte) Frame {
	if len(args) != 2 {
		return wrongArity("DECRBY")
	}
	delta, err := strconv.ParseInt(string(args[1]), 10, 64)
	if err != nil {
		return ErrorFrame("ERR value is not an integer or out of range")
	}
	n, err := t.DecrBy(args[0], delta)
	if err != nil {
		return errFrame(err)
	}
	return Integer(n)
}
