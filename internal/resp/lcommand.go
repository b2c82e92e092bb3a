package resp

import (
	"strconv"

	"github.com/JoshuaBOUCHAT/radixox/internal/engine/tree"
)

func cmdLPush(t *tree.Tree, args [][]byte) Frame {
	if len(args) < 2 {
		return wrongArity("LPUSH")
	}
	n, err := t.LPush(args[0], args[1:], tree.NoExpiry)
	if err != nil {
		return errFrame(err)
	}
	return Integer(int64(n))
}

func cmdRPush(t *tree.Tree, args [][]byte) Frame {
	if len(args) < 2 {
		return wrongArity("RPUSH")
	}
	n, err := t.RPush(args[0], args[1:], tree.NoExpiry)
	if err != nil {
		return errFrame(err)
	}
	return Integer(int64(n))
}

func cmdLPop(t *tree.Tree, args [][]byte) Frame {
	if len(args) != 1 {
		return wrongArity("LPOP")
	}
	v, ok, err := t.LPop(args[0])
	if err != nil {
		return errFrame(err)
	}
	if !ok {
		return NullBulk()
	}
	return BulkString(v)
}

func cmdRPop(t *tree.Tree, args [][]byte) Frame {
	if len(args) != 1 {
		return wrongArity("RPOP")
	}
	v, ok, err := t.RPop(args[0])
	if err != nil {
		return errFrame(err)
	}
	if !ok {
		return NullBulk()
	}
	return BulkString(v)
}

func cmdLLen(t *tree.Tree, args [][]byte) Frame {
	if len(args) != 1 {
		return wrongArity("LLEN")
	}
	n, err := t.LLen(args[0])
	if err != nil {
		return errFrame(err)
	}
	return Integer(int64(n))
}

func cmdLRange(t *tree.Tree, args [][]byte) Frame {
	if len(args) != 3 {
		return wrongArity("LRANGE")
	}
	start, err := strconv.Atoi(string(args[1]))
	if err != nil {
		return ErrorFrame("ERR value is not an integer or out of range")
	}
	stop, err := strconv.Atoi(string(args[2]))
	if err != nil {
		return ErrorFrame("ERR value is not an integer or out of range")
	}
	values, err := t.LRange(args[0], start, stop)
	if err != nil {
		return errFrame(err)
	}
	return BulkArray(values)
}

func cmdLIndex(t *tree.Tree, args [][]byte) Frame {
	if len(args) != 2 {
		return wrongArity("LINDEX")
	}
	i, err := strconv.Atoi(string(args[1]))
	if err != nil {
		return ErrorFrame("ERR value is not an integer or out of range")
	}
	v, ok, err := t.LIndex(args[0], i)
	if err != nil {
		return errFrame(err)
	}
	if !ok {
		return NullBulk()
	}
	return BulkString(v)
}
