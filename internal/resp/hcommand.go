package resp

import (
	"strconv"

	"github.com/JoshuaBOUCHAT/radixox/internal/engine/tree"
)

func cmdHSet(t *tree.Tree, args [][]byte) Frame {
	if len(args) < 3 || len(args)%2 != 1 {
		return wrongArity("HSET")
	}
	fieldValues := make([]tree.FieldValue, 0, len(args)/2)
	for i := 1; i < len(args); i += 2 {
		fieldValues = append(fieldValues, tree.FieldValue{Field: args[i], Value: args[i+1]})
	}
	n, err := t.HSet(args[0], fieldValues, tree.NoExpiry)
	if err != nil {
		return errFrame(err)
	}
	return Integer(int64(n))
}

func cmdHGet(t *tree.Tree, args [][]byte) Frame {
	if len(args) != 2 {
		return wrongArity("HGET")
	}
	v, ok, err := t.HGet(args[0], args[1])
	if err != nil {
		return errFrame(err)
	}
	if !ok {
		return NullBulk()
	}
	return BulkString(v)
}

func cmdHGetAll(t *tree.Tree, args [][]byte) Frame {
	if len(args) != 1 {
		return wrongArity("HGETALL")
	}
	flat, err := t.HGetAll(args[0])
	if err != nil {
		return errFrame(err)
	}
	return BulkArray(flat)
}

func cmdHDel(t *tree.Tree, args [][]byte) Frame {
	if len(args) < 2 {
		return wrongArity("HDEL")
	}
	n, err := t.HDel(args[0], args[1:])
	if err != nil {
		return errFrame(err)
	}
	return Integer(int64(n))
}

func cmdHExists(t *tree.Tree, args [][]byte) Frame {
	if len(args) != 2 {
		return wrongArity("HEXISTS")
	}
	ok, err := t.HExists(args[0], args[1])
	if err != nil {
		return errFrame(err)
	}
	return Bool(ok)
}

func cmdHLen(t *tree.Tree, args [][]byte) Frame {
	if len(args) != 1 {
		return wrongArity("HLEN")
	}
	n, err := t.HLen(args[0])
	if err != nil {
		return errFrame(err)
	}
	return Integer(int64(n))
}

func cmdHKeys(t *tree.Tree, args [][]byte) Frame {
	if len(args) != 1 {
		return wrongArity("HKEYS")
	}
	keys, err := t.HKeys(args[0])
	if err != nil {
		return errFrame(err)
	}
	return BulkArray(keys)
}

func cmdHVals(t *tree.Tree, args [][]byte) Frame {
	if len(args) != 1 {
		return wrongArity("HVALS")
	}
	vals, err := t.HVals(args[0])
	if err != nil {
		return errFrame(err)
	}
	return BulkArray(vals)
}

func cmdHMGet(t *tree.Tree, args [][]byte) Frame {
	if len(args) < 2 {
		return wrongArity("HMGET")
	}
	vals, err := t.HMGet(args[0], args[1:])
	if err != nil {
		return errFrame(err)
	}
	return BulkArray(vals)
}

func cmdHIncrBy(t *tree.Tree, args [][]byte) Frame {
	if len(args) != 3 {
		return wrongArity("HINCRBY")
	}
	delta, err := strconv.ParseInt(string(args[2]), 10, 64)
	if err != nil {
		return ErrorFrame("ERR value is not an integer or out of range")
	}
	n, err := t.HIncrBy(args[0], args[1], delta)
	if err != nil {
		return errFrame(err)
	}
	return Integer(n)
}
