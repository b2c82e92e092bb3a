package resp

import (
	"strconv"

	"github.com/JoshuaBOUCHAT/radixox/internal/engine/tree"
)

func cmdSAdd(t *tree.Tree, args [][]byte) Frame {
	if len(args) < 2 {
		return wrongArity("SADD")
	}
	n, err := t.SAdd(args[0], args[1:], tree.NoExpiry)
	if err != nil {
		return errFrame(err)
	}
	return Integer(int64(n))
}

func cmdSRem(t *tree.Tree, args [][]byte) Frame {
	if len(args) < 2 {
		return wrongArity("SREM")
	}
	n, err := t.SRem(args[0], args[1:])
	if err != nil {
		return errFrame(err)
	}
	return Integer(int64(n))
}

func cmdSMembers(t *tree.Tree, args [][]byte) Frame {
	if len(args) != 1 {
		return wrongArity("SMEMBERS")
	}
	members, err := t.SMembers(args[0])
	if err != nil {
		return errFrame(err)
	}
	return BulkArray(members)
}

func cmdSIsMember(t *tree.Tree, args [][]byte) Frame {
	if len(args) != 2 {
		return wrongArity("SISMEMBER")
	}
	ok, err := t.SIsMember(args[0], args[1])
	if err != nil {
		return errFrame(err)
	}
	return Bool(ok)
}

func cmdSCard(t *tree.Tree, args [][]byte) Frame {
	if len(args) != 1 {
		return wrongArity("SCARD")
	}
	n, err := t.SCard(args[0])
	if err != nil {
		return errFrame(err)
	}
	return Integer(int64(n))
}

// cmdSPop mirrors SPOP's two shapes: bare "SPOP key" pops one member and
// replies with a bulk string (or null), "SPOP key count" pops up to count
// and replies with an array — the same branch SPopResult.Single/Members
// exists to dispatch on.
func cmdSPop(t *tree.Tree, args [][]byte) Frame {
	if len(args) < 1 || len(args) > 2 {
		return wrongArity("SPOP")
	}

	hasCount := len(args) == 2
	count := 0
	if hasCount {
		n, err := strconv.Atoi(string(args[1]))
		if err != nil || n < 0 {
			return ErrorFrame("ERR value is out of range, must be positive")
		}
		count = n
	}

	result, err := t.SPop(args[0], count, hasCount)
	if err != nil {
		return errFrame(err)
	}
	if result.Multi() {
		return BulkArray(result.Members())
	}
	member, ok := result.Single()
	if !ok {
		return NullBulk()
	}
	return BulkString(member)
}
