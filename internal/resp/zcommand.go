package resp

import (
	"strconv"

	"github.com/JoshuaBOUCHAT/radixox/internal/engine/tree"
)

func cmdZAdd(t *tree.Tree, args [][]byte) Frame {
	if len(args) < 3 || len(args)%2 != 1 {
		return wrongArity("ZADD")
	}
	scoreMembers := make([]tree.ScoreMember, 0, len(args)/2)
	for i := 1; i < len(args); i += 2 {
		score, err := strconv.ParseFloat(string(args[i]), 64)
		if err != nil {
			return ErrorFrame("ERR value is not a valid float")
		}
		scoreMembers = append(scoreMembers, tree.ScoreMember{Score: score, Member: args[i+1]})
	}
	n, err := t.ZAdd(args[0], scoreMembers, tree.NoExpiry)
	if err != nil {
		return errFrame(err)
	}
	return Integer(int64(n))
}

func cmdZCard(t *tree.Tree, args [][]byte) Frame {
	if len(args) != 1 {
		return wrongArity("ZCARD")
	}
	n, err := t.ZCard(args[0])
	if err != nil {
		return errFrame(err)
	}
	return Integer(int64(n))
}

func cmdZRange(t *tree.Tree, args [][]byte) Frame {
	if len(args) < 3 || len(args) > 4 {
		return wrongArity("ZRANGE")
	}
	start, err := strconv.Atoi(string(args[1]))
	if err != nil {
		return ErrorFrame("ERR value is not an integer or out of range")
	}
	stop, err := strconv.Atoi(string(args[2]))
	if err != nil {
		return ErrorFrame("ERR value is not an integer or out of range")
	}
	withScores := false
	if len(args) == 4 {
		if !equalFoldASCII(args[3], "WITHSCORES") {
			return ErrorFrame("ERR syntax error")
		}
		withScores = true
	}

	members, err := t.ZRange(args[0], start, stop, withScores)
	if err != nil {
		return errFrame(err)
	}
	return BulkArray(members)
}

func equalFoldASCII(b []byte, s string) bool {
	if len(b) != len(s) {
		return false
	}
	for i := range b {
		c := b[i]
		if 'a' <= c && c <= 'z' {
			c -= 'a' - 'A'
		}
		if c != s[i] {
			return false
		}
	}
	return true
}

func cmdZScore(t *tree.Tree, args [][]byte) Frame {
	if len(args) != 2 {
		return wrongArity("ZSCORE")
	}
	score, ok, err := t.ZScore(args[0], args[1])
	if err != nil {
		return errFrame(err)
	}
	if !ok {
		return NullBulk()
	}
	return BulkString([]byte(strconv.FormatFloat(score, 'f', -1, 64)))
}

func cmdZRem(t *tree.Tree, args [][]byte) Frame {
	if len(args) < 2 {
		return wrongArity("ZREM")
	}
	n, err := t.ZRem(args[0], args[1:])
	if err != nil {
		return errFrame(err)
	}
	return Integer(int64(n))
}

func cmdZIncrBy(t *tree.Tree, args [][]byte) Frame {
	if len(args) != 3 {
		return wrongArity("ZINCRBY")
	}
	delta, err := strconv.ParseFloat(string(args[1]), 64)
	if err != nil {
		return ErrorFrame("ERR value is not a valid float")
	}
	score, err := t.ZIncrBy(args[0], delta, args[2])
	if err != nil {
		return errFrame(err)
	}
	return BulkString([]byte(strconv.FormatFloat(score, 'f', -1, 64)))
}
