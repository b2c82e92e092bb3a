package resp

import (
	"bytes"
	"strconv"

	"github.com/JoshuaBOUCHAT/radixox/internal/engine/tree"
	"github.com/JoshuaBOUCHAT/radixox/internal/engine/value"
	"github.com/JoshuaBOUCHAT/radixox/internal/engineerr"
	"github.com/JoshuaBOUCHAT/radixox/pkg/opt"
)

// optBulk turns an (ok bool, bytes) pair into a Frame the way pkg/opt.Option
// represents "maybe absent" everywhere else in this package: the caller
// builds an Option first, then the one IsNone check decides NullBulk vs
// BulkString, instead of repeating the ok-check inline at every call site.
func optBulk(b []byte, ok bool) Frame {
	o := opt.None[[]byte]()
	if ok {
		o = opt.Some(b)
	}
	if o.IsNone() {
		return NullBulk()
	}
	return BulkString(o.Unwrap())
}

func valueBytes(v value.Value) ([]byte, bool) {
	if v == nil {
		return nil, false
	}
	return value.AsBytes(v)
}

func cmdGet(t *tree.Tree, args [][]byte) Frame {
	if len(args) != 1 {
		return wrongArity("GET")
	}
	v, ok := t.Get(args[0])
	if !ok {
		return NullBulk()
	}
	b, isStringFamily := valueBytes(v)
	if !isStringFamily {
		return errFrame(engineerr.ErrWrongType)
	}
	return optBulk(b, true)
}

func cmdSet(t *tree.Tree, args [][]byte) Frame {
	if len(args) < 2 {
		return wrongArity("SET")
	}
	key, val := args[0], args[1]

	expiry := tree.NoExpiry
	for i := 2; i < len(args); i++ {
		switch {
		case bytes.EqualFold(args[i], []byte("EX")) && i+1 < len(args):
			secs, err := strconv.ParseUint(string(args[i+1]), 10, 64)
			if err != nil {
				return ErrorFrame("ERR value is not an integer or out of range")
			}
			expiry = secs
			i++
		case bytes.EqualFold(args[i], []byte("PX")) && i+1 < len(args):
			ms, err := strconv.ParseUint(string(args[i+1]), 10, 64)
			if err != nil {
				return ErrorFrame("ERR value is not an integer or out of range")
			}
			expiry = ms / 1000
			i++
		default:
			return ErrorFrame("ERR syntax error")
		}
	}

	if expiry == tree.NoExpiry {
		t.Set(key, value.StringValue{Bytes: val})
	} else {
		t.SetTTL(key, expiry, value.StringValue{Bytes: val})
	}
	return SimpleString("OK")
}

func cmdDel(t *tree.Tree, args [][]byte) Frame {
	if len(args) == 0 {
		return wrongArity("DEL")
	}
	removed := 0
	for _, k := range args {
		if _, ok := t.Del(k); ok {
			removed++
		}
	}
	return Integer(int64(removed))
}

func cmdExists(t *tree.Tree, args [][]byte) Frame {
	if len(args) == 0 {
		return wrongArity("EXISTS")
	}
	return Integer(int64(t.Exists(args)))
}

func cmdMGet(t *tree.Tree, args [][]byte) Frame {
	if len(args) == 0 {
		return wrongArity("MGET")
	}
	values := t.MGet(args)
	out := make([]Frame, len(values))
	for i, v := range values {
		b, ok := valueBytes(v)
		out[i] = optBulk(b, ok)
	}
	return ArrayOf(out)
}

func cmdMSet(t *tree.Tree, args [][]byte) Frame {
	if len(args) == 0 || len(args)%2 != 0 {
		return wrongArity("MSET")
	}
	pairs := make([]tree.FieldValue, 0, len(args)/2)
	for i := 0; i < len(args); i += 2 {
		pairs = append(pairs, tree.FieldValue{Field: args[i], Value: args[i+1]})
	}
	t.MSet(pairs)
	return SimpleString("OK")
}

func cmdSetNX(t *tree.Tree, args [][]byte) Frame {
	if len(args) != 2 {
		return wrongArity("SETNX")
	}
	return Bool(t.SetNX(args[0], args[1]))
}

func cmdSetEX(t *tree.Tree, args [][]byte) Frame {
	if len(args) != 3 {
		return wrongArity("SETEX")
	}
	secs, err := strconv.ParseUint(string(args[1]), 10, 64)
	if err != nil {
		return ErrorFrame("ERR value is not an integer or out of range")
	}
	t.SetEX(args[0], secs, args[2])
	return SimpleString("OK")
}

func cmdType(t *tree.Tree, args [][]byte) Frame {
	if len(args) != 1 {
		return wrongArity("TYPE")
	}
	return SimpleString(t.Type(args[0]))
}

func cmdDBSize(t *tree.Tree, _ [][]byte) Frame { return Integer(int64(t.DBSize())) }

func cmdFlushDB(t *tree.Tree, _ [][]byte) Frame {
	t.FlushDB()
	return SimpleString("OK")
}

func cmdKeys(t *tree.Tree, args [][]byte) Frame {
	if len(args) != 1 {
		return wrongArity("KEYS")
	}

	var entries []tree.Entry
	switch c := classifyPattern(string(args[0])); {
	case c.HasLeft():
		entries = t.GetN(*c.Left)
	default:
		es, err := t.GetNRegex(*c.Right)
		if err != nil {
			return errFrame(err)
		}
		entries = es
	}

	out := make([]Frame, len(entries))
	for i, e := range entries {
		out[i] = BulkString(e.Key)
	}
	return ArrayOf(out)
}

func cmdTTL(t *tree.Tree, args [][]byte) Frame {
	if len(args) != 1 {
		return wrongArity("TTL")
	}
	status, remaining := t.GetTTL(args[0])
	return ttlFrame(status, remaining, 1)
}

func cmdPTTL(t *tree.Tree, args [][]byte) Frame {
	if len(args) != 1 {
		return wrongArity("PTTL")
	}
	status, remaining := t.GetTTL(args[0])
	return ttlFrame(status, remaining, 1000)
}

// ttlFrame renders a TTLStatus the way TTL/PTTL expect: -2 for an absent
// key, -1 for one without an expiry, otherwise the remaining ticks scaled by
// unitFactor (1 for TTL's seconds, 1000 for PTTL's milliseconds — the engine
// itself only ever tracks seconds, so PTTL's precision is exactly the
// nearest whole second).
func ttlFrame(status tree.TTLStatus, remaining uint64, unitFactor int64) Frame {
	switch status {
	case tree.KeyNotExist:
		return Integer(-2)
	case tree.KeyWithoutTTL:
		return Integer(-1)
	default:
		return Integer(int64(remaining) * unitFactor)
	}
}

func cmdExpire(t *tree.Tree, args [][]byte) Frame {
	if len(args) != 2 {
		return wrongArity("EXPIRE")
	}
	secs, err := strconv.ParseUint(string(args[1]), 10, 64)
	if err != nil {
		return ErrorFrame("ERR value is not an integer or out of range")
	}
	return Bool(t.Expire(args[0], secs))
}

func cmdPExpire(t *tree.Tree, args [][]byte) Frame {
	if len(args) != 2 {
		return wrongArity("PEXPIRE")
	}
	ms, err := strconv.ParseUint(string(args[1]), 10, 64)
	if err != nil {
		return ErrorFrame("ERR value is not an integer or out of range")
	}
	return Bool(t.Expire(args[0], ms/1000))
}

func cmdPersist(t *tree.Tree, args [][]byte) Frame {
	if len(args) != 1 {
		return wrongArity("PERSIST")
	}
	return Bool(t.Persist(args[0]))
}
