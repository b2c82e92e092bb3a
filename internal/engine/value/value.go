// Package value implements the Redis-compatible tagged value union stored
// at every occupied radix tree node: strings/integers, hashes, lists, sets
// and sorted sets.
//
// Go has no inline sum type, so Value is an interface implemented by one
// concrete type per variant; RedisType() is the discriminant used by TYPE
// and by the WRONGTYPE checks every command performs before operating on a
// key.
package value

import (
	"strconv"
)

// RedisType is the externally visible type family of a Value — the string
// TYPE reports, and the axis WRONGTYPE errors are checked against.
type RedisType int

const (
	TypeNone RedisType = iota
	TypeString
	TypeHash
	TypeList
	TypeSet
	TypeZSet
)

func (t RedisType) String() string {
	switch t {
	case TypeString:
		return "string"
	case TypeHash:
		return "hash"
	case TypeList:
		return "list"
	case TypeSet:
		return "set"
	case TypeZSet:
		return "zset"
	default:
		return "none"
	}
}

// Value is any of the Redis-compatible value types a key may hold.
type Value interface {
	RedisType() RedisType
}

// StringValue is a raw byte string.
type StringValue struct {
	Bytes []byte
}

func (StringValue) RedisType() RedisType { return TypeString }

// IntValue is an integer counter. Redis reports it as "string" — the
// distinction is an internal fast path, not a visible type.
type IntValue int64

func (IntValue) RedisType() RedisType { return TypeString }

// AsBytes returns the raw byte representation of a string-family value:
// String returns its bytes directly, Int formats itself on the fly.
// Returns false for any non-string-family value.
func AsBytes(v Value) ([]byte, bool) {
	switch v := v.(type) {
	case StringValue:
		return v.Bytes, true
	case IntValue:
		return []byte(strconv.FormatInt(int64(v), 10)), true
	default:
		return nil, false
	}
}

// ToInt parses a string-family value as an int64: direct for Int, base-10
// ASCII parse for String.
func ToInt(v Value) (int64, bool) {
	switch v := v.(type) {
	case IntValue:
		return int64(v), true
	case StringValue:
		n, err := strconv.ParseInt(string(v.Bytes), 10, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

// AsHash type-asserts v as a hash, reporting the actual type on mismatch.
func AsHash(v Value) (*HashValue, RedisType) {
	if h, ok := v.(*HashValue); ok {
		return h, TypeHash
	}
	return nil, v.RedisType()
}

// AsList type-asserts v as a list, reporting the actual type on mismatch.
func AsList(v Value) (*ListValue, RedisType) {
	if l, ok := v.(*ListValue); ok {
		return l, TypeList
	}
	return nil, v.RedisType()
}

// AsSet type-asserts v as a set, reporting the actual type on mismatch.
func AsSet(v Value) (*SetValue, RedisType) {
	if s, ok := v.(*SetValue); ok {
		return s, TypeSet
	}
	return nil, v.RedisType()
}

// AsZSet type-asserts v as a sorted set, reporting the actual type on
// mismatch.
func AsZSet(v Value) (*ZSetValue, RedisType) {
	if z, ok := v.(*ZSetValue); ok {
		return z, TypeZSet
	}
	return nil, v.RedisType()
}
