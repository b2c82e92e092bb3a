package resp

import (
	"bytes"

	"github.com/JoshuaBOUCHAT/radixox/internal/engine/tree"
)

// Handler serves one command. Every handler takes the full argument vector
// (args[0] is the key or first parameter, never the command name itself)
// and returns the reply frame directly — unlike the four-variant Handler
// enum resp.rs uses to distinguish commands that don't touch the tree, a Go
// handler that ignores its *tree.Tree argument (PING, ECHO, ...) costs
// nothing extra, so one shape covers every command.
type Handler func(t *tree.Tree, args [][]byte) Frame

// command pairs a name with its handler, mirroring resp.rs's COMMANDS table.
type command struct {
	name    string
	handler Handler
}

var commands = []command{
	// Meta commands - no data access.
	{"PING", cmdPing},
	{"ECHO", cmdEcho},
	{"QUIT", cmdQuit},
	{"SELECT", cmdSelect},

	// Key-value primaries.
	{"GET", cmdGet},
	{"SET", cmdSet},
	{"DEL", cmdDel},
	{"EXISTS", cmdExists},
	{"MGET", cmdMGet},
	{"MSET", cmdMSet},
	{"SETNX", cmdSetNX},
	{"SETEX", cmdSetEX},
	{"TYPE", cmdType},
	{"DBSIZE", cmdDBSize},
	{"FLUSHDB", cmdFlushDB},
	{"KEYS", cmdKeys},
	{"TTL", cmdTTL},
	{"PTTL", cmdPTTL},
	{"EXPIRE", cmdExpire},
	{"PEXPIRE", cmdPExpire},
	{"PERSIST", cmdPersist},

	// Counters.
	{"INCR", cmdIncr},
	{"DECR", cmdDecr},
	{"INCRBY", cmdIncrBy},
	{"DECRBY", cmdDecrBy},

	// Hashes.
	{"HSET", cmdHSet},
	{"HGET", cmdHGet},
	{"HGETALL", cmdHGetAll},
	{"HDEL", cmdHDel},
	{"HEXISTS", cmdHExists},
	{"HLEN", cmdHLen},
	{"HKEYS", cmdHKeys},
	{"HVALS", cmdHVals},
	{"HMGET", cmdHMGet},
	{"HINCRBY", cmdHIncrBy},

	// Sets.
	{"SADD", cmdSAdd},
	{"SREM", cmdSRem},
	{"SMEMBERS", cmdSMembers},
	{"SISMEMBER", cmdSIsMember},
	{"SCARD", cmdSCard},
	{"SPOP", cmdSPop},

	// Sorted sets.
	{"ZADD", cmdZAdd},
	{"ZCARD", cmdZCard},
	{"ZRANGE", cmdZRange},
	{"ZSCORE", cmdZScore},
	{"ZREM", cmdZRem},
	{"ZINCRBY", cmdZIncrBy},

	// Lists.
	{"LPUSH", cmdLPush},
	{"RPUSH", cmdRPush},
	{"LPOP", cmdLPop},
	{"RPOP", cmdRPop},
	{"LLEN", cmdLLen},
	{"LRANGE", cmdLRange},
	{"LINDEX", cmdLIndex},
}

var errEmptyCommand = ErrorFrame("ERR empty command")

// Dispatch resolves args[0] against the command table and runs its handler
// on the rest of args, the same case-insensitive linear scan resp.rs's
// execute_command performs.
func Dispatch(t *tree.Tree, args [][]byte) Frame {
	if len(args) == 0 {
		return errEmptyCommand
	}
	name, rest := args[0], args[1:]
	for _, c := range commands {
		if bytes.EqualFold(name, []byte(c.name)) {
			return c.handler(t, rest)
		}
	}
	return ErrorFrame("ERR unknown command '" + string(name) + "'")
}
