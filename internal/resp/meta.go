package resp

import "github.com/JoshuaBOUCHAT/radixox/internal/engine/tree"

// Meta commands never touch the tree; they exist so ordinary Redis clients
// (which PING/SELECT on connect) work against this server unmodified.

func cmdPing(_ *tree.Tree, args [][]byte) Frame {
	if len(args) > 0 {
		return BulkString(args[0])
	}
	return SimpleString("PONG")
}

func cmdEcho(_ *tree.Tree, args [][]byte) Frame {
	if len(args) != 1 {
		return wrongArity("ECHO")
	}
	return BulkString(args[0])
}

func cmdQuit(_ *tree.Tree, _ [][]byte) Frame { return SimpleString("OK") }

func cmdSelect(_ *tree.Tree, _ [][]byte) Frame { return SimpleString("OK") }
