package resp

import (
	"bufio"
	"errors"
	"io"
	"log"
	"net"
	"sync"

	"github.com/google/uuid"

	"github.com/JoshuaBOUCHAT/radixox/internal/engine/tree"
)

// Server wraps a single *tree.Tree behind a mutex so it can be driven both
// by connection goroutines and by a clockd.Ticker running on its own
// goroutine — the "exclusive-access wrapper (mutex in a multi-threaded
// runtime...)" concurrency model this front-end chose over giving the
// engine its own internal locking. Server implements clockd.Clock directly,
// so a Ticker can drive it exactly like it would drive a bare *tree.Tree.
//
// Debug builds still single-owner-assert inside Tree itself
// (internal/ownership): running a debug build of oxidartd against real
// concurrent clients will trip that assertion on the second goroutine to
// touch the tree, same as any other Tree misuse. That's intentional — debug
// builds exist to catch single-owner violations, and a mutex only proves
// mutual exclusion, not same-goroutine identity. Production builds (the
// default, debug.Enabled false) never evaluate the check.
type Server struct {
	mu   sync.Mutex
	tree *tree.Tree
}

// NewServer wraps t for concurrent access.
func NewServer(t *tree.Tree) *Server {
	return &Server{tree: t}
}

// AdvanceClock implements clockd.Clock.
func (s *Server) AdvanceClock(now uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tree.AdvanceClock(now)
}

// EvictExpired implements clockd.Clock.
func (s *Server) EvictExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree.EvictExpired()
}

// Execute runs one command to completion under the server's lock.
func (s *Server) Execute(args [][]byte) Frame {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Dispatch(s.tree, args)
}

// Serve accepts connections on ln until it returns an error (typically
// because ln was closed), handling each on its own goroutine. It never
// returns a nil error.
func (s *Server) Serve(ln net.Listener) error {
	for {
		conn, err := ln.Accept()
		if err != nil {
			return err
		}
		go s.handleConn(conn)
	}
}

func (s *Server) handleConn(conn net.Conn) {
	// uuid.New tags each connection for log correlation the way a
	// production server distinguishes interleaved client sessions in its
	// logs without printing the remote address on every line.
	connID := uuid.New()
	defer conn.Close()

	r := bufio.NewReader(conn)
	w := bufio.NewWriter(conn)

	for {
		args, err := ReadCommand(r)
		if err != nil {
			if !errors.Is(err, io.EOF) {
				log.Printf("resp: connection %s: %v", connID, err)
			}
			return
		}

		reply := s.Execute(args)
		if err := WriteFrame(w, reply); err != nil {
			log.Printf("resp: connection %s: write: %v", connID, err)
			return
		}
		if r.Buffered() == 0 {
			if err := w.Flush(); err != nil {
				log.Printf("resp: connection %s: flush: %v", connID, err)
				return
			}
		}
	}
}
