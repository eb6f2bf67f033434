// Package relay owns both pipe endpoints: the shared outbound frame
// connection and the background inbound transform listener.
package relay

import (
	"context"
	"net"
	"sync"
)

// DialFunc opens one connection to a well-known pipe path.
type DialFunc func(ctx context.Context, path string) (net.Conn, error)

// DialPipe connects to a Unix-domain pipe endpoint.
func DialPipe(ctx context.Context, path string) (net.Conn, error) {
	var d net.Dialer
	return d.DialContext(ctx, "unix", path)
}

// Slot holds the optional outbound connection. The mutex covers only the
// check/dial/store critical section; writes happen outside the lock on the
// conn value returned by Acquire, so concurrent senders never serialize
// behind pipe I/O.
type Slot struct {
	path string
	dial DialFunc

	mu   sync.Mutex
	conn net.Conn
}

func NewSlot(path string, dial DialFunc) *Slot {
	return &Slot{path: path, dial: dial}
}

// Acquire returns the stored connection, dialing once if the slot is empty.
// Connect failures propagate to the caller; retry policy lives in the send
// path, not here.
func (s *Slot) Acquire(ctx context.Context) (net.Conn, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conn != nil {
		return s.conn, nil
	}
	conn, err := s.dial(ctx, s.path)
	if err != nil {
		return nil, err
	}
	s.conn = conn
	return conn, nil
}

// Invalidate discards the stored connection after a failed write. The
// identity check keeps a slow writer from discarding a replacement
// connection another caller already established.
func (s *Slot) Invalidate(c net.Conn) {
	s.mu.Lock()
	if s.conn == c {
		s.conn = nil
	}
	s.mu.Unlock()
	if c != nil {
		_ = c.Close()
	}
}

func (s *Slot) Close() {
	s.mu.Lock()
	c := s.conn
	s.conn = nil
	s.mu.Unlock()
	if c != nil {
		_ = c.Close()
	}
}
