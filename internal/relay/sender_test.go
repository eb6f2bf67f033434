package relay

import (
	"bytes"
	"context"
	"errors"
	"net"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"framerelay/internal/wire"
)

type fakeAddr string

func (a fakeAddr) Network() string { return "fake" }
func (a fakeAddr) String() string  { return string(a) }

// fakeConn records writes and can be scripted to fail them.
type fakeConn struct {
	mu       sync.Mutex
	wrote    [][]byte
	writeErr error
	closed   bool
}

func (c *fakeConn) Write(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.writeErr != nil {
		return 0, c.writeErr
	}
	c.wrote = append(c.wrote, append([]byte{}, p...))
	return len(p), nil
}

func (c *fakeConn) Read(p []byte) (int, error) { return 0, errors.New("not readable") }
func (c *fakeConn) Close() error {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()
	return nil
}
func (c *fakeConn) LocalAddr() net.Addr                { return fakeAddr("local") }
func (c *fakeConn) RemoteAddr() net.Addr               { return fakeAddr("remote") }
func (c *fakeConn) SetDeadline(t time.Time) error      { return nil }
func (c *fakeConn) SetReadDeadline(t time.Time) error  { return nil }
func (c *fakeConn) SetWriteDeadline(t time.Time) error { return nil }

func (c *fakeConn) writes() [][]byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([][]byte{}, c.wrote...)
}

// scriptDial hands out the given conns in order and fails once exhausted.
func scriptDial(calls *int32, conns ...net.Conn) DialFunc {
	var i int32 = -1
	return func(ctx context.Context, path string) (net.Conn, error) {
		atomic.AddInt32(calls, 1)
		n := atomic.AddInt32(&i, 1)
		if int(n) >= len(conns) {
			return nil, errors.New("pipe endpoint unreachable")
		}
		return conns[n], nil
	}
}

func meta(w, h string) map[string]string {
	return map[string]string{"width": w, "height": h}
}

func TestUploadFramesPayloadAndReusesHandle(t *testing.T) {
	var dials int32
	conn := &fakeConn{}
	s := NewSender(NewSlot("frames", scriptDial(&dials, conn)))

	pixels := []byte{1, 2, 3, 4, 5}
	if err := s.Upload(context.Background(), meta("320", "240"), pixels); err != nil {
		t.Fatalf("upload: %v", err)
	}
	if err := s.Upload(context.Background(), meta("320", "240"), pixels); err != nil {
		t.Fatalf("second upload: %v", err)
	}
	if got := atomic.LoadInt32(&dials); got != 1 {
		t.Fatalf("dialed %d times, want 1 (handle must be reused)", got)
	}
	w := conn.writes()
	if len(w) != 2 {
		t.Fatalf("got %d writes, want 2", len(w))
	}
	want := wire.EncodeFrame(320, 240, pixels)
	if !bytes.Equal(w[0], want) {
		t.Fatalf("framed payload mismatch:\n got %x\nwant %x", w[0], want)
	}
}

func TestUploadMetadataValidation(t *testing.T) {
	var dials int32
	s := NewSender(NewSlot("frames", scriptDial(&dials)))

	cases := []struct {
		name string
		meta map[string]string
		want error
	}{
		{"no meta", map[string]string{}, ErrMissingMetadata},
		{"missing height", map[string]string{"width": "640"}, ErrMissingMetadata},
		{"garbage width", meta("abc", "480"), ErrInvalidMetadata},
		{"negative height", meta("640", "-1"), ErrInvalidMetadata},
	}
	for _, c := range cases {
		err := s.Upload(context.Background(), c.meta, []byte{0})
		if !errors.Is(err, c.want) {
			t.Fatalf("%s: got %v, want %v", c.name, err, c.want)
		}
	}
	if atomic.LoadInt32(&dials) != 0 {
		t.Fatal("metadata errors must not touch the pipe")
	}
}

func TestUploadConnectFailureUsesExactBudget(t *testing.T) {
	var dials int32
	s := NewSender(NewSlot("frames", scriptDial(&dials))) // every dial fails

	err := s.Upload(context.Background(), meta("1", "1"), []byte{0xff})
	if err == nil {
		t.Fatal("expected error when connect always fails")
	}
	if got := atomic.LoadInt32(&dials); got != 2 {
		t.Fatalf("dialed %d times, want exactly 2", got)
	}
}

func TestUploadRetriesOnFreshHandle(t *testing.T) {
	var dials int32
	bad := &fakeConn{writeErr: errors.New("broken pipe")}
	good := &fakeConn{}
	s := NewSender(NewSlot("frames", scriptDial(&dials, bad, good)))

	if err := s.Upload(context.Background(), meta("8", "8"), []byte{9}); err != nil {
		t.Fatalf("upload should succeed on the retry: %v", err)
	}
	if got := atomic.LoadInt32(&dials); got != 2 {
		t.Fatalf("dialed %d times, want 2", got)
	}
	bad.mu.Lock()
	closed := bad.closed
	bad.mu.Unlock()
	if !closed {
		t.Fatal("failed handle was not closed on invalidation")
	}
	if len(good.writes()) != 1 {
		t.Fatal("retry did not write through the fresh handle")
	}
}

func TestUploadSurfacesLastWriteError(t *testing.T) {
	var dials int32
	boom := errors.New("boom")
	s := NewSender(NewSlot("frames", scriptDial(&dials,
		&fakeConn{writeErr: errors.New("first")},
		&fakeConn{writeErr: boom},
	)))

	err := s.Upload(context.Background(), meta("4", "4"), nil)
	if !errors.Is(err, boom) {
		t.Fatalf("got %v, want wrapped last error %v", err, boom)
	}
}

func TestSlotInvalidateIsIdentityChecked(t *testing.T) {
	var dials int32
	a := &fakeConn{}
	b := &fakeConn{}
	slot := NewSlot("frames", scriptDial(&dials, a, b))

	got, err := slot.Acquire(context.Background())
	if err != nil || got != net.Conn(a) {
		t.Fatalf("first acquire: %v %v", got, err)
	}
	slot.Invalidate(a)
	got, err = slot.Acquire(context.Background())
	if err != nil || got != net.Conn(b) {
		t.Fatalf("acquire after invalidate: %v %v", got, err)
	}
	// stale invalidation of a must not discard b
	slot.Invalidate(a)
	got, err = slot.Acquire(context.Background())
	if err != nil || got != net.Conn(b) {
		t.Fatalf("stale invalidate discarded the live handle: %v %v", got, err)
	}
	if atomic.LoadInt32(&dials) != 2 {
		t.Fatalf("dialed %d times, want 2", dials)
	}
}

func TestConcurrentUploadsAllComplete(t *testing.T) {
	var dials int32
	conn := &fakeConn{}
	s := NewSender(NewSlot("frames", scriptDial(&dials, conn)))

	const n = 50
	errs := make(chan error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- s.Upload(context.Background(), meta("16", "16"), []byte{1, 2, 3})
		}()
	}
	done := make(chan struct{})
	go func() { wg.Wait(); close(done) }()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("concurrent uploads hung")
	}
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatalf("upload failed: %v", err)
		}
	}
	if len(conn.writes()) != n {
		t.Fatalf("got %d writes, want %d", len(conn.writes()), n)
	}
}
