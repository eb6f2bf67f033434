package relay

import (
	"context"
	"errors"
	"io"
	"net"
	"sync"
	"time"

	"framerelay/internal/logging"
	"framerelay/internal/telemetry"
	"framerelay/internal/wire"
)

// DefaultBackoff is the fixed delay between inbound connect attempts.
const DefaultBackoff = time.Second

// Listener maintains the inbound transform connection for the lifetime of
// the process: Connecting (dial with fixed backoff, forever) → Connected
// (read 64-byte records) → Disconnected (any read error or EOF) → Connecting.
// Each decoded record is delivered synchronously to every registered
// callback, in stream order.
type Listener struct {
	path    string
	dial    DialFunc
	backoff time.Duration

	mu   sync.Mutex
	subs []func(wire.Matrix)
}

func NewListener(path string, dial DialFunc, backoff time.Duration) *Listener {
	if backoff <= 0 {
		backoff = DefaultBackoff
	}
	return &Listener{path: path, dial: dial, backoff: backoff}
}

// OnTransformUpdate registers a callback invoked once per inbound record.
// Callbacks run on the read goroutine and must not block; slow delivery
// delays subsequent reads.
func (l *Listener) OnTransformUpdate(fn func(wire.Matrix)) {
	l.mu.Lock()
	l.subs = append(l.subs, fn)
	l.mu.Unlock()
}

// Run loops until ctx is cancelled. It never returns an error other than
// ctx.Err(): connect and read failures are logged and retried.
func (l *Listener) Run(ctx context.Context) error {
	for {
		conn := l.connect(ctx)
		if conn == nil {
			return ctx.Err()
		}
		l.read(ctx, conn)
		_ = conn.Close()
		if ctx.Err() != nil {
			return ctx.Err()
		}
		telemetry.TransformReconnects.Inc()
	}
}

func (l *Listener) connect(ctx context.Context) net.Conn {
	for {
		conn, err := l.dial(ctx, l.path)
		if err == nil {
			logging.L().Info("transform pipe connected", "path", l.path)
			return conn
		}
		logging.L().Debug("transform pipe connect failed",
			"path", l.path, "retry_in", l.backoff, "err", err)
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(l.backoff):
		}
	}
}

// read consumes records until the stream ends. Closing the conn is the only
// way to unblock a pending read, so a watcher tied to ctx does that.
func (l *Listener) read(ctx context.Context, conn net.Conn) {
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = conn.Close()
		case <-done:
		}
	}()

	buf := make([]byte, wire.TransformRecordSize)
	for {
		_, err := io.ReadFull(conn, buf)
		switch {
		case err == nil:
			m, derr := wire.DecodeTransform(buf)
			if derr != nil {
				telemetry.TransformDecodeCorruption.Inc()
				logging.L().Warn("transform record corrupt, substituting zero matrix", "err", derr)
			}
			telemetry.TransformRecords.Inc()
			l.publish(m)
		case errors.Is(err, io.EOF):
			// clean close at a record boundary: expected producer shutdown
			logging.L().Info("transform pipe closed by peer")
			return
		case errors.Is(err, io.ErrUnexpectedEOF):
			telemetry.TransformShortReads.Inc()
			logging.L().Warn("incomplete transform record, reconnecting")
			return
		default:
			// the ctx watcher closes the conn to unblock this read; that is
			// an ordinary shutdown, not a pipe failure
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				logging.L().Debug("transform pipe read interrupted by shutdown")
				return
			}
			logging.L().Error("transform pipe read failed", "err", err)
			return
		}
	}
}

func (l *Listener) publish(m wire.Matrix) {
	l.mu.Lock()
	subs := append([]func(wire.Matrix){}, l.subs...)
	l.mu.Unlock()
	for _, fn := range subs {
		fn(m)
	}
}
