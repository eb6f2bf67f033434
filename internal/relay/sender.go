package relay

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"framerelay/internal/logging"
	"framerelay/internal/telemetry"
	"framerelay/internal/wire"
)

var (
	ErrMissingMetadata = errors.New("relay: frame metadata missing width/height")
	ErrInvalidMetadata = errors.New("relay: frame metadata not parseable")
)

// uploadAttempts is the total acquire+write budget of one Upload call. Each
// retry re-enters Slot.Acquire, so a single call observes at most one
// reconnect.
const uploadAttempts = 2

// Sender is the outbound frame path: one GUI request in, one framed write
// out. Fire-and-forget; nothing is read back from the native process.
type Sender struct {
	slot *Slot
}

func NewSender(slot *Slot) *Sender { return &Sender{slot: slot} }

// Upload frames the pixel buffer and writes it through the shared outbound
// connection. A write failure invalidates the stored handle before the
// retry, so the second attempt always dials fresh.
func (s *Sender) Upload(ctx context.Context, meta map[string]string, pixels []byte) error {
	width, height, err := parseMeta(meta)
	if err != nil {
		return err
	}
	payload := wire.EncodeFrame(width, height, pixels)

	var lastErr error
	for attempt := 1; attempt <= uploadAttempts; attempt++ {
		conn, err := s.slot.Acquire(ctx)
		if err != nil {
			telemetry.FrameConnectErrors.Inc()
			logging.L().Warn("frame pipe connect failed",
				"attempt", attempt, "err", err)
			lastErr = err
			continue
		}
		if _, err := conn.Write(payload); err != nil {
			telemetry.FrameWriteErrors.Inc()
			logging.L().Warn("frame write failed, invalidating handle",
				"attempt", attempt, "err", err)
			s.slot.Invalidate(conn)
			lastErr = err
			continue
		}
		telemetry.FramesSent.Inc()
		telemetry.FrameBytes.Add(float64(len(payload)))
		return nil
	}
	return fmt.Errorf("relay: frame write failed after %d attempts: %w", uploadAttempts, lastErr)
}

func parseMeta(meta map[string]string) (width, height uint32, err error) {
	ws, ok := meta["width"]
	if !ok {
		return 0, 0, fmt.Errorf("%w: width", ErrMissingMetadata)
	}
	hs, ok := meta["height"]
	if !ok {
		return 0, 0, fmt.Errorf("%w: height", ErrMissingMetadata)
	}
	w, err := strconv.ParseUint(ws, 10, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: width %q", ErrInvalidMetadata, ws)
	}
	h, err := strconv.ParseUint(hs, 10, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: height %q", ErrInvalidMetadata, hs)
	}
	return uint32(w), uint32(h), nil
}
