package engine

import (
	"context"

	"framerelay/internal/fanout"
	"framerelay/internal/relay"
	"framerelay/internal/transport"
)

type Engine struct {
	transport *transport.Server
	listener  *relay.Listener
	slot      *relay.Slot
	pubs      []fanout.Publisher
}

func (e *Engine) Run(ctx context.Context) error {
	go func() { _ = e.listener.Run(ctx) }()

	go func() {
		<-ctx.Done()
		e.transport.Stop()
		e.slot.Close()
		for _, p := range e.pubs {
			_ = p.Close()
		}
	}()

	return e.transport.Serve()
}
