package engine

import (
	"fmt"

	"framerelay/internal/config"
	"framerelay/internal/fanout"
	"framerelay/internal/logging"
	"framerelay/internal/relay"
	"framerelay/internal/telemetry"
	"framerelay/internal/transport"
	"framerelay/internal/wire"
)

func Bootstrap(cfg config.Config) (*Engine, error) {
	// 1. pipe endpoints
	slot := relay.NewSlot(cfg.FramePipe, relay.DialPipe)
	sender := relay.NewSender(slot)
	listener := relay.NewListener(cfg.TransformPipe, relay.DialPipe, cfg.ReconnectBackoff)

	// 2. transform update delivery: gRPC subscribers + optional fanout
	hub := transport.NewHub()
	listener.OnTransformUpdate(hub.Broadcast)

	pubs, err := compileFanout(cfg.Fanout)
	if err != nil {
		return nil, fmt.Errorf("fanout: %w", err)
	}
	for _, p := range pubs {
		p := p
		listener.OnTransformUpdate(func(m wire.Matrix) {
			if err := p.Publish(m); err != nil {
				logging.L().Warn("fanout publish failed", "err", err)
			}
		})
	}

	// 3. host surface
	srv, err := transport.StartServer(cfg.GRPCPort, sender, hub)
	if err != nil {
		return nil, fmt.Errorf("transport: %w", err)
	}

	// 4. metrics
	telemetry.Expose(cfg.MetricsPort)

	return &Engine{
		transport: srv,
		listener:  listener,
		slot:      slot,
		pubs:      pubs,
	}, nil
}

func compileFanout(cfg config.FanoutCfg) ([]fanout.Publisher, error) {
	var pubs []fanout.Publisher
	for _, name := range cfg.Publishers {
		p, err := fanout.New(name)
		if err != nil {
			return nil, err
		}
		var raw map[string]any
		switch name {
		case "kafka":
			raw = cfg.Kafka
		case "stdout":
			raw = cfg.Stdout
		}
		if err := p.Configure(raw); err != nil {
			return nil, err
		}
		pubs = append(pubs, p)
	}
	return pubs, nil
}
