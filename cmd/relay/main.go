package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"

	"framerelay/internal/config"
	"framerelay/internal/engine"
	"framerelay/internal/logging"

	// fanout drivers register themselves
	_ "framerelay/internal/fanout/kafka"
	_ "framerelay/internal/fanout/stdout"
)

func main() {
	cfgPath := flag.String("config", "relay.yml", "path to relay config (optional)")
	flag.Parse()

	logging.InitFromEnv()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	e, err := engine.Bootstrap(cfg)
	if err != nil {
		log.Fatalf("bootstrap: %v", err)
	}

	if err := e.Run(ctx); err != nil {
		log.Fatalf("engine: %v", err)
	}
}
