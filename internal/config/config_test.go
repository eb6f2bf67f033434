package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadFileAndDefaults(t *testing.T) {
	dir := t.TempDir()
	raw := []byte(`schema_version: v1
frame_pipe: /run/relay/frames.sock
grpc_port: 8080
fanout:
  publishers: [stdout]
  stdout:
    print_counter: true
`)
	path := filepath.Join(dir, "relay.yml")
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.FramePipe != "/run/relay/frames.sock" {
		t.Fatalf("frame_pipe = %q", cfg.FramePipe)
	}
	if cfg.GRPCPort != 8080 {
		t.Fatalf("grpc_port = %d", cfg.GRPCPort)
	}
	// unset fields fall back to defaults
	if cfg.TransformPipe != DefaultTransformPipe {
		t.Fatalf("transform_pipe = %q, want default", cfg.TransformPipe)
	}
	if cfg.ReconnectBackoff != time.Second {
		t.Fatalf("reconnect_backoff = %v, want 1s", cfg.ReconnectBackoff)
	}
	if cfg.MetricsPort != 9100 {
		t.Fatalf("metrics_port = %d, want 9100", cfg.MetricsPort)
	}
	if len(cfg.Fanout.Publishers) != 1 || cfg.Fanout.Publishers[0] != "stdout" {
		t.Fatalf("fanout publishers = %v", cfg.Fanout.Publishers)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "relay.yml")
	if err := os.WriteFile(path, []byte("schema_version: v1\ngrpc_port: 8080\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("FRAMERELAY__FRAME_PIPE", "/run/env/frames.sock")
	t.Setenv("FRAMERELAY__GRPC_PORT", "6001")
	t.Setenv("FRAMERELAY__FANOUT__PUBLISHERS", "stdout")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.FramePipe != "/run/env/frames.sock" {
		t.Fatalf("env override ignored: frame_pipe = %q", cfg.FramePipe)
	}
	// env wins over the file
	if cfg.GRPCPort != 6001 {
		t.Fatalf("grpc_port = %d, want env value 6001", cfg.GRPCPort)
	}
	if len(cfg.Fanout.Publishers) != 1 || cfg.Fanout.Publishers[0] != "stdout" {
		t.Fatalf("fanout publishers = %v", cfg.Fanout.Publishers)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.FramePipe != DefaultFramePipe || cfg.TransformPipe != DefaultTransformPipe {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
}

func TestLoadInvalidSchema(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "relay.yml")
	if err := os.WriteFile(path, []byte("schema_version: v999\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for invalid schema_version")
	}
}
