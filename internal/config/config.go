package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const SupportedSchema = "v1"

// Well-known pipe endpoints, shared with the native process.
const (
	DefaultFramePipe     = "/tmp/framerelay-frames.sock"
	DefaultTransformPipe = "/tmp/framerelay-transform.sock"
)

type FanoutCfg struct {
	Publishers []string       `koanf:"publishers"`
	Kafka      map[string]any `koanf:"kafka"`
	Stdout     map[string]any `koanf:"stdout"`
}

type Config struct {
	FramePipe        string        `koanf:"frame_pipe"`
	TransformPipe    string        `koanf:"transform_pipe"`
	ReconnectBackoff time.Duration `koanf:"reconnect_backoff"`

	GRPCPort    int `koanf:"grpc_port"`
	MetricsPort int `koanf:"metrics_port"`

	Fanout FanoutCfg `koanf:"fanout"`
}

// Load merges YAML (if present) with env-vars
// (prefix `FRAMERELAY__`, delimiter `__`).
func Load(path string) (Config, error) {
	k := koanf.New(".")
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil &&
			!errors.Is(err, fs.ErrNotExist) {
			return Config{}, err
		}
	}
	// schema version check (only when YAML is present)
	sv := k.String("schema_version")
	if sv != "" && sv != SupportedSchema {
		return Config{}, fmt.Errorf("relay schema_version %q not supported (want %s)", sv, SupportedSchema)
	}

	// FRAMERELAY__FANOUT__PUBLISHERS=... ⇒ fanout.publishers
	_ = k.Load(env.Provider("FRAMERELAY__", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, "FRAMERELAY__")), "__", ".")
	}), nil)

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return cfg, err
	}
	applyDefaults(&cfg)
	return cfg, nil
}

func applyDefaults(c *Config) {
	if c.FramePipe == "" {
		c.FramePipe = DefaultFramePipe
	}
	if c.TransformPipe == "" {
		c.TransformPipe = DefaultTransformPipe
	}
	if c.ReconnectBackoff == 0 {
		c.ReconnectBackoff = time.Second
	}
	if c.GRPCPort == 0 {
		c.GRPCPort = 7070
	}
	if c.MetricsPort == 0 {
		c.MetricsPort = 9100
	}
}
