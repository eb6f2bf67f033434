// Package fanout re-publishes inbound transform updates outside the process.
// Drivers register themselves by name, mirroring the publisher registry
// pattern used for pluggable outputs.
package fanout

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"framerelay/internal/wire"
)

// Publisher is the common behaviour every fanout driver exposes.
type Publisher interface {
	Configure(raw map[string]any) error // driver-specific YAML block ⇒ struct
	Publish(m wire.Matrix) error        // consume one transform update
	Close() error                       // idempotent
}

type factory = func() Publisher

var reg = map[string]factory{}

func Register(name string, f factory) { reg[name] = f }

func New(name string) (Publisher, error) {
	if f, ok := reg[name]; ok {
		return f(), nil
	}
	return nil, fmt.Errorf("unknown fanout publisher %q", name)
}

// Decode maps a raw config block onto a driver's typed config via a YAML
// round trip, so drivers keep plain `yaml` struct tags.
func Decode(raw map[string]any, out any) error {
	b, err := yaml.Marshal(raw)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(b, out)
}
