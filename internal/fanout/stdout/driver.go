package stdout

import (
	"fmt"
	"sync/atomic"

	"framerelay/internal/fanout"
	"framerelay/internal/wire"
)

type Config struct {
	PrintCounter bool `yaml:"print_counter"` // prepend seq#
	EveryN       int  `yaml:"every_n"`       // 0 or 1 = print all
}

// driver prints transform updates; mainly a debugging aid when bringing up
// the native producer.
type driver struct {
	cfg Config
	seq uint64
}

func (d *driver) Configure(raw map[string]any) error {
	if err := fanout.Decode(raw, &d.cfg); err != nil {
		return fmt.Errorf("stdout-fanout: %w", err)
	}
	return nil
}

func (d *driver) Publish(m wire.Matrix) error {
	n := atomic.AddUint64(&d.seq, 1)
	if d.cfg.EveryN > 1 && n%uint64(d.cfg.EveryN) != 0 {
		return nil
	}
	if d.cfg.PrintCounter {
		fmt.Printf("[transform %06d] %v\n", n, m)
	} else {
		fmt.Printf("[transform] %v\n", m)
	}
	return nil
}

func (d *driver) Close() error { return nil }

func init() { fanout.Register("stdout", func() fanout.Publisher { return &driver{} }) }
