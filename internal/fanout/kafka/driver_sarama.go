package kafka

import (
	"fmt"

	"github.com/IBM/sarama"

	"framerelay/internal/fanout"
	"framerelay/internal/logging"
	"framerelay/internal/wire"
)

type Config struct {
	Brokers []string `yaml:"brokers"`
	Topic   string   `yaml:"topic"`
	Acks    int16    `yaml:"required_acks"` // 0,1,-1
}

// driver re-emits each transform update as one 64-byte record on a topic,
// preserving the pipe wire format so downstream consumers share the codec.
type driver struct {
	cfg Config
	p   sarama.AsyncProducer
}

func (d *driver) Configure(raw map[string]any) error {
	if err := fanout.Decode(raw, &d.cfg); err != nil {
		return fmt.Errorf("kafka-fanout: %w", err)
	}
	if len(d.cfg.Brokers) == 0 || d.cfg.Topic == "" {
		return fmt.Errorf("kafka-fanout: brokers and topic are required")
	}

	sc := sarama.NewConfig()
	sc.Producer.RequiredAcks = sarama.RequiredAcks(d.cfg.Acks)
	p, err := sarama.NewAsyncProducer(d.cfg.Brokers, sc)
	if err != nil {
		return err
	}
	d.p = p
	go func() {
		for e := range p.Errors() {
			logging.L().Warn("kafka fanout publish failed", "topic", d.cfg.Topic, "err", e.Err)
		}
	}()
	return nil
}

func (d *driver) Publish(m wire.Matrix) error {
	d.p.Input() <- &sarama.ProducerMessage{
		Topic: d.cfg.Topic,
		Value: sarama.ByteEncoder(wire.EncodeTransform(m)),
	}
	return nil
}

func (d *driver) Close() error {
	if d.p == nil {
		return nil
	}
	return d.p.Close()
}

func init() { fanout.Register("kafka", func() fanout.Publisher { return &driver{} }) }
