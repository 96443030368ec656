package metrics

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaSink publishes every sample as a JSON message keyed by
// "<namespace>/<name>".
type KafkaSink struct {
	w     messageWriter
	topic string
}

func NewKafkaSink(brokers []string, topic string) *KafkaSink {
	return &KafkaSink{
		w: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Balancer: &kafka.LeastBytes{},
		},
		topic: topic,
	}
}

func (s *KafkaSink) Put(ctx context.Context, samples []Sample) error {
	msgs := make([]kafka.Message, 0, len(samples))
	for _, sample := range samples {
		value, err := json.Marshal(sample)
		if err != nil {
			return fmt.Errorf("encode sample %q: %w", sample.Name, err)
		}
		msgs = append(msgs, kafka.Message{
			Topic: s.topic,
			Key:   []byte(sample.Namespace + "/" + sample.Name),
			Value: value,
		})
	}
	return s.w.WriteMessages(ctx, msgs...)
}

// Close flushes and closes the underlying writer.
func (s *KafkaSink) Close() error { return s.w.Close() }
