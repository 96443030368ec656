package metrics

import (
	"context"
)

// Sink accepts a batch of samples. Implementations are shared across
// requests and must be safe for concurrent use.
type Sink interface {
	Put(ctx context.Context, samples []Sample) error
}

// SinkFunc adapts a function to a Sink.
type SinkFunc func(ctx context.Context, samples []Sample) error

func (f SinkFunc) Put(ctx context.Context, samples []Sample) error {
	return f(ctx, samples)
}
