package metrics

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"
)

// ErrorFunc receives the batch a sink failed to accept.
type ErrorFunc func(err error, samples []Sample)

type Option func(*Emitter)

// WithNamespace sets the namespace stamped on samples that carry none.
func WithNamespace(ns string) Option {
	return func(e *Emitter) { e.namespace = ns }
}

// WithTimeout bounds each dispatch. Zero means no deadline.
func WithTimeout(d time.Duration) Option {
	return func(e *Emitter) { e.timeout = d }
}

// WithErrorFunc replaces the failure callback. The default drops errors.
func WithErrorFunc(fn ErrorFunc) Option {
	return func(e *Emitter) { e.onError = fn }
}

// Emitter dispatches samples to a Sink without blocking the caller.
// A nil *Emitter is valid and discards everything.
type Emitter struct {
	sink      Sink
	namespace string
	timeout   time.Duration
	onError   ErrorFunc
	now       func() time.Time

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

func NewEmitter(sink Sink, opts ...Option) *Emitter {
	e := &Emitter{
		sink:    sink,
		onError: func(error, []Sample) {},
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Emit hands samples to the sink on a separate goroutine and returns
// immediately. The dispatch outlives ctx cancellation but keeps its values:
// an instrumented sink client parents its spans on the caller's span.
func (e *Emitter) Emit(ctx context.Context, samples ...Sample) {
	if e == nil || e.sink == nil || len(samples) == 0 {
		return
	}

	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.wg.Add(1)
	e.mu.Unlock()

	batch := e.stamp(samples)
	ctx = context.WithoutCancel(ctx)

	go func() {
		defer e.wg.Done()
		e.dispatch(ctx, batch)
	}()
}

func (e *Emitter) dispatch(ctx context.Context, batch []Sample) {
	defer func() {
		if rec := recover(); rec != nil {
			e.onError(fmt.Errorf("metrics sink panic: %v", rec), batch)
		}
	}()

	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	if err := e.sink.Put(ctx, batch); err != nil {
		e.onError(err, batch)
	}
}

func (e *Emitter) stamp(samples []Sample) []Sample {
	now := e.now()
	batch := make([]Sample, len(samples))
	for i, s := range samples {
		if s.Namespace == "" {
			s.Namespace = e.namespace
		}
		if s.Timestamp.IsZero() {
			s.Timestamp = now
		}
		batch[i] = s
	}
	return batch
}

// Wait blocks until every dispatch started so far has finished.
func (e *Emitter) Wait() {
	if e == nil {
		return
	}
	e.wg.Wait()
}

// Close stops accepting samples, drains in-flight dispatches and closes the
// sink when it holds resources.
func (e *Emitter) Close() error {
	if e == nil {
		return nil
	}

	e.mu.Lock()
	e.closed = true
	e.mu.Unlock()

	e.wg.Wait()

	if c, ok := e.sink.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
