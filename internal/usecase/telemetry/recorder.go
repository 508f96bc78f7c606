// Package telemetry records extractor usage events off the request path.
//
// A Recorder owns a bounded queue and one worker. Record never blocks: when
// the queue is full the newest event is dropped and counted. The worker
// stores events through a Sink with a per-event timeout and survives panics
// in the sink. Shutdown stops intake and drains what is queued.
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"

	"brewlog/internal/domain/entity"
)

// Defaults used when Config leaves a field at zero.
const (
	DefaultQueueSize    = 64
	DefaultStoreTimeout = 5 * time.Second
)

// ErrClosed is returned by Shutdown when called twice.
var ErrClosed = errors.New("telemetry recorder closed")

// Sink stores one usage event. repository.UsageRepository satisfies it.
type Sink interface {
	Insert(ctx context.Context, usage *entity.ExtractionUsage) error
}

// Config tunes a Recorder.
type Config struct {
	QueueSize    int
	StoreTimeout time.Duration
}

// Recorder is a bounded, asynchronous usage event writer.
type Recorder struct {
	sink         Sink
	storeTimeout time.Duration
	logger       *slog.Logger

	mu     sync.RWMutex // guards closed and sends on queue
	closed bool
	queue  chan entity.ExtractionUsage
	done   chan struct{}
}

// NewRecorder starts a Recorder writing to sink.
func NewRecorder(sink Sink, cfg Config, logger *slog.Logger) *Recorder {
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = DefaultQueueSize
	}
	if cfg.StoreTimeout <= 0 {
		cfg.StoreTimeout = DefaultStoreTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	r := &Recorder{
		sink:         sink,
		storeTimeout: cfg.StoreTimeout,
		logger:       logger,
		queue:        make(chan entity.ExtractionUsage, cfg.QueueSize),
		done:         make(chan struct{}),
	}
	go r.run()
	return r
}

// Record enqueues ev without blocking. It reports false when the event was
// dropped because the queue is full or the recorder is shut down.
func (r *Recorder) Record(ev entity.ExtractionUsage) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		RecordDropped("closed")
		return false
	}
	select {
	case r.queue <- ev:
		eventsEnqueuedTotal.Inc()
		queueDepth.Set(float64(len(r.queue)))
		return true
	default:
		RecordDropped("queue_full")
		r.logger.Warn("usage event dropped: queue full",
			slog.String("provider", ev.Provider),
			slog.Int("queue_size", cap(r.queue)))
		return false
	}
}

// Shutdown stops intake and waits until every queued event has been handled
// or ctx is done.
func (r *Recorder) Shutdown(ctx context.Context) error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return ErrClosed
	}
	r.closed = true
	close(r.queue)
	pending := len(r.queue)
	r.mu.Unlock()

	r.logger.Info("Shutting down usage recorder", slog.Int("pending", pending))

	select {
	case <-r.done:
		r.logger.Info("Usage recorder shutdown complete")
		return nil
	case <-ctx.Done():
		r.logger.Warn("Usage recorder shutdown timeout", slog.Int("pending", len(r.queue)))
		return fmt.Errorf("drain usage events: %w", ctx.Err())
	}
}

func (r *Recorder) run() {
	defer close(r.done)
	for ev := range r.queue {
		queueDepth.Set(float64(len(r.queue)))
		r.store(ev)
	}
	queueDepth.Set(0)
}

// store writes one event. A panicking sink costs only that event.
func (r *Recorder) store(ev entity.ExtractionUsage) {
	defer func() {
		if p := recover(); p != nil {
			RecordFailed("panic")
			r.logger.Error("Panic in usage sink",
				slog.Any("panic", p),
				slog.String("stack", string(debug.Stack())))
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), r.storeTimeout)
	defer cancel()

	if err := r.sink.Insert(ctx, &ev); err != nil {
		RecordFailed("error")
		r.logger.Warn("failed to store usage event",
			slog.String("provider", ev.Provider),
			slog.Any("error", err))
		return
	}
	eventsStoredTotal.Inc()
}
