package dispatch

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/gabapcia/whalewatch/internal/alert"
	"github.com/gabapcia/whalewatch/internal/metrics"
	"github.com/gabapcia/whalewatch/internal/pkg/logger"
	"github.com/gabapcia/whalewatch/internal/pkg/telemetry"
)

type config struct {
	timeout    time.Duration
	deadLetter DeadLetterQueue
	dlqEnabled bool
}

// Option customizes the dispatcher.
type Option func(*config)

// WithTimeout bounds a single delivery, retries included. Default: 5 seconds.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		c.timeout = d
	}
}

// WithDeadLetterQueue publishes failed alerts to q.
func WithDeadLetterQueue(q DeadLetterQueue) Option {
	return func(c *config) {
		c.deadLetter = q
		c.dlqEnabled = q != nil
	}
}

type service struct {
	sink       Sink
	timeout    time.Duration
	deadLetter DeadLetterQueue
	dlqEnabled bool
}

var _ Dispatcher = (*service)(nil)

// New creates a Dispatcher delivering to sink.
func New(sink Sink, opts ...Option) *service {
	cfg := config{
		timeout:    5 * time.Second,
		deadLetter: nopDeadLetterQueue{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.deadLetter == nil {
		cfg.deadLetter = nopDeadLetterQueue{}
	}

	return &service{
		sink:       sink,
		timeout:    cfg.timeout,
		deadLetter: cfg.deadLetter,
		dlqEnabled: cfg.dlqEnabled,
	}
}

func (s *service) Dispatch(ctx context.Context, a alert.Alert) error {
	sinkName := s.sink.Name()

	ctx, span := telemetry.Tracer().Start(ctx, "dispatch.deliver")
	defer span.End()
	span.SetAttributes(
		attribute.String("sink.name", sinkName),
		attribute.String("event.tx_hash", a.TxHash),
	)

	deliverCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	err := s.sink.Deliver(deliverCtx, a)
	metrics.DispatchDuration.WithLabelValues(sinkName).Observe(time.Since(start).Seconds())

	if err == nil {
		metrics.DispatchTotal.WithLabelValues(sinkName, "success").Inc()
		logger.Info(ctx, "alert dispatched",
			"sink.name", sinkName,
			"event.tx_hash", a.TxHash,
			"alert.id", a.ID,
		)
		return nil
	}

	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	metrics.DispatchTotal.WithLabelValues(sinkName, "failure").Inc()
	logger.Error(ctx, "alert dispatch failed",
		"sink.name", sinkName,
		"event.tx_hash", a.TxHash,
		"alert.id", a.ID,
		"error", err,
	)

	s.publishDeadLetter(ctx, a, sinkName, err)

	return &Failure{
		Sink:    sinkName,
		AlertID: a.ID,
		TxHash:  a.TxHash,
		Err:     err,
	}
}

// publishDeadLetter runs detached from the caller's cancellation so a batch
// deadline does not also lose the failed alert.
func (s *service) publishDeadLetter(ctx context.Context, a alert.Alert, sinkName string, cause error) {
	if !s.dlqEnabled {
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
	defer cancel()

	if err := s.deadLetter.Publish(ctx, a, sinkName, cause); err != nil {
		metrics.DeadLetterTotal.WithLabelValues("error").Inc()
		logger.Error(ctx, "failed to publish alert to dead-letter queue",
			"event.tx_hash", a.TxHash,
			"error", err,
		)
		return
	}

	metrics.DeadLetterTotal.WithLabelValues("published").Inc()
}
