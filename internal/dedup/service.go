package dedup

import (
	"context"
	"errors"
	"time"

	"github.com/gabapcia/whalewatch/internal/metrics"
	"github.com/gabapcia/whalewatch/internal/pkg/logger"
)

type config struct {
	claimTTL     time.Duration
	deliveredTTL time.Duration
}

// Option customizes the service.
type Option func(*config)

// WithClaimTTL bounds how long an unfinished claim blocks other workers.
// Default: 1 minute.
func WithClaimTTL(d time.Duration) Option {
	return func(c *config) {
		c.claimTTL = d
	}
}

// WithDeliveredTTL sets how long a delivered id is remembered.
// Default: 1 hour.
func WithDeliveredTTL(d time.Duration) Option {
	return func(c *config) {
		c.deliveredTTL = d
	}
}

type service struct {
	guard        Guard
	claimTTL     time.Duration
	deliveredTTL time.Duration
}

var _ Service = (*service)(nil)

// New creates a Service backed by guard. A nil guard disables
// de-duplication.
func New(guard Guard, opts ...Option) *service {
	cfg := config{
		claimTTL:     time.Minute,
		deliveredTTL: time.Hour,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if guard == nil {
		guard = nopGuard{}
	}

	return &service{
		guard:        guard,
		claimTTL:     cfg.claimTTL,
		deliveredTTL: cfg.deliveredTTL,
	}
}

func (s *service) Begin(ctx context.Context, id string) bool {
	if id == "" {
		metrics.DedupTotal.WithLabelValues("skipped").Inc()
		return true
	}

	err := s.guard.Claim(ctx, id, s.claimTTL)
	switch {
	case err == nil:
		metrics.DedupTotal.WithLabelValues("claimed").Inc()
		return true
	case errors.Is(err, ErrAlreadyDelivered):
		metrics.DedupTotal.WithLabelValues("duplicate").Inc()
		logger.Info(ctx, "alert already delivered, skipping", "event.id", id)
		return false
	case errors.Is(err, ErrInFlight):
		metrics.DedupTotal.WithLabelValues("in_flight").Inc()
		logger.Info(ctx, "alert delivery in flight elsewhere, skipping", "event.id", id)
		return false
	default:
		metrics.DedupTotal.WithLabelValues("error").Inc()
		logger.Warn(ctx, "dedup guard unavailable, delivering anyway", "event.id", id, "error", err)
		return true
	}
}

func (s *service) Finish(ctx context.Context, id string, delivered bool) {
	if id == "" {
		return
	}

	ctx = context.WithoutCancel(ctx)

	if delivered {
		if err := s.guard.MarkDelivered(ctx, id, s.deliveredTTL); err != nil {
			logger.Warn(ctx, "failed to record delivered alert", "event.id", id, "error", err)
		}
		return
	}

	if err := s.guard.Release(ctx, id); err != nil {
		logger.Warn(ctx, "failed to release dedup claim", "event.id", id, "error", err)
	}
}
