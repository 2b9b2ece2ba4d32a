package dispatch

import (
	"context"
	"errors"

	"github.com/gabapcia/whalewatch/internal/alert"
	"github.com/gabapcia/whalewatch/internal/pkg/logger"
	"github.com/gabapcia/whalewatch/internal/pkg/resilience/retry"
	transporthttp "github.com/gabapcia/whalewatch/internal/pkg/transport/http"
)

type retryingSink struct {
	next  Sink
	retry retry.Retry
}

var _ Sink = (*retryingSink)(nil)

// NewRetryingSink wraps next so failed deliveries are retried with r.
// Build r with retry.WithRetryIf(Retryable) to stop on permanent failures.
func NewRetryingSink(next Sink, r retry.Retry) *retryingSink {
	return &retryingSink{
		next:  next,
		retry: r,
	}
}

func (s *retryingSink) Name() string {
	return s.next.Name()
}

func (s *retryingSink) Deliver(ctx context.Context, a alert.Alert) error {
	attempt := 0
	return s.retry.Execute(ctx, func() error {
		attempt++
		err := s.next.Deliver(ctx, a)
		if err != nil {
			logger.Debug(ctx, "sink delivery attempt failed",
				"sink.name", s.next.Name(),
				"dispatch.attempt", attempt,
				"error", err,
			)
		}
		return err
	})
}

// Retryable reports whether a delivery error may succeed on another attempt.
// Client errors other than 408 and 429 and caller cancellation are final.
func Retryable(err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return false
	default:
		return !transporthttp.IsPermanent(err)
	}
}
