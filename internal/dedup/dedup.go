// Package dedup keeps a transfer seen in two deliveries (or two payload
// shapes) from producing two alerts. Claims are bounded by a TTL; this is
// not an exactly-once guarantee across restarts.
package dedup

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrAlreadyDelivered is returned when an alert for the id was already sent.
	ErrAlreadyDelivered = errors.New("alert already delivered")

	// ErrInFlight is returned when another worker currently holds the claim.
	ErrInFlight = errors.New("alert delivery in flight")
)

// Guard stores claims keyed by event id.
type Guard interface {
	// Claim reserves id for ttl. It returns ErrAlreadyDelivered or ErrInFlight
	// when the id is taken.
	Claim(ctx context.Context, id string, ttl time.Duration) error

	// MarkDelivered records that the alert for id was sent. The record
	// expires after ttl.
	MarkDelivered(ctx context.Context, id string, ttl time.Duration) error

	// Release drops a claim so a later delivery may retry.
	Release(ctx context.Context, id string) error
}

// Service wraps a Guard with the pipeline's fail-open policy.
type Service interface {
	// Begin reports whether the caller should deliver the alert for id.
	// Empty ids and guard failures always return true.
	Begin(ctx context.Context, id string) bool

	// Finish completes the claim taken by Begin: delivered alerts are
	// recorded, failed ones are released.
	Finish(ctx context.Context, id string, delivered bool)
}

type nopGuard struct{}

func (nopGuard) Claim(context.Context, string, time.Duration) error {
	return nil
}

func (nopGuard) MarkDelivered(context.Context, string, time.Duration) error {
	return nil
}

func (nopGuard) Release(context.Context, string) error {
	return nil
}
