// Package dispatch delivers rendered alerts to a notification sink.
//
// The Dispatcher makes exactly one delivery attempt per call. Retries are
// layered on by wrapping the sink with NewRetryingSink, and alerts that still
// fail may be handed to a DeadLetterQueue.
package dispatch

import (
	"context"
	"errors"
	"fmt"

	"github.com/gabapcia/whalewatch/internal/alert"
)

// ErrDispatchFailed is wrapped by every *Failure.
var ErrDispatchFailed = errors.New("dispatch failed")

// Sink delivers one alert to an external channel. Implementations must be
// safe for concurrent use.
type Sink interface {
	// Name identifies the sink in logs and metrics.
	Name() string

	// Deliver sends a. It returns an error when the alert was not accepted.
	Deliver(ctx context.Context, a alert.Alert) error
}

// DeadLetterQueue keeps alerts that could not be delivered.
type DeadLetterQueue interface {
	Publish(ctx context.Context, a alert.Alert, sink string, cause error) error
}

// Dispatcher sends alerts through a sink.
type Dispatcher interface {
	// Dispatch delivers a once. Failures are returned as *Failure.
	Dispatch(ctx context.Context, a alert.Alert) error
}

// Failure describes an alert the sink did not accept.
type Failure struct {
	Sink    string
	AlertID string
	TxHash  string
	Err     error
}

func (f *Failure) Error() string {
	return fmt.Sprintf("%s: sink %s, tx %s: %v", ErrDispatchFailed, f.Sink, f.TxHash, f.Err)
}

// Unwrap exposes both ErrDispatchFailed and the sink error.
func (f *Failure) Unwrap() []error {
	return []error{ErrDispatchFailed, f.Err}
}

type nopDeadLetterQueue struct{}

func (nopDeadLetterQueue) Publish(context.Context, alert.Alert, string, error) error {
	return nil
}
