// Package deadletter keeps undeliverable alerts in a NATS JetStream stream so
// they can be inspected or replayed later.
package deadletter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/gabapcia/whalewatch/internal/alert"
	"github.com/gabapcia/whalewatch/internal/dispatch"
	"github.com/gabapcia/whalewatch/internal/pkg/logger"
	transporthttp "github.com/gabapcia/whalewatch/internal/pkg/transport/http"
)

// Failure reasons used as the last subject token.
const (
	ReasonTimeout     = "timeout"
	ReasonRejected    = "rejected"
	ReasonUnavailable = "unavailable"
)

// FailedAlert is the message stored for every undeliverable alert.
type FailedAlert struct {
	Timestamp time.Time   `json:"timestamp"`
	Sink      string      `json:"sink"`
	Reason    string      `json:"reason"`
	Error     string      `json:"error"`
	Alert     alert.Alert `json:"alert"`
}

// publisher is the subset of jetstream.JetStream the queue needs.
type publisher interface {
	Publish(ctx context.Context, subject string, payload []byte, opts ...jetstream.PublishOpt) (*jetstream.PubAck, error)
}

type deadLetterQueue struct {
	js            publisher
	subjectPrefix string
	now           func() time.Time
}

var _ dispatch.DeadLetterQueue = (*deadLetterQueue)(nil)

// Connect dials NATS with reconnect handling and returns a JetStream handle.
// The caller owns the returned connection.
func Connect(url, name string) (*nats.Conn, jetstream.JetStream, error) {
	nc, err := nats.Connect(url,
		nats.Name(name),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.Timeout(5*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn(context.Background(), "nats disconnected", "error", err)
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			logger.Info(context.Background(), "nats reconnected", "nats.url", c.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to nats: %w", err)
	}

	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		return nil, nil, fmt.Errorf("failed to create jetstream context: %w", err)
	}

	return nc, js, nil
}

// EnsureStream creates or updates the stream capturing <subjectPrefix>.dlq.>.
func EnsureStream(ctx context.Context, js jetstream.JetStream, name, subjectPrefix string) error {
	_, err := js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:      name,
		Subjects:  []string{subjectPrefix + ".dlq.>"},
		MaxAge:    7 * 24 * time.Hour,
		Retention: jetstream.LimitsPolicy,
		Storage:   jetstream.FileStorage,
	})
	if err != nil {
		return fmt.Errorf("failed to create dead-letter stream %s: %w", name, err)
	}
	return nil
}

// NewDeadLetterQueue publishes failed alerts on <subjectPrefix>.dlq.<reason>.
func NewDeadLetterQueue(js publisher, subjectPrefix string) *deadLetterQueue {
	return &deadLetterQueue{
		js:            js,
		subjectPrefix: subjectPrefix,
		now:           time.Now,
	}
}

func (q *deadLetterQueue) Publish(ctx context.Context, a alert.Alert, sink string, cause error) error {
	reason := Reason(cause)

	data, err := json.Marshal(FailedAlert{
		Timestamp: q.now().UTC(),
		Sink:      sink,
		Reason:    reason,
		Error:     errorString(cause),
		Alert:     a,
	})
	if err != nil {
		return err
	}

	subject := fmt.Sprintf("%s.dlq.%s", q.subjectPrefix, reason)

	opts := []jetstream.PublishOpt{}
	if a.ID != "" {
		opts = append(opts, jetstream.WithMsgID(a.ID))
	}

	if _, err := q.js.Publish(ctx, subject, data, opts...); err != nil {
		return fmt.Errorf("failed to publish dead letter: %w", err)
	}

	return nil
}

// Reason classifies a delivery error into a subject token.
func Reason(err error) string {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return ReasonTimeout
	case transporthttp.IsPermanent(err):
		return ReasonRejected
	default:
		return ReasonUnavailable
	}
}

func errorString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
