package dispatch

import (
	"context"

	"github.com/gabapcia/whalewatch/internal/alert"
	"github.com/gabapcia/whalewatch/internal/pkg/logger"
)

type logSink struct{}

var _ Sink = logSink{}

// NewLogSink returns a sink that writes alerts to the application log.
// It is used for dry runs.
func NewLogSink() Sink {
	return logSink{}
}

func (logSink) Name() string {
	return "log"
}

func (logSink) Deliver(ctx context.Context, a alert.Alert) error {
	logger.Info(ctx, a.Title,
		"alert.id", a.ID,
		"alert.url", a.URL,
		"alert.amount", a.Amount,
		"alert.symbol", a.Symbol,
		"alert.usd", a.USD,
		"alert.direction", string(a.Direction),
		"event.tx_hash", a.TxHash,
		"event.from", a.From,
		"event.to", a.To,
		"event.timestamp", a.Timestamp,
	)
	return nil
}
