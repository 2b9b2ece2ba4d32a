// Package discord delivers alerts as Discord webhook embeds.
package discord

import (
	"context"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/gabapcia/whalewatch/internal/alert"
	"github.com/gabapcia/whalewatch/internal/dispatch"
	transporthttp "github.com/gabapcia/whalewatch/internal/pkg/transport/http"
)

const (
	// embedColor is the accent bar colour of every alert embed.
	embedColor = 0x1E88E5

	// maxFieldValue is Discord's limit for an embed field value.
	maxFieldValue = 1024
)

type (
	embedField struct {
		Name   string `json:"name"`
		Value  string `json:"value"`
		Inline bool   `json:"inline"`
	}

	embedFooter struct {
		Text string `json:"text"`
	}

	embed struct {
		Title     string       `json:"title"`
		URL       string       `json:"url,omitempty"`
		Color     int          `json:"color"`
		Fields    []embedField `json:"fields"`
		Timestamp string       `json:"timestamp,omitempty"`
		Footer    *embedFooter `json:"footer,omitempty"`
	}

	webhookMessage struct {
		Username string  `json:"username,omitempty"`
		Embeds   []embed `json:"embeds"`
	}
)

type webhook struct {
	url        string
	username   string
	httpClient *retryablehttp.Client
}

var _ dispatch.Sink = (*webhook)(nil)

// Option customizes the webhook sink.
type Option func(*webhook)

// WithUsername overrides the webhook's display name.
func WithUsername(name string) Option {
	return func(w *webhook) {
		w.username = name
	}
}

// WithHTTPClient replaces the default transport.
func WithHTTPClient(hc *retryablehttp.Client) Option {
	return func(w *webhook) {
		w.httpClient = hc
	}
}

// New creates a sink posting to the given webhook URL. The default
// transport does not retry; wrap the sink with dispatch.NewRetryingSink
// for that.
func New(url string, opts ...Option) *webhook {
	w := &webhook{
		url:        url,
		username:   "whalewatch",
		httpClient: transporthttp.NewClient(transporthttp.WithRetryMax(0)),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

func (w *webhook) Name() string {
	return "discord"
}

func (w *webhook) Deliver(ctx context.Context, a alert.Alert) error {
	return transporthttp.PostJSON(ctx, w.httpClient, w.url, nil, w.message(a), nil)
}

func (w *webhook) message(a alert.Alert) webhookMessage {
	e := embed{
		Title:  a.Title,
		URL:    a.URL,
		Color:  embedColor,
		Fields: make([]embedField, 0, len(a.Fields)),
		Footer: &embedFooter{Text: a.Chain},
	}

	if !a.Timestamp.IsZero() {
		e.Timestamp = a.Timestamp.UTC().Format(time.RFC3339)
	}

	for _, f := range a.Fields {
		value := f.Value
		if len(value) > maxFieldValue {
			value = value[:maxFieldValue-3] + "..."
		}
		e.Fields = append(e.Fields, embedField{Name: f.Name, Value: value, Inline: f.Inline})
	}

	return webhookMessage{
		Username: w.username,
		Embeds:   []embed{e},
	}
}
