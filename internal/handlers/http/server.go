// Package http exposes the pipeline over HTTP: the provider webhook endpoint,
// a liveness check and the Prometheus scrape endpoint.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gabapcia/whalewatch/internal/pkg/logger"
	"github.com/gabapcia/whalewatch/internal/whalewatch"
)

const (
	// WebhookPath receives provider deliveries.
	WebhookPath = "/webhook"

	// HealthPath answers liveness checks.
	HealthPath = "/healthz"

	// MetricsPath serves Prometheus metrics.
	MetricsPath = "/metrics"
)

type config struct {
	maxBodyBytes int64
	metrics      http.Handler
}

// Option configures the router.
type Option func(*config)

// WithMaxBodyBytes limits the size of a webhook body. Default: 1 MiB.
func WithMaxBodyBytes(n int64) Option {
	return func(c *config) {
		c.maxBodyBytes = n
	}
}

// WithMetricsHandler replaces the default promhttp handler.
func WithMetricsHandler(h http.Handler) Option {
	return func(c *config) {
		c.metrics = h
	}
}

type handler struct {
	svc          whalewatch.Service
	maxBodyBytes int64
}

// NewRouter builds the ServeMux serving every endpoint.
func NewRouter(svc whalewatch.Service, opts ...Option) http.Handler {
	cfg := config{
		maxBodyBytes: 1 << 20,
		metrics:      promhttp.Handler(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	h := &handler{
		svc:          svc,
		maxBodyBytes: cfg.maxBodyBytes,
	}

	mux := http.NewServeMux()
	mux.HandleFunc(WebhookPath, h.webhook)
	mux.HandleFunc(HealthPath, h.health)
	mux.Handle(MetricsPath, cfg.metrics)
	return mux
}

// webhook acknowledges every delivery it could read, including undecodable
// ones, so providers do not redeliver documents that will never parse.
func (h *handler) webhook(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			logger.Warn(r.Context(), "webhook body too large", "http.max_body_bytes", tooLarge.Limit)
			writeJSON(w, http.StatusRequestEntityTooLarge, map[string]string{"error": "payload too large"})
			return
		}

		logger.Warn(r.Context(), "failed to read webhook body", "error", err)
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unreadable body"})
		return
	}

	h.svc.ProcessPayload(r.Context(), body)

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *handler) health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// NewServer wraps handler in an http.Server listening on addr.
func NewServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}

// Serve runs srv until ctx is done, then shuts it down gracefully within
// shutdownTimeout.
func Serve(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info(ctx, "http server listening", "http.addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	logger.Info(ctx, "shutting down http server")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
