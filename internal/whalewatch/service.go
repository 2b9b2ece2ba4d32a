// Package whalewatch runs one inbound delivery through the whole alert
// pipeline: decode, normalize, enrich, filter, de-duplicate, format and
// dispatch.
//
// Every candidate of a delivery is processed independently by a bounded
// worker pool. A failure on one candidate never affects the others.
package whalewatch

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/gabapcia/whalewatch/internal/alert"
	"github.com/gabapcia/whalewatch/internal/dedup"
	"github.com/gabapcia/whalewatch/internal/dispatch"
	"github.com/gabapcia/whalewatch/internal/enrichment"
	"github.com/gabapcia/whalewatch/internal/metrics"
	"github.com/gabapcia/whalewatch/internal/payload"
	"github.com/gabapcia/whalewatch/internal/pkg/logger"
	"github.com/gabapcia/whalewatch/internal/pkg/telemetry"
	"github.com/gabapcia/whalewatch/internal/pkg/types"
	"github.com/gabapcia/whalewatch/internal/pkg/x/chflow"
	"github.com/gabapcia/whalewatch/internal/significance"
)

// Report summarizes one processed delivery.
type Report struct {
	Candidates int   // candidates decoded from the document
	Processed  int   // candidates handed to a worker before the batch deadline
	Filtered   int   // events dropped by the significance filter
	Duplicates int   // events skipped because their alert was already claimed
	Dispatched int   // alerts accepted by the sink
	Failed     int   // alerts the sink did not accept
	DecodeErr  error // set when the document could not be decoded
}

// Service processes inbound deliveries.
type Service interface {
	// ProcessPayload runs doc through the pipeline and reports what happened.
	// It never returns an error: decode failures are logged and recorded in
	// the report, per-candidate failures are logged and counted.
	ProcessPayload(ctx context.Context, doc []byte) Report
}

// WatchList returns the runtime watched addresses of a network.
type WatchList interface {
	Watched(ctx context.Context, network string) (types.Set[string], error)
}

type nopWatchList struct{}

func (nopWatchList) Watched(context.Context, string) (types.Set[string], error) {
	return types.NewSet[string](), nil
}

type config struct {
	chain          string
	significance   significance.Config
	maxConcurrency int
	batchTimeout   time.Duration
	formatter      *alert.Formatter
	dedup          dedup.Service
	watchList      WatchList
}

// Option configures the pipeline.
type Option func(*config)

// WithChain sets the chain name used for enrichment and event ids.
// Default: ethereum.
func WithChain(name string) Option {
	return func(c *config) {
		c.chain = name
	}
}

// WithSignificance sets the significance filter configuration.
// Default: 10000 USD threshold, unpriced events dropped.
func WithSignificance(cfg significance.Config) Option {
	return func(c *config) {
		c.significance = cfg
	}
}

// WithMaxConcurrency bounds the number of candidates processed at once.
// Default: 8.
func WithMaxConcurrency(n int) Option {
	return func(c *config) {
		c.maxConcurrency = n
	}
}

// WithBatchTimeout bounds the processing of one delivery.
// Default: 30 seconds.
func WithBatchTimeout(d time.Duration) Option {
	return func(c *config) {
		c.batchTimeout = d
	}
}

// WithFormatter replaces the default alert formatter.
func WithFormatter(f *alert.Formatter) Option {
	return func(c *config) {
		c.formatter = f
	}
}

// WithDedup enables alert de-duplication.
func WithDedup(d dedup.Service) Option {
	return func(c *config) {
		c.dedup = d
	}
}

// WithWatchList merges the runtime watch list into alert direction.
func WithWatchList(w WatchList) Option {
	return func(c *config) {
		c.watchList = w
	}
}

type service struct {
	chain          string
	significance   significance.Config
	maxConcurrency int
	batchTimeout   time.Duration

	enricher   enrichment.Service
	dispatcher dispatch.Dispatcher
	formatter  *alert.Formatter
	dedup      dedup.Service
	watchList  WatchList
}

var _ Service = (*service)(nil)

// New creates the pipeline around an enrichment gateway and a dispatcher.
func New(enricher enrichment.Service, dispatcher dispatch.Dispatcher, opts ...Option) *service {
	cfg := config{
		chain: "ethereum",
		significance: significance.Config{
			MinUSDThreshold: decimal.NewFromInt(10000),
			Unpriced:        significance.PolicyDropUnpriced,
		},
		maxConcurrency: 8,
		batchTimeout:   30 * time.Second,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.formatter == nil {
		cfg.formatter = alert.NewFormatter()
	}
	if cfg.dedup == nil {
		cfg.dedup = dedup.New(nil)
	}
	if cfg.watchList == nil {
		cfg.watchList = nopWatchList{}
	}

	return &service{
		chain:          cfg.chain,
		significance:   cfg.significance,
		maxConcurrency: cfg.maxConcurrency,
		batchTimeout:   cfg.batchTimeout,
		enricher:       enricher,
		dispatcher:     dispatcher,
		formatter:      cfg.formatter,
		dedup:          cfg.dedup,
		watchList:      cfg.watchList,
	}
}

// counters are the report fields updated concurrently by workers.
type counters struct {
	filtered   atomic.Int64
	duplicates atomic.Int64
	dispatched atomic.Int64
	failed     atomic.Int64
}

func (s *service) ProcessPayload(ctx context.Context, doc []byte) Report {
	start := time.Now()
	defer func() {
		metrics.BatchDuration.Observe(time.Since(start).Seconds())
	}()

	ctx, span := telemetry.Tracer().Start(ctx, "whalewatch.process_payload")
	defer span.End()
	span.SetAttributes(attribute.Int("payload.bytes", len(doc)))

	metrics.PayloadBytesTotal.Add(float64(len(doc)))

	seq, err := payload.Decode(doc)
	if err != nil {
		metrics.PayloadsTotal.WithLabelValues("decode_error").Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.Error(ctx, "failed to decode payload", "payload.bytes", len(doc), "error", err)
		return Report{DecodeErr: err}
	}
	metrics.PayloadsTotal.WithLabelValues("decoded").Inc()

	var candidates []payload.Candidate
	for c := range seq {
		metrics.CandidatesTotal.WithLabelValues(c.Source).Inc()
		candidates = append(candidates, c)
	}
	span.SetAttributes(attribute.Int("payload.candidates", len(candidates)))

	if len(candidates) == 0 {
		logger.Debug(ctx, "payload carried no candidates")
		return Report{}
	}

	ctx, cancel := context.WithTimeout(ctx, s.batchTimeout)
	defer cancel()

	watched := s.watched(ctx)

	var c counters
	processed := chflow.ForEach(ctx, s.maxConcurrency, candidates, func(ctx context.Context, _ int, candidate payload.Candidate) {
		s.processCandidate(ctx, candidate, watched, &c)
	})

	if skipped := len(candidates) - processed; skipped > 0 {
		metrics.EventsTotal.WithLabelValues("abandoned").Add(float64(skipped))
		logger.Warn(ctx, "batch deadline reached before every candidate was processed",
			"payload.candidates", len(candidates),
			"payload.skipped", skipped,
		)
	}

	report := Report{
		Candidates: len(candidates),
		Processed:  processed,
		Filtered:   int(c.filtered.Load()),
		Duplicates: int(c.duplicates.Load()),
		Dispatched: int(c.dispatched.Load()),
		Failed:     int(c.failed.Load()),
	}

	logger.Info(ctx, "payload processed",
		"payload.candidates", report.Candidates,
		"payload.filtered", report.Filtered,
		"payload.duplicates", report.Duplicates,
		"payload.dispatched", report.Dispatched,
		"payload.failed", report.Failed,
	)

	return report
}

// watched loads the runtime watch list once per delivery. A failure only
// costs direction labels, so it is logged and an empty set is used.
func (s *service) watched(ctx context.Context) types.Set[string] {
	set, err := s.watchList.Watched(ctx, s.chain)
	if err != nil {
		logger.Warn(ctx, "failed to load watched wallets", "chain.name", s.chain, "error", err)
		return types.NewSet[string]()
	}
	return set
}

func (s *service) processCandidate(ctx context.Context, c payload.Candidate, watched types.Set[string], cnt *counters) {
	ctx, span := telemetry.Tracer().Start(ctx, "whalewatch.process_candidate")
	defer span.End()
	span.SetAttributes(
		attribute.String("candidate.source", c.Source),
		attribute.String("event.tx_hash", c.TxHash),
	)

	ctx = logger.Derive(ctx, "event.tx_hash", c.TxHash, "candidate.source", c.Source)

	if !s.enricher.ResolveDetail(ctx, &c) {
		logger.Debug(ctx, "transaction detail unresolved, continuing with payload fields")
	}

	e := payload.Normalize(c)
	if e.LowConfidence {
		metrics.LowConfidenceTotal.Inc()
		logger.Warn(ctx, "malformed amount, event marked as low confidence")
	}

	s.enricher.Enrich(ctx, &e, s.chain)

	decision := significance.Decide(e, s.significance)
	metrics.SignificanceDecisions.WithLabelValues(string(decision.Reason)).Inc()
	span.SetAttributes(attribute.String("significance.reason", string(decision.Reason)))
	if !decision.Significant {
		cnt.filtered.Add(1)
		metrics.EventsTotal.WithLabelValues("filtered").Inc()
		logger.Debug(ctx, "event filtered out", "significance.reason", string(decision.Reason))
		return
	}

	id := e.ID(s.chain)
	if !s.dedup.Begin(ctx, id) {
		cnt.duplicates.Add(1)
		metrics.EventsTotal.WithLabelValues("duplicate").Inc()
		return
	}

	a := s.formatter.Format(e, watched)

	err := s.dispatcher.Dispatch(ctx, a)
	s.dedup.Finish(ctx, id, err == nil)
	if err != nil {
		cnt.failed.Add(1)
		metrics.EventsTotal.WithLabelValues("failed").Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return
	}

	cnt.dispatched.Add(1)
	metrics.EventsTotal.WithLabelValues("dispatched").Inc()
}
