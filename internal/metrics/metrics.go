// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Inbound metrics
	PayloadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "whalewatch_payloads_total",
			Help: "Total number of inbound payloads by decode outcome",
		},
		[]string{"outcome"},
	)

	PayloadBytesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "whalewatch_payload_bytes_total",
			Help: "Total bytes of inbound payloads",
		},
	)

	CandidatesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "whalewatch_candidates_total",
			Help: "Total number of decoded candidates by matcher",
		},
		[]string{"source"},
	)

	BatchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "whalewatch_batch_duration_seconds",
			Help:    "Duration of one payload batch in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	// Pipeline metrics
	EventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "whalewatch_events_total",
			Help: "Total number of normalized events by final outcome",
		},
		[]string{"outcome"},
	)

	LowConfidenceTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "whalewatch_low_confidence_events_total",
			Help: "Total number of events whose amount could not be parsed",
		},
	)

	SignificanceDecisions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "whalewatch_significance_decisions_total",
			Help: "Total number of significance decisions by reason",
		},
		[]string{"reason"},
	)

	// Enrichment metrics
	EnrichmentRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "whalewatch_enrichment_requests_total",
			Help: "Total number of enrichment provider calls by outcome",
		},
		[]string{"provider", "outcome"},
	)

	EnrichmentDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "whalewatch_enrichment_duration_seconds",
			Help:    "Duration of enrichment provider calls in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"provider"},
	)

	TokenCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "whalewatch_token_cache_lookups_total",
			Help: "Total number of token info cache lookups",
		},
		[]string{"result"},
	)

	// Dispatch metrics
	DispatchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "whalewatch_dispatch_total",
			Help: "Total number of dispatch attempts by sink and outcome",
		},
		[]string{"sink", "outcome"},
	)

	DispatchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "whalewatch_dispatch_duration_seconds",
			Help:    "Duration of dispatch attempts in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"sink"},
	)

	DeadLetterTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "whalewatch_dead_letter_total",
			Help: "Total number of alerts published to the dead-letter queue",
		},
		[]string{"status"},
	)

	// De-duplication metrics
	DedupTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "whalewatch_dedup_total",
			Help: "Total number of de-duplication claims by result",
		},
		[]string{"result"},
	)
)
