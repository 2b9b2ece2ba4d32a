package enrichment

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/gabapcia/whalewatch/internal/metrics"
	"github.com/gabapcia/whalewatch/internal/payload"
	"github.com/gabapcia/whalewatch/internal/pkg/logger"
	"github.com/gabapcia/whalewatch/internal/pkg/telemetry"
	"github.com/gabapcia/whalewatch/internal/transfer"
)

// config holds optional settings for the gateway.
type config struct {
	providerTimeout time.Duration
	fetcher         TransactionFetcher
	cacheSize       int
	cacheTTL        time.Duration
}

// Option customizes the gateway.
type Option func(*config)

// WithProviderTimeout bounds every individual provider and fetcher call.
// Default: 3 seconds.
func WithProviderTimeout(d time.Duration) Option {
	return func(c *config) {
		c.providerTimeout = d
	}
}

// WithTransactionFetcher sets the fetcher used by ResolveDetail.
// Default: none, detail is never resolved.
func WithTransactionFetcher(f TransactionFetcher) Option {
	return func(c *config) {
		c.fetcher = f
	}
}

// WithCache bounds the token info cache. A size of zero disables caching.
// Default: 1024 entries for 10 minutes.
func WithCache(size int, ttl time.Duration) Option {
	return func(c *config) {
		c.cacheSize = size
		c.cacheTTL = ttl
	}
}

type service struct {
	providers       []Provider
	fetcher         TransactionFetcher
	providerTimeout time.Duration
	cache           *expirable.LRU[string, TokenInfo]
}

var _ Service = (*service)(nil)

// New builds a gateway asking providers in the given order.
func New(providers []Provider, opts ...Option) *service {
	cfg := config{
		providerTimeout: 3 * time.Second,
		fetcher:         nopFetcher{},
		cacheSize:       1024,
		cacheTTL:        10 * time.Minute,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	s := &service{
		providers:       providers,
		fetcher:         cfg.fetcher,
		providerTimeout: cfg.providerTimeout,
	}
	if cfg.cacheSize > 0 {
		s.cache = expirable.NewLRU[string, TokenInfo](cfg.cacheSize, nil, cfg.cacheTTL)
	}

	return s
}

func cacheKey(tokenAddress, chain string) string {
	return strings.ToLower(chain) + ":" + transfer.NormalizeAddress(tokenAddress)
}

func (s *service) Lookup(ctx context.Context, tokenAddress, chain string) TokenInfo {
	if tokenAddress == transfer.UnknownAddress {
		return TokenInfo{}
	}

	key := cacheKey(tokenAddress, chain)
	if s.cache != nil {
		if info, ok := s.cache.Get(key); ok {
			metrics.TokenCacheLookups.WithLabelValues("hit").Inc()
			return info
		}
		metrics.TokenCacheLookups.WithLabelValues("miss").Inc()
	}

	for _, p := range s.providers {
		info, err := s.query(ctx, p, tokenAddress, chain)
		if err != nil {
			logger.Warn(ctx, "enrichment provider unavailable",
				"provider.name", p.Name(),
				"token.address", tokenAddress,
				"chain", chain,
				"error", err,
			)
			continue
		}

		if info.Symbol == "" {
			continue
		}

		if s.cache != nil {
			s.cache.Add(key, info)
		}
		return info
	}

	if ctx.Err() == nil {
		logger.Warn(ctx, "no enrichment provider answered", "token.address", tokenAddress, "chain", chain)
	}
	return TokenInfo{}
}

// query runs one provider call under its own deadline.
func (s *service) query(ctx context.Context, p Provider, tokenAddress, chain string) (TokenInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, s.providerTimeout)
	defer cancel()

	ctx, span := telemetry.Tracer().Start(ctx, "enrichment.provider")
	defer span.End()
	span.SetAttributes(
		attribute.String("provider.name", p.Name()),
		attribute.String("token.address", tokenAddress),
	)

	start := time.Now()
	info, err := p.TokenInfo(ctx, tokenAddress, chain)
	metrics.EnrichmentDuration.WithLabelValues(p.Name()).Observe(time.Since(start).Seconds())

	switch {
	case err != nil:
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		metrics.EnrichmentRequests.WithLabelValues(p.Name(), "error").Inc()
	case info.Symbol == "":
		metrics.EnrichmentRequests.WithLabelValues(p.Name(), "empty").Inc()
	default:
		metrics.EnrichmentRequests.WithLabelValues(p.Name(), "success").Inc()
	}

	return info, err
}

func (s *service) Enrich(ctx context.Context, e *transfer.Event, chain string) {
	tokenAddress := ""
	if e.Kind == transfer.KindTokenTransfer {
		tokenAddress = e.TokenAddress
	}

	info := s.Lookup(ctx, tokenAddress, chain)

	if info.Decimals != nil {
		e.SetDecimals(*info.Decimals)
	}
	if e.Symbol == "" {
		e.Symbol = info.Symbol
	}
	if e.TokenName == "" {
		e.TokenName = info.Name
	}

	if e.USDValue == nil && info.PriceUSD != nil {
		usd := e.DisplayAmount().Mul(*info.PriceUSD)
		e.USDValue = &usd
	}
}

func (s *service) ResolveDetail(ctx context.Context, c *payload.Candidate) bool {
	if !c.NeedsDetail {
		return true
	}
	if c.TxHash == "" {
		return false
	}

	ctx, cancel := context.WithTimeout(ctx, s.providerTimeout)
	defer cancel()

	detail, err := s.fetcher.FetchTransactionDetail(ctx, c.TxHash)
	if err != nil {
		if !errors.Is(err, ErrFetcherNotConfigured) {
			logger.Warn(ctx, "transaction detail unavailable", "event.tx_hash", c.TxHash, "error", err)
		}
		return false
	}

	if c.From == "" {
		c.From = detail.From
	}
	if c.To == "" {
		c.To = detail.To
	}
	if c.Value == "" && c.DisplayValue == "" {
		c.Value = detail.Value
	}
	if c.BlockNumber == "" {
		c.BlockNumber = detail.BlockNumber
	}

	c.NeedsDetail = false
	return true
}
