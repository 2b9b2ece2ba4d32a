package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gabapcia/whalewatch/internal/alert"
	"github.com/gabapcia/whalewatch/internal/chain"
	"github.com/gabapcia/whalewatch/internal/config"
	"github.com/gabapcia/whalewatch/internal/dedup"
	"github.com/gabapcia/whalewatch/internal/dispatch"
	"github.com/gabapcia/whalewatch/internal/enrichment"
	"github.com/gabapcia/whalewatch/internal/handlers/cli"
	handlershttp "github.com/gabapcia/whalewatch/internal/handlers/http"
	"github.com/gabapcia/whalewatch/internal/infra/blockchain/ethereum"
	"github.com/gabapcia/whalewatch/internal/infra/enrichment/coingecko"
	"github.com/gabapcia/whalewatch/internal/infra/enrichment/etherscan"
	"github.com/gabapcia/whalewatch/internal/infra/enrichment/ethplorer"
	"github.com/gabapcia/whalewatch/internal/infra/messaging/deadletter"
	"github.com/gabapcia/whalewatch/internal/infra/notification/discord"
	"github.com/gabapcia/whalewatch/internal/infra/notification/kafka"
	"github.com/gabapcia/whalewatch/internal/infra/storage/redis"
	"github.com/gabapcia/whalewatch/internal/pkg/logger"
	"github.com/gabapcia/whalewatch/internal/pkg/resilience/retry"
	"github.com/gabapcia/whalewatch/internal/pkg/telemetry"
	transporthttp "github.com/gabapcia/whalewatch/internal/pkg/transport/http"
	"github.com/gabapcia/whalewatch/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/whalewatch/internal/significance"
	"github.com/gabapcia/whalewatch/internal/walletregistry"
	"github.com/gabapcia/whalewatch/internal/whalewatch"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// closers run in reverse registration order on shutdown.
type closers []func()

func (c *closers) add(fn func()) {
	*c = append(*c, fn)
}

func (c closers) close() {
	for i := len(c) - 1; i >= 0; i-- {
		c[i]()
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	var cleanup closers
	defer cleanup.close()

	if cfg.TelemetryEnabled {
		shutdown, err := telemetry.Init(ctx, cfg.ServiceName)
		if err != nil {
			return fmt.Errorf("failed to initialize telemetry: %w", err)
		}
		cleanup.add(func() {
			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			_ = shutdown(ctx)
		})
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	cleanup.add(func() { _ = logger.Sync() })

	info, err := chain.Lookup(cfg.Chain)
	if err != nil {
		return err
	}

	policy, err := significance.ParsePolicy(cfg.UnpricedPolicy)
	if err != nil {
		return err
	}

	var (
		walletStorage walletregistry.WalletStorage
		guard         dedup.Guard
	)
	if cfg.RedisAddr != "" {
		rdb, err := redis.NewClient(ctx, cfg.RedisAddr, cfg.RedisUsername, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return err
		}
		cleanup.add(func() { _ = rdb.Close() })

		walletStorage, guard = rdb, rdb
	} else if cfg.DedupCacheSize > 0 {
		memGuard, err := dedup.NewMemoryGuard(cfg.DedupCacheSize)
		if err != nil {
			return err
		}
		guard = memGuard
	}

	registry := walletregistry.New(walletStorage)

	sink, err := newSink(cfg, &cleanup)
	if err != nil {
		return err
	}

	dispatchOpts := []dispatch.Option{dispatch.WithTimeout(cfg.DispatchTimeout)}
	if cfg.NATSURL != "" {
		dlq, err := newDeadLetterQueue(ctx, cfg, &cleanup)
		if err != nil {
			return err
		}
		dispatchOpts = append(dispatchOpts, dispatch.WithDeadLetterQueue(dlq))
	}

	enricher := enrichment.New(newProviders(cfg, info), newEnrichmentOptions(cfg)...)

	pipelineOpts := []whalewatch.Option{
		whalewatch.WithChain(info.Name),
		whalewatch.WithSignificance(significance.Config{
			MinUSDThreshold: cfg.MinUSDThreshold,
			Unpriced:        policy,
		}),
		whalewatch.WithMaxConcurrency(cfg.MaxConcurrency),
		whalewatch.WithBatchTimeout(cfg.BatchTimeout),
		whalewatch.WithFormatter(alert.NewFormatter(
			alert.WithExplorerBaseURL(cfg.ExplorerBaseURL),
			alert.WithChain(info.Name, info.NativeSymbol),
			alert.WithTruncatedAddresses(cfg.TruncateAddresses),
			alert.WithWatchedAddresses(cfg.WatchedAddresses...),
		)),
		whalewatch.WithWatchList(registry),
	}
	if guard != nil {
		pipelineOpts = append(pipelineOpts, whalewatch.WithDedup(
			dedup.New(guard, dedup.WithDeliveredTTL(cfg.DedupTTL)),
		))
	}

	pipeline := whalewatch.New(enricher, dispatch.New(sink, dispatchOpts...), pipelineOpts...)
	dryRun := whalewatch.New(enricher, dispatch.New(dispatch.NewLogSink()), pipelineOpts...)

	srv := handlershttp.NewServer(cfg.HTTPAddr, handlershttp.NewRouter(pipeline,
		handlershttp.WithMaxBodyBytes(cfg.MaxBodyBytes),
	))
	server := cli.ServerFunc(func(ctx context.Context) error {
		return handlershttp.Serve(ctx, srv, shutdownTimeout)
	})

	return cli.Run(ctx, registry, pipeline, dryRun, server)
}

// newProviders returns the enrichment providers in priority order.
func newProviders(cfg config.Config, info chain.Info) []enrichment.Provider {
	hc := transporthttp.NewClient(transporthttp.WithTimeout(cfg.EnrichmentTimeout))

	providers := []enrichment.Provider{
		coingecko.New(
			coingecko.WithBaseURL(cfg.CoinGeckoBaseURL),
			coingecko.WithAPIKey(cfg.CoinGeckoAPIKey),
			coingecko.WithHTTPClient(hc),
		),
	}

	if info.Name == "ethereum" {
		providers = append(providers, ethplorer.New(
			ethplorer.WithBaseURL(cfg.EthplorerBaseURL),
			ethplorer.WithAPIKey(cfg.EthplorerAPIKey),
			ethplorer.WithHTTPClient(hc),
		))
	}

	if cfg.EtherscanAPIKey != "" {
		providers = append(providers, etherscan.New(
			etherscan.WithAPIURL(cfg.EtherscanAPIURL),
			etherscan.WithAPIKey(cfg.EtherscanAPIKey),
			etherscan.WithHTTPClient(hc),
		))
	}

	return providers
}

func newEnrichmentOptions(cfg config.Config) []enrichment.Option {
	opts := []enrichment.Option{
		enrichment.WithProviderTimeout(cfg.EnrichmentTimeout),
		enrichment.WithCache(cfg.TokenCacheSize, cfg.TokenCacheTTL),
	}

	if cfg.NodeRPCURL != "" {
		conn := jsonrpc.NewClient(cfg.NodeRPCURL, transporthttp.WithTimeout(cfg.EnrichmentTimeout))
		opts = append(opts, enrichment.WithTransactionFetcher(ethereum.NewClient(conn)))
	}

	return opts
}

// newSink builds the configured sink, wrapped with retries when enabled.
func newSink(cfg config.Config, cleanup *closers) (dispatch.Sink, error) {
	var sink dispatch.Sink

	switch cfg.Sink {
	case config.SinkDiscord:
		sink = discord.New(cfg.DiscordWebhookURL,
			discord.WithHTTPClient(transporthttp.NewClient(
				transporthttp.WithTimeout(cfg.DispatchTimeout),
				transporthttp.WithRetryMax(0),
			)),
		)
	case config.SinkKafka:
		p, err := kafka.NewSyncProducer(cfg.KafkaBrokers, cfg.ServiceName)
		if err != nil {
			return nil, err
		}
		producer := kafka.New(p, cfg.KafkaTopic)
		cleanup.add(func() { _ = producer.Close() })
		sink = producer
	case config.SinkLog:
		sink = dispatch.NewLogSink()
	default:
		return nil, fmt.Errorf("unknown sink %q", cfg.Sink)
	}

	if cfg.DispatchRetryAttempts == 0 {
		return sink, nil
	}

	return dispatch.NewRetryingSink(sink, retry.New(
		retry.WithAttempts(cfg.DispatchRetryAttempts+1),
		retry.WithDelay(500*time.Millisecond),
		retry.WithMaxDelay(5*time.Second),
		retry.WithRetryIf(dispatch.Retryable),
	)), nil
}

func newDeadLetterQueue(ctx context.Context, cfg config.Config, cleanup *closers) (dispatch.DeadLetterQueue, error) {
	nc, js, err := deadletter.Connect(cfg.NATSURL, cfg.ServiceName)
	if err != nil {
		return nil, err
	}
	cleanup.add(func() { _ = nc.Drain() })

	if err := deadletter.EnsureStream(ctx, js, cfg.DLQStreamName, cfg.DLQSubject); err != nil {
		return nil, err
	}

	return deadletter.NewDeadLetterQueue(js, cfg.DLQSubject), nil
}
