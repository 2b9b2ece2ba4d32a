// Package config loads the service configuration from WHALEWATCH_* environment
// variables and validates it.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"

	"github.com/gabapcia/whalewatch/internal/chain"
	"github.com/gabapcia/whalewatch/internal/pkg/validator"
)

// Prefix is the environment variable prefix.
const Prefix = "whalewatch"

// Sink names.
const (
	SinkDiscord = "discord"
	SinkKafka   = "kafka"
	SinkLog     = "log"
)

// Unpriced policy names.
const (
	UnpricedDrop = "drop"
	UnpricedPass = "pass"
)

var (
	// ErrInvalidThreshold is returned for a negative MIN_USD_THRESHOLD.
	ErrInvalidThreshold = errors.New("min usd threshold must not be negative")

	// ErrMissingSinkSetting is returned when the selected sink lacks its endpoint.
	ErrMissingSinkSetting = errors.New("missing sink setting")
)

// Config is the full runtime configuration.
type Config struct {
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	ServiceName string `envconfig:"SERVICE_NAME" default:"whalewatch" validate:"required"`

	TelemetryEnabled bool `envconfig:"TELEMETRY_ENABLED" default:"false"`

	HTTPAddr       string        `envconfig:"HTTP_ADDR" default:":8080" validate:"required"`
	MaxBodyBytes   int64         `envconfig:"MAX_BODY_BYTES" default:"1048576" validate:"gt=0"`
	MaxConcurrency int           `envconfig:"MAX_CONCURRENCY" default:"8" validate:"gt=0"`
	BatchTimeout   time.Duration `envconfig:"BATCH_TIMEOUT" default:"30s" validate:"gt=0"`

	Chain            string          `envconfig:"CHAIN" default:"ethereum" validate:"required"`
	MinUSDThreshold  decimal.Decimal `envconfig:"MIN_USD_THRESHOLD" default:"10000"`
	UnpricedPolicy   string          `envconfig:"UNPRICED_POLICY" default:"drop" validate:"oneof=drop pass"`
	WatchedAddresses []string        `envconfig:"WATCHED_ADDRESSES"`

	ExplorerBaseURL   string `envconfig:"EXPLORER_BASE_URL" default:"https://etherscan.io" validate:"url"`
	TruncateAddresses bool   `envconfig:"TRUNCATE_ADDRESSES" default:"true"`

	EnrichmentTimeout time.Duration `envconfig:"ENRICHMENT_TIMEOUT" default:"3s" validate:"gt=0"`
	TokenCacheSize    int           `envconfig:"TOKEN_CACHE_SIZE" default:"1024" validate:"gte=0"`
	TokenCacheTTL     time.Duration `envconfig:"TOKEN_CACHE_TTL" default:"10m" validate:"gte=0"`

	CoinGeckoBaseURL string `envconfig:"COINGECKO_BASE_URL" default:"https://api.coingecko.com/api/v3" validate:"url"`
	CoinGeckoAPIKey  string `envconfig:"COINGECKO_API_KEY"`
	EthplorerBaseURL string `envconfig:"ETHPLORER_BASE_URL" default:"https://api.ethplorer.io" validate:"url"`
	EthplorerAPIKey  string `envconfig:"ETHPLORER_API_KEY" default:"freekey"`
	EtherscanAPIURL  string `envconfig:"ETHERSCAN_API_URL" default:"https://api.etherscan.io/v2/api" validate:"url"`
	EtherscanAPIKey  string `envconfig:"ETHERSCAN_API_KEY"`

	NodeRPCURL string `envconfig:"NODE_RPC_URL" validate:"omitempty,url"`

	Sink                  string        `envconfig:"SINK" default:"log" validate:"oneof=discord kafka log"`
	DispatchTimeout       time.Duration `envconfig:"DISPATCH_TIMEOUT" default:"5s" validate:"gt=0"`
	DispatchRetryAttempts uint          `envconfig:"DISPATCH_RETRY_ATTEMPTS" default:"0"`
	DiscordWebhookURL     string        `envconfig:"DISCORD_WEBHOOK_URL" validate:"omitempty,url"`
	KafkaBrokers          []string      `envconfig:"KAFKA_BROKERS"`
	KafkaTopic            string        `envconfig:"KAFKA_TOPIC" default:"whale-alerts"`

	RedisAddr     string `envconfig:"REDIS_ADDR"`
	RedisUsername string `envconfig:"REDIS_USERNAME"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0" validate:"gte=0"`

	DedupTTL       time.Duration `envconfig:"DEDUP_TTL" default:"1h" validate:"gte=0"`
	DedupCacheSize int           `envconfig:"DEDUP_CACHE_SIZE" default:"10000" validate:"gte=0"`

	NATSURL       string `envconfig:"NATS_URL"`
	DLQSubject    string `envconfig:"DLQ_SUBJECT" default:"whalewatch"`
	DLQStreamName string `envconfig:"DLQ_STREAM" default:"WHALEWATCH_DLQ"`
}

// Load reads the environment and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to load config: %w", err)
	}

	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c *Config) normalize() {
	c.Chain = strings.ToLower(strings.TrimSpace(c.Chain))
	c.ExplorerBaseURL = strings.TrimRight(c.ExplorerBaseURL, "/")
	c.WatchedAddresses = trimEmpty(c.WatchedAddresses)
	c.KafkaBrokers = trimEmpty(c.KafkaBrokers)
}

// Validate checks struct tags and the cross-field rules tags cannot express.
func (c Config) Validate() error {
	var errs []error

	if err := validator.Validate(c); err != nil {
		errs = append(errs, err)
	}

	if _, err := chain.Lookup(c.Chain); err != nil {
		errs = append(errs, err)
	}

	if c.MinUSDThreshold.IsNegative() {
		errs = append(errs, ErrInvalidThreshold)
	}

	for _, addr := range c.WatchedAddresses {
		if err := validator.Var(addr, "eth_addr"); err != nil {
			errs = append(errs, fmt.Errorf("watched address %q: %w", addr, err))
		}
	}

	switch c.Sink {
	case SinkDiscord:
		if c.DiscordWebhookURL == "" {
			errs = append(errs, fmt.Errorf("%w: DISCORD_WEBHOOK_URL is required for the discord sink", ErrMissingSinkSetting))
		}
	case SinkKafka:
		if len(c.KafkaBrokers) == 0 {
			errs = append(errs, fmt.Errorf("%w: KAFKA_BROKERS is required for the kafka sink", ErrMissingSinkSetting))
		}
	}

	return errors.Join(errs...)
}

func trimEmpty(values []string) []string {
	out := values[:0]
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
