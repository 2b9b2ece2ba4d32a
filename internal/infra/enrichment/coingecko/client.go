// Package coingecko implements enrichment.Provider on top of the CoinGecko
// public API. It is the primary price and metadata source.
package coingecko

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/shopspring/decimal"

	"github.com/gabapcia/whalewatch/internal/chain"
	"github.com/gabapcia/whalewatch/internal/enrichment"
	transporthttp "github.com/gabapcia/whalewatch/internal/pkg/transport/http"
	"github.com/gabapcia/whalewatch/internal/transfer"
)

// DefaultBaseURL is the public (demo) API root.
const DefaultBaseURL = "https://api.coingecko.com/api/v3"

type (
	// contractResponse is the subset of /coins/{platform}/contract/{address} we read.
	contractResponse struct {
		Symbol          string `json:"symbol"`
		Name            string `json:"name"`
		DetailPlatforms map[string]struct {
			DecimalPlace    *int   `json:"decimal_place"`
			ContractAddress string `json:"contract_address"`
		} `json:"detail_platforms"`
		MarketData struct {
			CurrentPrice map[string]decimal.Decimal `json:"current_price"`
		} `json:"market_data"`
	}

	// simplePriceResponse maps coin ids to their prices per currency.
	simplePriceResponse map[string]map[string]decimal.Decimal
)

type client struct {
	baseURL    string
	apiKey     string
	httpClient *retryablehttp.Client
}

var _ enrichment.Provider = (*client)(nil)

// Option customizes the client.
type Option func(*client)

// WithBaseURL overrides the API root. Default: DefaultBaseURL.
func WithBaseURL(u string) Option {
	return func(c *client) {
		c.baseURL = strings.TrimRight(u, "/")
	}
}

// WithAPIKey sets the demo API key sent as x-cg-demo-api-key.
func WithAPIKey(key string) Option {
	return func(c *client) {
		c.apiKey = key
	}
}

// WithHTTPClient replaces the default transport.
func WithHTTPClient(hc *retryablehttp.Client) Option {
	return func(c *client) {
		c.httpClient = hc
	}
}

// New creates a CoinGecko provider.
func New(opts ...Option) *client {
	c := &client{
		baseURL:    DefaultBaseURL,
		httpClient: transporthttp.NewClient(transporthttp.WithRetryMax(1)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *client) Name() string {
	return "coingecko"
}

func (c *client) header() http.Header {
	h := http.Header{}
	if c.apiKey != "" {
		h.Set("x-cg-demo-api-key", c.apiKey)
	}
	return h
}

func (c *client) TokenInfo(ctx context.Context, tokenAddress, chainName string) (enrichment.TokenInfo, error) {
	info, err := chain.Lookup(chainName)
	if err != nil {
		return enrichment.TokenInfo{}, err
	}

	if tokenAddress == "" {
		return c.nativeInfo(ctx, info)
	}

	return c.contractInfo(ctx, info, tokenAddress)
}

func (c *client) nativeInfo(ctx context.Context, info chain.Info) (enrichment.TokenInfo, error) {
	q := url.Values{}
	q.Set("ids", info.CoinGeckoNativeID)
	q.Set("vs_currencies", "usd")

	var res simplePriceResponse
	if err := transporthttp.GetJSON(ctx, c.httpClient, c.baseURL+"/simple/price?"+q.Encode(), c.header(), &res); err != nil {
		return enrichment.TokenInfo{}, err
	}

	decimals := info.NativeDecimals
	out := enrichment.TokenInfo{
		Symbol:   info.NativeSymbol,
		Name:     info.NativeName,
		Decimals: &decimals,
	}

	if usd, ok := res[info.CoinGeckoNativeID]["usd"]; ok {
		out.PriceUSD = &usd
	}

	return out, nil
}

func (c *client) contractInfo(ctx context.Context, info chain.Info, tokenAddress string) (enrichment.TokenInfo, error) {
	endpoint := fmt.Sprintf("%s/coins/%s/contract/%s",
		c.baseURL,
		url.PathEscape(info.CoinGeckoPlatform),
		url.PathEscape(strings.ToLower(tokenAddress)),
	)

	var res contractResponse
	if err := transporthttp.GetJSON(ctx, c.httpClient, endpoint, c.header(), &res); err != nil {
		var statusErr *transporthttp.StatusError
		if errors.As(err, &statusErr) && statusErr.Code == http.StatusNotFound {
			return enrichment.TokenInfo{}, fmt.Errorf("%w: %s", enrichment.ErrTokenNotFound, tokenAddress)
		}
		return enrichment.TokenInfo{}, err
	}

	out := enrichment.TokenInfo{
		Symbol: strings.ToUpper(res.Symbol),
		Name:   res.Name,
	}

	if platform, ok := res.DetailPlatforms[info.CoinGeckoPlatform]; ok &&
		platform.DecimalPlace != nil && transfer.ValidDecimals(*platform.DecimalPlace) {
		out.Decimals = platform.DecimalPlace
	}

	if usd, ok := res.MarketData.CurrentPrice["usd"]; ok {
		out.PriceUSD = &usd
	}

	return out, nil
}
