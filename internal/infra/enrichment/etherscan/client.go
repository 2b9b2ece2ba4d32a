// Package etherscan implements enrichment.Provider using the Etherscan v2
// multichain API. It is the explorer of last resort: its token metadata is
// complete but its prices are often stale.
package etherscan

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/shopspring/decimal"

	"github.com/gabapcia/whalewatch/internal/chain"
	"github.com/gabapcia/whalewatch/internal/enrichment"
	transporthttp "github.com/gabapcia/whalewatch/internal/pkg/transport/http"
	"github.com/gabapcia/whalewatch/internal/transfer"
)

// DefaultAPIURL is the v2 endpoint shared by every supported chain.
const DefaultAPIURL = "https://api.etherscan.io/v2/api"

// ErrAPI is returned when Etherscan answers with status "0".
var ErrAPI = errors.New("etherscan api error")

type (
	envelope struct {
		Status  string          `json:"status"`
		Message string          `json:"message"`
		Result  json.RawMessage `json:"result"`
	}

	tokenInfo struct {
		Symbol        string `json:"symbol"`
		TokenName     string `json:"tokenName"`
		Divisor       string `json:"divisor"`
		TokenPriceUSD string `json:"tokenPriceUSD"`
	}

	nativePrice struct {
		USD string `json:"ethusd"`
	}
)

type client struct {
	apiURL     string
	apiKey     string
	httpClient *retryablehttp.Client
}

var _ enrichment.Provider = (*client)(nil)

// Option customizes the client.
type Option func(*client)

// WithAPIURL overrides the endpoint. Default: DefaultAPIURL.
func WithAPIURL(u string) Option {
	return func(c *client) {
		c.apiURL = u
	}
}

// WithAPIKey sets the API key.
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

// New creates an Etherscan provider.
func New(opts ...Option) *client {
	c := &client{
		apiURL:     DefaultAPIURL,
		httpClient: transporthttp.NewClient(transporthttp.WithRetryMax(1)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *client) Name() string {
	return "etherscan"
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

func (c *client) call(ctx context.Context, info chain.Info, q url.Values, out any) error {
	q.Set("chainid", strconv.FormatInt(info.ChainID, 10))
	if c.apiKey != "" {
		q.Set("apikey", c.apiKey)
	}

	var env envelope
	if err := transporthttp.GetJSON(ctx, c.httpClient, c.apiURL+"?"+q.Encode(), nil, &env); err != nil {
		return err
	}

	if env.Status != "1" {
		var detail string
		_ = json.Unmarshal(env.Result, &detail)
		if strings.Contains(strings.ToLower(detail+env.Message), "no data found") {
			return enrichment.ErrTokenNotFound
		}
		return fmt.Errorf("%w: %s: %s", ErrAPI, env.Message, detail)
	}

	return json.Unmarshal(env.Result, out)
}

func (c *client) nativeInfo(ctx context.Context, info chain.Info) (enrichment.TokenInfo, error) {
	q := url.Values{}
	q.Set("module", "stats")
	q.Set("action", "ethprice")

	var res nativePrice
	if err := c.call(ctx, info, q, &res); err != nil {
		return enrichment.TokenInfo{}, err
	}

	decimals := info.NativeDecimals
	return enrichment.TokenInfo{
		Symbol:   info.NativeSymbol,
		Name:     info.NativeName,
		Decimals: &decimals,
		PriceUSD: parsePrice(res.USD),
	}, nil
}

func (c *client) contractInfo(ctx context.Context, info chain.Info, tokenAddress string) (enrichment.TokenInfo, error) {
	q := url.Values{}
	q.Set("module", "token")
	q.Set("action", "tokeninfo")
	q.Set("contractaddress", strings.ToLower(tokenAddress))

	var res []tokenInfo
	if err := c.call(ctx, info, q, &res); err != nil {
		if errors.Is(err, enrichment.ErrTokenNotFound) {
			return enrichment.TokenInfo{}, fmt.Errorf("%w: %s", err, tokenAddress)
		}
		return enrichment.TokenInfo{}, err
	}
	if len(res) == 0 {
		return enrichment.TokenInfo{}, fmt.Errorf("%w: %s", enrichment.ErrTokenNotFound, tokenAddress)
	}

	out := enrichment.TokenInfo{
		Symbol:   res[0].Symbol,
		Name:     res[0].TokenName,
		PriceUSD: parsePrice(res[0].TokenPriceUSD),
	}
	if d, err := strconv.Atoi(res[0].Divisor); err == nil && transfer.ValidDecimals(d) {
		out.Decimals = &d
	}

	return out, nil
}

func parsePrice(s string) *decimal.Decimal {
	if s == "" {
		return nil
	}

	price, err := decimal.NewFromString(s)
	if err != nil || price.IsNegative() {
		return nil
	}

	return &price
}
