// Package ethplorer implements enrichment.Provider using the Ethplorer
// getTokenInfo endpoint. Ethplorer only indexes Ethereum mainnet.
package ethplorer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
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

const (
	// DefaultBaseURL is the public API root.
	DefaultBaseURL = "https://api.ethplorer.io"

	// DefaultAPIKey is the shared, rate-limited key Ethplorer hands out.
	DefaultAPIKey = "freekey"

	// nativeAddress is how Ethplorer addresses ETH itself.
	nativeAddress = "0x0000000000000000000000000000000000000000"

	// errCodeInvalidToken is returned for addresses that are not tokens.
	errCodeInvalidToken = 150
)

// tokenResponse is the subset of getTokenInfo we read. Ethplorer sends
// decimals as either a string or a number, and price as an object or false.
type tokenResponse struct {
	Symbol   string          `json:"symbol"`
	Name     string          `json:"name"`
	Decimals json.RawMessage `json:"decimals"`
	Price    json.RawMessage `json:"price"`
	Error    *apiError       `json:"error"`
}

type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

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

// WithAPIKey overrides the API key. Default: DefaultAPIKey.
func WithAPIKey(key string) Option {
	return func(c *client) {
		if key != "" {
			c.apiKey = key
		}
	}
}

// WithHTTPClient replaces the default transport.
func WithHTTPClient(hc *retryablehttp.Client) Option {
	return func(c *client) {
		c.httpClient = hc
	}
}

// New creates an Ethplorer provider.
func New(opts ...Option) *client {
	c := &client{
		baseURL:    DefaultBaseURL,
		apiKey:     DefaultAPIKey,
		httpClient: transporthttp.NewClient(transporthttp.WithRetryMax(1)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *client) Name() string {
	return "ethplorer"
}

func (c *client) TokenInfo(ctx context.Context, tokenAddress, chainName string) (enrichment.TokenInfo, error) {
	info, err := chain.Lookup(chainName)
	if err != nil {
		return enrichment.TokenInfo{}, err
	}
	if info.Name != "ethereum" {
		return enrichment.TokenInfo{}, fmt.Errorf("%w: ethplorer only serves ethereum, got %s", chain.ErrUnsupportedChain, info.Name)
	}

	address := tokenAddress
	if address == "" {
		address = nativeAddress
	}

	endpoint := fmt.Sprintf("%s/getTokenInfo/%s?apiKey=%s",
		c.baseURL,
		url.PathEscape(strings.ToLower(address)),
		url.QueryEscape(c.apiKey),
	)

	var res tokenResponse
	if err := transporthttp.GetJSON(ctx, c.httpClient, endpoint, nil, &res); err != nil {
		var statusErr *transporthttp.StatusError
		if errors.As(err, &statusErr) && (statusErr.Code == http.StatusBadRequest || statusErr.Code == http.StatusNotFound) {
			return enrichment.TokenInfo{}, fmt.Errorf("%w: %s", enrichment.ErrTokenNotFound, tokenAddress)
		}
		return enrichment.TokenInfo{}, err
	}

	if res.Error != nil {
		if res.Error.Code == errCodeInvalidToken {
			return enrichment.TokenInfo{}, fmt.Errorf("%w: %s", enrichment.ErrTokenNotFound, tokenAddress)
		}
		return enrichment.TokenInfo{}, fmt.Errorf("ethplorer error %d: %s", res.Error.Code, res.Error.Message)
	}

	out := enrichment.TokenInfo{
		Symbol:   res.Symbol,
		Name:     res.Name,
		Decimals: parseDecimals(res.Decimals),
		PriceUSD: parsePrice(res.Price),
	}

	if tokenAddress == "" {
		decimals := info.NativeDecimals
		out.Symbol = info.NativeSymbol
		out.Name = info.NativeName
		out.Decimals = &decimals
	}

	return out, nil
}

func parseDecimals(raw json.RawMessage) *int {
	s := strings.Trim(string(bytes.TrimSpace(raw)), `"`)
	if s == "" || s == "null" {
		return nil
	}

	d, err := strconv.Atoi(s)
	if err != nil || !transfer.ValidDecimals(d) {
		return nil
	}

	return &d
}

func parsePrice(raw json.RawMessage) *decimal.Decimal {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '{' {
		return nil
	}

	var price struct {
		Rate     *decimal.Decimal `json:"rate"`
		Currency string           `json:"currency"`
	}
	if err := json.Unmarshal(raw, &price); err != nil || price.Rate == nil {
		return nil
	}
	if price.Currency != "" && !strings.EqualFold(price.Currency, "usd") {
		return nil
	}

	return price.Rate
}
