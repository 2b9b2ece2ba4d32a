// Package enrichment attaches token metadata and USD prices to transfer
// events, and resolves transaction detail missing from provider payloads.
//
// Providers are asked in a fixed priority order; the first answer carrying a
// symbol wins. Provider failures are logged and counted, never returned: a
// full outage simply yields an empty TokenInfo.
package enrichment

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/gabapcia/whalewatch/internal/payload"
	"github.com/gabapcia/whalewatch/internal/transfer"
)

var (
	// ErrTokenNotFound is returned by providers that do not know the token.
	ErrTokenNotFound = errors.New("token not found")

	// ErrTransactionNotFound is returned by fetchers when the chain has no such transaction.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrFetcherNotConfigured is returned by the default fetcher.
	ErrFetcherNotConfigured = errors.New("no transaction fetcher configured")
)

// TokenInfo is what providers know about a token. Every field may be absent.
type TokenInfo struct {
	Symbol   string
	Name     string
	Decimals *int
	PriceUSD *decimal.Decimal
}

// IsZero reports whether no field is set.
func (t TokenInfo) IsZero() bool {
	return t.Symbol == "" && t.Name == "" && t.Decimals == nil && t.PriceUSD == nil
}

// Provider is one metadata or price source. An empty tokenAddress asks for the
// chain's native currency.
type Provider interface {
	Name() string
	TokenInfo(ctx context.Context, tokenAddress, chain string) (TokenInfo, error)
}

// TransactionDetail is the subset of a transaction the pipeline may need.
type TransactionDetail struct {
	From        string
	To          string
	Value       string
	Gas         string
	Nonce       string
	Input       string
	BlockNumber string
}

// TransactionFetcher loads transaction detail from the chain.
type TransactionFetcher interface {
	FetchTransactionDetail(ctx context.Context, txHash string) (TransactionDetail, error)
}

// Service is the enrichment gateway used by the pipeline.
type Service interface {
	// Lookup returns token information from the first provider that yields a symbol.
	Lookup(ctx context.Context, tokenAddress, chain string) TokenInfo

	// Enrich applies decimals, symbol, name and, when absent, the USD value to e.
	Enrich(ctx context.Context, e *transfer.Event, chain string)

	// ResolveDetail fills missing transaction fields of c. It reports whether
	// the candidate no longer needs detail.
	ResolveDetail(ctx context.Context, c *payload.Candidate) bool
}

type nopFetcher struct{}

var _ TransactionFetcher = nopFetcher{}

func (nopFetcher) FetchTransactionDetail(context.Context, string) (TransactionDetail, error) {
	return TransactionDetail{}, ErrFetcherNotConfigured
}
