// Package chain describes the EVM networks whalewatch knows how to price and link.
package chain

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrUnsupportedChain is returned for chain names missing from the registry.
var ErrUnsupportedChain = errors.New("unsupported chain")

// Info holds the static facts about one network.
type Info struct {
	Name    string // canonical identifier used in configuration, e.g. "ethereum"
	ChainID int64  // EIP-155 chain id

	NativeSymbol   string
	NativeName     string
	NativeDecimals int

	CoinGeckoPlatform string // asset platform id for contract lookups
	CoinGeckoNativeID string // coin id of the native currency
}

var registry = map[string]Info{
	"ethereum": {
		Name: "ethereum", ChainID: 1,
		NativeSymbol: "ETH", NativeName: "Ether", NativeDecimals: 18,
		CoinGeckoPlatform: "ethereum", CoinGeckoNativeID: "ethereum",
	},
	"polygon": {
		Name: "polygon", ChainID: 137,
		NativeSymbol: "POL", NativeName: "Polygon Ecosystem Token", NativeDecimals: 18,
		CoinGeckoPlatform: "polygon-pos", CoinGeckoNativeID: "polygon-ecosystem-token",
	},
	"arbitrum": {
		Name: "arbitrum", ChainID: 42161,
		NativeSymbol: "ETH", NativeName: "Ether", NativeDecimals: 18,
		CoinGeckoPlatform: "arbitrum-one", CoinGeckoNativeID: "ethereum",
	},
	"optimism": {
		Name: "optimism", ChainID: 10,
		NativeSymbol: "ETH", NativeName: "Ether", NativeDecimals: 18,
		CoinGeckoPlatform: "optimistic-ethereum", CoinGeckoNativeID: "ethereum",
	},
	"base": {
		Name: "base", ChainID: 8453,
		NativeSymbol: "ETH", NativeName: "Ether", NativeDecimals: 18,
		CoinGeckoPlatform: "base", CoinGeckoNativeID: "ethereum",
	},
	"bsc": {
		Name: "bsc", ChainID: 56,
		NativeSymbol: "BNB", NativeName: "BNB", NativeDecimals: 18,
		CoinGeckoPlatform: "binance-smart-chain", CoinGeckoNativeID: "binancecoin",
	},
}

// Lookup returns the registry entry for name (case-insensitive).
func Lookup(name string) (Info, error) {
	info, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Info{}, fmt.Errorf("%w %q, expected one of: %s", ErrUnsupportedChain, name, strings.Join(Names(), ", "))
	}
	return info, nil
}

// Names returns the supported chain identifiers in lexical order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
