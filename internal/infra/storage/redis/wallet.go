package redis

import (
	"context"
	"fmt"

	"github.com/gabapcia/whalewatch/internal/walletregistry"
)

// walletStoragePrefix is the key namespace of the watch list.
const walletStoragePrefix = "wallet"

// walletStorageKey returns the set holding watched addresses of network.
//
// Format: "wallet:storage:{network}"
func walletStorageKey(network string) string {
	return fmt.Sprintf("%s:storage:%s", walletStoragePrefix, network)
}

// RegisterWallet adds the address to the network's set with SADD.
func (c *client) RegisterWallet(ctx context.Context, id walletregistry.WalletIdentifier) error {
	return c.conn.SAdd(ctx, walletStorageKey(id.Network), id.Address).Err()
}

// UnregisterWallet removes the address from the network's set with SREM.
func (c *client) UnregisterWallet(ctx context.Context, id walletregistry.WalletIdentifier) error {
	return c.conn.SRem(ctx, walletStorageKey(id.Network), id.Address).Err()
}

// ListWallets returns every member of the network's set.
func (c *client) ListWallets(ctx context.Context, network string) ([]string, error) {
	return c.conn.SMembers(ctx, walletStorageKey(network)).Result()
}

var _ walletregistry.WalletStorage = new(client)
