// Package walletregistry manages the runtime watch list: wallets registered
// through the CLI whose transfers are labelled IN or OUT on alerts, on top
// of the statically configured addresses.
package walletregistry

import (
	"context"
	"errors"

	"github.com/gabapcia/whalewatch/internal/pkg/types"
)

// ErrStorageNotConfigured is returned by registrations when no wallet
// storage backend is configured.
var ErrStorageNotConfigured = errors.New("wallet storage not configured")

// Service registers, unregisters and lists watched wallets.
type Service interface {
	// StartWatching registers a wallet on the given network.
	StartWatching(ctx context.Context, network, address string) error

	// StopWatching unregisters a wallet on the given network.
	StopWatching(ctx context.Context, network, address string) error

	// Watched returns every registered address of the network in
	// transfer.NormalizeAddress form.
	Watched(ctx context.Context, network string) (types.Set[string], error)
}

// service is the concrete implementation of the Service interface.
// It uses a WalletStorage backend to persist registered wallets.
type service struct {
	walletStorage WalletStorage
}

var _ Service = (*service)(nil)

// noStorage backs a registry without persistence: nothing is watched and
// registrations fail.
type noStorage struct{}

func (noStorage) RegisterWallet(context.Context, WalletIdentifier) error {
	return ErrStorageNotConfigured
}

func (noStorage) UnregisterWallet(context.Context, WalletIdentifier) error {
	return ErrStorageNotConfigured
}

func (noStorage) ListWallets(context.Context, string) ([]string, error) {
	return nil, nil
}

// New creates a new instance of the walletregistry service using the
// provided WalletStorage implementation. A nil ws yields an empty, read-only
// watch list.
func New(ws WalletStorage) *service {
	if ws == nil {
		ws = noStorage{}
	}

	return &service{
		walletStorage: ws,
	}
}
