package walletregistry

import (
	"context"

	"github.com/gabapcia/whalewatch/internal/pkg/types"
	"github.com/gabapcia/whalewatch/internal/pkg/validator"
	"github.com/gabapcia/whalewatch/internal/transfer"
)

// WalletIdentifier uniquely identifies a watched wallet.
type WalletIdentifier struct {
	Network string `validate:"required"`
	Address string `validate:"required,eth_addr"`
}

// WalletStorage persists the watch list.
type WalletStorage interface {
	// RegisterWallet adds id to the watch list. It is idempotent.
	RegisterWallet(ctx context.Context, id WalletIdentifier) error

	// UnregisterWallet removes id from the watch list. It is idempotent.
	UnregisterWallet(ctx context.Context, id WalletIdentifier) error

	// ListWallets returns every address registered on network.
	ListWallets(ctx context.Context, network string) ([]string, error)
}

// buildWalletIdentifier validates the input and lower-cases the address so
// lookups are case-insensitive.
func buildWalletIdentifier(network, address string) (WalletIdentifier, error) {
	id := WalletIdentifier{
		Network: network,
		Address: address,
	}

	if err := validator.Validate(id); err != nil {
		return WalletIdentifier{}, err
	}

	id.Address = transfer.NormalizeAddress(id.Address)
	return id, nil
}

func (s *service) StartWatching(ctx context.Context, network, address string) error {
	id, err := buildWalletIdentifier(network, address)
	if err != nil {
		return err
	}

	return s.walletStorage.RegisterWallet(ctx, id)
}

func (s *service) StopWatching(ctx context.Context, network, address string) error {
	id, err := buildWalletIdentifier(network, address)
	if err != nil {
		return err
	}

	return s.walletStorage.UnregisterWallet(ctx, id)
}

func (s *service) Watched(ctx context.Context, network string) (types.Set[string], error) {
	addresses, err := s.walletStorage.ListWallets(ctx, network)
	if err != nil {
		return nil, err
	}

	set := types.NewSet[string]()
	for _, a := range addresses {
		set.Add(transfer.NormalizeAddress(a))
	}

	return set, nil
}
