package cli

import (
	"context"
	"fmt"
	"slices"

	"github.com/gabapcia/whalewatch/internal/pkg/logger"
	"github.com/gabapcia/whalewatch/internal/walletregistry"

	"github.com/urfave/cli/v3"
)

// walletFlags are shared by the watch and unwatch commands.
func walletFlags(addressUsage string) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "network",
			Usage:    "Blockchain network name (e.g., ethereum, polygon)",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "address",
			Usage:    addressUsage,
			Required: true,
		},
	}
}

// startWatchingWalletCommand returns a CLI command that adds a wallet to the
// runtime watch list. Alerts for transfers touching it carry a direction.
//
// Usage example:
//
//	whalewatch watch --network ethereum --address 0xABC123...
func startWatchingWalletCommand(wr walletregistry.Service) *cli.Command {
	return &cli.Command{
		Name:        "watch",
		Description: "Register a wallet whose transfers are labelled IN or OUT on alerts.",
		Usage:       "Adds a wallet address to the runtime watch list. Must provide both network and address.",
		Flags:       walletFlags("Wallet address to start watching"),
		Action: func(ctx context.Context, c *cli.Command) error {
			var (
				network = c.String("network")
				address = c.String("address")
			)

			if err := wr.StartWatching(ctx, network, address); err != nil {
				return err
			}

			logger.Info(ctx, "wallet registered", "wallet.network", network, "wallet.address", address)
			return nil
		},
	}
}

// stopWatchingWalletCommand returns a CLI command that removes a wallet from
// the runtime watch list.
//
// Usage example:
//
//	whalewatch unwatch --network ethereum --address 0xABC123...
func stopWatchingWalletCommand(wr walletregistry.Service) *cli.Command {
	return &cli.Command{
		Name:        "unwatch",
		Description: "Unregister a wallet from the runtime watch list.",
		Usage:       "Removes a wallet address from the runtime watch list. Must provide both network and address.",
		Flags:       walletFlags("Wallet address to stop watching"),
		Action: func(ctx context.Context, c *cli.Command) error {
			var (
				network = c.String("network")
				address = c.String("address")
			)

			if err := wr.StopWatching(ctx, network, address); err != nil {
				return err
			}

			logger.Info(ctx, "wallet unregistered", "wallet.network", network, "wallet.address", address)
			return nil
		},
	}
}

// listWatchedWalletsCommand returns a CLI command that prints the runtime
// watch list of a network, one address per line in sorted order.
//
// Usage example:
//
//	whalewatch watched --network ethereum
func listWatchedWalletsCommand(wr walletregistry.Service) *cli.Command {
	return &cli.Command{
		Name:        "watched",
		Description: "List the wallets on the runtime watch list of a network.",
		Usage:       "Prints every watched wallet address of the given network.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "network",
				Usage:    "Blockchain network name (e.g., ethereum, polygon)",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			watched, err := wr.Watched(ctx, c.String("network"))
			if err != nil {
				return err
			}

			addresses := watched.ToSlice()
			slices.Sort(addresses)

			for _, address := range addresses {
				if _, err := fmt.Fprintln(c.Root().Writer, address); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
