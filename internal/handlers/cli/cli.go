package cli

import (
	"context"
	"os"

	"github.com/gabapcia/whalewatch/internal/walletregistry"
	"github.com/gabapcia/whalewatch/internal/whalewatch"

	"github.com/urfave/cli/v3"
)

// Server is a long-running component started by the serve command. Serve
// blocks until ctx is done or the component fails.
type Server interface {
	Serve(ctx context.Context) error
}

// ServerFunc adapts a function to the Server interface.
type ServerFunc func(ctx context.Context) error

// Serve calls f(ctx).
func (f ServerFunc) Serve(ctx context.Context) error {
	return f(ctx)
}

// Run initializes and executes the whalewatch CLI application.
//
// It registers all available commands, including:
//
//   - `serve`: Runs the webhook server until interrupted.
//   - `replay`: Runs saved webhook payloads through the pipeline.
//   - `watch`: Registers a wallet whose transfers get a direction label.
//   - `unwatch`: Unregisters a watched wallet.
//   - `watched`: Lists the watched wallets of a network.
//
// pipeline delivers to the configured sink; dryRun is the same pipeline
// delivering to the log sink, used by `replay --dry-run`.
func Run(ctx context.Context, wr walletregistry.Service, pipeline, dryRun whalewatch.Service, servers ...Server) error {
	app := &cli.Command{
		EnableShellCompletion: true,
		Name:                  "whalewatch",
		Description:           "Command-line interface for running the whalewatch alert pipeline and managing watched wallets.",
		Usage:                 "whalewatch [command] [flags]",
		Commands: []*cli.Command{
			serveCommand(servers...),
			replayCommand(pipeline, dryRun),
			startWatchingWalletCommand(wr),
			stopWatchingWalletCommand(wr),
			listWatchedWalletsCommand(wr),
		},
	}

	return app.Run(ctx, os.Args)
}
