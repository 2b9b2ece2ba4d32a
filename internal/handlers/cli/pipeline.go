package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/gabapcia/whalewatch/internal/pkg/logger"
	"github.com/gabapcia/whalewatch/internal/whalewatch"

	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrNoServers is returned by serve when nothing was wired to run.
	ErrNoServers = errors.New("no servers configured")

	// ErrNoPayloadFiles is returned by replay when no file was given.
	ErrNoPayloadFiles = errors.New("at least one payload file is required")
)

// serveCommand returns a CLI command that runs every server until one of
// them fails or the process receives SIGINT or SIGTERM.
//
// Usage example:
//
//	whalewatch serve
func serveCommand(servers ...Server) *cli.Command {
	return &cli.Command{
		Name:        "serve",
		Description: "Runs the webhook endpoint that feeds provider deliveries into the alert pipeline.",
		Usage:       "Starts the HTTP server. Terminates gracefully on Ctrl+C or termination signals.",
		Action: func(ctx context.Context, c *cli.Command) error {
			if len(servers) == 0 {
				return ErrNoServers
			}

			ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			g, ctx := errgroup.WithContext(ctx)
			for _, s := range servers {
				g.Go(func() error {
					return s.Serve(ctx)
				})
			}

			return g.Wait()
		},
	}
}

// replayCommand returns a CLI command that runs saved webhook payloads
// through the pipeline and prints one report line per file.
//
// Usage example:
//
//	whalewatch replay --dry-run payload1.json payload2.json
func replayCommand(pipeline, dryRun whalewatch.Service) *cli.Command {
	return &cli.Command{
		Name:        "replay",
		Description: "Runs saved webhook payloads through the alert pipeline.",
		Usage:       "Processes each payload file as one delivery. Use --dry-run to log alerts instead of sending them.",
		ArgsUsage:   "<payload.json>...",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: "Log alerts instead of delivering them to the configured sink",
			},
			&cli.IntFlag{
				Name:  "concurrency",
				Usage: "Number of payload files processed at once",
				Value: 1,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			files := c.Args().Slice()
			if len(files) == 0 {
				return ErrNoPayloadFiles
			}

			svc := pipeline
			if c.Bool("dry-run") {
				svc = dryRun
			}

			var (
				mu   sync.Mutex
				errs []error
				out  = c.Root().Writer
			)

			g, ctx := errgroup.WithContext(ctx)
			g.SetLimit(max(int(c.Int("concurrency")), 1))

			for _, file := range files {
				g.Go(func() error {
					err := replayFile(ctx, svc, file, func(line string) {
						mu.Lock()
						defer mu.Unlock()
						_, _ = fmt.Fprintln(out, line)
					})
					if err != nil {
						mu.Lock()
						errs = append(errs, err)
						mu.Unlock()
					}
					return nil
				})
			}

			_ = g.Wait()
			return errors.Join(errs...)
		},
	}
}

// replayFile processes one saved payload and prints its report.
func replayFile(ctx context.Context, svc whalewatch.Service, file string, emit func(string)) error {
	doc, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}

	report := svc.ProcessPayload(ctx, doc)
	if report.DecodeErr != nil {
		emit(fmt.Sprintf("%s: %v", file, report.DecodeErr))
		return fmt.Errorf("%s: %w", file, report.DecodeErr)
	}

	logger.Debug(ctx, "payload replayed", "replay.file", file)
	emit(fmt.Sprintf("%s: candidates=%d filtered=%d duplicates=%d dispatched=%d failed=%d",
		file,
		report.Candidates,
		report.Filtered,
		report.Duplicates,
		report.Dispatched,
		report.Failed,
	))
	return nil
}
