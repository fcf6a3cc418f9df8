package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/clickops/clickops/pkg/config"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"
	"go.uber.org/fx"
)

type (
	Params struct {
		fx.In

		Args       []string
		Commands   []*cli.Command `group:"commands"`
		Ctx        context.Context
		Lifecycle  fx.Lifecycle
		Shutdowner fx.Shutdowner
		Version    *Version
	}

	Version struct {
		Version   string
		Commit    string
		Timestamp string
	}
)

// Run creates and executes the main clickops CLI application with the
// given version and command-line arguments. This function serves as the
// entry point for all CLI operations.
//
// The application reads its connection settings from clickops.yaml in the
// current directory (see the config package); commands that need a server
// connection fail with a clear error when the file is missing.
//
// Global Flags:
//   - --debug: enable debug logging (composed statements are logged at
//     debug level)
//
// Example usage:
//
//	clickops tables
//	clickops diff --table events --file schemas/events.yaml
//	clickops apply --table events --file schemas/events.yaml --cluster east --execute
func Run(p Params) {
	cli.VersionPrinter = func(cmd *cli.Command) {
		fmt.Fprintln(cmd.Writer, "Version:", p.Version.Version)
		fmt.Fprintln(cmd.Writer, "Commit:", p.Version.Commit)
		fmt.Fprintln(cmd.Writer, "Date:", p.Version.Timestamp)
	}

	app := &cli.Command{
		Name:  "clickops",
		Usage: "A tool for operating ClickHouse schemas over the HTTP interface",
		Description: `clickops inspects ClickHouse table schemas over the HTTP query
interface, diffs them against desired column sets, and applies the
resulting ALTER TABLE migrations - optionally across a cluster - behind
an explicit --execute gate. It also lists and drops partitions.`,
		Version: p.Version.Version,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "enable debug logging",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			level := slog.LevelInfo
			if cmd.Bool("debug") {
				level = slog.LevelDebug
			}

			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: level,
			})))
			return ctx, nil
		},
		Commands: p.Commands,
	}

	p.Lifecycle.Append(fx.StartHook(func() {
		if err := app.Run(p.Ctx, p.Args); err != nil {
			slog.Error("Error running command", "err", err)
			_ = p.Shutdowner.Shutdown(fx.ExitCode(1))
		}

		_ = p.Shutdowner.Shutdown(fx.ExitCode(0))
	}))
}

func requireConfig(cfg *config.Config) func(context.Context, *cli.Command) (context.Context, error) {
	return func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
		if cfg == nil {
			return ctx, errors.New("clickops.yaml not found")
		}

		return ctx, nil
	}
}
