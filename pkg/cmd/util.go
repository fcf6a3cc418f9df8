package cmd

import (
	"log/slog"

	"github.com/clickops/clickops/pkg/clickhouse"
	"github.com/clickops/clickops/pkg/config"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"
)

// newClient builds a ClickHouse client from the project configuration.
func newClient(cfg *config.Config) (*clickhouse.Client, error) {
	opts := cfg.ClientOptions()
	opts.Logger = slog.Default()

	client, err := clickhouse.NewClient(opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create ClickHouse client")
	}

	return client, nil
}

// resolveCluster picks the per-invocation cluster override when set,
// falling back to the configured default.
func resolveCluster(cmd *cli.Command, cfg *config.Config) string {
	if cluster := cmd.String("cluster"); cluster != "" {
		return cluster
	}
	return cfg.Connection.Cluster
}

// clusterFlag is shared by every command that renders cluster-qualified
// statements.
func clusterFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "cluster",
		Usage: "ClickHouse cluster name for distributed DDL (overrides config)",
		Config: cli.StringConfig{
			TrimSpace: true,
		},
	}
}

// executeFlag is the explicit allow-execute gate carried by every mutating
// command. Without it statements are rendered and logged only.
func executeFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:  "execute",
		Usage: "actually submit the statement (default is a dry run)",
	}
}
