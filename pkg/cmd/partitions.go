package cmd

import (
	"context"
	"fmt"

	"github.com/clickops/clickops/pkg/clickhouse"
	"github.com/clickops/clickops/pkg/config"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"
)

// partitions creates the partitions command group: list partitions across
// tables and drop individual partitions under the execute gate.
func partitions(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:   "partitions",
		Usage:  "List and drop table partitions",
		Before: requireConfig(cfg),
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List partitions grouped by partition and table",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					client, err := newClient(cfg)
					if err != nil {
						return err
					}

					parts, err := client.ListPartitions(ctx)
					if err != nil {
						return err
					}

					for _, p := range parts {
						fmt.Fprintf(cmd.Writer, "%s\t%s\t%s\n", p.Partition, p.Table, p.Size)
					}
					return nil
				},
			},
			{
				Name:  "drop",
				Usage: "Drop one partition of a table",
				Flags: []cli.Flag{
					tableFlag(),
					&cli.StringFlag{
						Name:     "partition",
						Usage:    "the partition expression to drop (e.g. 202401)",
						Required: true,
						Config: cli.StringConfig{
							TrimSpace: true,
						},
					},
					clusterFlag(),
					executeFlag(),
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					client, err := newClient(cfg)
					if err != nil {
						return err
					}

					outcome, err := client.DeletePartition(ctx, cmd.String("partition"), cmd.String("table"), clickhouse.AlterOptions{
						Cluster:      resolveCluster(cmd, cfg),
						AllowExecute: cmd.Bool("execute"),
					})
					if err != nil {
						return err
					}

					switch {
					case outcome.Skipped():
						fmt.Fprintln(cmd.Writer, "Dry run: statement rendered, nothing submitted. Re-run with --execute to apply.")
					case !outcome.Success():
						return errors.Errorf("server rejected partition drop: %d %s", outcome.StatusCode, outcome.Body)
					default:
						fmt.Fprintln(cmd.Writer, "Partition dropped.")
					}
					return nil
				},
			},
		},
	}
}
