package cmd

import (
	"context"
	"fmt"

	"github.com/clickops/clickops/pkg/config"
	"github.com/urfave/cli/v3"
)

// clusters creates the clusters command, listing cluster node topology
// from system.clusters.
func clusters(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:   "clusters",
		Usage:  "List cluster nodes known to the server",
		Before: requireConfig(cfg),
		Flags: []cli.Flag{
			clusterFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			client, err := newClient(cfg)
			if err != nil {
				return err
			}

			rows, err := client.ListClusterNodes(ctx, cmd.String("cluster"))
			if err != nil {
				return err
			}

			for _, row := range rows {
				fmt.Fprintf(cmd.Writer, "%s\tshard=%s\treplica=%s\t%s:%s\n",
					row.String("cluster"),
					row.String("shard_num"),
					row.String("replica_num"),
					row.String("host_name"),
					row.String("port"),
				)
			}
			return nil
		},
	}
}
