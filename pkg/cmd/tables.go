package cmd

import (
	"context"
	"fmt"

	"github.com/clickops/clickops/pkg/config"
	"github.com/urfave/cli/v3"
)

// tables creates the tables command, listing tables visible in the
// configured database.
func tables(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:   "tables",
		Usage:  "List tables in the configured database",
		Before: requireConfig(cfg),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			client, err := newClient(cfg)
			if err != nil {
				return err
			}

			rows, err := client.ShowTables(ctx)
			if err != nil {
				return err
			}

			for _, row := range rows {
				fmt.Fprintln(cmd.Writer, row.String("name"))
			}
			return nil
		},
	}
}

// describe creates the describe command, printing a table's column schema.
func describe(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "describe",
		Usage:     "Show the column schema of a table",
		ArgsUsage: "<table>",
		Before:    requireConfig(cfg),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			table := cmd.Args().First()
			if table == "" {
				return cli.Exit("table name required", 1)
			}

			client, err := newClient(cfg)
			if err != nil {
				return err
			}

			columns, err := client.DescTable(ctx, table)
			if err != nil {
				return err
			}

			for _, col := range columns {
				fmt.Fprintf(cmd.Writer, "%s\t%s\n", col.Name, col.Type)
			}
			return nil
		},
	}
}

// exists creates the exists command, reporting whether a table exists.
func exists(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "exists",
		Usage:     "Report whether a table exists",
		ArgsUsage: "<table>",
		Before:    requireConfig(cfg),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			table := cmd.Args().First()
			if table == "" {
				return cli.Exit("table name required", 1)
			}

			client, err := newClient(cfg)
			if err != nil {
				return err
			}

			ok, err := client.ExistTable(ctx, table)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.Writer, ok)
			return nil
		},
	}
}
