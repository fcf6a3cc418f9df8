package cmd

import (
	"context"
	"fmt"

	"github.com/clickops/clickops/pkg/clickhouse"
	"github.com/clickops/clickops/pkg/config"
	"github.com/clickops/clickops/pkg/migrate"
	"github.com/clickops/clickops/pkg/schema"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"
)

// diff creates the diff command: compute the change plan between a table's
// live schema and a desired column set, without touching anything.
//
// Example usage:
//
//	clickops diff --table events --file schemas/events.yaml
func diff(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:   "diff",
		Usage:  "Show the schema changes needed to match a desired column set",
		Before: requireConfig(cfg),
		Flags: []cli.Flag{
			tableFlag(),
			fileFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			plan, _, err := planChanges(ctx, cmd, cfg)
			if err != nil {
				return err
			}

			if len(plan) == 0 {
				fmt.Fprintln(cmd.Writer, "Schema is up to date.")
				return nil
			}

			for _, change := range plan {
				fmt.Fprintln(cmd.Writer, change.Clause())
			}
			return nil
		},
	}
}

// apply creates the apply command: compute the change plan and submit it
// as a single ALTER TABLE statement, gated behind --execute.
//
// Example usage:
//
//	# Dry run: render and log the statement only
//	clickops apply --table events --file schemas/events.yaml
//
//	# Apply across a cluster for real
//	clickops apply --table events --file schemas/events.yaml --cluster east --execute
func apply(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:   "apply",
		Usage:  "Apply schema changes to match a desired column set",
		Before: requireConfig(cfg),
		Flags: []cli.Flag{
			tableFlag(),
			fileFlag(),
			clusterFlag(),
			executeFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			table := cmd.String("table")

			plan, m, err := planChanges(ctx, cmd, cfg)
			if err != nil {
				return err
			}

			result := m.Apply(ctx, table, plan, clickhouse.AlterOptions{
				Cluster:      resolveCluster(cmd, cfg),
				AllowExecute: cmd.Bool("execute"),
			})

			switch result.Status {
			case migrate.StatusNoop:
				fmt.Fprintln(cmd.Writer, "Schema is up to date.")
			case migrate.StatusSkipped:
				fmt.Fprintf(cmd.Writer, "Dry run: %d change(s) rendered, nothing submitted. Re-run with --execute to apply.\n", len(plan))
			case migrate.StatusApplied:
				fmt.Fprintf(cmd.Writer, "Applied %d change(s) to %s in %v.\n", len(plan), table, result.Duration)
			case migrate.StatusFailed:
				if result.Error != nil {
					return result.Error
				}
				return errors.Errorf("server rejected migration: %d %s",
					result.Outcome.StatusCode, result.Outcome.Body)
			}

			return nil
		},
	}
}

// planChanges loads the desired column set, builds a migrator, and
// computes the change plan for the table named on the command line.
func planChanges(ctx context.Context, cmd *cli.Command, cfg *config.Config) ([]schema.ChangeOp, *migrate.Migrator, error) {
	table := cmd.String("table")

	desired, err := schema.LoadColumnSetFile(cmd.String("file"))
	if err != nil {
		return nil, nil, err
	}

	client, err := newClient(cfg)
	if err != nil {
		return nil, nil, err
	}

	m := migrate.New(migrate.Config{Client: client})

	plan, err := m.Plan(ctx, table, desired, schema.NewReservedSet(cfg.Reserved...))
	if err != nil {
		return nil, nil, err
	}

	return plan, m, nil
}

func tableFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "table",
		Usage:    "the table to operate on",
		Required: true,
		Config: cli.StringConfig{
			TrimSpace: true,
		},
	}
}

func fileFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "file",
		Usage:    "YAML file holding the desired column set",
		Required: true,
		Config: cli.StringConfig{
			TrimSpace: true,
		},
	}
}
