package clickhouse

import (
	"context"
	"fmt"

	"github.com/clickops/clickops/pkg/utils"
)

// Partition describes one partition of one table as reported by
// system.parts, with its size pre-formatted by the server.
type Partition struct {
	Partition string
	Table     string
	Size      string
}

// ListPartitions lists partitions across all tables, grouped by partition
// and table with a human-readable total size, capped at MaxRecords rows.
func (c *Client) ListPartitions(ctx context.Context) ([]Partition, error) {
	stmt := fmt.Sprintf(
		"SELECT partition, table, formatReadableSize(sum(bytes)) AS sum_size FROM system.parts GROUP BY partition, table ORDER BY partition ASC LIMIT %d",
		MaxRecords,
	)

	outcome, err := c.Query(ctx, stmt, true)
	if err != nil {
		return nil, err
	}

	partitions := make([]Partition, 0, len(outcome.Rows))
	for _, row := range outcome.Rows {
		partitions = append(partitions, Partition{
			Partition: row.String("partition"),
			Table:     row.String("table"),
			Size:      row.String("sum_size"),
		})
	}

	return partitions, nil
}

// DeletePartition drops one partition of the given table, rendering the
// same cluster-qualified shape as AlterTable and submitting under the same
// allow-execute gate. The partition expression is emitted verbatim.
//
// Both the cluster and non-cluster forms target the configured database.
//
// Example:
//
//	outcome, err := client.DeletePartition(ctx, "202401", "events", clickhouse.AlterOptions{
//	    AllowExecute: true,
//	})
func (c *Client) DeletePartition(ctx context.Context, partition, table string, opts AlterOptions) (*QueryOutcome, error) {
	stmt := utils.NewSQLBuilder().
		Alter("TABLE").
		QualifiedName(c.database, table).
		OnCluster(opts.Cluster).
		DropPartition(partition).
		String()

	return c.Query(ctx, stmt, opts.AllowExecute)
}
