package clickhouse

import (
	"context"
	"fmt"
	"strings"
)

// ListClusterNodes lists node rows from system.clusters, optionally
// filtered to a single named cluster. Rows are returned as-is so callers
// can inspect whichever topology fields they care about (host_name,
// shard_num, replica_num, ...).
func (c *Client) ListClusterNodes(ctx context.Context, cluster string) ([]Row, error) {
	stmt := "SELECT * FROM system.clusters"
	if cluster != "" {
		stmt += fmt.Sprintf(" WHERE cluster = '%s'", strings.ReplaceAll(cluster, "'", "\\'"))
	}

	outcome, err := c.Query(ctx, stmt, true)
	if err != nil {
		return nil, err
	}
	return outcome.Rows, nil
}
