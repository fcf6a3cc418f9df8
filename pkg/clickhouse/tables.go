package clickhouse

import (
	"context"

	"github.com/clickops/clickops/pkg/schema"
	"github.com/clickops/clickops/pkg/utils"
)

// ShowTables lists the tables visible in the connected database.
//
// Like all read-only listings, a non-success response degrades to an empty
// result rather than failing the caller; only transport and decode
// failures return errors.
func (c *Client) ShowTables(ctx context.Context) ([]Row, error) {
	outcome, err := c.Query(ctx, "SHOW TABLES", true)
	if err != nil {
		return nil, err
	}
	return outcome.Rows, nil
}

// DescTable fetches the current column schema of the named table, in the
// order the server reports it. A fresh snapshot is fetched on every call;
// nothing is cached.
//
// Example:
//
//	current, err := client.DescTable(ctx, "events")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	changes := schema.Diff(current, desired, nil)
func (c *Client) DescTable(ctx context.Context, name string) (schema.ColumnSet, error) {
	outcome, err := c.Query(ctx, "DESC "+utils.BacktickIdentifier(name), true)
	if err != nil {
		return nil, err
	}

	columns := make(schema.ColumnSet, 0, len(outcome.Rows))
	for _, row := range outcome.Rows {
		columns = append(columns, schema.Column{
			Name: row.String("name"),
			Type: row.String("type"),
		})
	}

	return columns, nil
}

// ExistTable reports whether the named table exists. The first row's
// "result" field carries the answer; absence of rows fails open to false
// rather than raising.
func (c *Client) ExistTable(ctx context.Context, name string) (bool, error) {
	outcome, err := c.Query(ctx, "EXISTS "+utils.BacktickIdentifier(name), true)
	if err != nil {
		return false, err
	}

	for _, row := range outcome.Rows {
		return row.Bool("result"), nil
	}
	return false, nil
}
