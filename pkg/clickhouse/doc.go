// Package clickhouse provides a client for operating a ClickHouse server
// over its HTTP query interface.
//
// Statements are POSTed as plain text to the root endpoint with
// credentials as URL query parameters. The client covers the read side
// (table listings, column schemas, partition and cluster topology queries)
// and the write side (cluster-aware ALTER TABLE migrations and partition
// drops), all behind an explicit allow-execute gate that separates
// "render and log a statement" from "actually submit it".
//
// Key behaviors:
//   - Statements over 16 KiB are rejected before any network I/O
//   - Non-2xx responses are data (inspect QueryOutcome), never errors
//   - Read-only listings degrade to empty results on non-success
//   - Structured (JSON) responses are decoded off the "data" field;
//     a malformed body is the only condition that aborts a call
//   - No retries, no caching, no internal concurrency
//
// Example usage:
//
//	client, err := clickhouse.NewClient(clickhouse.Options{
//	    Host:     "localhost",
//	    Database: "analytics",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	current, err := client.DescTable(ctx, "events")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	changes := schema.Diff(current, desired, nil)
//	outcome, err := client.AlterTable(ctx, "events", changes, clickhouse.AlterOptions{
//	    AllowExecute: false, // dry run: render and log only
//	})
package clickhouse
