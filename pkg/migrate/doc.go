// Package migrate orchestrates the schema migration cycle: inspect a
// table's live columns, diff them against a desired column set, and apply
// the resulting plan as a single cluster-aware ALTER TABLE statement.
//
// The package is thin glue over the schema and clickhouse packages. It
// adds bookkeeping (timing, status classification) but no semantics: no
// retries, no rollback, and no protection against a concurrent cycle
// racing between Plan and Apply.
package migrate
