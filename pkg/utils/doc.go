// Package utils provides common utility functions used throughout the
// clickops codebase.
//
// # Identifier Utilities (identifier.go)
//
// Consistent handling of ClickHouse SQL identifiers, including backtick
// quoting for names that may contain special characters or reserved
// keywords:
//
//	utils.BacktickIdentifier("analytics.events") // `analytics`.`events`
//	utils.BacktickQualifiedName("db", "events")  // `db`.`events`
//
// The helpers are idempotent - backticking an already backticked
// identifier does not double-quote it.
//
// # SQL Builder (sqlbuilder.go)
//
// A fluent builder for the DDL shapes this tool emits, primarily
// cluster-aware ALTER TABLE statements:
//
//	utils.NewSQLBuilder().
//	    Alter("TABLE").
//	    QualifiedName("db", "events").
//	    OnCluster("prod").
//	    ClauseList("ADD COLUMN `b` String").
//	    String()
package utils
