package utils

import "strings"

// SQLBuilder provides a fluent interface for building ClickHouse DDL
// statements. It handles cluster injection, identifier backticking, and
// conditional clause building so statement assembly stays in one place.
//
// Example usage:
//
//	sql := utils.NewSQLBuilder().
//		Alter("TABLE").
//		QualifiedName("analytics", "events").
//		OnCluster("production").
//		ClauseList("ADD COLUMN `b` String", "DROP COLUMN `a`").
//		String()
//	// Output: ALTER TABLE `analytics`.`events` ON CLUSTER `production` ADD COLUMN `b` String, DROP COLUMN `a`
type SQLBuilder struct {
	parts []string
}

// NewSQLBuilder creates a new SQLBuilder instance.
func NewSQLBuilder() *SQLBuilder {
	return &SQLBuilder{
		parts: make([]string, 0, 8),
	}
}

// Alter adds an ALTER clause with the specified object type.
//
// Example:
//
//	builder.Alter("TABLE") // ALTER TABLE
func (b *SQLBuilder) Alter(objectType string) *SQLBuilder {
	b.parts = append(b.parts, "ALTER", objectType)
	return b
}

// Name adds a backticked object name.
//
// Example:
//
//	builder.Name("analytics")  // `analytics`
//	builder.Name("db.table")   // `db`.`table`
func (b *SQLBuilder) Name(name string) *SQLBuilder {
	if name != "" {
		b.parts = append(b.parts, BacktickIdentifier(name))
	}
	return b
}

// QualifiedName adds a qualified name with optional database prefix.
// If database is empty, only the name is added with backticks.
//
// Example:
//
//	builder.QualifiedName("", "events")          // `events`
//	builder.QualifiedName("analytics", "events") // `analytics`.`events`
func (b *SQLBuilder) QualifiedName(database, name string) *SQLBuilder {
	qualifiedName := BacktickQualifiedName(database, name)
	if qualifiedName != "" {
		b.parts = append(b.parts, qualifiedName)
	}
	return b
}

// OnCluster adds an ON CLUSTER clause if cluster is not empty. When the
// cluster is empty nothing is added, not an empty placeholder.
//
// Example:
//
//	builder.OnCluster("production") // ON CLUSTER `production`
//	builder.OnCluster("")           // (nothing added)
func (b *SQLBuilder) OnCluster(cluster string) *SQLBuilder {
	if cluster = strings.TrimSpace(cluster); cluster != "" {
		b.parts = append(b.parts, "ON", "CLUSTER", BacktickIdentifier(cluster))
	}
	return b
}

// ClauseList joins the given clauses with ", " and appends the result as a
// single fragment, the shape ALTER TABLE expects for multiple actions.
//
// Example:
//
//	builder.ClauseList("ADD COLUMN `b` String", "DROP COLUMN `a`")
func (b *SQLBuilder) ClauseList(clauses ...string) *SQLBuilder {
	if len(clauses) > 0 {
		b.parts = append(b.parts, strings.Join(clauses, ", "))
	}
	return b
}

// DropPartition adds a DROP PARTITION clause. The partition expression is
// emitted verbatim; partition ids and tuple expressions must not be
// backticked.
//
// Example:
//
//	builder.DropPartition("202401") // DROP PARTITION 202401
func (b *SQLBuilder) DropPartition(partition string) *SQLBuilder {
	if partition != "" {
		b.parts = append(b.parts, "DROP", "PARTITION", partition)
	}
	return b
}

// Raw adds raw SQL text to the builder. Use sparingly for constructs that
// don't fit the fluent pattern.
func (b *SQLBuilder) Raw(sql string) *SQLBuilder {
	if sql != "" {
		b.parts = append(b.parts, sql)
	}
	return b
}

// String builds and returns the final SQL statement.
//
// Example:
//
//	sql := builder.Alter("TABLE").Name("t").ClauseList("DROP COLUMN `a`").String()
//	// Returns: "ALTER TABLE `t` DROP COLUMN `a`"
func (b *SQLBuilder) String() string {
	return strings.Join(b.parts, " ")
}
