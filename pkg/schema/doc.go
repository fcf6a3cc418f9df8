// Package schema models ClickHouse table schemas as flat column lists and
// computes the change operations needed to move one schema to another.
//
// The package is intentionally small and pure: a schema is an ordered list
// of name/type pairs, and Diff compares two of them into an ordered list of
// ChangeOps (add, modify, drop). Column types are opaque strings compared
// byte-for-byte - there is no type-system awareness, because downstream
// statement generation depends on literal type strings matching the
// server's dialect.
//
// Desired schemas are typically loaded from YAML files (see LoadColumnSet),
// while observed schemas come from the clickhouse package's DescTable.
//
// Example:
//
//	current, _ := client.DescTable(ctx, "events")
//	desired, _ := schema.LoadColumnSetFile("schemas/events.yaml")
//
//	changes := schema.Diff(current, desired, schema.NewReservedSet("sign"))
//	for _, change := range changes {
//	    fmt.Println(change.Clause())
//	}
package schema
