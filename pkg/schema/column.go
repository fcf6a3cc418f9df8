package schema

import "github.com/clickops/clickops/pkg/compare"

type (
	// Column is a single table column: a name and an opaque, store-specific
	// type string. The name is the column's identity; the type is never
	// parsed, only compared for literal equality.
	Column struct {
		Name string `yaml:"name" json:"name"`
		Type string `yaml:"type" json:"type"`
	}

	// ColumnSet is an ordered list of columns describing one table's schema
	// snapshot. Order reflects the order columns were declared or returned
	// by the server. Column names within a set are expected to be unique;
	// duplicates are undefined behavior upstream and are not handled here.
	ColumnSet []Column

	// ReservedSet holds column names that must never be classified as
	// dropped by Diff, e.g. system or bookkeeping columns the desired
	// schema intentionally omits. It is always caller-supplied, never
	// inferred.
	ReservedSet map[string]struct{}
)

// NewReservedSet builds a ReservedSet from the given column names.
//
// Example:
//
//	reserved := schema.NewReservedSet("sign", "version")
func NewReservedSet(names ...string) ReservedSet {
	if len(names) == 0 {
		return nil
	}

	set := make(ReservedSet, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}

// Contains reports whether name is protected by the set. A nil or empty
// set protects nothing.
func (r ReservedSet) Contains(name string) bool {
	if len(r) == 0 {
		return false
	}

	_, ok := r[name]
	return ok
}

// Equal compares two columns for literal equality of name and type.
func (c Column) Equal(other Column) bool {
	return c.Name == other.Name && c.Type == other.Type
}

// Equal compares two column sets element-wise, order included.
func (cs ColumnSet) Equal(other ColumnSet) bool {
	return compare.Slices(cs, other, func(a, b Column) bool {
		return a.Equal(b)
	})
}

// Types returns a name->type mapping of the set. Later duplicates win,
// mirroring how the server would resolve them.
func (cs ColumnSet) Types() map[string]string {
	types := make(map[string]string, len(cs))
	for _, col := range cs {
		types[col.Name] = col.Type
	}
	return types
}
