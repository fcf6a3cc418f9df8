// Package compare provides generic comparison utilities for structural
// equality testing.
//
// These helpers eliminate the boilerplate of hand-rolled Equal() methods
// on slice- and map-shaped domain types, e.g. column sets and name->type
// mappings in the schema package:
//
//	return compare.Slices(a.Columns, b.Columns, func(x, y Column) bool {
//	    return x.Equal(y)
//	})
package compare
