package schema

import (
	"fmt"

	"github.com/clickops/clickops/pkg/utils"
)

type (
	// Op identifies the kind of schema mutation a ChangeOp performs.
	Op string

	// ChangeOp is one column mutation instruction produced by Diff and
	// consumed by the alter statement renderer. Type is empty for drops.
	ChangeOp struct {
		Op   Op     `yaml:"op" json:"op"`
		Name string `yaml:"name" json:"name"`
		Type string `yaml:"type,omitempty" json:"type,omitempty"`
	}
)

const (
	// OpAdd adds a column that exists in the desired schema only.
	OpAdd Op = "add"

	// OpModify changes the type of a column present in both schemas.
	OpModify Op = "modify"

	// OpDrop removes a column that exists in the observed schema only.
	OpDrop Op = "drop"
)

// Diff compares an observed column set against a desired one and returns
// the ordered change operations that transform old into new.
//
// The comparison runs in three passes:
//
//  1. Build name->type mappings for both sets.
//  2. Walk new in its given order: names absent from old become adds,
//     names present with a different type string become modifies.
//  3. Walk old in its given order: names absent from new become drops,
//     unless protected by reserved.
//
// Type comparison is plain string equality - "UInt8" and "Uint8" are
// different types as far as Diff is concerned. At most one ChangeOp is
// emitted per column name. An empty old yields all adds; an empty new
// yields all drops (subject to reserved); identical sets yield nil.
//
// Diff performs no I/O and cannot fail; well-formed inputs (unique names
// within each set) are a precondition, not something it validates.
//
// Example:
//
//	old := schema.ColumnSet{{Name: "a", Type: "UInt8"}}
//	new := schema.ColumnSet{{Name: "a", Type: "UInt16"}, {Name: "b", Type: "String"}}
//
//	changes := schema.Diff(old, new, nil)
//	// => [{modify a UInt16}, {add b String}]
func Diff(old, new ColumnSet, reserved ReservedSet) []ChangeOp {
	oldTypes := old.Types()
	newTypes := new.Types()

	var changes []ChangeOp

	for _, col := range new {
		oldType, ok := oldTypes[col.Name]
		switch {
		case !ok:
			changes = append(changes, ChangeOp{Op: OpAdd, Name: col.Name, Type: col.Type})
		case oldType != col.Type:
			changes = append(changes, ChangeOp{Op: OpModify, Name: col.Name, Type: col.Type})
		}
	}

	for _, col := range old {
		if _, ok := newTypes[col.Name]; ok {
			continue
		}
		if reserved.Contains(col.Name) {
			continue
		}
		changes = append(changes, ChangeOp{Op: OpDrop, Name: col.Name})
	}

	return changes
}

// Clause renders the change as a single ALTER TABLE clause fragment,
// e.g. "ADD COLUMN `b` String" or "DROP COLUMN `a`". Column names are
// backticked; type strings are emitted verbatim.
func (c ChangeOp) Clause() string {
	switch c.Op {
	case OpAdd:
		return fmt.Sprintf("ADD COLUMN %s %s", utils.BacktickIdentifier(c.Name), c.Type)
	case OpModify:
		return fmt.Sprintf("MODIFY COLUMN %s %s", utils.BacktickIdentifier(c.Name), c.Type)
	case OpDrop:
		return fmt.Sprintf("DROP COLUMN %s", utils.BacktickIdentifier(c.Name))
	default:
		return ""
	}
}

// Equal compares two change operations field-wise.
func (c ChangeOp) Equal(other ChangeOp) bool {
	return c.Op == other.Op && c.Name == other.Name && c.Type == other.Type
}
