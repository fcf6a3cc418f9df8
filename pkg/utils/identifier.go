package utils

import "strings"

// BacktickIdentifier adds backticks around an identifier, handling nested
// identifiers. It properly handles database.table style identifiers by
// backticking each part.
//
// Examples:
//   - "table" -> "`table`"
//   - "database.table" -> "`database`.`table`"
//   - "`table`" -> "`table`" (already backticked, not double-backticked)
//   - "" -> ""
func BacktickIdentifier(name string) string {
	if name == "" {
		return ""
	}

	// A fully backticked string with no inner backticks is a single
	// identifier that may legitimately contain dots.
	if len(name) >= 2 && name[0] == '`' && name[len(name)-1] == '`' {
		inner := name[1 : len(name)-1]
		if !strings.Contains(inner, "`") {
			return name
		}
	}

	parts := strings.Split(name, ".")
	for i, part := range parts {
		if len(part) >= 2 && part[0] == '`' && part[len(part)-1] == '`' {
			continue
		}
		parts[i] = "`" + part + "`"
	}
	return strings.Join(parts, ".")
}

// BacktickQualifiedName formats a qualified name (database.name) with
// proper backticks. If database is empty, only the name is backticked.
//
// Examples:
//   - ("analytics", "events") -> "`analytics`.`events`"
//   - ("", "events") -> "`events`"
func BacktickQualifiedName(database, name string) string {
	if database != "" {
		return BacktickIdentifier(database) + "." + BacktickIdentifier(name)
	}
	return BacktickIdentifier(name)
}

// StripBackticks removes backticks from an identifier if present.
//
// Examples:
//   - "`table`" -> "table"
//   - "`db`.`table`" -> "db.table"
func StripBackticks(s string) string {
	return strings.ReplaceAll(s, "`", "")
}
