// Package ident validates SQL identifiers. One shared predicate covers
// table names, aliases, and column names.
package ident

import "regexp"

// namePattern matches a bare SQL identifier: a letter or underscore
// followed by letters, digits, or underscores. The whole string must match.
var namePattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// Valid reports whether name is acceptable as a table, alias, or column
// name: it must have the identifier shape and must not be a reserved
// keyword. Callers are not told which of the two conditions failed.
func Valid(name string) bool {
	return namePattern.MatchString(name) && !Reserved(name)
}
