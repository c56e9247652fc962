package sqlgen

import "fmt"

// Kind classifies generation failures.
type Kind string

// Generation failure kinds.
const (
	KindEmptyQuery           Kind = "empty_query"
	KindInvalidTableName     Kind = "invalid_table_name"
	KindInvalidAliasName     Kind = "invalid_alias_name"
	KindInvalidColumnName    Kind = "invalid_column_name"
	KindMissingJoinCondition Kind = "missing_join_condition"
)

// Error is a generation failure. Kinds that reject an identifier carry the
// offending name in Ident; the aggregate kinds leave it empty.
type Error struct {
	Kind  Kind
	Ident string
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindEmptyQuery:
		return "query must not be empty"
	case KindInvalidTableName:
		return fmt.Sprintf("table name %q is invalid or reserved", e.Ident)
	case KindInvalidAliasName:
		return fmt.Sprintf("alias %q is invalid or reserved", e.Ident)
	case KindInvalidColumnName:
		return fmt.Sprintf("column name %q is invalid or reserved", e.Ident)
	case KindMissingJoinCondition:
		return "every table after the first needs a join condition"
	}
	return string(e.Kind)
}
