// Package sqlgen assembles a single SELECT ... JOIN statement from parsed
// table descriptors.
package sqlgen

import (
	"strings"

	"github.com/joinforge-labs/joinforge/pkg/ident"
	"github.com/joinforge-labs/joinforge/pkg/parser"
)

// Wildcard is the column token meaning "all columns". It is exempt from
// identifier validation and qualified like any other column (t.*).
const Wildcard = "*"

// Generate turns a multi-line table description into a SQL SELECT
// statement. Failures come back as a *Error carrying the failure kind and,
// where applicable, the offending identifier; the first violation wins and
// nothing is aggregated except the join-condition check, which reports a
// single error no matter how many lines are affected.
//
// Generate is pure: no shared state, and identical input yields identical
// output.
func Generate(query string) (string, error) {
	descriptors := parser.ParseQuery(query)
	if len(descriptors) == 0 {
		// Unreachable in practice: splitting on newlines always yields at
		// least one line, so a blank input surfaces as an invalid (empty)
		// table name instead. Kept to match the documented contract.
		return "", &Error{Kind: KindEmptyQuery}
	}
	if err := validate(descriptors); err != nil {
		return "", err
	}
	return assemble(descriptors), nil
}

// validate checks every descriptor against the identifier rules, in input
// order, then applies the cross-line join-condition invariant.
func validate(descriptors []parser.Descriptor) error {
	for _, d := range descriptors {
		if !ident.Valid(d.Name) {
			return &Error{Kind: KindInvalidTableName, Ident: d.Name}
		}
		if d.Alias != "" && !ident.Valid(d.Alias) {
			return &Error{Kind: KindInvalidAliasName, Ident: d.Alias}
		}
		for _, col := range d.Columns {
			if col != Wildcard && !ident.Valid(col) {
				return &Error{Kind: KindInvalidColumnName, Ident: col}
			}
		}
	}

	for i, d := range descriptors {
		if i > 0 && d.JoinCondition == "" {
			return &Error{Kind: KindMissingJoinCondition}
		}
	}
	return nil
}

// assemble renders the final statement. The first descriptor becomes the
// FROM clause, each subsequent one a JOIN clause on its own line, and every
// column is qualified by its table's alias or name.
func assemble(descriptors []parser.Descriptor) string {
	var columns []string
	var from string
	var joins strings.Builder

	for i, d := range descriptors {
		if i == 0 {
			from = "FROM " + d.Name
			if d.Alias != "" {
				from += " AS " + d.Alias
			}
		} else {
			joins.WriteString("\nJOIN " + d.Name)
			if d.Alias != "" {
				joins.WriteString(" AS " + d.Alias)
			}
			joins.WriteString(" ON " + d.JoinCondition)
		}

		for _, col := range d.Columns {
			columns = append(columns, d.Qualifier()+"."+col)
		}
	}

	return "SELECT " + strings.Join(columns, ", ") + " " + from + joins.String() + ";"
}
