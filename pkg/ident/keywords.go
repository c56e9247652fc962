package ident

import "strings"

// reserved is the fixed set of SQL keywords that can never be used as an
// identifier, regardless of case.
var reserved = map[string]struct{}{
	"SELECT":   {},
	"FROM":     {},
	"WHERE":    {},
	"INSERT":   {},
	"UPDATE":   {},
	"DELETE":   {},
	"JOIN":     {},
	"GROUP":    {},
	"ORDER":    {},
	"BY":       {},
	"HAVING":   {},
	"IN":       {},
	"IS":       {},
	"NULL":     {},
	"AND":      {},
	"OR":       {},
	"NOT":      {},
	"LIKE":     {},
	"BETWEEN":  {},
	"EXISTS":   {},
	"DISTINCT": {},
	"CASE":     {},
	"WHEN":     {},
	"THEN":     {},
	"ELSE":     {},
	"END":      {},
}

// Reserved reports whether name equals a reserved SQL keyword, ignoring case.
func Reserved(name string) bool {
	_, ok := reserved[strings.ToUpper(name)]
	return ok
}
