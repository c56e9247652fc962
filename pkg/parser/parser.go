// Package parser turns line-oriented table descriptions into structured
// descriptors. Each input line describes one table:
//
//	<table> [ - <alias> ] : [ <column> ... ] : <join condition>
//
// Segments are separated by the literal " : ". Parsing has no failure path:
// malformed lines degrade into partial descriptors and are caught later by
// validation.
package parser

import "strings"

// Descriptor is the parsed form of one input line. It is constructed once
// per line and never mutated afterwards.
type Descriptor struct {
	// Name is the SQL table name.
	Name string
	// Alias is the table alias, or empty when the line declares none.
	Alias string
	// Columns are the projected columns in input order, defaulting to ["*"].
	Columns []string
	// JoinCondition is the raw ON expression, or empty when the line
	// declares none. It is copied verbatim into the generated SQL.
	JoinCondition string
}

// Qualifier returns the name used to qualify this table's columns in the
// SELECT list: the alias when present, the table name otherwise.
func (d Descriptor) Qualifier() string {
	if d.Alias != "" {
		return d.Alias
	}
	return d.Name
}

// ParseLine parses a single table description line into a Descriptor.
//
// The table spec segment is split on whitespace; the first field is the
// table name. A standalone "-" field marks the next field as the alias.
// A trailing "-" with nothing after it yields no alias, and only the first
// "-" is consulted. Segments past the third are ignored, so a join
// condition containing a standalone ":" is cut off at the separator.
func ParseLine(line string) Descriptor {
	segments := splitSegments(strings.TrimSpace(line))

	fields := strings.Fields(segments[0])
	var name string
	if len(fields) > 0 {
		name = fields[0]
	}

	var alias string
	for i, f := range fields {
		if f == "-" {
			if i+1 < len(fields) {
				alias = fields[i+1]
			}
			break
		}
	}

	columns := []string{"*"}
	if len(segments) > 1 {
		if cols := strings.Fields(segments[1]); len(cols) > 0 {
			columns = cols
		}
	}

	var join string
	if len(segments) > 2 {
		join = segments[2]
	}

	return Descriptor{
		Name:          name,
		Alias:         alias,
		Columns:       columns,
		JoinCondition: join,
	}
}

// splitSegments splits a line on standalone ":" separators: a colon with
// whitespace or the line edge on both sides. Splitting on the literal
// " : " would let adjacent separators swallow each other's shared space,
// turning the dangling separator in "products : :" into a ":" column
// instead of an empty segment. Each returned segment is trimmed.
func splitSegments(line string) []string {
	var segments []string
	start := 0
	for i := 0; i < len(line); i++ {
		if line[i] != ':' {
			continue
		}
		before := i == start || line[i-1] == ' '
		after := i == len(line)-1 || line[i+1] == ' '
		if before && after {
			segments = append(segments, strings.TrimSpace(line[start:i]))
			start = i + 1
		}
	}
	return append(segments, strings.TrimSpace(line[start:]))
}

// ParseQuery splits a multi-line query into one Descriptor per line,
// preserving input order. The order determines FROM/JOIN clause order and
// column qualification order downstream.
//
// Note that strings.Split never returns an empty slice, so a blank input
// still yields a single descriptor with an empty table name rather than
// nothing.
func ParseQuery(query string) []Descriptor {
	lines := strings.Split(strings.TrimSpace(query), "\n")
	descriptors := make([]Descriptor, 0, len(lines))
	for _, line := range lines {
		descriptors = append(descriptors, ParseLine(line))
	}
	return descriptors
}
