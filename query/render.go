package query

import "strings"

// unresolvedMarker is the substring left behind when caller-assembled text
// leaked a nil through fmt. Expression-valued clauses containing it are
// suppressed rather than rendered broken.
const unresolvedMarker = "<nil>"

// String renders the canonical indented form of the query. It is a pure
// function of the clause buckets: connectives are already baked into WHERE
// entries and placeholders are already numbered, so rendering is pure
// assembly. Clause order is fixed: SELECT, FROM, joins, WHERE, GROUP BY,
// ORDER BY, LIMIT, OFFSET.
func (q *Query) String() string {
	blocks := make([]string, 0, 8)

	if len(q.selects) > 0 {
		blocks = append(blocks, "SELECT\n  "+strings.Join(q.selects, ",\n  "))
	} else {
		blocks = append(blocks, "SELECT *")
	}

	if q.from != "" {
		blocks = append(blocks, "FROM "+q.from)
	}

	blocks = append(blocks, q.joins...)

	if len(q.wheres) > 0 {
		blocks = append(blocks, "WHERE "+strings.Join(q.wheres, "\n  "))
	}

	if exprs := renderableExprs(q.groupBy); len(exprs) > 0 {
		blocks = append(blocks, "GROUP BY "+strings.Join(exprs, ", "))
	}
	if exprs := renderableExprs(q.orderBy); len(exprs) > 0 {
		blocks = append(blocks, "ORDER BY "+strings.Join(exprs, ", "))
	}

	if renderableScalar(q.limit) {
		blocks = append(blocks, "LIMIT "+q.limit)
	}
	if renderableScalar(q.offset) {
		blocks = append(blocks, "OFFSET "+q.offset)
	}

	return strings.Join(blocks, "\n")
}

// renderableExprs drops entries that would render as noise: empty strings,
// stray commas and entries holding an unresolved placeholder.
func renderableExprs(exprs []string) []string {
	out := make([]string, 0, len(exprs))
	for _, e := range exprs {
		if e == "" || e == "," || strings.Contains(e, unresolvedMarker) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func renderableScalar(s string) bool {
	return s != "" && !strings.Contains(s, unresolvedMarker)
}
