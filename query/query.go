// Package query builds SQL text incrementally from interpolated fragments.
//
// A Query holds the parsed clause buckets of one SELECT statement plus the
// parameter values extracted during interpolation. Queries are immutable by
// convention: Extend returns a fresh copy and never touches its receiver, so
// a shared base query can be branched from multiple goroutines without
// locking.
package query

import "slices"

// Query is the structured form of one SELECT statement. The zero value is an
// empty query that renders as "SELECT *".
type Query struct {
	selects []string
	from    string
	joins   []string
	wheres  []string
	groupBy []string
	orderBy []string
	limit   string
	offset  string

	// params maps 1-based placeholder ordinals to their values. paramCount
	// is the highest ordinal ever assigned and never decreases.
	params     map[int]any
	paramCount int

	errs []error
}

// New interpolates the template against values, then parses the result as a
// full statement. Each unescaped '?' in text consumes one value; see
// interpolate.go for the per-value rules.
func New(text string, values ...any) *Query {
	q := &Query{params: make(map[int]any)}
	q.parseStatement(q.interpolate(text, values))
	return q
}

// Parse builds a Query from a complete statement that is already final text.
// No interpolation happens; '?' characters pass through untouched.
func Parse(text string) *Query {
	q := &Query{params: make(map[int]any)}
	q.parseStatement(text)
	return q
}

// Extend returns a new Query with the interpolated fragment classified into
// the appropriate clause bucket. The receiver is never modified.
func (q *Query) Extend(text string, values ...any) *Query {
	next := q.clone()
	next.classify(next.interpolate(text, values))
	return next
}

// Apply is Extend for fragments that are already final text: the fragment is
// classified as-is, with no interpolation.
func (q *Query) Apply(fragment string) *Query {
	next := q.clone()
	next.classify(fragment)
	return next
}

// clone deep-copies the clause buckets and rebuilds the params map. Parameter
// values themselves are shared; they are never mutated once stored.
func (q *Query) clone() *Query {
	next := &Query{
		selects:    slices.Clone(q.selects),
		from:       q.from,
		joins:      slices.Clone(q.joins),
		wheres:     slices.Clone(q.wheres),
		groupBy:    slices.Clone(q.groupBy),
		orderBy:    slices.Clone(q.orderBy),
		limit:      q.limit,
		offset:     q.offset,
		params:     make(map[int]any, len(q.params)),
		paramCount: q.paramCount,
		errs:       slices.Clone(q.errs),
	}
	for ord, val := range q.params {
		next.params[ord] = val
	}
	return next
}

// Err returns the first error accumulated during interpolation, or nil.
// Classification itself never fails: unrecognized fragments land in the
// WHERE bucket instead of being rejected.
func (q *Query) Err() error {
	if len(q.errs) > 0 {
		return q.errs[0]
	}
	return nil
}

// Errs returns all accumulated errors.
func (q *Query) Errs() []error {
	return slices.Clone(q.errs)
}

func (q *Query) addErr(err error) {
	if err != nil {
		q.errs = append(q.errs, err)
	}
}
