package query

import "strconv"

// Params exports the parameter values as a dense positional array: index i
// holds the value bound to placeholder $i+1. This is the canonical export,
// matching the $N placeholders in the rendered text.
func (q *Query) Params() []any {
	if q.paramCount == 0 {
		return nil
	}
	out := make([]any, q.paramCount)
	for ord, val := range q.params {
		if ord >= 1 && ord <= q.paramCount {
			out[ord-1] = val
		}
	}
	return out
}

// NamedParams exports the parameters under generated names: placeholder $N
// becomes key "p<N-1>". Pair with the dialect that rewrites placeholders to
// :p0, :p1, ... for drivers that want named arguments.
func (q *Query) NamedParams() map[string]any {
	if q.paramCount == 0 {
		return nil
	}
	out := make(map[string]any, q.paramCount)
	for ord, val := range q.params {
		out["p"+strconv.Itoa(ord-1)] = val
	}
	return out
}

// ParamCount reports the highest placeholder ordinal assigned so far.
func (q *Query) ParamCount() int {
	return q.paramCount
}
