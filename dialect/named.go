package dialect

import "strconv"

// Named renders placeholders as :p0, :p1, ... matching the keys produced by
// the query's named parameter export.
type Named struct{}

func NewNamedDialect() Dialect {
	return Named{}
}

func (Named) Name() string {
	return "named"
}

func (Named) Placeholder(n int) string {
	return ":p" + strconv.Itoa(n-1)
}

func (Named) RenderValue(v any) string {
	return renderLiteral(v)
}
