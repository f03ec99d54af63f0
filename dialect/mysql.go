package dialect

type MySQL struct{}

func NewMySQLDialect() Dialect {
	return MySQL{}
}

func (MySQL) Name() string {
	return "mysql"
}

// Placeholder is positional for MySQL; argument order must match marker
// order, which holds because canonical ordinals are assigned left to right.
func (MySQL) Placeholder(n int) string {
	return "?"
}

func (MySQL) RenderValue(v any) string {
	return renderLiteral(v)
}
