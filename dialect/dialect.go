// Package dialect maps canonical $N placeholders onto the parameter syntax a
// driver expects, and renders values as SQL literals for debug output.
package dialect

type Dialect interface {
	// Name identifies the dialect; used in render cache keys.
	Name() string
	// Placeholder returns the in-text form of the 1-based parameter n.
	Placeholder(n int) string
	// RenderValue renders v as an inline SQL literal.
	RenderValue(v any) string
}
