// Package render turns queries into dialect-specific SQL, memoizing the
// rewritten text in an LRU cache keyed by query fingerprint.
package render

import (
	"regexp"
	"strconv"

	"github.com/Skediaio/literal-sql/cache"
	"github.com/Skediaio/literal-sql/dialect"
	"github.com/Skediaio/literal-sql/query"
	"github.com/Skediaio/literal-sql/utils"
)

// ordinalPattern matches the canonical $N placeholders baked into query text.
var ordinalPattern = regexp.MustCompile(`\$(\d+)`)

type Renderer struct {
	dialect dialect.Dialect
	qcache  *cache.RenderCache
}

// New returns a Renderer for d. The cache is optional; pass nil to rewrite
// on every call.
func New(d dialect.Dialect, c *cache.RenderCache) *Renderer {
	return &Renderer{dialect: d, qcache: c}
}

// Build renders q through the dialect and exports its positional parameters.
// Interpolation errors accumulated on q surface here, before any text is
// produced.
func (r *Renderer) Build(q *query.Query) (string, []any, error) {
	if err := q.Err(); err != nil {
		return "", nil, err
	}

	canonical := q.String()
	key := utils.Mix64(utils.FingerprintString(r.dialect.Name()), utils.FingerprintString(canonical))

	if r.qcache != nil {
		if sql, ok := r.qcache.Get(key); ok {
			return sql, q.Params(), nil
		}
	}

	sql := r.rewrite(canonical)
	if r.qcache != nil {
		r.qcache.Set(key, sql)
	}
	return sql, q.Params(), nil
}

// Inline renders q with every placeholder replaced by its value as a SQL
// literal. Debug output only; inlined text must never reach a database.
func (r *Renderer) Inline(q *query.Query) string {
	params := q.Params()
	return ordinalPattern.ReplaceAllStringFunc(q.String(), func(m string) string {
		n, err := strconv.Atoi(m[1:])
		if err != nil || n < 1 || n > len(params) {
			return m
		}
		return r.dialect.RenderValue(params[n-1])
	})
}

// rewrite maps canonical ordinals onto the dialect's placeholder syntax.
func (r *Renderer) rewrite(canonical string) string {
	return ordinalPattern.ReplaceAllStringFunc(canonical, func(m string) string {
		n, err := strconv.Atoi(m[1:])
		if err != nil || n < 1 {
			return m
		}
		return r.dialect.Placeholder(n)
	})
}

// Named renders q with :pN placeholders and exports the matching named
// parameter map. Compatibility adapter for drivers wanting named arguments;
// the positional form is the canonical contract.
func Named(q *query.Query) (string, map[string]any, error) {
	if err := q.Err(); err != nil {
		return "", nil, err
	}
	r := Renderer{dialect: dialect.NewNamedDialect()}
	return r.rewrite(q.String()), q.NamedParams(), nil
}
