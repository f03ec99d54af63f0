package query

import (
	"database/sql/driver"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// interpolate merges the template's literal segments with values. Each
// unescaped '?' consumes the next value; "??" emits a literal '?'. The
// resolved text always carries Postgres-style ordinals ($1, $2, ...) which
// dialects may rewrite at render time.
func (q *Query) interpolate(text string, values []any) string {
	if !strings.ContainsRune(text, '?') {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	next := 0
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c != '?' {
			b.WriteByte(c)
			continue
		}
		if i+1 < len(text) && text[i+1] == '?' {
			b.WriteByte('?')
			i++
			continue
		}
		if next < len(values) {
			b.WriteString(q.resolve(values[next]))
		} else {
			// Absent value: render as NULL, no parameter slot.
			b.WriteString("NULL")
		}
		next++
	}
	return b.String()
}

// resolve turns one embedded value into its in-text form, recording a
// parameter slot when the value is bindable.
func (q *Query) resolve(v any) string {
	switch val := v.(type) {
	case nil:
		return "NULL"
	case *Query:
		// Sub-query: splice its rendered text in place. Its parameters are
		// not merged into this query.
		return val.String()
	case Query:
		return val.String()
	case time.Time, []byte, driver.Valuer:
		return q.bind(val)
	}

	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Struct:
		return q.bindFirstField(rv)
	case reflect.Map:
		return q.bindSoleEntry(rv)
	}
	return q.bind(v)
}

// bind stores v under the next ordinal and returns its placeholder.
func (q *Query) bind(v any) string {
	q.paramCount++
	q.params[q.paramCount] = v
	return "$" + strconv.Itoa(q.paramCount)
}

// bindFirstField treats a struct as a parameter-bearing object: only the
// first exported field is bound. Additional exported fields are an error,
// not a silent drop.
func (q *Query) bindFirstField(rv reflect.Value) string {
	rt := rv.Type()
	exported := 0
	first := -1
	for i := 0; i < rt.NumField(); i++ {
		if !rt.Field(i).IsExported() {
			continue
		}
		if first < 0 {
			first = i
		}
		exported++
	}
	if first < 0 {
		q.addErr(fmt.Errorf("interpolate: struct %s has no exported fields to bind", rt))
		return "NULL"
	}
	if exported > 1 {
		q.addErr(fmt.Errorf("interpolate: struct %s has %d exported fields, only %s is bound", rt, exported, rt.Field(first).Name))
	}
	return q.bind(rv.Field(first).Interface())
}

// bindSoleEntry binds the value of a single-entry map. Go maps carry no key
// order, so a multi-entry map is ambiguous and rejected.
func (q *Query) bindSoleEntry(rv reflect.Value) string {
	if rv.Len() != 1 {
		q.addErr(fmt.Errorf("interpolate: map with %d entries is ambiguous, want exactly 1", rv.Len()))
		return "NULL"
	}
	iter := rv.MapRange()
	iter.Next()
	return q.bind(iter.Value().Interface())
}
