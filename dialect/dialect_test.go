package dialect

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPlaceholders(t *testing.T) {
	tests := []struct {
		name    string
		dialect Dialect
		n       int
		want    string
	}{
		{"postgres first", NewPostgresDialect(), 1, "$1"},
		{"postgres tenth", NewPostgresDialect(), 10, "$10"},
		{"mysql is positional", NewMySQLDialect(), 3, "?"},
		{"named first", NewNamedDialect(), 1, ":p0"},
		{"named third", NewNamedDialect(), 3, ":p2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.dialect.Placeholder(tt.n))
		})
	}
}

func TestDialectNames(t *testing.T) {
	assert.Equal(t, "postgres", NewPostgresDialect().Name())
	assert.Equal(t, "mysql", NewMySQLDialect().Name())
	assert.Equal(t, "named", NewNamedDialect().Name())
}

func TestRenderValue(t *testing.T) {
	d := NewPostgresDialect()

	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, "NULL"},
		{"string", "John", "'John'"},
		{"string with quote", "O'Brien", "'O''Brien'"},
		{"true", true, "TRUE"},
		{"false", false, "FALSE"},
		{"int", 42, "42"},
		{"negative int", int64(-7), "-7"},
		{"uint", uint(8), "8"},
		{"float", 1.5, "1.5"},
		{"time", time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC), "'2024-03-01 12:30:00.000000'"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, d.RenderValue(tt.in))
		})
	}
}
