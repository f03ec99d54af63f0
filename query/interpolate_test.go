package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterpolatePrimitives(t *testing.T) {
	q := New("SELECT id\nFROM users\nWHERE id = ? AND name = ? AND active = ?", 42, "John", true)

	require.NoError(t, q.Err())
	assert.Equal(t,
		"SELECT\n  id\nFROM users\nWHERE id = $1 AND name = $2 AND active = $3",
		q.String())
	assert.Equal(t, []any{42, "John", true}, q.Params())
}

func TestInterpolateAbsentValueEmitsNull(t *testing.T) {
	q := New("SELECT id\nFROM users\nWHERE deleted_at = ?")

	require.NoError(t, q.Err())
	assert.Equal(t, "SELECT\n  id\nFROM users\nWHERE deleted_at = NULL", q.String())
	assert.Zero(t, q.ParamCount())
	assert.Nil(t, q.Params())
}

func TestInterpolateNilEmitsNull(t *testing.T) {
	q := New("SELECT id\nFROM users\nWHERE parent_id = ?", nil)

	require.NoError(t, q.Err())
	assert.Contains(t, q.String(), "parent_id = NULL")
	assert.Zero(t, q.ParamCount())
}

func TestInterpolateEscapedMarker(t *testing.T) {
	q := New("SELECT id\nFROM users\nWHERE tags ?? 'admin' AND id = ?", 7)

	assert.Contains(t, q.String(), "tags ? 'admin' AND id = $1")
	assert.Equal(t, []any{7}, q.Params())
}

func TestInterpolateSingleFieldStruct(t *testing.T) {
	type idArg struct{ ID int }

	q := New("SELECT id\nFROM users\nWHERE id = ?", idArg{ID: 9})

	require.NoError(t, q.Err())
	assert.Contains(t, q.String(), "id = $1")
	assert.Equal(t, []any{9}, q.Params())
}

func TestInterpolateMultiFieldStructBindsFirstAndErrs(t *testing.T) {
	type pair struct {
		A int
		B string
	}

	q := New("SELECT id\nFROM users\nWHERE a = ?", pair{A: 1, B: "x"})

	require.Error(t, q.Err())
	assert.Contains(t, q.String(), "a = $1")
	assert.Equal(t, []any{1}, q.Params())
}

func TestInterpolateSingleEntryMap(t *testing.T) {
	q := New("SELECT id\nFROM users\nWHERE id = ?", map[string]any{"id": 7})

	require.NoError(t, q.Err())
	assert.Equal(t, []any{7}, q.Params())
}

func TestInterpolateMultiEntryMapIsError(t *testing.T) {
	q := New("SELECT id\nFROM users\nWHERE id = ?", map[string]any{"a": 1, "b": 2})

	require.Error(t, q.Err())
	assert.Contains(t, q.String(), "id = NULL")
	assert.Zero(t, q.ParamCount())
}

func TestInterpolateSubQueryInlinesTextWithoutMergingParams(t *testing.T) {
	sub := New("SELECT id\nFROM teams\nWHERE size > ?", 10)
	q := baseUsers().Extend("WHERE team_id IN (?)", sub)

	require.NoError(t, q.Err())
	assert.Equal(t,
		"SELECT\n  id\nFROM users\nWHERE team_id IN (SELECT\n  id\nFROM teams\nWHERE size > $1)",
		q.String())
	// The sub-query's parameters stay with the sub-query.
	assert.Zero(t, q.ParamCount())
	assert.Equal(t, []any{10}, sub.Params())
}

func TestInterpolateCumulativeNumberingAcrossExtends(t *testing.T) {
	q := New("SELECT * FROM users").
		Extend("WHERE id = ?", 1).
		Extend("AND name = ?", "John")

	require.NoError(t, q.Err())
	assert.Equal(t,
		"SELECT\n  * FROM users\nWHERE id = $1\n  AND name = $2",
		q.String())
	assert.Equal(t, []any{1, "John"}, q.Params())
}
