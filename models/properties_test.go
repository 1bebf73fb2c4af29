package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeOf_Accepted(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"string", "bar", "string"},
		{"bool", true, "bool"},
		{"int64", int64(42), "int"},
		{"int", 7, "int"},
		{"float", 3.5, "float"},
		{"string array", []any{"a", "b"}, "string[]"},
		{"typed int array", []int64{1, 2, 3}, "int[]"},
		{"float array", []any{1.5, 2.25}, "float[]"},
		{"bool array", []bool{true, false}, "bool[]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TypeOf(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestTypeOf_Rejected(t *testing.T) {
	tests := []struct {
		name  string
		value any
	}{
		{"null", nil},
		{"map", map[string]any{"a": "b"}},
		{"empty array", []any{}},
		{"mixed array", []any{"a", int64(1)}},
		{"int and float array", []any{int64(1), 1.5}},
		{"nested array", []any{[]any{"a"}}},
		{"array with null", []any{"a", nil}},
		{"uint64", uint64(1)},
		{"struct", struct{}{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := TypeOf(tt.value)
			assert.ErrorIs(t, err, ErrUnsupportedPropertyValue)
		})
	}
}

func TestParsePropertyType(t *testing.T) {
	for _, s := range []string{"string", "bool", "int", "float", "string[]", "bool[]", "int[]", "float[]"} {
		pt, err := ParsePropertyType(s)
		require.NoError(t, err, s)
		assert.Equal(t, s, pt.String())
	}

	for _, s := range []string{"", "[]", "map", "int[][]", "object"} {
		_, err := ParsePropertyType(s)
		assert.Error(t, err, s)
	}
}

func TestCloneProperties_DoesNotAlias(t *testing.T) {
	orig := map[string]any{
		"tags":  []any{"a", "b"},
		"ints":  []int64{1, 2},
		"name":  "x",
		"count": int64(3),
	}
	clone := CloneProperties(orig)
	assert.Equal(t, orig, clone)

	clone["tags"].([]any)[0] = "changed"
	clone["ints"].([]int64)[0] = 99
	clone["name"] = "y"

	assert.Equal(t, "a", orig["tags"].([]any)[0])
	assert.Equal(t, int64(1), orig["ints"].([]int64)[0])
	assert.Equal(t, "x", orig["name"])
}

func TestCloneProperties_Nil(t *testing.T) {
	clone := CloneProperties(nil)
	require.NotNil(t, clone)
	assert.Empty(t, clone)
}
