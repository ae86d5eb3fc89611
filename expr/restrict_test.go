// Copyright (c) 2026 The ROBDD-Bulider Authors
//
// MIT License

package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestrict(t *testing.T) {
	tests := []struct {
		formula  string
		name     string
		value    bool
		expected string
	}{
		{"a", "a", true, "true"},
		{"a", "a", false, "false"},
		{"a", "b", true, "a"},
		{"!a", "a", true, "false"},
		{"!a", "a", false, "true"},
		// unit and absorbing cases collapse
		{"a & b", "a", true, "b"},
		{"a & b", "a", false, "false"},
		{"a | b", "a", true, "true"},
		{"a | b", "a", false, "b"},
		{"a ^ b", "a", false, "b"},
		{"a ^ b", "a", true, "!b"},
		{"a -> b", "a", false, "true"},
		{"a -> b", "a", true, "b"},
		{"a -> b", "b", false, "!a"},
		{"a <-> b", "a", true, "b"},
		{"a <-> b", "a", false, "!b"},
		// substitution happens through every occurrence
		{"(a & b) | (a & c)", "a", true, "(b | c)"},
		{"(a & b) | (a & c)", "a", false, "false"},
		{"(a & !c) | (b ^ d)", "c", false, "(a | (b ^ d))"},
		// untouched subtrees are not restructured
		{"(b ^ d) & a", "a", true, "(b ^ d)"},
		{"b ^ d", "a", true, "(b ^ d)"},
	}
	for _, tt := range tests {
		e, err := Parse(tt.formula)
		require.NoError(t, err)
		r := Restrict(e, tt.name, tt.value)
		assert.Equal(t, tt.expected, r.String(), "Restrict(%q, %s:=%v)", tt.formula, tt.name, tt.value)
	}
}

func TestRestrictFoldsToConstant(t *testing.T) {
	e, err := Parse("a & (b | !c) -> d <-> e ^ f")
	require.NoError(t, err)
	assignment := map[string]bool{"a": true, "b": false, "c": true, "d": false, "e": true, "f": true}
	for name, v := range assignment {
		e = Restrict(e, name, v)
	}
	// a & (b | !c) == false, so the implication holds; e ^ f == false
	assert.Equal(t, Const(false), e)
}

func TestOperatorTruth(t *testing.T) {
	assert.True(t, OPand.Truth(true, true))
	assert.False(t, OPand.Truth(true, false))
	assert.True(t, OPor.Truth(false, true))
	assert.True(t, OPxor.Truth(true, false))
	assert.False(t, OPxor.Truth(true, true))
	assert.True(t, OPimp.Truth(false, false))
	assert.False(t, OPimp.Truth(true, false))
	assert.True(t, OPbiimp.Truth(false, false))
	assert.False(t, OPbiimp.Truth(false, true))
}
