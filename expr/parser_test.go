// Copyright (c) 2026 The ROBDD-Bulider Authors
//
// MIT License

package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		formula  string
		expected string
	}{
		{"a", "a"},
		{"!a", "!a"},
		{"!!a", "!!a"},
		{"a & b", "(a & b)"},
		{"a&b&c", "((a & b) & c)"},
		{"a | b | c", "((a | b) | c)"},
		{"a ^ b ^ c", "((a ^ b) ^ c)"},
		// & binds tighter than ^, which binds tighter than |
		{"a | b ^ c & d", "(a | (b ^ (c & d)))"},
		{"a & b | c", "((a & b) | c)"},
		// negation binds tighter than every connective
		{"!a & b", "(!a & b)"},
		{"!(a & b)", "!(a & b)"},
		{"!a | !b", "(!a | !b)"},
		// implication and bi-implication associate to the right
		{"a -> b -> c", "(a -> (b -> c))"},
		{"a <-> b <-> c", "(a <-> (b <-> c))"},
		{"a -> b <-> c", "((a -> b) <-> c)"},
		// parentheses override everything
		{"(a | b) & c", "((a | b) & c)"},
		{"(a & !c) | (b ^ d)", "((a & !c) | (b ^ d))"},
		{"a & (b | !c) -> d <-> e ^ f", "(((a & (b | !c)) -> d) <-> (e ^ f))"},
		{"x_1 & X2", "(x_1 & X2)"},
		{"  a\t&\nb  ", "(a & b)"},
	}
	for _, tt := range tests {
		e, err := Parse(tt.formula)
		require.NoError(t, err, "Parse(%q)", tt.formula)
		assert.Equal(t, tt.expected, e.String(), "Parse(%q)", tt.formula)
	}
}

func TestParseErrors(t *testing.T) {
	for _, formula := range []string{
		"",
		"a &",
		"& a",
		"(a | b",
		"a | b)",
		"a b",
		"a ? b",
		"a - b",
		"a < b",
		"!",
		"()",
	} {
		_, err := Parse(formula)
		assert.Error(t, err, "Parse(%q)", formula)
	}
}

func TestParseRoundtrip(t *testing.T) {
	// the canonical form parses back to itself
	for _, formula := range []string{
		"((a & !c) | (b ^ d))",
		"(a -> (b -> c))",
		"!(a <-> (b | !_x))",
	} {
		e, err := Parse(formula)
		require.NoError(t, err)
		back, err := Parse(e.String())
		require.NoError(t, err)
		assert.Equal(t, e, back)
	}
}

func TestVars(t *testing.T) {
	e, err := Parse("(a & !c) | (b ^ a)")
	require.NoError(t, err)
	assert.Equal(t, map[string]struct{}{"a": {}, "b": {}, "c": {}}, Vars(e))
	assert.Empty(t, Vars(Const(true)))
}
