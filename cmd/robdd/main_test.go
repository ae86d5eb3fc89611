// Copyright (c) 2026 The ROBDD-Bulider Authors
//
// MIT License

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunExample(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "out.dot")
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"(a & !c) | (b ^ d)", "-o", filename})
	require.NoError(t, rootCmd.Execute())
	out := buf.String()
	assert.Contains(t, out, "Variable Ordering: a, b, c, d")
	assert.Contains(t, out, "ROBDD Root ID:     14")
	content, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Contains(t, string(content), "digraph ROBDD {")
}

func TestRunParseError(t *testing.T) {
	rootCmd.SetOut(new(bytes.Buffer))
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetArgs([]string{"a &", "-o", filepath.Join(t.TempDir(), "out.dot")})
	assert.Error(t, rootCmd.Execute())
}

func TestRunExplicitOrdering(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "out.dot")
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"a & b", "--ordering", "b,a", "-o", filename})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, buf.String(), "Variable Ordering: b, a")
}
