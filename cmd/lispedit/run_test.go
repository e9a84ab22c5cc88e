package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRunExpressions(t *testing.T) {
	stdout, _, err := execute(t, "run", "-e", "-p", "(def x 5)", "(+ x 1) (eq? x 5)")
	require.NoError(t, err)
	assert.Equal(t, "5\n6\ntrue\n", stdout)
}

func TestRunQuiet(t *testing.T) {
	stdout, _, err := execute(t, "run", "-e", "(+ 1 2)")
	require.NoError(t, err)
	assert.Empty(t, stdout)
}

func TestRunFault(t *testing.T) {
	stdout, stderr, err := execute(t, "run", "-e", "-p", "(+ 1 2)", "(assert (eq? 1 2))", "(+ 3 4)")
	assert.ErrorIs(t, err, errFailed)
	assert.Equal(t, "3\n", stdout)
	assert.Contains(t, stderr, "assertion failed")
}

func TestRunConventionalArithmetic(t *testing.T) {
	{
		stdout, _, err := execute(t, "run", "-e", "-p", "(- 10 3)")
		require.NoError(t, err)
		assert.Equal(t, "-3\n", stdout)
	}

	{
		stdout, _, err := execute(t, "--conventional-arith", "run", "-e", "-p", "(- 10 3)")
		require.NoError(t, err)
		assert.Equal(t, "7\n", stdout)
	}
}

func TestRunMaxDepth(t *testing.T) {
	_, stderr, err := execute(t, "--max-depth", "2", "run", "-e", "(+ 1 (+ 2 (+ 3 4)))")
	assert.ErrorIs(t, err, errFailed)
	assert.Contains(t, stderr, "nested too deeply")
}

func TestRunFiles(t *testing.T) {
	dir := t.TempDir()

	a := filepath.Join(dir, "a.lisp")
	b := filepath.Join(dir, "b.lisp")
	require.NoError(t, os.WriteFile(a, []byte("(def x 40)\n"), 0644))
	require.NoError(t, os.WriteFile(b, []byte("(+ x 2)\n"), 0644))

	stdout, _, err := execute(t, "run", "-p", a, b)
	require.NoError(t, err)
	assert.Equal(t, "40\n42\n", stdout)

	_, _, err = execute(t, "run", filepath.Join(dir, "missing.lisp"))
	assert.Error(t, err)
}

func TestRunTree(t *testing.T) {
	stdout, _, err := execute(t, "run", "-e", "--ast", "(+ 1 2)")
	require.NoError(t, err)
	assert.Contains(t, stdout, "(expression): ")
	assert.Contains(t, stdout, "    (symbol): + ")
	assert.Contains(t, stdout, "    (int): 2 ")
}

func TestRunReadExpressions(t *testing.T) {
	exprs, err := runReadExpressions([]string{"(+ 1 2)", "x"}, true)
	require.NoError(t, err)
	assert.Equal(t, [][]byte{[]byte("(+ 1 2)"), []byte("x")}, exprs)
}
