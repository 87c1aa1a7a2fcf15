package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(args ...string) (string, string, error) {
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestWalkCmd(t *testing.T) {
	dataSet := []struct {
		args     []string
		expected string
	}{
		{[]string{"walk", "5", "3", "8", "1", "4", "7", "9"}, "1 3 4 5 7 8 9\n"},
		{[]string{"walk", "5,3,8,1,4,7,9", "--order", "pre"}, "5 3 1 4 8 7 9\n"},
		{[]string{"walk", "5,3,8,1,4,7,9", "-o", "post"}, "1 4 3 7 9 8 5\n"},
		{[]string{"walk", "5,3,8,1,4,7,9", "-o", "morris"}, "1 4 3 7 9 8 5\n"},
		{[]string{"walk", "5,3,8,1,4,7,9", "--delete", "5"}, "1 3 4 7 8 9\n"},
		{[]string{"walk", "5,3,8", "-d", "3,8,5", "-o", "morris"}, "\n"},
		{[]string{"walk"}, "\n"},
	}

	for _, d := range dataSet {
		out, _, err := run(d.args...)
		require.NoError(t, err, d.args)
		assert.Equal(t, d.expected, out, d.args)
	}
}

func TestWalkCmdErrors(t *testing.T) {
	_, _, err := run("walk", "1", "x")
	assert.ErrorContains(t, err, `invalid key "x"`)

	_, _, err = run("walk", "1", "--order", "level")
	assert.ErrorContains(t, err, "unknown traversal order")

	_, _, err = run("walk", "1", "--log-level", "loud")
	assert.Error(t, err)
}

func TestSearchCmd(t *testing.T) {
	out, _, err := run("search", "5,3,8,1,4,7,9", "--key", "4")
	require.NoError(t, err)
	assert.Equal(t, "4 found successor=5 predecessor=3\n", out)

	out, _, err = run("search", "5,3,8,1,4,7,9", "-k", "9")
	require.NoError(t, err)
	assert.Equal(t, "9 found successor=none predecessor=8\n", out)

	out, _, err = run("search", "5,3,8", "-k", "6")
	require.NoError(t, err)
	assert.Equal(t, "6 not found\n", out)
}

func TestDebugLogging(t *testing.T) {
	_, logs, err := run("walk", "2,1", "--delete", "2", "--log-level", "debug")
	require.NoError(t, err)
	assert.Contains(t, logs, "insert")
	assert.Contains(t, logs, "delete")
	assert.Contains(t, logs, "tree built")
}
