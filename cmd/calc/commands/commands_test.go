package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zephyrtronium/calc/keypad"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := NewRoot()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestEvalArgs(t *testing.T) {
	out, err := run(t, "", "eval", "2+3*4", "(2+3)*4", "2×3")
	require.NoError(t, err)
	assert.Equal(t, "14\n20\n6\n", out)
}

func TestEvalStdin(t *testing.T) {
	out, err := run(t, "1 +\n2\n", "eval")
	require.NoError(t, err)
	assert.Equal(t, "3\n", out)
}

func TestEvalLines(t *testing.T) {
	out, err := run(t, "1+1\n\n  \n2*3\n", "eval", "-n")
	require.NoError(t, err)
	assert.Equal(t, "2\n6\n", out)
}

func TestEvalFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "exprs.txt")
	require.NoError(t, os.WriteFile(name, []byte("2**10\n7/2\n"), 0o600))
	out, err := run(t, "", "eval", "--in", name, "--lines", "1-1")
	require.NoError(t, err)
	assert.Equal(t, "1024\n3.5\n0\n", out)
}

func TestEvalMissingFile(t *testing.T) {
	_, err := run(t, "", "eval", "--in", filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestEvalErrors(t *testing.T) {
	out, err := run(t, "", "eval", "5/(2-2)", "1+1", "(1+2", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "3 of 4")
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, `2: division by zero "/"`, lines[0])
	assert.Equal(t, "2", lines[1])
	assert.Equal(t, `1: unbalanced parentheses "("`, lines[2])
	assert.Equal(t, "1: no expression", lines[3])
}

func TestEvalEcho(t *testing.T) {
	out, err := run(t, "", "eval", "--echo", "1+2*3")
	require.NoError(t, err)
	assert.Equal(t, "((1) + ((2) * (3))) : 7\n", out)
}

func TestEvalFormat(t *testing.T) {
	out, err := run(t, "", "--fmt", "%.3f", "eval", "1/3")
	require.NoError(t, err)
	assert.Equal(t, "0.333\n", out)
}

func TestEvalMaxExp(t *testing.T) {
	out, err := run(t, "", "--max-exp", "4", "eval", "15", "16")
	require.Error(t, err)
	assert.Equal(t, "15\n1: result is not finite \"16\"\n", out)

	out, err = run(t, "", "--max-exp", "0", "eval", "2**2000/2**1999")
	require.NoError(t, err)
	assert.Equal(t, "2\n", out)
}

func TestEvalPrec(t *testing.T) {
	out, err := run(t, "", "-p", "8", "--fmt", "%.10f", "eval", "1/3")
	require.NoError(t, err)
	assert.NotEqual(t, "0.3333333333\n", out)

	out, err = run(t, "", "-p", "100", "--fmt", "%.10f", "eval", "1/3")
	require.NoError(t, err)
	assert.Equal(t, "0.3333333333\n", out)
}

func TestPress(t *testing.T) {
	out, err := run(t, "", "press", "2", "+", "3", "Enter")
	require.NoError(t, err)
	assert.Equal(t, "2+3\n= 5\n", out)
}

func TestPressRunes(t *testing.T) {
	out, err := run(t, "", "press", "12+3*4", "=")
	require.NoError(t, err)
	assert.Equal(t, "12+3*4\n= 24\n", out)
}

func TestPressEdits(t *testing.T) {
	out, err := run(t, "", "press", "5", "±", "*", "-", "+", "2", "Backspace", "3", "=")
	require.NoError(t, err)
	assert.Equal(t, "-5*+3\n= -15\n", out)
}

func TestPressNoSubmit(t *testing.T) {
	out, err := run(t, "", "press", "Escape")
	require.NoError(t, err)
	assert.Equal(t, "0\n= 0\n", out)
}

func TestPressFailed(t *testing.T) {
	out, err := run(t, "", "press", "5/0", "=")
	assert.ErrorIs(t, err, errFailed)
	assert.Equal(t, "5/0\nerror: 2: division by zero \"/\"\n", out)
}

func TestPressUnknown(t *testing.T) {
	_, err := run(t, "", "press", "2+x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"x"`)
}

func TestReplRejectsWholeLine(t *testing.T) {
	out, err := run(t, "2+x\n3 =\n", "repl")
	require.NoError(t, err)
	assert.Equal(t, "error: unknown key \"x\"\n3\n= 3\n", out)
}

func TestPressAllUnknown(t *testing.T) {
	c := keypad.NewCalculator(nil)
	require.True(t, c.Press("4"))
	err := pressAll(c, []string{"+", "1y", "="})
	require.Error(t, err)
	assert.Equal(t, "4", c.Expression())
	require.NoError(t, pressAll(c, []string{"+", "1", "="}))
	r, err := c.Result()
	require.NoError(t, err)
	assert.Equal(t, "5", r.Text('g', 10))
}

func TestRepl(t *testing.T) {
	in := "1 + 2 =\n\n* 3 =\nq\nC 7 / 0 Enter\nquit\n9 =\n"
	out, err := run(t, in, "repl")
	require.NoError(t, err)
	want := "1+2\n= 3\n" +
		"1+2*3\n= 7\n" +
		"error: unknown key \"q\"\n" +
		"7/0\nerror: 2: division by zero \"/\"\n"
	assert.Equal(t, want, out)
}
