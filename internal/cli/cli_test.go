package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCLI runs worddiff with args in an environment without a user config file.
func runCLI(t *testing.T, stdin string, args ...string) (int, string, string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var out, errOut bytes.Buffer
	code, err := Run(append([]string{"worddiff"}, args...), &RunOptions{
		In:  strings.NewReader(stdin),
		Out: &out,
		Err: &errOut,
	})
	return code, out.String(), errOut.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRun_Help(t *testing.T) {
	code, out, errOut, err := runCLI(t, "", "-h")
	require.NoError(t, err)
	assert.Equal(t, ExitEqual, code)
	assert.Contains(t, out, "worddiff [flags] OLD NEW")
	assert.Contains(t, out, "--policy")
	assert.Empty(t, errOut)
}

func TestRun_Version(t *testing.T) {
	code, out, _, err := runCLI(t, "", "--version")
	require.NoError(t, err)
	assert.Equal(t, ExitEqual, code)
	assert.Contains(t, out, Version)
}

func TestRun_Equal(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "same text\n")
	b := writeFile(t, dir, "b.txt", "same text\n")

	code, out, errOut, err := runCLI(t, "", a, b)
	require.NoError(t, err)
	assert.Equal(t, ExitEqual, code)
	assert.Empty(t, out)
	assert.Empty(t, errOut)
}

func TestRun_Unified(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "a\nb\n")
	b := writeFile(t, dir, "b.txt", "a\nc\n")

	code, out, _, err := runCLI(t, "", a, b)
	require.NoError(t, err)
	assert.Equal(t, ExitDifferent, code)
	exp := "--- " + a + "\n" +
		"+++ " + b + "\n" +
		"@@ -1,2 +1,2 @@\n" +
		" a\n" +
		"-b\n" +
		"+c\n"
	assert.Equal(t, exp, out)
	assert.NotContains(t, out, "\x1b[")
}

func TestRun_Blocks(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "a\nb\n")
	b := writeFile(t, dir, "b.txt", "a\nc\n")

	code, out, _, err := runCLI(t, "", "--view", "blocks", a, b)
	require.NoError(t, err)
	assert.Equal(t, ExitDifferent, code)
	exp := "block 0 [0, 2] - [0, 2] newlines 1/1\n" +
		"block 1 [2, 4] - [2, 4] newlines 1/1\n" +
		"  [0, 1] - [0, 1] \"b\" -> \"c\"\n"
	assert.Equal(t, exp, out)
}

func TestRun_InlineFromStdin(t *testing.T) {
	b := writeFile(t, t.TempDir(), "new.txt", "unchanged new1 unchanged")

	code, out, _, err := runCLI(t, "unchanged old1 unchanged", "--view=inline", "-", b)
	require.NoError(t, err)
	assert.Equal(t, ExitDifferent, code)
	assert.Equal(t, "unchanged [-old1-]{+new1+} unchanged\n", out)
}

func TestRun_ColorAlways(t *testing.T) {
	b := writeFile(t, t.TempDir(), "new.txt", "x y\n")

	code, out, _, err := runCLI(t, "x z\n", "--view", "inline", "--color", "always", "-", b)
	require.NoError(t, err)
	assert.Equal(t, ExitDifferent, code)
	assert.Contains(t, out, "\x1b[")
	assert.NotContains(t, out, "[-")
}

func TestRun_SideBySide(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "a\nb\n")
	b := writeFile(t, dir, "b.txt", "a\nc\n")

	code, out, _, err := runCLI(t, "", "--view", "side-by-side", "--width", "21", a, b)
	require.NoError(t, err)
	assert.Equal(t, ExitDifferent, code)
	exp := "a" + strings.Repeat(" ", 11) + "a\n" +
		"b" + strings.Repeat(" ", 9) + "| c\n"
	assert.Equal(t, exp, out)
}

func TestRun_Policy(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "foo bar\n")
	b := writeFile(t, dir, "b.txt", "foo   bar\n")

	code, _, _, err := runCLI(t, "", a, b)
	require.NoError(t, err)
	assert.Equal(t, ExitDifferent, code)

	code, out, _, err := runCLI(t, "", "--policy", "ignore-whitespace", a, b)
	require.NoError(t, err)
	assert.Equal(t, ExitEqual, code)
	assert.Empty(t, out)
}

func TestRun_ConfigFileAndFlagPrecedence(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "a\nb\n")
	b := writeFile(t, dir, "b.txt", "a\nc\n")
	cfg := writeFile(t, dir, "worddiff.toml", "view = \"blocks\"\ncolor = \"never\"\n")

	_, out, _, err := runCLI(t, "", "--config", cfg, a, b)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "block 0 "), out)

	_, out, _, err = runCLI(t, "", "--config", cfg, "--view", "inline", a, b)
	require.NoError(t, err)
	assert.Equal(t, "a\n[-b-]{+c+}\n", out)
}

func TestRun_UserConfigDir(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "foo bar\n")
	b := writeFile(t, dir, "b.txt", "foo   bar\n")

	xdg := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(xdg, "worddiff"), 0o755))
	writeFile(t, filepath.Join(xdg, "worddiff"), "config.toml", `policy = "ignore-whitespace"`)
	t.Setenv("XDG_CONFIG_HOME", xdg)

	var out bytes.Buffer
	code, err := Run([]string{"worddiff", a, b}, &RunOptions{Out: &out, Err: &bytes.Buffer{}})
	require.NoError(t, err)
	assert.Equal(t, ExitEqual, code)
}

func TestRun_Errors(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "a\n")
	badCfg := writeFile(t, dir, "bad.toml", `policy = "loose"`)

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"no args", nil, "accepts 2 arg"},
		{"one arg", []string{a}, "accepts 2 arg"},
		{"both stdin", []string{"-", "-"}, "standard input"},
		{"missing file", []string{a, filepath.Join(dir, "missing.txt")}, "missing.txt"},
		{"bad policy", []string{"--policy", "loose", a, a}, "--policy"},
		{"bad algorithm", []string{"--algorithm", "histogram", a, a}, "--algorithm"},
		{"bad view", []string{"--view", "split", a, a}, "--view"},
		{"bad color", []string{"--color", "maybe", a, a}, "--color"},
		{"negative context", []string{"--context", "-1", a, a}, "context"},
		{"unknown flag", []string{"--frobnicate", a, a}, "frobnicate"},
		{"bad config", []string{"--config", badCfg, a, a}, "policy"},
		{"missing config", []string{"--config", filepath.Join(dir, "nope.toml"), a, a}, "nope.toml"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, errOut, err := runCLI(t, "", tt.args...)
			require.Error(t, err)
			assert.Equal(t, ExitError, code)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.True(t, strings.HasPrefix(errOut, "worddiff: "), errOut)
		})
	}
}
