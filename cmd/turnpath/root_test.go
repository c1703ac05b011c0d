package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCmd(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.ExecuteContext(context.Background())

	return stdout.String(), stderr.String(), err
}

func writePoints(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "zigzag.txt")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func TestRoot_Solves(t *testing.T) {
	dir := t.TempDir()
	in := writePoints(t, dir, "0 0\n4 0\n4 3\n8 3\n8 7\n")
	out := filepath.Join(dir, "out")

	stdout, stderr, err := runCmd(t, "-p", in, "--out-dir", out, "--workers", "1", "--log-format", "json")
	require.NoError(t, err)
	assert.Contains(t, stdout, "length 15.000000 (exhausted, optimal=true)")
	assert.Contains(t, stdout, "path 0 1 2 3 4")
	assert.Contains(t, stderr, `"msg":"search finished"`)
	assert.FileExists(t, filepath.Join(out, "zigzag.yaml"))
	assert.FileExists(t, filepath.Join(out, "zigzag.svg"))
}

func TestRoot_Canvas(t *testing.T) {
	dir := t.TempDir()
	in := writePoints(t, dir, "0 0\n4 0\n4 3\n8 3\n8 7\n")
	out := filepath.Join(dir, "out")

	_, _, err := runCmd(t, "-p", in, "--out-dir", out, "--canvas-width", "400", "--canvas-height", "300")
	require.NoError(t, err)
	data, err := os.ReadFile(filepath.Join(out, "zigzag.svg"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `width="400"`)
	assert.Contains(t, string(data), `height="300"`)

	_, _, err = runCmd(t, "-p", in, "--out-dir", out, "--canvas-width", "10")
	require.Error(t, err)
}

func TestRoot_NoSolution(t *testing.T) {
	dir := t.TempDir()
	in := writePoints(t, dir, "0 0\n1 0\n")

	stdout, _, err := runCmd(t, "-p", in, "--out-dir", filepath.Join(dir, "out"))
	require.NoError(t, err)
	assert.Contains(t, stdout, "no solution (exhausted")
}

func TestRoot_Errors(t *testing.T) {
	dir := t.TempDir()

	_, _, err := runCmd(t, "--out-dir", dir)
	require.ErrorIs(t, err, errNoInput)

	bad := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte("1 2 3\n"), 0o644))
	_, _, err = runCmd(t, "-p", bad, "--out-dir", dir)
	require.Error(t, err)

	_, _, err = runCmd(t, "-p", bad, "--workers", "0")
	require.Error(t, err)

	_, _, err = runCmd(t, "-p", bad, "soon")
	require.Error(t, err)
}

func TestParseDuration(t *testing.T) {
	for in, want := range map[string]time.Duration{
		"90s":  90 * time.Second,
		"1m":   time.Minute,
		"45":   45 * time.Second,
		"2.5":  2500 * time.Millisecond,
		"0":    0,
		"10ms": 10 * time.Millisecond,
	} {
		got, err := parseDuration(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := parseDuration("-3")
	require.Error(t, err)
}
