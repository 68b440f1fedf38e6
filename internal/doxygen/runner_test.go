package doxygen

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeStub installs a fake generator script on PATH and returns its name.
func writeStub(t *testing.T, script string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "fakedoxygen")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o755))
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
	return "fakedoxygen"
}

func TestResultStrings(t *testing.T) {
	res := Result{Stdout: []byte("  1.9.8\n"), Stderr: []byte("warning: foo\n")}

	assert.Equal(t, "1.9.8", res.StdoutString(true))
	assert.Equal(t, "  1.9.8\n", res.StdoutString(false))
	assert.Equal(t, "warning: foo", res.StderrString(true))
}

func TestRunnerRun(t *testing.T) {
	binary := writeStub(t, `echo "out $1"; echo "err" >&2`)
	r := Runner{Binary: binary}

	res, err := r.Run("Doxyfile")
	require.NoError(t, err)
	assert.Equal(t, "out Doxyfile", res.StdoutString(true))
	assert.Equal(t, "err", res.StderrString(true))
}

func TestRunnerRunNonZeroExit(t *testing.T) {
	binary := writeStub(t, `echo "broken config" >&2; exit 3`)
	r := Runner{Binary: binary}

	res, err := r.Run("Doxyfile")
	assert.Error(t, err)
	assert.Equal(t, "broken config", res.StderrString(true))
}

func TestRunnerRunMissingBinary(t *testing.T) {
	r := Runner{Binary: "definitely-not-a-real-binary-12345"}

	_, err := r.Run("--version")
	assert.Error(t, err)
}

func TestRunnerVerboseLogging(t *testing.T) {
	binary := writeStub(t, `exit 0`)
	var log bytes.Buffer
	r := Runner{Binary: binary, Verbose: true, Logger: &log}

	_, err := r.Run("Doxyfile")
	require.NoError(t, err)
	assert.Contains(t, log.String(), "Running: "+binary+" Doxyfile")
}

func TestRunnerRunTee(t *testing.T) {
	binary := writeStub(t, `echo "streamed"`)
	var stream bytes.Buffer
	r := Runner{Binary: binary}

	res, err := r.RunTee(&stream, nil, "Doxyfile")
	require.NoError(t, err)
	assert.Equal(t, "streamed", res.StdoutString(true))
	assert.Contains(t, stream.String(), "streamed")
}

func TestClientVersion(t *testing.T) {
	binary := writeStub(t, `echo "1.9.8"`)
	c := NewClient(Options{Binary: binary})

	version, err := c.Version()
	require.NoError(t, err)
	assert.Equal(t, "1.9.8", version)
}

func TestClientVersionUnavailable(t *testing.T) {
	c := NewClient(Options{Binary: "definitely-not-a-real-binary-12345"})

	_, err := c.Version()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unavailable")
}

func TestClientGenerateCapturesStderrOnFailure(t *testing.T) {
	binary := writeStub(t, `echo "error: tag INPUT invalid" >&2; exit 1`)
	c := NewClient(Options{Binary: binary})

	res, err := c.Generate("Doxyfile")
	assert.Error(t, err)
	assert.Contains(t, res.StderrString(true), "tag INPUT invalid")
}

func TestClientGenerateRunsInDir(t *testing.T) {
	binary := writeStub(t, `pwd`)
	dir := t.TempDir()
	resolved, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)

	c := NewClient(Options{Binary: binary, Dir: dir})

	res, err := c.Generate("Doxyfile")
	require.NoError(t, err)
	assert.Equal(t, resolved, res.StdoutString(true))
}
