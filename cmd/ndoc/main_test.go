package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/ndoc/docgen"
	"go.jacobcolvin.com/ndoc/version"
)

var update = flag.Bool("update", false, "update golden files")

// runNdoc runs ndoc with args and returns its stdout and stderr.
func runNdoc(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	err := execute(t.Context(), args, &stdout, &stderr)

	return stdout.String(), stderr.String(), err
}

// assertGolden compares got against a golden file as JSON. When -update is
// set, it writes the golden file instead.
func assertGolden(t *testing.T, goldenPath, got string) {
	t.Helper()

	if *update {
		require.NoError(t, os.WriteFile(goldenPath, []byte(got), 0o644))

		return
	}

	want, err := os.ReadFile(goldenPath)
	require.NoError(t, err, "golden file %s not found; run with -update to create", goldenPath)

	assert.JSONEq(t, string(want), got)
}

func TestGolden(t *testing.T) {
	t.Parallel()

	stdout, stderr, err := runNdoc(t, filepath.Join("testdata", "src"))
	require.NoError(t, err)

	assertGolden(t, filepath.Join("testdata", "golden", "src.json"), stdout)
	assert.Contains(t, stderr, "level=INFO")
	assert.Contains(t, stderr, "files=3")
	assert.Contains(t, stderr, "units=5")
}

func TestMarkupOutputFile(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "out.txt")

	stdout, _, err := runNdoc(t,
		"--format", "markup",
		"--output", out,
		"--log-level", "error",
		filepath.Join("testdata", "src", "Shapes.java"),
	)
	require.NoError(t, err)
	assert.Empty(t, stdout)

	got, err := os.ReadFile(out)
	require.NoError(t, err)

	assert.Contains(t, string(got), "testdata/src/Shapes.java:3 javadoc [type Shapes]\n  summary: Computes areas.\n")
	assert.Contains(t, string(got), "testdata/src/Shapes.java:9 javadoc [function circle]\n")
}

func TestErrors(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		target error
		args   []string
	}{
		"unknown format": {
			args:   []string{"--format", "yaml", "testdata"},
			target: docgen.ErrInvalidOption,
		},
		"unknown dialect": {
			args:   []string{"--dialects", "rdoc", "testdata"},
			target: docgen.ErrInvalidOption,
		},
		"missing input": {
			args:   []string{filepath.Join("testdata", "missing.java")},
			target: docgen.ErrReadInput,
		},
		"unsupported input": {
			args:   []string{filepath.Join("testdata", "golden", "src.json")},
			target: docgen.ErrReadInput,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, _, err := runNdoc(t, tc.args...)
			require.ErrorIs(t, err, tc.target)
		})
	}
}

func TestNoArgs(t *testing.T) {
	t.Parallel()

	_, _, err := runNdoc(t)
	require.Error(t, err)
}

func TestInvalidLogLevel(t *testing.T) {
	t.Parallel()

	_, _, err := runNdoc(t, "--log-level", "loud", "testdata")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown log level")
}

func TestCPUProfile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cpu := filepath.Join(dir, "cpu.prof")
	heap := filepath.Join(dir, "heap.prof")

	_, _, err := runNdoc(t,
		"--cpu-profile="+cpu,
		"--heap-profile="+heap,
		"--log-level", "error",
		filepath.Join("testdata", "src"),
	)
	require.NoError(t, err)

	for _, path := range []string{cpu, heap} {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Positive(t, info.Size(), path)
	}
}

func TestProfileWriteError(t *testing.T) {
	t.Parallel()

	heap := filepath.Join(t.TempDir(), "missing", "heap.prof")

	stdout, _, err := runNdoc(t, "--heap-profile", heap, "--log-level", "error", filepath.Join("testdata", "src"))
	require.ErrorContains(t, err, "write profiles")
	assert.NotEmpty(t, stdout)
}

func TestVersion(t *testing.T) {
	t.Parallel()

	stdout, _, err := runNdoc(t, "--version")
	require.NoError(t, err)
	assert.Equal(t, "ndoc version "+version.String()+"\n", stdout)
}

func TestSchema(t *testing.T) {
	t.Parallel()

	stdout, _, err := runNdoc(t, "schema")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))

	assert.Equal(t, "array", got["type"])
	assert.Equal(t, "ndoc output", got["title"])
}

func TestWatch(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "a.go")
	require.NoError(t, os.WriteFile(path, []byte("package a\n"), 0o644))

	ctx, cancel := context.WithCancel(t.Context())

	var calls atomic.Int32

	done := make(chan error, 1)

	go func() {
		done <- watch(ctx, slog.New(slog.DiscardHandler), []string{dir}, 10*time.Millisecond, func() error {
			calls.Add(1)

			return nil
		})
	}()

	// Keep writing until the watcher is registered and reports a change.
	require.Eventually(t, func() bool {
		_ = os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644)
		_ = os.WriteFile(path, []byte("// Package a.\npackage a\n"), 0o644)

		return calls.Load() > 0
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}
