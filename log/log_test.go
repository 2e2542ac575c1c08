package log_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/ndoc/docgen"
	"go.jacobcolvin.com/ndoc/extract"
	"go.jacobcolvin.com/ndoc/log"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		err  error
		in   string
		want log.Level
	}{
		"debug":         {in: "debug", want: log.LevelDebug},
		"upper case":    {in: "ERROR", want: log.LevelError},
		"warning alias": {in: "warning", want: log.LevelWarn},
		"unknown":       {in: "loud", err: log.ErrUnknownLogLevel},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := log.ParseLevel(tc.in)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	got, err := log.ParseFormat("LOGFMT")
	require.NoError(t, err)
	assert.Equal(t, log.FormatLogfmt, got)

	_, err = log.ParseFormat("yaml")
	require.ErrorIs(t, err, log.ErrUnknownLogFormat)
}

func TestSlogLevel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, slog.LevelDebug, log.LevelDebug.SlogLevel())
	assert.Equal(t, slog.LevelWarn, log.LevelWarn.SlogLevel())
	assert.Equal(t, slog.LevelInfo, log.Level("").SlogLevel())
}

// generate parses one plain comment with a generator that logs to h, which
// emits a "parsed comment" record at debug level.
func generate(t *testing.T, h slog.Handler) {
	t.Helper()

	g := docgen.NewGenerator(docgen.WithLogger(slog.New(h)))

	_, ok := g.Comment(extract.Comment{Text: "// Hello.", Line: 3})
	require.True(t, ok)

	slog.New(h).Info("generated documentation", slog.Int("files", 1), slog.Int("units", 1))
}

func TestConfigNewHandler(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		args    []string
		want    []string
		notWant []string
	}{
		"defaults to logfmt off a terminal": {
			want:    []string{"level=INFO", `msg="generated documentation"`, "files=1", "units=1"},
			notWant: []string{"parsed comment"},
		},
		"debug shows parsed comments": {
			args: []string{"--log-level", "debug"},
			want: []string{"level=DEBUG", `msg="parsed comment"`, "line=3", "dialect=plain", "level=INFO"},
		},
		"error hides progress": {
			args:    []string{"--log-level", "error"},
			notWant: []string{"parsed comment", "generated documentation"},
		},
		"text format": {
			args:    []string{"--log-format", "text"},
			want:    []string{"generated documentation", "units=1"},
			notWant: []string{"level=INFO"},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			cfg := log.NewConfig()

			cmd := &cobra.Command{Use: "ndoc"}
			cfg.RegisterFlags(cmd.Flags())
			require.NoError(t, cmd.Flags().Parse(tc.args))

			var buf bytes.Buffer

			h, err := cfg.NewHandler(&buf)
			require.NoError(t, err)

			generate(t, h)

			for _, s := range tc.want {
				assert.Contains(t, buf.String(), s)
			}

			for _, s := range tc.notWant {
				assert.NotContains(t, buf.String(), s)
			}
		})
	}
}

func TestConfigNewHandlerJSON(t *testing.T) {
	t.Parallel()

	cfg := log.NewConfig()
	cfg.Level = "debug"
	cfg.Format = "json"

	var buf bytes.Buffer

	h, err := cfg.NewHandler(&buf)
	require.NoError(t, err)

	generate(t, h)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))

	assert.Equal(t, "DEBUG", rec["level"])
	assert.Equal(t, "parsed comment", rec["msg"])
	assert.Equal(t, "plain", rec["dialect"])
	assert.InDelta(t, 3, rec["line"], 0)
	assert.Contains(t, rec, slog.SourceKey)
}

func TestConfigNewHandlerErrors(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		err    error
		level  string
		format string
	}{
		"level":  {level: "loud", format: "json", err: log.ErrUnknownLogLevel},
		"format": {level: "info", format: "yaml", err: log.ErrUnknownLogFormat},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			cfg := log.NewConfig()
			cfg.Level = tc.level
			cfg.Format = tc.format

			_, err := cfg.NewHandler(&bytes.Buffer{})
			require.ErrorIs(t, err, log.ErrInvalidArgument)
			require.ErrorIs(t, err, tc.err)
		})
	}
}

func TestCustomFlagNames(t *testing.T) {
	t.Parallel()

	cfg := log.Flags{Level: "verbosity", Format: "output"}.NewConfig()

	cmd := &cobra.Command{Use: "ndoc"}
	cfg.RegisterFlags(cmd.Flags())
	require.NoError(t, cmd.Flags().Parse([]string{"--verbosity", "warn", "--output", "json"}))

	assert.Equal(t, "warn", cfg.Level)
	assert.Equal(t, "json", cfg.Format)
	assert.Nil(t, cmd.Flags().Lookup("log-level"))
}

func TestRegisterCompletions(t *testing.T) {
	t.Parallel()

	cfg := log.NewConfig()

	cmd := &cobra.Command{Use: "ndoc"}
	cfg.RegisterFlags(cmd.Flags())
	require.NoError(t, cfg.RegisterCompletions(cmd))

	tcs := map[string][]string{
		"log-level":  log.GetAllLevelStrings(),
		"log-format": log.GetAllFormatStrings(),
	}

	for flag, want := range tcs {
		t.Run(flag, func(t *testing.T) {
			t.Parallel()

			fn, ok := cmd.GetFlagCompletionFunc(flag)
			require.True(t, ok)

			got, directive := fn(cmd, nil, "")
			assert.Equal(t, want, got)
			assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)
		})
	}
}
