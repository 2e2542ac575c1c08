// Command ndoc converts the documentation comments of source files into
// NDMarkup.
//
// # Usage
//
//	ndoc [flags] <file|directory> ...
//	ndoc schema
//
// Directories are searched recursively for Java, C#, C, C++, JavaScript, and
// Go files. Each documentation comment is parsed as Javadoc, XML
// documentation, or plain text, in that order, and the results are written
// as JSON (the default) or as a plain listing with --format markup.
//
// With --watch, ndoc stays running and regenerates the output whenever a
// source file changes.
//
// Profiling flags such as --cpu-profile and --heap-profile write pprof
// profiles of the run, which helps tune --workers and --cache-size on large
// source trees.
//
// The schema subcommand prints the JSON Schema of the JSON output.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"go.jacobcolvin.com/ndoc/docgen"
	"go.jacobcolvin.com/ndoc/log"
	"go.jacobcolvin.com/ndoc/profile"
	"go.jacobcolvin.com/ndoc/version"
)

const watchDelay = 200 * time.Millisecond

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		stop()
		os.Exit(1)
	}
}

// execute runs ndoc with args and writes any requested profiles once the
// command returns.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	profCfg := profile.NewConfig()
	profiler := profCfg.NewProfiler()

	cmd := newRootCmd(profCfg, profiler)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)

	stopErr := profiler.Stop()
	if stopErr != nil {
		stopErr = fmt.Errorf("write profiles: %w", stopErr)
	}

	return errors.Join(err, stopErr)
}

func newRootCmd(profCfg *profile.Config, profiler *profile.Profiler) *cobra.Command {
	genCfg := docgen.NewConfig()
	logCfg := log.NewConfig()

	var watchMode bool

	rootCmd := &cobra.Command{
		Use:   "ndoc [flags] <file|directory> ...",
		Short: "Convert documentation comments to NDMarkup",
		Long: `ndoc extracts documentation comments from Java, C#, C, C++, JavaScript, and
Go sources and converts Javadoc, XML documentation, and plain text comments
into NDMarkup documentation units.`,
		Version:       version.String(),
		Args:          cobra.MinimumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return profiler.Start()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(cmd, logCfg)
			if err != nil {
				return err
			}

			generate := func() error {
				return run(cmd.Context(), genCfg, logger, args, cmd.OutOrStdout())
			}

			err = generate()
			if !watchMode {
				return err
			}

			if err != nil {
				logger.Error("generate documentation", slog.Any("error", err))
			}

			logger.Info("watching for changes", slog.Any("paths", args))

			return watch(cmd.Context(), logger, args, watchDelay, generate)
		},
	}

	genCfg.RegisterFlags(rootCmd.Flags())
	rootCmd.Flags().BoolVarP(&watchMode, "watch", "w", false,
		"regenerate the output whenever a source file changes")
	logCfg.RegisterFlags(rootCmd.PersistentFlags())
	profCfg.RegisterFlags(rootCmd.PersistentFlags())

	completionErr := errors.Join(
		genCfg.RegisterCompletions(rootCmd),
		logCfg.RegisterCompletions(rootCmd),
		profCfg.RegisterCompletions(rootCmd),
	)
	if completionErr != nil {
		fmt.Fprintf(os.Stderr, "register completions: %v\n", completionErr)
	}

	rootCmd.AddCommand(newSchemaCmd())

	return rootCmd
}

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of the JSON output",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			schema, err := docgen.Schema()
			if err != nil {
				return err
			}

			out, err := json.MarshalIndent(schema, "", "  ")
			if err != nil {
				return fmt.Errorf("%w: %w", docgen.ErrWriteOutput, err)
			}

			out = append(out, '\n')

			_, err = cmd.OutOrStdout().Write(out)
			if err != nil {
				return fmt.Errorf("%w: %w", docgen.ErrWriteOutput, err)
			}

			return nil
		},
	}
}

func newLogger(cmd *cobra.Command, cfg *log.Config) (*slog.Logger, error) {
	handler, err := cfg.NewHandler(cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}

	return slog.New(handler), nil
}

func run(ctx context.Context, cfg *docgen.Config, logger *slog.Logger, args []string, stdout io.Writer) error {
	gen, err := cfg.NewGenerator(logger)
	if err != nil {
		return err
	}

	format, err := cfg.OutputFormat()
	if err != nil {
		return err
	}

	files, err := gen.Files(ctx, args...)
	if err != nil {
		return err
	}

	var buf bytes.Buffer

	err = docgen.Write(&buf, files, format)
	if err != nil {
		return err
	}

	if cfg.Output == "" || cfg.Output == "-" {
		_, err = stdout.Write(buf.Bytes())
		if err != nil {
			return fmt.Errorf("%w: %w", docgen.ErrWriteOutput, err)
		}
	} else {
		err := os.WriteFile(cfg.Output, buf.Bytes(), 0o644)
		if err != nil {
			return fmt.Errorf("%w: %w", docgen.ErrWriteOutput, err)
		}
	}

	units := 0
	for _, f := range files {
		units += len(f.Entries)
	}

	logger.Info("generated documentation",
		slog.Int("files", len(files)),
		slog.Int("units", units),
	)

	return nil
}
