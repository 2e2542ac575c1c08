package docgen

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"go.jacobcolvin.com/ndoc/doccomment"
	"go.jacobcolvin.com/ndoc/locale"
)

// Flags holds CLI flag names for generator configuration, allowing callers
// to customize flag names while keeping sensible defaults.
type Flags struct {
	Dialects   string
	Format     string
	Output     string
	Locale     string
	LocaleFile string
	Workers    string
	CacheSize  string
	LineFinder string
	EmbedLists string
}

// Config holds CLI flag values for generator configuration.
//
// Create instances with [NewConfig] and register CLI flags with
// [Config.RegisterFlags]. Use [Config.NewGenerator] to create a [Generator].
type Config struct {
	Flags      Flags
	Registry   doccomment.Registry
	Dialects   string
	Format     string
	Output     string
	Locale     string
	LocaleFile string
	Workers    int
	CacheSize  int
	LineFinder bool
	EmbedLists bool
}

// NewConfig returns a new [Config] with default flag names and the
// [DefaultRegistry].
func NewConfig() *Config {
	f := Flags{
		Dialects:   "dialects",
		Format:     "format",
		Output:     "output",
		Locale:     "locale",
		LocaleFile: "locale-file",
		Workers:    "workers",
		CacheSize:  "cache-size",
		LineFinder: "line-finder",
		EmbedLists: "embed-lists",
	}

	return &Config{Flags: f, Registry: DefaultRegistry()}
}

// RegisterFlags adds generator flags to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVar(&c.Dialects, c.Flags.Dialects, strings.Join(DefaultDialects, ","),
		"comma-separated list of comment dialects (in priority order)")
	flags.StringVarP(&c.Format, c.Flags.Format, "f", string(FormatJSON),
		"output format (json, markup)")
	flags.StringVarP(&c.Output, c.Flags.Output, "o", "-",
		"output file path (- for stdout)")
	flags.StringVar(&c.Locale, c.Flags.Locale, "en",
		"language of generated headings")
	flags.StringVar(&c.LocaleFile, c.Flags.LocaleFile, "",
		"YAML catalog overriding generated headings and phrases")
	flags.IntVar(&c.Workers, c.Flags.Workers, 4,
		"number of files processed at once")
	flags.IntVar(&c.CacheSize, c.Flags.CacheSize, 1024,
		"number of parsed comments to cache (0 disables the cache)")
	flags.BoolVar(&c.LineFinder, c.Flags.LineFinder, true,
		"detect and remove decorative comment lines")
	flags.BoolVar(&c.EmbedLists, c.Flags.EmbedLists, true,
		"split definition lists in enum comments into one unit per value")
}

// RegisterCompletions registers shell completions for generator flags on
// cmd.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	err := cmd.RegisterFlagCompletionFunc(c.Flags.Dialects,
		cobra.FixedCompletions(c.Registry.Names(), cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.Dialects, err)
	}

	formats := make([]string, 0, len(Formats()))
	for _, f := range Formats() {
		formats = append(formats, string(f))
	}

	err = cmd.RegisterFlagCompletionFunc(c.Flags.Format,
		cobra.FixedCompletions(formats, cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.Format, err)
	}

	err = cmd.RegisterFlagCompletionFunc(c.Flags.Locale,
		cobra.FixedCompletions(locale.Available(), cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.Locale, err)
	}

	err = cmd.RegisterFlagCompletionFunc(c.Flags.LocaleFile,
		cobra.FixedCompletions([]string{"yaml", "yml"}, cobra.ShellCompDirectiveFilterFileExt))
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.LocaleFile, err)
	}

	noFileComp := func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	for _, flag := range []string{c.Flags.Workers, c.Flags.CacheSize} {
		regErr := cmd.RegisterFlagCompletionFunc(flag, noFileComp)
		if regErr != nil {
			return fmt.Errorf("registering %s completion: %w", flag, regErr)
		}
	}

	return nil
}

// NewGenerator creates a [Generator] using this [Config].
func (c *Config) NewGenerator(logger *slog.Logger) (*Generator, error) {
	catalog, err := c.catalog()
	if err != nil {
		return nil, err
	}

	env := doccomment.Env{Localizer: catalog}

	parsers, err := c.Registry.New(env, splitList(c.Dialects)...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidOption, err)
	}

	if len(parsers) == 0 {
		return nil, fmt.Errorf("%w: no dialects", ErrInvalidOption)
	}

	if c.Workers < 1 {
		return nil, fmt.Errorf("%w: workers must be positive, got %d", ErrInvalidOption, c.Workers)
	}

	if c.CacheSize < 0 {
		return nil, fmt.Errorf("%w: cache size must not be negative, got %d", ErrInvalidOption, c.CacheSize)
	}

	opts := []Option{
		WithParsers(parsers...),
		WithWorkers(c.Workers),
		WithCacheSize(c.CacheSize),
		WithLineFinder(c.LineFinder),
		WithEmbedLists(c.EmbedLists),
	}

	if logger != nil {
		opts = append(opts, WithLogger(logger))
	}

	return NewGenerator(opts...), nil
}

// OutputFormat returns the parsed output format.
func (c *Config) OutputFormat() (Format, error) {
	return ParseFormat(c.Format)
}

func (c *Config) catalog() (*locale.Catalog, error) {
	catalog, err := locale.Load(c.Locale)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidOption, err)
	}

	if c.LocaleFile == "" {
		return catalog, nil
	}

	data, err := os.ReadFile(c.LocaleFile)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadInput, err)
	}

	extra, err := locale.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidOption, c.LocaleFile, err)
	}

	catalog.Merge(extra)

	return catalog, nil
}

func splitList(s string) []string {
	var out []string

	for part := range strings.SplitSeq(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}

	return out
}
