package profile

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Flags holds CLI flag names for profiling configuration, allowing callers to
// customize flag names while keeping sensible defaults via [NewConfig].
type Flags struct {
	CPUProfile       string
	HeapProfile      string
	AllocsProfile    string
	GoroutineProfile string
	BlockProfile     string
	MutexProfile     string

	BlockProfileRate     string
	MutexProfileFraction string
}

// NewConfig creates a new [Config] embedding these flag names.
func (f Flags) NewConfig() *Config {
	return &Config{
		Flags:                f,
		BlockProfileRate:     1,
		MutexProfileFraction: 1,
	}
}

// Config holds profile output paths and sampling rates. An empty path
// disables that profile.
//
// Create instances with [NewConfig] and register CLI flags with
// [Config.RegisterFlags].
type Config struct {
	CPUProfile       string
	HeapProfile      string
	AllocsProfile    string
	GoroutineProfile string
	BlockProfile     string
	MutexProfile     string

	BlockProfileRate     int
	MutexProfileFraction int

	Flags Flags
}

// NewConfig returns a new [Config] with every profile disabled and the
// default flag names.
func NewConfig() *Config {
	f := Flags{
		CPUProfile:           "cpu-profile",
		HeapProfile:          "heap-profile",
		AllocsProfile:        "allocs-profile",
		GoroutineProfile:     "goroutine-profile",
		BlockProfile:         "block-profile",
		MutexProfile:         "mutex-profile",
		BlockProfileRate:     "block-profile-rate",
		MutexProfileFraction: "mutex-profile-fraction",
	}

	return f.NewConfig()
}

// RegisterFlags adds profiling flags to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	paths := []struct {
		dst  *string
		name string
		kind string
	}{
		{&c.CPUProfile, c.Flags.CPUProfile, "CPU"},
		{&c.HeapProfile, c.Flags.HeapProfile, "heap"},
		{&c.AllocsProfile, c.Flags.AllocsProfile, "allocs"},
		{&c.GoroutineProfile, c.Flags.GoroutineProfile, "goroutine"},
		{&c.BlockProfile, c.Flags.BlockProfile, "block"},
		{&c.MutexProfile, c.Flags.MutexProfile, "mutex"},
	}

	for _, p := range paths {
		flags.StringVar(p.dst, p.name, "", fmt.Sprintf("write a %s profile to this file", p.kind))
	}

	flags.IntVar(&c.BlockProfileRate, c.Flags.BlockProfileRate, c.BlockProfileRate,
		"block profile rate in nanoseconds, used with --"+c.Flags.BlockProfile)
	flags.IntVar(&c.MutexProfileFraction, c.Flags.MutexProfileFraction, c.MutexProfileFraction,
		"report 1/N mutex contention events, used with --"+c.Flags.MutexProfile)
}

// RegisterCompletions registers shell completions for profile flags on cmd.
// Path flags keep the default file completion.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	noFileComp := cobra.FixedCompletions(nil, cobra.ShellCompDirectiveNoFileComp)

	for _, flag := range []string{c.Flags.BlockProfileRate, c.Flags.MutexProfileFraction} {
		err := cmd.RegisterFlagCompletionFunc(flag, noFileComp)
		if err != nil {
			return fmt.Errorf("registering %s completion: %w", flag, err)
		}
	}

	return nil
}

// NewProfiler creates a [Profiler] that reads c when it starts, so flags
// parsed after this call take effect.
func (c *Config) NewProfiler() *Profiler {
	return &Profiler{cfg: c}
}
