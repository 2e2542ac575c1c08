// Package profile writes pprof profiles of a command run.
//
// A [Config] carries one output path per profile and registers them as CLI
// flags. A [Profiler] created from it starts CPU profiling before the command
// runs and writes the snapshot profiles after it returns:
//
//	cfg := profile.NewConfig()
//	p := cfg.NewProfiler()
//
//	rootCmd := &cobra.Command{
//	    PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
//	        return p.Start()
//	    },
//	}
//
//	cfg.RegisterFlags(rootCmd.PersistentFlags())
//	err := errors.Join(rootCmd.ExecuteContext(ctx), p.Stop())
//
// Profiles left empty are skipped, and block and mutex sampling is only
// enabled while their profile is requested.
package profile
