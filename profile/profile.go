package profile

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
)

// Profiler controls one profiling session.
//
// Create instances with [Config.NewProfiler].
type Profiler struct {
	cfg     *Config
	cpuFile *os.File
	started bool
}

// Start enables the requested sampling and starts CPU profiling. Call
// [Profiler.Stop] afterwards to write the snapshot profiles.
func (p *Profiler) Start() error {
	if p.started {
		return nil
	}

	if p.cfg.BlockProfile != "" {
		runtime.SetBlockProfileRate(p.cfg.BlockProfileRate)
	}

	if p.cfg.MutexProfile != "" {
		runtime.SetMutexProfileFraction(p.cfg.MutexProfileFraction)
	}

	if p.cfg.CPUProfile != "" {
		f, err := os.Create(p.cfg.CPUProfile) //nolint:gosec // Profile path from CLI flag is expected.
		if err != nil {
			return fmt.Errorf("create CPU profile: %w", err)
		}

		err = pprof.StartCPUProfile(f)
		if err != nil {
			return errors.Join(fmt.Errorf("start CPU profile: %w", err), f.Close())
		}

		p.cpuFile = f
	}

	p.started = true

	return nil
}

// Stop stops CPU profiling and writes every requested snapshot profile. A
// failure to write one profile does not prevent the others. Stop without a
// successful Start does nothing.
func (p *Profiler) Stop() error {
	if !p.started {
		return nil
	}

	p.started = false

	var errs []error

	if p.cpuFile != nil {
		pprof.StopCPUProfile()

		err := p.cpuFile.Close()
		if err != nil {
			errs = append(errs, fmt.Errorf("close CPU profile: %w", err))
		}

		p.cpuFile = nil
	}

	snapshots := []struct {
		name string
		path string
	}{
		{"heap", p.cfg.HeapProfile},
		{"allocs", p.cfg.AllocsProfile},
		{"goroutine", p.cfg.GoroutineProfile},
		{"block", p.cfg.BlockProfile},
		{"mutex", p.cfg.MutexProfile},
	}

	for _, s := range snapshots {
		if s.path == "" {
			continue
		}

		err := writeProfile(s.name, s.path)
		if err != nil {
			errs = append(errs, err)
		}
	}

	if p.cfg.BlockProfile != "" {
		runtime.SetBlockProfileRate(0)
	}

	if p.cfg.MutexProfile != "" {
		runtime.SetMutexProfileFraction(0)
	}

	return errors.Join(errs...)
}

func writeProfile(name, path string) error {
	f, err := os.Create(path) //nolint:gosec // Profile path from CLI flag is expected.
	if err != nil {
		return fmt.Errorf("create %s profile: %w", name, err)
	}

	err = pprof.Lookup(name).WriteTo(f, 0)
	if err != nil {
		return errors.Join(fmt.Errorf("write %s profile: %w", name, err), f.Close())
	}

	err = f.Close()
	if err != nil {
		return fmt.Errorf("close %s profile: %w", name, err)
	}

	return nil
}
