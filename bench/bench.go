// This file is part of floatpipe.
//
// floatpipe is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// floatpipe is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with floatpipe.  If not, see <https://www.gnu.org/licenses/>.

package bench

import (
	"context"
	"path/filepath"
	"runtime"

	"github.com/jetsetilly/floatpipe/curated"
	"github.com/jetsetilly/floatpipe/hardware/fpu/subtractor"
	"github.com/jetsetilly/floatpipe/logger"
	"golang.org/x/sync/errgroup"
)

// Options for RunAll().
type Options struct {
	// names of the units to sweep. all units if empty
	Units []string

	Mode  Mode
	Count int
	Stall float64
	Seed  uint64

	// maximum number of sweeps running at once. no limit if zero or less
	Parallel int

	// directory for WAV traces. no traces are written if empty
	TraceDir string

	// may be nil
	Metrics *Metrics
}

// DefaultOptions returns the options used by the command line when no flags
// are given.
func DefaultOptions() Options {
	return Options{
		Mode:     Streaming,
		Count:    100000,
		Seed:     1,
		Parallel: runtime.NumCPU(),
	}
}

// ErrOptions is returned by RunAll() when the Options are not usable.
const ErrOptions = "bench: invalid options: %s"

func (opts Options) validate() error {
	if opts.Count < 1 {
		return curated.Errorf(ErrOptions, "count must be at least one")
	}
	if opts.Stall < 0 || opts.Stall >= 1 {
		return curated.Errorf(ErrOptions, "stall probability must be in the range 0 to 1")
	}
	return nil
}

// RunAll sweeps every unit in the Options concurrently. Each unit is a new
// instance so sweeps share nothing. The Reports are in the same order as the
// units. The returned error is the first error from any sweep, after which
// the remaining sweeps are cancelled.
func RunAll(ctx context.Context, opts Options) ([]Report, error) {
	err := opts.validate()
	if err != nil {
		return nil, err
	}

	var targets []Target
	if len(opts.Units) == 0 {
		targets = Targets()
	} else {
		for _, n := range opts.Units {
			t, err := Lookup(n)
			if err != nil {
				return nil, err
			}
			targets = append(targets, t)
		}
	}

	reports := make([]Report, len(targets))

	eg, ctx := errgroup.WithContext(ctx)
	if opts.Parallel > 0 {
		eg.SetLimit(opts.Parallel)
	}

	for i, t := range targets {
		eg.Go(func() error {
			sw := Sweep{
				Target: t,
				Mode:   opts.Mode,
				Count:  opts.Count,
				Stall:  opts.Stall,
				Seed:   opts.Seed,
			}
			if opts.TraceDir != "" {
				sw.TraceFile = filepath.Join(opts.TraceDir, t.Name+".wav")
			}

			logger.Logf(logger.Allow, "bench", "%s: %s sweep of %d operands", t.Config, opts.Mode, opts.Count)

			rep, err := sw.Run(ctx)
			reports[i] = rep
			opts.Metrics.Observe(rep)
			if err != nil {
				return err
			}

			logger.Log(logger.Allow, "bench", rep)
			return nil
		})
	}

	return reports, eg.Wait()
}

// Cascade feeds the result of a subtractor back into its A input n times,
// subtracting step each time. Each subtraction passes through the entire
// pipeline before the next one is admitted.
func Cascade(ctx context.Context, n int, step uint32) (uint32, error) {
	u := subtractor.New()

	var acc uint32
	for i := range n {
		if i%4096 == 0 && ctx.Err() != nil {
			return acc, curated.Errorf(ErrCancelled, "cascade", ctx.Err())
		}

		u.A = acc
		u.B = step
		for range u.Latency() {
			u.Tick()
		}
		acc = u.Result()
	}

	logger.Logf(logger.Allow, "bench", "cascade of %d subtractions: %#08x", n, acc)

	return acc, nil
}
