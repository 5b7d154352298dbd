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

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/jetsetilly/floatpipe/bench"
	"github.com/jetsetilly/floatpipe/curated"
	"github.com/jetsetilly/floatpipe/hardware/fpu/fp32"
	"github.com/jetsetilly/floatpipe/hardware/fpu/revision"
	"github.com/jetsetilly/floatpipe/logger"
	"github.com/jetsetilly/floatpipe/modalflag"
	"github.com/jetsetilly/floatpipe/statsview"
	"github.com/jetsetilly/floatpipe/version"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	exitVal := launch(ctx, os.Args[1:], os.Stdout)
	stop()
	os.Exit(exitVal)
}

// launch parses the arguments and runs the selected mode. Returns the value
// to be used with os.Exit().
func launch(ctx context.Context, args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("BENCH", "LIST", "DUMP", "CASCADE", "VERSION")

	echo := md.AddBool("log", false, "echo log to stderr")
	stats := new(bool)
	if statsview.Available() {
		stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	if *echo {
		logger.SetEcho(os.Stderr)
		defer logger.SetEcho(nil)
	}

	if *stats {
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()
		statsview.Launch(ctx, output)
	}

	switch md.Mode() {
	case "BENCH":
		err = runBench(ctx, md)

	case "LIST":
		err = list(md)

	case "DUMP":
		err = dump(md)

	case "CASCADE":
		err = cascade(ctx, md)

	case "VERSION":
		v, r := version.Version()
		fmt.Fprintf(output, "%s %s (%s)\n", version.ApplicationName, v, r)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md, err)
		return 20
	}

	return 0
}

func runBench(ctx context.Context, md *modalflag.Modes) error {
	md.NewMode()

	def := bench.DefaultOptions()
	units := md.AddString("units", "", "comma separated list of units. all units if empty")
	mode := md.AddString("mode", def.Mode.String(), "sweep mode: streaming, flush")
	count := md.AddInt("count", def.Count, "number of operands in each sweep")
	stall := md.AddFloat64("stall", def.Stall, "probability of a stall before each tick")
	seed := md.AddUint64("seed", def.Seed, "seed for operands and stalls")
	parallel := md.AddInt("parallel", def.Parallel, "maximum number of concurrent sweeps")
	trace := md.AddString("trace", "", "directory for WAV traces of unit output")
	metrics := md.AddString("metrics", "", "serve prometheus metrics at address while running")
	md.AdditionalHelp("Unit names may also be given as arguments.")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	opts := def
	opts.Count = *count
	opts.Stall = *stall
	opts.Seed = *seed
	opts.Parallel = *parallel
	opts.TraceDir = *trace

	opts.Mode, err = bench.ParseMode(*mode)
	if err != nil {
		return err
	}

	if *units != "" {
		opts.Units = strings.Split(*units, ",")
	}
	opts.Units = append(opts.Units, md.RemainingArgs()...)

	if *trace != "" {
		err = os.MkdirAll(*trace, 0o755)
		if err != nil {
			return curated.Errorf("bench: %v", err)
		}
	}

	if *metrics != "" {
		opts.Metrics = bench.NewMetrics()
		srv := &http.Server{Addr: *metrics, Handler: opts.Metrics.Handler()}
		go func() {
			err := srv.ListenAndServe()
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Logf(logger.Allow, "metrics", "%v", err)
			}
		}()
		defer srv.Close()
		fmt.Fprintf(md.Output, "metrics available at %s/metrics\n", *metrics)
	}

	reports, err := bench.RunAll(ctx, opts)
	for _, r := range reports {
		if r.Unit != "" {
			fmt.Fprintln(md.Output, r)
		}
	}

	return err
}

func list(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	for _, n := range revision.Names() {
		fmt.Fprintln(md.Output, revision.Must(n))
	}

	return nil
}

func dump(md *modalflag.Modes) error {
	md.NewMode()

	ticks := md.AddInt("ticks", 0, "number of ticks before dumping. defaults to the latency of the unit")
	seed := md.AddUint64("seed", 1, "seed for operands")
	md.AdditionalHelp("Writes the pipeline of the named unit as a graphviz graph.")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("unit name required for %s mode", md)
	case 1:
		t, err := bench.Lookup(md.GetArg(0))
		if err != nil {
			return err
		}

		d := t.New()
		n := *ticks
		if n <= 0 {
			n = d.Latency()
		}

		r := rand.New(rand.NewPCG(*seed, 0))
		for range n {
			d.Drive(t.Operand(r))
			d.Tick()
		}

		d.Dump(md.Output)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	return nil
}

func cascade(ctx context.Context, md *modalflag.Modes) error {
	md.NewMode()

	n := md.AddInt("n", 1000001, "number of subtractions")
	step := md.AddString("step", "-1.0", "value subtracted each time")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	f, err := strconv.ParseFloat(*step, 32)
	if err != nil {
		return curated.Errorf("cascade: %v", err)
	}

	v, err := bench.Cascade(ctx, *n, fp32.FromFloat32(float32(f)))
	if err != nil {
		return err
	}

	fmt.Fprintf(md.Output, "%#08x %v\n", v, fp32.ToFloat32(v))

	return nil
}
