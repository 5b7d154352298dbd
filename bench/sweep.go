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
	"hash/fnv"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/jetsetilly/floatpipe/bench/wavtrace"
	"github.com/jetsetilly/floatpipe/curated"
	"github.com/jetsetilly/floatpipe/logger"
)

// Mode selects how operands are presented to the unit.
type Mode int

// List of valid Mode values.
const (
	// a new operand is admitted on every enabled tick
	Streaming Mode = iota

	// one operand is admitted and then zeros until the result arrives
	Flush
)

func (m Mode) String() string {
	switch m {
	case Streaming:
		return "streaming"
	case Flush:
		return "flush"
	}
	return "unknown"
}

// ErrMode is returned by ParseMode() for an unrecognised mode name.
const ErrMode = "bench: unknown sweep mode (%s)"

// ParseMode returns the Mode with the name. Case insensitive.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "streaming", "stream":
		return Streaming, nil
	case "flush":
		return Flush, nil
	}
	return Streaming, curated.Errorf(ErrMode, s)
}

// List of sweep errors.
const (
	ErrMismatch  = "bench: %s: operand %v: result %#x does not match model %#x"
	ErrReference = "bench: %s: operand %v: result %#x outside the tolerance of the reference"
	ErrStall     = "bench: %s: output changed during stall at tick %d"
	ErrValid     = "bench: %s: valid signal is %v at tick %d"
	ErrCancelled = "bench: %s: %v"
)

// the number of mismatches logged by a single sweep. all mismatches are
// counted
const logLimit = 10

// Sweep is a single run of operands through a new instance of the Target.
type Sweep struct {
	Target Target
	Mode   Mode

	// number of operands checked
	Count int

	// probability of a stall before each enabled tick. ignored for units
	// without clock-enable. must be less than one
	Stall float64

	// operands and stalls are generated from this seed and the name of the
	// target
	Seed uint64

	// if not empty the output of the unit is written to a WAV file with this
	// name. the file has two channels if the output of the unit is wide
	TraceFile string
}

type runner struct {
	sw     *Sweep
	ctx    context.Context
	d      Device
	r      *rand.Rand
	stalls bool
	trace  *wavtrace.Trace
	rep    Report

	// the first error encountered. the sweep continues after mismatches
	err error
}

func seedFromName(name string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(name))
	return h.Sum64()
}

// Run the sweep. The returned error is the first mismatch. The Report
// contains the total number of mismatches.
func (sw *Sweep) Run(ctx context.Context) (Report, error) {
	rn := &runner{
		sw:     sw,
		ctx:    ctx,
		d:      sw.Target.New(),
		r:      rand.New(rand.NewPCG(sw.Seed, seedFromName(sw.Target.Name))),
		stalls: sw.Stall > 0 && sw.Target.Config.ClockEnable,
		rep: Report{
			Unit: sw.Target.Name,
			Mode: sw.Mode,
		},
	}

	if sw.TraceFile != "" {
		var err error
		if sw.Target.Wide {
			rn.trace, err = wavtrace.NewWide(sw.TraceFile)
		} else {
			rn.trace, err = wavtrace.New(sw.TraceFile)
		}
		if err != nil {
			return rn.rep, curated.Errorf("bench: %v", err)
		}
	}

	start := time.Now()
	switch sw.Mode {
	case Flush:
		rn.flush()
	default:
		rn.streaming()
	}
	rn.rep.Duration = time.Since(start)

	if rn.trace != nil {
		err := rn.trace.Write()
		if err != nil && rn.err == nil {
			rn.err = curated.Errorf("bench: %v", err)
		}
	}

	return rn.rep, rn.err
}

func (rn *runner) fail(err error) {
	if rn.err == nil {
		rn.err = err
	}
}

func (rn *runner) cancelled(i int) bool {
	if i%1024 != 0 {
		return false
	}
	if err := rn.ctx.Err(); err != nil {
		rn.fail(curated.Errorf(ErrCancelled, rn.sw.Target.Name, err))
		return true
	}
	return false
}

func (rn *runner) sample() {
	if rn.trace != nil {
		rn.trace.Sample64(rn.d.Output())
	}
}

// tick advances the device by one enabled tick. any stalls are injected
// before the enabled tick.
func (rn *runner) tick() {
	if rn.stalls {
		for rn.r.Float64() < rn.sw.Stall {
			out, valid := rn.d.Output(), rn.d.Valid()

			rn.d.SetCE(false)
			rn.d.Tick()
			rn.rep.Ticks++
			rn.rep.Stalls++
			rn.sample()

			if rn.d.Output() != out || rn.d.Valid() != valid {
				rn.fail(curated.Errorf(ErrStall, rn.sw.Target.Name, rn.rep.Ticks))
			}
		}
		rn.d.SetCE(true)
	}

	rn.d.Tick()
	rn.rep.Ticks++
	rn.sample()
}

// check the output of the device against the operand that should be at the
// tail of the pipeline.
func (rn *runner) check(op Operand) {
	rn.rep.Checked++

	if !rn.d.Valid() {
		rn.mismatch(curated.Errorf(ErrValid, rn.sw.Target.Name, false, rn.rep.Ticks))
		return
	}

	out := rn.d.Output()
	want := rn.sw.Target.Model(op)
	if out != want {
		rn.mismatch(curated.Errorf(ErrMismatch, rn.sw.Target.Name, op, out, want))
		return
	}

	if rn.sw.Target.Reference != nil && !rn.sw.Target.Reference(op, out) {
		rn.mismatch(curated.Errorf(ErrReference, rn.sw.Target.Name, op, out))
	}
}

func (rn *runner) mismatch(err error) {
	rn.rep.Mismatches++
	if rn.rep.Mismatches <= logLimit {
		logger.Log(logger.Allow, "bench", err)
	}
	rn.fail(err)
}

func (rn *runner) streaming() {
	lat := rn.d.Latency()

	// operands in the pipeline indexed by the tick they were admitted
	inflight := make([]Operand, lat)

	for i := range rn.sw.Count + lat - 1 {
		if rn.cancelled(i) {
			return
		}

		// zeros are used to drain the pipeline after the last operand
		var op Operand
		if i < rn.sw.Count {
			op = rn.sw.Target.Operand(rn.r)
		}
		rn.d.Drive(op)
		rn.tick()
		inflight[i%lat] = op

		if i < lat-1 {
			if rn.d.Valid() {
				rn.fail(curated.Errorf(ErrValid, rn.sw.Target.Name, true, rn.rep.Ticks))
			}
			continue
		}

		rn.check(inflight[(i+1)%lat])
	}
}

func (rn *runner) flush() {
	lat := rn.d.Latency()

	for i := range rn.sw.Count {
		if rn.cancelled(i) {
			return
		}

		op := rn.sw.Target.Operand(rn.r)
		rn.d.Drive(op)
		rn.tick()

		rn.d.Drive(Operand{})
		for range lat - 1 {
			rn.tick()
		}

		rn.check(op)
	}
}
