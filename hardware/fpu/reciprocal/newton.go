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

package reciprocal

import (
	"github.com/jetsetilly/floatpipe/hardware/fpu/fp32"
	"github.com/jetsetilly/floatpipe/hardware/fpu/multiplier"
	"github.com/jetsetilly/floatpipe/hardware/fpu/revision"
	"github.com/jetsetilly/floatpipe/hardware/fpu/subtractor"
	"github.com/jetsetilly/floatpipe/hardware/pipeline"
)

const newtonIterations = 3

// newtonRefine is one iteration of v = v * (2 - x * v) over eight stages.
// each multiplication takes three stages and the subtraction takes two.
var newtonRefine = []func(floatState) floatState{
	// w = x * v
	func(s floatState) floatState {
		s.mp = multiplier.Start(s.ax, s.v)
		return s
	},
	func(s floatState) floatState {
		s.mp = s.mp.Round()
		return s
	},
	func(s floatState) floatState {
		s.w = s.mp.Finish()
		return s
	},

	// w = 2 - w
	func(s floatState) floatState {
		s.sp = subtractor.Start(fp32.Two, s.w)
		return s
	},
	func(s floatState) floatState {
		s.w = s.sp.Finish()
		return s
	},

	// v = v * w
	func(s floatState) floatState {
		s.mp = multiplier.Start(s.v, s.w)
		return s
	},
	func(s floatState) floatState {
		s.mp = s.mp.Round()
		return s
	},
	func(s floatState) floatState {
		s.v = s.mp.Finish()
		s.result = s.signed(s.v)
		return s
	},
}

func newtonSeed(s floatState) floatState {
	if s.decode() {
		return s
	}
	if s.ax == 0 {
		s.special = true
		s.result = fp32.Infinity(false)
		return s
	}
	s.v = seedMagic - s.ax
	return s
}

// skip wraps a stage function so that it does nothing once the result has
// been decided.
func skip(f func(floatState) floatState) func(floatState) floatState {
	return func(s floatState) floatState {
		if s.special {
			return s
		}
		return f(s)
	}
}

var newtonStages = func() []func(floatState) floatState {
	st := []func(floatState) floatState{newtonSeed}
	for range newtonIterations {
		for _, f := range newtonRefine {
			st = append(st, skip(f))
		}
	}
	return st
}()

// NewtonRecip is the combinational equivalent of the Newton unit.
func NewtonRecip(x uint32) uint32 {
	return pipeline.Run(floatState{in: x}, newtonStages...).result
}

// Newton is the direct-seed reciprocal unit with three refinements. The unit
// has no clock-enable input.
type Newton struct {
	In uint32

	unit[floatState]
}

// NewNewton creates a Newton unit with the canonical configuration.
func NewNewton() *Newton {
	u, err := NewNewtonWithConfig(revision.Must(revision.NewtonRecip))
	if err != nil {
		panic(err)
	}
	return u
}

// NewNewtonWithConfig creates a Newton unit with an alternative configuration.
func NewNewtonWithConfig(cfg pipeline.Config) (*Newton, error) {
	un, err := newUnit(cfg, false, newtonStages)
	if err != nil {
		return nil, err
	}
	return &Newton{unit: un}, nil
}

// Tick advances the unit by one clock.
func (u *Newton) Tick() {
	u.p.Tick(true, floatState{in: u.In})
}

// Result returns the reciprocal at the tail of the pipeline.
func (u *Newton) Result() uint32 {
	s, ok := u.tail()
	if !ok {
		return 0
	}
	return s.result
}
