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

// the single refinement is spread over four stages, one for the seed and
// one for each arithmetic operation
var seedStages = []func(floatState) floatState{
	func(s floatState) floatState {
		if s.decode() {
			return s
		}
		s.v = seedMagic - s.ax
		return s
	},
	func(s floatState) floatState {
		if s.special {
			return s
		}
		s.w = multiplier.Multiply(s.ax, s.v)
		return s
	},
	func(s floatState) floatState {
		if s.special {
			return s
		}
		s.w = subtractor.Subtract(fp32.Two, s.w)
		return s
	},
	func(s floatState) floatState {
		if s.special {
			return s
		}
		s.v = multiplier.Multiply(s.v, s.w)
		s.result = s.signed(s.v)
		return s
	},
}

// SeedRecip is the combinational equivalent of the Seed unit.
func SeedRecip(x uint32) uint32 {
	return pipeline.Run(floatState{in: x}, seedStages...).result
}

// Seed is the direct-seed reciprocal unit with a single refinement. The
// relative error is about 3.4e-3.
type Seed struct {
	In uint32

	// clock enable. the unit is frozen while this is false
	CE bool

	unit[floatState]
}

// NewSeed creates a Seed unit with the canonical configuration.
func NewSeed() *Seed {
	u, err := NewSeedWithConfig(revision.Must(revision.SeedRecip))
	if err != nil {
		panic(err)
	}
	return u
}

// NewSeedWithConfig creates a Seed unit with an alternative configuration.
func NewSeedWithConfig(cfg pipeline.Config) (*Seed, error) {
	un, err := newUnit(cfg, true, seedStages)
	if err != nil {
		return nil, err
	}
	return &Seed{CE: true, unit: un}, nil
}

// Tick advances the unit by one clock.
func (u *Seed) Tick() {
	u.p.Tick(u.CE, floatState{in: u.In})
}

// Result returns the reciprocal at the tail of the pipeline.
func (u *Seed) Result() uint32 {
	s, ok := u.tail()
	if !ok {
		return 0
	}
	return s.result
}
