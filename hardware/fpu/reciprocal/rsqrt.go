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
	"github.com/jetsetilly/floatpipe/hardware/fpu/multiplier"
	"github.com/jetsetilly/floatpipe/hardware/fpu/revision"
	"github.com/jetsetilly/floatpipe/hardware/pipeline"
)

// the seed is an approximation of the inverse square root. squaring it gives
// the reciprocal
var rsqrtStages = []func(floatState) floatState{
	func(s floatState) floatState {
		if s.decode() {
			return s
		}
		s.v = (rsqrtMagic - s.ax) >> 1
		return s
	},
	func(s floatState) floatState {
		if s.special {
			return s
		}
		s.mp = multiplier.Start(s.v, s.v)
		return s
	},
	func(s floatState) floatState {
		if s.special {
			return s
		}
		s.mp = s.mp.Round()
		return s
	},
	func(s floatState) floatState {
		if s.special {
			return s
		}
		s.v = s.mp.Finish()
		s.result = s.signed(s.v)
		return s
	},
}

// FastRecip is the combinational equivalent of the RsqrtSquared unit.
func FastRecip(x uint32) uint32 {
	return pipeline.Run(floatState{in: x}, rsqrtStages...).result
}

// RsqrtSquared is the reciprocal unit that squares an inverse square root
// seed. There is no refinement.
type RsqrtSquared struct {
	In uint32

	// clock enable. the unit is frozen while this is false
	CE bool

	unit[floatState]
}

// NewRsqrtSquared creates an RsqrtSquared unit with the canonical
// configuration.
func NewRsqrtSquared() *RsqrtSquared {
	u, err := NewRsqrtSquaredWithConfig(revision.Must(revision.FastRecip))
	if err != nil {
		panic(err)
	}
	return u
}

// NewRsqrtSquaredWithConfig creates an RsqrtSquared unit with an alternative
// configuration.
func NewRsqrtSquaredWithConfig(cfg pipeline.Config) (*RsqrtSquared, error) {
	un, err := newUnit(cfg, true, rsqrtStages)
	if err != nil {
		return nil, err
	}
	return &RsqrtSquared{CE: true, unit: un}, nil
}

// Tick advances the unit by one clock.
func (u *RsqrtSquared) Tick() {
	u.p.Tick(u.CE, floatState{in: u.In})
}

// Result returns the reciprocal at the tail of the pipeline.
func (u *RsqrtSquared) Result() uint32 {
	s, ok := u.tail()
	if !ok {
		return 0
	}
	return s.result
}
