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
	"math/bits"

	"github.com/jetsetilly/floatpipe/hardware/fpu/revision"
	"github.com/jetsetilly/floatpipe/hardware/pipeline"
)

// stage 0: normalise the operand so that the leading one is in bit 31.
func fixedDecode(s fixedState) fixedState {
	if s.in == 0 {
		s.special = true
		s.fixed = Fixed49Mask
		return s
	}

	s.exp = bits.LeadingZeros32(s.in)
	s.d = uint64(s.in<<uint(s.exp)) << 30
	return s
}

// stage 10: remove the normalisation and round to 48 fractional bits. the
// approximation is 2^32 / (x << exp) in Q62 so the shift that leaves 48
// fractional bits is 46 - exp.
func fixedPack(s fixedState) fixedState {
	if s.special {
		return s
	}

	sh := uint(46 - s.exp)
	s.fixed = Fixed49((s.y+(1<<(sh-1)))>>sh) & Fixed49Mask
	return s
}

var xrecipStages = fixedStages(fixedDecode, fixedPack)

// XRecip is the combinational equivalent of the Fixed unit.
func XRecip(x uint32) Fixed49 {
	return pipeline.Run(fixedState{in: x}, xrecipStages...).fixed
}

// Fixed is the fixed point reciprocal unit. The operand is an unsigned
// integer and the result is 2^48 / In rounded to the nearest integer.
//
// The canonical configuration has two output registers after the eleven
// compute stages.
type Fixed struct {
	In uint32

	// clock enable. the unit is frozen while this is false
	CE bool

	unit[fixedState]
}

// NewFixed creates a Fixed unit with the canonical configuration.
func NewFixed() *Fixed {
	u, err := NewFixedWithConfig(revision.Must(revision.XRecip))
	if err != nil {
		panic(err)
	}
	return u
}

// NewFixedWithConfig creates a Fixed unit with an alternative configuration.
func NewFixedWithConfig(cfg pipeline.Config) (*Fixed, error) {
	un, err := newUnit(cfg, true, xrecipStages)
	if err != nil {
		return nil, err
	}
	return &Fixed{CE: true, unit: un}, nil
}

// Tick advances the unit by one clock.
func (u *Fixed) Tick() {
	u.p.Tick(u.CE, fixedState{in: u.In})
}

// Result returns the reciprocal at the tail of the pipeline.
func (u *Fixed) Result() Fixed49 {
	s, ok := u.tail()
	if !ok {
		return 0
	}
	return s.fixed
}
