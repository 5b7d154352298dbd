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
	"github.com/jetsetilly/floatpipe/hardware/fpu/revision"
	"github.com/jetsetilly/floatpipe/hardware/pipeline"
)

// stage 0: decode special operands and normalise the significand to the range
// [0.5, 1) in Q62.
func floatDecode(s fixedState) fixedState {
	v := fp32.Decompose(s.in)
	s.sign = v.Sign

	switch v.Category() {
	case fp32.CategoryInvalid:
		s.special = true
		s.result = fp32.Invalid(v.Sign)
		return s
	case fp32.CategoryInfinity:
		s.special = true
		s.result = fp32.Zero(v.Sign)
		return s
	case fp32.CategoryZero, fp32.CategorySubnormal:
		s.special = true
		s.result = fp32.Infinity(v.Sign)
		return s
	}

	// the significand with the leading one in bit 31 is d as a Q32 value
	s.d = uint64(v.Significand()<<8) << 30

	// 1/x = 1/(2d) * 2^(127-e) so the biased exponent of the result is
	// (127-e-1)+127 when the reciprocal of d is in the range [1, 2)
	s.exp = 2*fp32.Bias - 1 - int(v.Exponent)

	return s
}

// stage 10: round the approximation to 24 bits and pack.
func floatPack(s fixedState) fixedState {
	if s.special {
		return s
	}

	var q uint64
	if s.y >= q62Two {
		q = (s.y + (1 << 39)) >> 40
		s.exp++
	} else {
		q = (s.y + (1 << 38)) >> 39
	}
	if q>>24 != 0 {
		q >>= 1
		s.exp++
	}

	switch {
	case s.exp >= fp32.MaxExponent:
		s.result = fp32.Infinity(s.sign)
	case s.exp <= 0:
		s.result = fp32.Zero(s.sign)
	default:
		s.result = fp32.Compose(s.sign, uint32(s.exp), uint32(q))
	}

	return s
}

var floatStages = fixedStages(floatDecode, floatPack)

// FloatRecip is the combinational equivalent of the Float unit.
func FloatRecip(x uint32) uint32 {
	return pipeline.Run(fixedState{in: x}, floatStages...).result
}

// Float is the reciprocal unit that uses the fixed point core for a floating
// point operand. The unit has no clock-enable input.
type Float struct {
	In uint32

	unit[fixedState]
}

// NewFloat creates a Float unit with the canonical configuration.
func NewFloat() *Float {
	u, err := NewFloatWithConfig(revision.Must(revision.FloatRecip))
	if err != nil {
		panic(err)
	}
	return u
}

// NewFloatWithConfig creates a Float unit with an alternative configuration.
func NewFloatWithConfig(cfg pipeline.Config) (*Float, error) {
	un, err := newUnit(cfg, false, floatStages)
	if err != nil {
		return nil, err
	}
	return &Float{unit: un}, nil
}

// Tick advances the unit by one clock.
func (u *Float) Tick() {
	u.p.Tick(true, fixedState{in: u.In})
}

// Result returns the reciprocal at the tail of the pipeline.
func (u *Float) Result() uint32 {
	s, ok := u.tail()
	if !ok {
		return 0
	}
	return s.result
}
