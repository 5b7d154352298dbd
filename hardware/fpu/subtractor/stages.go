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

package subtractor

import (
	"github.com/jetsetilly/floatpipe/hardware/fpu/fp32"
)

// operands are the values admitted into the pipeline on each tick.
type operands struct {
	A uint32
	B uint32
}

// state is the contents of a pipeline slot.
type state struct {
	// operands as admitted
	a uint32
	b uint32

	// the result has already been decided by stage zero
	special bool
	result  uint32

	// sign bits. the sign of B has been inverted
	sa uint32
	sb uint32

	// exponents are effective exponents. subnormals have an exponent of one
	xa uint32
	xb uint32

	// significands. after stage one mb is the aligned significand and after
	// stage two ma is the sum
	ma uint32
	mb uint32
}

// stage 0: unpack and order the operands so that the operand with the
// larger magnitude is first.
func unpack(in state) state {
	a := fp32.Decompose(in.a)
	b := fp32.Decompose(in.b)
	b.Sign = !b.Sign

	s := state{a: in.a, b: in.b}

	if a.Exponent == fp32.MaxExponent {
		s.special = true
		s.result = fp32.Invalid(a.Sign)
		return s
	}
	if b.Exponent == fp32.MaxExponent {
		s.special = true
		s.result = fp32.Invalid(b.Sign)
		return s
	}

	s.sa, s.xa, s.ma = a.SignBit(), a.EffectiveExponent(), a.Significand()
	s.sb, s.xb, s.mb = b.SignBit(), b.EffectiveExponent(), b.Significand()

	if s.xb > s.xa || (s.xb == s.xa && s.mb > s.ma) {
		s.sa, s.sb = s.sb, s.sa
		s.xa, s.xb = s.xb, s.xa
		s.ma, s.mb = s.mb, s.ma
	}

	return s
}

// stage 1: shift the smaller significand right by the exponent difference,
// rounding on the last bit shifted out.
func align(s state) state {
	if s.special {
		return s
	}

	d := s.xa - s.xb
	switch {
	case d == 0:
	case d > 25:
		s.mb = 0
	default:
		s.mb = (s.mb >> d) + ((s.mb >> (d - 1)) & 1)
	}
	s.xb = s.xa

	return s
}

// stage 2: signed significand arithmetic. the first significand is never the
// smaller of the two so the difference can not go negative.
func arithmetic(s state) state {
	if s.special {
		return s
	}

	if s.sa == s.sb {
		s.ma += s.mb
	} else {
		s.ma -= s.mb
	}
	s.mb = 0

	return s
}

// stage 3: normalise and pack the result.
func pack(s state) state {
	if s.special {
		return s
	}

	m := s.ma
	e := s.xa

	if m == 0 {
		s.result = (s.sa & s.sb) << 31
		return s
	}

	// carry past the leading bit. the second shift can only happen if the
	// rounding of the first shift carried
	if m>>24 != 0 {
		m = (m >> 1) + (m & 1)
		e++
		if m>>24 != 0 {
			m >>= 1
			e++
		}
	}

	for m < fp32.ImplicitBit && e > 1 {
		m <<= 1
		e--
	}
	if m < fp32.ImplicitBit {
		e = 0
	}

	if e >= fp32.MaxExponent {
		s.result = fp32.Infinity(s.sa == 1)
		return s
	}

	s.result = fp32.Compose(s.sa == 1, e, m)
	return s
}

// admit places the operands into a state ready for stage zero.
func admit(o operands) state {
	return state{a: o.A, b: o.B}
}

var stages = []func(state) state{unpack, align, arithmetic, pack}

// Subtract is the combinational equivalent of the Subtractor unit.
func Subtract(a uint32, b uint32) uint32 {
	s := admit(operands{A: a, B: b})
	for _, f := range stages {
		s = f(s)
	}
	return s.result
}

// Add returns a + b. It is implemented as a - (-b).
func Add(a uint32, b uint32) uint32 {
	return Subtract(a, fp32.Neg(b))
}
