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

package multiplier

import (
	"github.com/jetsetilly/floatpipe/hardware/fpu/fp32"
)

// state is the contents of a pipeline slot.
type state struct {
	a uint32
	b uint32

	special bool
	result  uint32

	// sign of the product
	sign bool

	// biased exponent of the product. can be negative or greater than 255
	// before the final stage
	exp int

	// significands in stage zero. product in stage one. rounded fraction
	// after stage two
	ma      uint64
	mb      uint64
	product uint64
}

func admit(a uint32, b uint32) state {
	return state{a: a, b: b}
}

// stage 0: unpack operands and detect special values.
func unpack(s state) state {
	a := fp32.Decompose(s.a)
	b := fp32.Decompose(s.b)

	s.sign = a.Sign != b.Sign

	ca := a.Category()
	cb := b.Category()

	switch {
	case ca == fp32.CategoryInvalid || cb == fp32.CategoryInvalid:
		s.special = true
		s.result = fp32.Invalid(s.sign)
	case ca == fp32.CategoryZero || cb == fp32.CategoryZero:
		s.special = true
		s.result = fp32.Zero(s.sign)
	case ca == fp32.CategoryInfinity || cb == fp32.CategoryInfinity:
		s.special = true
		s.result = fp32.Infinity(s.sign)
	}

	s.ma = uint64(a.Significand())
	s.mb = uint64(b.Significand())
	s.exp = int(a.Exponent) + int(b.Exponent) - fp32.Bias

	return s
}

// stage 1: significand product.
func product(s state) state {
	if s.special {
		return s
	}
	s.product = s.ma * s.mb
	return s
}

// stage 2: normalise and round the product to 24 bits.
func round(s state) state {
	if s.special {
		return s
	}

	sh := uint(23)
	if s.product>>47 != 0 {
		sh = 24
		s.exp++
	}

	frac := (s.product >> sh) + ((s.product >> (sh - 1)) & 1)
	if frac>>24 != 0 {
		frac >>= 1
		s.exp++
	}
	s.product = frac

	return s
}

// stage 3: saturate or flush and pack.
func pack(s state) state {
	if s.special {
		return s
	}

	switch {
	case s.exp >= fp32.MaxExponent:
		s.result = fp32.Infinity(s.sign)
	case s.exp < 0:
		s.result = fp32.Zero(s.sign)
	default:
		s.result = fp32.Compose(s.sign, uint32(s.exp), uint32(s.product))
	}

	return s
}

var stages = []func(state) state{unpack, product, round, pack}

// Multiply is the combinational equivalent of the Multiplier unit.
func Multiply(a uint32, b uint32) uint32 {
	s := admit(a, b)
	for _, f := range stages {
		s = f(s)
	}
	return s.result
}
