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
	"fmt"
	"math/bits"
)

// Fixed49 is an unsigned fixed point value with 48 fractional bits and a 49
// bit magnitude.
type Fixed49 uint64

// Fixed49 constants.
const (
	Fixed49Bits = 49
	Fixed49Frac = 48
	Fixed49Mask = Fixed49(1<<Fixed49Bits - 1)
	Fixed49One  = Fixed49(1 << Fixed49Frac)
)

// Float64 returns the Fixed49 value as a float64.
func (f Fixed49) Float64() float64 {
	return float64(f) / float64(Fixed49One)
}

func (f Fixed49) String() string {
	return fmt.Sprintf("%#013x", uint64(f))
}

// the Newton-Raphson core of the Float and Fixed units works with unsigned
// Q62 values. an operand d in the range [0.5, 1) has a reciprocal in the
// range (1, 2] so the approximation never needs more than 64 bits.
const (
	q62Two = uint64(1) << 63

	// 48/17 and 32/17
	q62Seed48 = 0xb4b4b4b4b4b4b4b5
	q62Seed32 = 0x7878787878787878

	fixedIterations = 4
)

// q62Mul returns the Q62 product of two Q62 values.
func q62Mul(a uint64, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	return hi<<2 | lo>>62
}

// fixedState is the slot contents for the Float and Fixed units.
type fixedState struct {
	in uint32

	special bool
	result  uint32
	fixed   Fixed49

	sign bool

	// biased exponent of the result for the Float unit. the number of leading
	// zeros in the operand for the Fixed unit
	exp int

	// the normalised operand and the current approximation of its reciprocal
	d uint64
	y uint64

	// d * y for the current iteration
	t uint64
}

// the seed and refinement stages shared by the Float and Fixed units. one
// stage for the seed and two for each iteration
var fixedCore = func() []func(fixedState) fixedState {
	st := []func(fixedState) fixedState{
		func(s fixedState) fixedState {
			if s.special {
				return s
			}
			s.y = q62Seed48 - q62Mul(q62Seed32, s.d)
			return s
		},
	}
	for range fixedIterations {
		st = append(st,
			func(s fixedState) fixedState {
				if s.special {
					return s
				}
				s.t = q62Mul(s.d, s.y)
				return s
			},
			func(s fixedState) fixedState {
				if s.special {
					return s
				}
				s.y = q62Mul(s.y, q62Two-s.t)
				return s
			},
		)
	}
	return st
}()

// fixedStages returns the stage functions for a unit that uses the fixed
// point core.
func fixedStages(decode func(fixedState) fixedState, pack func(fixedState) fixedState) []func(fixedState) fixedState {
	st := []func(fixedState) fixedState{decode}
	st = append(st, fixedCore...)
	return append(st, pack)
}
