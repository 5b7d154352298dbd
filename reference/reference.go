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

// Package reference contains software versions of the reciprocal
// approximations, computed with float32 arithmetic, and the tolerance test
// used to compare them with the output of the units.
//
// Every intermediate value is explicitly converted to float32 so that the
// compiler can not fuse a multiply and subtract into a single instruction.
// The results must be the same on every architecture.
package reference

import (
	"math"
)

// SeedMagic is the constant the direct seed subtracts the operand bits from.
const SeedMagic = 0x7ef127ea

// RsqrtMagic is the constant for the inverse square root seed.
const RsqrtMagic = 0xbe6eb3be

// InvFast approximates 1/x by seeding with SeedMagic and refining with the
// number of Newton-Raphson iterations. The sign of x is removed before seeding
// and restored at the end.
//
// With one iteration the relative error is about 3.36e-3. With three it is
// about 6.8e-8.
func InvFast(x float32, iterations int) float32 {
	sx := float32(1)
	if x < 0 {
		sx = -1
	}
	x = float32(sx * x)

	v := math.Float32frombits(SeedMagic - math.Float32bits(x))
	for range iterations {
		w := float32(x * v)
		c := float32(2 - w)
		v = float32(v * c)
	}

	return float32(v * sx)
}

// FastReciprocal approximates 1/x by squaring an approximation of the inverse
// square root. The operand must be positive.
func FastReciprocal(x float32) float32 {
	u := math.Float32frombits((RsqrtMagic - math.Float32bits(x)) >> 1)
	return float32(u * u)
}

// FixedReciprocal is the exact value that the fixed point reciprocal rounds
// to, 2^48 / x rounded to the nearest integer. x must not be zero.
func FixedReciprocal(x uint32) uint64 {
	return (1<<48 + uint64(x)/2) / uint64(x)
}

// Approx returns true if got is within a relative distance epsilon of want.
// Equal values, including infinities of the same sign, are always
// approximately equal.
func Approx(got float64, want float64, epsilon float64) bool {
	if got == want {
		return true
	}
	if math.IsNaN(got) || math.IsNaN(want) || math.IsInf(want, 0) {
		return false
	}
	return math.Abs(got-want) <= epsilon*math.Abs(want)
}

// RelativeError returns the distance between got and want as a fraction of
// want.
func RelativeError(got float64, want float64) float64 {
	if got == want {
		return 0
	}
	return math.Abs(got-want) / math.Abs(want)
}
