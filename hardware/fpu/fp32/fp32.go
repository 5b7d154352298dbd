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

package fp32

import (
	"math"
)

// Field masks and constants of the single precision format.
const (
	SignMask     = 0x80000000
	ExponentMask = 0x7f800000
	MantissaMask = 0x007fffff

	MantissaBits = 23
	Bias         = 127
	MaxExponent  = 255

	// the implicit leading bit of a normal significand
	ImplicitBit = 1 << MantissaBits

	// magnitude of the canonical invalid pattern
	CanonicalInvalid = 0x7fffffff

	// magnitude of infinity
	InfinityBits = 0x7f800000

	// the value 1.0
	One = 0x3f800000

	// the value 2.0
	Two = 0x40000000
)

// Category is the classification of a bit pattern.
type Category int

// List of valid Category values.
const (
	CategoryZero Category = iota
	CategorySubnormal
	CategoryNormal
	CategoryInfinity
	CategoryInvalid
)

func (c Category) String() string {
	switch c {
	case CategoryZero:
		return "zero"
	case CategorySubnormal:
		return "subnormal"
	case CategoryNormal:
		return "normal"
	case CategoryInfinity:
		return "infinity"
	case CategoryInvalid:
		return "invalid"
	}
	return "unknown"
}

// Value is a single precision bit pattern split into its fields.
type Value struct {
	Sign     bool
	Exponent uint32
	Mantissa uint32
}

// Decompose splits a bit pattern into sign, exponent and mantissa.
func Decompose(bits uint32) Value {
	return Value{
		Sign:     bits&SignMask == SignMask,
		Exponent: (bits & ExponentMask) >> MantissaBits,
		Mantissa: bits & MantissaMask,
	}
}

// Compose is the inverse of Decompose. Fields are masked to their width.
func Compose(sign bool, exponent uint32, mantissa uint32) uint32 {
	v := (exponent&0xff)<<MantissaBits | mantissa&MantissaMask
	if sign {
		v |= SignMask
	}
	return v
}

// Bits returns the bit pattern for the Value.
func (v Value) Bits() uint32 {
	return Compose(v.Sign, v.Exponent, v.Mantissa)
}

// Category returns the classification of the Value.
func (v Value) Category() Category {
	switch v.Exponent {
	case 0:
		if v.Mantissa == 0 {
			return CategoryZero
		}
		return CategorySubnormal
	case MaxExponent:
		if v.Mantissa == 0 {
			return CategoryInfinity
		}
		return CategoryInvalid
	}
	return CategoryNormal
}

// Significand returns the mantissa with the implicit bit added if the exponent
// field is non-zero.
func (v Value) Significand() uint32 {
	if v.Exponent == 0 {
		return v.Mantissa
	}
	return v.Mantissa | ImplicitBit
}

// EffectiveExponent is the exponent field except that subnormals (and zero)
// report an exponent of one. this is the exponent that the significand is
// scaled by.
func (v Value) EffectiveExponent() uint32 {
	if v.Exponent == 0 {
		return 1
	}
	return v.Exponent
}

// SignBit returns the sign as a single bit in the least significant position.
func (v Value) SignBit() uint32 {
	if v.Sign {
		return 1
	}
	return 0
}

// Classify is shorthand for Decompose(bits).Category().
func Classify(bits uint32) Category {
	return Decompose(bits).Category()
}

func signed(sign bool, magnitude uint32) uint32 {
	if sign {
		return magnitude | SignMask
	}
	return magnitude
}

// Zero returns the zero pattern with the sign.
func Zero(sign bool) uint32 {
	return signed(sign, 0)
}

// Infinity returns the infinity pattern with the sign.
func Infinity(sign bool) uint32 {
	return signed(sign, InfinityBits)
}

// Invalid returns the canonical invalid pattern with the sign.
func Invalid(sign bool) uint32 {
	return signed(sign, CanonicalInvalid)
}

// Abs clears the sign bit.
func Abs(bits uint32) uint32 {
	return bits &^ SignMask
}

// Neg inverts the sign bit.
func Neg(bits uint32) uint32 {
	return bits ^ SignMask
}

// Negative returns true if the sign bit is set.
func Negative(bits uint32) bool {
	return bits&SignMask == SignMask
}

// FromFloat32 returns the bit pattern of a float32.
func FromFloat32(f float32) uint32 {
	return math.Float32bits(f)
}

// ToFloat32 returns the float32 for a bit pattern.
func ToFloat32(bits uint32) float32 {
	return math.Float32frombits(bits)
}
