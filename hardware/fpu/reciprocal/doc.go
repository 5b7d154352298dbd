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

// Package reciprocal models the family of reciprocal approximation units.
//
// The float variants seed an approximation by treating the operand's bit
// pattern as an integer and subtracting it from a magic constant. The seed is
// refined with Newton-Raphson iterations of the form:
//
//	v = v * (2 - x * v)
//
// where the multiplication and subtraction are the multiplier and subtractor
// units. The Float and Fixed variants use a fixed point Newton-Raphson core
// instead, seeded with the linear approximation 48/17 - 32/17 d for an
// operand normalised to the range [0.5, 1).
//
//	type          seed                 refinement   latency  clock-enable
//	Seed          0x7ef127ea - x       1 iteration  4        yes
//	RsqrtSquared  (0xbe6eb3be - x)>>1  squared      4        yes
//	Newton        0x7ef127ea - x       3 iterations 25       no
//	Float         fixed point          4 iterations 11       no
//	Fixed         fixed point          4 iterations 13       yes
//
// The float variants remove the sign of the operand before seeding and
// restore it at the end. An invalid operand produces the canonical invalid
// pattern and an infinite operand produces zero, both with the sign of the
// operand. The reciprocal of zero depends on the variant:
//
//	Seed          the value the arithmetic gives (0x7f7127ea, signed)
//	RsqrtSquared  the square of the seed (0x7f03519c, signed)
//	Newton        +infinity for either sign of zero
//	Float         infinity with the sign of the operand
//	Fixed         the largest Fixed49 value
//
// The Fixed variant interprets its operand as an unsigned integer and produces
// the reciprocal as a Fixed49 value. Its accuracy is supported for operands
// below 2^28, beyond which the quantisation of the result dominates.
//
// Each variant has a combinational equivalent: SeedRecip(), FastRecip(),
// NewtonRecip(), FloatRecip() and XRecip().
package reciprocal
