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

// Package subtractor models the floating point adder/subtractor. The unit
// computes A - B with a latency of four ticks. Addition is subtraction of the
// negated operand.
//
// The unit is not IEEE-754 compliant. Alignment rounds on the last bit shifted
// out and there are no guard or sticky bits. Any operand with an exponent of
// 255 produces the canonical invalid pattern, signed as the operand enters the
// sum. Operand A is checked first, so:
//
//	0x7fffffff - x = 0x7fffffff
//	x - 0x7fffffff = 0xffffffff
//
// Equal operands always produce +0 and (-0) - (+0) is -0.
//
// The four stages are: unpack and order the operands, align the smaller
// significand, add or subtract the significands, normalise and pack.
package subtractor
