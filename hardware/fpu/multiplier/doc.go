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

// Package multiplier models the floating point multiplier. The unit computes
// A * B with a latency of four ticks and is commutative for every pair of
// operands.
//
// Significands are multiplied into a 48 bit product and rounded half-up on
// the first dropped bit. Results that would be subnormal keep only the
// fraction bits of a result with an exponent of zero. Anything smaller is
// flushed to a zero with the sign of the product.
//
// Special operands are handled in this order:
//
//	any invalid operand gives the canonical invalid pattern
//	any zero operand gives zero (infinity * 0 = 0)
//	any infinite operand gives infinity
package multiplier
