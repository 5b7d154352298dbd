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

// Package conversion models the float to integer and integer to float units.
// Both have a latency of four ticks and an exponent offset input that scales
// the value by a power of two as part of the conversion.
//
// For float to integer the value is multiplied by 2^-offset before rounding,
// so an offset of -1 doubles the value and an offset of 1 halves it. For
// integer to float the value is multiplied by 2^offset. Converting with the
// same offset in both directions is the identity for magnitudes below 2^24:
//
//	conversion.FloatToInt(conversion.IntToFloat(n, k), k) == n
//
// Rounding is to nearest with ties away from zero. The float to integer unit
// works with an unsigned 31 bit magnitude. Any result with a magnitude of
// 2^31 or more is zero, including -2^31. The integer to float unit has no
// representable magnitude for -2^31 and converts it to -0.
//
// The ToInt and ToFloat types are the clocked units. The FloatToInt() and
// IntToFloat() functions are the combinational equivalents.
package conversion
