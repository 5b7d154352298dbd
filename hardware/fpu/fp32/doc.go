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

// Package fp32 decomposes, composes and classifies IEEE-754 single precision
// bit patterns. Every unit in the fpu packages works on raw uint32 patterns
// rather than on float32 values and uses this package to pick them apart.
//
// The hardware being modelled does not preserve NaN payloads. An operand
// with an exponent field of 255 and a non-zero mantissa is Invalid and an
// invalid result is always the canonical all-ones magnitude. The sign of the
// canonical pattern depends on which operand was invalid, so both
// 0x7fffffff and 0xffffffff are produced.
package fp32
