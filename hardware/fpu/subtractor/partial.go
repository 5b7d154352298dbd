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

// Partial is a subtraction that has been started but not finished. It allows
// the subtractor to be used as a two stage building block:
//
//	p := subtractor.Start(a, b)  // unpack, align and subtract
//	r := p.Finish()              // normalise and pack
//
// The result is identical to Subtract(a, b).
type Partial struct {
	s state
}

// Start a subtraction of b from a.
func Start(a uint32, b uint32) Partial {
	return Partial{s: arithmetic(align(unpack(admit(operands{A: a, B: b}))))}
}

// Finish the subtraction and return the result.
func (p Partial) Finish() uint32 {
	return pack(p.s).result
}
