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

// Partial is a multiplication that has been started but not finished. Units
// that use the multiplier as a building block use it to spread the stages of
// the multiplier over three of their own stages:
//
//	p := multiplier.Start(a, b)  // unpack and product
//	p = p.Round()                // normalise and round
//	r := p.Finish()              // saturate or flush and pack
//
// The result is identical to Multiply(a, b).
type Partial struct {
	s state
}

// Start a multiplication. The operands are unpacked and the significand
// product is calculated.
func Start(a uint32, b uint32) Partial {
	return Partial{s: product(unpack(admit(a, b)))}
}

// Round the product.
func (p Partial) Round() Partial {
	return Partial{s: round(p.s)}
}

// Finish the multiplication and return the result.
func (p Partial) Finish() uint32 {
	return pack(p.s).result
}
