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

// Package pipeline is a fixed-depth shift register of stage slots. It is the
// timing model shared by every unit in the fpu packages.
//
// A Pipeline is created with a Config and one stage function per compute
// stage. Each call to Tick() moves every slot one position towards the tail,
// applying the stage function for the destination slot, and admits a new
// operand into the head slot:
//
//	p, err := pipeline.New(cfg, unpack, align, add, pack)
//	...
//	p.Tick(ce, operands)
//	out := p.Tail()
//
// If the configured depth is greater than the number of stage functions the
// extra slots are output registers. They copy the preceding slot unchanged.
//
// When the Config says that clock-enable is supported, a call to Tick() with
// enable deasserted changes nothing. No operand is admitted and no slot
// moves. For a Config without clock-enable the enable argument is ignored.
//
// A slot that has never been written is empty. Empty slots propagate as empty
// slots so a unit's output before the pipeline has filled can be told apart
// from a real result.
package pipeline
