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

// Package bench drives the clocked units with long sequences of operands and
// compares every result with the combinational model of the unit. Some units
// are also compared with the software algorithms in the reference package.
//
// There are two kinds of sweep. A streaming sweep admits a new operand on
// every enabled tick and checks the result of the operand admitted
// Latency()-1 enabled ticks earlier. A flush sweep admits one operand and then
// zeros until the result arrives.
//
// For units that support clock-enable, stalls can be injected by deasserting
// the enable signal at random. The random sequence is seeded so that a failing
// sweep can be repeated exactly. While the unit is stalled the output must not
// change.
//
// Sweeps of independent units are run concurrently with RunAll().
package bench
