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

// Package curated wraps the plain error type so that the formatting pattern
// used to create an error can be used to identify it later.
//
// Errors are created with Errorf(), which takes the same arguments as
// fmt.Errorf(). The pattern is remembered:
//
//	e := curated.Errorf("pipeline: depth %d too small", 3)
//
//	if curated.Is(e, "pipeline: depth %d too small") {
//		...
//	}
//
// Has() searches the values of a curated error for another curated error
// with the pattern, so a wrapped error can still be found:
//
//	f := curated.Errorf("bench: %v", e)
//	curated.Has(f, "pipeline: depth %d too small") // true
//
// Repeated leading parts of the message are collapsed when the error is
// formatted, so that "bench: bench: mismatch" is printed as "bench: mismatch".
//
// Values that are plain (non-curated) errors are reachable with the standard
// errors.Is() and errors.As() functions through Unwrap().
package curated
