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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The ExpectEquality() family of functions report a test error and allow the
// test to continue. The Demand*() functions stop the test immediately.
//
// Every function accepts optional tags which are prepended to the failure
// message. Table driven tests use this to say which vector failed:
//
//	for i, v := range vectors {
//		test.ExpectBits(t, subtractor.Subtract(v.a, v.b), v.want, i)
//	}
//
// ExpectBits() reports uint32 values in hexadecimal, which is more useful than
// decimal when comparing floating point bit patterns.
//
// The RingWriter type is an implementation of io.Writer that keeps only the
// most recent output. It is useful for capturing log echo in long running
// tests.
package test
