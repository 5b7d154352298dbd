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

package reference_test

import (
	"math"
	"testing"

	"github.com/jetsetilly/floatpipe/reference"
	"github.com/jetsetilly/floatpipe/test"
)

func TestInvFast(t *testing.T) {
	for _, x := range []float32{0.001, 0.5, 1, 3, 123.456, 1000, -2, -0.75} {
		want := 1 / float64(x)
		test.ExpectApproximate(t, float64(reference.InvFast(x, 1)), want, 3.4e-3, x)
		test.ExpectApproximate(t, float64(reference.InvFast(x, 3)), want, 1e-6, x)
	}
}

func TestFastReciprocal(t *testing.T) {
	// the rsqrt-squared approximation is a few percent out
	for _, x := range []float32{0.001, 0.5, 1, 3, 123.456, 1000} {
		test.ExpectApproximate(t, float64(reference.FastReciprocal(x)), 1/float64(x), 0.07, x)
	}
	test.ExpectEquality(t, math.Float32bits(reference.FastReciprocal(0)), uint32(0x7f03519c))
}

func TestFixedReciprocal(t *testing.T) {
	test.ExpectEquality(t, reference.FixedReciprocal(1), uint64(1)<<48)
	test.ExpectEquality(t, reference.FixedReciprocal(2), uint64(1)<<47)
	test.ExpectEquality(t, reference.FixedReciprocal(3), uint64(0x555555555555))
	test.ExpectEquality(t, reference.FixedReciprocal(10), uint64(0x19999999999a))
}

func TestApprox(t *testing.T) {
	test.ExpectSuccess(t, reference.Approx(1.0000001, 1, 1e-6))
	test.ExpectFailure(t, reference.Approx(1.00001, 1, 1e-6))
	test.ExpectSuccess(t, reference.Approx(math.Inf(1), math.Inf(1), 1e-6))
	test.ExpectFailure(t, reference.Approx(1, math.Inf(1), 1e-6))
	test.ExpectFailure(t, reference.Approx(math.NaN(), 1, 1e-6))
	test.ExpectEquality(t, reference.RelativeError(1.5, 1), 0.5)
	test.ExpectEquality(t, reference.RelativeError(2, 2), 0.0)
}
