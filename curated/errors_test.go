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

package curated_test

import (
	"errors"
	"io"
	"testing"

	"github.com/jetsetilly/floatpipe/curated"
	"github.com/jetsetilly/floatpipe/test"
)

const testPattern = "pipeline: depth %d too small"
const wrapPattern = "revision: %v"

func TestFormatting(t *testing.T) {
	e := curated.Errorf(testPattern, 3)
	test.ExpectEquality(t, e.Error(), "pipeline: depth 3 too small")
}

func TestDuplicateCollapse(t *testing.T) {
	e := curated.Errorf("bench: mismatch at tick %d", 10)
	f := curated.Errorf("bench: %v", e)
	test.ExpectEquality(t, f.Error(), "bench: mismatch at tick 10")

	g := curated.Errorf("bench: %v", f)
	test.ExpectEquality(t, g.Error(), "bench: mismatch at tick 10")
}

func TestIs(t *testing.T) {
	e := curated.Errorf(testPattern, 3)
	test.ExpectSuccess(t, curated.IsAny(e))
	test.ExpectSuccess(t, curated.Is(e, testPattern))
	test.ExpectFailure(t, curated.Is(e, wrapPattern))

	// plain errors are never curated
	test.ExpectFailure(t, curated.IsAny(io.EOF))
	test.ExpectFailure(t, curated.Is(io.EOF, testPattern))
	test.ExpectFailure(t, curated.Is(nil, testPattern))
}

func TestHas(t *testing.T) {
	e := curated.Errorf(testPattern, 3)
	f := curated.Errorf(wrapPattern, e)
	test.ExpectSuccess(t, curated.Has(f, testPattern))
	test.ExpectSuccess(t, curated.Has(f, wrapPattern))
	test.ExpectFailure(t, curated.Is(f, testPattern))
	test.ExpectFailure(t, curated.Has(io.EOF, testPattern))
}

func TestUnwrap(t *testing.T) {
	e := curated.Errorf("wavtrace: %v", io.ErrShortWrite)
	test.ExpectSuccess(t, errors.Is(e, io.ErrShortWrite))

	// curated values are not unwrapped, Has() is used for those
	f := curated.Errorf(wrapPattern, curated.Errorf(testPattern, 1))
	test.ExpectEquality(t, errors.Unwrap(f), nil)
}
