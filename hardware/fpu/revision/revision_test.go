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

package revision_test

import (
	"testing"

	"github.com/jetsetilly/floatpipe/curated"
	"github.com/jetsetilly/floatpipe/hardware/fpu/revision"
	"github.com/jetsetilly/floatpipe/test"
)

func TestLatencies(t *testing.T) {
	vectors := []struct {
		name  string
		depth int
		ce    bool
	}{
		{revision.FloatSub, 4, true},
		{revision.FloatMul, 4, true},
		{revision.FloatToInt, 4, true},
		{revision.IntToFloat, 4, true},
		{revision.SeedRecip, 4, true},
		{revision.FastRecip, 4, true},
		{revision.NewtonRecip, 25, false},
		{revision.FloatRecip, 11, false},
		{revision.XRecip, 13, true},
	}

	test.DemandEquality(t, len(revision.Names()), len(vectors))

	for _, v := range vectors {
		cfg, err := revision.Lookup(v.name)
		test.DemandSuccess(t, err, v.name)
		test.ExpectEquality(t, cfg.Name, v.name)
		test.ExpectEquality(t, cfg.Depth, v.depth, v.name)
		test.ExpectEquality(t, cfg.ClockEnable, v.ce, v.name)
	}
}

func TestUnknown(t *testing.T) {
	_, err := revision.Lookup("FloatDiv")
	test.ExpectSuccess(t, curated.Is(err, revision.ErrUnknown))
	test.ExpectEquality(t, err.Error(), "revision: unknown unit (FloatDiv)")
}

func TestNames(t *testing.T) {
	n := revision.Names()
	test.DemandEquality(t, len(n), 9)
	test.ExpectEquality(t, n[0], "FastRecip")
	test.ExpectEquality(t, n[len(n)-1], "XRecip")
}
