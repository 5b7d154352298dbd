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

package version

import (
	"runtime/debug"
	"testing"

	"github.com/jetsetilly/floatpipe/test"
)

func TestFromBuildInfo(t *testing.T) {
	info := &debug.BuildInfo{}
	v, r := fromBuildInfo(info)
	test.ExpectEquality(t, v, "devel")
	test.ExpectEquality(t, r, "no revision information")

	info.Main.Version = "v0.3.0"
	info.Settings = []debug.BuildSetting{
		{Key: "vcs", Value: "git"},
		{Key: "vcs.revision", Value: "8f2c1d0"},
		{Key: "vcs.modified", Value: "true"},
	}
	v, r = fromBuildInfo(info)
	test.ExpectEquality(t, v, "v0.3.0")
	test.ExpectEquality(t, r, "8f2c1d0+dirty")

	info.Settings[2].Value = "false"
	_, r = fromBuildInfo(info)
	test.ExpectEquality(t, r, "8f2c1d0")
}
