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

// Package version reports the version of the program from the build
// information embedded by the Go toolchain.
package version

import (
	"runtime/debug"
)

// ApplicationName is used when referring to the program.
const ApplicationName = "floatpipe"

// Version returns the module version and the vcs revision. The version is
// "devel" when the program was not built from a tagged module and the
// revision is suffixed with "+dirty" if the source had been modified.
func Version() (string, string) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "devel", "no revision information"
	}
	return fromBuildInfo(info)
}

func fromBuildInfo(info *debug.BuildInfo) (string, string) {
	version := info.Main.Version
	if version == "" || version == "(devel)" {
		version = "devel"
	}

	var revision string
	var modified bool
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			modified = s.Value == "true"
		}
	}

	if revision == "" {
		return version, "no revision information"
	}
	if modified {
		revision += "+dirty"
	}
	return version, revision
}
