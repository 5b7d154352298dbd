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

// Package modalflag wraps the flag package from the standard library and adds
// program modes. A mode is a command line argument that selects what the
// program does, each mode with its own set of flags:
//
//	floatpipe -log bench -units FloatSub,FloatMul -stall 0.1
//
// Arguments are given once with NewArgs() and then parsed a layer at a time.
// Flags for the current layer are added before each call to Parse():
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("bench", "list", "dump")
//	echo := md.AddBool("log", false, "echo log to stderr")
//
//	switch p, err := md.Parse(); p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "BENCH":
//		md.NewMode()
//		units := md.AddString("units", "", "units to sweep")
//		...
//	}
//
// The first sub-mode in the list is the default. Mode names are case
// insensitive and are returned by Mode() in upper case. Path() returns every
// mode selected so far, separated by a slash.
//
// The -help flag is handled by Parse(), which prints the flags and sub-modes
// of the current layer to Output.
package modalflag
