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

// Package statsview serves live charts of the Go runtime (heap, goroutines,
// GC pauses) while a long sweep is running. It is only available when the
// program is built with the statsview build tag:
//
//	go build -tags=statsview .
//
// The charts are served at http://localhost:12600/debug/statsview. Without
// the build tag Launch() does nothing and Available() returns false.
package statsview
