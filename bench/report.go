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

package bench

import (
	"fmt"
	"time"
)

// Report is the summary of a single sweep.
type Report struct {
	Unit string
	Mode Mode

	// total number of ticks including stalled ticks
	Ticks  int
	Stalls int

	// number of results compared with the model
	Checked    int
	Mismatches int

	Duration time.Duration
}

func (r Report) String() string {
	s := fmt.Sprintf("%s (%s): %d checked in %d ticks", r.Unit, r.Mode, r.Checked, r.Ticks)
	if r.Stalls > 0 {
		s = fmt.Sprintf("%s (%d stalled)", s, r.Stalls)
	}
	if r.Mismatches > 0 {
		s = fmt.Sprintf("%s: %d mismatches", s, r.Mismatches)
	}
	return s
}
