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

package pipeline

import (
	"fmt"

	"github.com/jetsetilly/floatpipe/curated"
)

// Config describes a unit's pipeline.
type Config struct {
	// name of the unit. used to identify the unit in error messages and logs
	Name string

	// number of ticks between an operand entering the pipeline and the result
	// appearing at the tail
	Depth int

	// whether the unit has a clock-enable input
	ClockEnable bool
}

func (cfg Config) String() string {
	if cfg.ClockEnable {
		return fmt.Sprintf("%s (depth %d, ce)", cfg.Name, cfg.Depth)
	}
	return fmt.Sprintf("%s (depth %d)", cfg.Name, cfg.Depth)
}

// Error patterns returned by Validate().
const (
	ErrDepth       = "pipeline: %s: depth %d is less than the %d compute stages"
	ErrClockEnable = "pipeline: %s: clock-enable not supported by the unit"
)

// Validate checks that the Config can be used for a unit with the number of
// compute stages and clock-enable support.
func (cfg Config) Validate(stages int, clockEnable bool) error {
	if cfg.Depth < stages || cfg.Depth < 1 {
		return curated.Errorf(ErrDepth, cfg.Name, cfg.Depth, stages)
	}
	if cfg.ClockEnable && !clockEnable {
		return curated.Errorf(ErrClockEnable, cfg.Name)
	}
	return nil
}
