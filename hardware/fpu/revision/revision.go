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

// Package revision is the list of canonical unit configurations. Each unit
// variant is registered under a name and the units' New() functions use the
// entry here. NewWithConfig() in each unit package accepts an alternative.
package revision

import (
	"slices"

	"github.com/jetsetilly/floatpipe/curated"
	"github.com/jetsetilly/floatpipe/hardware/pipeline"
)

// List of unit names.
const (
	FloatSub    = "FloatSub"
	FloatMul    = "FloatMul"
	FloatToInt  = "FloatToInt"
	IntToFloat  = "IntToFloat"
	SeedRecip   = "SeedRecip"
	FastRecip   = "FastRecip"
	NewtonRecip = "NewtonRecip"
	FloatRecip  = "FloatRecip"
	XRecip      = "XRecip"
)

var configs = map[string]pipeline.Config{
	FloatSub:    {Name: FloatSub, Depth: 4, ClockEnable: true},
	FloatMul:    {Name: FloatMul, Depth: 4, ClockEnable: true},
	FloatToInt:  {Name: FloatToInt, Depth: 4, ClockEnable: true},
	IntToFloat:  {Name: IntToFloat, Depth: 4, ClockEnable: true},
	SeedRecip:   {Name: SeedRecip, Depth: 4, ClockEnable: true},
	FastRecip:   {Name: FastRecip, Depth: 4, ClockEnable: true},
	NewtonRecip: {Name: NewtonRecip, Depth: 25, ClockEnable: false},
	FloatRecip:  {Name: FloatRecip, Depth: 11, ClockEnable: false},
	XRecip:      {Name: XRecip, Depth: 13, ClockEnable: true},
}

// ErrUnknown is returned by Lookup() for a name that has no configuration.
const ErrUnknown = "revision: unknown unit (%s)"

// Lookup returns the configuration for the named unit.
func Lookup(name string) (pipeline.Config, error) {
	cfg, ok := configs[name]
	if !ok {
		return pipeline.Config{}, curated.Errorf(ErrUnknown, name)
	}
	return cfg, nil
}

// Must is like Lookup() but panics if the name is not known. It is used by the
// unit packages with the constant names above.
func Must(name string) pipeline.Config {
	cfg, err := Lookup(name)
	if err != nil {
		panic(err)
	}
	return cfg
}

// Names returns the list of unit names in alphabetical order.
func Names() []string {
	n := make([]string, 0, len(configs))
	for k := range configs {
		n = append(n, k)
	}
	slices.Sort(n)
	return n
}
