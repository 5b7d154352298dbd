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

package conversion

import (
	"io"

	"github.com/jetsetilly/floatpipe/hardware/fpu/fp32"
	"github.com/jetsetilly/floatpipe/hardware/fpu/revision"
	"github.com/jetsetilly/floatpipe/hardware/pipeline"
)

type toIntState struct {
	in     uint32
	offset int8

	sign bool

	// left shift if positive. right shift if negative
	shift int

	// magnitude. after stage one, if round is true the magnitude has one more
	// bit than the result
	mag      uint64
	round    bool
	overflow bool

	result int32
}

// stage 0: unpack and calculate shift amount.
func toIntUnpack(s toIntState) toIntState {
	v := fp32.Decompose(s.in)
	s.sign = v.Sign
	s.mag = uint64(v.Significand())

	// the significand is an integer scaled by 2^(exponent-150)
	s.shift = int(v.EffectiveExponent()) - (fp32.Bias + fp32.MantissaBits) - int(s.offset)
	return s
}

// stage 1: shift the significand. right shifts stop one bit early so that
// stage two can round.
func toIntShift(s toIntState) toIntState {
	switch {
	case s.shift > 8:
		// the significand has 24 bits so anything more than a shift of eight
		// is beyond the range of the result
		s.overflow = true
		s.mag = 0
	case s.shift >= 0:
		s.mag <<= uint(s.shift)
	case s.shift < -25:
		s.mag = 0
	default:
		s.mag >>= uint(-s.shift - 1)
		s.round = true
	}
	return s
}

// stage 2: round to nearest with ties away from zero.
func toIntRound(s toIntState) toIntState {
	if s.round {
		s.mag = (s.mag >> 1) + (s.mag & 1)
		s.round = false
	}
	return s
}

// stage 3: range check and apply sign.
func toIntPack(s toIntState) toIntState {
	if s.overflow || s.mag > 0x7fffffff {
		s.result = 0
		return s
	}
	s.result = int32(s.mag)
	if s.sign {
		s.result = -s.result
	}
	return s
}

var toIntStages = []func(toIntState) toIntState{toIntUnpack, toIntShift, toIntRound, toIntPack}

// FloatToInt is the combinational equivalent of the ToInt unit.
func FloatToInt(bits uint32, offset int8) int32 {
	s := toIntState{in: bits, offset: offset}
	for _, f := range toIntStages {
		s = f(s)
	}
	return s.result
}

// ToInt is the clocked float to integer unit.
type ToInt struct {
	In     uint32
	Offset int8

	// clock enable. the unit is frozen while this is false
	CE bool

	p *pipeline.Pipeline[toIntState]
}

// NewToInt creates a ToInt unit with the canonical configuration.
func NewToInt() *ToInt {
	u, err := NewToIntWithConfig(revision.Must(revision.FloatToInt))
	if err != nil {
		panic(err)
	}
	return u
}

// NewToIntWithConfig creates a ToInt unit with an alternative configuration.
func NewToIntWithConfig(cfg pipeline.Config) (*ToInt, error) {
	err := cfg.Validate(len(toIntStages), true)
	if err != nil {
		return nil, err
	}

	u := &ToInt{CE: true}
	u.p, err = pipeline.New(cfg, toIntStages...)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// Tick advances the unit by one clock.
func (u *ToInt) Tick() {
	u.p.Tick(u.CE, toIntState{in: u.In, offset: u.Offset})
}

// Result returns the integer at the tail of the pipeline.
func (u *ToInt) Result() int32 {
	t := u.p.Tail()
	if !t.Valid {
		return 0
	}
	return t.Value.result
}

// Valid returns true if Result() is the conversion of an admitted value.
func (u *ToInt) Valid() bool {
	return u.p.Tail().Valid
}

// Latency returns the number of ticks from admission to result.
func (u *ToInt) Latency() int {
	return u.p.Depth()
}

// Reset empties the pipeline.
func (u *ToInt) Reset() {
	u.p.Reset()
}

// Dump writes the contents of the pipeline to io.Writer as a graphviz graph.
func (u *ToInt) Dump(w io.Writer) {
	u.p.Dump(w)
}
