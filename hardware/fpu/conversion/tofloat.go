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
	"math/bits"

	"github.com/jetsetilly/floatpipe/hardware/fpu/fp32"
	"github.com/jetsetilly/floatpipe/hardware/fpu/revision"
	"github.com/jetsetilly/floatpipe/hardware/pipeline"
)

type toFloatState struct {
	in     int32
	offset int8

	sign bool
	mag  uint32
	exp  int

	result uint32
}

// stage 0: sign and magnitude. the magnitude is calculated with unsigned 31
// bit arithmetic so the magnitude of -2^31 is zero.
func toFloatSign(s toFloatState) toFloatState {
	s.sign = s.in < 0
	s.mag = uint32(s.in)
	if s.sign {
		s.mag = -s.mag
	}
	s.mag &= 0x7fffffff
	return s
}

// stage 1: normalise so that the leading one is in bit 31.
func toFloatNormalise(s toFloatState) toFloatState {
	if s.mag == 0 {
		return s
	}
	lz := bits.LeadingZeros32(s.mag)
	s.mag <<= uint(lz)

	// a value with its leading one in bit 31 has an exponent of 31
	s.exp = fp32.Bias + 31 - lz
	return s
}

// stage 2: round the 32 bit normalised magnitude to 24 bits.
func toFloatRound(s toFloatState) toFloatState {
	if s.mag == 0 {
		return s
	}
	m := (s.mag >> 8) + ((s.mag >> 7) & 1)
	if m>>24 != 0 {
		m >>= 1
		s.exp++
	}
	s.mag = m
	return s
}

// stage 3: apply exponent offset and pack.
func toFloatPack(s toFloatState) toFloatState {
	if s.mag == 0 {
		s.result = fp32.Zero(s.sign)
		return s
	}

	e := s.exp + int(s.offset)
	switch {
	case e >= fp32.MaxExponent:
		s.result = fp32.Infinity(s.sign)
	case e <= 0:
		s.result = fp32.Zero(s.sign)
	default:
		s.result = fp32.Compose(s.sign, uint32(e), s.mag)
	}
	return s
}

var toFloatStages = []func(toFloatState) toFloatState{toFloatSign, toFloatNormalise, toFloatRound, toFloatPack}

// IntToFloat is the combinational equivalent of the ToFloat unit.
func IntToFloat(v int32, offset int8) uint32 {
	s := toFloatState{in: v, offset: offset}
	for _, f := range toFloatStages {
		s = f(s)
	}
	return s.result
}

// ToFloat is the clocked integer to float unit.
type ToFloat struct {
	In     int32
	Offset int8

	// clock enable. the unit is frozen while this is false
	CE bool

	p *pipeline.Pipeline[toFloatState]
}

// NewToFloat creates a ToFloat unit with the canonical configuration.
func NewToFloat() *ToFloat {
	u, err := NewToFloatWithConfig(revision.Must(revision.IntToFloat))
	if err != nil {
		panic(err)
	}
	return u
}

// NewToFloatWithConfig creates a ToFloat unit with an alternative
// configuration.
func NewToFloatWithConfig(cfg pipeline.Config) (*ToFloat, error) {
	err := cfg.Validate(len(toFloatStages), true)
	if err != nil {
		return nil, err
	}

	u := &ToFloat{CE: true}
	u.p, err = pipeline.New(cfg, toFloatStages...)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// Tick advances the unit by one clock.
func (u *ToFloat) Tick() {
	u.p.Tick(u.CE, toFloatState{in: u.In, offset: u.Offset})
}

// Result returns the bit pattern at the tail of the pipeline.
func (u *ToFloat) Result() uint32 {
	t := u.p.Tail()
	if !t.Valid {
		return 0
	}
	return t.Value.result
}

// Valid returns true if Result() is the conversion of an admitted value.
func (u *ToFloat) Valid() bool {
	return u.p.Tail().Valid
}

// Latency returns the number of ticks from admission to result.
func (u *ToFloat) Latency() int {
	return u.p.Depth()
}

// Reset empties the pipeline.
func (u *ToFloat) Reset() {
	u.p.Reset()
}

// Dump writes the contents of the pipeline to io.Writer as a graphviz graph.
func (u *ToFloat) Dump(w io.Writer) {
	u.p.Dump(w)
}
