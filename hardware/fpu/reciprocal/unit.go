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

package reciprocal

import (
	"io"

	"github.com/jetsetilly/floatpipe/hardware/fpu/fp32"
	"github.com/jetsetilly/floatpipe/hardware/fpu/multiplier"
	"github.com/jetsetilly/floatpipe/hardware/fpu/subtractor"
	"github.com/jetsetilly/floatpipe/hardware/pipeline"
)

// unit is embedded by every reciprocal unit.
type unit[T any] struct {
	p *pipeline.Pipeline[T]
}

func newUnit[T any](cfg pipeline.Config, clockEnable bool, stages []func(T) T) (unit[T], error) {
	err := cfg.Validate(len(stages), clockEnable)
	if err != nil {
		return unit[T]{}, err
	}
	p, err := pipeline.New(cfg, stages...)
	if err != nil {
		return unit[T]{}, err
	}
	return unit[T]{p: p}, nil
}

// tail returns the value at the tail of the pipeline and whether it is valid.
func (u *unit[T]) tail() (T, bool) {
	t := u.p.Tail()
	return t.Value, t.Valid
}

// Valid returns true if the result is the reciprocal of an admitted operand.
func (u *unit[T]) Valid() bool {
	return u.p.Tail().Valid
}

// Latency returns the number of ticks from admission to result.
func (u *unit[T]) Latency() int {
	return u.p.Depth()
}

// Reset empties the pipeline.
func (u *unit[T]) Reset() {
	u.p.Reset()
}

// Dump writes the contents of the pipeline to io.Writer as a graphviz graph.
func (u *unit[T]) Dump(w io.Writer) {
	u.p.Dump(w)
}

// magic constants for the seeds of the float variants
const (
	seedMagic  = 0x7ef127ea
	rsqrtMagic = 0xbe6eb3be
)

// floatState is the slot contents for the Seed, RsqrtSquared and Newton
// units.
type floatState struct {
	in uint32

	special bool
	result  uint32

	sign bool

	// operand magnitude
	ax uint32

	// current approximation
	v uint32

	// intermediate value of a refinement
	w uint32

	mp multiplier.Partial
	sp subtractor.Partial
}

// decode removes the sign of the operand and decides the result for invalid
// and infinite operands. returns true if the result has been decided.
func (s *floatState) decode() bool {
	v := fp32.Decompose(s.in)
	s.sign = v.Sign
	s.ax = fp32.Abs(s.in)

	switch v.Category() {
	case fp32.CategoryInvalid:
		s.special = true
		s.result = fp32.Invalid(v.Sign)
	case fp32.CategoryInfinity:
		s.special = true
		s.result = fp32.Zero(v.Sign)
	}

	return s.special
}

// signed applies the sign of the operand to the magnitude.
func (s *floatState) signed(magnitude uint32) uint32 {
	if s.sign {
		return magnitude | fp32.SignMask
	}
	return magnitude
}
