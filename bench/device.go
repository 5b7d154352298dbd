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
	"io"

	"github.com/jetsetilly/floatpipe/hardware/fpu/conversion"
	"github.com/jetsetilly/floatpipe/hardware/fpu/multiplier"
	"github.com/jetsetilly/floatpipe/hardware/fpu/reciprocal"
	"github.com/jetsetilly/floatpipe/hardware/fpu/subtractor"
)

// Operand is the set of inputs for one tick of any unit. Units that take a
// single input use A. Offset is only used by the conversion units.
type Operand struct {
	A      uint32
	B      uint32
	Offset int8
}

func (op Operand) String() string {
	return fmt.Sprintf("%#08x/%#08x/%d", op.A, op.B, op.Offset)
}

// Device is the common view of every clocked unit used by the bench.
type Device interface {
	// set the input registers
	Drive(op Operand)

	// SetCE has no effect on a unit that does not support clock-enable
	SetCE(enable bool)

	Tick()

	// the result at the tail of the pipeline widened to 64 bits
	Output() uint64

	Valid() bool
	Latency() int
	Reset()

	// write the contents of the pipeline as a graphviz graph
	Dump(w io.Writer)
}

// the methods shared by all units
type clocked interface {
	Tick()
	Valid() bool
	Latency() int
	Reset()
	Dump(w io.Writer)
}

type device struct {
	clocked
	drive  func(op Operand)
	output func() uint64

	// nil if the unit has no clock-enable input
	ce *bool
}

func (d *device) Drive(op Operand) {
	d.drive(op)
}

func (d *device) SetCE(enable bool) {
	if d.ce != nil {
		*d.ce = enable
	}
}

func (d *device) Output() uint64 {
	return d.output()
}

// NewSubtractor wraps a subtractor.Subtractor.
func NewSubtractor(u *subtractor.Subtractor) Device {
	return &device{
		clocked: u,
		drive: func(op Operand) {
			u.A = op.A
			u.B = op.B
		},
		output: func() uint64 { return uint64(u.Result()) },
		ce:     &u.CE,
	}
}

// NewMultiplier wraps a multiplier.Multiplier.
func NewMultiplier(u *multiplier.Multiplier) Device {
	return &device{
		clocked: u,
		drive: func(op Operand) {
			u.A = op.A
			u.B = op.B
		},
		output: func() uint64 { return uint64(u.Result()) },
		ce:     &u.CE,
	}
}

// NewToInt wraps a conversion.ToInt. The integer result is returned as
// its 32 bit pattern.
func NewToInt(u *conversion.ToInt) Device {
	return &device{
		clocked: u,
		drive: func(op Operand) {
			u.In = op.A
			u.Offset = op.Offset
		},
		output: func() uint64 { return uint64(uint32(u.Result())) },
		ce:     &u.CE,
	}
}

// NewToFloat wraps a conversion.ToFloat. The A field of the operand is the
// pattern of the integer input.
func NewToFloat(u *conversion.ToFloat) Device {
	return &device{
		clocked: u,
		drive: func(op Operand) {
			u.In = int32(op.A)
			u.Offset = op.Offset
		},
		output: func() uint64 { return uint64(u.Result()) },
		ce:     &u.CE,
	}
}

// NewSeed wraps a reciprocal.Seed.
func NewSeed(u *reciprocal.Seed) Device {
	return &device{
		clocked: u,
		drive:   func(op Operand) { u.In = op.A },
		output:  func() uint64 { return uint64(u.Result()) },
		ce:      &u.CE,
	}
}

// NewRsqrtSquared wraps a reciprocal.RsqrtSquared.
func NewRsqrtSquared(u *reciprocal.RsqrtSquared) Device {
	return &device{
		clocked: u,
		drive:   func(op Operand) { u.In = op.A },
		output:  func() uint64 { return uint64(u.Result()) },
		ce:      &u.CE,
	}
}

// NewNewton wraps a reciprocal.Newton.
func NewNewton(u *reciprocal.Newton) Device {
	return &device{
		clocked: u,
		drive:   func(op Operand) { u.In = op.A },
		output:  func() uint64 { return uint64(u.Result()) },
	}
}

// NewFloat wraps a reciprocal.Float.
func NewFloat(u *reciprocal.Float) Device {
	return &device{
		clocked: u,
		drive:   func(op Operand) { u.In = op.A },
		output:  func() uint64 { return uint64(u.Result()) },
	}
}

// NewFixed wraps a reciprocal.Fixed.
func NewFixed(u *reciprocal.Fixed) Device {
	return &device{
		clocked: u,
		drive:   func(op Operand) { u.In = op.A },
		output:  func() uint64 { return uint64(u.Result()) },
		ce:      &u.CE,
	}
}
