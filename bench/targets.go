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
	"math"
	"math/rand/v2"

	"github.com/jetsetilly/floatpipe/curated"
	"github.com/jetsetilly/floatpipe/hardware/fpu/conversion"
	"github.com/jetsetilly/floatpipe/hardware/fpu/fp32"
	"github.com/jetsetilly/floatpipe/hardware/fpu/multiplier"
	"github.com/jetsetilly/floatpipe/hardware/fpu/reciprocal"
	"github.com/jetsetilly/floatpipe/hardware/fpu/revision"
	"github.com/jetsetilly/floatpipe/hardware/fpu/subtractor"
	"github.com/jetsetilly/floatpipe/hardware/pipeline"
	"github.com/jetsetilly/floatpipe/reference"
)

// Target describes how to build, drive and check one kind of unit.
type Target struct {
	Name   string
	Config pipeline.Config

	// the output is wider than 32 bits
	Wide bool

	// create a new instance of the unit
	New func() Device

	// the combinational model. every result of the clocked unit must match
	// the model exactly
	Model func(op Operand) uint64

	// generate an operand for the sweep
	Operand func(r *rand.Rand) Operand

	// optional comparison of the result with a software algorithm. returns
	// false if the result is outside the tolerance of the algorithm
	Reference func(op Operand, out uint64) bool
}

// ErrTarget is returned by Lookup() for unit names that the bench does not
// know about.
const ErrTarget = "bench: no target for %s"

// Lookup returns the Target for the named unit. Names are those in the
// revision package.
func Lookup(name string) (Target, error) {
	cfg, err := revision.Lookup(name)
	if err != nil {
		return Target{}, curated.Errorf("bench: %v", err)
	}

	t := Target{Name: name, Config: cfg}

	switch name {
	case revision.FloatSub:
		t.New = func() Device { return NewSubtractor(subtractor.New()) }
		t.Model = func(op Operand) uint64 { return uint64(subtractor.Subtract(op.A, op.B)) }
		t.Operand = binaryOperand
	case revision.FloatMul:
		t.New = func() Device { return NewMultiplier(multiplier.New()) }
		t.Model = func(op Operand) uint64 { return uint64(multiplier.Multiply(op.A, op.B)) }
		t.Operand = binaryOperand
	case revision.FloatToInt:
		t.New = func() Device { return NewToInt(conversion.NewToInt()) }
		t.Model = func(op Operand) uint64 { return uint64(uint32(conversion.FloatToInt(op.A, op.Offset))) }
		t.Operand = toIntOperand
		t.Reference = toIntReference
	case revision.IntToFloat:
		t.New = func() Device { return NewToFloat(conversion.NewToFloat()) }
		t.Model = func(op Operand) uint64 { return uint64(conversion.IntToFloat(int32(op.A), op.Offset)) }
		t.Operand = toFloatOperand
		t.Reference = toFloatReference
	case revision.SeedRecip:
		t.New = func() Device { return NewSeed(reciprocal.NewSeed()) }
		t.Model = func(op Operand) uint64 { return uint64(reciprocal.SeedRecip(op.A)) }
		t.Operand = recipOperand
		t.Reference = invFastReference(1)
	case revision.FastRecip:
		t.New = func() Device { return NewRsqrtSquared(reciprocal.NewRsqrtSquared()) }
		t.Model = func(op Operand) uint64 { return uint64(reciprocal.FastRecip(op.A)) }
		t.Operand = positiveRecipOperand
		t.Reference = fastReference
	case revision.NewtonRecip:
		t.New = func() Device { return NewNewton(reciprocal.NewNewton()) }
		t.Model = func(op Operand) uint64 { return uint64(reciprocal.NewtonRecip(op.A)) }
		t.Operand = recipOperand
		t.Reference = invFastReference(3)
	case revision.FloatRecip:
		t.New = func() Device { return NewFloat(reciprocal.NewFloat()) }
		t.Model = func(op Operand) uint64 { return uint64(reciprocal.FloatRecip(op.A)) }
		t.Operand = recipOperand
		t.Reference = exactReference
	case revision.XRecip:
		t.Wide = true
		t.New = func() Device { return NewFixed(reciprocal.NewFixed()) }
		t.Model = func(op Operand) uint64 { return uint64(reciprocal.XRecip(op.A)) }
		t.Operand = fixedOperand
		t.Reference = fixedReference
	default:
		return Target{}, curated.Errorf(ErrTarget, name)
	}

	return t, nil
}

// Targets returns a Target for every unit in the revision package.
func Targets() []Target {
	var ts []Target
	for _, n := range revision.Names() {
		t, err := Lookup(n)
		if err != nil {
			panic(err)
		}
		ts = append(ts, t)
	}
	return ts
}

// any bit pattern is a valid operand for the arithmetic units
func binaryOperand(r *rand.Rand) Operand {
	return Operand{A: r.Uint32(), B: r.Uint32()}
}

func offset(r *rand.Rand) int8 {
	return int8(r.IntN(17) - 8)
}

// floats with a magnitude less than 2^22 so that no offset can take the
// result out of range
func toIntOperand(r *rand.Rand) Operand {
	f := float32(math.Ldexp(r.Float64()*2-1, r.IntN(23)))
	return Operand{A: fp32.FromFloat32(f), Offset: offset(r)}
}

func toIntReference(op Operand, out uint64) bool {
	want := math.Round(math.Ldexp(float64(fp32.ToFloat32(op.A)), -int(op.Offset)))
	return float64(int32(uint32(out))) == want
}

func toFloatOperand(r *rand.Rand) Operand {
	v := int32(r.Uint32())
	if v == math.MinInt32 {
		v++
	}
	return Operand{A: uint32(v), Offset: offset(r)}
}

func toFloatReference(op Operand, out uint64) bool {
	want := math.Ldexp(float64(int32(op.A)), int(op.Offset))
	return reference.Approx(float64(fp32.ToFloat32(uint32(out))), want, 1.2e-7)
}

// the range of the reciprocal sweeps. multiples of 0.001 between -1000 and 1000
// excluding zero
func recipOperand(r *rand.Rand) Operand {
	i := r.IntN(2000000) - 1000000
	if i == 0 {
		i = 1
	}
	return Operand{A: fp32.FromFloat32(float32(float64(i) * 0.001))}
}

func positiveRecipOperand(r *rand.Rand) Operand {
	i := r.IntN(1000000) + 1
	return Operand{A: fp32.FromFloat32(float32(float64(i) * 0.001))}
}

func invFastReference(iterations int) func(Operand, uint64) bool {
	return func(op Operand, out uint64) bool {
		ref := reference.InvFast(fp32.ToFloat32(op.A), iterations)
		return reference.Approx(float64(fp32.ToFloat32(uint32(out))), float64(ref), 1e-6)
	}
}

func fastReference(op Operand, out uint64) bool {
	ref := reference.FastReciprocal(fp32.ToFloat32(op.A))
	return reference.Approx(float64(fp32.ToFloat32(uint32(out))), float64(ref), 1e-6)
}

func exactReference(op Operand, out uint64) bool {
	want := 1 / float64(fp32.ToFloat32(op.A))
	return reference.Approx(float64(fp32.ToFloat32(uint32(out))), want, 1e-6)
}

// the supported range of the fixed point reciprocal
func fixedOperand(r *rand.Rand) Operand {
	return Operand{A: r.Uint32N(1<<28-1) + 1}
}

func fixedReference(op Operand, out uint64) bool {
	return out == reference.FixedReciprocal(op.A)
}
