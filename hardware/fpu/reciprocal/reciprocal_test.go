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

package reciprocal_test

import (
	"math"
	"strings"
	"testing"

	"github.com/jetsetilly/floatpipe/curated"
	"github.com/jetsetilly/floatpipe/hardware/fpu/fp32"
	"github.com/jetsetilly/floatpipe/hardware/fpu/reciprocal"
	"github.com/jetsetilly/floatpipe/hardware/pipeline"
	"github.com/jetsetilly/floatpipe/reference"
	"github.com/jetsetilly/floatpipe/test"
)

type vector struct {
	in     uint32
	result uint32
}

// operands that are handled the same way by every float variant
var specials = []vector{
	{0x7f800000, 0x00000000},
	{0xff800000, 0x80000000},
	{0x7fffffff, 0x7fffffff},
	{0x7f800001, 0x7fffffff},
	{0xffc00000, 0xffffffff},
}

func testSpecific(t *testing.T, f func(uint32) uint32, vectors []vector) {
	t.Helper()
	for _, v := range vectors {
		test.ExpectBits(t, f(v.in), v.result, v.in)
	}
	for _, v := range specials {
		test.ExpectBits(t, f(v.in), v.result, v.in)
	}
}

// the operands used by the range tests. i * 0.001 for i in the range
// -1000000 to 1000000
func rangeOperand(i int) float32 {
	return float32(float64(i) * 0.001)
}

func TestSeedSpecific(t *testing.T) {
	testSpecific(t, reciprocal.SeedRecip, []vector{
		{0x3f800000, 0x3f7f23a5},
		{0x40000000, 0x3eff23a5},
		{0x40400000, 0x3eaa6b80},
		{0xc0800000, 0xbe7f23a5},
		{0x00000000, 0x7f7127ea},
		{0x80000000, 0xff7127ea},
	})
}

func TestFastSpecific(t *testing.T) {
	testSpecific(t, reciprocal.FastRecip, []vector{
		{0x3f800000, 0x3f6efe8c},
		{0x40000000, 0x3f03519c},
		{0x40400000, 0x3eb2f649},
		{0xc0800000, 0xbe6efe8c},
		{0x00000000, 0x7f03519c},
		{0x80000000, 0xff03519c},
	})
}

func TestNewtonSpecific(t *testing.T) {
	testSpecific(t, reciprocal.NewtonRecip, []vector{
		{0x3f800000, 0x3f7fffff},
		{0x40000000, 0x3effffff},
		{0x40400000, 0x3eaaaaab},
		{0xc0800000, 0xbe7fffff},
		{0x3e800000, 0x407fffff},
		{0x42f60000, 0x3c053408},
		{0x00800000, 0x7e7fffff},

		// both signs of zero give +infinity
		{0x00000000, 0x7f800000},
		{0x80000000, 0x7f800000},
	})
}

func TestFloatSpecific(t *testing.T) {
	testSpecific(t, reciprocal.FloatRecip, []vector{
		{0x3f800000, 0x3f800000},
		{0x40000000, 0x3f000000},
		{0x40400000, 0x3eaaaaab},
		{0xc0800000, 0xbe800000},
		{0x3e800000, 0x40800000},
		{0x00800000, 0x7e800000},
		{0x3effffff, 0x40000001},

		// observed to cause rounding problems
		{0x3f7fffff, 0x3f800001},

		// the reciprocal is too small to be represented
		{0x7f7fffff, 0x00000000},

		// zero and subnormals give infinity with the sign of the operand
		{0x00000000, 0x7f800000},
		{0x80000000, 0xff800000},
		{0x00000001, 0x7f800000},
	})
}

func TestSeedRange(t *testing.T) {
	for i := -1000000; i < 1000000; i += 3 {
		if i == 0 {
			continue
		}
		a := rangeOperand(i)
		out := fp32.ToFloat32(reciprocal.SeedRecip(fp32.FromFloat32(a)))
		ref := reference.InvFast(a, 1)
		if !reference.Approx(float64(out), float64(ref), 1e-6) {
			t.Fatalf("seed reciprocal of %v is %v (reference %v)", a, out, ref)
		}
		if reference.RelativeError(float64(out), 1/float64(a)) > 3.4e-3 {
			t.Fatalf("seed reciprocal of %v is %v (exact %v)", a, out, 1/float64(a))
		}
	}
}

func TestFastRange(t *testing.T) {
	for i := 1; i < 1000000; i += 3 {
		a := rangeOperand(i)
		out := fp32.ToFloat32(reciprocal.FastRecip(fp32.FromFloat32(a)))
		ref := reference.FastReciprocal(a)
		if !reference.Approx(float64(out), float64(ref), 1e-6) {
			t.Fatalf("rsqrt-squared reciprocal of %v is %v (reference %v)", a, out, ref)
		}
	}
}

func TestNewtonRange(t *testing.T) {
	for i := -1000000; i < 1000000; i += 3 {
		if i == 0 {
			continue
		}
		a := rangeOperand(i)
		out := fp32.ToFloat32(reciprocal.NewtonRecip(fp32.FromFloat32(a)))
		ref := reference.InvFast(a, 3)
		if !reference.Approx(float64(out), float64(ref), 1e-6) {
			t.Fatalf("newton reciprocal of %v is %v (reference %v)", a, out, ref)
		}
		if !reference.Approx(float64(out), 1/float64(a), 1e-6) {
			t.Fatalf("newton reciprocal of %v is %v (exact %v)", a, out, 1/float64(a))
		}
	}
}

func TestFloatRange(t *testing.T) {
	for i := -1000000; i < 1000000; i += 3 {
		if i == 0 {
			continue
		}
		a := rangeOperand(i)
		out := fp32.ToFloat32(reciprocal.FloatRecip(fp32.FromFloat32(a)))
		if !reference.Approx(float64(out), 1/float64(a), 1e-6) {
			t.Fatalf("float reciprocal of %v is %v (exact %v)", a, out, 1/float64(a))
		}
	}
}

func TestXRecipSpecific(t *testing.T) {
	test.ExpectEquality(t, reciprocal.XRecip(0), reciprocal.Fixed49Mask)
	test.ExpectEquality(t, reciprocal.XRecip(1), reciprocal.Fixed49One)
	test.ExpectEquality(t, reciprocal.XRecip(2), reciprocal.Fixed49(0x800000000000))
	test.ExpectEquality(t, reciprocal.XRecip(3), reciprocal.Fixed49(0x555555555555))
	test.ExpectEquality(t, reciprocal.XRecip(10), reciprocal.Fixed49(0x19999999999a))
	test.ExpectEquality(t, reciprocal.XRecip(0x7fffff)>>24, reciprocal.Fixed49(2))
	test.ExpectEquality(t, reciprocal.XRecip(1<<27), reciprocal.Fixed49(0x200000))
}

func TestXRecipRange(t *testing.T) {
	for i := uint32(1); i < 1<<20; i++ {
		out := reciprocal.XRecip(i)
		if uint64(out) != reference.FixedReciprocal(i) {
			t.Fatalf("fixed reciprocal of %d is %v (expected %#x)", i, out, reference.FixedReciprocal(i))
		}
		if !reference.Approx(out.Float64(), 1/float64(i), 1e-6) {
			t.Fatalf("fixed reciprocal of %d is %v", i, out.Float64())
		}
	}

	// the supported range
	for i := uint32(1 << 20); i < 1<<28; i += 4099 {
		test.DemandEquality(t, uint64(reciprocal.XRecip(i)), reference.FixedReciprocal(i), i)
	}
}

func TestFixed49(t *testing.T) {
	test.ExpectEquality(t, reciprocal.Fixed49One.Float64(), 1.0)
	test.ExpectEquality(t, reciprocal.Fixed49(0x800000000000).Float64(), 0.5)
	test.ExpectEquality(t, reciprocal.Fixed49Mask.Float64(), 2-math.Ldexp(1, -48))
}

func TestLatencies(t *testing.T) {
	test.ExpectEquality(t, reciprocal.NewSeed().Latency(), 4)
	test.ExpectEquality(t, reciprocal.NewRsqrtSquared().Latency(), 4)
	test.ExpectEquality(t, reciprocal.NewNewton().Latency(), 25)
	test.ExpectEquality(t, reciprocal.NewFloat().Latency(), 11)
	test.ExpectEquality(t, reciprocal.NewFixed().Latency(), 13)
}

// the float reciprocal units
type floatUnit interface {
	Tick()
	Result() uint32
	Valid() bool
	Latency() int
}

func testFlush(t *testing.T, u floatUnit, in *uint32, f func(uint32) uint32) {
	t.Helper()
	for i := -1000; i < 1000; i += 7 {
		x := fp32.FromFloat32(rangeOperand(i * 997))

		// admit the operand and then zeros until the result arrives
		*in = x
		u.Tick()
		*in = 0
		for range u.Latency() - 1 {
			u.Tick()
		}
		test.ExpectSuccess(t, u.Valid())
		test.ExpectBits(t, u.Result(), f(x), i)
	}
}

func testStream(t *testing.T, u floatUnit, in *uint32, f func(uint32) uint32) {
	t.Helper()
	operands := make([]uint32, 0, 500)
	for i := range 500 {
		operands = append(operands, fp32.FromFloat32(rangeOperand((i-250)*3989)))
	}

	for i := range len(operands) + u.Latency() {
		if i < len(operands) {
			*in = operands[i]
		}
		u.Tick()

		j := i - u.Latency() + 1
		if j >= 0 && j < len(operands) {
			test.ExpectBits(t, u.Result(), f(operands[j]), j)
		} else if j < 0 {
			test.ExpectFailure(t, u.Valid())
		}
	}
}

func TestUnits(t *testing.T) {
	seed := reciprocal.NewSeed()
	testFlush(t, seed, &seed.In, reciprocal.SeedRecip)
	seed = reciprocal.NewSeed()
	testStream(t, seed, &seed.In, reciprocal.SeedRecip)

	fast := reciprocal.NewRsqrtSquared()
	testFlush(t, fast, &fast.In, reciprocal.FastRecip)

	newton := reciprocal.NewNewton()
	testFlush(t, newton, &newton.In, reciprocal.NewtonRecip)
	newton = reciprocal.NewNewton()
	testStream(t, newton, &newton.In, reciprocal.NewtonRecip)

	fl := reciprocal.NewFloat()
	testFlush(t, fl, &fl.In, reciprocal.FloatRecip)
	fl = reciprocal.NewFloat()
	testStream(t, fl, &fl.In, reciprocal.FloatRecip)
}

func TestFixedUnit(t *testing.T) {
	u := reciprocal.NewFixed()
	u.In = 0x7fffff
	u.Tick()
	u.In = 0
	for range 12 {
		u.Tick()
	}
	test.ExpectEquality(t, u.Result()>>24, reciprocal.Fixed49(2))

	// one value per tick
	u = reciprocal.NewFixed()
	for i := range uint32(1000) {
		u.In = i * 1031
		u.Tick()
		if i >= 12 {
			test.ExpectEquality(t, u.Result(), reciprocal.XRecip((i-12)*1031), i)
		}
	}
}

func TestFixedClockEnable(t *testing.T) {
	u := reciprocal.NewFixed()
	u.CE = true
	u.In = 0x7fffff
	u.Tick()

	u.In = 0
	u.CE = false
	u.Tick()
	test.ExpectInequality(t, u.Result()>>24, reciprocal.Fixed49(2))

	u.CE = true
	for i := range 11 {
		u.Tick()
		test.ExpectInequality(t, u.Result()>>24, reciprocal.Fixed49(2), i)
	}
	u.Tick()
	test.ExpectEquality(t, u.Result()>>24, reciprocal.Fixed49(2))
}

func TestSeedClockEnable(t *testing.T) {
	u := reciprocal.NewRsqrtSquared()
	u.In = fp32.One
	u.Tick()
	u.CE = false
	u.In = fp32.Two
	for range 50 {
		u.Tick()
	}
	u.CE = true
	u.Tick()
	u.Tick()
	u.Tick()
	test.ExpectBits(t, u.Result(), 0x3f6efe8c)
	u.Tick()
	test.ExpectBits(t, u.Result(), 0x3f03519c)

	s := reciprocal.NewSeed()
	s.In = fp32.One
	s.CE = false
	for range 10 {
		s.Tick()
	}
	test.ExpectFailure(t, s.Valid())
}

func TestConfig(t *testing.T) {
	// the newton and float units have no clock-enable
	_, err := reciprocal.NewNewtonWithConfig(pipeline.Config{Name: "newton", Depth: 25, ClockEnable: true})
	test.ExpectSuccess(t, curated.Is(err, pipeline.ErrClockEnable))
	_, err = reciprocal.NewFloatWithConfig(pipeline.Config{Name: "float", Depth: 11, ClockEnable: true})
	test.ExpectSuccess(t, curated.Is(err, pipeline.ErrClockEnable))

	_, err = reciprocal.NewFixedWithConfig(pipeline.Config{Name: "fixed", Depth: 10, ClockEnable: true})
	test.ExpectSuccess(t, curated.Is(err, pipeline.ErrDepth))
	_, err = reciprocal.NewSeedWithConfig(pipeline.Config{Name: "seed", Depth: 3})
	test.ExpectSuccess(t, curated.Is(err, pipeline.ErrDepth))
	_, err = reciprocal.NewRsqrtSquaredWithConfig(pipeline.Config{Name: "rsqrt", Depth: 3})
	test.ExpectSuccess(t, curated.Is(err, pipeline.ErrDepth))

	// the fixed unit without its output registers
	u, err := reciprocal.NewFixedWithConfig(pipeline.Config{Name: "fixed", Depth: 11, ClockEnable: true})
	test.DemandSuccess(t, err)
	u.In = 3
	for range 11 {
		u.Tick()
	}
	test.ExpectEquality(t, u.Result(), reciprocal.Fixed49(0x555555555555))
}

func TestDump(t *testing.T) {
	u := reciprocal.NewRsqrtSquared()
	u.In = fp32.One
	u.Tick()
	w := &strings.Builder{}
	u.Dump(w)
	test.ExpectInequality(t, w.Len(), 0)
	u.Reset()
	test.ExpectFailure(t, u.Valid())
}
