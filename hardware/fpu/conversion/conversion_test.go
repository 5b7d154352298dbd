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

package conversion_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/jetsetilly/floatpipe/curated"
	"github.com/jetsetilly/floatpipe/hardware/fpu/conversion"
	"github.com/jetsetilly/floatpipe/hardware/pipeline"
	"github.com/jetsetilly/floatpipe/test"
)

var toIntVectors = []struct {
	in     uint32
	offset int8
	result int32
}{
	{0x00000000, 0, 0},
	{0x3f800000, 0, 1},
	{0xbf800000, 0, -1},
	{0x40000000, 0, 2},
	{0xc0000000, 0, -2},
	{0x40400000, 0, 3},
	{0xc0400000, 0, -3},
	{0x42f60000, 0, 123},
	{0xc2f60000, 0, -123},

	// 314159265 is not representable
	{0x4d95cd85, 0, 314159264},
	{0xcd95cd85, 0, -314159264},

	{0x4afffffe, 0, 8388607},
	{0xcafffffe, 0, -8388607},
	{0x4b7fffff, 0, 16777215},
	{0xcb7fffff, 0, -16777215},

	// largest values
	{0x4effffff, 0, 2147483520},
	{0xceffffff, 0, -2147483520},

	// overflow. the magnitude is unsigned 31 bits so -2^31 also overflows
	{0x4f000000, 0, 0},
	{0xcf000000, 0, 0},
	{0x4f000001, 0, 0},
	{0xcf000001, 0, 0},
	{0x7f800000, 0, 0},

	// rounding
	{0x3f000000, 0, 1},
	{0xbf000000, 0, -1},
	{0x3effffff, 0, 0},
	{0xbeffffff, 0, 0},
	{0x3fc00000, 0, 2},
	{0xbfc00000, 0, -2},

	// exponent offset
	{0x40800000, -1, 8},
	{0xc0800000, -1, -8},
	{0x40800000, 1, 2},
	{0xc0800000, 1, -2},
	{0x43800000, -4, 4096},
	{0xc3800000, -4, -4096},
	{0x43800000, 4, 16},
	{0xc3800000, 4, -16},
}

var toFloatVectors = []struct {
	in     int32
	result uint32
}{
	{0, 0x00000000},
	{1, 0x3f800000},
	{-1, 0xbf800000},
	{2, 0x40000000},
	{-2, 0xc0000000},
	{3, 0x40400000},
	{-3, 0xc0400000},
	{123, 0x42f60000},
	{-123, 0xc2f60000},
	{314159265, 0x4d95cd85},
	{-314159265, 0xcd95cd85},
	{8388607, 0x4afffffe},
	{-8388607, 0xcafffffe},
	{16777215, 0x4b7fffff},
	{-16777215, 0xcb7fffff},
	{math.MaxInt32, 0x4f000000},
	{math.MinInt32 + 1, 0xcf000000},

	// no representable magnitude
	{math.MinInt32, 0x80000000},
}

func TestFloatToInt(t *testing.T) {
	for i, v := range toIntVectors {
		test.ExpectEquality(t, conversion.FloatToInt(v.in, v.offset), v.result, i)
	}
}

func TestIntToFloat(t *testing.T) {
	for i, v := range toFloatVectors {
		test.ExpectBits(t, conversion.IntToFloat(v.in, 0), v.result, i)
	}
	test.ExpectBits(t, conversion.IntToFloat(math.MinInt32+1, 0), conversion.IntToFloat(math.MaxInt32, 0)|0x80000000)
}

func TestIntToFloatOffset(t *testing.T) {
	test.ExpectBits(t, conversion.IntToFloat(1, 1), 0x40000000)
	test.ExpectBits(t, conversion.IntToFloat(-1, -1), 0xbf000000)
	test.ExpectBits(t, conversion.IntToFloat(4096, -4), 0x43800000)

	// saturation and flush
	test.ExpectBits(t, conversion.IntToFloat(1, 127), 0x7f000000)
	test.ExpectBits(t, conversion.IntToFloat(2, 127), 0x7f800000)
	test.ExpectBits(t, conversion.IntToFloat(-2, 127), 0xff800000)
	test.ExpectBits(t, conversion.IntToFloat(1, -127), 0x00000000)
	test.ExpectBits(t, conversion.IntToFloat(-1, -127), 0x80000000)
}

func TestRoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewPCG(1, 2))

	for _, offset := range []int8{0, 3, -5} {
		for n := int32(-70000); n < 70000; n++ {
			test.ExpectEquality(t, conversion.FloatToInt(conversion.IntToFloat(n, offset), offset), n, offset)
		}
		for range 100000 {
			n := rnd.Int32N(1<<25-1) - (1<<24 - 1)
			test.ExpectEquality(t, conversion.FloatToInt(conversion.IntToFloat(n, offset), offset), n, offset)
		}
	}
}

func TestToIntPipeline(t *testing.T) {
	u := conversion.NewToInt()
	test.DemandEquality(t, u.Latency(), 4)

	for i, v := range toIntVectors {
		u.In = v.in
		u.Offset = v.offset
		u.Tick()

		// the input is changed while the value passes through the pipeline
		u.In = 0
		for range u.Latency() - 1 {
			u.Tick()
		}
		test.ExpectEquality(t, u.Result(), v.result, i)
	}
}

func TestToFloatPipeline(t *testing.T) {
	u := conversion.NewToFloat()
	test.DemandEquality(t, u.Latency(), 4)

	for i, v := range toFloatVectors {
		u.In = v.in
		for range u.Latency() {
			u.Tick()
		}
		test.ExpectBits(t, u.Result(), v.result, i)
	}
}

func TestStreaming(t *testing.T) {
	f := conversion.NewToFloat()
	n := conversion.NewToInt()

	// chain the units. the output of one is the input of the other on every
	// tick so the result for the value admitted on tick i appears on tick i+6
	const latency = 7
	for i := range int32(1000) {
		f.In = i * 3
		f.Tick()
		n.In = f.Result()
		n.Tick()
		if i >= latency-1 {
			test.ExpectEquality(t, n.Result(), (i-latency+1)*3, i)
		}
	}
}

func TestClockEnable(t *testing.T) {
	u := conversion.NewToInt()
	u.In = 0x42f60000
	u.Tick()
	u.In = 0

	u.CE = false
	for range 10 {
		u.Tick()
	}
	u.CE = true
	u.Tick()
	u.Tick()
	test.ExpectFailure(t, u.Valid())
	u.Tick()
	test.ExpectEquality(t, u.Result(), int32(123))

	f := conversion.NewToFloat()
	f.In = 123
	f.CE = false
	for range 4 {
		f.Tick()
	}
	test.ExpectFailure(t, f.Valid())
	test.ExpectBits(t, f.Result(), 0)
}

func TestConfig(t *testing.T) {
	_, err := conversion.NewToIntWithConfig(pipeline.Config{Name: "short", Depth: 3})
	test.ExpectSuccess(t, curated.Is(err, pipeline.ErrDepth))
	_, err = conversion.NewToFloatWithConfig(pipeline.Config{Name: "short", Depth: 1})
	test.ExpectSuccess(t, curated.Is(err, pipeline.ErrDepth))

	u, err := conversion.NewToFloatWithConfig(pipeline.Config{Name: "long", Depth: 7, ClockEnable: true})
	test.DemandSuccess(t, err)
	u.In = -3
	for range 7 {
		u.Tick()
	}
	test.ExpectBits(t, u.Result(), 0xc0400000)
}
