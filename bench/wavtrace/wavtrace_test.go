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

package wavtrace_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
	"github.com/jetsetilly/floatpipe/bench/wavtrace"
	"github.com/jetsetilly/floatpipe/curated"
	"github.com/jetsetilly/floatpipe/test"
)

func TestWrite(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "trace.wav")

	tr, err := wavtrace.New(filename)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, tr.Filename(), filename)

	samples := []uint32{0, 0x3f800000, 0xbf800000, 0x7fffffff, 0xffffffff, 0x80000000}
	for _, s := range samples {
		tr.Sample(s)
	}
	test.ExpectEquality(t, tr.Len(), len(samples))
	test.DemandSuccess(t, tr.Write())

	f, err := os.Open(filename)
	test.DemandSuccess(t, err)
	defer f.Close()

	dec := wav.NewDecoder(f)
	test.DemandSuccess(t, dec.IsValidFile())
	test.ExpectEquality(t, int(dec.NumChans), 1)
	test.ExpectEquality(t, int(dec.BitDepth), wavtrace.BitDepth)
	test.ExpectEquality(t, int(dec.SampleRate), wavtrace.SampleRate)

	buf, err := dec.FullPCMBuffer()
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(buf.Data), len(samples))
	for i, s := range samples {
		test.ExpectEquality(t, uint32(int32(buf.Data[i])), s, i)
	}

	tr.Reset()
	test.ExpectEquality(t, tr.Len(), 0)
}

func TestErrors(t *testing.T) {
	_, err := wavtrace.New("")
	test.ExpectSuccess(t, curated.IsAny(err))

	tr, err := wavtrace.New(filepath.Join(t.TempDir(), "missing", "trace.wav"))
	test.DemandSuccess(t, err)
	tr.Sample(1)
	err = tr.Write()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, "wavtrace: %v"))
}

func TestWide(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "wide.wav")

	tr, err := wavtrace.NewWide(filename)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, tr.Channels(), 2)

	tr.Sample64(0x555555555555)
	tr.Sample64(0x1ffffffffffff)
	tr.Sample(0xffffffff)
	test.ExpectEquality(t, tr.Len(), 3)
	test.DemandSuccess(t, tr.Write())

	f, err := os.Open(filename)
	test.DemandSuccess(t, err)
	defer f.Close()

	dec := wav.NewDecoder(f)
	test.DemandSuccess(t, dec.IsValidFile())
	test.ExpectEquality(t, int(dec.NumChans), 2)

	buf, err := dec.FullPCMBuffer()
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(buf.Data), 6)

	expected := []uint32{0x55555555, 0x5555, 0xffffffff, 0x1ffff, 0xffffffff, 0}
	for i, e := range expected {
		test.ExpectEquality(t, uint32(int32(buf.Data[i])), e, i)
	}
}

func TestNarrowSample64(t *testing.T) {
	tr, err := wavtrace.New(filepath.Join(t.TempDir(), "narrow.wav"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, tr.Channels(), 1)

	tr.Sample64(0x555555555555)
	test.ExpectEquality(t, tr.Len(), 1)
}
