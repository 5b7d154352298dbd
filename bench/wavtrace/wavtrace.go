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

// Package wavtrace records the output of a unit, one sample per tick, and
// writes it as a mono 32 bit PCM WAV file. Bit patterns are written
// unchanged as signed samples so the file can be opened in any audio editor
// and the output of the pipeline inspected as a waveform. Stalls show as
// flat lines.
package wavtrace

import (
	"io"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/jetsetilly/floatpipe/curated"
	"github.com/jetsetilly/floatpipe/logger"
)

// SampleRate of the WAV file. A sample represents one tick so the value is
// arbitrary.
const SampleRate = 48000

// BitDepth of the WAV file.
const BitDepth = 32

// Trace collects samples for a WAV file.
type Trace struct {
	filename string

	// one channel for 32 bit values. two channels for 64 bit values, the
	// low word in the first channel and the high word in the second
	channels int

	buffer []int
}

// New is the preferred method of initialisation for the Trace type.
func New(filename string) (*Trace, error) {
	if filename == "" {
		return nil, curated.Errorf("wavtrace: %v", "no filename")
	}

	tr := &Trace{
		filename: filename,
		channels: 1,
		buffer:   make([]int, 0, 4096),
	}

	return tr, nil
}

// NewWide creates a Trace for values wider than 32 bits. The WAV file has
// two channels.
func NewWide(filename string) (*Trace, error) {
	tr, err := New(filename)
	if err != nil {
		return nil, err
	}
	tr.channels = 2
	return tr, nil
}

// Channels returns the number of channels in the WAV file.
func (tr *Trace) Channels() int {
	return tr.channels
}

// Filename returns the name of the file that Write() will create.
func (tr *Trace) Filename() string {
	return tr.filename
}

// Sample adds the bit pattern to the trace. The high word of a wide trace is
// zero.
func (tr *Trace) Sample(v uint32) {
	tr.buffer = append(tr.buffer, int(int32(v)))
	if tr.channels == 2 {
		tr.buffer = append(tr.buffer, 0)
	}
}

// Sample64 adds the 64 bit pattern to the trace. Only the low word is kept
// if the trace was not created with NewWide().
func (tr *Trace) Sample64(v uint64) {
	tr.buffer = append(tr.buffer, int(int32(uint32(v))))
	if tr.channels == 2 {
		tr.buffer = append(tr.buffer, int(int32(uint32(v>>32))))
	}
}

// Len returns the number of samples in the trace. A sample of a wide trace
// counts once.
func (tr *Trace) Len() int {
	return len(tr.buffer) / tr.channels
}

// Reset removes all samples from the trace.
func (tr *Trace) Reset() {
	tr.buffer = tr.buffer[:0]
}

// Write the trace to the file.
func (tr *Trace) Write() (rerr error) {
	f, err := os.Create(tr.filename)
	if err != nil {
		return curated.Errorf("wavtrace: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf("wavtrace: %v", err)
		}
	}()

	logger.Logf(logger.Allow, "wavtrace", "writing %d samples to %s", len(tr.buffer), tr.filename)

	return tr.encode(f)
}

func (tr *Trace) encode(ws io.WriteSeeker) error {
	enc := wav.NewEncoder(ws, SampleRate, BitDepth, tr.channels, 1)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: tr.channels,
			SampleRate:  SampleRate,
		},
		Data:           tr.buffer,
		SourceBitDepth: BitDepth,
	}

	err := enc.Write(buf)
	if err != nil {
		return curated.Errorf("wavtrace: %v", err)
	}

	err = enc.Close()
	if err != nil {
		return curated.Errorf("wavtrace: %v", err)
	}

	return nil
}
