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

package subtractor

import (
	"io"

	"github.com/jetsetilly/floatpipe/hardware/fpu/revision"
	"github.com/jetsetilly/floatpipe/hardware/pipeline"
)

// Subtractor is the clocked adder/subtractor unit. Set the A and B registers
// and call Tick(). The difference of the operands admitted Latency() ticks
// earlier is available from Result().
type Subtractor struct {
	A uint32
	B uint32

	// clock enable. the unit is frozen while this is false
	CE bool

	p *pipeline.Pipeline[state]
}

// New creates a Subtractor with the canonical configuration.
func New() *Subtractor {
	u, err := NewWithConfig(revision.Must(revision.FloatSub))
	if err != nil {
		panic(err)
	}
	return u
}

// NewWithConfig creates a Subtractor with an alternative configuration. A
// depth larger than four adds output registers.
func NewWithConfig(cfg pipeline.Config) (*Subtractor, error) {
	err := cfg.Validate(len(stages), true)
	if err != nil {
		return nil, err
	}

	u := &Subtractor{CE: true}
	u.p, err = pipeline.New(cfg, stages...)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// Tick advances the unit by one clock.
func (u *Subtractor) Tick() {
	u.p.Tick(u.CE, admit(operands{A: u.A, B: u.B}))
}

// Result returns the value at the tail of the pipeline. It is zero until the
// first operands have passed through the pipeline.
func (u *Subtractor) Result() uint32 {
	t := u.p.Tail()
	if !t.Valid {
		return 0
	}
	return t.Value.result
}

// Valid returns true if Result() is the result of admitted operands.
func (u *Subtractor) Valid() bool {
	return u.p.Tail().Valid
}

// Latency returns the number of ticks from admission to result.
func (u *Subtractor) Latency() int {
	return u.p.Depth()
}

// Reset empties the pipeline. The input registers are not changed.
func (u *Subtractor) Reset() {
	u.p.Reset()
}

// Dump writes the contents of the pipeline to io.Writer as a graphviz graph.
func (u *Subtractor) Dump(w io.Writer) {
	u.p.Dump(w)
}
