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

package multiplier

import (
	"io"

	"github.com/jetsetilly/floatpipe/hardware/fpu/revision"
	"github.com/jetsetilly/floatpipe/hardware/pipeline"
)

// Multiplier is the clocked multiplier unit.
type Multiplier struct {
	A uint32
	B uint32

	// clock enable. the unit is frozen while this is false
	CE bool

	p *pipeline.Pipeline[state]
}

// New creates a Multiplier with the canonical configuration.
func New() *Multiplier {
	u, err := NewWithConfig(revision.Must(revision.FloatMul))
	if err != nil {
		panic(err)
	}
	return u
}

// NewWithConfig creates a Multiplier with an alternative configuration.
func NewWithConfig(cfg pipeline.Config) (*Multiplier, error) {
	err := cfg.Validate(len(stages), true)
	if err != nil {
		return nil, err
	}

	u := &Multiplier{CE: true}
	u.p, err = pipeline.New(cfg, stages...)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// Tick advances the unit by one clock.
func (u *Multiplier) Tick() {
	u.p.Tick(u.CE, admit(u.A, u.B))
}

// Result returns the product at the tail of the pipeline.
func (u *Multiplier) Result() uint32 {
	t := u.p.Tail()
	if !t.Valid {
		return 0
	}
	return t.Value.result
}

// Valid returns true if Result() is the product of admitted operands.
func (u *Multiplier) Valid() bool {
	return u.p.Tail().Valid
}

// Latency returns the number of ticks from admission to result.
func (u *Multiplier) Latency() int {
	return u.p.Depth()
}

// Reset empties the pipeline.
func (u *Multiplier) Reset() {
	u.p.Reset()
}

// Dump writes the contents of the pipeline to io.Writer as a graphviz graph.
func (u *Multiplier) Dump(w io.Writer) {
	u.p.Dump(w)
}
