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

package pipeline

import (
	"io"

	"github.com/bradleyjkemp/memviz"
)

// Slot is a single position in the pipeline.
type Slot[T any] struct {
	Valid bool
	Value T
}

// Pipeline is a shift register of slots. The zero value is not usable, use
// New() to create an instance.
type Pipeline[T any] struct {
	cfg    Config
	stages []func(T) T
	slots  []Slot[T]
}

// register is the stage function for output registers.
func register[T any](v T) T {
	return v
}

// New is the preferred method of initialisation for the Pipeline type. Each
// stage function transforms the contents of the preceding slot into the
// contents of the slot the function is responsible for. The first function
// receives the admitted operand.
//
// The Config is validated against the number of stage functions. Clock-enable
// support is the responsibility of the caller, see Config.Validate().
func New[T any](cfg Config, stages ...func(T) T) (*Pipeline[T], error) {
	err := cfg.Validate(len(stages), cfg.ClockEnable)
	if err != nil {
		return nil, err
	}

	p := &Pipeline[T]{
		cfg:    cfg,
		stages: make([]func(T) T, cfg.Depth),
		slots:  make([]Slot[T], cfg.Depth),
	}

	copy(p.stages, stages)
	for i := len(stages); i < cfg.Depth; i++ {
		p.stages[i] = register[T]
	}

	return p, nil
}

// Config returns the configuration of the pipeline.
func (p *Pipeline[T]) Config() Config {
	return p.cfg
}

// Depth is the number of slots in the pipeline. It is the same as the latency
// of the unit.
func (p *Pipeline[T]) Depth() int {
	return len(p.slots)
}

// Tick advances the pipeline by one cycle and admits the operand into the head
// slot. Returns false if the tick was suppressed because the clock-enable
// signal was deasserted.
func (p *Pipeline[T]) Tick(enable bool, operand T) bool {
	if p.cfg.ClockEnable && !enable {
		return false
	}

	for i := len(p.slots) - 1; i > 0; i-- {
		if p.slots[i-1].Valid {
			p.slots[i] = Slot[T]{Valid: true, Value: p.stages[i](p.slots[i-1].Value)}
		} else {
			p.slots[i] = Slot[T]{}
		}
	}
	p.slots[0] = Slot[T]{Valid: true, Value: p.stages[0](operand)}

	return true
}

// Slot returns the contents of the numbered slot. Slot zero is the head and
// Depth()-1 is the tail. An out of range index returns an empty slot.
func (p *Pipeline[T]) Slot(i int) Slot[T] {
	if i < 0 || i >= len(p.slots) {
		return Slot[T]{}
	}
	return p.slots[i]
}

// Tail returns the contents of the last slot.
func (p *Pipeline[T]) Tail() Slot[T] {
	return p.slots[len(p.slots)-1]
}

// Reset empties every slot.
func (p *Pipeline[T]) Reset() {
	clear(p.slots)
}

// Dump writes the contents of every slot to io.Writer as a graphviz graph.
func (p *Pipeline[T]) Dump(w io.Writer) {
	memviz.Map(w, &p.slots)
}

// Run passes the operand through every stage function at once. It is the
// zero latency equivalent of the pipeline and is used when a unit is used as
// a building block inside another stage.
func Run[T any](operand T, stages ...func(T) T) T {
	for _, s := range stages {
		operand = s(operand)
	}
	return operand
}
