// This file is part of GopherPico.
//
// GopherPico is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherPico is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherPico.  If not, see <https://www.gnu.org/licenses/>.

// Package loader implements the serial instruction loader of the
// processor. Instruction words arrive in two phases over a pair of eight
// bit buses, low byte first, paced by an external strobe.
//
// The loader is a two phase state machine. It only advances on ticks
// where the strobe is asserted. On idle ticks the accumulated state,
// including a partially transferred word, is held indefinitely. A caller
// that interrupts a transfer can therefore resume it later, although a
// caller that loses track of the phase will assemble a torn word. The
// hardware offers no protection against this and neither does the
// emulation.
package loader

import "fmt"

// Phase of the two phase transfer.
type Phase int

// List of valid Phase values.
const (
	PhaseLow Phase = iota
	PhaseHigh
)

func (ph Phase) String() string {
	switch ph {
	case PhaseLow:
		return "low"
	case PhaseHigh:
		return "high"
	}
	panic("unknown loader phase")
}

// Loader accumulates instruction words from the bus pair.
type Loader struct {
	phase Phase
	word  uint16
	valid bool
}

// NewLoader is the preferred method of initialisation for the Loader
// type.
func NewLoader() *Loader {
	return &Loader{}
}

func (ld *Loader) String() string {
	return fmt.Sprintf("phase=%s word=%#06x valid=%v", ld.phase, ld.word, ld.valid)
}

// Reset the loader to the load-awaiting phase, discarding any partial or
// pending word.
func (ld *Loader) Reset() {
	ld.phase = PhaseLow
	ld.word = 0
	ld.valid = false
}

// Tick the loader with the current bus values. The strobe argument is
// bit seven of the low bus at the wire level, which is why only the
// lower seven bits of the low byte can be transferred. The high byte
// arrives on a bus of its own and all eight bits carry.
//
// Nothing happens on ticks where the strobe is not asserted.
func (ld *Loader) Tick(low uint8, high uint8, strobe bool) {
	if !strobe {
		return
	}

	switch ld.phase {
	case PhaseLow:
		ld.word = (ld.word & 0xff00) | uint16(low&0x7f)
		ld.valid = false
		ld.phase = PhaseHigh
	case PhaseHigh:
		ld.word = (ld.word & 0x00ff) | uint16(high)<<8
		ld.valid = true
		ld.phase = PhaseLow
	}
}

// Phase the loader is currently in.
func (ld *Loader) Phase() Phase {
	return ld.phase
}

// Word returns the most recently accumulated instruction word. The word
// persists after it has been consumed, which matters to the output
// mux of the processor.
func (ld *Loader) Word() uint16 {
	return ld.word
}

// Valid is true if a completely transferred word is waiting to be
// consumed.
func (ld *Loader) Valid() bool {
	return ld.valid
}

// Consume the pending word, clearing the validity flag. The word itself
// remains visible through the Word function.
func (ld *Loader) Consume() uint16 {
	ld.valid = false
	return ld.word
}
