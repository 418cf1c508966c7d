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

// Package pins models the external connection surface of the processor.
// Callers drive the input pins and step the machine. The machine refreshes
// the output pins at the end of every step.
//
// The physical pin and package mapping of any particular carrier board is
// not modelled. These are the logical pins of the core.
package pins

import "fmt"

// Pins is the bundle of input and output pins on the processor package.
type Pins struct {
	// input pins, sampled at the beginning of every machine step
	Reset bool

	// the low bus carries the low instruction byte during the first load
	// phase. bit seven of the bus is the load strobe itself, which is why
	// only seven payload bits are available
	LowBus uint8

	// the high bus carries the high instruction byte during the second
	// load phase
	HighBus uint8

	// output pins, refreshed at the end of every machine step
	ResultOut uint8
	DebugOut  uint8

	// the hardware drives an output-enable mask alongside the output
	// pins. it is constant, all outputs are always enabled
	OutputEnable uint8
}

// NewPins is the preferred method of initialisation for the Pins type.
func NewPins() *Pins {
	return &Pins{OutputEnable: 0xff}
}

func (p *Pins) String() string {
	return fmt.Sprintf("low=%#02x high=%#02x load=%v reset=%v result=%#02x debug=%#02x",
		p.LowBus, p.HighBus, p.LoadEnable(), p.Reset, p.ResultOut, p.DebugOut)
}

// LoadEnable is true when the load strobe, bit seven of the low bus, is
// asserted.
func (p *Pins) LoadEnable() bool {
	return p.LowBus&0x80 == 0x80
}

// AssertLoad drives the low bus with the strobe bit set and the lower
// seven bits of b as payload.
func (p *Pins) AssertLoad(b uint8) {
	p.LowBus = 0x80 | (b & 0x7f)
}

// ReleaseLoad deasserts the load strobe, clearing the low bus.
func (p *Pins) ReleaseLoad() {
	p.LowBus = 0x00
}

// Clear returns all input pins to their released state. Output pins are
// untouched, they belong to the machine.
func (p *Pins) Clear() {
	p.Reset = false
	p.LowBus = 0x00
	p.HighBus = 0x00
}
