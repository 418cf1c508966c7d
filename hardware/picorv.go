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

package hardware

import (
	"fmt"

	"github.com/gopherpico/gopherpico/hardware/cpu"
	"github.com/gopherpico/gopherpico/hardware/pins"
	"github.com/gopherpico/gopherpico/logger"
	"github.com/gopherpico/gopherpico/programloader"
)

// PicoRV is the whole machine. The core, the pins, and the program
// buffer that stands in for the instruction store of the hardware.
type PicoRV struct {
	Pins *pins.Pins
	CPU  *cpu.CPU

	// the attached program, addressed by the program counter
	program []uint16

	// number of clock ticks since creation or the last call to Reset
	Ticks uint64
}

// NewPicoRV is the preferred method of initialisation for the PicoRV
// type.
func NewPicoRV() *PicoRV {
	pico := &PicoRV{
		Pins: pins.NewPins(),
		CPU:  cpu.NewCPU(),
	}
	pico.refreshOutputs()
	return pico
}

func (pico *PicoRV) String() string {
	return pico.CPU.String()
}

func (pico *PicoRV) refreshOutputs() {
	pico.Pins.ResultOut = pico.CPU.ResultOut()
	pico.Pins.DebugOut = pico.CPU.DebugOut()
}

// Step the machine by one clock tick. The input pins are sampled for the
// duration of the tick and the output pins are refreshed at the end of
// it.
func (pico *PicoRV) Step() {
	pico.CPU.Step(pico.Pins.Reset, pico.Pins.LowBus, pico.Pins.HighBus)
	pico.refreshOutputs()
	pico.Ticks++
}

// Reset the machine by pulsing the reset pin for one tick. Any attached
// program remains attached. The tick counter restarts.
func (pico *PicoRV) Reset() {
	pico.Pins.Clear()
	pico.Pins.Reset = true
	pico.Step()
	pico.Pins.Reset = false
	pico.Ticks = 0
}

// LoadWord transfers an instruction word into the core over the serial
// protocol. Two strobed ticks, low byte then high byte. On return the
// strobe has been released and the word is pending. It executes on the
// next idle tick.
//
// Note that bit seven of the low byte cannot travel over the bus. The
// strobe line claims it. A word with that bit set loads as its bit-clear
// twin, exactly as on the hardware.
func (pico *PicoRV) LoadWord(word uint16) {
	pico.Pins.AssertLoad(uint8(word & 0x7f))
	pico.Step()

	pico.Pins.HighBus = uint8(word >> 8)
	pico.Step()

	pico.Pins.ReleaseLoad()
	pico.Pins.HighBus = 0x00
}

// StepInstruction loads and executes a single instruction word. Three
// ticks, the canonical load/execute rhythm of the machine.
func (pico *PicoRV) StepInstruction(word uint16) {
	pico.LoadWord(word)
	pico.Step()
}

// AttachProgram attaches the program held by the loader and resets the
// machine, ready for the program to run from address zero.
func (pico *PicoRV) AttachProgram(prog programloader.Loader) {
	pico.program = prog.Words()
	pico.Reset()
	logger.Logf(logger.Allow, "picorv", "attached %s (%d words)", prog.Name(), len(pico.program))
}

// Program returns the attached program. The slice is the program buffer
// itself, not a copy.
func (pico *PicoRV) Program() []uint16 {
	return pico.program
}

// StepProgram executes the instruction the program counter points at.
// Unlike StepInstruction it takes the word from the attached program, so
// it can fail if the program counter has wandered outside the buffer.
func (pico *PicoRV) StepProgram() error {
	addr := pico.CPU.PC.Address()
	if int(addr) >= len(pico.program) {
		return fmt.Errorf("picorv: program counter %#02x is outside the attached program", addr)
	}
	pico.StepInstruction(pico.program[addr])
	return nil
}

// The continueCheck function runs after every instruction and a full
// check every time can be expensive. PerformanceBrake is a standard
// value for filtering out expensive code paths within a continueCheck
// implementation. For example:
//
//	performanceBrake++
//	if performanceBrake >= hardware.PerformanceBrake {
//		performanceBrake = 0
//		if endCondition {
//			return false, nil
//		}
//	}
//	return true, nil
const PerformanceBrake = 100

// Run the attached program until the program counter leaves the program
// buffer or the continueCheck function says to stop. A nil continueCheck
// means run unconditionally.
//
// A program that loops never leaves the buffer. It is the continueCheck
// function, polled after every instruction, that ends such a run.
func (pico *PicoRV) Run(continueCheck func() (bool, error)) error {
	if continueCheck == nil {
		continueCheck = func() (bool, error) {
			return true, nil
		}
	}

	for {
		addr := pico.CPU.PC.Address()
		if int(addr) >= len(pico.program) {
			return nil
		}
		pico.StepInstruction(pico.program[addr])

		cont, err := continueCheck()
		if err != nil {
			return err
		}
		if !cont {
			return nil
		}
	}
}
