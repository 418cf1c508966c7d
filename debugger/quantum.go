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

package debugger

import (
	"fmt"

	"github.com/gopherpico/gopherpico/debugger/terminal"
	"github.com/gopherpico/gopherpico/disassembly"
)

// Quantum specifies the step granularity of the debugger.
type Quantum int

// List of valid Quantum values.
const (
	QuantumInstruction Quantum = iota
	QuantumTick
)

func (q Quantum) String() string {
	switch q {
	case QuantumInstruction:
		return "Instruction"
	case QuantumTick:
		return "Tick"
	}
	return "unrecognised quantum"
}

// the three ticks of the load/execute rhythm. the tickPhase field of the
// Debugger type cycles through these values when stepping by ticks.
const (
	phaseLowByte = iota
	phaseHighByte
	phaseExecute
)

// step the machine by one quantum.
func (dbg *Debugger) step() error {
	if dbg.quantum == QuantumTick {
		return dbg.stepTick()
	}

	// an instruction step from the middle of the load rhythm finishes
	// the in-flight instruction tick by tick. the completed instruction
	// is the whole of the step
	if dbg.tickPhase != phaseLowByte {
		for dbg.tickPhase != phaseLowByte {
			if err := dbg.stepTick(); err != nil {
				return err
			}
		}
		return nil
	}

	if err := dbg.pico.StepProgram(); err != nil {
		return err
	}
	dbg.printLine(terminal.StyleInstructionStep, disassembly.FormatResult(dbg.pico.CPU.LastResult))

	return nil
}

// stepTick advances the machine by a single clock tick, driving the
// input pins the way the serial load protocol requires. The word fetched
// on the first tick is latched by the debugger because the high byte of
// it is not needed until the second.
func (dbg *Debugger) stepTick() error {
	switch dbg.tickPhase {
	case phaseLowByte:
		addr := dbg.pico.CPU.PC.Address()
		program := dbg.pico.Program()
		if int(addr) >= len(program) {
			return fmt.Errorf("debugger: program counter %#02x is outside the attached program", addr)
		}
		dbg.tickWord = program[addr]
		dbg.pico.Pins.AssertLoad(uint8(dbg.tickWord & 0x7f))
		dbg.pico.Step()

	case phaseHighByte:
		dbg.pico.Pins.HighBus = uint8(dbg.tickWord >> 8)
		dbg.pico.Step()

	case phaseExecute:
		dbg.pico.Pins.ReleaseLoad()
		dbg.pico.Pins.HighBus = 0x00
		dbg.pico.Step()
	}

	dbg.printLine(terminal.StyleTickStep, "tick %d: %s", dbg.pico.Ticks, dbg.pico.Pins)

	dbg.tickPhase = (dbg.tickPhase + 1) % 3

	// the execute tick has just happened so the instruction result can
	// be reported, as it would be for a whole instruction step
	if dbg.tickPhase == phaseLowByte {
		dbg.printLine(terminal.StyleInstructionStep, disassembly.FormatResult(dbg.pico.CPU.LastResult))
	}

	return nil
}
