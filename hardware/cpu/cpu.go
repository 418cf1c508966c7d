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

package cpu

import (
	"fmt"

	"github.com/gopherpico/gopherpico/hardware/cpu/alu"
	"github.com/gopherpico/gopherpico/hardware/cpu/branch"
	"github.com/gopherpico/gopherpico/hardware/cpu/execution"
	"github.com/gopherpico/gopherpico/hardware/cpu/instruction"
	"github.com/gopherpico/gopherpico/hardware/cpu/registers"
	"github.com/gopherpico/gopherpico/hardware/loader"
)

// CPU is the processor core. The hardware exposes two debug latches in
// addition to the architectural registers and both are updated on every
// execute tick, whatever the instruction class. They drive the debug
// output pin.
type CPU struct {
	PC     registers.ProgramCounter
	Regs   *registers.File
	Loader *loader.Loader

	// the destination register field of the most recently executed
	// instruction. selects which register the result output shows
	CurrentRd uint8

	// whether the most recently executed instruction was a branch that
	// took its branch
	BranchTaken bool

	// record of the most recently executed instruction. only meaningful
	// once Executed is non-zero
	LastResult execution.Result

	// number of instructions executed since the last reset
	Executed uint64
}

// NewCPU is the preferred method of initialisation for the CPU type.
func NewCPU() *CPU {
	return &CPU{
		PC:     registers.NewProgramCounter(0),
		Regs:   registers.NewFile(),
		Loader: loader.NewLoader(),
	}
}

func (mc *CPU) String() string {
	return fmt.Sprintf("PC=%s %s", mc.PC, mc.Regs)
}

// Reset the core. All architectural state, the loader and the debug
// latches return to zero. This is the only way of abandoning an in-flight
// load or a pending instruction.
func (mc *CPU) Reset() {
	mc.PC.Load(0)
	mc.Regs.Reset()
	mc.Loader.Reset()
	mc.CurrentRd = 0
	mc.BranchTaken = false
	mc.LastResult = execution.Result{}
	mc.Executed = 0
}

// Step the core by one clock tick. The arguments are the state of the
// input pins for the duration of the tick. The load strobe is bit seven
// of the low bus.
//
// Step cannot fail. See the package documentation for the priority rules
// that decide what a tick does.
func (mc *CPU) Step(reset bool, low uint8, high uint8) {
	if reset {
		mc.Reset()
		return
	}

	if low&0x80 == 0x80 {
		mc.Loader.Tick(low, high, true)
		return
	}

	if mc.Loader.Valid() {
		mc.execute()
	}
}

// execute the word held by the loader. Called on an idle tick when the
// loader validity flag is set.
func (mc *CPU) execute() {
	word := mc.Loader.Consume()
	f := instruction.Decode(word)

	a := mc.Regs.Read(f.Rs1)
	b := mc.Regs.Read(f.Rs2)

	r := execution.Result{
		Address: mc.PC.Address(),
		Word:    word,
		Fields:  f,
	}

	switch f.Opcode {
	case instruction.RType:
		v := alu.Compute(a, b, alu.Op(f.Funct3))
		mc.Regs.Write(f.Rd, v)
		r.Value = v
		r.RegisterWrite = f.Rd != 0
		mc.PC.Add(1)
		mc.BranchTaken = false

	case instruction.IType:
		var v uint8
		switch f.Funct3 {
		case 0b000:
			v = alu.Compute(a, f.Imm, alu.Add)
		case 0b010:
			v = alu.Compute(a, f.Imm, alu.Slt)
		case 0b011:
			v = alu.Compute(a, f.Imm, alu.And)
		case 0b100:
			v = alu.Compute(a, f.Imm, alu.Or)
		default:
			// load-immediate. the fallback for every funct3 value
			// without a dedicated immediate operation
			v = f.Imm
		}
		mc.Regs.Write(f.Rd, v)
		r.Value = v
		r.RegisterWrite = f.Rd != 0
		mc.PC.Add(1)
		mc.BranchTaken = false

	case instruction.SType:
		// no register write in this core variant. the instruction is
		// still useful, it latches a new destination register for the
		// result output below
		mc.PC.Add(1)
		mc.BranchTaken = false

	case instruction.BType:
		taken := branch.Evaluate(a, b, branch.FromFunct3(f.Funct3))
		if taken {
			mc.PC.Add(f.Imm)
		} else {
			mc.PC.Add(1)
		}
		mc.BranchTaken = taken
		r.BranchTaken = taken
	}

	mc.CurrentRd = f.Rd

	r.PCAfter = mc.PC.Address()
	mc.LastResult = r
	mc.Executed++
}

// ResultOut is the value of the result output pin. The output is a
// combinational mux over the latched instruction word. For B-type words
// it shows the branch comparand register, for everything else it shows
// the register selected by the current destination latch.
func (mc *CPU) ResultOut() uint8 {
	f := instruction.Decode(mc.Loader.Word())
	if f.Opcode == instruction.BType {
		return mc.Regs.Read(f.Rs2)
	}
	return mc.Regs.Read(mc.CurrentRd)
}

// DebugOut is the value of the debug output pin. It packs the lower five
// bits of the program counter and the current destination latch into a
// single byte.
func (mc *CPU) DebugOut() uint8 {
	return (mc.PC.Address()&0x1f)<<3 | (mc.CurrentRd & 0x07)
}
