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

package debugger_test

func (trm *mockTerm) testRegisters() {
	// a newly created machine has every register at zero
	trm.sndInput("REGISTERS")
	trm.cmpOutput("PC=0x0 R0=0x0 R1=0x0 R2=0x0 R3=0x0 R4=0x0 R5=0x0 R6=0x0 R7=0x0")

	// the program counter can be inspected and changed on its own
	trm.sndInput("PC")
	trm.cmpOutput("PC=0x0")

	trm.sndInput("PC 16")
	trm.cmpOutput("PC=0x10")

	trm.sndInput("PC 0")
	trm.cmpOutput("PC=0x0")

	// poke a register and read it back
	trm.sndInput("POKE 1 255")
	trm.cmpOutput("R1=0xff")

	trm.sndInput("PEEK 1")
	trm.cmpOutput("R1=0xff")

	// the zero register discards writes
	trm.sndInput("POKE 0 10")
	trm.cmpOutput("R0=0x0")

	// peek accepts a list of registers
	trm.sndInput("PEEK 0 1")
	trm.cmpOutput("R1=0xff")

	// there are only eight registers
	trm.sndInput("PEEK 8")
	trm.cmpOutput("not a register (8)")

	trm.sndInput("POKE 1 256")
	trm.cmpOutput("poke value must be an eight bit number (256)")

	// return the machine to its reset state for later tests
	trm.sndInput("POKE 1 0")
	trm.cmpOutput("R1=0x0")
}

func (trm *mockTerm) testQuantum() {
	// the default quantum steps by instruction
	trm.sndInput("QUANTUM")
	trm.cmpOutput("quantum: Instruction")

	trm.sndInput("QUANTUM TICK")
	trm.cmpOutput("quantum: Tick")

	trm.sndInput("QUANTUM INSTRUCTION")
	trm.cmpOutput("quantum: Instruction")
}

func (trm *mockTerm) testOnStep() {
	// a new onstep command sequence runs immediately
	trm.sndInput("ONSTEP PC")
	trm.cmpOutput("PC=0x0")

	trm.sndInput("ONSTEP ECHO")
	trm.cmpOutput("auto-command on step: PC")

	trm.sndInput("ONSTEP OFF")
	trm.cmpOutput("no auto-command on step")
}

func (trm *mockTerm) testWithoutProgram() {
	// commands that need an attached program fail politely
	trm.sndInput("RUN")
	trm.cmpOutput("no program attached (use LOAD)")

	trm.sndInput("DISASM")
	trm.cmpOutput("no program attached (use LOAD)")

	trm.sndInput("LAST")
	trm.cmpOutput("no instructions have been executed")

	trm.sndInput("LOADER")
	trm.cmpOutput("phase=low word=0x0000 valid=false")

	// a step with no program is an error rather than a crash. the
	// program counter has nothing to point at
	trm.sndInput("STEP")
	trm.cmpOutput("picorv: program counter 0x0 is outside the attached program")
}
