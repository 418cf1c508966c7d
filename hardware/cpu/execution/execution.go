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

// Package execution tracks the result of instruction execution. The
// Result type is filled in by the processor as it executes and is
// principally of use to the disassembly package and to the debugger.
package execution

import "github.com/gopherpico/gopherpico/hardware/cpu/instruction"

// Result records the execution of a single instruction.
type Result struct {
	// the program counter value at the moment the instruction executed
	Address uint8

	// the instruction word and its decoded fields
	Word   uint16
	Fields instruction.Fields

	// the value written to the destination register. only meaningful
	// when RegisterWrite is true
	Value         uint8
	RegisterWrite bool

	// whether a branch instruction took its branch. always false for
	// instructions that are not branches
	BranchTaken bool

	// the program counter value after the instruction executed
	PCAfter uint8
}
