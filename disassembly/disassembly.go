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

// Package disassembly turns instruction words back into assembly
// language. Because decoding is total there is no such thing as a word
// that fails to disassemble. A word of garbage disassembles to the
// instruction the hardware would execute, which is frequently the most
// useful thing a debugging session can know.
package disassembly

import (
	"fmt"
	"io"

	"github.com/gopherpico/gopherpico/hardware/cpu/execution"
	"github.com/gopherpico/gopherpico/hardware/cpu/instruction"
)

// Entry is a single disassembled instruction word.
type Entry struct {
	Address uint8
	Word    uint16
	Fields  instruction.Fields

	// the mnemonic and formatted operands of the instruction
	Operator string
	Operand  string
}

// NewEntry disassembles a single instruction word.
func NewEntry(address uint8, word uint16) Entry {
	f := instruction.Decode(word)
	return Entry{
		Address:  address,
		Word:     word,
		Fields:   f,
		Operator: f.Mnemonic(),
		Operand:  operand(f),
	}
}

func (e Entry) String() string {
	return fmt.Sprintf("%-4s %s", e.Operator, e.Operand)
}

// operand formats the instruction fields that matter to the instruction
// class. immediates are printed in decimal, they are never larger
// than 31.
func operand(f instruction.Fields) string {
	switch f.Opcode {
	case instruction.RType:
		return fmt.Sprintf("R%d, R%d, R%d", f.Rd, f.Rs1, f.Rs2)
	case instruction.IType:
		if f.Mnemonic() == "LI" {
			return fmt.Sprintf("R%d, %d", f.Rd, f.Imm)
		}
		return fmt.Sprintf("R%d, R%d, %d", f.Rd, f.Rs1, f.Imm)
	case instruction.SType:
		return fmt.Sprintf("R%d", f.Rd)
	case instruction.BType:
		// the branch offset shares its lower three bits with the rs2
		// comparand. both readings are printed
		return fmt.Sprintf("R%d, R%d, %d", f.Rs1, f.Rs2, f.Imm)
	}
	panic("unknown instruction class")
}

// FromProgram disassembles an entire program. Addresses beyond the reach
// of the eight bit program counter are disassembled all the same.
func FromProgram(words []uint16) []Entry {
	entries := make([]Entry, 0, len(words))
	for i, w := range words {
		entries = append(entries, NewEntry(uint8(i), w))
	}
	return entries
}

// Write a columnar listing of disassembled entries.
func Write(output io.Writer, entries []Entry) error {
	for _, e := range entries {
		_, err := fmt.Fprintf(output, "%#04x  %#06x  %s\n", e.Address, e.Word, e)
		if err != nil {
			return fmt.Errorf("disassembly: %w", err)
		}
	}
	return nil
}

// FormatResult describes an execution result on a single line, in the
// manner of a trace. The disassembled instruction is annotated with what
// it did.
func FormatResult(res execution.Result) string {
	e := NewEntry(res.Address, res.Word)

	s := fmt.Sprintf("%#04x  %s", res.Address, e)
	if res.RegisterWrite {
		s = fmt.Sprintf("%s ; R%d=%#04x", s, res.Fields.Rd, res.Value)
	}
	if res.Fields.Opcode == instruction.BType {
		if res.BranchTaken {
			s = fmt.Sprintf("%s ; taken to %#04x", s, res.PCAfter)
		} else {
			s = fmt.Sprintf("%s ; not taken", s)
		}
	}
	return s
}
