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

package instruction_test

import (
	"testing"

	"github.com/gopherpico/gopherpico/hardware/cpu/instruction"
	"github.com/gopherpico/gopherpico/test"
)

func TestDecode(t *testing.T) {
	// LI R1, 5
	f := instruction.Decode(0xe505)
	test.ExpectEquality(t, f.Opcode, instruction.IType)
	test.ExpectEquality(t, f.Rd, 1)
	test.ExpectEquality(t, f.Imm, 5)
	test.ExpectEquality(t, f.Funct3, 0b111)
	test.ExpectEquality(t, f.Mnemonic(), "LI")

	// ADD R2, R1, R1
	f = instruction.Decode(0x0128)
	test.ExpectEquality(t, f.Opcode, instruction.RType)
	test.ExpectEquality(t, f.Rd, 2)
	test.ExpectEquality(t, f.Rs1, 1)
	test.ExpectEquality(t, f.Rs2, 1)
	test.ExpectEquality(t, f.Funct3, 0b000)
	test.ExpectEquality(t, f.Mnemonic(), "ADD")

	// BEQ R1, R2
	f = instruction.Decode(0x0223)
	test.ExpectEquality(t, f.Opcode, instruction.BType)
	test.ExpectEquality(t, f.Rs1, 1)
	test.ExpectEquality(t, f.Rs2, 2)
	test.ExpectEquality(t, f.Imm, 2)
	test.ExpectEquality(t, f.Mnemonic(), "BEQ")
}

func TestImmediateOverlap(t *testing.T) {
	// the rs2 field and the lower three bits of the immediate are the
	// same wires. a full five bit immediate spills into the bits above
	// rs2
	f := instruction.Decode(instruction.EncodeLI(1, 0x1f))
	test.ExpectEquality(t, f.Imm, 0x1f)
	test.ExpectEquality(t, f.Rs2, 0x07)

	// the immediate is zero-extended, never sign-extended
	test.ExpectEquality(t, f.Imm&0x80, 0)
}

func TestEncode(t *testing.T) {
	test.ExpectEquality(t, instruction.EncodeLI(1, 5), 0xe505)
	test.ExpectEquality(t, instruction.EncodeR(0b000, 2, 1, 1), 0x0128)
	test.ExpectEquality(t, instruction.EncodeB(0b00, 1, 2), 0x0223)

	// encode is the exact inverse of decode over the entire word space
	for w := 0; w <= 0xffff; w++ {
		word := uint16(w)
		if !test.ExpectEquality(t, instruction.Encode(instruction.Decode(word)), word) {
			break
		}
	}
}

func TestMnemonics(t *testing.T) {
	test.ExpectEquality(t, instruction.Decode(instruction.EncodeR(0b001, 1, 2, 3)).Mnemonic(), "SUB")
	test.ExpectEquality(t, instruction.Decode(instruction.EncodeR(0b111, 1, 2, 3)).Mnemonic(), "SLT")

	test.ExpectEquality(t, instruction.Decode(instruction.EncodeI(0b000, 1, 2, 3)).Mnemonic(), "ADDI")
	test.ExpectEquality(t, instruction.Decode(instruction.EncodeI(0b010, 1, 2, 3)).Mnemonic(), "SLTI")
	test.ExpectEquality(t, instruction.Decode(instruction.EncodeI(0b011, 1, 2, 3)).Mnemonic(), "ANDI")
	test.ExpectEquality(t, instruction.Decode(instruction.EncodeI(0b100, 1, 2, 3)).Mnemonic(), "ORI")

	// every I-type funct3 without a dedicated operation is load-immediate
	test.ExpectEquality(t, instruction.Decode(instruction.EncodeI(0b001, 1, 2, 3)).Mnemonic(), "LI")
	test.ExpectEquality(t, instruction.Decode(instruction.EncodeI(0b101, 1, 2, 3)).Mnemonic(), "LI")
	test.ExpectEquality(t, instruction.Decode(instruction.EncodeI(0b110, 1, 2, 3)).Mnemonic(), "LI")

	test.ExpectEquality(t, instruction.Decode(instruction.EncodeS(3)).Mnemonic(), "OUT")

	test.ExpectEquality(t, instruction.Decode(instruction.EncodeB(0b01, 1, 2)).Mnemonic(), "BNE")
	test.ExpectEquality(t, instruction.Decode(instruction.EncodeB(0b10, 1, 2)).Mnemonic(), "BLT")
	test.ExpectEquality(t, instruction.Decode(instruction.EncodeB(0b11, 1, 2)).Mnemonic(), "BGE")

	// the upper bit of a branch funct3 is ignored by the comparison
	w := instruction.Encode(instruction.Fields{Opcode: instruction.BType, Funct3: 0b100, Rs1: 1, Imm: 2})
	test.ExpectEquality(t, instruction.Decode(w).Mnemonic(), "BEQ")
}
