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

package instruction

import "fmt"

// Class identifies the shape of an instruction word. It is decoded from
// the lower two bits of the word.
type Class int

// List of valid Class values.
const (
	RType Class = iota
	IType
	SType
	BType
)

func (cl Class) String() string {
	switch cl {
	case RType:
		return "R-type"
	case IType:
		return "I-type"
	case SType:
		return "S-type"
	case BType:
		return "B-type"
	}
	panic("unknown instruction class")
}

// Fields is the fully decoded form of an instruction word. Every field is
// populated on decode whether or not it is meaningful for the instruction
// class. In particular Rs2 and the lower three bits of Imm are decoded
// from the same bits of the word.
type Fields struct {
	Opcode Class
	Rd     uint8
	Rs1    uint8
	Rs2    uint8
	Funct3 uint8

	// Imm is the five bit immediate zero-extended to eight bits. There is
	// no sign extension in this core
	Imm uint8
}

// Decode an instruction word into its constituent fields. Decoding is
// total. Any sixteen bit pattern is a structurally valid instruction.
func Decode(word uint16) Fields {
	return Fields{
		Opcode: Class(word & 0x0003),
		Rd:     uint8((word >> 2) & 0x07),
		Rs1:    uint8((word >> 5) & 0x07),
		Rs2:    uint8((word >> 8) & 0x07),
		Funct3: uint8((word >> 13) & 0x07),
		Imm:    uint8((word >> 8) & 0x1f),
	}
}

// Encode the fields back into an instruction word. The immediate and rs2
// share bits of the word so Encode drives those bits with the union of
// the two fields. Fields produced by Decode are always self consistent in
// this respect, making Encode the exact inverse of Decode.
func Encode(f Fields) uint16 {
	return uint16(f.Opcode&0x03) |
		uint16(f.Rd&0x07)<<2 |
		uint16(f.Rs1&0x07)<<5 |
		uint16(f.Rs2&0x07)<<8 |
		uint16(f.Imm&0x1f)<<8 |
		uint16(f.Funct3&0x07)<<13
}

func (f Fields) String() string {
	return fmt.Sprintf("%s rd=%d rs1=%d rs2=%d imm=%#02x funct3=%03b",
		f.Opcode, f.Rd, f.Rs1, f.Rs2, f.Imm, f.Funct3)
}

// Mnemonic returns the assembly language name for the instruction. The
// R-type mnemonics follow the funct3 selection of the ALU. The I-type
// mnemonics follow the dispatch in the execution step of the core, with
// LI covering every funct3 value that has no dedicated immediate
// operation.
func (f Fields) Mnemonic() string {
	switch f.Opcode {
	case RType:
		switch f.Funct3 {
		case 0b000:
			return "ADD"
		case 0b001:
			return "SUB"
		case 0b010:
			return "AND"
		case 0b011:
			return "OR"
		case 0b100:
			return "XOR"
		case 0b101:
			return "SLL"
		case 0b110:
			return "SRL"
		case 0b111:
			return "SLT"
		}
	case IType:
		switch f.Funct3 {
		case 0b000:
			return "ADDI"
		case 0b010:
			return "SLTI"
		case 0b011:
			return "ANDI"
		case 0b100:
			return "ORI"
		default:
			return "LI"
		}
	case SType:
		return "OUT"
	case BType:
		switch f.Funct3 & 0x03 {
		case 0b00:
			return "BEQ"
		case 0b01:
			return "BNE"
		case 0b10:
			return "BLT"
		case 0b11:
			return "BGE"
		}
	}
	panic("unknown instruction class")
}
