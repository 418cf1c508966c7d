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

// Package alu implements the arithmetic logic unit of the processor. The
// ALU is purely combinational. It takes two eight bit operands and an
// operation selector and produces an eight bit result in the same cycle.
//
// The operation selector is the funct3 field of the instruction word. All
// eight selector values are defined so there is no such thing as an
// illegal operation.
package alu

// Op selects the operation performed by the ALU. The values correspond to
// the funct3 field of R-type instructions.
type Op uint8

// List of valid Op values.
const (
	Add Op = iota
	Sub
	And
	Or
	Xor
	Sll
	Srl
	Slt
)

func (op Op) String() string {
	switch op & 0x07 {
	case Add:
		return "ADD"
	case Sub:
		return "SUB"
	case And:
		return "AND"
	case Or:
		return "OR"
	case Xor:
		return "XOR"
	case Sll:
		return "SLL"
	case Srl:
		return "SRL"
	case Slt:
		return "SLT"
	}
	panic("unknown ALU operation")
}

// Compute the result of the operation applied to operands a and b.
//
// Addition and subtraction wrap around without any carry or overflow
// indication. The shift operations use only the lower three bits of the b
// operand, shifting by more than seven bits being meaningless in an eight
// bit datapath. The comparison operation is unsigned and produces one or
// zero.
func Compute(a uint8, b uint8, op Op) uint8 {
	switch op & 0x07 {
	case Add:
		return a + b
	case Sub:
		return a - b
	case And:
		return a & b
	case Or:
		return a | b
	case Xor:
		return a ^ b
	case Sll:
		return a << (b & 0x07)
	case Srl:
		return a >> (b & 0x07)
	case Slt:
		if a < b {
			return 1
		}
		return 0
	}
	panic("unknown ALU operation")
}
