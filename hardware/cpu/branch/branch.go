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

// Package branch implements the branch comparison unit of the processor.
// Like the ALU it is purely combinational. It compares two eight bit
// operands and decides whether a branch is taken.
package branch

// Comparison selects the test performed by the branch unit. The values
// correspond to the lower two bits of the funct3 field of B-type
// instructions. The upper bit of funct3 plays no part in branch decisions.
type Comparison uint8

// List of valid Comparison values.
const (
	EQ Comparison = iota
	NE
	LT
	GE
)

func (cmp Comparison) String() string {
	switch cmp & 0x03 {
	case EQ:
		return "EQ"
	case NE:
		return "NE"
	case LT:
		return "LT"
	case GE:
		return "GE"
	}
	panic("unknown branch comparison")
}

// FromFunct3 converts the funct3 field of an instruction to a Comparison
// value.
func FromFunct3(funct3 uint8) Comparison {
	return Comparison(funct3 & 0x03)
}

// Evaluate the comparison for operands a and b. The ordered comparisons
// are unsigned.
func Evaluate(a uint8, b uint8, cmp Comparison) bool {
	switch cmp & 0x03 {
	case EQ:
		return a == b
	case NE:
		return a != b
	case LT:
		return a < b
	case GE:
		return a >= b
	}
	panic("unknown branch comparison")
}
