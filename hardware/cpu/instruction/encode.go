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

// EncodeR builds an R-type instruction word. The funct3 argument selects
// the ALU operation.
func EncodeR(funct3 uint8, rd uint8, rs1 uint8, rs2 uint8) uint16 {
	return Encode(Fields{Opcode: RType, Funct3: funct3, Rd: rd, Rs1: rs1, Rs2: rs2})
}

// EncodeI builds an I-type instruction word. The funct3 argument selects
// the immediate operation. Only the lower five bits of imm are
// representable.
func EncodeI(funct3 uint8, rd uint8, rs1 uint8, imm uint8) uint16 {
	return Encode(Fields{Opcode: IType, Funct3: funct3, Rd: rd, Rs1: rs1, Imm: imm})
}

// EncodeLI builds a load-immediate instruction word. Load-immediate is
// the I-type fallback so any funct3 value without a dedicated immediate
// operation would do. This function uses 0b111.
func EncodeLI(rd uint8, imm uint8) uint16 {
	return EncodeI(0b111, rd, 0, imm)
}

// EncodeS builds an S-type instruction word. The rd argument selects the
// register exposed on the result output.
func EncodeS(rd uint8) uint16 {
	return Encode(Fields{Opcode: SType, Rd: rd})
}

// EncodeB builds a B-type instruction word. The cmp argument is the lower
// two bits of funct3.
//
// The branch offset is the immediate field and the lower three bits of
// the immediate are the same wires as the rs2 comparand. EncodeB leaves
// the upper two bits of the immediate clear, so the encoded branch
// offset always equals the comparand index rs2. Use Encode directly for
// a branch with a larger offset.
func EncodeB(cmp uint8, rs1 uint8, rs2 uint8) uint16 {
	return Encode(Fields{Opcode: BType, Funct3: cmp & 0x03, Rs1: rs1, Imm: rs2 & 0x07})
}
