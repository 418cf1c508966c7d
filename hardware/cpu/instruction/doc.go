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

// Package instruction defines the sixteen bit compressed instruction
// format of the processor and provides the means to decode (and encode)
// instruction words.
//
// The fields of the format sit at fixed positions in the word:
//
//	bits 15:13   funct3
//	bits 12:8    imm (five bit immediate)
//	bits 10:8    rs2
//	bits 7:5     rs1
//	bits 4:2     rd
//	bits 1:0     opcode
//
// Note that the immediate overlaps the rs2 field. The lower three bits of
// the immediate and the rs2 index are the same wires. The instruction
// class selected by the opcode decides which reading is meaningful,
// although Decode recovers both in all cases, just as the hardware decodes
// every field in parallel.
//
// All four opcode values and all eight funct3 values are defined. There is
// no illegal instruction in this format and consequently no decode error
// path.
package instruction
