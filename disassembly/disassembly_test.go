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

package disassembly_test

import (
	"strings"
	"testing"

	"github.com/gopherpico/gopherpico/disassembly"
	"github.com/gopherpico/gopherpico/hardware"
	"github.com/gopherpico/gopherpico/test"
)

func TestEntries(t *testing.T) {
	test.ExpectEquality(t, disassembly.NewEntry(0, 0xe505).String(), "LI   R1, 5")
	test.ExpectEquality(t, disassembly.NewEntry(1, 0x0128).String(), "ADD  R2, R1, R1")
	test.ExpectEquality(t, disassembly.NewEntry(2, 0x0223).String(), "BEQ  R1, R2, 2")
	test.ExpectEquality(t, disassembly.NewEntry(3, 0x000e).String(), "OUT  R3")

	// ADDI keeps its source register in the listing, LI does not have
	// one
	test.ExpectEquality(t, disassembly.NewEntry(4, 0x0325).String(), "ADDI R1, R1, 3")
}

func TestListing(t *testing.T) {
	entries := disassembly.FromProgram([]uint16{0xe505, 0x0128})

	s := &strings.Builder{}
	test.ExpectSuccess(t, disassembly.Write(s, entries))
	test.ExpectEquality(t, s.String(), "0x00  0xe505  LI   R1, 5\n0x01  0x0128  ADD  R2, R1, R1\n")
}

func TestFormatResult(t *testing.T) {
	pico := hardware.NewPicoRV()

	pico.StepInstruction(0xe505)
	test.ExpectEquality(t, disassembly.FormatResult(pico.CPU.LastResult), "0x00  LI   R1, 5 ; R1=0x05")

	pico.StepInstruction(0x0128)
	test.ExpectEquality(t, disassembly.FormatResult(pico.CPU.LastResult), "0x01  ADD  R2, R1, R1 ; R2=0x0a")

	// a branch against an unequal register pair
	pico.StepInstruction(0x0223)
	test.ExpectEquality(t, disassembly.FormatResult(pico.CPU.LastResult), "0x02  BEQ  R1, R2, 2 ; not taken")

	// OUT neither writes a register nor branches
	pico.StepInstruction(0x000e)
	test.ExpectEquality(t, disassembly.FormatResult(pico.CPU.LastResult), "0x03  OUT  R3")
}
