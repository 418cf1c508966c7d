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

package main_test

import (
	"strings"
	"testing"

	"github.com/gopherpico/gopherpico/hardware"
	"github.com/gopherpico/gopherpico/programloader"
)

func BenchmarkMachine(b *testing.B) {
	pico := hardware.NewPicoRV()

	// ADDI R1,R1,#1 over and over. the full three tick load/execute
	// rhythm for every instruction
	for n := 0; n < b.N; n++ {
		pico.StepInstruction(0x0125)
	}
}

func BenchmarkRun(b *testing.B) {
	// half the address space filled with ADDI R1,R1,#1. the program
	// counter leaves the program at the halfway point, ending the run.
	// a longer program would fill the address space and wrap forever
	prog, err := programloader.NewLoaderFromData("bench.hex", []byte(strings.Repeat("0x0125\n", 128)))
	if err != nil {
		b.Fatalf(err.Error())
	}

	pico := hardware.NewPicoRV()

	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		pico.AttachProgram(prog)
		if err := pico.Run(nil); err != nil {
			b.Fatalf(err.Error())
		}
	}
}
