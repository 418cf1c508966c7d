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

package hardware_test

import (
	"testing"

	"github.com/gopherpico/gopherpico/hardware"
	"github.com/gopherpico/gopherpico/hardware/cpu/instruction"
	"github.com/gopherpico/gopherpico/programloader"
	"github.com/gopherpico/gopherpico/test"
)

func attach(t *testing.T, pico *hardware.PicoRV, prog string) {
	t.Helper()
	ld, err := programloader.NewLoaderFromData("test.hex", []byte(prog))
	test.DemandSuccess(t, err)
	pico.AttachProgram(ld)
}

func TestStepInstruction(t *testing.T) {
	pico := hardware.NewPicoRV()

	// the output pins follow the machine, updated at the end of every
	// tick. a full instruction is three ticks
	pico.StepInstruction(0xe505)
	test.ExpectEquality(t, pico.Ticks, 3)
	test.ExpectEquality(t, pico.CPU.Regs.Read(1), 5)
	test.ExpectEquality(t, pico.Pins.ResultOut, 5)
	test.ExpectEquality(t, pico.Pins.DebugOut, 0x09)
	test.ExpectEquality(t, pico.Pins.OutputEnable, 0xff)

	pico.StepInstruction(0x0128)
	test.ExpectEquality(t, pico.CPU.Regs.Read(2), 10)
	test.ExpectEquality(t, pico.Pins.ResultOut, 10)
	test.ExpectEquality(t, pico.Pins.DebugOut, 0x12)
}

func TestRun(t *testing.T) {
	pico := hardware.NewPicoRV()
	attach(t, pico, "e505 0128")

	// an unconditional run ends when the program counter walks off the
	// end of the program
	err := pico.Run(nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pico.CPU.Regs.Read(1), 5)
	test.ExpectEquality(t, pico.CPU.Regs.Read(2), 10)
	test.ExpectEquality(t, pico.CPU.PC.Address(), 2)
	test.ExpectEquality(t, pico.CPU.Executed, 2)
}

func TestRunContinueCheck(t *testing.T) {
	pico := hardware.NewPicoRV()

	// BGE R0, R0 with an offset of zero branches to itself forever. the
	// continue check is the only way out
	loop := instruction.EncodeB(0b11, 0, 0)
	ld, err := programloader.NewLoaderFromData("loop.bin", []byte{uint8(loop & 0xff), uint8(loop >> 8)})
	test.DemandSuccess(t, err)
	pico.AttachProgram(ld)

	instructions := 0
	err = pico.Run(func() (bool, error) {
		instructions++
		return instructions < 10, nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, instructions, 10)
	test.ExpectEquality(t, pico.CPU.PC.Address(), 0)
}

func TestStepProgram(t *testing.T) {
	pico := hardware.NewPicoRV()
	attach(t, pico, "e505")

	test.ExpectSuccess(t, pico.StepProgram())
	test.ExpectEquality(t, pico.CPU.Regs.Read(1), 5)

	// the program counter is now outside the one word program
	test.ExpectFailure(t, pico.StepProgram())
}

func TestReset(t *testing.T) {
	pico := hardware.NewPicoRV()
	attach(t, pico, "e505 0128")
	test.ExpectSuccess(t, pico.Run(nil))

	pico.Reset()
	test.ExpectEquality(t, pico.CPU.PC.Address(), 0)
	test.ExpectEquality(t, pico.CPU.Regs.Read(1), 0)
	test.ExpectEquality(t, pico.Ticks, 0)
	test.ExpectEquality(t, pico.Pins.DebugOut, 0)

	// the program remains attached and can run again
	test.ExpectSuccess(t, pico.Run(nil))
	test.ExpectEquality(t, pico.CPU.Regs.Read(2), 10)
}

func TestAttachResets(t *testing.T) {
	pico := hardware.NewPicoRV()
	attach(t, pico, "e505")
	test.ExpectSuccess(t, pico.Run(nil))
	test.ExpectEquality(t, pico.CPU.Regs.Read(1), 5)

	// attaching a new program resets the machine
	attach(t, pico, "e905")
	test.ExpectEquality(t, pico.CPU.Regs.Read(1), 0)
	test.ExpectEquality(t, pico.CPU.PC.Address(), 0)
	test.ExpectEquality(t, len(pico.Program()), 1)

	test.ExpectSuccess(t, pico.Run(nil))
	test.ExpectEquality(t, pico.CPU.Regs.Read(1), 9)
}
