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

package registers_test

import (
	"testing"

	"github.com/gopherpico/gopherpico/hardware/cpu/registers"
	"github.com/gopherpico/gopherpico/test"
)

func TestRegister(t *testing.T) {
	r := registers.NewRegister(0, "TEST")
	test.ExpectEquality(t, r.IsZero(), true)
	test.ExpectEquality(t, r.Label(), "TEST")

	r.Load(0x7f)
	test.ExpectEquality(t, r.IsZero(), false)
	test.ExpectEquality(t, r.Value(), 0x7f)
	test.ExpectEquality(t, r.String(), "TEST=0x7f")
}

func TestFile(t *testing.T) {
	fl := registers.NewFile()

	// all registers start at zero
	for i := uint8(0); i < registers.NumRegisters; i++ {
		test.ExpectEquality(t, fl.Read(i), 0)
	}

	// writes to registers one to seven stick
	for i := uint8(1); i < registers.NumRegisters; i++ {
		fl.Write(i, i*10)
		test.ExpectEquality(t, fl.Read(i), i*10)
	}

	// writes to register zero are discarded
	fl.Write(0, 0xff)
	test.ExpectEquality(t, fl.Read(0), 0)

	// only the lower three bits of the index are significant
	test.ExpectEquality(t, fl.Read(0x09), 10)
	fl.Write(0x08, 0xff)
	test.ExpectEquality(t, fl.Read(0), 0)

	// labels follow the index
	test.ExpectEquality(t, fl.Register(3).Label(), "R3")

	// reset returns every register to zero
	fl.Reset()
	for i := uint8(0); i < registers.NumRegisters; i++ {
		test.ExpectEquality(t, fl.Read(i), 0)
	}
}

func TestProgramCounter(t *testing.T) {
	pc := registers.NewProgramCounter(0)
	test.ExpectEquality(t, pc.Address(), 0)

	pc.Add(1)
	test.ExpectEquality(t, pc.Address(), 1)

	// the program counter wraps around at the top of the address space
	pc.Load(0xff)
	pc.Add(1)
	test.ExpectEquality(t, pc.Address(), 0)

	pc.Load(0xf0)
	pc.Add(0x20)
	test.ExpectEquality(t, pc.Address(), 0x10)

	test.ExpectEquality(t, pc.Label(), "PC")
	test.ExpectEquality(t, pc.String(), "0x10")
}
