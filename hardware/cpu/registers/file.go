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

package registers

import (
	"fmt"
	"strings"
)

// NumRegisters is the number of general purpose registers in the processor.
// Register indexes are three bits wide so the value follows from the
// instruction format.
const NumRegisters = 8

// File is the bank of general purpose registers. Register zero is hardwired
// to the value zero. Writes to it are discarded.
type File struct {
	regs [NumRegisters]Register
}

// NewFile is the preferred method of initialisation for the File type.
func NewFile() *File {
	fl := &File{}
	for i := range fl.regs {
		fl.regs[i] = NewRegister(0, fmt.Sprintf("R%d", i))
	}
	return fl
}

func (fl *File) String() string {
	s := strings.Builder{}
	for i := range fl.regs {
		if i > 0 {
			s.WriteString(" ")
		}
		s.WriteString(fl.regs[i].String())
	}
	return s.String()
}

// Reset the contents of every register to zero.
func (fl *File) Reset() {
	for i := range fl.regs {
		fl.regs[i].Load(0)
	}
}

// Read the value of the indexed register. Register indexes decode from a
// three bit field so only the lower three bits of idx are significant.
func (fl *File) Read(idx uint8) uint8 {
	return fl.regs[idx&0x07].Value()
}

// Write a value to the indexed register. Writes to register zero have no
// effect.
func (fl *File) Write(idx uint8, val uint8) {
	idx &= 0x07
	if idx == 0 {
		return
	}
	fl.regs[idx].Load(val)
}

// Register returns a copy of the indexed register. Useful for display
// purposes where the label is wanted alongside the value.
func (fl *File) Register(idx uint8) Register {
	return fl.regs[idx&0x07]
}
