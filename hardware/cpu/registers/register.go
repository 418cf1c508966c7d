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

import "fmt"

// Register is an array of of bits (implemented as an integer) with a
// card-carrying label. All registers in the processor are eight bits wide.
type Register struct {
	label string
	value uint8
}

// NewRegister is the preferred method of initialisation for the Register
// type.
func NewRegister(val uint8, label string) Register {
	return Register{value: val, label: label}
}

// Label returns the label assigned to the register.
func (r Register) Label() string {
	return r.label
}

func (r Register) String() string {
	return fmt.Sprintf("%s=%#02x", r.label, r.value)
}

// Value returns the current value of the register.
func (r Register) Value() uint8 {
	return r.value
}

// IsZero checks if the register is zero.
func (r Register) IsZero() bool {
	return r.value == 0
}

// Load a value into the register.
func (r *Register) Load(val uint8) {
	r.value = val
}
