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

// Package registers implements the register types used by the processor.
// There are two such types: the general purpose Register and the
// ProgramCounter.
//
// The general purpose registers are gathered together in the File type.
// The File enforces the one architectural wrinkle in the register bank,
// which is that register zero is hardwired to the value zero. Writes to
// it are discarded and reads always return zero.
//
// Both register types are eight bits wide and all arithmetic on them
// wraps around silently. The ProgramCounter in particular advances
// modulo 256, meaning a program that walks off the top of the address
// space continues from address zero.
package registers
