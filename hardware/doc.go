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

// Package hardware is the base package for the emulation of the PicoRV
// machine. It and its sub-packages contain everything required to run a
// program on the emulated processor.
//
// The PicoRV type gathers the processor core and its pins and provides
// the clocking conveniences that almost every caller wants: loading a
// word over the serial protocol, stepping a whole instruction, running
// an attached program. Callers that need wire-level control can drive
// the pins directly and call Step one tick at a time.
//
// The hardware the emulation is modelled on keeps its program in a
// sixteen word instruction store and feeds it to the core over the
// serial load protocol. The emulation replaces the fixed store with an
// unbounded program buffer but feeds the core the same way, three ticks
// per instruction, so the core sees bit-identical bus traffic.
package hardware
