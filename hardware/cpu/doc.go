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

// Package cpu emulates the processor core. The core is a finite state
// machine advanced one clock tick at a time by the Step function, with a
// strict priority over what happens in any one tick:
//
//  1. If reset is asserted, all architectural state returns to zero and
//     nothing else happens.
//
//  2. Else if the load strobe is asserted, the tick belongs to the serial
//     instruction loader. Registers and the program counter are never
//     touched during a load tick, even on the tick that completes a word.
//
//  3. Else if the loader holds a complete word, that word is consumed and
//     executed in full within the tick. Execution is single cycle. There
//     is no pipeline.
//
//  4. Else the machine holds its state.
//
// The consequence of the priority order is the three tick rhythm of the
// load protocol: two strobed ticks transfer a word and a third, idle,
// tick executes it.
//
// Step cannot fail. Decoding is total over the sixteen bit word space and
// the hardware has no fault signalling of any kind. A caller that breaks
// the load protocol, by strobing for a single tick and then walking away
// for example, gets exactly what the hardware would give it: a torn word,
// executed without complaint whenever it is eventually completed.
package cpu
