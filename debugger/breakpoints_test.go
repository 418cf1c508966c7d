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

package debugger_test

func (trm *mockTerm) testBreakpoints() {
	// debugger starts with no breakpoints
	trm.sndInput("LIST BREAKS")
	trm.cmpOutput("no breakpoints")

	// adding a breakpoint produces no feedback of its own
	trm.sndInput("BREAK 16")
	trm.cmpOutput("")

	trm.sndInput("LIST BREAKS")
	trm.cmpOutput(" 0: PC->0x10")

	// the same breakpoint cannot be added twice
	trm.sndInput("BREAK 16")
	trm.cmpOutput("error on break: already exists (PC->0x10)")

	// a single BREAK command can add more than one breakpoint
	trm.sndInput("BREAK 17 18")
	trm.cmpOutput("")

	trm.sndInput("LIST BREAKS")
	trm.cmpOutput(" 2: PC->0x12")

	// breakpoint addresses share the range of the program counter
	trm.sndInput("BREAK 256")
	trm.cmpOutput("error on break: address (256) is outside the program counter range")

	trm.sndInput("DROP BREAK 0")
	trm.cmpOutput("breakpoint #0 dropped")

	trm.sndInput("LIST BREAKS")
	trm.cmpOutput(" 1: PC->0x12")

	trm.sndInput("DROP BREAK 5")
	trm.cmpOutput("breakpoint #5 is not defined")

	trm.sndInput("CLEAR BREAKS")
	trm.cmpOutput("breakpoints cleared")

	trm.sndInput("LIST BREAKS")
	trm.cmpOutput("no breakpoints")
}
