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

// Package debugger implements the command line debugging interface to
// the emulated machine. Features include:
//
//   - program disassembly
//   - register peek and poke
//   - instruction and clock tick stepping
//   - basic scripting
//   - breakpoints
//
// Some of these features come courtesy of other packages, described
// elsewhere, but all are exposed through the debugger package.
//
// Initialisation of the debugger is done with the NewDebugger()
// function
//
//	dbg, _ := debugger.NewDebugger(term)
//
// The term argument must be an instance of a type that satisfies the
// Terminal interface defined in the terminal sub-package. The colorterm
// and plainterm sub-packages provide good reference implementations.
//
// Once initialised, the debugger is started with the Start() function.
//
//	dbg.Start(initScript, prog)
//
// The initScript is a script previously created either by the
// script.Scribe type or by hand. The prog argument is a
// programloader.Loader; one with an empty filename means start with no
// program attached.
//
// Stepping granularity is controlled by the QUANTUM command. The
// default quantum steps a whole instruction at a time. The TICK quantum
// steps a single clock tick, which breaks the serial load handshake
// into its visible parts, a useful view of the machine when studying
// the load protocol itself.
package debugger
