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

package debugger

// help contains the help text for the debugger's top level commands
var helps = map[string]string{
	cmdHelp: "Lists commands and provides help for individual debugger commands",

	cmdReset: "Reset the machine to its initial state",
	cmdQuit:  "Exit the debugger",

	cmdRun:     "Run machine until a breakpoint or error, or until interrupted",
	cmdStep:    "Step forward one quantum. Optional argument sets the number of steps",
	cmdQuantum: "Change or display the stepping quantum: INSTRUCTION or TICK",
	cmdScript:  "Run commands from specified file or record commands to a file",

	cmdLoad:      "Load a program into the machine (from file)",
	cmdDisasm:    "Print the disassembly of the attached program",
	cmdOnStep:    "Commands to run after every step (separate commands with comma)",
	cmdLast:      "Print the result of the last executed instruction",
	cmdRegisters: "Display the program counter and the register file",
	cmdPC:        "Display or set the program counter",
	cmdLoader:    "Display the attached program and the serial load unit",
	cmdPins:      "Display the state of the machine's pins",
	cmdPeek:      "Inspect an individual register",
	cmdPoke:      "Modify an individual register",

	// halt conditions
	cmdBreak: "Halt execution when the program counter reaches an address",
	cmdList:  "List current breakpoints",
	cmdDrop:  "Drop a specific breakpoint, using the number reported by LIST",
	cmdClear: "Clear all breakpoints",

	// meta
	cmdLog:      "Display the log of recent machine events",
	cmdMemUsage: "Display memory usage of the debugger process",
	cmdVersion:  "Display version information",
}
