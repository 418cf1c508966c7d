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

// debugger keywords
const (
	cmdHelp = "HELP"

	cmdReset = "RESET"
	cmdQuit  = "QUIT"

	cmdRun     = "RUN"
	cmdStep    = "STEP"
	cmdQuantum = "QUANTUM"
	cmdScript  = "SCRIPT"

	cmdLoad      = "LOAD"
	cmdDisasm    = "DISASM"
	cmdOnStep    = "ONSTEP"
	cmdLast      = "LAST"
	cmdRegisters = "REGISTERS"
	cmdPC        = "PC"
	cmdLoader    = "LOADER"
	cmdPins      = "PINS"
	cmdPeek      = "PEEK"
	cmdPoke      = "POKE"

	// halt conditions
	cmdBreak = "BREAK"
	cmdList  = "LIST"
	cmdDrop  = "DROP"
	cmdClear = "CLEAR"

	// meta
	cmdLog      = "LOG"
	cmdMemUsage = "MEMUSAGE"
	cmdVersion  = "VERSION"
)

var commandTemplate = []string{
	cmdReset,
	cmdQuit,

	cmdRun,
	cmdStep + " (%<count>N)",
	cmdQuantum + " (INSTRUCTION|TICK)",
	cmdScript + " [RECORD (%<new file>F)|END|%<file>F]",

	cmdLoad + " %<program file>F",
	cmdDisasm,
	cmdOnStep + " (OFF|ECHO|%<command>S {%<commands>S})",
	cmdLast,
	cmdRegisters,
	cmdPC + " (%<address>N)",
	cmdLoader,
	cmdPins,
	cmdPeek + " [%<register>N] {%<registers>N}",
	cmdPoke + " %<register>N %<value>N",

	// halt conditions
	cmdBreak + " [%<address>N] {%<addresses>N}",
	cmdList + " [BREAKS]",
	cmdDrop + " [BREAK] %<number in list>N",
	cmdClear + " [BREAKS]",

	// meta
	cmdLog + " (LAST|RECENT|CLEAR)",
	cmdMemUsage,
	cmdVersion + " (REVISION)",
}

// list of commands that should not be executed when recording a script.
var scriptUnsafeTemplate = []string{
	cmdScript + " [RECORD (%S)]",
	cmdRun,
}
