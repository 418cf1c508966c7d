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

import (
	"fmt"
	"runtime"
	"sort"
	"strconv"
	"strings"

	"github.com/gopherpico/gopherpico/debugger/script"
	"github.com/gopherpico/gopherpico/debugger/terminal"
	"github.com/gopherpico/gopherpico/debugger/terminal/commandline"
	"github.com/gopherpico/gopherpico/disassembly"
	"github.com/gopherpico/gopherpico/hardware/cpu/registers"
	"github.com/gopherpico/gopherpico/logger"
	"github.com/gopherpico/gopherpico/paths"
	"github.com/gopherpico/gopherpico/programloader"
	"github.com/gopherpico/gopherpico/version"
)

var debuggerCommands *commandline.Commands
var scriptUnsafeCommands *commandline.Commands

// this init() function "compiles" the commandTemplate above into a more
// usable form. it will cause the program to fail if the template is
// invalid.
func init() {
	var err error

	// parse command template
	debuggerCommands, err = commandline.ParseCommandTemplate(commandTemplate)
	if err != nil {
		panic(err)
	}

	err = debuggerCommands.AddHelp(cmdHelp, helps)
	if err != nil {
		panic(err)
	}
	sort.Sort(debuggerCommands)

	scriptUnsafeCommands, err = commandline.ParseCommandTemplate(scriptUnsafeTemplate)
	if err != nil {
		panic(err)
	}
	sort.Sort(scriptUnsafeCommands)
}

// processTokens() processes the tokens of a single command. returns a
// boolean stating whether the emulation should continue with the next
// step.
func (dbg *Debugger) processTokens(tokens *commandline.Tokens) (bool, error) {
	// most commands do not cause the emulation to step forward
	stepNext := false

	command, _ := tokens.Get()
	command = strings.ToUpper(command)

	switch command {
	default:
		return false, fmt.Errorf("%s is not yet implemented", command)

	// control of the debugger

	case cmdHelp:
		keyword, present := tokens.Get()
		if present {
			dbg.printLine(terminal.StyleHelp, debuggerCommands.Help(keyword))
		} else {
			dbg.printLine(terminal.StyleHelp, debuggerCommands.HelpOverview())
		}

	case cmdQuit:
		dbg.running = false

	case cmdReset:
		dbg.pico.Reset()
		dbg.tickPhase = phaseLowByte
		dbg.printLine(terminal.StyleFeedback, "machine reset")

	case cmdRun:
		if len(dbg.pico.Program()) == 0 {
			return false, fmt.Errorf("no program attached (use %s)", cmdLoad)
		}
		dbg.runUntilHalt = true
		stepNext = true

	case cmdStep:
		num, present := tokens.Get()
		if present {
			count, err := strconv.Atoi(num)
			if err != nil || count < 1 {
				return false, fmt.Errorf("step count must be a positive number (%s)", num)
			}
			dbg.stepsRemaining = count
			dbg.runUntilHalt = true
		}
		stepNext = true

	case cmdQuantum:
		mode, present := tokens.Get()
		if present {
			mode = strings.ToUpper(mode)
			switch mode {
			case "INSTRUCTION":
				dbg.quantum = QuantumInstruction
			case "TICK":
				dbg.quantum = QuantumTick
			default:
				return false, fmt.Errorf("unknown quantum mode (%s)", mode)
			}
		}
		dbg.printLine(terminal.StyleFeedback, "quantum: %s", dbg.quantum)

	case cmdScript:
		option, _ := tokens.Get()
		switch strings.ToUpper(option) {
		case "RECORD":
			saveFile, present := tokens.Get()
			if !present {
				name := ""
				if dbg.loader.HasLoaded() {
					name = dbg.loader.Name()
				}
				saveFile = paths.UniqueFilename("script", name)
			}
			err := dbg.scriptScribe.StartSession(saveFile)
			if err != nil {
				return false, err
			}

		case "END":
			// the SCRIPT END command is still pending in the scribe at
			// this point. rolling back before ending the session keeps
			// it out of the recording
			dbg.scriptScribe.Rollback()
			err := dbg.scriptScribe.EndSession()
			if err != nil {
				return false, err
			}

		default:
			// run a script
			scr, err := script.RescribeScript(option)
			if err != nil {
				return false, err
			}

			if dbg.scriptScribe.IsActive() {
				// if we're currently recording a script we want to
				// embed the SCRIPT command in the new script file
				// rather than the individual commands it plays back
				dbg.scriptScribe.StartPlayback()
				defer dbg.scriptScribe.EndPlayback()
			}

			err = dbg.inputLoop(scr)
			if err != nil {
				return false, err
			}
		}

	// information about the attached program

	case cmdLoad:
		filename, _ := tokens.Get()
		err := dbg.loadProgram(programloader.NewLoader(filename))
		if err != nil {
			return false, err
		}
		dbg.printLine(terminal.StyleFeedback, "machine reset with new program (%s)", dbg.loader.Name())

	case cmdDisasm:
		if len(dbg.pico.Program()) == 0 {
			return false, fmt.Errorf("no program attached (use %s)", cmdLoad)
		}
		err := disassembly.Write(dbg.printStyle(terminal.StyleFeedback), disassembly.FromProgram(dbg.pico.Program()))
		if err != nil {
			return false, err
		}

	case cmdLoader:
		if dbg.loader.HasLoaded() {
			dbg.printLine(terminal.StyleFeedback, dbg.loader.String())
			dbg.printLine(terminal.StyleFeedback, "sha1: %s", dbg.loader.Hash)
		} else {
			dbg.printLine(terminal.StyleFeedback, "no program loaded")
		}
		dbg.printLine(terminal.StyleFeedback, dbg.pico.CPU.Loader.String())

	// auto-commands

	case cmdOnStep:
		if tokens.Remaining() == 0 {
			dbg.commandOnStep = dbg.commandOnStepStored
		} else {
			option, _ := tokens.Peek()
			if strings.ToUpper(option) == "OFF" {
				dbg.commandOnStep = ""
				dbg.printLine(terminal.StyleFeedback, "no auto-command on step")
				return false, nil
			}
			if strings.ToUpper(option) == "ECHO" {
				dbg.printLine(terminal.StyleFeedback, "auto-command on step: %s", dbg.commandOnStep)
				return false, nil
			}

			// the remainder of the command line forms the command
			// sequence. commas act as an alternative to semicolons,
			// which have already been consumed by parseInput()
			dbg.commandOnStep = strings.Replace(tokens.Remainder(), ",", ";", -1)

			// store the new command so we can reuse it after an OFF
			dbg.commandOnStepStored = dbg.commandOnStep
		}

		dbg.printLine(terminal.StyleFeedback, "auto-command on step: %s", dbg.commandOnStep)

		// run the new onstep command(s) immediately
		_, err := dbg.parseInput(dbg.commandOnStep, false, true)
		return false, err

	// information about the machine

	case cmdLast:
		if dbg.pico.CPU.Executed == 0 {
			dbg.printLine(terminal.StyleFeedback, "no instructions have been executed")
		} else {
			dbg.printLine(terminal.StyleInstructionStep, disassembly.FormatResult(dbg.pico.CPU.LastResult))
		}

	case cmdRegisters:
		dbg.printLine(terminal.StyleFeedback, dbg.pico.CPU.String())

	case cmdPC:
		value, present := tokens.Get()
		if present {
			addr, err := strconv.ParseUint(value, 0, 8)
			if err != nil {
				return false, fmt.Errorf("program counter value must be an eight bit number (%s)", value)
			}
			dbg.pico.CPU.PC.Load(uint8(addr))
		}
		dbg.printLine(terminal.StyleFeedback, "PC=%s", dbg.pico.CPU.PC)

	case cmdPins:
		dbg.printLine(terminal.StyleFeedback, dbg.pico.Pins.String())

	case cmdPeek:
		a, present := tokens.Get()
		for present {
			reg, err := strconv.ParseUint(a, 0, 8)
			if err != nil || reg >= registers.NumRegisters {
				dbg.printLine(terminal.StyleError, "not a register (%s)", a)
			} else {
				dbg.printLine(terminal.StyleFeedback, dbg.pico.CPU.Regs.Register(uint8(reg)).String())
			}
			a, present = tokens.Get()
		}

	case cmdPoke:
		r, _ := tokens.Get()
		reg, err := strconv.ParseUint(r, 0, 8)
		if err != nil || reg >= registers.NumRegisters {
			return false, fmt.Errorf("not a register (%s)", r)
		}

		v, _ := tokens.Get()
		val, err := strconv.ParseUint(v, 0, 8)
		if err != nil {
			return false, fmt.Errorf("poke value must be an eight bit number (%s)", v)
		}

		// pokes to the zero register have no effect, as with any other
		// write. the feedback line shows the value that stuck
		dbg.pico.CPU.Regs.Write(uint8(reg), uint8(val))
		dbg.printLine(terminal.StyleFeedback, dbg.pico.CPU.Regs.Register(uint8(reg)).String())

	// halt conditions

	case cmdBreak:
		err := dbg.breakpoints.parseCommand(tokens)
		if err != nil {
			return false, fmt.Errorf("error on break: %w", err)
		}

	case cmdList:
		list, _ := tokens.Get()
		list = strings.ToUpper(list)
		switch list {
		case "BREAKS":
			dbg.breakpoints.list()
		default:
			return false, fmt.Errorf("unknown list option (%s)", list)
		}

	case cmdDrop:
		drop, _ := tokens.Get()

		s, _ := tokens.Get()
		num, err := strconv.Atoi(s)
		if err != nil {
			return false, fmt.Errorf("drop attribute must be a decimal number (%s)", s)
		}

		drop = strings.ToUpper(drop)
		switch drop {
		case "BREAK":
			err := dbg.breakpoints.drop(num)
			if err != nil {
				return false, err
			}
			dbg.printLine(terminal.StyleFeedback, "breakpoint #%d dropped", num)
		default:
			return false, fmt.Errorf("unknown drop option (%s)", drop)
		}

	case cmdClear:
		clear, _ := tokens.Get()
		clear = strings.ToUpper(clear)
		switch clear {
		case "BREAKS":
			dbg.breakpoints.clear()
			dbg.printLine(terminal.StyleFeedback, "breakpoints cleared")
		default:
			return false, fmt.Errorf("unknown clear option (%s)", clear)
		}

	// meta

	case cmdLog:
		option, present := tokens.Get()
		if present {
			option = strings.ToUpper(option)
			switch option {
			case "LAST":
				logger.Tail(dbg.printStyle(terminal.StyleLog), 1)
			case "RECENT":
				logger.WriteRecent(dbg.printStyle(terminal.StyleLog))
			case "CLEAR":
				logger.Clear()
			}
		} else {
			logger.Write(dbg.printStyle(terminal.StyleLog))
		}

	case cmdMemUsage:
		var m runtime.MemStats
		runtime.ReadMemStats(&m)

		dbg.printLine(terminal.StyleFeedback, "Alloc = %v MB", m.Alloc/1048576)
		dbg.printLine(terminal.StyleFeedback, "TotalAlloc = %v MB", m.TotalAlloc/1048576)
		dbg.printLine(terminal.StyleFeedback, "Sys = %v MB", m.Sys/1048576)
		dbg.printLine(terminal.StyleFeedback, "NumGC = %v", m.NumGC)

	case cmdVersion:
		ver, rev, _ := version.Version()
		option, present := tokens.Get()
		if present {
			option = strings.ToUpper(option)
			switch option {
			case "REVISION":
				dbg.printLine(terminal.StyleFeedback, rev)
			}
		} else {
			dbg.printLine(terminal.StyleFeedback, "%s (%s)", version.ApplicationName, ver)
		}
	}

	return stepNext, nil
}
