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
	"os"
	"os/signal"
	"strings"

	"github.com/gopherpico/gopherpico/debugger/script"
	"github.com/gopherpico/gopherpico/debugger/terminal"
	"github.com/gopherpico/gopherpico/debugger/terminal/commandline"
	"github.com/gopherpico/gopherpico/hardware"
	"github.com/gopherpico/gopherpico/programloader"
)

// Debugger is the command line debugging interface to the emulated
// machine.
type Debugger struct {
	// the machine being debugged
	pico *hardware.PicoRV

	// the most recently loaded program. kept for the LOADER command
	loader programloader.Loader

	// the terminal the user is talking to us with
	term terminal.Terminal

	// buffer for user input
	input []byte

	// events channel monitored while waiting for input. ctrl-c events
	// arrive here when the emulation is running freely
	events *terminal.ReadEvents

	// record user input to a script file
	scriptScribe script.Scribe

	// halt conditions
	breakpoints *breakpoints

	// quantum to use when stepping/running
	quantum Quantum

	// position in the three tick load/execute rhythm. only ever
	// non-zero when stepping by ticks
	tickPhase int

	// the instruction word fetched on the first tick of the rhythm. the
	// high byte of it is needed on the second tick
	tickWord uint16

	// commandOnStep is the command sequence to run after every step
	commandOnStep       string
	commandOnStepStored string

	// number of outstanding steps requested by the STEP command. zero
	// means no step count is in progress
	stepsRemaining int

	// whether the debugger is to continue with the debugging loop. set
	// to false only when the debugger is to finish
	running bool

	// continue the emulation until a halt condition is encountered
	runUntilHalt bool

	// continue the emulation for at least one more step. set after
	// every parsed command
	continueEmulation bool

	// any error from the previous emulation step. a halt condition
	lastStepError bool
}

// NewDebugger creates and initialises everything required by the
// debugger.
func NewDebugger(term terminal.Terminal) (*Debugger, error) {
	dbg := &Debugger{
		pico: hardware.NewPicoRV(),
		term: term,
	}

	dbg.breakpoints = newBreakpoints(dbg)

	// allocate memory for user input
	dbg.input = make([]byte, 255)

	// any ctrl-c events that occur while the machine is running are
	// passed to the input loop through this channel
	dbg.events = &terminal.ReadEvents{
		IntEvents: make(chan os.Signal, 1),
	}
	signal.Notify(dbg.events.IntEvents, os.Interrupt)

	dbg.running = true

	return dbg, nil
}

// Start the main debugging sequence. The screen is the terminal given to
// NewDebugger. If the initScript argument is not empty the commands in
// the named file run before the interactive session begins.
func (dbg *Debugger) Start(initScript string, prog programloader.Loader) error {
	err := dbg.term.Initialise()
	if err != nil {
		return fmt.Errorf("debugger: %w", err)
	}
	defer dbg.term.CleanUp()

	dbg.term.RegisterTabCompletion(commandline.NewTabCompletion(debuggerCommands))

	if prog.Filename != "" {
		err = dbg.loadProgram(prog)
		if err != nil {
			dbg.printLine(terminal.StyleError, "%s", err)
		}
	}

	// run initialisation script. a missing script is not an error
	if initScript != "" {
		scr, err := script.RescribeScript(initScript)
		if err == nil {
			err = dbg.inputLoop(scr)
			if err != nil {
				return fmt.Errorf("debugger: %w", err)
			}
		}
	}

	err = dbg.inputLoop(dbg.term)
	if err != nil {
		return fmt.Errorf("debugger: %w", err)
	}

	return nil
}

// loadProgram into the machine. the machine resets and the program runs
// from address zero.
func (dbg *Debugger) loadProgram(prog programloader.Loader) error {
	err := prog.Load()
	if err != nil {
		return err
	}

	dbg.loader = prog
	dbg.pico.AttachProgram(prog)
	dbg.tickPhase = phaseLowByte

	return nil
}

// parseInput splits the input into individual commands, divided by
// semicolons, and passes each one to parseCommand.
//
// the interactive argument should be true if the input has come from the
// user directly rather than from a playing script.
//
// the auto argument should be true if the command is being run as part
// of ONSTEP.
//
// returns a boolean stating whether the emulation should continue with
// the next step.
func (dbg *Debugger) parseInput(input string, interactive bool, auto bool) (bool, error) {
	var stepNext bool
	var err error

	// ignore comments
	if strings.HasPrefix(strings.TrimSpace(input), "#") {
		return false, nil
	}

	// divide input if necessary
	commands := strings.Split(input, ";")

	for i := range commands {
		stepNext, err = dbg.parseCommand(commands[i], interactive, !auto)
		if err != nil {
			// we don't want to record bad commands in the script
			dbg.scriptScribe.Rollback()
			return false, err
		}
	}

	return stepNext, nil
}

// parseCommand tokenises the single command and, if it is valid, acts
// upon it.
//
// the scribe argument should be true if a valid command is to be written
// to any script being recorded.
func (dbg *Debugger) parseCommand(cmd string, scribe bool, echo bool) (bool, error) {
	tokens := commandline.TokeniseInput(cmd)

	// if there are no tokens in the input then the user has pressed
	// return with no command. act as though the STEP command was given
	if tokens.Remaining() == 0 {
		return true, nil
	}

	// check validity of tokenised input
	err := debuggerCommands.ValidateTokens(tokens)
	if err != nil {
		return false, err
	}

	// print normalised input if this is an echoing command source
	if echo {
		dbg.printLine(terminal.StyleEcho, tokens.String())
	}

	// test to see if command is allowed when recording a script
	if dbg.scriptScribe.IsActive() && scribe {
		tokens.Reset()

		err := scriptUnsafeCommands.ValidateTokens(tokens)

		// fail when the tokens DO match the scriptUnsafe template,
		// ie. when there is no error from the validate function
		if err == nil {
			return false, fmt.Errorf("debugger: %s is unsafe to use in scripts", tokens.String())
		}

		// record command in the script. if the command subsequently
		// fails the write is rolled back
		dbg.scriptScribe.WriteInput(tokens.String())
	}

	tokens.Reset()
	return dbg.processTokens(tokens)
}
