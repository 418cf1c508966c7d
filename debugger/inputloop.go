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
	"errors"
	"io"

	"github.com/gopherpico/gopherpico/debugger/script"
	"github.com/gopherpico/gopherpico/debugger/terminal"
)

// checkEvents polls the event channels and the terminal for activity
// while the emulation is running freely. it returns true if the terminal
// has input waiting, which the caller should treat as a request to pause
// and read it.
func (dbg *Debugger) checkEvents(inputter terminal.Input) bool {
	select {
	case <-dbg.events.IntEvents:
		// ctrl-c while the emulation is running halts the run and
		// returns to the prompt
		dbg.runUntilHalt = false
		dbg.stepsRemaining = 0
	default:
	}

	return inputter.TermReadCheck()
}

// inputLoop is the debugger's main loop. the inputter is the source of
// commands, the interactive terminal usually but a script played with
// the SCRIPT command starts a nested loop with itself as the inputter.
func (dbg *Debugger) inputLoop(inputter terminal.Input) error {
	for dbg.running {
		var checkTerm bool

		if dbg.runUntilHalt {
			checkTerm = dbg.checkEvents(inputter)
		}

		// check for breakpoints in the context of the current program
		// counter
		breakMessage := dbg.breakpoints.check("")

		// check for halt conditions. expand halt to include
		// step-once/many flag
		haltEmulation := breakMessage != "" || dbg.lastStepError || !dbg.runUntilHalt

		// reset last step error
		dbg.lastStepError = false

		if haltEmulation || checkTerm {
			if haltEmulation {
				// print and reset accumulated break messages
				dbg.printLine(terminal.StyleFeedback, breakMessage)

				// any outstanding step count is stale once the emulation
				// has halted
				dbg.stepsRemaining = 0

				// reset run until halt flag - it will be set again if
				// the parsed command requires it (eg. the RUN command)
				dbg.runUntilHalt = false

				// the parsed command decides whether the emulation
				// continues. in the event of a read error there is no
				// parsed command so make sure the emulation stays halted
				dbg.continueEmulation = false
			}

			// get user input
			inputLen, err := inputter.TermRead(dbg.input, dbg.buildPrompt(), dbg.events)

			// errors returned by TermRead() fall into two categories,
			// the sentinel errors that describe a user action and
			// everything else. anything else is passed upwards
			if err != nil {
				if errors.Is(err, io.EOF) {
					// treat EOF errors the same as UserAbort
					err = terminal.UserAbort
				}

				if errors.Is(err, terminal.UserInterrupt) {
					// user interrupts are triggered by the user (in a
					// terminal environment, usually by pressing ctrl-c)
					dbg.handleInterrupt(inputter)
				} else if errors.Is(err, terminal.UserAbort) {
					dbg.running = false
				} else if errors.Is(err, script.ErrEndOfScript) {
					// a script being played back ends with this error.
					// say so with a feedback style (not an error style)
					// and end the loop the script was driving
					dbg.printLine(terminal.StyleFeedback, err.Error())
					return nil
				} else {
					return err
				}

				continue // for loop
			}

			// parse user input, taking note of whether the emulation
			// should continue
			if inputLen > 0 {
				dbg.continueEmulation, err = dbg.parseInput(string(dbg.input[:inputLen-1]), inputter.IsInteractive(), false)
				if err != nil {
					dbg.printLine(terminal.StyleError, "%s", err)
				}
			}

			// if we stopped only to check the terminal then the
			// interrupted run carries on
			if checkTerm && !haltEmulation {
				dbg.continueEmulation = true
			}
		}

		if dbg.continueEmulation {
			err := dbg.step()
			if err != nil {
				// a failed step is a halt condition, not a debugger
				// failure
				dbg.lastStepError = true
				dbg.printLine(terminal.StyleError, "%s", err)
				continue // for loop
			}

			// count down an outstanding STEP argument
			if dbg.stepsRemaining > 0 {
				dbg.stepsRemaining--
				if dbg.stepsRemaining == 0 {
					dbg.runUntilHalt = false
				}
			}

			// input has stepped. run on step command if it is defined
			if dbg.commandOnStep != "" {
				_, err := dbg.parseInput(dbg.commandOnStep, false, true)
				if err != nil {
					dbg.printLine(terminal.StyleError, "%s", err)
				}
			}
		}
	}

	return nil
}

// interrupt errors that are sent back to the debugger need some special
// care depending on the current state.
//
//   - if script recording is active then the recording is ended
//   - for non-interactive input the running flag is cleared immediately
//   - otherwise the user is asked for confirmation that the debugger
//     should quit
func (dbg *Debugger) handleInterrupt(inputter terminal.Input) {
	if dbg.scriptScribe.IsActive() {
		// ctrl-c while a script is being recorded ends the recording,
		// not the debugger
		dbg.scriptScribe.Rollback()
		err := dbg.scriptScribe.EndSession()
		if err != nil {
			dbg.printLine(terminal.StyleError, "%s", err)
		}
		dbg.printLine(terminal.StyleFeedback, "script recording ended")
		return
	}

	if !inputter.IsInteractive() {
		dbg.running = false
		return
	}

	// ask the user if they really want to quit
	confirm := make([]byte, 1)
	_, err := inputter.TermRead(confirm,
		terminal.Prompt{
			Content: "really quit (y/n) ",
			Type:    terminal.PromptTypeConfirm,
		}, dbg.events)

	if err != nil {
		// another UserInterrupt has occurred. we treat that as
		// confirmation
		if errors.Is(err, terminal.UserInterrupt) {
			confirm[0] = 'y'
		} else {
			dbg.printLine(terminal.StyleError, "%s", err)
		}
	}

	if confirm[0] == 'y' || confirm[0] == 'Y' {
		dbg.running = false
	}
}
