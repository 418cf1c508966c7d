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

// Package plainterm implements the Terminal interface for the gopherpico
// debugger. It's as simple as simple can be and offers no special features.
package plainterm

import (
	"fmt"
	"io"
	"os"

	"github.com/gopherpico/gopherpico/debugger/terminal"
	"golang.org/x/term"
)

// PlainTerminal is the default, most basic terminal interface. It keeps the
// terminal in whatever mode it started, probably cooked mode. As such, it
// offers only rudimentary editing facility and little control over output.
type PlainTerminal struct {
	input      io.Reader
	output     io.Writer
	realInput  bool
	realOutput bool
}

// Initialise perfoms any setting up required for the terminal.
func (pt *PlainTerminal) Initialise() error {
	pt.input = os.Stdin
	pt.output = os.Stdout
	pt.realInput = term.IsTerminal(int(os.Stdin.Fd()))
	pt.realOutput = term.IsTerminal(int(os.Stdout.Fd()))
	return nil
}

// CleanUp perfoms any cleaning up required for the terminal.
func (pt *PlainTerminal) CleanUp() {
}

// RegisterTabCompletion adds an implementation of TabCompletion to the
// terminal.
func (pt *PlainTerminal) RegisterTabCompletion(terminal.TabCompletion) {
}

// TermPrintLine implements the terminal.Output interface.
func (pt PlainTerminal) TermPrintLine(style terminal.Style, s string) {
	// we don't need to echo user input for this type of terminal
	if style == terminal.StyleEcho {
		return
	}

	switch style {
	case terminal.StyleError:
		s = fmt.Sprintf("* %s", s)
	}

	pt.output.Write([]byte(s))
	pt.output.Write([]byte("\n"))
}

// TermRead implements the terminal.Input interface.
func (pt PlainTerminal) TermRead(buffer []byte, prompt terminal.Prompt, events *terminal.ReadEvents) (int, error) {
	// insert prompt into the output stream but only when input is coming
	// from a real terminal. prompts are noise when input is piped in
	if pt.realInput {
		pt.output.Write([]byte(prompt.String()))
	}

	n, err := pt.input.Read(buffer)
	if err != nil {
		return 0, err
	}

	// while we were waiting for the call to Read() to return we may have
	// received an interrupt event. if we have then return a UserInterrupt
	// error to the debugging loop
	if events != nil {
		select {
		case <-events.IntEvents:
			return 0, terminal.UserInterrupt
		default:
		}
	}

	return n, nil
}

// TermReadCheck implements the terminal.Input interface.
func (pt *PlainTerminal) TermReadCheck() bool {
	return false
}

// IsInteractive implements the terminal.Input interface.
func (pt *PlainTerminal) IsInteractive() bool {
	return pt.realInput && pt.realOutput
}
