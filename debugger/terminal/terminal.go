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

package terminal

import (
	"errors"
	"os"
)

// Sentinal errors returned by TermRead.
var (
	// UserInterrupt is returned when the user has pressed ctrl-c or
	// equivalent while the terminal was waiting for input
	UserInterrupt = errors.New("user interrupt")

	// UserAbort is returned when the user has decisively ended the
	// session, ctrl-d on an empty line for example
	UserAbort = errors.New("user abort")
)

// Input defines the operations required by an interface that allows
// input.
type Input interface {
	// TermRead returns the number of characters inserted into the
	// buffer, or an error, when completed.
	//
	// If possible the TermRead implementation should check the
	// ReadEvents channels for activity while waiting for input. Not all
	// implementations will be able to do so.
	TermRead(buffer []byte, prompt Prompt, events *ReadEvents) (int, error)

	// TermReadCheck returns true if there is input waiting to be read.
	// Implementations that cannot know this can return false.
	TermReadCheck() bool

	// IsInteractive should return true for implementations that expect
	// user interaction. Instances that run prepared input, scripts for
	// example, should return false.
	IsInteractive() bool
}

// ReadEvents should be monitored during a TermRead.
type ReadEvents struct {
	// interrupt signals from the operating system
	IntEvents chan os.Signal
}

// Output defines the operations required by an interface that allows
// output.
type Output interface {
	TermPrintLine(Style, string)
}

// Terminal defines the operations required by the debugger's command
// line interface.
type Terminal interface {
	// Terminal implementations also implement the Input and Output
	// interfaces.
	Input
	Output

	// Initialise the terminal. Not all implementations will need to do
	// anything.
	Initialise() error

	// Restore the terminal to its original state, if possible. For
	// example, returning the terminal to canonical mode.
	CleanUp()

	// Register a tab completion implementation to use with the
	// terminal. Not all implementations need respond meaningfully.
	RegisterTabCompletion(TabCompletion)
}

// TabCompletion defines the operations required for tab completion. A
// good implementation can be found in the commandline sub-package.
type TabCompletion interface {
	Complete(input string) string
	Reset()
}
