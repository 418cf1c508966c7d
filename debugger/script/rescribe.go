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

package script

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gopherpico/gopherpico/debugger/terminal"
)

// ErrEndOfScript is returned by TermRead() when the script has been
// exhausted.
var ErrEndOfScript = errors.New("end of script")

// check if line is prefixed with commentLine (ignoring leading spaces).
func isOutputLine(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), commentLine)
}

// Rescribe represents a previously scribed script. The type implements the
// terminal.Input interface.
type Rescribe struct {
	scriptFile string
	lines      []string
	lineCt     int
}

// RescribeScript is the preferred method of initialisation for the Rescribe
// type.
func RescribeScript(scriptfile string) (*Rescribe, error) {
	f, err := os.Open(scriptfile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("script: no such file (%s)", scriptfile)
		}
		return nil, fmt.Errorf("script: %w", err)
	}
	defer f.Close()

	buffer, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("script: %w", err)
	}

	scr := &Rescribe{scriptFile: scriptfile}

	// convert buffer to an array of lines
	scr.lines = strings.Split(string(buffer), "\n")

	// pass over any lines starting with the commentLine, leaving the line
	// counter at the first input line.
	for scr.lineCt < len(scr.lines) && isOutputLine(scr.lines[scr.lineCt]) {
		scr.lineCt++
	}

	return scr, nil
}

// IsInteractive implements the terminal.Input interface.
func (scr *Rescribe) IsInteractive() bool {
	return false
}

// TermReadCheck implements the terminal.Input interface.
func (scr *Rescribe) TermReadCheck() bool {
	return false
}

// TermRead implements the terminal.Input interface.
func (scr *Rescribe) TermRead(buffer []byte, _ terminal.Prompt, _ *terminal.ReadEvents) (int, error) {
	if scr.lineCt > len(scr.lines)-1 {
		return -1, fmt.Errorf("script: %w (%s)", ErrEndOfScript, scr.scriptFile)
	}

	n := len(scr.lines[scr.lineCt]) + 1
	copy(buffer, scr.lines[scr.lineCt])
	scr.lineCt++

	// pass over any lines starting with the commentLine
	for scr.lineCt < len(scr.lines) && isOutputLine(scr.lines[scr.lineCt]) {
		scr.lineCt++
	}

	return n, nil
}
