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
	"strings"

	"github.com/gopherpico/gopherpico/debugger/terminal"
)

// all print operations from the debugger should be made with the
// printLine() function. output is normalised and sent to the attached
// terminal and to any script being recorded. the TermPrintLine function
// of the terminal implementation should not be used directly.
func (dbg *Debugger) printLine(sty terminal.Style, s string, a ...interface{}) {
	// resolve placeholders outside of the help style. help text is
	// allowed to contain fmt placeholders of its own, the command
	// template is full of them
	if sty != terminal.StyleHelp && len(a) > 0 {
		s = fmt.Sprintf(s, a...)
	}

	// remove all trailing newlines and return if the result is empty
	s = strings.TrimRight(s, "\n")
	if len(s) == 0 {
		return
	}

	dbg.term.TermPrintLine(sty, s)

	// output to script file
	if sty.IncludeInScriptOutput() {
		dbg.scriptScribe.WriteOutput(s)
	}
}

// styleWriter implements the io.Writer interface. it is useful for when
// an io.Writer is required and the output is to be directed to the
// terminal with a single style.
type styleWriter struct {
	dbg   *Debugger
	style terminal.Style
}

func (dbg *Debugger) printStyle(sty terminal.Style) *styleWriter {
	return &styleWriter{
		dbg:   dbg,
		style: sty,
	}
}

func (wrt styleWriter) Write(p []byte) (n int, err error) {
	wrt.dbg.printLine(wrt.style, string(p))
	return len(p), nil
}
