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

//go:build !windows

package colorterm

import (
	"github.com/gopherpico/gopherpico/debugger/terminal"
	"github.com/gopherpico/gopherpico/debugger/terminal/colorterm/easyterm/ansi"
)

// TermPrintLine implements the terminal.Output interface.
func (ct *ColorTerminal) TermPrintLine(style terminal.Style, s string) {
	// echoed input is already visible in this type of terminal
	if style == terminal.StyleEcho {
		return
	}

	ct.EasyTerm.TermPrint("\r")

	switch style {
	case terminal.StyleHelp:
		ct.EasyTerm.TermPrint(ansi.DimPens["white"])
	case terminal.StylePromptInstructionStep:
		ct.EasyTerm.TermPrint(ansi.PenStyles["bold"])
	case terminal.StylePromptTickStep:
		ct.EasyTerm.TermPrint(ansi.DimPens["white"])
	case terminal.StylePromptConfirm:
		ct.EasyTerm.TermPrint(ansi.Pens["blue"])
	case terminal.StyleFeedback:
		ct.EasyTerm.TermPrint(ansi.DimPens["white"])
	case terminal.StyleInstructionStep:
		ct.EasyTerm.TermPrint(ansi.Pens["yellow"])
	case terminal.StyleTickStep:
		ct.EasyTerm.TermPrint(ansi.DimPens["yellow"])
	case terminal.StyleLog:
		ct.EasyTerm.TermPrint(ansi.Pens["cyan"])
	case terminal.StyleError:
		ct.EasyTerm.TermPrint(ansi.Pens["red"])
		ct.EasyTerm.TermPrint("* ")
	}

	ct.EasyTerm.TermPrint(s)
	ct.EasyTerm.TermPrint(ansi.NormalPen)

	// add a newline for anything other than a prompt. the cursor should sit
	// at the end of a prompt line
	if !style.IsPrompt() {
		ct.EasyTerm.TermPrint("\n")
	}
}
