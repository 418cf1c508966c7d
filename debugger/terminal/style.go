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

// Style is used to identify the category of text being sent to the
// Output interface. Terminal implementations are free to interpret the
// style however is appropriate for their display medium, including
// ignoring it entirely.
type Style int

// List of value Style values.
const (
	// input to the terminal that has been normalised by the command
	// parser. terminals that echo input as it is typed will want to
	// ignore this style
	StyleEcho Style = iota

	// help text
	StyleHelp

	// information in response to a command
	StyleFeedback

	// the disassembled instruction that has just executed
	StyleInstructionStep

	// the state of the machine after a single clock tick
	StyleTickStep

	// an entry from the log
	StyleLog

	// something has gone wrong
	StyleError

	// the prompt for the next command. which prompt style is in use
	// depends on the stepping quantum
	StylePromptInstructionStep
	StylePromptTickStep

	// the prompt for a yes/no confirmation
	StylePromptConfirm
)

// IsPrompt returns true if the style is one of the prompt styles.
func (sty Style) IsPrompt() bool {
	switch sty {
	case StylePromptInstructionStep, StylePromptTickStep, StylePromptConfirm:
		return true
	}
	return false
}

// IncludeInScriptOutput returns true if the style should be recorded,
// as a comment, in any script being written.
func (sty Style) IncludeInScriptOutput() bool {
	switch sty {
	case StyleFeedback, StyleInstructionStep, StyleTickStep:
		return true
	}
	return false
}
