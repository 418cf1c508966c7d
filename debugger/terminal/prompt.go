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

import "strings"

// Prompt specifies the prompt text and the prompt style.
type Prompt struct {
	Type PromptType

	// the content
	Content string

	// whether the terminal is recording a script
	Recording bool
}

// PromptType identifies the type of information in the prompt.
type PromptType int

// List of prompt types.
const (
	PromptTypeInstructionStep PromptType = iota
	PromptTypeTickStep
	PromptTypeConfirm
)

// String returns the prompt with "standard" decoration. Good for
// terminals with no graphical capabilities at all.
func (p Prompt) String() string {
	if p.Type == PromptTypeConfirm {
		return p.Content
	}

	s := strings.Builder{}
	s.WriteString("[ ")
	if p.Recording {
		s.WriteString("(rec) ")
	}
	s.WriteString(strings.TrimSpace(p.Content))
	s.WriteString(" ]")

	switch p.Type {
	case PromptTypeInstructionStep:
		s.WriteString(" >> ")
	case PromptTypeTickStep:
		s.WriteString(" > ")
	}

	return s.String()
}

// Style returns the style that should be used to print the prompt.
func (p Prompt) Style() Style {
	switch p.Type {
	case PromptTypeTickStep:
		return StylePromptTickStep
	case PromptTypeConfirm:
		return StylePromptConfirm
	}
	return StylePromptInstructionStep
}
