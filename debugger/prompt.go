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

	"github.com/gopherpico/gopherpico/debugger/terminal"
	"github.com/gopherpico/gopherpico/disassembly"
)

// buildPrompt returns a prompt suitable for the next call to TermRead.
// the content is the program counter and the disassembly of the
// instruction it points at.
func (dbg *Debugger) buildPrompt() terminal.Prompt {
	var content string

	addr := dbg.pico.CPU.PC.Address()
	program := dbg.pico.Program()

	if int(addr) < len(program) {
		content = fmt.Sprintf("%#04x %s", addr, disassembly.NewEntry(addr, program[addr]))
	} else {
		content = fmt.Sprintf("%#04x outside program", addr)
	}

	// mid-rhythm the prompt changes to show that the next step is a tick
	// rather than a whole instruction
	typ := terminal.PromptTypeInstructionStep
	if dbg.quantum == QuantumTick && dbg.tickPhase != phaseLowByte {
		typ = terminal.PromptTypeTickStep
	}

	return terminal.Prompt{
		Type:      typ,
		Content:   content,
		Recording: dbg.scriptScribe.IsActive(),
	}
}
