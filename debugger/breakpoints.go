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
	"strconv"
	"strings"

	"github.com/gopherpico/gopherpico/debugger/terminal"
	"github.com/gopherpico/gopherpico/debugger/terminal/commandline"
)

// breakpoints keeps track of all the currently defined breakers.
type breakpoints struct {
	dbg    *Debugger
	breaks []breaker
}

// breaker defines a single break condition, a value the program counter
// must reach.
type breaker struct {
	addr uint8

	// set when the breaker has fired and the program counter is still
	// sitting on the address. prevents a halted machine halting again
	// before it has moved on. cleared when the program counter moves
	// away from the address
	ignore bool
}

func (bk breaker) String() string {
	return fmt.Sprintf("PC->%#02x", bk.addr)
}

// check returns true if the breaker should fire on the current program
// counter value.
func (bk *breaker) check(pc uint8) bool {
	if pc != bk.addr {
		bk.ignore = false
		return false
	}

	if bk.ignore {
		return false
	}

	bk.ignore = true
	return true
}

// newBreakpoints is the preferred method of initialisation for the
// breakpoints type.
func newBreakpoints(dbg *Debugger) *breakpoints {
	bp := &breakpoints{dbg: dbg}
	bp.clear()
	return bp
}

// clear all breakpoints.
func (bp *breakpoints) clear() {
	bp.breaks = make([]breaker, 0, 10)
}

// drop a specific breakpoint by position in list.
func (bp *breakpoints) drop(num int) error {
	if num < 0 || len(bp.breaks)-1 < num {
		return fmt.Errorf("breakpoint #%d is not defined", num)
	}

	h := bp.breaks[:num]
	t := bp.breaks[num+1:]
	bp.breaks = make([]breaker, len(h)+len(t), cap(bp.breaks))
	copy(bp.breaks, h)
	copy(bp.breaks[len(h):], t)

	return nil
}

// check compares the current state of the machine with every breakpoint
// condition. it returns a string listing every condition that matches,
// separated by newlines.
func (bp *breakpoints) check(previousResult string) string {
	pc := bp.dbg.pico.CPU.PC.Address()

	checkString := strings.Builder{}
	checkString.WriteString(previousResult)
	for i := range bp.breaks {
		if bp.breaks[i].check(pc) {
			checkString.WriteString(fmt.Sprintf("break on %s\n", bp.breaks[i]))
		}
	}
	return checkString.String()
}

// list currently defined breakpoints.
func (bp breakpoints) list() {
	if len(bp.breaks) == 0 {
		bp.dbg.printLine(terminal.StyleFeedback, "no breakpoints")
	} else {
		bp.dbg.printLine(terminal.StyleFeedback, "breakpoints:")
		for i := range bp.breaks {
			bp.dbg.printLine(terminal.StyleFeedback, "% 2d: %s", i, bp.breaks[i])
		}
	}
}

// parseCommand takes the tokens of a BREAK command and adds a new
// breakpoint for every address given. addresses must fit inside the
// eight bit program counter.
func (bp *breakpoints) parseCommand(tokens *commandline.Tokens) error {
	newBreaks := make([]breaker, 0, 10)

	tok, present := tokens.Get()
	for present {
		addr, err := strconv.ParseUint(tok, 0, 8)
		if err != nil {
			return fmt.Errorf("address (%s) is outside the program counter range", tok)
		}

		newBreaks = append(newBreaks, breaker{addr: uint8(addr)})

		tok, present = tokens.Get()
	}

	for _, nb := range newBreaks {
		if err := bp.checkBreaker(nb); err != nil {
			return err
		}
		bp.breaks = append(bp.breaks, nb)
	}

	return nil
}

// checkBreaker returns an error if the breaker already exists.
func (bp *breakpoints) checkBreaker(nb breaker) error {
	for _, ob := range bp.breaks {
		if nb.addr == ob.addr {
			return fmt.Errorf("already exists (%s)", ob)
		}
	}
	return nil
}
