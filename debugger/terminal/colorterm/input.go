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
	"bufio"
	"fmt"
	"os"
	"unicode"
	"unicode/utf8"

	"github.com/gopherpico/gopherpico/debugger/terminal"
	"github.com/gopherpico/gopherpico/debugger/terminal/colorterm/easyterm"
	"github.com/gopherpico/gopherpico/debugger/terminal/colorterm/easyterm/ansi"
)

type readRune struct {
	r   rune
	err error
}

// runeReader wraps the input file in a goroutine so that runes can be
// received over a channel. buffered runes are what allow TermReadCheck() to
// work.
type runeReader struct {
	buffer *bufio.Reader
	ch     chan readRune
}

func initRuneReader(f *os.File) runeReader {
	rr := runeReader{
		buffer: bufio.NewReader(f),
		ch:     make(chan readRune, 1),
	}

	go func() {
		for {
			r, _, err := rr.buffer.ReadRune()
			rr.ch <- readRune{r: r, err: err}
			if err != nil {
				return
			}
		}
	}()

	return rr
}

// TermReadCheck implements the terminal.Input interface.
func (ct *ColorTerminal) TermReadCheck() bool {
	return len(ct.reader.ch) > 0
}

// TermRead implements the terminal.Input interface.
func (ct *ColorTerminal) TermRead(buffer []byte, prompt terminal.Prompt, events *terminal.ReadEvents) (int, error) {
	ct.RawMode()
	defer ct.CBreakMode()

	// er is used to store encoded runes (length of 4 should be enough)
	er := make([]byte, 4)

	n := 0
	cursor := 0
	history := len(ct.commandHistory)

	// buffInput is used to store the latest input when we scroll through
	// history. we don't want to lose what we've typed in case we want to
	// resume editing where we left off
	buffInput := make([]byte, cap(buffer))
	buffN := 0

	// the method for cursor placement is as follows:
	// 	for each iteration in the loop:
	//		1. store current cursor position
	//		2. clear the current line
	//		3. output the prompt
	//		4. output the input buffer
	//		5. restore the cursor position
	//
	// for this to work we need to place the cursor in its initial position
	// before we begin the loop
	ct.EasyTerm.TermPrint("\r%s", ansi.CursorMove(len(prompt.String())))

	for {
		ct.EasyTerm.TermPrint(ansi.CursorStore)
		ct.TermPrintLine(prompt.Style(), fmt.Sprintf("%s%s", ansi.ClearLine, prompt.String()))
		ct.EasyTerm.TermPrint("%s%s", string(buffer[:n]), ansi.CursorRestore)

		// wait for the next rune, responding to interrupt events in the
		// meantime
		var rr readRune
		if events == nil {
			rr = <-ct.reader.ch
		} else {
			select {
			case rr = <-ct.reader.ch:
			case <-events.IntEvents:
				ct.EasyTerm.TermPrint("\n")
				return 0, terminal.UserInterrupt
			}
		}

		if rr.err != nil {
			return n, rr.err
		}

		switch rr.r {
		case easyterm.KeyTab:
			if ct.tabCompletion != nil {
				s := ct.tabCompletion.Complete(string(buffer[:cursor]))

				// the difference in length between the new input and the
				// old input
				d := len(s) - cursor

				// append everything after the cursor to the new string and
				// copy into the input buffer
				s += string(buffer[cursor:n])
				copy(buffer, []byte(s))

				// advance cursor to the end of the completed word
				ct.EasyTerm.TermPrint(ansi.CursorMove(d))
				cursor += d

				// note the new used-length of the input buffer
				n += d
			}

		case easyterm.KeyInterrupt:
			ct.EasyTerm.TermPrint("\n")
			return n + 1, terminal.UserInterrupt

		case easyterm.KeySuspend:
			// the suspend signal never reaches us in raw mode so we mimic
			// it. the terminal must be usable by the shell while we're
			// suspended
			ct.CanonicalMode()
			easyterm.SuspendProcess()
			ct.RawMode()

		case easyterm.KeyCarriageReturn:
			// check to see if input is the same as the last history entry
			newEntry := false
			if n > 0 {
				newEntry = true
				if len(ct.commandHistory) > 0 {
					lastHistoryEntry := ct.commandHistory[len(ct.commandHistory)-1].input
					if len(lastHistoryEntry) == n {
						newEntry = false
						for i := 0; i < n; i++ {
							if buffer[i] != lastHistoryEntry[i] {
								newEntry = true
								break
							}
						}
					}
				}
			}

			// if input is not the same as the last history entry then append
			// a new entry to the history list
			if newEntry {
				nh := make([]byte, n)
				copy(nh, buffer[:n])
				ct.commandHistory = append(ct.commandHistory, command{input: nh})
			}

			// tab completion can assume the next input starts from scratch
			if ct.tabCompletion != nil {
				ct.tabCompletion.Reset()
			}

			ct.EasyTerm.TermPrint("\n")
			return n + 1, nil

		case easyterm.KeyEsc:
			// ESCAPE SEQUENCE BEGIN
			rr = <-ct.reader.ch
			if rr.err != nil {
				return n, rr.err
			}
			switch rr.r {
			case easyterm.EscCursor:
				// CURSOR KEY
				rr = <-ct.reader.ch
				if rr.err != nil {
					return n, rr.err
				}

				switch rr.r {
				case easyterm.CursorUp:
					// move up through command history
					if len(ct.commandHistory) > 0 {
						// if we're at the end of the command history then
						// store the current input in buffInput for possible
						// later editing
						if history == len(ct.commandHistory) {
							copy(buffInput, buffer[:n])
							buffN = n
						}

						if history > 0 {
							history--
							copy(buffer, ct.commandHistory[history].input)
							n = len(ct.commandHistory[history].input)
							ct.EasyTerm.TermPrint(ansi.CursorMove(n - cursor))
							cursor = n
						}
					}
				case easyterm.CursorDown:
					// move down through command history
					if len(ct.commandHistory) > 0 {
						if history < len(ct.commandHistory)-1 {
							history++
							copy(buffer, ct.commandHistory[history].input)
							n = len(ct.commandHistory[history].input)
							ct.EasyTerm.TermPrint(ansi.CursorMove(n - cursor))
							cursor = n
						} else if history == len(ct.commandHistory)-1 {
							history++
							copy(buffer, buffInput)
							n = buffN
							ct.EasyTerm.TermPrint(ansi.CursorMove(n - cursor))
							cursor = n
						}
					}
				case easyterm.CursorForward:
					// move forward through current command input
					if cursor < n {
						ct.EasyTerm.TermPrint(ansi.CursorForwardOne)
						cursor++
					}
				case easyterm.CursorBackward:
					// move backward through current command input
					if cursor > 0 {
						ct.EasyTerm.TermPrint(ansi.CursorBackwardOne)
						cursor--
					}

				case easyterm.EscDelete:
					// DELETE
					if cursor < n {
						copy(buffer[cursor:], buffer[cursor+1:n])
						n--
						history = len(ct.commandHistory)
					}

					// eat the third character in the sequence
					rr = <-ct.reader.ch
					if rr.err != nil {
						return n, rr.err
					}

				case easyterm.EscHome:
					ct.EasyTerm.TermPrint(ansi.CursorMove(-cursor))
					cursor = 0

				case easyterm.EscEnd:
					ct.EasyTerm.TermPrint(ansi.CursorMove(n - cursor))
					cursor = n
				}
			}

		case easyterm.KeyBackspace:
			// BACKSPACE
			if cursor > 0 {
				copy(buffer[cursor-1:], buffer[cursor:n])
				ct.EasyTerm.TermPrint(ansi.CursorBackwardOne)
				cursor--
				n--
				history = len(ct.commandHistory)
			}

		default:
			if unicode.IsPrint(rr.r) {
				ct.EasyTerm.TermPrint("%c", rr.r)
				m := utf8.EncodeRune(er, rr.r)
				copy(buffer[cursor+m:], buffer[cursor:n])
				copy(buffer[cursor:], er[:m])
				cursor += m
				n += m
				history = len(ct.commandHistory)
			}
		}
	}
}
