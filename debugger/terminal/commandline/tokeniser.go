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

package commandline

import (
	"strings"
)

// Tokens represents tokenised input. This can be used to walk through the
// input string (using Get()) for eas(ier) parsing.
type Tokens struct {
	input  string
	tokens []string
	curr   int
}

func (tk Tokens) String() string {
	return tk.input
}

// Reset begins the token traversal process from the beginning.
func (tk *Tokens) Reset() {
	tk.curr = 0
}

// End the token traversal process. It can be restarted with the Reset()
// function.
func (tk *Tokens) End() {
	tk.curr = len(tk.tokens)
}

// IsEnd returns true if we're at the end of the token list.
func (tk Tokens) IsEnd() bool {
	return tk.curr >= len(tk.tokens)
}

// Remainder returns the remaining tokens as a string.
func (tk Tokens) Remainder() string {
	return strings.Join(tk.tokens[tk.curr:], " ")
}

// Remaining returns the count of remaining tokens in the token list.
func (tk Tokens) Remaining() int {
	return len(tk.tokens) - tk.curr
}

// Get returns the next token in the list, and a success boolean - if the end
// of the token list has been reached, the function returns false instead of
// true.
func (tk *Tokens) Get() (string, bool) {
	if tk.curr >= len(tk.tokens) {
		return "", false
	}
	tk.curr++
	return tk.tokens[tk.curr-1], true
}

// Unget walks backwards in the token list.
func (tk *Tokens) Unget() {
	if tk.curr > 0 {
		tk.curr--
	}
}

// Peek returns the next token in the list (without advancing the list), and a
// success boolean - if the end of the token list has been reached, the
// function returns false instead of true.
func (tk Tokens) Peek() (string, bool) {
	if tk.curr >= len(tk.tokens) {
		return "", false
	}
	return tk.tokens[tk.curr], true
}

// Update replaces the token last returned by Get() with the new string. used
// to normalise tokens during validation.
func (tk *Tokens) Update(s string) {
	if tk.curr > 0 {
		tk.tokens[tk.curr-1] = s
	}
}

// TokeniseInput creates and returns a new Tokens instance. the input is
// divided into tokens on whitespace boundaries.
func TokeniseInput(input string) *Tokens {
	tk := new(Tokens)
	tk.input = strings.TrimSpace(input)
	tk.tokens = strings.Fields(tk.input)
	return tk
}
