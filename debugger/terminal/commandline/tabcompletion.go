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
	"fmt"
	"strconv"
	"strings"
)

// TabCompletion keeps track of the most recent tab completion attempt.
type TabCompletion struct {
	cmds *Commands

	options []string
	opt     int

	// the string which prefixes every completion option. in other words, the
	// input string up to and not including the word being completed
	prefix string

	// the value of the previous completion attempt. if the next input to
	// Complete() matches this then we cycle through the options rather than
	// building a new list
	lastCompletion string
}

// NewTabCompletion is the preferred method of initialisation for the
// TabCompletion type. Take a reference to a Commands type.
func NewTabCompletion(cmds *Commands) *TabCompletion {
	tc := &TabCompletion{cmds: cmds}
	tc.Reset()
	return tc
}

// Complete transforms the input such that the last word in the input is
// expanded to meet the closest match in the list of allowed strings.
func (tc *TabCompletion) Complete(input string) string {
	// cycle through options if input string is the same as the last completion
	if len(tc.options) > 0 && input == tc.lastCompletion {
		tc.opt++
		if tc.opt >= len(tc.options) {
			tc.opt = 0
		}

		s := strings.Builder{}
		s.WriteString(tc.prefix)
		s.WriteString(tc.options[tc.opt])
		s.WriteString(" ")
		tc.lastCompletion = s.String()
		return tc.lastCompletion
	}

	// this is a new tab completion session
	tc.Reset()

	tokens := TokeniseInput(input)
	if tokens.Remaining() == 0 {
		return input
	}

	// the word we're trying to complete is the last token in the input. the
	// prefix is everything before it
	stem := strings.ToUpper(tokens.tokens[len(tokens.tokens)-1])
	tc.prefix = strings.Join(tokens.tokens[:len(tokens.tokens)-1], " ")

	if len(tokens.tokens) == 1 {
		// only one token so we're completing a top-level command
		for c := range tc.cmds.cmds {
			if strings.HasPrefix(tc.cmds.cmds[c].tag, stem) {
				tc.options = append(tc.options, tc.cmds.cmds[c].tag)
			}
		}
	} else {
		// more than one token. find the command in the index and walk the
		// node tree, gathering options as we go
		tokens.Reset()
		tok, _ := tokens.Get()
		cmd, ok := tc.cmds.Index[strings.ToUpper(tok)]
		if !ok {
			return input
		}

		for ni := range cmd.next {
			if !cmd.next[ni].guess(tokens, stem, &tc.options, false) {
				break
			}
		}
	}

	if len(tc.options) == 0 {
		return input
	}

	// build the completion string from the prefix and the first option
	s := strings.Builder{}
	s.WriteString(tc.prefix)
	if tc.prefix != "" {
		s.WriteString(" ")
	}
	s.WriteString(tc.options[tc.opt])
	s.WriteString(" ")
	tc.lastCompletion = s.String()
	return tc.lastCompletion
}

// Reset tab completion state.
func (tc *TabCompletion) Reset() {
	tc.options = make([]string, 0)
	tc.opt = 0
	tc.prefix = ""
	tc.lastCompletion = ""
}

// guess works like validate() except that the token queue is not expected to
// satisfy the node tree. when the final token is reached the node's options
// are gathered rather than matched.
//
// the return value indicates whether the guessing process should continue
// with the node's next array. the speculative flag works as it does in
// validate(): a speculative guess that fails to match returns false rather
// than skipping the node.
func (n *node) guess(tokens *Tokens, stem string, opts *[]string, speculative bool) bool {
	save := tokens.curr

	tok, ok := tokens.Get()
	if !ok {
		return false
	}

	// the last token is the one being completed. gather suggestions from
	// this node and its branches
	if tokens.IsEnd() {
		n.gather(stem, opts)
		tokens.Unget()
		return n.typ == nodeOptional
	}

	// empty tag nodes handled in the same way as validate()
	if n.tag == "" {
		tokens.curr = save

		ok := true
		for ni := range n.next {
			if !n.next[ni].guess(tokens, stem, opts, true) {
				ok = false
				break
			}
		}

		if ok {
			if n.repeat != nil {
				return n.repeat.guess(tokens, stem, opts, false)
			}
			return true
		}

		for bi := range n.branch {
			tokens.curr = save
			if n.branch[bi].guess(tokens, stem, opts, true) {
				return true
			}
		}

		tokens.curr = save
		return !speculative && n.typ == nodeOptional
	}

	if tok[0] == '$' {
		tok = fmt.Sprintf("0x%s", tok[1:])
	}

	match := false
	tentativeMatch := false

	switch n.tag {
	case "%N":
		_, e := strconv.ParseInt(tok, 0, 32)
		match = e == nil

	case "%P":
		_, e := strconv.ParseFloat(tok, 32)
		match = e == nil

	case "%S":
		match = true

	case "%F":
		tentativeMatch = true
		match = n.branch == nil

	default:
		match = strings.ToUpper(tok) == n.tag
	}

	if !match {
		for bi := range n.branch {
			tokens.curr = save
			if n.branch[bi].guess(tokens, stem, opts, true) {
				return true
			}
		}

		if tentativeMatch {
			tokens.curr = save + 1
			match = true
		}
	}

	if !match {
		tokens.curr = save
		return !speculative && n.typ == nodeOptional
	}

	for ni := range n.next {
		if !n.next[ni].guess(tokens, stem, opts, false) {
			return false
		}
	}

	if n.repeat != nil {
		return n.repeat.guess(tokens, stem, opts, false)
	}

	return true
}

// gather the node's tag, and the tags of all its branches, into the options
// list. placeholders are not gathered.
func (n *node) gather(stem string, opts *[]string) {
	if n.tag == "" {
		if len(n.next) > 0 {
			n.next[0].gather(stem, opts)
		}
	} else if !n.isPlaceholder() && strings.HasPrefix(n.tag, stem) {
		*opts = append(*opts, n.tag)
	}

	for bi := range n.branch {
		n.branch[bi].gather(stem, opts)
	}
}
