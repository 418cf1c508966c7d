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

// Validate input string against command definitions.
func (cmds Commands) Validate(input string) error {
	return cmds.ValidateTokens(TokeniseInput(input))
}

// ValidateTokens like Validate, but works on tokens rather than an input
// string.
func (cmds Commands) ValidateTokens(tokens *Tokens) error {
	cmd, ok := tokens.Peek()
	if !ok {
		return nil
	}
	cmd = strings.ToUpper(cmd)

	for n := range cmds.cmds {
		if cmd == cmds.cmds[n].tag {
			err := cmds.cmds[n].validate(tokens, false)
			if err != nil {
				return err
			}

			// if we've reached this point and there are still outstanding
			// tokens in the queue then something has gone wrong
			if tokens.Remaining() > 0 {
				arg, _ := tokens.Get()

				// special handling for the help command
				if cmd == cmds.helpCommand {
					return fmt.Errorf("no help for %s", strings.ToUpper(arg))
				}

				return fmt.Errorf("unrecognised argument (%s) for %s", arg, cmd)
			}

			return nil
		}
	}

	return fmt.Errorf("unrecognised command (%s)", cmd)
}

// validate the current token against the node, and then the tokens that
// follow against the node's next/branch/repeat arrays.
//
// the speculative flag indicates that the node is being validated as one of
// many possibilities and that failure is half expected. errors from a
// speculative validation are used to decide whether to try another
// possibility, rather than being shown to the user.
func (n *node) validate(tokens *Tokens, speculative bool) error {
	mark := tokens.curr

	// in the event of there being no more tokens we need to consider whether
	// the current node is optional or not. if it's optional the validation
	// has passed. if not then we return a meaningful and descriptive error.
	tok, ok := tokens.Get()
	if !ok {
		// we treat arguments in the root group as though they are required
		if n.typ == nodeRequired || n.typ == nodeRoot {
			return fmt.Errorf("%s required", n.nodeVerbose())
		}
		return nil
	}

	// a node with an empty tag joins a nested group to the alternatives of
	// its enclosing group. validation moves immediately to the next array.
	//
	// empty tags like this happen as a result of parsing nested groups
	if n.tag == "" {
		if len(n.next) == 0 {
			// this shouldn't ever happen. return a plain error if it does
			return fmt.Errorf("commandline validation: illegal empty node")
		}

		// speculatively validate the sequence in the next array. if it fails
		// we try the branches before settling on the error
		tokens.curr = mark

		var err error
		for ni := range n.next {
			err = n.next[ni].validate(tokens, true)
			if err != nil {
				break
			}
		}

		if err == nil {
			// the nested group has matched. if it opened a repeat group then
			// try for another round
			if n.repeat != nil && tokens.Remaining() > 0 {
				return n.repeat.validate(tokens, false)
			}
			return nil
		}

		for bi := range n.branch {
			tokens.curr = mark
			if n.branch[bi].validate(tokens, true) == nil {
				return nil
			}
		}

		return err
	}

	// normalise hex notation and update the token. this is a blind
	// transformation regardless of tag type so that arguments which accept
	// symbols in addition to numbers are affected too
	if tok[0] == '$' {
		tok = fmt.Sprintf("0x%s", tok[1:])
		tokens.Update(tok)
	}

	// check the current token against the node's tag, using placeholder
	// matching if appropriate.
	//
	// a tentative match is a match that can be usurped by a better one. for
	// example, the word "foo" matches the %F placeholder but if a branch
	// expects the exact keyword FOO then that would be the better match.
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
		// not checking for file existence
		tentativeMatch = true
		match = n.branch == nil

	default:
		// case insensitive matching. n.tag has been normalised already
		tok = strings.ToUpper(tok)
		match = tok == n.tag

		// update token with the normalised string
		if match {
			tokens.Update(tok)
		}
	}

	// if the token doesn't match this node we need to check the branches. a
	// tentative match is put to one side until all branches have been tried.
	if !match {
		for bi := range n.branch {
			tokens.curr = mark
			if n.branch[bi].validate(tokens, true) == nil {
				return nil
			}
		}

		// there's no explicit match in any of the branches. if we have a
		// tentative match then we can use that: the token is consumed
		if tentativeMatch {
			tokens.curr = mark + 1
			match = true
		}
	}

	if !match {
		err := fmt.Errorf("unrecognised argument (%s)", tok)

		// the speculative flag means we were half expecting the failure.
		// return the error without further consideration
		if speculative {
			return err
		}

		// failing to match a non-optional node is a definite error
		if n.typ != nodeOptional {
			return err
		}

		// the node is optional so push the token back and carry on. the
		// token will be considered again by whatever follows
		tokens.curr = mark

		return nil
	}

	// check nodes that follow on from the current node
	for ni := range n.next {
		err := n.next[ni].validate(tokens, false)
		if err != nil {
			return err
		}
	}

	// no more nodes in the next array. move to the repeat node if there is
	// one and if the token queue has advanced
	if n.repeat != nil && tokens.Remaining() > 0 {
		err := n.repeat.validate(tokens, false)
		if err != nil {
			return err
		}
	}

	return nil
}
