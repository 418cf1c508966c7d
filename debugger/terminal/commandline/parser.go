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
	"strings"
)

// ParseCommandTemplate turns a string representation of a command template
// into a machine friendly representation.
//
// Syntax
//
//	[ a ]	required group
//	( a )	optional group
//	{ a }	repeat group
//	a | b	alternatives within a group
//
// groups can be embedded in one another. a group must be separated from its
// surroundings with whitespace.
//
// Placeholders
//
//	%N	numeric argument
//	%P	floating-point argument
//	%S	string argument
//	%F	file name argument
//
// a placeholder can be labelled for the purposes of help and usage text. for
// example: %<address>N. a label can contain spaces.
func ParseCommandTemplate(template []string) (*Commands, error) {
	cmds := &Commands{
		Index: make(map[string]*node),
		cmds:  make([]*node, 0, len(template)),
	}

	for t := range template {
		defn := strings.TrimSpace(template[t])
		if defn == "" {
			return nil, fmt.Errorf("parsing: empty definition (line %d)", t)
		}

		p, d, err := parseDefinition(defn, "")
		if err != nil {
			return nil, fmt.Errorf("parsing: %s: %s (char %d)", defn, err, d)
		}

		// check that the command has not already been defined
		if _, ok := cmds.Index[p.tag]; ok {
			return nil, fmt.Errorf("parsing: %s: already defined", p.tag)
		}

		cmds.cmds = append(cmds.cmds, p)
		cmds.Index[p.tag] = p
	}

	return cmds, nil
}

// parseDefinition parses a single definition from a command template. the
// trigger argument identifies the delimiter that opened the current group. an
// empty trigger means we're at the root of the definition.
//
// the function is recursive. each invocation deals with one group. the int
// return value is the number of characters consumed which, in the case of an
// error, is also the position of the error.
func parseDefinition(defn string, trigger string) (*node, int, error) {
	// the typ given to every node at this level of the definition
	var typ nodeType
	switch trigger {
	case "":
		typ = nodeRoot
	case "(":
		typ = nodeOptional
	case "[":
		typ = nodeRequired
	case "{":
		// repeat groups are optional groups that can recur
		typ = nodeOptional
	default:
		return nil, 0, fmt.Errorf("unknown group type (%s)", trigger)
	}

	// the first node of the current alternative. sequence nodes are chained
	// to the next array of this node
	var alt *node

	// alternatives completed so far, separated by the | indicator
	alts := make([]*node, 0)

	// the word currently being scanned
	word := strings.Builder{}

	// addWord adds the scanned word to the current alternative
	addWord := func() error {
		if word.Len() == 0 {
			return nil
		}
		defer word.Reset()

		tag, label, err := parseTag(word.String())
		if err != nil {
			return err
		}

		n := &node{tag: tag, placeholderLabel: label, typ: typ}
		if alt == nil {
			alt = n
		} else {
			alt.next = append(alt.next, n)
		}
		return nil
	}

	// addGroup adds a parsed nested group to the current alternative. a
	// group at the head of an alternative is hung from a node with an empty
	// tag
	addGroup := func(g *node) {
		if alt == nil {
			alt = &node{typ: typ}
		}
		alt.next = append(alt.next, g)
	}

	// endAlt completes the current alternative
	endAlt := func() error {
		if err := addWord(); err != nil {
			return err
		}
		if alt == nil {
			return fmt.Errorf("empty alternative")
		}
		alts = append(alts, alt)
		alt = nil
		return nil
	}

	// assemble the group node from the gathered alternatives. the first
	// alternative is the spine of the group, the others branch from it
	assemble := func() (*node, error) {
		if err := endAlt(); err != nil {
			return nil, err
		}
		g := alts[0]
		if len(alts) > 1 {
			g.branch = alts[1:]
		}
		if trigger == "{" {
			g.repeatStart = true

			// every alternative loops back to the group opener
			g.repeat = g
			for _, b := range g.branch {
				b.repeat = g
			}
		}
		return g, nil
	}

	// set when the scan is inside a placeholder label. the label is opaque
	// text so spaces and group indicators lose their syntactic meaning
	inLabel := false

	i := 0
	for i < len(defn) {
		c := defn[i]
		i++

		if inLabel {
			word.WriteByte(c)
			if c == '>' {
				inLabel = false
			}
			continue
		}

		if c == '<' && word.String() == "%" {
			inLabel = true
			word.WriteByte(c)
			continue
		}

		switch c {
		case ' ':
			if err := addWord(); err != nil {
				return nil, i, err
			}

		case '(', '[', '{':
			if word.Len() > 0 {
				return nil, i, fmt.Errorf("group indicators must be separated from other characters")
			}
			if trigger == "" && alt == nil {
				return nil, i, fmt.Errorf("command must begin with a keyword")
			}

			sub, d, err := parseDefinition(defn[i:], string(c))
			i += d
			if err != nil {
				return nil, i, err
			}
			addGroup(sub)

		case ')', ']', '}':
			var open string
			switch c {
			case ')':
				open = "("
			case ']':
				open = "["
			case '}':
				open = "{"
			}
			if trigger != open {
				return nil, i, fmt.Errorf("unexpected group close (%c)", c)
			}

			n, err := assemble()
			if err != nil {
				return nil, i, err
			}
			return n, i, nil

		case '|':
			if trigger == "" {
				return nil, i, fmt.Errorf("alternatives are not allowed outside of a group")
			}
			if err := endAlt(); err != nil {
				return nil, i, err
			}

		default:
			word.WriteByte(c)
		}
	}

	if trigger != "" {
		return nil, i, fmt.Errorf("unclosed group (%s)", trigger)
	}

	n, err := assemble()
	if err != nil {
		return nil, i, err
	}
	return n, i, nil
}

// parseTag normalises a word from a command definition. keywords are
// uppercased and placeholder directives are checked for validity. returns the
// tag and the placeholder label, if any.
func parseTag(word string) (string, string, error) {
	if word[0] != '%' {
		if strings.ContainsRune(word, '%') {
			return "", "", fmt.Errorf("placeholder directives must be separated from other characters (%s)", word)
		}
		return strings.ToUpper(word), "", nil
	}

	var label string

	directive := word[1:]
	if directive != "" && directive[0] == '<' {
		end := strings.IndexRune(directive, '>')
		if end == -1 {
			return "", "", fmt.Errorf("unclosed placeholder label (%s)", word)
		}
		label = directive[1:end]
		directive = directive[end+1:]
	}

	if directive == "" {
		return "", "", fmt.Errorf("orphaned placeholder directive (%s)", word)
	}
	if len(directive) > 1 {
		return "", "", fmt.Errorf("placeholder directives must be separated from other characters (%s)", word)
	}

	switch strings.ToUpper(directive) {
	case "N", "P", "S", "F":
		return fmt.Sprintf("%%%s", strings.ToUpper(directive)), label, nil
	case "%":
		return "%%", label, nil
	}

	return "", "", fmt.Errorf("unknown placeholder directive (%s)", word)
}
