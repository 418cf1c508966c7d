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

// Commands is the root of the node tree. Use ParseCommandTemplate() to
// create a new instance.
type Commands struct {
	Index map[string]*node
	cmds  []*node

	helpCommand string
	helpCols    int
	helpColFmt  string
	helps       map[string]string
}

// Len implements the sort.Interface.
func (cmds Commands) Len() int {
	return len(cmds.cmds)
}

// Less implements the sort.Interface.
func (cmds Commands) Less(i int, j int) bool {
	return cmds.cmds[i].tag < cmds.cmds[j].tag
}

// Swap implements the sort.Interface.
func (cmds Commands) Swap(i int, j int) {
	cmds.cmds[i], cmds.cmds[j] = cmds.cmds[j], cmds.cmds[i]
}

// String returns the verbose representation of the command tree. Most useful
// in testing, when comparing generated trees with what was expected.
func (cmds Commands) String() string {
	s := strings.Builder{}
	for c := range cmds.cmds {
		s.WriteString(fmt.Sprintf("%s\n", cmds.cmds[c].String()))
	}
	return strings.TrimRight(s.String(), "\n")
}

// AddHelp adds a HELP command to an already prepared Commands type. it uses
// the top-level nodes of the existing commands as arguments for HELP.
func (cmds *Commands) AddHelp(helpCommand string, helps map[string]string) error {
	// if helpCommand is already present in command list then there is nothing
	// to do
	if _, ok := cmds.Index[helpCommand]; ok {
		return fmt.Errorf("%s: already defined", helpCommand)
	}

	// keep reference to helpCommand
	cmds.helpCommand = helpCommand

	// keep reference to help text
	cmds.helps = helps

	// length of longest command. used when formatting help overview
	longest := 0

	// build the help command from the current list of commands
	defn := strings.Builder{}
	defn.WriteString(helpCommand)
	defn.WriteString(" (")
	defn.WriteString(cmds.cmds[0].tag)
	if len(cmds.cmds[0].tag) > longest {
		longest = len(cmds.cmds[0].tag)
	}
	for c := 1; c < len(cmds.cmds); c++ {
		defn.WriteString("|")
		if cmds.cmds[c].isPlaceholder() {
			defn.WriteString(cmds.cmds[c].placeholderLabel)
		} else {
			defn.WriteString(cmds.cmds[c].tag)
		}
		if len(cmds.cmds[c].tag) > longest {
			longest = len(cmds.cmds[c].tag)
		}
	}

	// add HELP command itself to list of possible HELP arguments
	defn.WriteString("|")
	defn.WriteString(helpCommand)
	defn.WriteString(")")

	// parse the constructed help definition
	p, d, err := parseDefinition(defn.String(), "")
	if err != nil {
		return fmt.Errorf("%s: %s (char %d)", helpCommand, err, d)
	}

	// add parsed definition to list of commands
	cmds.cmds = append(cmds.cmds, p)
	cmds.Index[helpCommand] = p

	// the number of columns to use when printing the help overview and the
	// formatting string for each column
	cmds.helpCols = 80 / (longest + 3)
	cmds.helpColFmt = fmt.Sprintf("%%%ds", longest+3)

	return nil
}

// HelpOverview returns a columnised list of all the commands in the
// Commands instance.
func (cmds *Commands) HelpOverview() string {
	s := strings.Builder{}
	for c := range cmds.cmds {
		s.WriteString(fmt.Sprintf(cmds.helpColFmt, cmds.cmds[c].tag))
		if (c+1)%cmds.helpCols == 0 {
			s.WriteString("\n")
		}
	}
	return strings.TrimRight(s.String(), "\n")
}

// Help returns the help text for the specified command. A usage summary,
// generated from the command definition, is appended.
func (cmds *Commands) Help(keyword string) string {
	keyword = strings.ToUpper(keyword)

	cmd, ok := cmds.Index[keyword]
	if !ok {
		return fmt.Sprintf("no help for %s", keyword)
	}

	s := strings.Builder{}
	if txt, ok := cmds.helps[keyword]; ok {
		s.WriteString(txt)
	} else {
		s.WriteString(fmt.Sprintf("no help text for %s", keyword))
	}
	s.WriteString("\n\n  Usage: ")
	s.WriteString(cmd.usageString())

	return s.String()
}
