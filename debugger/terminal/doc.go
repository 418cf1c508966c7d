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

// Package terminal defines the operations required for command line
// interaction with the debugger.
//
// For flexibility, terminal interaction is split across two interfaces,
// Input and Output. These interfaces are combined in the Terminal
// interface, which is the interface used by the debugger. In addition to
// input and output the full Terminal interface requires implementations
// of housekeeping functions best described as initialisation and
// cleaning up.
//
// Two implementations ship with the debugger. The colorterm
// implementation provides history, tab completion and colourised output
// on any ANSI capable terminal. The plainterm implementation does none
// of that and is suitable for dumb terminals and redirected input.
package terminal
