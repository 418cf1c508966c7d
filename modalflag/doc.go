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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// At its simplest it can be used as a replacement for the flag package, with
// some differences. Whereas with flag.FlagSet you call Parse() with the array
// of strings as the only argument, with modalflag you first NewArgs() with
// the array of arguments and then Parse() with no arguments. For example
// (note that no error handling of the Parse() function is shown here):
//
//	md = Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	_, _ = md.Parse()
//
// Once the arguments have been parsed, non-flag arguments can be retrieved
// with the RemainingArgs() or GetArg() function. For example, handling
// exactly one argument:
//
//	switch len(md.RemainingArgs()) {
//	case 0:
//		return fmt.Errorf("argument required")
//	case 1:
//		Process(md.GetArg(0))
//	default:
//		return fmt.Errorf("too many arguments")
//	}
//
// Adding flags is similar to the flag package. Adding a boolean flag:
//
//	verbose := md.AddBool("verbose", false, "print additional log messages")
//
// The most important difference between the standard flag package and the
// modalflag package is the ability of the latter to handle "modes". A mode
// is declared with AddSubModes() before the call to Parse(); the mode that
// was found is reported by the Mode() function. Flags for the new mode are
// declared after a call to NewMode(). Repeated sequences of NewMode(),
// flag declarations and Parse() descend through the mode hierarchy.
package modalflag
