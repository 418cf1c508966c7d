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

// Package paths should be used whenever a file is to be read from or
// written to the project's configuration directory. ResourcePath()
// returns the correct path for the resource specified in the arguments,
// creating missing directories as required.
//
// For builds with the "release" build tag, the path is rooted in the
// user's configuration directory. On modern Linux systems the full path
// would be something like:
//
//	/home/user/.config/gopherpico/
//
// For non-release builds, the path is rooted in the current working
// directory:
//
//	.gopherpico
//
// The package does this because during development it is more convenient
// to have the configuration directory close to hand. For release
// binaries however, the directory should be somewhere the end-user
// expects.
package paths
