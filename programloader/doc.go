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

// Package programloader is responsible for turning program files into
// the instruction words that are attached to the emulated machine.
//
// Two file formats are understood, selected by file extension. A ".hex"
// file is a text file of sixteen bit words in hexadecimal, separated by
// whitespace, with "#" introducing a comment that runs to the end of the
// line. A ".bin" file is raw words, low byte first, the order the
// hardware receives them over the serial bus.
//
// Program files can be loaded from the local filesystem or over HTTP.
package programloader
