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

package paths

import (
	"strings"
	"time"
)

// UniqueFilename creates a filename that (assuming a functioning clock)
// should not collide with any existing file. Note that the function does
// not test for this.
//
// Format of returned string is:
//
//	prepend_progname_YYYYMMDD_HHMMSS
//
// Where progname is the short name of the attached program. If there is
// no program name the returned string will be of the format:
//
//	prepend_YYYYMMDD_HHMMSS
func UniqueFilename(prepend string, shortProgName string) string {
	parts := []string{prepend}

	if n := strings.TrimSpace(shortProgName); n != "" {
		parts = append(parts, n)
	}

	parts = append(parts, time.Now().Format("20060102_150405"))

	return strings.Join(parts, "_")
}
