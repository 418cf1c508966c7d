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

import "path"

// ResourcePath returns the path to the named resource file, prepended
// with the project's configuration directory. Missing directories are
// created as required but the resource file itself is not touched.
func ResourcePath(subPth string, file string) (string, error) {
	pth, err := getBasePath(subPth)
	if err != nil {
		return "", err
	}
	return path.Join(pth, file), nil
}
