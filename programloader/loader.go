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

package programloader

import (
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strconv"
	"strings"

	"github.com/gopherpico/gopherpico/logger"
)

// Loader is used to specify the program to attach to the machine.
type Loader struct {
	// filename of the program to load
	Filename string

	// expected hash of the program file. the empty string means the hash
	// is unknown and need not be validated. after a load operation the
	// value is the hash of the loaded file
	Hash string

	words  []uint16
	loaded bool
}

// FileExtensions is the list of file extensions that are recognised by
// the programloader package.
var FileExtensions = [...]string{".hex", ".bin"}

// NewLoader is the preferred method of initialisation for the Loader
// type. The file itself is not touched until Load is called.
func NewLoader(filename string) Loader {
	return Loader{Filename: filename}
}

// NewLoaderFromData is the preferred method of initialisation in the
// event of the program already being in memory. The filename argument
// names the program and selects the format, nothing is read from it.
func NewLoaderFromData(filename string, data []byte) (Loader, error) {
	ld := NewLoader(filename)
	if err := ld.parse(data); err != nil {
		return Loader{}, err
	}
	return ld, nil
}

// Name returns a shortened version of the loader filename, suitable for
// titles and log lines.
func (ld Loader) Name() string {
	n := path.Base(ld.Filename)
	return strings.TrimSuffix(n, path.Ext(n))
}

func (ld Loader) String() string {
	return fmt.Sprintf("%s (%d words)", ld.Name(), len(ld.words))
}

// HasLoaded returns true if Load has been successfully called.
func (ld Loader) HasLoaded() bool {
	return ld.loaded
}

// Words returns the loaded program. The slice is the loader's own copy
// of the program, not shared with any machine it has been attached to.
func (ld Loader) Words() []uint16 {
	w := make([]uint16, len(ld.words))
	copy(w, ld.words)
	return w
}

// Load the program file and parse it into instruction words. Loader
// filenames with an HTTP scheme are fetched over the network, anything
// else is read from the local filesystem.
func (ld *Loader) Load() error {
	if ld.loaded {
		return nil
	}

	var data []byte

	scheme := ""
	if u, err := url.Parse(ld.Filename); err == nil {
		scheme = u.Scheme
	}

	switch scheme {
	case "http", "https":
		resp, err := http.Get(ld.Filename)
		if err != nil {
			return fmt.Errorf("programloader: %w", err)
		}
		defer resp.Body.Close()

		data, err = io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("programloader: %w", err)
		}

	default:
		var err error
		data, err = os.ReadFile(ld.Filename)
		if err != nil {
			return fmt.Errorf("programloader: %w", err)
		}
	}

	return ld.parse(data)
}

func (ld *Loader) parse(data []byte) error {
	hash := fmt.Sprintf("%x", sha1.Sum(data))
	if ld.Hash != "" && ld.Hash != hash {
		return fmt.Errorf("programloader: unexpected hash value for %s", ld.Filename)
	}
	ld.Hash = hash

	var err error
	switch strings.ToLower(path.Ext(ld.Filename)) {
	case ".bin":
		ld.words, err = parseBin(data)
	default:
		// any extension other than .bin is treated as the text form
		ld.words, err = parseHex(data)
	}
	if err != nil {
		return fmt.Errorf("programloader: %s: %w", ld.Filename, err)
	}

	// the program counter is eight bits wide so an overlong program is
	// not an error, the excess words are simply unreachable
	if len(ld.words) > 256 {
		logger.Logf(logger.Allow, "programloader", "%s is longer than the addressable space (%d words)", ld.Name(), len(ld.words))
	}

	ld.loaded = true
	return nil
}

func parseHex(data []byte) ([]uint16, error) {
	var words []uint16

	for i, line := range strings.Split(string(data), "\n") {
		if idx := strings.Index(line, "#"); idx >= 0 {
			line = line[:idx]
		}
		for _, tok := range strings.Fields(line) {
			t := strings.TrimPrefix(strings.ToLower(tok), "0x")
			w, err := strconv.ParseUint(t, 16, 16)
			if err != nil {
				return nil, fmt.Errorf("not a sixteen bit word on line %d (%s)", i+1, tok)
			}
			words = append(words, uint16(w))
		}
	}

	return words, nil
}

func parseBin(data []byte) ([]uint16, error) {
	if len(data)%2 != 0 {
		return nil, fmt.Errorf("odd number of bytes in binary program")
	}

	words := make([]uint16, 0, len(data)/2)
	for i := 0; i < len(data); i += 2 {
		// low byte first, matching the serial load order of the hardware
		words = append(words, uint16(data[i])|uint16(data[i+1])<<8)
	}

	return words, nil
}
