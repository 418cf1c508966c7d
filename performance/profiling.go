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

package performance

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
)

// ProfileCPU runs the supplied function, writing a pprof CPU profile to
// the specified file.
func ProfileCPU(outFile string, run func() error) error {
	f, err := os.Create(outFile)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}
	defer f.Close()

	err = pprof.StartCPUProfile(f)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}
	defer pprof.StopCPUProfile()

	return run()
}

// ProfileMem writes a pprof memory profile to the specified file,
// recording the heap as it stands at the time of the call.
func ProfileMem(outFile string) error {
	f, err := os.Create(outFile)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}
	defer f.Close()

	runtime.GC()

	err = pprof.WriteHeapProfile(f)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	return nil
}
