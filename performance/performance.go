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
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/gopherpico/gopherpico/hardware"
	"github.com/gopherpico/gopherpico/programloader"
)

// sentinel error returned by the Run() loop.
var timedOut = errors.New("performance timed out")

// Check the performance of the emulation using the supplied program.
//
// The machine is run flat out for the specified duration and the tick
// and instruction counts over that period are reported. A CPU and memory
// profile is written if the profile argument is true.
func Check(output io.Writer, profile bool, prog programloader.Loader, duration string) error {
	err := prog.Load()
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	pico := hardware.NewPicoRV()
	pico.AttachProgram(prog)

	// parse supplied duration
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	// tick and instruction counts at the start of the measurement period
	startTicks := pico.Ticks
	startInstructions := pico.CPU.Executed

	// run for specified period of time
	runner := func() error {
		// setup trigger that expires when duration has elapsed. signals
		// true when duration has expired. signals false to indicate that
		// performance measurement should start
		timerChan := make(chan bool)

		// force a two second leadtime to allow the run rate to settle
		// down and then restart timer for the specified duration
		//
		// the two second leadtime will put false on the timerChan. the
		// conclusion of the rest of the time will put true on the
		// timerChan.
		go func() {
			time.AfterFunc(2*time.Second, func() {
				// signal parent function that 2 second leadtime has elapsed
				timerChan <- false

				time.AfterFunc(dur, func() {
					timerChan <- true
				})
			})
		}()

		// only check for end of measurement period every PerformanceBrake
		// instructions. checking the timerChan is relatively expensive
		performanceBrake := 0

		// run until specified time elapses
		return pico.Run(func() (bool, error) {
			performanceBrake++
			if performanceBrake >= hardware.PerformanceBrake {
				performanceBrake = 0

				select {
				case v := <-timerChan:
					// timerChan has returned true, which means the
					// measurement period has finished
					if v {
						return false, timedOut
					}

					// timerChan has returned false which indicates that
					// the leadtime has concluded. the performance
					// measurement begins here
					startTicks = pico.Ticks
					startInstructions = pico.CPU.Executed
				default:
				}
			}

			return true, nil
		})
	}

	// launch runner directly or through the CPU profiler, depending on
	// supplied arguments
	if profile {
		err = ProfileCPU("performance.cpu.profile", runner)
	} else {
		err = runner()
	}
	if err != nil {
		if !errors.Is(err, timedOut) {
			return fmt.Errorf("performance: %w", err)
		}
	} else {
		// the only way out of the run loop without the timedOut error is
		// for the program counter to leave the program
		output.Write([]byte("program ended before the measurement period elapsed\n"))
		return nil
	}

	// calculate performance
	numTicks := pico.Ticks - startTicks
	numInstructions := pico.CPU.Executed - startInstructions
	mhz, mips := CalcRate(numTicks, numInstructions, dur.Seconds())
	output.Write([]byte(fmt.Sprintf("%.2f MHz (%d ticks in %.2f seconds) %.2f MIPS\n", mhz, numTicks, dur.Seconds(), mips)))

	if profile {
		return ProfileMem("performance.mem.profile")
	}

	return nil
}
