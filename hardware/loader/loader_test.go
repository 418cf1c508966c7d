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

package loader_test

import (
	"testing"

	"github.com/gopherpico/gopherpico/hardware/loader"
	"github.com/gopherpico/gopherpico/test"
)

func TestTwoPhaseTransfer(t *testing.T) {
	ld := loader.NewLoader()
	test.ExpectEquality(t, ld.Phase(), loader.PhaseLow)
	test.ExpectEquality(t, ld.Valid(), false)

	// low byte first. the word is not yet valid
	ld.Tick(0x28, 0x00, true)
	test.ExpectEquality(t, ld.Phase(), loader.PhaseHigh)
	test.ExpectEquality(t, ld.Valid(), false)

	// high byte completes the word
	ld.Tick(0x28, 0x01, true)
	test.ExpectEquality(t, ld.Phase(), loader.PhaseLow)
	test.ExpectEquality(t, ld.Valid(), true)
	test.ExpectEquality(t, ld.Word(), 0x0128)

	// consuming clears validity but not the word itself
	test.ExpectEquality(t, ld.Consume(), 0x0128)
	test.ExpectEquality(t, ld.Valid(), false)
	test.ExpectEquality(t, ld.Word(), 0x0128)
}

func TestIdleTicks(t *testing.T) {
	ld := loader.NewLoader()

	// nothing happens without the strobe
	ld.Tick(0x7f, 0xff, false)
	test.ExpectEquality(t, ld.Phase(), loader.PhaseLow)
	test.ExpectEquality(t, ld.Word(), 0)

	// an interrupted transfer holds its phase across any number of idle
	// ticks and resumes where it left off
	ld.Tick(0x05, 0x00, true)
	for i := 0; i < 100; i++ {
		ld.Tick(0x00, 0x00, false)
	}
	test.ExpectEquality(t, ld.Phase(), loader.PhaseHigh)
	test.ExpectEquality(t, ld.Valid(), false)

	ld.Tick(0x00, 0xe5, true)
	test.ExpectEquality(t, ld.Valid(), true)
	test.ExpectEquality(t, ld.Word(), 0xe505)
}

func TestStrobeBitMask(t *testing.T) {
	ld := loader.NewLoader()

	// bit seven of the low bus is the strobe line, not part of the
	// payload. a low byte with the top bit set arrives with that bit
	// clear
	ld.Tick(0x80|0x28, 0x01, true)
	ld.Tick(0x00, 0x01, true)
	test.ExpectEquality(t, ld.Word(), 0x0128)
}

func TestReset(t *testing.T) {
	ld := loader.NewLoader()
	ld.Tick(0x05, 0x00, true)
	ld.Tick(0x00, 0xe5, true)
	test.ExpectEquality(t, ld.Valid(), true)

	ld.Reset()
	test.ExpectEquality(t, ld.Phase(), loader.PhaseLow)
	test.ExpectEquality(t, ld.Valid(), false)
	test.ExpectEquality(t, ld.Word(), 0)
	test.ExpectEquality(t, ld.String(), "phase=low word=0x0000 valid=false")
}
