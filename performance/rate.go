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

// CalcRate takes tick and instruction counts and a duration (in seconds)
// and returns the effective clock rate in megahertz alongside the
// instruction rate in millions of instructions per second. The two differ
// by a factor of three, the length in ticks of the load/execute rhythm.
func CalcRate(numTicks uint64, numInstructions uint64, duration float64) (mhz float64, mips float64) {
	mhz = float64(numTicks) / duration / 1e6
	mips = float64(numInstructions) / duration / 1e6
	return mhz, mips
}
