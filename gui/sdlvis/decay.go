// This file is part of Petvis.
//
// Petvis is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Petvis is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Petvis.  If not, see <https://www.gnu.org/licenses/>.

package sdlvis

import (
	"math"
)

// decayNext is the CPU reference for the blend performed by the decay
// shader. A lit pixel snaps to full brightness, an unlit pixel keeps the
// sustain fraction of its previous brightness.
func decayNext(lit float32, prev float32, sustain float32) float32 {
	faded := prev * sustain
	if lit > faded {
		return lit
	}
	return faded
}

// trailFrames is the number of render ticks before a fully lit pixel fades
// below one part in 255, ie. below anything an 8bit display can show. used
// by the controls window to express the sustain value in human terms.
func trailFrames(sustain float64) int {
	if sustain <= 0 {
		return 1
	}
	if sustain >= 1 {
		return math.MaxInt32
	}
	return int(math.Ceil(math.Log(1.0/255.0) / math.Log(sustain)))
}
