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
	"testing"

	"github.com/jetsetilly/petvis/test"
)

func TestDecayGeometricFade(t *testing.T) {
	const sustain = 0.8

	// an unlit pixel fades by the sustain factor every tick
	v := float32(1.0)
	for i := 1; i <= 10; i++ {
		v = decayNext(0.0, v, sustain)
		expected := math.Pow(sustain, float64(i))
		test.EquateTolerance(t, float64(v), expected, 1e-5)
	}
}

func TestDecayRefresh(t *testing.T) {
	// a lit pixel snaps to full brightness no matter how faded it was
	test.Equate(t, decayNext(1.0, 0.01, 0.8), float32(1.0))

	// and never dips below the faded value of the previous brightness
	test.Equate(t, decayNext(0.0, 0.5, 0.5), float32(0.25))
}

func TestTrailFrames(t *testing.T) {
	// zero sustain clears in a single tick
	test.Equate(t, trailFrames(0.0), 1)

	// sustain^n < 1/255 at the returned count
	for _, sustain := range []float64{0.5, 0.8, 0.95} {
		n := trailFrames(sustain)
		test.ExpectSuccess(t, math.Pow(sustain, float64(n)) < 1.0/255.0)
		test.ExpectSuccess(t, math.Pow(sustain, float64(n-1)) >= 1.0/255.0)
	}
}
