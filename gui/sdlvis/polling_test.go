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
	"testing"

	"github.com/jetsetilly/petvis/test"
)

func TestServiceQueue(t *testing.T) {
	pol := newPolling(nil)

	// draining an empty queue does nothing
	pol.drainService()

	ran := 0
	pol.service <- func() {
		ran++
	}

	// one drain runs the queued function exactly once
	pol.drainService()
	test.Equate(t, ran, 1)
	pol.drainService()
	test.Equate(t, ran, 1)
}
