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
	"github.com/veandco/go-sdl2/sdl"
)

// time period in milliseconds that the service loop sleeps for when no SDL
// event arrives. the decay animation needs a steady tick so the period is
// short even when nothing is happening.
const sleepPeriod = 10

type polling struct {
	img *SdlVis

	// wake is used to preempt the timeout when we want to communicate
	// between iterations of the service loop
	wake bool

	// functions that must run on the main thread are queued here and run
	// at the top of wait(), before the next event is serviced
	service chan func()
}

func newPolling(img *SdlVis) *polling {
	return &polling{
		img:     img,
		service: make(chan func(), 1),
	}
}

// alert() forces the next call to wait to resolve immediately.
func (pol *polling) alert() {
	pol.wake = true
}

// run at most one queued service function. never blocks.
func (pol *polling) drainService() {
	select {
	case f := <-pol.service:
		f()
	default:
	}
}

func (pol *polling) wait() sdl.Event {
	pol.drainService()

	var timeout int
	if pol.wake {
		pol.wake = false
	} else {
		timeout = sleepPeriod
	}

	// wait for new SDL event or until the timeout period has elapsed
	return sdl.WaitEventTimeout(timeout)
}
