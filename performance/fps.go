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

// Package performance contains the rate monitor used to observe the serial
// frame rate and the render tick rate.
package performance

import (
	"time"
)

// DefaultWindowLen is the window length used by NewMonitor(). The larger
// the window, the smoother the reported rate.
const DefaultWindowLen = 60

// Monitor measures the rate of a repeating event over a sliding window.
// Call Sample() once per event; Avg(), Min() and Max() report the event
// rate in events-per-second over the window.
//
// Monitor is not safe for concurrent use. Each execution context that wants
// rate information keeps its own Monitor and publishes the results itself.
type Monitor struct {
	windowLen int
	window    []time.Duration
	last      time.Time
}

// NewMonitor is the preferred method of initialisation for the Monitor
// type, using a window of the given number of events. A windowLen of zero
// or less means DefaultWindowLen.
func NewMonitor(windowLen int) *Monitor {
	if windowLen <= 0 {
		windowLen = DefaultWindowLen
	}
	return &Monitor{
		windowLen: windowLen,
		window:    make([]time.Duration, 0, windowLen),
		last:      time.Now(),
	}
}

// Sample the rate. Call once per event.
func (mon *Monitor) Sample() {
	now := time.Now()
	delta := now.Sub(mon.last)
	mon.last = now

	mon.window = append(mon.window, delta)
	if len(mon.window) > mon.windowLen {
		mon.window = mon.window[len(mon.window)-mon.windowLen:]
	}
}

// Avg returns the average event rate over the window.
func (mon *Monitor) Avg() float64 {
	if len(mon.window) == 0 {
		return 0
	}

	var sum time.Duration
	for _, d := range mon.window {
		sum += d
	}

	return float64(len(mon.window)) / sum.Seconds()
}

// Min returns the lowest instantaneous event rate in the window (ie. the
// rate implied by the longest interval between events).
func (mon *Monitor) Min() float64 {
	if len(mon.window) == 0 {
		return 0
	}

	max := mon.window[0]
	for _, d := range mon.window[1:] {
		if d > max {
			max = d
		}
	}
	if max <= 0 {
		return 0
	}

	return 1.0 / max.Seconds()
}

// Max returns the highest instantaneous event rate in the window.
func (mon *Monitor) Max() float64 {
	if len(mon.window) == 0 {
		return 0
	}

	min := mon.window[0]
	for _, d := range mon.window[1:] {
		if d < min {
			min = d
		}
	}
	if min <= 0 {
		return 0
	}

	return 1.0 / min.Seconds()
}

// Reset forgets all samples in the window.
func (mon *Monitor) Reset() {
	mon.window = mon.window[:0]
	mon.last = time.Now()
}
