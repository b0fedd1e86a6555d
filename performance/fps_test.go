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

package performance_test

import (
	"testing"
	"time"

	"github.com/jetsetilly/petvis/performance"
	"github.com/jetsetilly/petvis/test"
)

func TestEmptyMonitor(t *testing.T) {
	mon := performance.NewMonitor(0)
	test.Equate(t, mon.Avg(), 0.0)
	test.Equate(t, mon.Min(), 0.0)
	test.Equate(t, mon.Max(), 0.0)
}

func TestMonitorRates(t *testing.T) {
	// not asserting exact rates; sleeping in tests is never that accurate.
	// the invariants are enough: rates are positive and min <= avg <= max
	mon := performance.NewMonitor(10)

	for i := 0; i < 5; i++ {
		time.Sleep(5 * time.Millisecond)
		mon.Sample()
	}

	avg := mon.Avg()
	min := mon.Min()
	max := mon.Max()

	test.ExpectSuccess(t, avg > 0)
	test.ExpectSuccess(t, min > 0)
	test.ExpectSuccess(t, min <= avg)
	test.ExpectSuccess(t, avg <= max)

	mon.Reset()
	test.Equate(t, mon.Avg(), 0.0)
}

func TestMonitorWindow(t *testing.T) {
	// the window never grows beyond its length; exercised by sampling many
	// more times than the window is long
	mon := performance.NewMonitor(4)
	for i := 0; i < 100; i++ {
		mon.Sample()
	}
	test.ExpectSuccess(t, mon.Avg() >= 0)
}
