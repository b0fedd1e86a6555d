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

package test

import (
	"testing"
)

// Equate is used to test equality between one value and another. Both values
// must be the same comparable type.
//
//	var n int
//	n = someFunction()
//	test.Equate(t, n, 10)
func Equate[T comparable](t *testing.T, value T, expectedValue T) {
	t.Helper()
	if value != expectedValue {
		t.Errorf("equation of type %T failed (%v - wanted %v)", value, value, expectedValue)
	}
}

// EquateTolerance is used to test near-equality between two floating point
// values. The tolerance argument is the maximum absolute difference that is
// accepted as equal.
func EquateTolerance(t *testing.T, value float64, expectedValue float64, tolerance float64) {
	t.Helper()
	diff := value - expectedValue
	if diff < 0 {
		diff = -diff
	}
	if diff > tolerance {
		t.Errorf("equation failed (%v - wanted %v, tolerance %v)", value, expectedValue, tolerance)
	}
}
