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

package curated_test

import (
	"testing"

	"github.com/jetsetilly/petvis/curated"
	"github.com/jetsetilly/petvis/test"
)

const testPattern = "test error: %s"

func TestIs(t *testing.T) {
	err := curated.Errorf(testPattern, "detail")
	test.Equate(t, err.Error(), "test error: detail")
	test.ExpectSuccess(t, curated.IsAny(err))
	test.ExpectSuccess(t, curated.Is(err, testPattern))
	test.ExpectFailure(t, curated.Is(err, "some other pattern"))
}

func TestHas(t *testing.T) {
	inner := curated.Errorf(testPattern, "detail")
	outer := curated.Errorf("outer: %v", inner)

	test.ExpectSuccess(t, curated.Has(outer, testPattern))
	test.ExpectSuccess(t, curated.Has(outer, "outer: %v"))
	test.ExpectFailure(t, curated.Has(outer, "not in the chain"))

	// Is() does not look down the chain
	test.ExpectFailure(t, curated.Is(outer, testPattern))
}

func TestNormalisation(t *testing.T) {
	// adjacent duplicate message parts are removed
	inner := curated.Errorf("serial: %v", curated.Errorf("no data"))
	outer := curated.Errorf("serial: %v", inner)
	test.Equate(t, outer.Error(), "serial: no data")
}
