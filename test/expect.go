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

// ExpectSuccess is used to test for a positive result. Valid values are bool
// (must be true), error (must be nil) and any nilable value (must not be
// nil).
func ExpectSuccess(t *testing.T, v any) bool {
	t.Helper()

	switch v := v.(type) {
	case bool:
		if !v {
			t.Errorf("expected success (bool is false)")
			return false
		}
	case error:
		if v != nil {
			t.Errorf("expected success (%v)", v)
			return false
		}
	case nil:
		// nil value is a success in this context
	default:
		t.Fatalf("unsupported type (%T) for ExpectSuccess()", v)
		return false
	}

	return true
}

// ExpectFailure is used to test for a negative result. Valid values are bool
// (must be false) and error (must not be nil).
func ExpectFailure(t *testing.T, v any) bool {
	t.Helper()

	switch v := v.(type) {
	case bool:
		if v {
			t.Errorf("expected failure (bool is true)")
			return false
		}
	case error:
		if v == nil {
			t.Errorf("expected failure (error is nil)")
			return false
		}
	case nil:
		t.Errorf("expected failure (value is nil)")
		return false
	default:
		t.Fatalf("unsupported type (%T) for ExpectFailure()", v)
		return false
	}

	return true
}
