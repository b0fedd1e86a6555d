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

package logger_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/petvis/logger"
	"github.com/jetsetilly/petvis/test"
)

func TestLog(t *testing.T) {
	logger.Clear()

	logger.Log("test", "this is a test")
	s := &strings.Builder{}
	logger.Write(s)
	test.Equate(t, s.String(), "test: this is a test\n")

	logger.Logf("test", "this is test %d", 2)
	s.Reset()
	logger.Tail(s, 1)
	test.Equate(t, s.String(), "test: this is test 2\n")

	logger.Clear()
	s.Reset()
	logger.Write(s)
	test.Equate(t, s.String(), "")
}

func TestRepeatFolding(t *testing.T) {
	logger.Clear()

	logger.Log("test", "same detail")
	logger.Log("test", "same detail")
	logger.Log("test", "same detail")

	s := &strings.Builder{}
	logger.Write(s)
	test.Equate(t, s.String(), "test: same detail (repeat x3)\n")
}
