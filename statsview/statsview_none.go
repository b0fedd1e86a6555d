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

//go:build !statsview

// Package statsview is a wrapper around the go-echarts statsview, a web
// based view of the Go runtime (goroutines, GC activity, heap sizes).
// The viewer adds a noticeable amount to the binary so it is only compiled
// in when the "statsview" build tag is given.
package statsview

import (
	"io"
)

// Address of the statsview web server.
const Address = ""

// Launch is a no-op in binaries built without the statsview tag.
func Launch(output io.Writer) {
	output.Write([]byte("no statsview in this build (rebuild with the 'statsview' tag)\n"))
}

// Available returns true if a statsview is available to launch.
func Available() bool {
	return false
}
