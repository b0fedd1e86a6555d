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

// Package curated is the error mechanism used throughout the petvis project.
// Curated errors keep hold of the pattern string they were created with,
// meaning that callers can test for a specific error with Is() or Has()
// without the sentinel-value plumbing of the standard errors package.
//
//	err := serial.Open(device)
//	if curated.Is(err, serial.NoUSBDevice) {
//		...
//	}
//
// Curated errors also normalise the error string as errors bubble up through
// the program, removing the duplicated message parts that naturally occur
// when every layer wraps with its own prefix.
package curated
