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

package protocol

// CharSet identifies which of the two CBM character sets the machine has
// selected. The selection changes how glyph codes map onto the glyph sheet.
type CharSet int

// List of valid CharSet values.
const (
	Graphics CharSet = iota
	Text
)

func (set CharSet) String() string {
	switch set {
	case Graphics:
		return "graphics"
	case Text:
		return "text"
	}
	return "unknown"
}

// Status is the device state decoded from the status buffer.
type Status struct {
	Set CharSet

	// the screen-inverse flag. the exact bit assignment has not been
	// confirmed against real hardware; see StatusTable.
	Inverse bool
}

// StatusTable decodes the data bytes of the status buffer into a Status.
//
// The byte-level encoding of the status buffer is only partially documented:
// the character set selection in byte 0 is confirmed, the remaining bytes
// are not. Keeping the decode behind a table allows the mapping to be
// corrected against real hardware without touching the Decoder.
type StatusTable func(data []byte) Status

// DefaultStatusTable decodes the status bytes as currently understood:
// byte 0 selects the character set (zero for graphics, non-zero for text)
// and bit 0 of byte 1 is read as the screen-inverse flag.
func DefaultStatusTable(data []byte) Status {
	var sts Status

	if data[0] != 0x00 {
		sts.Set = Text
	}
	sts.Inverse = data[1]&0x01 == 0x01

	return sts
}
