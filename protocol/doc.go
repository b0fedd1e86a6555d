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

// Package protocol implements the wire format used by the CBM 8032 display
// adapter. The adapter streams the machine's screen memory continuously over
// a serial link with no out-of-band framing; everything needed to rebuild a
// screen image has to be recovered from the byte stream itself.
//
// The stream is divided into buffers of 41 bytes: 40 data bytes followed by
// an index byte. 52 consecutive buffers make up one screen frame:
//
//	buffer 0       41 zero bytes. the run of zeros is the only structural
//	               marker in the stream and is used for synchronisation
//	buffers 1-50   one screen row of 40 glyph codes each
//	buffer 51      status bytes (character set selection etc.) and padding
//
// The Framer recovers buffer boundaries from the raw stream. The Decoder
// assembles 52 correctly sequenced buffers into a Frame. Completed frames
// are handed to the render loop through the Mailbox, a single-slot
// latest-wins exchange: the visualisation only ever wants the newest state
// of the screen, never a backlog.
package protocol
