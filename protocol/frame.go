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

import (
	"math/rand"
)

// Layout of the wire format. These values are fixed by the display adapter
// firmware and must not change.
const (
	// number of data bytes in each buffer. the index byte follows the data
	// bytes.
	DataPerBuffer = 40

	// BufferLen is the total length of each buffer on the wire.
	BufferLen = DataPerBuffer + 1

	// NumBuffers is the number of buffers making up one BufferSet: the sync
	// buffer, the payload buffers and the status buffer.
	NumBuffers = 52

	// StatusBufferIndex is the index of the buffer carrying the device
	// status bytes.
	StatusBufferIndex = NumBuffers - 1
)

// Layout of the decoded glyph grid. One payload buffer per row.
const (
	NumRows = 50
	NumCols = DataPerBuffer

	// FrameDataLen is the number of glyph cells in one frame.
	FrameDataLen = NumRows * NumCols
)

// BlankGlyph is the glyph code for an empty cell (the space character in
// both character sets).
const BlankGlyph = 0x20

// Buffer is one 41-byte unit of the wire protocol: 40 data bytes and a
// trailing index byte. A Buffer emitted by the Framer is always exactly
// BufferLen bytes.
type Buffer []byte

// Index returns the trailing index byte of the buffer.
func (b Buffer) Index() int {
	return int(b[BufferLen-1])
}

// Data returns the 40 data bytes of the buffer.
func (b Buffer) Data() []byte {
	return b[:DataPerBuffer]
}

// Frame is one fully decoded snapshot of the remote machine's display: the
// glyph grid plus the device status decoded from the status buffer.
//
// A Frame is immutable once it has been emitted by the Decoder. The
// acquisition side must not touch it after depositing it in the Mailbox.
type Frame struct {
	Status Status

	// glyph codes in row-major order. indexed through the Glyph() function
	// or iterated directly by the instance builder.
	Data [FrameDataLen]byte
}

// Glyph returns the glyph code at the given row and column. Row and column
// values outside the grid return BlankGlyph.
func (frm *Frame) Glyph(row int, col int) byte {
	if row < 0 || row >= NumRows || col < 0 || col >= NumCols {
		return BlankGlyph
	}
	return frm.Data[row*NumCols+col]
}

// NewBlankFrame returns a frame with every cell set to BlankGlyph and the
// status set to the default (graphics character set). Used at startup before
// the first frame has arrived over the serial link.
func NewBlankFrame() *Frame {
	frm := &Frame{}
	for i := range frm.Data {
		frm.Data[i] = BlankGlyph
	}
	return frm
}

// NewRandomFrame returns a frame with every cell set to a random glyph code.
// Useful for testing the display path without a machine on the other end of
// the serial link.
func NewRandomFrame() *Frame {
	frm := &Frame{}
	for i := range frm.Data {
		frm.Data[i] = byte(rand.Intn(256))
	}
	return frm
}
