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
	"github.com/jetsetilly/petvis/curated"
)

// Sentinel errors returned by Decoder.Decode(). Test with curated.Is().
const (
	// OutOfSync indicates that the decoded buffer was not the buffer the
	// decoder expected. it is an expected consequence of serial noise, not
	// a failure: the caller resyncs the framer and carries on
	OutOfSync = "protocol: out of sync: expected buffer %d, received index %d"

	// BadBufferLength indicates a buffer that is not BufferLen bytes long
	BadBufferLength = "protocol: bad buffer length (%d)"
)

// Decoder assembles a sequence of Buffers into Frames.
//
// Decoder is not safe for concurrent use. It is owned exclusively by the
// acquisition loop.
type Decoder struct {
	status StatusTable

	// index of the buffer expected next, 1 to StatusBufferIndex. the sync
	// buffer (index 0) is consumed by the framer and never reaches the
	// decoder
	pos int

	// glyph data accumulated from the payload buffers of the current set
	grid [FrameDataLen]byte
}

// NewDecoder is the preferred method of initialisation for the Decoder
// type. A nil StatusTable means DefaultStatusTable.
func NewDecoder(status StatusTable) *Decoder {
	if status == nil {
		status = DefaultStatusTable
	}
	return &Decoder{
		status: status,
		pos:    1,
	}
}

// Decode accepts the next Buffer from the framer. When the buffer completes
// a BufferSet the decoded Frame is returned; otherwise the Frame return
// value is nil.
//
// An OutOfSync error means the in-progress BufferSet has been discarded and
// the decoder reset; the caller should Resync() the framer. The partial set
// is never emitted.
func (dec *Decoder) Decode(buf Buffer) (*Frame, error) {
	if len(buf) != BufferLen {
		return nil, curated.Errorf(BadBufferLength, len(buf))
	}

	if buf.Index() != dec.pos {
		expected := dec.pos
		dec.Reset()
		return nil, curated.Errorf(OutOfSync, expected, buf.Index())
	}

	if dec.pos < StatusBufferIndex {
		copy(dec.grid[(dec.pos-1)*DataPerBuffer:], buf.Data())
		dec.pos++
		return nil, nil
	}

	// the status buffer completes the set
	frm := &Frame{
		Status: dec.status(buf.Data()),
		Data:   dec.grid,
	}
	dec.Reset()

	return frm, nil
}

// Reset abandons the BufferSet in progress. The next expected buffer is the
// first payload buffer of a new set.
func (dec *Decoder) Reset() {
	dec.pos = 1
}
