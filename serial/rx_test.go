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

package serial

import (
	"testing"

	"github.com/jetsetilly/petvis/protocol"
	"github.com/jetsetilly/petvis/test"
)

// wireSet builds one complete buffer set as it appears on the wire. every
// payload cell is the fill value plus the cell index, modulo 256.
func wireSet(fill byte, statusByte byte) []byte {
	set := make([]byte, 0, protocol.NumBuffers*protocol.BufferLen)

	// sync marker
	set = append(set, make([]byte, protocol.BufferLen)...)

	for i := 1; i < protocol.StatusBufferIndex; i++ {
		for j := 0; j < protocol.DataPerBuffer; j++ {
			cell := (i-1)*protocol.DataPerBuffer + j
			set = append(set, fill+byte(cell))
		}
		set = append(set, byte(i))
	}

	// status buffer
	status := make([]byte, protocol.BufferLen)
	status[0] = statusByte
	status[protocol.BufferLen-1] = protocol.StatusBufferIndex
	set = append(set, status...)

	return set
}

func TestProcessDepositsFrames(t *testing.T) {
	mbx := &protocol.Mailbox{}
	hnd := newHandle("test", nil, mbx)

	stream := append(wireSet(10, 0), wireSet(20, 1)...)

	// feed in small chunks, as a slow port would
	const chunkLen = 57
	for i := 0; i < len(stream); i += chunkLen {
		j := i + chunkLen
		if j > len(stream) {
			j = len(stream)
		}
		hnd.process(stream[i:j])
	}

	// only the most recent frame is available
	frm := mbx.TryTake()
	test.ExpectSuccess(t, frm != nil)
	test.Equate(t, frm.Status.Set, protocol.Text)
	test.Equate(t, frm.Glyph(0, 0), byte(20))
	test.ExpectSuccess(t, mbx.TryTake() == nil)
}

func TestProcessRecoversFromCorruption(t *testing.T) {
	mbx := &protocol.Mailbox{}
	hnd := newHandle("test", nil, mbx)

	good := wireSet(5, 0)

	// a set with a stretch of bytes missing, as if the port dropped them
	bad := wireSet(99, 0)
	bad = append(bad[:700], bad[710:]...)

	hnd.process(good)
	hnd.process(bad)
	hnd.process(wireSet(7, 0))

	frm := mbx.TryTake()
	test.ExpectSuccess(t, frm != nil)
	test.Equate(t, frm.Glyph(0, 0), byte(7))
}

func TestFrameRateSnapshot(t *testing.T) {
	mbx := &protocol.Mailbox{}
	hnd := newHandle("test", nil, mbx)

	// no frames yet means a zero snapshot
	test.Equate(t, hnd.FrameHz(), FrameHz{})

	hnd.process(wireSet(1, 0))
	hnd.process(wireSet(2, 0))

	hz := hnd.FrameHz()
	test.ExpectSuccess(t, hz.Avg > 0)
}
