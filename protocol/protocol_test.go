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

package protocol_test

import (
	"testing"

	"github.com/jetsetilly/petvis/curated"
	"github.com/jetsetilly/petvis/protocol"
	"github.com/jetsetilly/petvis/test"
)

// buildSet returns the wire representation of one complete BufferSet. The
// glyph code of every payload cell is derived from fill and the cell's
// index, making decoded frames easy to verify.
func buildSet(fill byte, statusByte byte) []byte {
	stream := make([]byte, 0, protocol.NumBuffers*protocol.BufferLen)

	// buffer 0: the sync marker
	stream = append(stream, make([]byte, protocol.BufferLen)...)

	// buffers 1-50: payload
	for n := 1; n < protocol.StatusBufferIndex; n++ {
		for i := 0; i < protocol.DataPerBuffer; i++ {
			stream = append(stream, fill+byte((n-1)*protocol.DataPerBuffer+i))
		}
		stream = append(stream, byte(n))
	}

	// buffer 51: status
	status := make([]byte, protocol.BufferLen)
	status[0] = statusByte
	status[protocol.BufferLen-1] = byte(protocol.StatusBufferIndex)
	stream = append(stream, status...)

	return stream
}

// run a byte stream through a fresh framer/decoder pair, returning the
// decoded frames in order.
func decodeStream(t *testing.T, stream []byte, chunkLen int) []*protocol.Frame {
	t.Helper()

	fr := protocol.NewFramer()
	dec := protocol.NewDecoder(nil)
	frames := make([]*protocol.Frame, 0)

	for len(stream) > 0 {
		n := chunkLen
		if n > len(stream) {
			n = len(stream)
		}
		fr.Write(stream[:n])
		stream = stream[n:]

		for buf, ok := fr.Next(); ok; buf, ok = fr.Next() {
			frm, err := dec.Decode(buf)
			if err != nil {
				if !curated.Is(err, protocol.OutOfSync) {
					t.Fatalf("unexpected decode error: %v", err)
				}
				fr.Resync()
				continue
			}
			if frm != nil {
				frames = append(frames, frm)
				fr.Resync()
			}
		}
	}

	return frames
}

func TestFramingIdempotence(t *testing.T) {
	// a clean stream of N BufferSets yields exactly N frames, in order,
	// with the expected glyph codes
	const numSets = 5

	stream := make([]byte, 0)
	for i := 0; i < numSets; i++ {
		stream = append(stream, buildSet(byte(i), 0x00)...)
	}

	// deliver in awkward chunk sizes so that read boundaries never align
	// with buffer boundaries
	frames := decodeStream(t, stream, 7)
	test.Equate(t, len(frames), numSets)

	for i, frm := range frames {
		test.Equate(t, frm.Data[0], byte(i))
		test.Equate(t, frm.Glyph(0, 1), byte(i)+1)
		test.Equate(t, frm.Glyph(protocol.NumRows-1, protocol.NumCols-1),
			byte(i)+byte((protocol.FrameDataLen-1)%256))
		test.Equate(t, frm.Status.Set, protocol.Graphics)
	}
}

func TestStatusDecode(t *testing.T) {
	frames := decodeStream(t, buildSet(1, 0x01), 256)
	test.Equate(t, len(frames), 1)
	test.Equate(t, frames[0].Status.Set, protocol.Text)
	test.Equate(t, frames[0].Status.Inverse, false)
}

func TestResynchronisation(t *testing.T) {
	// delete a handful of bytes mid-stream. the damaged set is discarded
	// and framing recovers at the next set boundary
	good := buildSet(1, 0x00)
	damaged := buildSet(2, 0x00)
	damaged = append(damaged[:500], damaged[507:]...)

	stream := make([]byte, 0)
	stream = append(stream, good...)
	stream = append(stream, damaged...)
	stream = append(stream, buildSet(3, 0x00)...)
	stream = append(stream, buildSet(4, 0x00)...)

	frames := decodeStream(t, stream, 13)

	// the damaged set never becomes a frame; everything else does
	test.Equate(t, len(frames), 3)
	test.Equate(t, frames[0].Data[0], byte(1))
	test.Equate(t, frames[1].Data[0], byte(3))
	test.Equate(t, frames[2].Data[0], byte(4))
}

func TestResyncDeletionSweep(t *testing.T) {
	// recovery must be bounded whatever the size and position of the loss.
	// sweep small deletions across the damaged set, including offsets that
	// land inside the sync marker and the status buffer
	offsets := []int{0, 41, 500, 1025, 2100}

	for k := 1; k <= 5; k++ {
		for _, off := range offsets {
			damaged := buildSet(2, 0x00)
			damaged = append(damaged[:off], damaged[off+k:]...)

			stream := make([]byte, 0)
			stream = append(stream, buildSet(1, 0x00)...)
			stream = append(stream, damaged...)
			stream = append(stream, buildSet(3, 0x00)...)
			stream = append(stream, buildSet(4, 0x00)...)

			frames := decodeStream(t, stream, 13)

			// the damaged set never surfaces as a frame and recovery takes
			// at most one further set. a loss inside the status buffer eats
			// into the following marker, which costs the set after the
			// damaged one as well; the set after that always survives
			if len(frames) < 2 {
				t.Fatalf("k=%d off=%d: only %d frames recovered", k, off, len(frames))
			}
			test.Equate(t, frames[0].Data[0], byte(1))
			test.Equate(t, frames[len(frames)-1].Data[0], byte(4))
			for _, frm := range frames {
				if frm.Data[0] == 2 {
					t.Fatalf("k=%d off=%d: damaged set decoded as a frame", k, off)
				}
			}
		}
	}
}

func TestFramerStartsMidStream(t *testing.T) {
	// starting acquisition part way through a transmission must not yield
	// a corrupt frame; the partial set is skipped
	stream := buildSet(1, 0x00)
	stream = stream[1000:]
	stream = append(stream, buildSet(2, 0x00)...)

	frames := decodeStream(t, stream, 64)
	test.Equate(t, len(frames), 1)
	test.Equate(t, frames[0].Data[0], byte(2))
}

func TestDecoderOutOfSequence(t *testing.T) {
	dec := protocol.NewDecoder(nil)

	buf := make(protocol.Buffer, protocol.BufferLen)
	buf[protocol.BufferLen-1] = 2 // expected index is 1

	frm, err := dec.Decode(buf)
	test.ExpectSuccess(t, frm == nil)
	test.ExpectSuccess(t, curated.Is(err, protocol.OutOfSync))

	// the decoder has reset and accepts a correctly sequenced buffer
	buf[protocol.BufferLen-1] = 1
	frm, err = dec.Decode(buf)
	test.ExpectSuccess(t, frm == nil)
	test.ExpectSuccess(t, err)
}

func TestMailboxLatestWins(t *testing.T) {
	mbx := &protocol.Mailbox{}

	// nothing deposited yet
	test.ExpectSuccess(t, mbx.TryTake() == nil)

	f1 := protocol.NewBlankFrame()
	f2 := protocol.NewBlankFrame()
	f2.Data[0] = 0xff

	mbx.Deposit(f1)
	mbx.Deposit(f2)

	// only the newest frame is returned
	test.ExpectSuccess(t, mbx.TryTake() == f2)

	// and only once
	test.ExpectSuccess(t, mbx.TryTake() == nil)
}

func TestBlankFrame(t *testing.T) {
	frm := protocol.NewBlankFrame()
	for i := range frm.Data {
		if frm.Data[i] != protocol.BlankGlyph {
			t.Fatalf("cell %d is not blank", i)
		}
	}
	test.Equate(t, frm.Status.Set, protocol.Graphics)
}
