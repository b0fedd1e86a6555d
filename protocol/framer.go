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

// the two states of the framer.
type framerState int

const (
	// hunting for the run of zero bytes that marks a BufferSet boundary.
	// bytes are discarded one at a time until the marker is found, which is
	// what makes recovery from a dropped or duplicated byte possible at all
	framerHunting framerState = iota

	// buffer boundaries are known. bytes are accumulated into 41-byte
	// candidates
	framerInSync
)

// Framer converts the raw serial byte stream into a sequence of well-formed
// Buffers. It makes no assumption about how the stream is chopped up by the
// read calls that feed it.
//
// Framer is an io.Writer; feed it whatever bytes are available and then
// drain it with Next(). Neither function ever blocks.
//
// Framer is not safe for concurrent use. It is owned exclusively by the
// acquisition loop.
type Framer struct {
	state framerState

	// raw bytes accepted by Write() but not yet consumed by the state
	// machine. processing is deferred to Next() so that a Resync() between
	// two candidates reinterprets the bytes that follow
	pending []byte
	off     int

	// count of consecutive zero bytes seen while hunting
	zeros int

	// candidate accumulation while in sync
	data [BufferLen]byte
	n    int
}

// NewFramer is the preferred method of initialisation for the Framer type.
// A new framer starts out of sync, hunting for a BufferSet boundary.
func NewFramer() *Framer {
	return &Framer{}
}

// Write appends raw stream bytes to the framer. Implements io.Writer; the
// returned error is always nil.
func (fr *Framer) Write(p []byte) (int, error) {
	// reclaim the consumed prefix before growing the pending queue
	if fr.off > 0 {
		fr.pending = fr.pending[:copy(fr.pending, fr.pending[fr.off:])]
		fr.off = 0
	}
	fr.pending = append(fr.pending, p...)
	return len(p), nil
}

// Next returns the next 41-byte Buffer candidate, or false if the bytes
// accepted so far do not complete one. It never waits for more input.
func (fr *Framer) Next() (Buffer, bool) {
	for fr.off < len(fr.pending) {
		b := fr.pending[fr.off]
		fr.off++

		switch fr.state {
		case framerHunting:
			if b != 0x00 {
				fr.zeros = 0
				continue
			}
			fr.zeros++
			if fr.zeros == BufferLen {
				// a full sync buffer has passed. the next byte begins
				// buffer 1
				fr.state = framerInSync
				fr.zeros = 0
				fr.n = 0
			}

		case framerInSync:
			fr.data[fr.n] = b
			fr.n++
			if fr.n == BufferLen {
				fr.n = 0
				buf := make(Buffer, BufferLen)
				copy(buf, fr.data[:])
				return buf, true
			}
		}
	}

	return nil, false
}

// Resync returns the framer to the marker hunt. Called by the acquisition
// loop when the Decoder reports a buffer out of sequence, and after every
// completed BufferSet (the zero-run of the next set re-establishes sync
// immediately when the stream is clean).
func (fr *Framer) Resync() {
	fr.state = framerHunting
	fr.zeros = 0
	fr.n = 0
}
