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
	"sync/atomic"
)

// Mailbox hands the newest Frame from the acquisition goroutine to the
// render loop. It is a single slot, not a queue: a deposit overwrites any
// frame the render loop has not collected yet. A frame that has been
// superseded is worthless, so dropping it is the correct behaviour and
// nothing is counted or reported.
//
// Exactly one goroutine should deposit and exactly one should take. Neither
// operation ever blocks and the swap is atomic, so the reader can never
// observe a torn frame.
type Mailbox struct {
	slot atomic.Pointer[Frame]
}

// Deposit the newest frame, replacing any undelivered frame. The frame must
// not be modified after deposit.
func (mbx *Mailbox) Deposit(frm *Frame) {
	mbx.slot.Store(frm)
}

// TryTake returns the most recently deposited frame, or nil if no new frame
// has arrived since the last call.
func (mbx *Mailbox) TryTake() *Frame {
	return mbx.slot.Swap(nil)
}
