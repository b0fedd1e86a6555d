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

// Package serial reads the CBM display stream from a USB serial adapter and
// turns it into frames for the renderer.
//
// Acquisition happens on its own goroutine so the renderer never waits on
// the port. Completed frames are deposited in a protocol.Mailbox and the
// renderer takes whichever frame is most recent. Start() returns a Handle
// which the GUI thread uses to monitor and to Close() the goroutine.
package serial

import (
	"io"
	"sync/atomic"

	"github.com/pkg/term"

	"github.com/jetsetilly/petvis/curated"
	"github.com/jetsetilly/petvis/logger"
	"github.com/jetsetilly/petvis/performance"
	"github.com/jetsetilly/petvis/protocol"
)

// size of the chunk handed to the framer on every read. a shade over one
// buffer set so a healthy link completes a frame roughly every read.
const readBufferLen = 4096

// FrameHz is a snapshot of the rate at which complete frames are arriving.
type FrameHz struct {
	Avg float64
	Min float64
	Max float64
}

// Handle to a running acquisition goroutine.
type Handle struct {
	device string
	port   *term.Term

	mbx   *protocol.Mailbox
	frm   *protocol.Framer
	dec   *protocol.Decoder
	rate  *performance.Monitor
	chunk []byte

	// closing quit asks the goroutine to end. done is closed by the
	// goroutine on the way out
	quit chan struct{}
	done chan struct{}

	// error that ended the goroutine, if any. valid once done is closed
	err atomic.Value

	// most recent FrameHz snapshot, written by the goroutine
	hz atomic.Value
}

// Start acquisition from the named device. An empty device name means
// discover one. Frames are deposited in mbx as they complete.
func Start(device string, status protocol.StatusTable, mbx *protocol.Mailbox) (*Handle, error) {
	var err error

	if device == "" {
		device, err = Discover()
		if err != nil {
			return nil, err
		}
	}

	port, err := openPort(device)
	if err != nil {
		return nil, err
	}

	hnd := newHandle(device, status, mbx)
	hnd.port = port

	logger.Logf("serial", "reading from %s at %d baud", device, BaudRate)
	go hnd.run()

	return hnd, nil
}

func newHandle(device string, status protocol.StatusTable, mbx *protocol.Mailbox) *Handle {
	return &Handle{
		device: device,
		mbx:    mbx,
		frm:    protocol.NewFramer(),
		dec:    protocol.NewDecoder(status),
		rate:   performance.NewMonitor(0),
		chunk:  make([]byte, readBufferLen),
		quit:   make(chan struct{}),
		done:   make(chan struct{}),
	}
}

func (hnd *Handle) run() {
	defer close(hnd.done)

	for {
		select {
		case <-hnd.quit:
			return
		default:
		}

		n, err := hnd.port.Read(hnd.chunk)
		if err != nil {
			// a read timeout surfaces as io.EOF. the port is still good,
			// the device just has nothing to say
			if err == io.EOF {
				logger.Log("serial", "no data received in the last second")
				continue
			}
			hnd.err.Store(curated.Errorf("serial: %v", err))
			return
		}
		if n == 0 {
			continue
		}

		hnd.process(hnd.chunk[:n])
	}
}

// process a chunk of bytes from the port. frames completed by the chunk are
// deposited in the mailbox.
func (hnd *Handle) process(chunk []byte) {
	_, _ = hnd.frm.Write(chunk)

	for {
		buf, ok := hnd.frm.Next()
		if !ok {
			return
		}

		frm, err := hnd.dec.Decode(buf)
		if err != nil {
			// the sequence error names the buffer it expected. one log
			// line then back to hunting for the sync marker
			logger.Log("serial", err.Error())
			hnd.frm.Resync()
			continue
		}

		if frm != nil {
			hnd.rate.Sample()
			hnd.hz.Store(FrameHz{
				Avg: hnd.rate.Avg(),
				Min: hnd.rate.Min(),
				Max: hnd.rate.Max(),
			})
			hnd.mbx.Deposit(frm)

			// the next buffer set opens with the sync marker so the framer
			// can go straight back to hunting for it
			hnd.frm.Resync()
		}
	}
}

// Device path being read from.
func (hnd *Handle) Device() string {
	return hnd.device
}

// FrameHz at which complete frames are currently arriving. Zero value until
// the first frame has arrived.
func (hnd *Handle) FrameHz() FrameHz {
	if hz, ok := hnd.hz.Load().(FrameHz); ok {
		return hz
	}
	return FrameHz{}
}

// Running is false once the acquisition goroutine has ended, whether by
// Close() or by a port error.
func (hnd *Handle) Running() bool {
	select {
	case <-hnd.done:
		return false
	default:
		return true
	}
}

// Err that ended the acquisition goroutine. Nil while the goroutine is
// running and after a clean Close().
func (hnd *Handle) Err() error {
	if err, ok := hnd.err.Load().(error); ok {
		return err
	}
	return nil
}

// Close the port and end the acquisition goroutine. Blocks until the
// goroutine has finished, which is at most one read timeout.
func (hnd *Handle) Close() {
	close(hnd.quit)
	<-hnd.done
	if hnd.port != nil {
		_ = hnd.port.Close()
	}
}
