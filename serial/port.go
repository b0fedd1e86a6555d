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
	"path/filepath"
	"time"

	"github.com/pkg/term"

	"github.com/jetsetilly/petvis/curated"
)

// BaudRate of the display adapter's serial link. One screen frame is 2132
// bytes so the link needs to be this fast to carry a useful frame rate.
const BaudRate = 1500000

// readTimeout bounds every read of the port. The timeout is what lets the
// acquisition loop notice a shutdown request, and what lets it report a
// silent device.
const readTimeout = time.Second

// Sentinel errors. Test with curated.Is().
const (
	// NoUSBDevice is returned by Discover() when no candidate serial
	// device is present
	NoUSBDevice = "serial: no USB serial device found"
)

// device path patterns that indicate a USB serial adapter. cu.* devices are
// the Darwin spelling.
var devicePatterns = []string{
	"/dev/ttyUSB*",
	"/dev/ttyACM*",
	"/dev/cu.usbserial*",
	"/dev/cu.usbmodem*",
}

// Discover returns the path of the first USB serial device found on the
// system. Used when no device has been named on the command line.
func Discover() (string, error) {
	for _, pattern := range devicePatterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return "", curated.Errorf("serial: %v", err)
		}
		if len(matches) > 0 {
			return matches[0], nil
		}
	}
	return "", curated.Errorf(NoUSBDevice)
}

// open the named device in raw mode at the adapter's baud rate.
func openPort(device string) (*term.Term, error) {
	port, err := term.Open(device,
		term.Speed(BaudRate),
		term.RawMode,
		term.ReadTimeout(readTimeout),
	)
	if err != nil {
		return nil, curated.Errorf("serial: %v", err)
	}

	// discard anything buffered by the OS before we were ready. the framer
	// would cope but there is no point feeding it stale data
	_ = port.Flush()

	return port, nil
}
