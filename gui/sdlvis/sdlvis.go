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

// Package sdlvis is the SDL2/OpenGL realisation of the display. It owns the
// window, the render pipeline and the serial acquisition goroutine, and is
// driven by calling Service() from the main goroutine until HasQuit()
// reports true.
package sdlvis

import (
	"time"

	"github.com/inkyblackness/imgui-go/v4"

	"github.com/jetsetilly/petvis/logger"
	"github.com/jetsetilly/petvis/protocol"
	"github.com/jetsetilly/petvis/serial"
)

// how often to retry a failed or absent serial connection.
const serialRetryPeriod = time.Second

// SdlVis is a fully realised display visualiser.
type SdlVis struct {
	context *imgui.Context
	io      imgui.IO

	plt  *platform
	glsl *glsl

	prefs    *preferences
	scr      *display
	controls *winControls
	polling  *polling

	mbx *protocol.Mailbox

	// the serial acquisition goroutine. nil when no device is connected
	serial *serial.Handle

	// device named on the command line, overriding the preference
	deviceOverride string

	// next time a failed serial connection will be retried. the zero value
	// means retry immediately
	serialRetry time.Time

	// whether the user has asked for retries at all. cleared by
	// disconnectSerial(), set by connectSerial()
	serialWanted bool

	fullScreen bool
	hasQuit    bool
}

// NewSdlVis is the preferred method of initialisation for the SdlVis type.
//
// Frames deposited in mbx are rendered as they arrive. device and sheetPath
// override the preferences when not empty. MUST be called from the main
// goroutine.
func NewSdlVis(mbx *protocol.Mailbox, device string, sheetPath string) (*SdlVis, error) {
	img := &SdlVis{
		mbx:            mbx,
		deviceOverride: device,
		serialWanted:   true,
	}

	var err error

	img.context = imgui.CreateContext(nil)
	img.io = imgui.CurrentIO()
	img.io.SetIniFilename("")

	img.prefs, err = newPreferences(img)
	if err != nil {
		img.Destroy()
		return nil, err
	}

	img.plt, err = newPlatform(img)
	if err != nil {
		img.Destroy()
		return nil, err
	}

	img.glsl, err = newGlsl(img)
	if err != nil {
		img.Destroy()
		return nil, err
	}

	// the display needs a current GL context
	img.scr, err = newDisplay(img, sheetPath)
	if err != nil {
		img.Destroy()
		return nil, err
	}

	img.polling = newPolling(img)
	img.controls = newWinControls(img)

	if img.prefs.fullScreen.Get().(bool) {
		img.setFullScreen(true)
	}

	return img, nil
}

// Destroy implements GUI teardown. Saves preferences on the way out.
func (img *SdlVis) Destroy() {
	img.disconnectSerial()

	if img.prefs != nil {
		err := img.prefs.save()
		if err != nil {
			logger.Log("sdlvis", err.Error())
		}
	}

	if img.scr != nil {
		img.scr.destroy()
		img.scr = nil
	}

	if img.glsl != nil {
		img.glsl.destroy()
		img.glsl = nil
	}

	if img.plt != nil {
		err := img.plt.destroy()
		if err != nil {
			logger.Log("sdlvis", err.Error())
		}
		img.plt = nil
	}

	if img.context != nil {
		img.context.Destroy()
		img.context = nil
	}
}

// HasQuit returns true once the user has asked to leave.
func (img *SdlVis) HasQuit() bool {
	return img.hasQuit
}

// Quit asks the gui to end at the next service iteration. used for signal
// handling in the main package.
func (img *SdlVis) Quit() {
	img.quit()
}

func (img *SdlVis) quit() {
	img.hasQuit = true
	img.polling.alert()
}

// SetFullScreen toggles between windowed and fullscreen display. The window
// change must happen on the main thread so it is queued for the next
// service iteration rather than applied immediately.
func (img *SdlVis) SetFullScreen(fullScreen bool) {
	img.polling.service <- func() {
		img.setFullScreen(fullScreen)
	}
	img.polling.alert()
}

func (img *SdlVis) setFullScreen(fullScreen bool) {
	img.fullScreen = fullScreen
	img.plt.setFullScreen(fullScreen)
	_ = img.prefs.fullScreen.Set(fullScreen)
}

// the device to connect to. command line wins over preference. empty means
// discovery.
func (img *SdlVis) serialDevice() string {
	if img.deviceOverride != "" {
		return img.deviceOverride
	}
	return img.prefs.device.Get().(string)
}

func (img *SdlVis) connectSerial() {
	img.serialWanted = true
	img.serialRetry = time.Time{}
}

func (img *SdlVis) disconnectSerial() {
	img.serialWanted = false
	if img.serial != nil {
		img.serial.Close()
		img.serial = nil
	}
}

// maintainSerial keeps the acquisition goroutine alive, retrying no more
// often than serialRetryPeriod. called once per service tick.
func (img *SdlVis) maintainSerial() {
	if !img.serialWanted {
		return
	}

	if img.serial != nil {
		if img.serial.Running() {
			return
		}

		// the goroutine ended on its own, which means a port error.
		// clean up and fall through to a reconnection attempt
		if err := img.serial.Err(); err != nil {
			logger.Log("sdlvis", err.Error())
		}
		img.serial.Close()
		img.serial = nil
	}

	if time.Now().Before(img.serialRetry) {
		return
	}
	img.serialRetry = time.Now().Add(serialRetryPeriod)

	hnd, err := serial.Start(img.serialDevice(), nil, img.mbx)
	if err != nil {
		// logged rather than fatal. the device may simply not be plugged
		// in yet and the central logger folds the repeats
		logger.Log("sdlvis", err.Error())
		return
	}
	img.serial = hnd
}

// serialRate is the frame rate snapshot from the acquisition goroutine.
func (img *SdlVis) serialRate() serial.FrameHz {
	if img.serial == nil {
		return serial.FrameHz{}
	}
	return img.serial.FrameHz()
}
