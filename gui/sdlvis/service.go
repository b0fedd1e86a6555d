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

package sdlvis

import (
	"github.com/inkyblackness/imgui-go/v4"
	"github.com/veandco/go-sdl2/sdl"
)

// Service the gui. MUST be called from the main goroutine, in a loop, until
// HasQuit() reports true.
func (img *SdlVis) Service() {
	img.maintainSerial()

	// poll for sdl event or timeout
	ev := img.polling.wait()

	for ; ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			img.quit()

		case *sdl.TextInputEvent:
			img.io.AddInputCharacters(string(ev.Text[:]))

		case *sdl.KeyboardEvent:
			img.serviceKeyboard(ev)

		case *sdl.MouseWheelEvent:
			var deltaX, deltaY float32
			if ev.X > 0 {
				deltaX++
			} else if ev.X < 0 {
				deltaX--
			}
			if ev.Y > 0 {
				deltaY++
			} else if ev.Y < 0 {
				deltaY--
			}
			img.io.AddMouseWheelDelta(deltaX, deltaY)
		}
	}

	img.renderFrame()
}

func (img *SdlVis) renderFrame() {
	// take the most recent serial frame before drawing
	img.scr.update()

	// start of a new frame
	img.plt.newFrame()
	imgui.NewFrame()

	img.scr.draw()
	img.controls.draw()

	// rendering
	imgui.Render() // This call only creates the draw data list. Actual rendering to framebuffer is done below.
	img.glsl.preRender()
	img.glsl.render()
	img.plt.postRender()
}

func (img *SdlVis) serviceKeyboard(ev *sdl.KeyboardEvent) {
	if ev.Repeat == 1 {
		return
	}

	if ev.Type == sdl.KEYUP {
		handled := true

		switch sdl.GetKeyName(ev.Keysym.Sym) {
		case "Escape":
			img.quit()

		case "F":
			img.setFullScreen(!img.fullScreen)

		case "C":
			img.controls.open = !img.controls.open

		case "P":
			img.scr.fpsOpen = !img.scr.fpsOpen

		case "R":
			img.scr.clearPersistence = true

		default:
			handled = false
		}

		if handled {
			img.polling.alert()
			return
		}

		img.io.KeyRelease(int(ev.Keysym.Scancode))
	} else if ev.Type == sdl.KEYDOWN {
		img.io.KeyPress(int(ev.Keysym.Scancode))
	}

	img.updateKeyModifier()
}

func (img *SdlVis) updateKeyModifier() {
	modState := sdl.GetModState()
	mapModifier := func(lMask sdl.Keymod, lKey int, rMask sdl.Keymod, rKey int) (lResult int, rResult int) {
		if (modState & lMask) != 0 {
			lResult = lKey
		}
		if (modState & rMask) != 0 {
			rResult = rKey
		}
		return
	}
	img.io.KeyShift(mapModifier(sdl.KMOD_LSHIFT, sdl.SCANCODE_LSHIFT, sdl.KMOD_RSHIFT, sdl.SCANCODE_RSHIFT))
	img.io.KeyCtrl(mapModifier(sdl.KMOD_LCTRL, sdl.SCANCODE_LCTRL, sdl.KMOD_RCTRL, sdl.SCANCODE_RCTRL))
	img.io.KeyAlt(mapModifier(sdl.KMOD_LALT, sdl.SCANCODE_LALT, sdl.KMOD_RALT, sdl.SCANCODE_RALT))
}
