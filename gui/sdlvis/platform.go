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
	"fmt"
	"runtime"
	"time"

	"github.com/inkyblackness/imgui-go/v4"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/petvis/logger"
	"github.com/jetsetilly/petvis/protocol"
	"github.com/jetsetilly/petvis/version"
)

// the glyph grid in pixels at a scale of 1.0. PET characters are eight
// pixels square.
const (
	unscaledWidth  = protocol.NumCols * 8
	unscaledHeight = protocol.NumRows * 8
)

type platform struct {
	img    *SdlVis
	window *sdl.Window
	mode   sdl.DisplayMode
}

// newPlatform is the preferred method of initialisation for the platform type.
func newPlatform(img *SdlVis) (*platform, error) {
	// the SDL package calls LockOSThread() but we call it here too. it can't
	// hurt and we never unlock it in any case
	runtime.LockOSThread()

	err := sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return nil, fmt.Errorf("sdl: %v", err)
	}

	err = sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 3)
	if err != nil {
		return nil, fmt.Errorf("sdl: %v", err)
	}
	err = sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 2)
	if err != nil {
		return nil, fmt.Errorf("sdl: %v", err)
	}
	err = sdl.GLSetAttribute(sdl.GL_CONTEXT_FLAGS, sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG)
	if err != nil {
		return nil, fmt.Errorf("sdl: %v", err)
	}
	err = sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	if err != nil {
		return nil, fmt.Errorf("sdl: %v", err)
	}

	var sdlVersion sdl.Version
	sdl.VERSION(&sdlVersion)
	logger.Logf("sdl", "version %d.%d.%d", sdlVersion.Major, sdlVersion.Minor, sdlVersion.Patch)

	plt := &platform{
		img: img,
	}

	plt.mode, err = sdl.GetCurrentDisplayMode(0)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("sdl: %v", err)
	}
	logger.Logf("sdl", "refresh rate: %dHz", plt.mode.RefreshRate)

	// map sdl key codes to imgui codes
	plt.setKeyMapping()

	scale := float32(img.prefs.scale.Get().(float64))
	plt.window, err = sdl.CreateWindow(fmt.Sprintf("%s (%s)", version.ApplicationName, version.Version()),
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(unscaledWidth*scale), int32(unscaledHeight*scale),
		sdl.WINDOW_OPENGL|sdl.WINDOW_ALLOW_HIGHDPI|sdl.WINDOW_RESIZABLE)

	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("sdl: %v", err)
	}

	glContext, err := plt.window.GLCreateContext()
	if err != nil {
		_ = plt.destroy()
		return nil, fmt.Errorf("sdl: %v", err)
	}
	err = plt.window.GLMakeCurrent(glContext)
	if err != nil {
		_ = plt.destroy()
		return nil, fmt.Errorf("sdl: %v", err)
	}

	// synchronise buffer swap with the monitor
	err = sdl.GLSetSwapInterval(1)
	if err != nil {
		logger.Logf("sdl", "GLSetSwapInterval: %s", err.Error())
	}

	return plt, nil
}

func (plt *platform) setKeyMapping() {
	io := imgui.CurrentIO()
	io.KeyMap(imgui.KeyTab, sdl.SCANCODE_TAB)
	io.KeyMap(imgui.KeyLeftArrow, sdl.SCANCODE_LEFT)
	io.KeyMap(imgui.KeyRightArrow, sdl.SCANCODE_RIGHT)
	io.KeyMap(imgui.KeyUpArrow, sdl.SCANCODE_UP)
	io.KeyMap(imgui.KeyDownArrow, sdl.SCANCODE_DOWN)
	io.KeyMap(imgui.KeyPageUp, sdl.SCANCODE_PAGEUP)
	io.KeyMap(imgui.KeyPageDown, sdl.SCANCODE_PAGEDOWN)
	io.KeyMap(imgui.KeyHome, sdl.SCANCODE_HOME)
	io.KeyMap(imgui.KeyEnd, sdl.SCANCODE_END)
	io.KeyMap(imgui.KeyInsert, sdl.SCANCODE_INSERT)
	io.KeyMap(imgui.KeyDelete, sdl.SCANCODE_DELETE)
	io.KeyMap(imgui.KeyBackspace, sdl.SCANCODE_BACKSPACE)
	io.KeyMap(imgui.KeySpace, sdl.SCANCODE_SPACE)
	io.KeyMap(imgui.KeyEnter, sdl.SCANCODE_RETURN)
	io.KeyMap(imgui.KeyEscape, sdl.SCANCODE_ESCAPE)
	io.KeyMap(imgui.KeyA, sdl.SCANCODE_A)
	io.KeyMap(imgui.KeyC, sdl.SCANCODE_C)
	io.KeyMap(imgui.KeyV, sdl.SCANCODE_V)
	io.KeyMap(imgui.KeyX, sdl.SCANCODE_X)
	io.KeyMap(imgui.KeyY, sdl.SCANCODE_Y)
	io.KeyMap(imgui.KeyZ, sdl.SCANCODE_Z)
}

// destroy cleans up the resources.
func (plt *platform) destroy() error {
	if plt.window != nil {
		err := plt.window.Destroy()
		if err != nil {
			return err
		}
		plt.window = nil
	}
	sdl.Quit()

	return nil
}

// displaySize returns the dimension of the display.
func (plt *platform) displaySize() [2]float32 {
	w, h := plt.window.GetSize()
	return [2]float32{float32(w), float32(h)}
}

// framebufferSize returns the dimension of the framebuffer.
func (plt *platform) framebufferSize() [2]float32 {
	w, h := plt.window.GLGetDrawableSize()
	return [2]float32{float32(w), float32(h)}
}

// newFrame marks the begin of a render pass. It forwards all current state to imgui.CurrentIO().
func (plt *platform) newFrame() {
	// Setup display size (every frame to accommodate for window resizing)
	displaySize := plt.displaySize()
	imgui.CurrentIO().SetDisplaySize(imgui.Vec2{X: displaySize[0], Y: displaySize[1]})

	// If a mouse press event came, always pass it as "mouse held this frame",
	// so we don't miss click-release events that are shorter than 1 frame.
	x, y, state := sdl.GetMouseState()

	imgui.CurrentIO().SetMousePosition(imgui.Vec2{X: float32(x), Y: float32(y)})
	for i, button := range []uint32{sdl.BUTTON_LEFT, sdl.BUTTON_RIGHT, sdl.BUTTON_MIDDLE} {
		imgui.CurrentIO().SetMouseButtonDown(i, (state&sdl.Button(button)) != 0)
	}
}

// postRender performs a buffer swap.
func (plt *platform) postRender() {
	plt.window.GLSwap()
}

// toggle the full screen state. does not capture mouse.
func (plt *platform) setFullScreen(fullScreen bool) {
	if fullScreen {
		plt.window.SetFullscreen(sdl.WINDOW_FULLSCREEN_DESKTOP)
	} else {
		plt.window.SetFullscreen(0)
	}

	// a short delay seems to smooth things out by giving time for the system
	// to make the changes to the full screen state
	<-time.After(100 * time.Millisecond)
}
