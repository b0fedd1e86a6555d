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

	"github.com/inkyblackness/imgui-go/v4"

	"github.com/jetsetilly/petvis/protocol"
)

// winControls is the adjustment window. hidden by default, toggled with the
// C key.
type winControls struct {
	img  *SdlVis
	open bool
}

func newWinControls(img *SdlVis) *winControls {
	return &winControls{img: img}
}

func (win *winControls) draw() {
	if !win.open {
		return
	}

	imgui.SetNextWindowPosV(imgui.Vec2{X: 20, Y: 20}, imgui.ConditionFirstUseEver, imgui.Vec2{})
	imgui.BeginV("Petvis Controls", &win.open, imgui.WindowFlagsAlwaysAutoResize)

	win.drawPhosphor()
	imgui.Separator()
	win.drawSerial()
	imgui.Separator()
	win.drawTestFrames()

	imgui.End()
}

func (win *winControls) drawPhosphor() {
	prefs := win.img.prefs

	imgui.Text("Phosphor")
	imgui.Spacing()

	sustain := float32(prefs.sustain.Get().(float64))
	if imgui.SliderFloat("Sustain", &sustain, 0.0, 0.99) {
		_ = prefs.sustain.Set(sustain)
	}
	imgui.Text(fmt.Sprintf("trail of ~%d frames", trailFrames(prefs.sustain.Get().(float64))))

	col := prefs.colouration()
	tint := [3]float32{col[0], col[1], col[2]}
	if imgui.ColorEdit3("Tint", &tint) {
		_ = prefs.red.Set(tint[0])
		_ = prefs.green.Set(tint[1])
		_ = prefs.blue.Set(tint[2])
	}

	alpha := col[3]
	if imgui.SliderFloat("Fade Alpha", &alpha, 0.0, 1.0) {
		_ = prefs.alpha.Set(alpha)
	}

	if imgui.Button("Clear Persistence") {
		win.img.scr.clearPersistence = true
	}
}

func (win *winControls) drawSerial() {
	imgui.Text("Serial")
	imgui.Spacing()

	hnd := win.img.serial
	if hnd != nil && hnd.Running() {
		imgui.Text(fmt.Sprintf("reading %s", hnd.Device()))
		hz := hnd.FrameHz()
		imgui.Text(fmt.Sprintf("%.1f fps (min %.1f / max %.1f)", hz.Avg, hz.Min, hz.Max))
		if imgui.Button("Disconnect") {
			win.img.disconnectSerial()
		}
	} else {
		if hnd != nil && hnd.Err() != nil {
			imgui.Text(hnd.Err().Error())
		} else {
			imgui.Text("no device connected")
		}
		if imgui.Button("Reconnect") {
			win.img.connectSerial()
		}
	}
}

func (win *winControls) drawTestFrames() {
	imgui.Text("Test Frames")
	imgui.Spacing()

	if imgui.Button("Blank") {
		win.img.mbx.Deposit(protocol.NewBlankFrame())
	}
	imgui.SameLine()
	if imgui.Button("Random") {
		win.img.mbx.Deposit(protocol.NewRandomFrame())
	}
}
