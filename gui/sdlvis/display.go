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
	"time"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/inkyblackness/imgui-go/v4"

	"github.com/jetsetilly/petvis/glyphs"
	"github.com/jetsetilly/petvis/performance"
	"github.com/jetsetilly/petvis/protocol"
)

// display is the full-window rendering of the glyph grid. there is no pixel
// upload; the image is produced entirely by the shader passes in
// glsl_display.go.
type display struct {
	img *SdlVis

	// the texture ID the display quad is drawn with. it is never uploaded
	// to. its only role is to route the quad to the display shader in the
	// render loop
	displayTexture uint32

	sheet *glyphSheet

	// most recent frame taken from the mailbox and its instance data
	frame     *protocol.Frame
	instances []glyphs.Instance

	// when true the persistence accumulator is cleared on the next render
	clearPersistence bool

	// the display is letterboxed into the window
	imagePosMin imgui.Vec2
	imagePosMax imgui.Vec2

	// fps overlay
	fpsOpen    bool
	fpsPulse   *time.Ticker
	fps        string
	renderRate *performance.Monitor
}

func newDisplay(img *SdlVis, sheetPath string) (*display, error) {
	scr := &display{
		img:        img,
		fpsPulse:   time.NewTicker(time.Second),
		renderRate: performance.NewMonitor(0),
	}

	var err error
	scr.sheet, err = newGlyphSheet(sheetPath)
	if err != nil {
		return nil, err
	}

	// placeholder texture for the display quad
	gl.ActiveTexture(gl.TEXTURE0)
	gl.GenTextures(1, &scr.displayTexture)
	gl.BindTexture(gl.TEXTURE_2D, scr.displayTexture)
	gl.TexImage2D(gl.TEXTURE_2D, 0,
		gl.RGBA, 1, 1, 0,
		gl.RGBA, gl.UNSIGNED_BYTE,
		gl.Ptr([]uint8{0, 0, 0, 0}))

	// an empty screen until the first frame arrives
	scr.setFrame(protocol.NewBlankFrame())

	return scr, nil
}

func (scr *display) destroy() {
	gl.DeleteTextures(1, &scr.displayTexture)
	scr.sheet.destroy()
}

func (scr *display) setFrame(frm *protocol.Frame) {
	scr.frame = frm
	scr.instances = glyphs.BuildInstances(scr.instances, frm, scr.sheet.Layout)
}

// update takes the most recent frame from the mailbox, if there is one.
// called once per service tick, before the gui is drawn.
func (scr *display) update() {
	scr.renderRate.Sample()

	if frm := scr.img.mbx.TryTake(); frm != nil {
		scr.setFrame(frm)
	}
}

// takeClearPersistence returns and resets the clearPersistence flag. called
// by the display sequencer.
func (scr *display) takeClearPersistence() bool {
	v := scr.clearPersistence
	scr.clearPersistence = false
	return v
}

// setScaling fits the glyph grid into the current window, preserving aspect
// ratio and centering.
func (scr *display) setScaling() {
	winSize := scr.img.plt.displaySize()
	w := winSize[0]
	h := winSize[1]

	ih := h
	iw := ih * displayAspect
	if iw > w {
		iw = w
		ih = iw / displayAspect
	}

	scr.imagePosMin = imgui.Vec2{X: (w - iw) / 2, Y: (h - ih) / 2}
	scr.imagePosMax = imgui.Vec2{X: scr.imagePosMin.X + iw, Y: scr.imagePosMin.Y + ih}
}

func (scr *display) scaledWidth() float32 {
	return scr.imagePosMax.X - scr.imagePosMin.X
}

func (scr *display) scaledHeight() float32 {
	return scr.imagePosMax.Y - scr.imagePosMin.Y
}

func (scr *display) draw() {
	scr.setScaling()

	dl := imgui.BackgroundDrawList()
	dl.AddImage(imgui.TextureID(scr.displayTexture), scr.imagePosMin, scr.imagePosMax)

	if scr.fpsOpen {
		// update fps
		select {
		case <-scr.fpsPulse.C:
			hz := scr.img.serialRate()
			scr.fps = fmt.Sprintf("render %03.1f fps / serial %03.1f fps", scr.renderRate.Avg(), hz.Avg)
		default:
		}

		imgui.SetNextWindowPos(imgui.Vec2{X: 0, Y: 0})

		imgui.BeginV("##displayfps", &scr.fpsOpen, imgui.WindowFlagsAlwaysAutoResize|
			imgui.WindowFlagsNoScrollbar|imgui.WindowFlagsNoTitleBar|imgui.WindowFlagsNoDecoration)

		imgui.Text(scr.fps)

		imgui.End()
	}
}
