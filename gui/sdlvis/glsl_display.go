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
	"github.com/go-gl/gl/v3.2-core/gl"

	"github.com/jetsetilly/petvis/gui/sdlvis/framebuffer"
)

// displaySequencer chains the three render passes that turn a glyph frame
// into the on-screen display.
//
// The first pass draws the glyph instances into the lit framebuffer. The
// second folds the lit pixels into the persistence accumulator, fading what
// was there before. The third pass colours the accumulator and is what ends
// up on screen.
type displaySequencer struct {
	img *SdlVis

	glyphShader   *glyphShader
	decayShader   shaderProgram
	presentShader shaderProgram

	// the glyphs of the current frame at full brightness
	lit *framebuffer.Single

	// the persistence accumulator. a Flip because the decay shader reads
	// the previous value while writing the new one. float storage so the
	// fade tail never quantises away
	persistence *framebuffer.Flip
}

func newDisplaySequencer(img *SdlVis) *displaySequencer {
	return &displaySequencer{
		img:           img,
		glyphShader:   newGlyphShader(),
		decayShader:   newDecayShader(),
		presentShader: newPresentShader(),
		lit:           framebuffer.NewSingle(framebuffer.RGBA, true),
		persistence:   framebuffer.NewFlip(framebuffer.Red32F, false),
	}
}

func (sq *displaySequencer) destroy() {
	sq.glyphShader.destroy()
	sq.decayShader.destroy()
	sq.presentShader.destroy()
	sq.lit.Destroy()
	sq.persistence.Destroy()
}

func (sq *displaySequencer) process(env shaderEnvironment) {
	scr := sq.img.scr

	sq.lit.Setup(env.width, env.height)
	if sq.persistence.Setup(env.width, env.height) {
		sq.persistence.Clear()
	}
	if scr.takeClearPersistence() {
		sq.persistence.Clear()
	}

	// glyph pass. this pass draws its own geometry covering the whole
	// texture so it uses a plain viewport
	gl.Viewport(0, 0, env.width, env.height)
	gl.Scissor(0, 0, env.width, env.height)

	litTexture := sq.lit.Process(func() {
		sq.glyphShader.render(scr.instances, scr.sheet.Layout, scr.sheet.TextureID)
	})

	// the remaining internal pass draws the display's imgui quad so the
	// viewport must align that quad with the texture
	gl.Viewport(int32(-scr.imagePosMin.X),
		int32(-scr.imagePosMin.Y),
		env.width+(int32(scr.imagePosMin.X*2)),
		env.height+(int32(scr.imagePosMin.Y*2)),
	)
	gl.Scissor(int32(-scr.imagePosMin.X),
		int32(-scr.imagePosMin.Y),
		env.width+(int32(scr.imagePosMin.X*2)),
		env.height+(int32(scr.imagePosMin.Y*2)),
	)

	// decay pass
	env.useInternalProj = true
	sustain := float32(sq.img.prefs.sustain.Get().(float64))
	env.srcTextureID = sq.persistence.PreviousTexture()
	env.srcTextureID = sq.persistence.Process(func() {
		sq.decayShader.(*decayShader).setAttributesArgs(env, sustain, litTexture)
		env.draw()
	})

	// present pass. attribute setup only, the actual draw to the window
	// framebuffer is made by the render loop
	env.useInternalProj = false
	sq.presentShader.(*presentShader).setAttributesArgs(env, sq.img.prefs.colouration())
}

// displayShader is the shaderProgram selected when the render loop meets
// the display texture.
type displayShader struct {
	img *SdlVis
	seq *displaySequencer
}

func newDisplayShader(img *SdlVis) shaderProgram {
	return &displayShader{
		img: img,
		seq: newDisplaySequencer(img),
	}
}

func (sh *displayShader) destroy() {
	sh.seq.destroy()
}

func (sh *displayShader) setAttributes(env shaderEnvironment) {
	scr := sh.img.scr

	env.width = int32(scr.scaledWidth())
	env.height = int32(scr.scaledHeight())
	env.internalProj = env.presentationProj

	sh.seq.process(env)
}
