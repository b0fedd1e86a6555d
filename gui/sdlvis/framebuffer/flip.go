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

package framebuffer

import (
	"github.com/go-gl/gl/v3.2-core/gl"
)

// Flip provides a two paged framebuffer. Process() alternates which texture
// is drawn to, so a shader can read the result of the previous Process()
// while writing the next one.
type Flip struct {
	spec          TextureSpec
	clearOnRender bool

	flip    [2]uint32
	flipIdx int

	width  int32
	height int32

	fbo uint32
	rbo uint32

	// empty pixels used to clear texture on initialisation and on clear
	emptyPixels []uint8
}

// NewFlip is the preferred method of initialisation of the Flip type
func NewFlip(spec TextureSpec, clearOnRender bool) *Flip {
	fb := &Flip{
		spec:          spec,
		clearOnRender: clearOnRender,
	}
	gl.GenFramebuffers(1, &fb.fbo)
	return fb
}

// id implements the FBO interface
func (fb *Flip) id() uint32 {
	return fb.fbo
}

// Destroy should be called when the Flip is no longer required
func (fb *Flip) Destroy() {
	gl.DeleteFramebuffers(1, &fb.fbo)
}

func (fb *Flip) Clear() {
	if len(fb.emptyPixels) == 0 {
		return
	}
	for _, id := range fb.flip {
		fb.spec.clearTexture(id, fb.width, fb.height, fb.emptyPixels)
	}
}

// Setup Flip for specified dimensions
//
// Returns true if any previous texture data has been lost. This can happen
// when the dimensions have changed. By definition, the first call to Setup()
// will always return false.
//
// If the supplied width or height are less than zero the function will
// return false with no explanation.
func (fb *Flip) Setup(width int32, height int32) bool {
	if width <= 0 || height <= 0 {
		return false
	}

	gl.BindFramebuffer(gl.FRAMEBUFFER, fb.fbo)

	// no change to framebuffer
	if fb.width == width && fb.height == height {
		return false
	}

	changed := fb.width != 0 || fb.height != 0

	fb.width = width
	fb.height = height
	fb.emptyPixels = make([]uint8, width*height*fb.spec.pixelDepth)

	for i := range fb.flip {
		fb.spec.createTexture(&fb.flip[i], fb.width, fb.height, fb.emptyPixels)
	}

	gl.BindRenderbuffer(gl.RENDERBUFFER, fb.rbo)

	return changed
}

// Dimensions returns the width and height of the frame buffer used in the
// Flip
func (fb *Flip) Dimensions() (width int32, height int32) {
	return fb.width, fb.height
}

// PreviousTexture returns the texture ID of the last Flip texture to be
// processed. A feedback shader binds this as an input while Process() draws
// to the other texture.
func (fb *Flip) PreviousTexture() uint32 {
	return fb.flip[fb.flipIdx]
}

// Process the Flip using the supplied draw function. The draw function
// should typically invoke a GLSL shader. The texture ID that was drawn to
// is returned.
func (fb *Flip) Process(draw func()) uint32 {
	fb.flipIdx++
	if fb.flipIdx >= len(fb.flip) {
		fb.flipIdx = 0
	}

	id := fb.flip[fb.flipIdx]
	gl.BindFramebuffer(gl.FRAMEBUFFER, fb.fbo)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, id, 0)

	if fb.clearOnRender {
		gl.Clear(gl.COLOR_BUFFER_BIT)
	}

	draw()

	return id
}

// bindForCopy implements the FBO interface
func (fb *Flip) bindForCopy() {
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, fb.fbo)
	gl.FramebufferTexture2D(gl.READ_FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, fb.flip[fb.flipIdx], 0)
}

// Copy another framebuffer to the Flip instance. Framebuffers must be of
// the same dimensions
func (fb *Flip) Copy(src FBO) uint32 {
	src.bindForCopy()
	gl.BindFramebuffer(gl.DRAW_FRAMEBUFFER, fb.fbo)
	gl.FramebufferTexture2D(gl.DRAW_FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, fb.flip[fb.flipIdx], 0)
	gl.BlitFramebuffer(0, 0, fb.width, fb.height,
		0, 0, fb.width, fb.height,
		gl.COLOR_BUFFER_BIT, gl.NEAREST)
	return fb.flip[fb.flipIdx]
}
