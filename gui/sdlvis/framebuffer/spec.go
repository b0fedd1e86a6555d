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

// TextureSpec describes the storage of the textures created by a Single or
// Flip framebuffer.
type TextureSpec struct {
	internalFormat int32
	format         uint32
	pixelType      uint32

	// bytes per pixel. used to size the empty pixel buffer for Clear()
	pixelDepth int32
}

// RGBA is the texture format for normal colour work.
var RGBA = TextureSpec{
	internalFormat: gl.RGBA,
	format:         gl.RGBA,
	pixelType:      gl.UNSIGNED_BYTE,
	pixelDepth:     4,
}

// Red32F is a single channel of 32bit float. Both RGBA and Red32F pixels
// are four bytes so a zeroed byte buffer clears either format.
var Red32F = TextureSpec{
	internalFormat: gl.R32F,
	format:         gl.RED,
	pixelType:      gl.FLOAT,
	pixelDepth:     4,
}

// create and size a texture according to the spec. the texture is bound on
// return.
func (spec TextureSpec) createTexture(id *uint32, width int32, height int32, emptyPixels []uint8) {
	gl.GenTextures(1, id)
	gl.BindTexture(gl.TEXTURE_2D, *id)
	gl.TexImage2D(gl.TEXTURE_2D, 0,
		spec.internalFormat, width, height, 0,
		spec.format, spec.pixelType,
		gl.Ptr(emptyPixels))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_BORDER)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_BORDER)
}

// reload a texture's storage with the empty pixel buffer.
func (spec TextureSpec) clearTexture(id uint32, width int32, height int32, emptyPixels []uint8) {
	gl.BindTexture(gl.TEXTURE_2D, id)
	gl.TexImage2D(gl.TEXTURE_2D, 0,
		spec.internalFormat, width, height, 0,
		spec.format, spec.pixelType,
		gl.Ptr(emptyPixels))
}

// FBO is the interface implemented by both Single and Flip. It allows one
// framebuffer to be copied to another with the Copy() functions.
type FBO interface {
	id() uint32
	bindForCopy()
}
